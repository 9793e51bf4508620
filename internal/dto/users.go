package dto

import (
	"time"

	"github.com/GlebRadaev/savesmart/internal/domain"
	"github.com/shopspring/decimal"
)

type RegisterRequestDTO struct {
	Name            string `json:"name" validate:"required,max=100" example:"Ana"`
	Email           string `json:"email" validate:"required,email" example:"ana@example.com"`
	Password        string `json:"password" validate:"required" example:"secret"`
	ConfirmPassword string `json:"confirmPassword" validate:"required" example:"secret"`
}

type LoginRequestDTO struct {
	Email    string `json:"email" validate:"required,email" example:"ana@example.com"`
	Password string `json:"password" example:"secret"`
}

type UserResponseDTO struct {
	ID           string          `json:"id" example:"01912f3c-6f4e-7a51-9a43-0e0b1b7e5c11"`
	Name         string          `json:"name" example:"Ana"`
	Email        string          `json:"email" example:"ana@example.com"`
	TotalSavings decimal.Decimal `json:"totalSavings" swaggertype:"string" example:"600"`
	Points       int             `json:"points" example:"160"`
	Level        int             `json:"level" example:"1"`
	Badges       []string        `json:"badges" example:"first_savings"`
	Streak       int             `json:"streak" example:"0"`
	JoinDate     time.Time       `json:"joinDate" example:"2024-03-01T09:00:00Z"`
}

func NewUserResponse(u *domain.User) UserResponseDTO {
	badges := u.Badges
	if badges == nil {
		badges = []string{}
	}
	return UserResponseDTO{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		TotalSavings: u.TotalSavings,
		Points:       u.Points,
		Level:        u.Level,
		Badges:       badges,
		Streak:       u.Streak,
		JoinDate:     u.JoinDate,
	}
}
