package dto

import (
	"time"

	"github.com/GlebRadaev/savesmart/internal/domain"
	"github.com/shopspring/decimal"
)

type CreateGoalRequestDTO struct {
	Name    string          `json:"name" validate:"required,max=100" example:"Trip"`
	Target  decimal.Decimal `json:"target" validate:"positive" swaggertype:"string" example:"500"`
	Current decimal.Decimal `json:"current" validate:"nonnegative" swaggertype:"string" example:"0"`
	DueDate domain.Date     `json:"dueDate" swaggertype:"string" example:"2024-12-31"`
	Icon    string          `json:"icon" example:"Plane"`
	Color   string          `json:"color" example:"bg-green-500"`
}

func (r CreateGoalRequestDTO) ToDomain() domain.NewSavingsGoal {
	return domain.NewSavingsGoal{
		Name:    r.Name,
		Target:  r.Target,
		Current: r.Current,
		DueDate: r.DueDate,
		Icon:    r.Icon,
		Color:   r.Color,
	}
}

type UpdateGoalRequestDTO struct {
	Name    *string          `json:"name,omitempty" validate:"omitempty,min=1,max=100" example:"Holiday"`
	Target  *decimal.Decimal `json:"target,omitempty" validate:"omitempty,positive" swaggertype:"string" example:"800"`
	DueDate *domain.Date     `json:"dueDate,omitempty" swaggertype:"string" example:"2025-06-01"`
	Icon    *string          `json:"icon,omitempty" example:"Plane"`
	Color   *string          `json:"color,omitempty" example:"bg-green-500"`
}

func (r UpdateGoalRequestDTO) ToDomain() domain.SavingsGoalUpdate {
	return domain.SavingsGoalUpdate{
		Name:    r.Name,
		Target:  r.Target,
		DueDate: r.DueDate,
		Icon:    r.Icon,
		Color:   r.Color,
	}
}

type DepositRequestDTO struct {
	Amount decimal.Decimal `json:"amount" validate:"positive" swaggertype:"string" example:"50"`
}

type GoalResponseDTO struct {
	ID        string          `json:"id" example:"01912f3c-7a10-7c2b-8d1e-5b6a7c8d9e0f"`
	Name      string          `json:"name" example:"Trip"`
	Target    decimal.Decimal `json:"target" swaggertype:"string" example:"500"`
	Current   decimal.Decimal `json:"current" swaggertype:"string" example:"120"`
	Remaining decimal.Decimal `json:"remaining" swaggertype:"string" example:"380"`
	Progress  int             `json:"progress" example:"24"`
	DueDate   domain.Date     `json:"dueDate" swaggertype:"string" example:"2024-12-31"`
	DaysLeft  int             `json:"daysLeft" example:"42"`
	Icon      string          `json:"icon" example:"Plane"`
	Color     string          `json:"color" example:"bg-green-500"`
	CreatedAt time.Time       `json:"createdAt" example:"2024-03-01T09:00:00Z"`
}

var hundred = decimal.NewFromInt(100)

// NewGoalResponse adds the progress figures the goal cards show. Progress is a whole percentage.
func NewGoalResponse(g *domain.SavingsGoal, now time.Time) GoalResponseDTO {
	progress := 0
	if g.Target.IsPositive() {
		progress = int(g.Current.Mul(hundred).Div(g.Target).Floor().IntPart())
	}
	return GoalResponseDTO{
		ID:        g.ID,
		Name:      g.Name,
		Target:    g.Target,
		Current:   g.Current,
		Remaining: g.Remaining(),
		Progress:  progress,
		DueDate:   g.DueDate,
		DaysLeft:  g.DueDate.DaysUntil(now),
		Icon:      g.Icon,
		Color:     g.Color,
		CreatedAt: g.CreatedAt,
	}
}

func NewGoalsResponse(goals []domain.SavingsGoal, now time.Time) []GoalResponseDTO {
	out := make([]GoalResponseDTO, len(goals))
	for i := range goals {
		out[i] = NewGoalResponse(&goals[i], now)
	}
	return out
}
