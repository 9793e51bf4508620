package dto

import (
	"time"

	"github.com/GlebRadaev/savesmart/internal/domain"
	"github.com/shopspring/decimal"
)

type ActivityResponseDTO struct {
	ID          string           `json:"id" example:"01912f3c-8b21-7d3c-9e2f-6c7b8d9e0f1a"`
	Type        string           `json:"type" example:"savings"`
	Amount      *decimal.Decimal `json:"amount,omitempty" swaggertype:"string" example:"600"`
	Description string           `json:"description" example:"Added $600 to Trip"`
	Timestamp   time.Time        `json:"timestamp" example:"2024-03-01T09:00:00Z"`
}

func NewActivitiesResponse(activities []domain.Activity) []ActivityResponseDTO {
	out := make([]ActivityResponseDTO, len(activities))
	for i, a := range activities {
		out[i] = ActivityResponseDTO{
			ID:          a.ID,
			Type:        string(a.Type),
			Amount:      a.Amount,
			Description: a.Description,
			Timestamp:   a.Timestamp,
		}
	}
	return out
}

type DashboardResponseDTO struct {
	User           UserResponseDTO       `json:"user"`
	Goals          []GoalResponseDTO     `json:"goals"`
	Activities     []ActivityResponseDTO `json:"activities"`
	Challenge      *ChallengeDTO         `json:"challenge,omitempty"`
	GoalsSaved     decimal.Decimal       `json:"goalsSaved" swaggertype:"string" example:"620"`
	CompletedGoals int                   `json:"completedGoals" example:"1"`
}

func NewDashboardResponse(d *domain.Dashboard, now time.Time) DashboardResponseDTO {
	resp := DashboardResponseDTO{
		User:           NewUserResponse(&d.User),
		Goals:          NewGoalsResponse(d.Goals, now),
		Activities:     NewActivitiesResponse(d.Activities),
		GoalsSaved:     d.GoalsSaved,
		CompletedGoals: d.CompletedGoals,
	}
	if d.Challenge != nil {
		challenge := ChallengeDTO(*d.Challenge)
		resp.Challenge = &challenge
	}
	return resp
}
