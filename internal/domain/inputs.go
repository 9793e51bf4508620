package domain

import (
	"github.com/shopspring/decimal"
)

// NewUser carries the fields of a user that the caller chooses; id and join date are assigned on creation.
type NewUser struct {
	Name         string          `validate:"required"`
	Email        string          `validate:"required,email"`
	TotalSavings decimal.Decimal `validate:"-"`
	Points       int             `validate:"gte=0"`
	Level        int             `validate:"gte=1"`
	Badges       []string        `validate:"dive,required"`
	Streak       int             `validate:"gte=0"`
}

type NewSavingsGoal struct {
	Name    string          `validate:"required"`
	Target  decimal.Decimal `validate:"-"`
	Current decimal.Decimal `validate:"-"`
	DueDate Date            `validate:"-"`
	Icon    string
	Color   string
}

type NewActivity struct {
	UserID      string           `validate:"required"`
	Type        ActivityType     `validate:"required,oneof=savings achievement goal_completion"`
	Amount      *decimal.Decimal `validate:"-"`
	Description string           `validate:"required"`
}

// UserUpdate is a partial update. Nil fields are left unchanged; a non-nil Badges replaces the list.
type UserUpdate struct {
	Name         *string
	Email        *string
	TotalSavings *decimal.Decimal
	Points       *int
	Level        *int
	Badges       []string
	Streak       *int
}

func (u UserUpdate) Apply(user *User) {
	if u.Name != nil {
		user.Name = *u.Name
	}
	if u.Email != nil {
		user.Email = *u.Email
	}
	if u.TotalSavings != nil {
		user.TotalSavings = *u.TotalSavings
	}
	if u.Points != nil {
		user.Points = *u.Points
	}
	if u.Level != nil {
		user.Level = *u.Level
	}
	if u.Badges != nil {
		user.Badges = append([]string(nil), u.Badges...)
	}
	if u.Streak != nil {
		user.Streak = *u.Streak
	}
}

type SavingsGoalUpdate struct {
	Name    *string
	Target  *decimal.Decimal
	Current *decimal.Decimal
	DueDate *Date
	Icon    *string
	Color   *string
}

func (u SavingsGoalUpdate) Apply(goal *SavingsGoal) {
	if u.Name != nil {
		goal.Name = *u.Name
	}
	if u.Target != nil {
		goal.Target = *u.Target
	}
	if u.Current != nil {
		goal.Current = *u.Current
	}
	if u.DueDate != nil {
		goal.DueDate = *u.DueDate
	}
	if u.Icon != nil {
		goal.Icon = *u.Icon
	}
	if u.Color != nil {
		goal.Color = *u.Color
	}
}
