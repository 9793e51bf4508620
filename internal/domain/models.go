package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type ActivityType string

const (
	ActivitySavings        ActivityType = "savings"
	ActivityAchievement    ActivityType = "achievement"
	ActivityGoalCompletion ActivityType = "goal_completion"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Badge catalog ids.
const (
	BadgeFirstSavings    = "first_savings"
	BadgeStreakKeeper    = "streak_keeper"
	BadgeGoalCrusher     = "goal_crusher"
	BadgeSavingsChampion = "savings_champion"
	BadgeCommunityHelper = "community_helper"
	BadgeLevelUp         = "level_up"
)

type User struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Email        string          `json:"email"`
	TotalSavings decimal.Decimal `json:"totalSavings"`
	Points       int             `json:"points"`
	Level        int             `json:"level"`
	Badges       []string        `json:"badges"`
	Streak       int             `json:"streak"`
	JoinDate     time.Time       `json:"joinDate"`
}

// HasBadge reports whether id is in the user's badge list.
func (u *User) HasBadge(id string) bool {
	for _, b := range u.Badges {
		if b == id {
			return true
		}
	}
	return false
}

type SavingsGoal struct {
	ID        string          `json:"id"`
	UserID    string          `json:"userId"`
	Name      string          `json:"name"`
	Target    decimal.Decimal `json:"target"`
	Current   decimal.Decimal `json:"current"`
	DueDate   Date            `json:"dueDate"`
	Icon      string          `json:"icon"`
	Color     string          `json:"color"`
	CreatedAt time.Time       `json:"createdAt"`
}

func (g *SavingsGoal) Completed() bool {
	return g.Current.GreaterThanOrEqual(g.Target)
}

func (g *SavingsGoal) Remaining() decimal.Decimal {
	return g.Target.Sub(g.Current)
}

type Activity struct {
	ID          string           `json:"id"`
	UserID      string           `json:"userId"`
	Type        ActivityType     `json:"type"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Description string           `json:"description"`
	Timestamp   time.Time        `json:"timestamp"`
}

type Badge struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Earned      bool   `json:"earned"`
}

type Challenge struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Progress    int        `json:"progress"`
	Reward      int        `json:"reward"`
	DaysLeft    int        `json:"daysLeft"`
	Difficulty  Difficulty `json:"difficulty"`
}

type LeaderboardEntry struct {
	Rank   int    `json:"rank"`
	Name   string `json:"name"`
	Points int    `json:"points"`
	IsUser bool   `json:"isUser"`
}

type Stats struct {
	Points          int `json:"points"`
	Level           int `json:"level"`
	NextLevelPoints int `json:"nextLevelPoints"`
	Streak          int `json:"streak"`
	BadgesEarned    int `json:"badgesEarned"`
	Rank            int `json:"rank"`
}

// Dashboard is the overview shown right after login.
type Dashboard struct {
	User           User            `json:"user"`
	Goals          []SavingsGoal   `json:"goals"`
	Activities     []Activity      `json:"activities"`
	Challenge      *Challenge      `json:"challenge,omitempty"`
	GoalsSaved     decimal.Decimal `json:"goalsSaved"`
	CompletedGoals int             `json:"completedGoals"`
}
