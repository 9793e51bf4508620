package storage

import (
	"context"

	"github.com/GlebRadaev/savesmart/internal/domain"
)

// GetDefaultBadges returns the badge catalog with nothing earned. Each call returns a fresh slice.
func (m *Manager) GetDefaultBadges() []domain.Badge {
	return []domain.Badge{
		{ID: domain.BadgeFirstSavings, Name: "First Savings", Description: "Made your first savings deposit", Icon: "💰"},
		{ID: domain.BadgeStreakKeeper, Name: "Streak Keeper", Description: "Saved money for 7 days in a row", Icon: "🔥"},
		{ID: domain.BadgeGoalCrusher, Name: "Goal Crusher", Description: "Completed your first savings goal", Icon: "🎯"},
		{ID: domain.BadgeSavingsChampion, Name: "Savings Champion", Description: "Saved over $1000 total", Icon: "🏆"},
		{ID: domain.BadgeCommunityHelper, Name: "Community Helper", Description: "Helped 5 friends with savings tips", Icon: "🤝"},
		{ID: domain.BadgeLevelUp, Name: "Level Up", Description: "Reached level 5", Icon: "⭐"},
	}
}

func (m *Manager) GetDefaultChallenges() []domain.Challenge {
	return []domain.Challenge{
		{
			ID:          "1",
			Title:       "Save $50 This Week",
			Description: "Add $50 to any of your savings goals",
			Reward:      150,
			DaysLeft:    7,
			Difficulty:  domain.DifficultyEasy,
		},
		{
			ID:          "2",
			Title:       "Daily Saver",
			Description: "Save money every day for 7 days",
			Reward:      200,
			DaysLeft:    7,
			Difficulty:  domain.DifficultyMedium,
		},
		{
			ID:          "3",
			Title:       "Goal Setter",
			Description: "Create 3 new savings goals",
			Reward:      300,
			DaysLeft:    14,
			Difficulty:  domain.DifficultyHard,
		},
	}
}

// GetUserBadges marks the catalog badges the given user has earned. An unknown user gets the
// unearned catalog.
func (m *Manager) GetUserBadges(ctx context.Context, userID string) ([]domain.Badge, error) {
	badges := m.GetDefaultBadges()

	user, err := m.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return badges, nil
	}
	for i := range badges {
		badges[i].Earned = user.HasBadge(badges[i].ID)
	}
	return badges, nil
}
