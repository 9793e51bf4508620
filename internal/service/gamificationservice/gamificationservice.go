package gamificationservice

//go:generate mockgen -source=gamificationservice.go -destination=mock_gamificationservice.go -package=gamificationservice

import (
	"context"
	"fmt"
	"slices"

	"github.com/GlebRadaev/savesmart/internal/domain"
	"github.com/GlebRadaev/savesmart/internal/storage"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	nextLevelPoints = 1500
	levelUpLevel    = 5
	streakDays      = 7
)

var championSavings = decimal.NewFromInt(1000)

// community is the fixed part of the leaderboard.
var community = []domain.LeaderboardEntry{
	{Name: "Sarah M.", Points: 2850},
	{Name: "Mike R.", Points: 2720},
	{Name: "Emma L.", Points: 2650},
}

type Repo interface {
	GetUserByID(ctx context.Context, id string) (*domain.User, error)
	UpdateUser(ctx context.Context, id string, upd domain.UserUpdate) (*domain.User, error)
	GetSavingsGoalsByUserID(ctx context.Context, userID string) ([]domain.SavingsGoal, error)
	GetUserBadges(ctx context.Context, userID string) ([]domain.Badge, error)
	GetDefaultChallenges() []domain.Challenge
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) Badges(ctx context.Context, userID string) ([]domain.Badge, error) {
	badges, err := s.repo.GetUserBadges(ctx, userID)
	if err != nil {
		zap.L().Error("can't get badges", zap.Error(err))
		return nil, err
	}
	return badges, nil
}

func (s *Service) Challenges(_ context.Context) []domain.Challenge {
	return s.repo.GetDefaultChallenges()
}

func (s *Service) Leaderboard(ctx context.Context, userID string) ([]domain.LeaderboardEntry, error) {
	user, err := s.user(ctx, userID)
	if err != nil {
		return nil, err
	}
	return leaderboard(user), nil
}

func (s *Service) Stats(ctx context.Context, userID string) (*domain.Stats, error) {
	user, err := s.user(ctx, userID)
	if err != nil {
		return nil, err
	}
	badges, err := s.Badges(ctx, userID)
	if err != nil {
		return nil, err
	}

	stats := &domain.Stats{
		Points:          user.Points,
		Level:           user.Level,
		NextLevelPoints: nextLevelPoints,
		Streak:          user.Streak,
	}
	for _, b := range badges {
		if b.Earned {
			stats.BadgesEarned++
		}
	}
	for _, entry := range leaderboard(user) {
		if entry.IsUser {
			stats.Rank = entry.Rank
		}
	}
	return stats, nil
}

// Evaluate appends every badge the user now qualifies for and returns the newly awarded ids.
func (s *Service) Evaluate(ctx context.Context, userID string) ([]string, error) {
	user, err := s.user(ctx, userID)
	if err != nil {
		return nil, err
	}
	goals, err := s.repo.GetSavingsGoalsByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("can't list goals", zap.Error(err))
		return nil, err
	}

	var awarded []string
	for _, id := range eligible(user, goals) {
		if !user.HasBadge(id) {
			awarded = append(awarded, id)
		}
	}
	if len(awarded) == 0 {
		return nil, nil
	}

	badges := append(slices.Clone(user.Badges), awarded...)
	if _, err := s.repo.UpdateUser(ctx, userID, domain.UserUpdate{Badges: badges}); err != nil {
		zap.L().Error("can't award badges", zap.Error(err))
		return nil, err
	}
	return awarded, nil
}

func (s *Service) user(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		zap.L().Error("can't get user", zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: %s", storage.ErrUserNotFound, userID)
	}
	return user, nil
}

// eligible lists the catalog badges the user's state qualifies for, in catalog order.
// community_helper has no tracked signal and is never awarded here.
func eligible(user *domain.User, goals []domain.SavingsGoal) []string {
	var ids []string
	if user.TotalSavings.IsPositive() {
		ids = append(ids, domain.BadgeFirstSavings)
	}
	if user.Streak >= streakDays {
		ids = append(ids, domain.BadgeStreakKeeper)
	}
	if slices.ContainsFunc(goals, func(g domain.SavingsGoal) bool { return g.Completed() }) {
		ids = append(ids, domain.BadgeGoalCrusher)
	}
	if user.TotalSavings.GreaterThan(championSavings) {
		ids = append(ids, domain.BadgeSavingsChampion)
	}
	if user.Level >= levelUpLevel {
		ids = append(ids, domain.BadgeLevelUp)
	}
	return ids
}

// leaderboard ranks the community entries and the user by points. Ties keep the community first.
func leaderboard(user *domain.User) []domain.LeaderboardEntry {
	entries := append(slices.Clone(community), domain.LeaderboardEntry{
		Name:   user.Name,
		Points: user.Points,
		IsUser: true,
	})
	slices.SortStableFunc(entries, func(a, b domain.LeaderboardEntry) int {
		return b.Points - a.Points
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}
