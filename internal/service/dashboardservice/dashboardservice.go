package dashboardservice

//go:generate mockgen -source=dashboardservice.go -destination=mock_dashboardservice.go -package=dashboardservice

import (
	"context"
	"fmt"

	"github.com/GlebRadaev/savesmart/internal/domain"
	"github.com/GlebRadaev/savesmart/internal/storage"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Repo interface {
	GetUserByID(ctx context.Context, id string) (*domain.User, error)
	GetSavingsGoalsByUserID(ctx context.Context, userID string) ([]domain.SavingsGoal, error)
	GetActivitiesByUserID(ctx context.Context, userID string) ([]domain.Activity, error)
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

// Dashboard loads everything the overview needs in parallel.
func (s *Service) Dashboard(ctx context.Context, userID string) (*domain.Dashboard, error) {
	var (
		user       *domain.User
		goals      []domain.SavingsGoal
		activities []domain.Activity
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		user, err = s.repo.GetUserByID(gCtx, userID)
		return err
	})
	g.Go(func() (err error) {
		goals, err = s.repo.GetSavingsGoalsByUserID(gCtx, userID)
		return err
	})
	g.Go(func() (err error) {
		activities, err = s.repo.GetActivitiesByUserID(gCtx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		zap.L().Error("can't load dashboard", zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: %s", storage.ErrUserNotFound, userID)
	}

	dashboard := &domain.Dashboard{
		User:       *user,
		Goals:      goals,
		Activities: activities,
		GoalsSaved: decimal.Zero,
	}
	for _, goal := range goals {
		dashboard.GoalsSaved = dashboard.GoalsSaved.Add(goal.Current)
		if goal.Completed() {
			dashboard.CompletedGoals++
		}
	}
	if challenges := s.repo.GetDefaultChallenges(); len(challenges) > 0 {
		dashboard.Challenge = &challenges[0]
	}
	return dashboard, nil
}

func (s *Service) Activities(ctx context.Context, userID string) ([]domain.Activity, error) {
	activities, err := s.repo.GetActivitiesByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("can't list activities", zap.Error(err))
		return nil, err
	}
	return activities, nil
}
