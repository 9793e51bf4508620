package goalservice

//go:generate mockgen -source=goalservice.go -destination=mock_goalservice.go -package=goalservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/GlebRadaev/savesmart/internal/domain"
	"github.com/GlebRadaev/savesmart/internal/storage"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// pointsDivisor converts a deposit into points: one point per ten dollars saved.
var pointsDivisor = decimal.NewFromInt(10)

var ErrInvalidAmount = errors.New("amount must be positive")

type GoalRepo interface {
	CreateSavingsGoal(ctx context.Context, in domain.NewSavingsGoal, userID string) (*domain.SavingsGoal, error)
	GetSavingsGoalsByUserID(ctx context.Context, userID string) ([]domain.SavingsGoal, error)
	GetSavingsGoal(ctx context.Context, id string) (*domain.SavingsGoal, error)
	UpdateSavingsGoal(ctx context.Context, id string, upd domain.SavingsGoalUpdate) (*domain.SavingsGoal, error)
	DeleteSavingsGoal(ctx context.Context, id string) error
}

type ActivityRepo interface {
	CreateActivity(ctx context.Context, in domain.NewActivity) (*domain.Activity, error)
}

type UserRepo interface {
	GetUserByID(ctx context.Context, id string) (*domain.User, error)
	UpdateUser(ctx context.Context, id string, upd domain.UserUpdate) (*domain.User, error)
}

// Evaluator awards the badges a user has become eligible for.
type Evaluator interface {
	Evaluate(ctx context.Context, userID string) ([]string, error)
}

type Service struct {
	goalRepo     GoalRepo
	activityRepo ActivityRepo
	userRepo     UserRepo
	evaluator    Evaluator
}

func New(goalRepo GoalRepo, activityRepo ActivityRepo, userRepo UserRepo, evaluator Evaluator) *Service {
	return &Service{
		goalRepo:     goalRepo,
		activityRepo: activityRepo,
		userRepo:     userRepo,
		evaluator:    evaluator,
	}
}

func (s *Service) Create(ctx context.Context, userID string, in domain.NewSavingsGoal) (*domain.SavingsGoal, error) {
	goal, err := s.goalRepo.CreateSavingsGoal(ctx, in, userID)
	if err != nil {
		zap.L().Error("can't create goal", zap.Error(err))
		return nil, err
	}
	_, err = s.activityRepo.CreateActivity(ctx, domain.NewActivity{
		UserID:      userID,
		Type:        domain.ActivityAchievement,
		Description: "Created new goal: " + goal.Name,
	})
	if err != nil {
		zap.L().Error("can't record goal activity", zap.Error(err))
		return nil, err
	}
	return goal, nil
}

func (s *Service) List(ctx context.Context, userID string) ([]domain.SavingsGoal, error) {
	goals, err := s.goalRepo.GetSavingsGoalsByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("can't list goals", zap.Error(err))
		return nil, err
	}
	return goals, nil
}

// Update edits goal details. Saved amounts only change through Deposit.
func (s *Service) Update(ctx context.Context, userID, goalID string, upd domain.SavingsGoalUpdate) (*domain.SavingsGoal, error) {
	if _, err := s.owned(ctx, userID, goalID); err != nil {
		return nil, err
	}
	upd.Current = nil
	goal, err := s.goalRepo.UpdateSavingsGoal(ctx, goalID, upd)
	if err != nil {
		zap.L().Error("can't update goal", zap.Error(err))
		return nil, err
	}
	return goal, nil
}

func (s *Service) Delete(ctx context.Context, userID, goalID string) error {
	if _, err := s.owned(ctx, userID, goalID); err != nil {
		return err
	}
	if err := s.goalRepo.DeleteSavingsGoal(ctx, goalID); err != nil {
		zap.L().Error("can't delete goal", zap.Error(err))
		return err
	}
	return nil
}

// Deposit adds amount to the goal, capped at its target, and credits the full amount to the user's
// savings and points. Badge evaluation runs last and never fails the deposit.
func (s *Service) Deposit(ctx context.Context, userID, goalID string, amount decimal.Decimal) (*domain.SavingsGoal, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	goal, err := s.owned(ctx, userID, goalID)
	if err != nil {
		return nil, err
	}
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		zap.L().Error("can't get user", zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: %s", storage.ErrUserNotFound, userID)
	}

	current := goal.Current.Add(amount)
	updated, err := s.goalRepo.UpdateSavingsGoal(ctx, goalID, domain.SavingsGoalUpdate{Current: &current})
	if err != nil {
		zap.L().Error("can't update goal", zap.Error(err))
		return nil, err
	}

	total := user.TotalSavings.Add(amount)
	points := user.Points + int(amount.Div(pointsDivisor).Floor().IntPart())
	if _, err := s.userRepo.UpdateUser(ctx, userID, domain.UserUpdate{TotalSavings: &total, Points: &points}); err != nil {
		zap.L().Error("can't update user savings", zap.Error(err))
		return nil, err
	}

	_, err = s.activityRepo.CreateActivity(ctx, domain.NewActivity{
		UserID:      userID,
		Type:        domain.ActivitySavings,
		Amount:      &amount,
		Description: fmt.Sprintf("Added $%s to %s", amount.String(), updated.Name),
	})
	if err != nil {
		zap.L().Error("can't record deposit activity", zap.Error(err))
		return nil, err
	}

	if awarded, err := s.evaluator.Evaluate(ctx, userID); err != nil {
		zap.L().Error("can't evaluate badges", zap.Error(err))
	} else if len(awarded) > 0 {
		zap.L().Info("badges awarded", zap.String("user", userID), zap.Strings("badges", awarded))
	}

	return updated, nil
}

// owned returns the goal if it exists and belongs to userID.
func (s *Service) owned(ctx context.Context, userID, goalID string) (*domain.SavingsGoal, error) {
	goal, err := s.goalRepo.GetSavingsGoal(ctx, goalID)
	if err != nil {
		zap.L().Error("can't get goal", zap.Error(err))
		return nil, err
	}
	if goal == nil || goal.UserID != userID {
		return nil, fmt.Errorf("%w: %s", storage.ErrGoalNotFound, goalID)
	}
	return goal, nil
}
