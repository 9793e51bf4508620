package userservice

//go:generate mockgen -source=userservice.go -destination=mock_userservice.go -package=userservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/GlebRadaev/savesmart/internal/domain"
	"github.com/GlebRadaev/savesmart/internal/storage"
	"go.uber.org/zap"
)

const (
	welcomePoints = 100
	startLevel    = 1
)

var (
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrEmailTaken       = errors.New("email already registered")
)

type Repo interface {
	CreateUser(ctx context.Context, in domain.NewUser) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	GetUserByID(ctx context.Context, id string) (*domain.User, error)
	GetCurrentUser(ctx context.Context) (*domain.User, error)
	SetCurrentUser(ctx context.Context, id string) error
	Logout(ctx context.Context) error
}

type Service struct {
	userRepo Repo
}

func New(repo Repo) *Service {
	return &Service{
		userRepo: repo,
	}
}

// Register creates a user with the welcome bonus and makes them the current user.
// Passwords are only compared with their confirmation; they are never stored.
func (s *Service) Register(ctx context.Context, name, email, password, confirm string) (*domain.User, error) {
	if password != confirm {
		return nil, ErrPasswordMismatch
	}
	existing, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		zap.L().Info("email already registered", zap.String("email", email))
		return nil, ErrEmailTaken
	}

	user, err := s.userRepo.CreateUser(ctx, domain.NewUser{
		Name:   name,
		Email:  email,
		Points: welcomePoints,
		Level:  startLevel,
		Badges: []string{},
	})
	if err != nil {
		zap.L().Error("can't create user", zap.Error(err))
		return nil, err
	}
	if err := s.userRepo.SetCurrentUser(ctx, user.ID); err != nil {
		zap.L().Error("can't set current user", zap.Error(err))
		return nil, err
	}

	zap.L().Info("user successfully registered", zap.String("email", email))
	return user, nil
}

// Login switches the session to the user with the given email. The password is accepted as is.
func (s *Service) Login(ctx context.Context, email, _ string) (*domain.User, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: %s", storage.ErrUserNotFound, email)
	}
	if err := s.userRepo.SetCurrentUser(ctx, user.ID); err != nil {
		zap.L().Error("can't set current user", zap.Error(err))
		return nil, err
	}
	zap.L().Info("user logged in", zap.String("email", email))
	return user, nil
}

func (s *Service) Logout(ctx context.Context) error {
	if err := s.userRepo.Logout(ctx); err != nil {
		zap.L().Error("can't clear current user", zap.Error(err))
		return err
	}
	return nil
}

func (s *Service) Get(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		zap.L().Error("can't get user", zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: %s", storage.ErrUserNotFound, userID)
	}
	return user, nil
}

// CurrentUserID resolves the persisted session. An empty id means nobody is logged in.
func (s *Service) CurrentUserID(ctx context.Context) (string, error) {
	user, err := s.userRepo.GetCurrentUser(ctx)
	if err != nil {
		zap.L().Error("can't get current user", zap.Error(err))
		return "", err
	}
	if user == nil {
		return "", nil
	}
	return user.ID, nil
}
