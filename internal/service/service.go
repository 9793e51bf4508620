package service

import (
	"github.com/GlebRadaev/savesmart/internal/handlers/dashboard"
	"github.com/GlebRadaev/savesmart/internal/handlers/gamification"
	"github.com/GlebRadaev/savesmart/internal/handlers/goals"
	"github.com/GlebRadaev/savesmart/internal/handlers/status"
	"github.com/GlebRadaev/savesmart/internal/handlers/users"

	"github.com/GlebRadaev/savesmart/internal/repo"
	dashboardservice "github.com/GlebRadaev/savesmart/internal/service/dashboardservice"
	gamificationservice "github.com/GlebRadaev/savesmart/internal/service/gamificationservice"
	goalservice "github.com/GlebRadaev/savesmart/internal/service/goalservice"
	statusservice "github.com/GlebRadaev/savesmart/internal/service/statusservice"
	userservice "github.com/GlebRadaev/savesmart/internal/service/userservice"
)

type Services struct {
	UserService         users.Service
	GoalService         goals.Service
	GamificationService gamification.Service
	DashboardService    dashboard.Service
	StatusService       status.Service
}

func New(repo *repo.Repositories) *Services {
	gamificationService := gamificationservice.New(repo.GamificationRepo)
	goalService := goalservice.New(repo.GoalRepo, repo.ActivityRepo, repo.AccountRepo, gamificationService)

	return &Services{
		UserService:         userservice.New(repo.UserRepo),
		GoalService:         goalService,
		GamificationService: gamificationService,
		DashboardService:    dashboardservice.New(repo.DashboardRepo),
		StatusService:       statusservice.New(repo.StatusRepo),
	}
}
