package repo

import (
	"github.com/GlebRadaev/savesmart/internal/kv"
	"github.com/GlebRadaev/savesmart/internal/service/dashboardservice"
	"github.com/GlebRadaev/savesmart/internal/service/gamificationservice"
	"github.com/GlebRadaev/savesmart/internal/service/goalservice"
	"github.com/GlebRadaev/savesmart/internal/service/statusservice"
	"github.com/GlebRadaev/savesmart/internal/service/userservice"
	"github.com/GlebRadaev/savesmart/internal/storage"
)

// Repositories exposes one storage manager through the narrow interface each service consumes.
type Repositories struct {
	UserRepo         userservice.Repo
	GoalRepo         goalservice.GoalRepo
	ActivityRepo     goalservice.ActivityRepo
	AccountRepo      goalservice.UserRepo
	GamificationRepo gamificationservice.Repo
	DashboardRepo    dashboardservice.Repo
	StatusRepo       statusservice.Repo
}

func New(store kv.Store, opts ...storage.Option) *Repositories {
	manager := storage.New(store, opts...)

	return &Repositories{
		UserRepo:         manager,
		GoalRepo:         manager,
		ActivityRepo:     manager,
		AccountRepo:      manager,
		GamificationRepo: manager,
		DashboardRepo:    manager,
		StatusRepo:       manager,
	}
}
