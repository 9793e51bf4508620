package handlers

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

import (
	"net/http"

	_ "github.com/GlebRadaev/savesmart/docs"
	dashboardhandlers "github.com/GlebRadaev/savesmart/internal/handlers/dashboard"
	gamificationhandlers "github.com/GlebRadaev/savesmart/internal/handlers/gamification"
	goalshandlers "github.com/GlebRadaev/savesmart/internal/handlers/goals"
	statushandlers "github.com/GlebRadaev/savesmart/internal/handlers/status"
	usershandlers "github.com/GlebRadaev/savesmart/internal/handlers/users"
	"github.com/GlebRadaev/savesmart/internal/service"
	"github.com/GlebRadaev/savesmart/pkg/session"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type UserHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
}

type GoalHandler interface {
	GetGoals(w http.ResponseWriter, r *http.Request)
	CreateGoal(w http.ResponseWriter, r *http.Request)
	UpdateGoal(w http.ResponseWriter, r *http.Request)
	DeleteGoal(w http.ResponseWriter, r *http.Request)
	Deposit(w http.ResponseWriter, r *http.Request)
}

type GamificationHandler interface {
	GetBadges(w http.ResponseWriter, r *http.Request)
	GetChallenges(w http.ResponseWriter, r *http.Request)
	GetStats(w http.ResponseWriter, r *http.Request)
	GetLeaderboard(w http.ResponseWriter, r *http.Request)
}

type DashboardHandler interface {
	GetDashboard(w http.ResponseWriter, r *http.Request)
	GetActivities(w http.ResponseWriter, r *http.Request)
}

type StatusHandler interface {
	GetStatus(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	UserHandler         UserHandler
	GoalHandler         GoalHandler
	GamificationHandler GamificationHandler
	DashboardHandler    DashboardHandler
	StatusHandler       StatusHandler
	Session             session.Resolver
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		UserHandler:         usershandlers.New(s.UserService),
		GoalHandler:         goalshandlers.New(s.GoalService),
		GamificationHandler: gamificationhandlers.New(s.GamificationService),
		DashboardHandler:    dashboardhandlers.New(s.DashboardService),
		StatusHandler:       statushandlers.New(s.StatusService),
		Session:             s.UserService,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Get("/status", h.StatusHandler.GetStatus)

		r.Route("/users", func(r chi.Router) {
			r.Post("/register", h.UserHandler.Register)
			r.Post("/login", h.UserHandler.Login)
			r.Post("/logout", h.UserHandler.Logout)
			r.With(session.Middleware(h.Session)).Get("/me", h.UserHandler.Me)
		})

		r.Group(func(r chi.Router) {
			r.Use(session.Middleware(h.Session))
			r.Route("/goals", func(r chi.Router) {
				r.Get("/", h.GoalHandler.GetGoals)
				r.Post("/", h.GoalHandler.CreateGoal)
				r.Patch("/{id}", h.GoalHandler.UpdateGoal)
				r.Delete("/{id}", h.GoalHandler.DeleteGoal)
				r.Post("/{id}/deposit", h.GoalHandler.Deposit)
			})
			r.Get("/activities", h.DashboardHandler.GetActivities)
			r.Get("/dashboard", h.DashboardHandler.GetDashboard)
			r.Route("/gamification", func(r chi.Router) {
				r.Get("/badges", h.GamificationHandler.GetBadges)
				r.Get("/challenges", h.GamificationHandler.GetChallenges)
				r.Get("/stats", h.GamificationHandler.GetStats)
				r.Get("/leaderboard", h.GamificationHandler.GetLeaderboard)
			})
		})
	})

	return r
}
