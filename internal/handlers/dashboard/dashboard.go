package dashboard

//go:generate mockgen -source=dashboard.go -destination=mock_dashboard.go -package=dashboard

import (
	"context"
	"net/http"
	"time"

	"github.com/GlebRadaev/savesmart/internal/domain"
	"github.com/GlebRadaev/savesmart/internal/dto"
	"github.com/GlebRadaev/savesmart/internal/handlers/apierror"
	"github.com/GlebRadaev/savesmart/pkg/session"
	"github.com/GlebRadaev/savesmart/pkg/utils"
)

type Service interface {
	Dashboard(ctx context.Context, userID string) (*domain.Dashboard, error)
	Activities(ctx context.Context, userID string) ([]domain.Activity, error)
}

type DashboardHandler struct {
	dashboardService Service
	now              func() time.Time
}

func New(dashboardService Service) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		now:              time.Now,
	}
}

// GetDashboard godoc
//
//	@Summary		Dashboard overview
//	@Description	User profile, goals, the ten most recent activities and the current challenge
//	@Tags			Dashboard
//	@Produce		json
//	@Success		200	{object}	dto.DashboardResponseDTO
//	@Failure		401	{object}	utils.Response	"No active session"
//	@Failure		404	{object}	utils.Response	"User not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/dashboard [get]
func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	userID, _ := session.UserID(r.Context())

	dashboard, err := h.dashboardService.Dashboard(r.Context(), userID)
	if err != nil {
		apierror.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewDashboardResponse(dashboard, h.now()))
}

// GetActivities godoc
//
//	@Summary		Recent activity
//	@Description	The ten most recent activities of the logged-in user, newest first
//	@Tags			Dashboard
//	@Produce		json
//	@Success		200	{array}		dto.ActivityResponseDTO
//	@Failure		401	{object}	utils.Response	"No active session"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/activities [get]
func (h *DashboardHandler) GetActivities(w http.ResponseWriter, r *http.Request) {
	userID, _ := session.UserID(r.Context())

	activities, err := h.dashboardService.Activities(r.Context(), userID)
	if err != nil {
		apierror.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewActivitiesResponse(activities))
}
