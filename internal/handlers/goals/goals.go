package goals

//go:generate mockgen -source=goals.go -destination=mock_goals.go -package=goals

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/GlebRadaev/savesmart/internal/domain"
	"github.com/GlebRadaev/savesmart/internal/dto"
	"github.com/GlebRadaev/savesmart/internal/handlers/apierror"
	"github.com/GlebRadaev/savesmart/pkg/session"
	"github.com/GlebRadaev/savesmart/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

type Service interface {
	Create(ctx context.Context, userID string, in domain.NewSavingsGoal) (*domain.SavingsGoal, error)
	List(ctx context.Context, userID string) ([]domain.SavingsGoal, error)
	Update(ctx context.Context, userID, goalID string, upd domain.SavingsGoalUpdate) (*domain.SavingsGoal, error)
	Delete(ctx context.Context, userID, goalID string) error
	Deposit(ctx context.Context, userID, goalID string, amount decimal.Decimal) (*domain.SavingsGoal, error)
}

type GoalHandler struct {
	goalService Service
	now         func() time.Time
}

func New(goalService Service) *GoalHandler {
	return &GoalHandler{
		goalService: goalService,
		now:         time.Now,
	}
}

// GetGoals godoc
//
//	@Summary		List savings goals
//	@Description	Goals of the logged-in user in the order they were created
//	@Tags			Goals
//	@Produce		json
//	@Success		200	{array}		dto.GoalResponseDTO
//	@Failure		401	{object}	utils.Response	"No active session"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/goals [get]
func (h *GoalHandler) GetGoals(w http.ResponseWriter, r *http.Request) {
	userID, _ := session.UserID(r.Context())

	goals, err := h.goalService.List(r.Context(), userID)
	if err != nil {
		apierror.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewGoalsResponse(goals, h.now()))
}

// CreateGoal godoc
//
//	@Summary		Create a savings goal
//	@Tags			Goals
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateGoalRequestDTO	true	"Goal"
//	@Success		201		{object}	dto.GoalResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid goal"
//	@Failure		401		{object}	utils.Response	"No active session"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/goals [post]
func (h *GoalHandler) CreateGoal(w http.ResponseWriter, r *http.Request) {
	userID, _ := session.UserID(r.Context())

	var req dto.CreateGoalRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := dto.Validate(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	goal, err := h.goalService.Create(r.Context(), userID, req.ToDomain())
	if err != nil {
		apierror.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewGoalResponse(goal, h.now()))
}

// UpdateGoal godoc
//
//	@Summary		Edit a savings goal
//	@Description	Only the fields present in the body change. The saved amount changes through deposits.
//	@Tags			Goals
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Goal ID"
//	@Param			request	body		dto.UpdateGoalRequestDTO	true	"Changed fields"
//	@Success		200		{object}	dto.GoalResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid goal"
//	@Failure		401		{object}	utils.Response	"No active session"
//	@Failure		404		{object}	utils.Response	"Goal not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/goals/{id} [patch]
func (h *GoalHandler) UpdateGoal(w http.ResponseWriter, r *http.Request) {
	userID, _ := session.UserID(r.Context())

	var req dto.UpdateGoalRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := dto.Validate(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	goal, err := h.goalService.Update(r.Context(), userID, chi.URLParam(r, "id"), req.ToDomain())
	if err != nil {
		apierror.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewGoalResponse(goal, h.now()))
}

// DeleteGoal godoc
//
//	@Summary		Delete a savings goal
//	@Tags			Goals
//	@Produce		json
//	@Param			id	path		string	true	"Goal ID"
//	@Success		200	{object}	utils.Response
//	@Failure		401	{object}	utils.Response	"No active session"
//	@Failure		404	{object}	utils.Response	"Goal not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/goals/{id} [delete]
func (h *GoalHandler) DeleteGoal(w http.ResponseWriter, r *http.Request) {
	userID, _ := session.UserID(r.Context())

	if err := h.goalService.Delete(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		apierror.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Goal deleted"})
}

// Deposit godoc
//
//	@Summary		Add money to a goal
//	@Description	The goal is capped at its target; the full amount counts towards total savings and points.
//	@Tags			Goals
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Goal ID"
//	@Param			request	body		dto.DepositRequestDTO	true	"Deposit"
//	@Success		200		{object}	dto.GoalResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid amount"
//	@Failure		401		{object}	utils.Response	"No active session"
//	@Failure		404		{object}	utils.Response	"Goal not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/goals/{id}/deposit [post]
func (h *GoalHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	userID, _ := session.UserID(r.Context())

	var req dto.DepositRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := dto.Validate(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Amount must be positive")
		return
	}
	goal, err := h.goalService.Deposit(r.Context(), userID, chi.URLParam(r, "id"), req.Amount)
	if err != nil {
		apierror.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewGoalResponse(goal, h.now()))
}
