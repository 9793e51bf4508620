package gamification

//go:generate mockgen -source=gamification.go -destination=mock_gamification.go -package=gamification

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/savesmart/internal/domain"
	"github.com/GlebRadaev/savesmart/internal/dto"
	"github.com/GlebRadaev/savesmart/internal/handlers/apierror"
	"github.com/GlebRadaev/savesmart/pkg/session"
	"github.com/GlebRadaev/savesmart/pkg/utils"
)

type Service interface {
	Badges(ctx context.Context, userID string) ([]domain.Badge, error)
	Challenges(ctx context.Context) []domain.Challenge
	Stats(ctx context.Context, userID string) (*domain.Stats, error)
	Leaderboard(ctx context.Context, userID string) ([]domain.LeaderboardEntry, error)
}

type GamificationHandler struct {
	gamificationService Service
}

func New(gamificationService Service) *GamificationHandler {
	return &GamificationHandler{
		gamificationService: gamificationService,
	}
}

// GetBadges godoc
//
//	@Summary		Badge catalog
//	@Description	All badges with the ones the logged-in user has earned marked
//	@Tags			Gamification
//	@Produce		json
//	@Success		200	{array}		dto.BadgeDTO
//	@Failure		401	{object}	utils.Response	"No active session"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/gamification/badges [get]
func (h *GamificationHandler) GetBadges(w http.ResponseWriter, r *http.Request) {
	userID, _ := session.UserID(r.Context())

	badges, err := h.gamificationService.Badges(r.Context(), userID)
	if err != nil {
		apierror.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewBadgesResponse(badges))
}

// GetChallenges godoc
//
//	@Summary		Current challenges
//	@Tags			Gamification
//	@Produce		json
//	@Success		200	{array}		dto.ChallengeDTO
//	@Failure		401	{object}	utils.Response	"No active session"
//	@Router			/api/gamification/challenges [get]
func (h *GamificationHandler) GetChallenges(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, dto.NewChallengesResponse(h.gamificationService.Challenges(r.Context())))
}

// GetStats godoc
//
//	@Summary		Points, level and rank
//	@Tags			Gamification
//	@Produce		json
//	@Success		200	{object}	dto.StatsResponseDTO
//	@Failure		401	{object}	utils.Response	"No active session"
//	@Failure		404	{object}	utils.Response	"User not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/gamification/stats [get]
func (h *GamificationHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	userID, _ := session.UserID(r.Context())

	stats, err := h.gamificationService.Stats(r.Context(), userID)
	if err != nil {
		apierror.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.StatsResponseDTO(*stats))
}

// GetLeaderboard godoc
//
//	@Summary		Community leaderboard
//	@Tags			Gamification
//	@Produce		json
//	@Success		200	{array}		dto.LeaderboardEntryDTO
//	@Failure		401	{object}	utils.Response	"No active session"
//	@Failure		404	{object}	utils.Response	"User not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/gamification/leaderboard [get]
func (h *GamificationHandler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	userID, _ := session.UserID(r.Context())

	entries, err := h.gamificationService.Leaderboard(r.Context(), userID)
	if err != nil {
		apierror.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewLeaderboardResponse(entries))
}
