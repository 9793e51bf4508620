package status

//go:generate mockgen -source=status.go -destination=mock_status.go -package=status

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/savesmart/internal/dto"
	"github.com/GlebRadaev/savesmart/internal/service/statusservice"
	"github.com/GlebRadaev/savesmart/pkg/utils"
)

type Service interface {
	Status(ctx context.Context) statusservice.Report
}

type StatusHandler struct {
	statusService Service
}

func New(statusService Service) *StatusHandler {
	return &StatusHandler{
		statusService: statusService,
	}
}

// GetStatus godoc
//
//	@Summary		Storage health
//	@Description	How each persisted collection reads, plus keys whose last write was rejected
//	@Tags			Status
//	@Produce		json
//	@Success		200	{object}	dto.StatusResponseDTO
//	@Failure		503	{object}	dto.StatusResponseDTO	"A collection is unreadable or was not saved"
//	@Router			/api/status [get]
func (h *StatusHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	report := h.statusService.Status(r.Context())

	resp := dto.StatusResponseDTO{
		Healthy:     report.Healthy,
		Collections: make(map[string]string, len(report.Collections)),
	}
	for key, res := range report.Collections {
		resp.Collections[key] = res.String()
	}
	code := http.StatusOK
	if !report.Healthy {
		code = http.StatusServiceUnavailable
	}
	utils.RespondWithJSON(w, code, resp)
}
