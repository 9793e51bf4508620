package apierror

import (
	"errors"
	"net/http"

	"github.com/GlebRadaev/savesmart/internal/service/goalservice"
	"github.com/GlebRadaev/savesmart/internal/service/userservice"
	"github.com/GlebRadaev/savesmart/internal/storage"
	"github.com/GlebRadaev/savesmart/pkg/utils"
)

// Status maps a service error to the HTTP status and message returned to the client.
func Status(err error) (int, string) {
	switch {
	case errors.Is(err, storage.ErrUserNotFound):
		return http.StatusNotFound, "User not found"
	case errors.Is(err, storage.ErrGoalNotFound):
		return http.StatusNotFound, "Goal not found"
	case errors.Is(err, storage.ErrNotFound):
		return http.StatusNotFound, "Not found"
	case errors.Is(err, userservice.ErrEmailTaken):
		return http.StatusConflict, err.Error()
	case errors.Is(err, userservice.ErrPasswordMismatch),
		errors.Is(err, goalservice.ErrInvalidAmount),
		errors.Is(err, storage.ErrInvalidInput):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, storage.ErrStoreUnavailable):
		return http.StatusServiceUnavailable, "Storage unavailable"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

func Respond(w http.ResponseWriter, err error) {
	code, message := Status(err)
	utils.RespondWithError(w, code, message)
}
