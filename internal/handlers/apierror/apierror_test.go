package apierror

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GlebRadaev/savesmart/internal/service/goalservice"
	"github.com/GlebRadaev/savesmart/internal/service/userservice"
	"github.com/GlebRadaev/savesmart/internal/storage"
	"github.com/stretchr/testify/assert"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"Unknown user", fmt.Errorf("%w: U1", storage.ErrUserNotFound), http.StatusNotFound, "User not found"},
		{"Unknown goal", fmt.Errorf("%w: G1", storage.ErrGoalNotFound), http.StatusNotFound, "Goal not found"},
		{"Duplicate email", userservice.ErrEmailTaken, http.StatusConflict, "email already registered"},
		{"Password mismatch", userservice.ErrPasswordMismatch, http.StatusBadRequest, "passwords do not match"},
		{"Bad amount", goalservice.ErrInvalidAmount, http.StatusBadRequest, "amount must be positive"},
		{"Invalid input", fmt.Errorf("%w: target must be positive", storage.ErrInvalidInput), http.StatusBadRequest, "invalid input: target must be positive"},
		{"Write failure", storage.ErrWriteFailed, http.StatusInternalServerError, "Internal server error"},
		{"Store unreachable", fmt.Errorf("%w: savesmart_goals: conn closed", storage.ErrStoreUnavailable), http.StatusServiceUnavailable, "Storage unavailable"},
		{"Anything else", errors.New("boom"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, message := Status(tt.err)
			assert.Equal(t, tt.code, code)
			assert.Equal(t, tt.message, message)
		})
	}
}

func TestRespond(t *testing.T) {
	rr := httptest.NewRecorder()
	Respond(rr, storage.ErrGoalNotFound)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"message":"Goal not found"}`, rr.Body.String())
}
