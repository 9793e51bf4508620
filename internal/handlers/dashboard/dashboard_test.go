package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/GlebRadaev/savesmart/internal/domain"
	"github.com/GlebRadaev/savesmart/internal/dto"
	"github.com/GlebRadaev/savesmart/internal/storage"
	"github.com/GlebRadaev/savesmart/pkg/session"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*DashboardHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	handler.now = func() time.Time { return time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC) }
	defer ctrl.Finish()
	return handler, service
}

func request(path string) *http.Request {
	return httptest.NewRequest(http.MethodGet, path, nil).WithContext(session.WithUserID(context.Background(), "U1"))
}

func TestGetDashboardHandler(t *testing.T) {
	handler, service := NewMock(t)
	amount := decimal.NewFromInt(600)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Overview",
			prepareMock: func() {
				service.EXPECT().Dashboard(gomock.Any(), "U1").Return(&domain.Dashboard{
					User: domain.User{ID: "U1", Name: "Ana", Points: 160, Level: 1},
					Goals: []domain.SavingsGoal{{
						ID:      "G1",
						Name:    "Trip",
						Target:  decimal.NewFromInt(500),
						Current: decimal.NewFromInt(500),
						DueDate: domain.NewDate(2024, time.December, 31),
					}},
					Activities: []domain.Activity{{ID: "A1", Type: domain.ActivitySavings, Amount: &amount, Description: "Added $600 to Trip"}},
					Challenge:  &domain.Challenge{ID: "1", Title: "Save $50 This Week"},
					GoalsSaved: decimal.NewFromInt(500),
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Unknown user",
			prepareMock: func() {
				service.EXPECT().Dashboard(gomock.Any(), "U1").Return(nil, storage.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			rr := httptest.NewRecorder()
			handler.GetDashboard(rr, request("/api/dashboard"))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedCode != http.StatusOK {
				return
			}
			var body dto.DashboardResponseDTO
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
			assert.Equal(t, "Ana", body.User.Name)
			require.Len(t, body.Goals, 1)
			assert.Equal(t, 100, body.Goals[0].Progress)
			require.Len(t, body.Activities, 1)
			assert.Equal(t, "Added $600 to Trip", body.Activities[0].Description)
			require.NotNil(t, body.Challenge)
			assert.Equal(t, "Save $50 This Week", body.Challenge.Title)
		})
	}
}

func TestGetActivitiesHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().Activities(gomock.Any(), "U1").Return([]domain.Activity{}, nil)
	rr := httptest.NewRecorder()
	handler.GetActivities(rr, request("/api/activities"))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())

	service.EXPECT().Activities(gomock.Any(), "U1").Return(nil, errors.New("store down"))
	rr = httptest.NewRecorder()
	handler.GetActivities(rr, request("/api/activities"))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
