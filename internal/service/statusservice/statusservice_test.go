package statusservice

import (
	"context"
	"testing"

	"github.com/GlebRadaev/savesmart/internal/storage"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		name        string
		collections map[string]storage.Result
		healthy     bool
	}{
		{
			name: "Fresh store",
			collections: map[string]storage.Result{
				storage.UsersKey:       storage.ResultEmpty,
				storage.GoalsKey:       storage.ResultEmpty,
				storage.ActivitiesKey:  storage.ResultEmpty,
				storage.CurrentUserKey: storage.ResultEmpty,
			},
			healthy: true,
		},
		{
			name: "Corrupt goals",
			collections: map[string]storage.Result{
				storage.UsersKey:      storage.ResultOK,
				storage.GoalsKey:      storage.ResultCorrupt,
				storage.ActivitiesKey: storage.ResultOK,
			},
			healthy: false,
		},
		{
			name: "Rejected write",
			collections: map[string]storage.Result{
				storage.UsersKey:       storage.ResultWriteFailed,
				storage.GoalsKey:       storage.ResultEmpty,
				storage.ActivitiesKey:  storage.ResultEmpty,
				storage.CurrentUserKey: storage.ResultOK,
			},
			healthy: false,
		},
		{
			name: "Store unreachable",
			collections: map[string]storage.Result{
				storage.UsersKey: storage.ResultUnavailable,
			},
			healthy: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := NewMockRepo(ctrl)
			repo.EXPECT().CollectionStatus(gomock.Any()).Return(tt.collections)

			report := New(repo).Status(context.Background())
			assert.Equal(t, tt.healthy, report.Healthy)
			assert.Equal(t, tt.collections, report.Collections)
		})
	}
}
