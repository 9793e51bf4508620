package storage

import (
	"context"
	"fmt"
	"slices"

	"github.com/GlebRadaev/savesmart/internal/domain"
)

// RecentActivityLimit caps the activity feed.
const RecentActivityLimit = 10

func (m *Manager) CreateActivity(ctx context.Context, in domain.NewActivity) (*domain.Activity, error) {
	if err := m.validateStruct(in); err != nil {
		return nil, err
	}
	switch {
	case in.Type == domain.ActivitySavings && (in.Amount == nil || !in.Amount.IsPositive()):
		return nil, fmt.Errorf("%w: savings activity needs a positive amount", ErrInvalidInput)
	case in.Type != domain.ActivitySavings && in.Amount != nil:
		return nil, fmt.Errorf("%w: only savings activities carry an amount", ErrInvalidInput)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	items, _, err := readCollection[domain.Activity](ctx, m, ActivitiesKey)
	if err != nil {
		return nil, err
	}
	activity := domain.Activity{
		ID:          m.newID(),
		UserID:      in.UserID,
		Type:        in.Type,
		Description: in.Description,
		Timestamp:   m.now(),
	}
	if in.Amount != nil {
		amount := *in.Amount
		activity.Amount = &amount
	}
	items = append(items, activity)
	if _, err := writeCollection(ctx, m, ActivitiesKey, items); err != nil {
		return nil, err
	}
	return &activity, nil
}

// GetActivitiesByUserID returns the user's most recent activities, newest first.
func (m *Manager) GetActivitiesByUserID(ctx context.Context, userID string) ([]domain.Activity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	items, _, err := readCollection[domain.Activity](ctx, m, ActivitiesKey)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Activity, 0)
	for _, a := range items {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	slices.SortStableFunc(out, func(a, b domain.Activity) int {
		return b.Timestamp.Compare(a.Timestamp)
	})
	if len(out) > RecentActivityLimit {
		out = out[:RecentActivityLimit]
	}
	return out, nil
}
