package storage

import (
	"context"
	"testing"
	"time"

	"github.com/GlebRadaev/savesmart/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tripGoal() domain.NewSavingsGoal {
	return domain.NewSavingsGoal{
		Name:    "Trip",
		Target:  decimal.NewFromInt(500),
		DueDate: domain.NewDate(2024, time.December, 31),
	}
}

func TestManager_CreateSavingsGoal_RoundTrip(t *testing.T) {
	m, _ := NewTestManager(t)
	ctx := context.Background()

	in := domain.NewSavingsGoal{
		Name:    "Laptop",
		Target:  decimal.RequireFromString("1250.50"),
		Current: decimal.NewFromInt(50),
		DueDate: domain.NewDate(2025, time.June, 1),
		Icon:    "Laptop",
		Color:   "bg-indigo-500",
	}
	goal, err := m.CreateSavingsGoal(ctx, in, "U1")
	require.NoError(t, err)

	goals, err := m.GetSavingsGoalsByUserID(ctx, "U1")
	require.NoError(t, err)
	require.Len(t, goals, 1)

	got := goals[0]
	assert.Equal(t, goal.ID, got.ID)
	assert.Equal(t, "U1", got.UserID)
	assert.Equal(t, in.Name, got.Name)
	assert.True(t, in.Target.Equal(got.Target))
	assert.True(t, in.Current.Equal(got.Current))
	assert.Equal(t, in.DueDate, got.DueDate)
	assert.Equal(t, in.Icon, got.Icon)
	assert.Equal(t, in.Color, got.Color)
	assert.True(t, goal.CreatedAt.Equal(got.CreatedAt))
}

func TestManager_CreateSavingsGoal_Defaults(t *testing.T) {
	m, _ := NewTestManager(t)

	goal, err := m.CreateSavingsGoal(context.Background(), tripGoal(), "U1")
	require.NoError(t, err)

	assert.True(t, goal.Current.IsZero())
	assert.Equal(t, "Target", goal.Icon)
	assert.Equal(t, "bg-blue-500", goal.Color)
}

func TestManager_CreateSavingsGoal_ClampsCurrent(t *testing.T) {
	tests := []struct {
		name    string
		current decimal.Decimal
		want    decimal.Decimal
	}{
		{"Above target", decimal.NewFromInt(900), decimal.NewFromInt(500)},
		{"Negative", decimal.NewFromInt(-10), decimal.Zero},
		{"Within range", decimal.NewFromInt(20), decimal.NewFromInt(20)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := NewTestManager(t)
			in := tripGoal()
			in.Current = tt.current

			goal, err := m.CreateSavingsGoal(context.Background(), in, "U1")
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(goal.Current), "got %s", goal.Current)
		})
	}
}

func TestManager_CreateSavingsGoal_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.NewSavingsGoal)
		userID string
	}{
		{"Missing name", func(g *domain.NewSavingsGoal) { g.Name = "" }, "U1"},
		{"Zero target", func(g *domain.NewSavingsGoal) { g.Target = decimal.Zero }, "U1"},
		{"Negative target", func(g *domain.NewSavingsGoal) { g.Target = decimal.NewFromInt(-1) }, "U1"},
		{"Missing due date", func(g *domain.NewSavingsGoal) { g.DueDate = domain.Date{} }, "U1"},
		{"Missing owner", func(g *domain.NewSavingsGoal) {}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := NewTestManager(t)
			in := tripGoal()
			tt.mutate(&in)

			_, err := m.CreateSavingsGoal(context.Background(), in, tt.userID)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestManager_GetSavingsGoalsByUserID_InsertionOrder(t *testing.T) {
	m, _ := NewTestManager(t)
	ctx := context.Background()

	names := []string{"Trip", "Car", "Emergency"}
	for _, name := range names {
		in := tripGoal()
		in.Name = name
		_, err := m.CreateSavingsGoal(ctx, in, "U1")
		require.NoError(t, err)

		other := tripGoal()
		other.Name = name + " (other)"
		_, err = m.CreateSavingsGoal(ctx, other, "U2")
		require.NoError(t, err)
	}

	goals, err := m.GetSavingsGoalsByUserID(ctx, "U1")
	require.NoError(t, err)
	require.Len(t, goals, 3)
	for i, goal := range goals {
		assert.Equal(t, names[i], goal.Name)
		assert.Equal(t, "U1", goal.UserID)
	}

	none, err := m.GetSavingsGoalsByUserID(ctx, "U3")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestManager_UpdateSavingsGoal_EmptyUpdateIsIdempotent(t *testing.T) {
	m, store := NewTestManager(t)
	ctx := context.Background()

	in := tripGoal()
	in.Current = decimal.NewFromInt(120)
	goal, err := m.CreateSavingsGoal(ctx, in, "U1")
	require.NoError(t, err)
	before, _, _ := store.Get(ctx, GoalsKey)

	updated, err := m.UpdateSavingsGoal(ctx, goal.ID, domain.SavingsGoalUpdate{})
	require.NoError(t, err)

	after, _, _ := store.Get(ctx, GoalsKey)
	assert.JSONEq(t, before, after)
	assert.Equal(t, goal.Name, updated.Name)
	assert.True(t, goal.Current.Equal(updated.Current))
	assert.True(t, goal.Target.Equal(updated.Target))
}

func TestManager_UpdateSavingsGoal_Clamping(t *testing.T) {
	tests := []struct {
		name        string
		upd         func() domain.SavingsGoalUpdate
		wantCurrent decimal.Decimal
		wantTarget  decimal.Decimal
	}{
		{
			name: "Deposit above target is clamped",
			upd: func() domain.SavingsGoalUpdate {
				current := decimal.NewFromInt(600)
				return domain.SavingsGoalUpdate{Current: &current}
			},
			wantCurrent: decimal.NewFromInt(500),
			wantTarget:  decimal.NewFromInt(500),
		},
		{
			name: "Raising the target leaves current alone",
			upd: func() domain.SavingsGoalUpdate {
				target := decimal.NewFromInt(1000)
				return domain.SavingsGoalUpdate{Target: &target}
			},
			wantCurrent: decimal.NewFromInt(200),
			wantTarget:  decimal.NewFromInt(1000),
		},
		{
			name: "Lowering the target below current clamps current down",
			upd: func() domain.SavingsGoalUpdate {
				target := decimal.NewFromInt(150)
				return domain.SavingsGoalUpdate{Target: &target}
			},
			wantCurrent: decimal.NewFromInt(150),
			wantTarget:  decimal.NewFromInt(150),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := NewTestManager(t)
			ctx := context.Background()
			in := tripGoal()
			in.Current = decimal.NewFromInt(200)
			goal, err := m.CreateSavingsGoal(ctx, in, "U1")
			require.NoError(t, err)

			updated, err := m.UpdateSavingsGoal(ctx, goal.ID, tt.upd())
			require.NoError(t, err)
			assert.True(t, tt.wantCurrent.Equal(updated.Current), "current %s", updated.Current)
			assert.True(t, tt.wantTarget.Equal(updated.Target), "target %s", updated.Target)
			assert.False(t, updated.Current.GreaterThan(updated.Target))
		})
	}
}

func TestManager_UpdateSavingsGoal_Errors(t *testing.T) {
	m, store := NewTestManager(t)
	ctx := context.Background()

	goal, err := m.CreateSavingsGoal(ctx, tripGoal(), "U1")
	require.NoError(t, err)
	before, _, _ := store.Get(ctx, GoalsKey)

	name := "Renamed"
	_, err = m.UpdateSavingsGoal(ctx, "missing", domain.SavingsGoalUpdate{Name: &name})
	assert.ErrorIs(t, err, ErrGoalNotFound)
	assert.ErrorIs(t, err, ErrNotFound)

	zero := decimal.Zero
	_, err = m.UpdateSavingsGoal(ctx, goal.ID, domain.SavingsGoalUpdate{Target: &zero})
	assert.ErrorIs(t, err, ErrInvalidInput)

	after, _, _ := store.Get(ctx, GoalsKey)
	assert.Equal(t, before, after)
}

func TestManager_DeleteSavingsGoal(t *testing.T) {
	m, _ := NewTestManager(t)
	ctx := context.Background()

	keep, err := m.CreateSavingsGoal(ctx, tripGoal(), "U1")
	require.NoError(t, err)
	drop, err := m.CreateSavingsGoal(ctx, tripGoal(), "U1")
	require.NoError(t, err)

	require.NoError(t, m.DeleteSavingsGoal(ctx, drop.ID))
	require.NoError(t, m.DeleteSavingsGoal(ctx, drop.ID), "second delete is a no-op")
	require.NoError(t, m.DeleteSavingsGoal(ctx, "never-existed"))

	goals, err := m.GetSavingsGoalsByUserID(ctx, "U1")
	require.NoError(t, err)
	require.Len(t, goals, 1)
	assert.Equal(t, keep.ID, goals[0].ID)

	gone, err := m.GetSavingsGoal(ctx, drop.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}
