package storage

import (
	"context"
	"fmt"

	"github.com/GlebRadaev/savesmart/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	defaultGoalIcon  = "Target"
	defaultGoalColor = "bg-blue-500"
)

func (m *Manager) loadGoals(ctx context.Context) (*records[domain.SavingsGoal], error) {
	items, _, err := readCollection[domain.SavingsGoal](ctx, m, GoalsKey)
	if err != nil {
		return nil, err
	}
	return newRecords(items, func(g domain.SavingsGoal) string { return g.ID }), nil
}

// clampCurrent keeps current within 0..target.
func clampCurrent(current, target decimal.Decimal) decimal.Decimal {
	if current.IsNegative() {
		return decimal.Zero
	}
	if current.GreaterThan(target) {
		return target
	}
	return current
}

func (m *Manager) CreateSavingsGoal(ctx context.Context, in domain.NewSavingsGoal, userID string) (*domain.SavingsGoal, error) {
	if err := m.validateStruct(in); err != nil {
		return nil, err
	}
	if !in.Target.IsPositive() {
		return nil, fmt.Errorf("%w: target must be positive", ErrInvalidInput)
	}
	if in.DueDate.IsZero() {
		return nil, fmt.Errorf("%w: due date is required", ErrInvalidInput)
	}
	if userID == "" {
		return nil, fmt.Errorf("%w: owner is required", ErrInvalidInput)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	goals, err := m.loadGoals(ctx)
	if err != nil {
		return nil, err
	}
	goal := domain.SavingsGoal{
		ID:        m.newID(),
		UserID:    userID,
		Name:      in.Name,
		Target:    in.Target,
		Current:   clampCurrent(in.Current, in.Target),
		DueDate:   in.DueDate,
		Icon:      in.Icon,
		Color:     in.Color,
		CreatedAt: m.now(),
	}
	if goal.Icon == "" {
		goal.Icon = defaultGoalIcon
	}
	if goal.Color == "" {
		goal.Color = defaultGoalColor
	}
	goals.put(goal)
	if _, err := writeCollection(ctx, m, GoalsKey, goals.items); err != nil {
		return nil, err
	}
	return &goal, nil
}

// GetSavingsGoalsByUserID returns the user's goals in the order they were created.
func (m *Manager) GetSavingsGoalsByUserID(ctx context.Context, userID string) ([]domain.SavingsGoal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	goals, err := m.loadGoals(ctx)
	if err != nil {
		return nil, err
	}
	return goals.filter(func(g domain.SavingsGoal) bool { return g.UserID == userID }), nil
}

func (m *Manager) GetSavingsGoal(ctx context.Context, id string) (*domain.SavingsGoal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	goals, err := m.loadGoals(ctx)
	if err != nil {
		return nil, err
	}
	goal, ok := goals.get(id)
	if !ok {
		return nil, nil
	}
	return &goal, nil
}

// UpdateSavingsGoal merges upd into the goal. Current is clamped to the resulting target.
func (m *Manager) UpdateSavingsGoal(ctx context.Context, id string, upd domain.SavingsGoalUpdate) (*domain.SavingsGoal, error) {
	if upd.Target != nil && !upd.Target.IsPositive() {
		return nil, fmt.Errorf("%w: target must be positive", ErrInvalidInput)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	goals, err := m.loadGoals(ctx)
	if err != nil {
		return nil, err
	}
	goal, ok := goals.get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrGoalNotFound, id)
	}
	upd.Apply(&goal)
	goal.Current = clampCurrent(goal.Current, goal.Target)
	goals.put(goal)
	if _, err := writeCollection(ctx, m, GoalsKey, goals.items); err != nil {
		return nil, err
	}
	return &goal, nil
}

// DeleteSavingsGoal removes the goal. Deleting an unknown id is not an error.
func (m *Manager) DeleteSavingsGoal(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	goals, err := m.loadGoals(ctx)
	if err != nil {
		return err
	}
	if !goals.remove(id) {
		return nil
	}
	_, err = writeCollection(ctx, m, GoalsKey, goals.items)
	return err
}
