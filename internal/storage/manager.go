package storage

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/GlebRadaev/savesmart/internal/domain"
	"github.com/GlebRadaev/savesmart/internal/kv"
	"github.com/GlebRadaev/savesmart/internal/uuid"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Manager is the access layer over the key-value store. Every operation is a read-modify-write
// of a single collection and runs under the manager lock.
type Manager struct {
	mu       sync.Mutex
	store    kv.Store
	policy   FailurePolicy
	newID    func() string
	clock    func() time.Time
	last     time.Time
	validate *validator.Validate
	// writes holds the outcome of the last write to each key.
	writes map[string]Result
}

type Option func(*Manager)

func WithFailurePolicy(policy FailurePolicy) Option {
	return func(m *Manager) {
		m.policy = policy
	}
}

func WithClock(clock func() time.Time) Option {
	return func(m *Manager) {
		m.clock = clock
	}
}

func WithIDGenerator(newID func() string) Option {
	return func(m *Manager) {
		m.newID = newID
	}
}

func New(store kv.Store, opts ...Option) *Manager {
	m := &Manager{
		store:    store,
		policy:   FailOpen,
		newID:    uuid.New,
		clock:    func() time.Time { return time.Now().UTC() },
		validate: validator.New(),
		writes:   make(map[string]Result, 4),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// now never returns a time earlier than one it already returned.
func (m *Manager) now() time.Time {
	t := m.clock()
	if t.Before(m.last) {
		t = m.last
	}
	m.last = t
	return t
}

func (m *Manager) validateStruct(s any) error {
	if err := m.validate.Struct(s); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return nil
}

func (m *Manager) loadUsers(ctx context.Context) (*records[domain.User], error) {
	items, _, err := readCollection[domain.User](ctx, m, UsersKey)
	if err != nil {
		return nil, err
	}
	return newRecords(items, func(u domain.User) string { return u.ID }), nil
}

func (m *Manager) CreateUser(ctx context.Context, in domain.NewUser) (*domain.User, error) {
	if err := m.validateStruct(in); err != nil {
		return nil, err
	}
	if in.TotalSavings.IsNegative() {
		return nil, fmt.Errorf("%w: total savings must not be negative", ErrInvalidInput)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	users, err := m.loadUsers(ctx)
	if err != nil {
		return nil, err
	}
	user := domain.User{
		ID:           m.newID(),
		Name:         in.Name,
		Email:        in.Email,
		TotalSavings: in.TotalSavings,
		Points:       in.Points,
		Level:        in.Level,
		Badges:       append([]string{}, in.Badges...),
		Streak:       in.Streak,
		JoinDate:     m.now(),
	}
	users.put(user)
	if _, err := writeCollection(ctx, m, UsersKey, users.items); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByEmail returns the first user whose email matches exactly, or nil.
func (m *Manager) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	users, err := m.loadUsers(ctx)
	if err != nil {
		return nil, err
	}
	for _, user := range users.items {
		if user.Email == email {
			return &user, nil
		}
	}
	return nil, nil
}

func (m *Manager) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.userByID(ctx, id)
}

func (m *Manager) userByID(ctx context.Context, id string) (*domain.User, error) {
	users, err := m.loadUsers(ctx)
	if err != nil {
		return nil, err
	}
	user, ok := users.get(id)
	if !ok {
		return nil, nil
	}
	return &user, nil
}

// GetCurrentUser resolves the stored current-user pointer. It returns nil when no pointer is set
// or the pointer names a user that does not exist.
func (m *Manager) GetCurrentUser(ctx context.Context) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id, ok, err := m.store.Get(ctx, CurrentUserKey)
	if err != nil {
		zap.L().Error("failed to read current user", zap.Error(err))
		return nil, fmt.Errorf("%w: %s: %w", ErrStoreUnavailable, CurrentUserKey, err)
	}
	if !ok || id == "" {
		return nil, nil
	}
	return m.userByID(ctx, id)
}

func (m *Manager) SetCurrentUser(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.writePointer(ctx, m.store.Set(ctx, CurrentUserKey, id))
}

// Logout clears the current-user pointer. No user data is removed.
func (m *Manager) Logout(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.writePointer(ctx, m.store.Delete(ctx, CurrentUserKey))
}

func (m *Manager) writePointer(_ context.Context, err error) error {
	if err == nil {
		m.writes[CurrentUserKey] = ResultOK
		return nil
	}
	m.writes[CurrentUserKey] = ResultWriteFailed
	zap.L().Error("failed to save current user", zap.Error(err))
	if m.policy == FailClosed {
		return fmt.Errorf("%w: %s: %w", ErrWriteFailed, CurrentUserKey, err)
	}
	return nil
}

func (m *Manager) UpdateUser(ctx context.Context, id string, upd domain.UserUpdate) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	users, err := m.loadUsers(ctx)
	if err != nil {
		return nil, err
	}
	user, ok := users.get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUserNotFound, id)
	}
	upd.Apply(&user)
	users.put(user)
	if _, err := writeCollection(ctx, m, UsersKey, users.items); err != nil {
		return nil, err
	}
	return &user, nil
}

// CollectionStatus reports how each persisted key currently reads. A key whose last write was
// rejected reports ResultWriteFailed until a later write succeeds.
func (m *Manager) CollectionStatus(ctx context.Context) map[string]Result {
	m.mu.Lock()
	defer m.mu.Unlock()

	status := make(map[string]Result, 4)
	_, status[UsersKey], _ = inspectCollection[domain.User](ctx, m, UsersKey)
	_, status[GoalsKey], _ = inspectCollection[domain.SavingsGoal](ctx, m, GoalsKey)
	_, status[ActivitiesKey], _ = inspectCollection[domain.Activity](ctx, m, ActivitiesKey)

	_, ok, err := m.store.Get(ctx, CurrentUserKey)
	switch {
	case err != nil:
		status[CurrentUserKey] = ResultUnavailable
	case !ok:
		status[CurrentUserKey] = ResultEmpty
	default:
		status[CurrentUserKey] = ResultOK
	}

	for key, res := range m.writes {
		if res == ResultWriteFailed {
			status[key] = res
		}
	}
	return status
}
