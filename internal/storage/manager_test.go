package storage

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/GlebRadaev/savesmart/internal/domain"
	"github.com/GlebRadaev/savesmart/internal/kv"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)

// stepClock advances one second per call.
func stepClock() func() time.Time {
	t := baseTime
	return func() time.Time {
		t = t.Add(time.Second)
		return t
	}
}

func seqIDs(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s%d", prefix, n)
	}
}

type failingStore struct {
	kv.Store
	getErr error
	setErr error
}

func (s *failingStore) Get(ctx context.Context, key string) (string, bool, error) {
	if s.getErr != nil {
		return "", false, s.getErr
	}
	return s.Store.Get(ctx, key)
}

func (s *failingStore) Set(ctx context.Context, key, value string) error {
	if s.setErr != nil {
		return s.setErr
	}
	return s.Store.Set(ctx, key, value)
}

func (s *failingStore) Delete(ctx context.Context, key string) error {
	if s.setErr != nil {
		return s.setErr
	}
	return s.Store.Delete(ctx, key)
}

func NewTestManager(t *testing.T, opts ...Option) (*Manager, *kv.MemoryStore) {
	t.Helper()
	store := kv.NewMemoryStore()
	opts = append([]Option{WithClock(stepClock())}, opts...)
	return New(store, opts...), store
}

func newUser(name, email string) domain.NewUser {
	return domain.NewUser{
		Name:   name,
		Email:  email,
		Points: 100,
		Level:  1,
	}
}

func TestManager_CreateUser(t *testing.T) {
	m, _ := NewTestManager(t, WithIDGenerator(seqIDs("U")))
	ctx := context.Background()

	user, err := m.CreateUser(ctx, newUser("Ana", "a@x.com"))
	require.NoError(t, err)

	assert.Equal(t, "U1", user.ID)
	assert.Equal(t, "Ana", user.Name)
	assert.Equal(t, "a@x.com", user.Email)
	assert.Equal(t, 100, user.Points)
	assert.Equal(t, 1, user.Level)
	assert.Equal(t, []string{}, user.Badges)
	assert.True(t, user.TotalSavings.IsZero())
	assert.Equal(t, baseTime.Add(time.Second), user.JoinDate)

	stored, err := m.GetUserByID(ctx, "U1")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, user.Email, stored.Email)
	assert.True(t, user.JoinDate.Equal(stored.JoinDate))
}

func TestManager_CreateUser_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input domain.NewUser
	}{
		{"Missing name", domain.NewUser{Email: "a@x.com", Level: 1}},
		{"Bad email", domain.NewUser{Name: "Ana", Email: "not-an-email", Level: 1}},
		{"Negative points", domain.NewUser{Name: "Ana", Email: "a@x.com", Points: -1, Level: 1}},
		{"Level below one", domain.NewUser{Name: "Ana", Email: "a@x.com", Level: 0}},
		{"Negative savings", domain.NewUser{Name: "Ana", Email: "a@x.com", Level: 1, TotalSavings: decimal.NewFromInt(-5)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, store := NewTestManager(t)
			_, err := m.CreateUser(context.Background(), tt.input)
			assert.ErrorIs(t, err, ErrInvalidInput)

			_, ok, _ := store.Get(context.Background(), UsersKey)
			assert.False(t, ok)
		})
	}
}

func TestManager_CreateUser_DoesNotCheckEmailUniqueness(t *testing.T) {
	m, _ := NewTestManager(t)
	ctx := context.Background()

	first, err := m.CreateUser(ctx, newUser("Ana", "a@x.com"))
	require.NoError(t, err)
	second, err := m.CreateUser(ctx, newUser("Ana Two", "a@x.com"))
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	found, err := m.GetUserByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, first.ID, found.ID)
}

func TestManager_UniqueIDsAndMonotonicTimestamps(t *testing.T) {
	backwards := baseTime.Add(time.Hour)
	clock := func() time.Time {
		backwards = backwards.Add(-time.Minute)
		return backwards
	}
	m := New(kv.NewMemoryStore(), WithClock(clock))
	ctx := context.Background()

	seen := make(map[string]struct{})
	var last time.Time
	for i := 0; i < 20; i++ {
		user, err := m.CreateUser(ctx, newUser("User", fmt.Sprintf("u%d@x.com", i)))
		require.NoError(t, err)

		_, dup := seen[user.ID]
		assert.False(t, dup)
		seen[user.ID] = struct{}{}

		assert.False(t, user.JoinDate.Before(last))
		last = user.JoinDate
	}
}

func TestManager_GetUserByEmail(t *testing.T) {
	m, _ := NewTestManager(t)
	ctx := context.Background()

	created, err := m.CreateUser(ctx, newUser("Ana", "a@x.com"))
	require.NoError(t, err)

	tests := []struct {
		name   string
		email  string
		wantID string
	}{
		{"Exact match", "a@x.com", created.ID},
		{"Case sensitive", "A@X.com", ""},
		{"Unknown", "b@x.com", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := m.GetUserByEmail(ctx, tt.email)
			require.NoError(t, err)
			if tt.wantID == "" {
				assert.Nil(t, user)
				return
			}
			require.NotNil(t, user)
			assert.Equal(t, tt.wantID, user.ID)
		})
	}
}

func TestManager_CurrentUser(t *testing.T) {
	m, store := NewTestManager(t)
	ctx := context.Background()

	current, err := m.GetCurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, current, "no pointer set")

	user, err := m.CreateUser(ctx, newUser("Ana", "a@x.com"))
	require.NoError(t, err)
	require.NoError(t, m.SetCurrentUser(ctx, user.ID))

	current, err = m.GetCurrentUser(ctx)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, user.ID, current.ID)

	require.NoError(t, m.SetCurrentUser(ctx, "dangling"))
	current, err = m.GetCurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, current, "pointer does not resolve")

	require.NoError(t, m.Logout(ctx))
	_, ok, _ := store.Get(ctx, CurrentUserKey)
	assert.False(t, ok)

	stillThere, err := m.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.NotNil(t, stillThere, "logout keeps user data")
}

func TestManager_UpdateUser(t *testing.T) {
	m, _ := NewTestManager(t)
	ctx := context.Background()

	user, err := m.CreateUser(ctx, newUser("Ana", "a@x.com"))
	require.NoError(t, err)

	points := 160
	savings := decimal.NewFromInt(600)
	updated, err := m.UpdateUser(ctx, user.ID, domain.UserUpdate{
		Points:       &points,
		TotalSavings: &savings,
		Badges:       []string{domain.BadgeFirstSavings},
	})
	require.NoError(t, err)

	assert.Equal(t, 160, updated.Points)
	assert.True(t, savings.Equal(updated.TotalSavings))
	assert.Equal(t, []string{domain.BadgeFirstSavings}, updated.Badges)
	assert.Equal(t, "Ana", updated.Name)
	assert.Equal(t, user.ID, updated.ID)
	assert.True(t, user.JoinDate.Equal(updated.JoinDate))

	stored, err := m.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 160, stored.Points)
}

func TestManager_UpdateUser_NotFound(t *testing.T) {
	m, store := NewTestManager(t)
	ctx := context.Background()

	_, err := m.CreateUser(ctx, newUser("Ana", "a@x.com"))
	require.NoError(t, err)
	before, _, _ := store.Get(ctx, UsersKey)

	name := "Ghost"
	_, err = m.UpdateUser(ctx, "nonexistent-id", domain.UserUpdate{Name: &name})
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.ErrorIs(t, err, ErrNotFound)

	after, _, _ := store.Get(ctx, UsersKey)
	assert.Equal(t, before, after)
}

func TestManager_CorruptCollection(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		policy    FailurePolicy
		expectErr error
	}{
		{"Garbage fails open", "{not json", FailOpen, nil},
		{"Wrong shape fails open", `{"version":1,"items":{"a":1}}`, FailOpen, nil},
		{"Future version fails open", `{"version":99,"items":[]}`, FailOpen, nil},
		{"Garbage fails closed", "{not json", FailClosed, ErrCorruptCollection},
		{"Future version fails closed", `{"version":99,"items":[]}`, FailClosed, ErrCorruptCollection},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, store := NewTestManager(t, WithFailurePolicy(tt.policy))
			ctx := context.Background()
			require.NoError(t, store.Set(ctx, UsersKey, tt.raw))

			user, err := m.GetUserByEmail(ctx, "a@x.com")
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				return
			}
			assert.NoError(t, err)
			assert.Nil(t, user)
			assert.Equal(t, ResultCorrupt, m.CollectionStatus(ctx)[UsersKey])
		})
	}
}

func TestManager_LegacyArrayIsMigrated(t *testing.T) {
	m, store := NewTestManager(t)
	ctx := context.Background()

	legacy := `[{"id":"1700000000000abc","name":"Ana","email":"a@x.com","totalSavings":250,` +
		`"points":125,"level":1,"badges":["first_savings"],"streak":2,"joinDate":"2024-01-05T10:00:00.000Z"}]`
	require.NoError(t, store.Set(ctx, UsersKey, legacy))

	user, err := m.GetUserByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "1700000000000abc", user.ID)
	assert.True(t, decimal.NewFromInt(250).Equal(user.TotalSavings))
	assert.Equal(t, []string{domain.BadgeFirstSavings}, user.Badges)

	streak := 3
	_, err = m.UpdateUser(ctx, user.ID, domain.UserUpdate{Streak: &streak})
	require.NoError(t, err)

	raw, _, _ := store.Get(ctx, UsersKey)
	assert.Contains(t, raw, `"version":1`)
	assert.Equal(t, ResultOK, m.CollectionStatus(ctx)[UsersKey])
}

func TestManager_WriteFailure(t *testing.T) {
	quotaErr := kv.ErrQuotaExceeded

	t.Run("Fail open swallows the error", func(t *testing.T) {
		store := &failingStore{Store: kv.NewMemoryStore(), setErr: quotaErr}
		m := New(store, WithClock(stepClock()))

		user, err := m.CreateUser(context.Background(), newUser("Ana", "a@x.com"))
		assert.NoError(t, err)
		assert.NotNil(t, user)

		found, err := m.GetUserByEmail(context.Background(), "a@x.com")
		assert.NoError(t, err)
		assert.Nil(t, found, "the write never reached the store")
	})

	t.Run("Fail closed reports the error", func(t *testing.T) {
		store := &failingStore{Store: kv.NewMemoryStore(), setErr: quotaErr}
		m := New(store, WithClock(stepClock()), WithFailurePolicy(FailClosed))

		_, err := m.CreateUser(context.Background(), newUser("Ana", "a@x.com"))
		assert.ErrorIs(t, err, ErrWriteFailed)
		assert.ErrorIs(t, err, kv.ErrQuotaExceeded)

		assert.ErrorIs(t, m.SetCurrentUser(context.Background(), "U1"), ErrWriteFailed)
	})

	t.Run("Quota keeps the previous value", func(t *testing.T) {
		store := kv.NewMemoryStore(kv.WithQuota(300))
		m := New(store, WithClock(stepClock()))
		ctx := context.Background()

		_, err := m.CreateUser(ctx, newUser("Ana", "a@x.com"))
		require.NoError(t, err)
		before, _, _ := store.Get(ctx, UsersKey)

		_, err = m.CreateUser(ctx, newUser("Bruno", "b@x.com"))
		require.NoError(t, err)

		after, _, _ := store.Get(ctx, UsersKey)
		assert.Equal(t, before, after)
		bruno, err := m.GetUserByEmail(ctx, "b@x.com")
		require.NoError(t, err)
		assert.Nil(t, bruno)
	})
}

func TestManager_ReadFailure(t *testing.T) {
	storeErr := errors.New("connection refused")

	for _, policy := range []FailurePolicy{FailOpen, FailClosed} {
		m := New(&failingStore{Store: kv.NewMemoryStore(), getErr: storeErr}, WithFailurePolicy(policy))
		ctx := context.Background()

		_, err := m.GetCurrentUser(ctx)
		assert.ErrorIs(t, err, ErrStoreUnavailable)

		_, err = m.GetSavingsGoalsByUserID(ctx, "U1")
		assert.ErrorIs(t, err, storeErr)
		assert.ErrorIs(t, err, ErrStoreUnavailable)
		assert.NotErrorIs(t, err, ErrCorruptCollection)

		assert.Equal(t, ResultUnavailable, m.CollectionStatus(ctx)[GoalsKey])
	}
}

// flakyStore fails the next failGets reads and then recovers.
type flakyStore struct {
	kv.Store
	failGets int
}

func (s *flakyStore) Get(ctx context.Context, key string) (string, bool, error) {
	if s.failGets > 0 {
		s.failGets--
		return "", false, errors.New("connection reset by peer")
	}
	return s.Store.Get(ctx, key)
}

func TestManager_TransientReadKeepsCollection(t *testing.T) {
	store := &flakyStore{Store: kv.NewMemoryStore()}
	m := New(store, WithClock(stepClock()))
	ctx := context.Background()

	for _, email := range []string{"a@x.com", "b@x.com", "c@x.com"} {
		_, err := m.CreateUser(ctx, newUser("User", email))
		require.NoError(t, err)
	}
	goal, err := m.CreateSavingsGoal(ctx, domain.NewSavingsGoal{
		Name:    "Trip",
		Target:  decimal.NewFromInt(500),
		DueDate: domain.NewDate(2024, time.March, 31),
	}, "U1")
	require.NoError(t, err)

	store.failGets = 1
	_, err = m.CreateUser(ctx, newUser("Dana", "d@x.com"))
	assert.ErrorIs(t, err, ErrStoreUnavailable)

	store.failGets = 1
	assert.ErrorIs(t, m.DeleteSavingsGoal(ctx, "missing"), ErrStoreUnavailable)

	for _, email := range []string{"a@x.com", "b@x.com", "c@x.com"} {
		user, err := m.GetUserByEmail(ctx, email)
		require.NoError(t, err)
		assert.NotNil(t, user, email)
	}
	dana, err := m.GetUserByEmail(ctx, "d@x.com")
	require.NoError(t, err)
	assert.Nil(t, dana)

	goals, err := m.GetSavingsGoalsByUserID(ctx, "U1")
	require.NoError(t, err)
	require.Len(t, goals, 1)
	assert.Equal(t, goal.ID, goals[0].ID)
}

func TestManager_CollectionStatus_WriteFailed(t *testing.T) {
	store := &failingStore{Store: kv.NewMemoryStore(), setErr: kv.ErrQuotaExceeded}
	m := New(store, WithClock(stepClock()))
	ctx := context.Background()

	_, err := m.CreateUser(ctx, newUser("Ana", "a@x.com"))
	require.NoError(t, err)
	require.NoError(t, m.SetCurrentUser(ctx, "U1"))

	assert.Equal(t, map[string]Result{
		UsersKey:       ResultWriteFailed,
		GoalsKey:       ResultEmpty,
		ActivitiesKey:  ResultEmpty,
		CurrentUserKey: ResultWriteFailed,
	}, m.CollectionStatus(ctx))

	store.setErr = nil
	_, err = m.CreateUser(ctx, newUser("Ana", "a@x.com"))
	require.NoError(t, err)
	assert.Equal(t, ResultOK, m.CollectionStatus(ctx)[UsersKey])
	assert.Equal(t, ResultWriteFailed, m.CollectionStatus(ctx)[CurrentUserKey])
}

func TestManager_CollectionStatus(t *testing.T) {
	m, store := NewTestManager(t)
	ctx := context.Background()

	_, err := m.CreateUser(ctx, newUser("Ana", "a@x.com"))
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, GoalsKey, "###"))

	status := m.CollectionStatus(ctx)
	assert.Equal(t, map[string]Result{
		UsersKey:       ResultOK,
		GoalsKey:       ResultCorrupt,
		ActivitiesKey:  ResultEmpty,
		CurrentUserKey: ResultEmpty,
	}, status)
}

func TestResult_String(t *testing.T) {
	assert.Equal(t, "ok", ResultOK.String())
	assert.Equal(t, "empty", ResultEmpty.String())
	assert.Equal(t, "corrupt", ResultCorrupt.String())
	assert.Equal(t, "write_failed", ResultWriteFailed.String())
	assert.Equal(t, "unavailable", ResultUnavailable.String())
	assert.Equal(t, "result(9)", Result(9).String())
}
