package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

const (
	UsersKey       = "savesmart_users"
	GoalsKey       = "savesmart_goals"
	ActivitiesKey  = "savesmart_activities"
	CurrentUserKey = "savesmart_current_user"
)

// SchemaVersion is written into every collection envelope. Version 0 is the bare JSON array layout.
const SchemaVersion = 1

// Result describes the outcome of reading or writing one collection.
type Result int

const (
	ResultOK Result = iota
	ResultEmpty
	ResultCorrupt
	ResultWriteFailed
	ResultUnavailable
)

func (r Result) String() string {
	switch r {
	case ResultOK:
		return "ok"
	case ResultEmpty:
		return "empty"
	case ResultCorrupt:
		return "corrupt"
	case ResultWriteFailed:
		return "write_failed"
	case ResultUnavailable:
		return "unavailable"
	}
	return fmt.Sprintf("result(%d)", int(r))
}

func (r Result) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// FailurePolicy decides what a Manager does with corrupt reads and rejected writes.
type FailurePolicy int

const (
	// FailOpen treats corrupt collections as empty and logs rejected writes without reporting them.
	// A store that cannot be read is an error under both policies.
	FailOpen FailurePolicy = iota
	// FailClosed returns ErrCorruptCollection and ErrWriteFailed to the caller.
	FailClosed
)

type envelope[T any] struct {
	Version int `json:"version"`
	Items   []T `json:"items"`
}

func decode[T any](raw string) ([]T, error) {
	trimmed := strings.TrimSpace(raw)
	if strings.HasPrefix(trimmed, "[") {
		var items []T
		if err := json.Unmarshal([]byte(trimmed), &items); err != nil {
			return nil, err
		}
		return items, nil
	}

	var env envelope[T]
	if err := json.Unmarshal([]byte(trimmed), &env); err != nil {
		return nil, err
	}
	if env.Version < 1 || env.Version > SchemaVersion {
		return nil, fmt.Errorf("unsupported schema version %d", env.Version)
	}
	return env.Items, nil
}

func encode[T any](items []T) ([]byte, error) {
	if items == nil {
		items = []T{}
	}
	return json.Marshal(envelope[T]{Version: SchemaVersion, Items: items})
}

// inspectCollection reads key without applying the failure policy.
func inspectCollection[T any](ctx context.Context, m *Manager, key string) ([]T, Result, error) {
	raw, ok, err := m.store.Get(ctx, key)
	if err != nil {
		return nil, ResultUnavailable, err
	}
	if !ok {
		return nil, ResultEmpty, nil
	}
	items, err := decode[T](raw)
	if err != nil {
		return nil, ResultCorrupt, err
	}
	return items, ResultOK, nil
}

func readCollection[T any](ctx context.Context, m *Manager, key string) ([]T, Result, error) {
	items, res, err := inspectCollection[T](ctx, m, key)
	if res == ResultUnavailable {
		zap.L().Error("failed to read collection", zap.String("key", key), zap.Error(err))
		return nil, res, fmt.Errorf("%w: %s: %w", ErrStoreUnavailable, key, err)
	}
	if res != ResultCorrupt {
		return items, res, nil
	}
	if m.policy == FailClosed {
		zap.L().Error("failed to read collection", zap.String("key", key), zap.Error(err))
		return nil, res, fmt.Errorf("%w: %s: %w", ErrCorruptCollection, key, err)
	}
	zap.L().Warn("collection unreadable, treating as empty", zap.String("key", key), zap.Error(err))
	return nil, res, nil
}

func writeCollection[T any](ctx context.Context, m *Manager, key string, items []T) (Result, error) {
	data, err := encode(items)
	if err == nil {
		err = m.store.Set(ctx, key, string(data))
	}
	if err == nil {
		m.writes[key] = ResultOK
		return ResultOK, nil
	}

	m.writes[key] = ResultWriteFailed
	zap.L().Error("failed to save collection", zap.String("key", key), zap.Error(err))
	if m.policy == FailClosed {
		return ResultWriteFailed, fmt.Errorf("%w: %s: %w", ErrWriteFailed, key, err)
	}
	return ResultWriteFailed, nil
}

// records indexes a decoded collection by id while keeping insertion order.
type records[T any] struct {
	items []T
	index map[string]int
	idOf  func(T) string
}

func newRecords[T any](items []T, idOf func(T) string) *records[T] {
	r := &records[T]{
		items: items,
		index: make(map[string]int, len(items)),
		idOf:  idOf,
	}
	for i, item := range items {
		if _, dup := r.index[idOf(item)]; !dup {
			r.index[idOf(item)] = i
		}
	}
	return r
}

func (r *records[T]) get(id string) (T, bool) {
	i, ok := r.index[id]
	if !ok {
		var zero T
		return zero, false
	}
	return r.items[i], true
}

func (r *records[T]) put(item T) {
	id := r.idOf(item)
	if i, ok := r.index[id]; ok {
		r.items[i] = item
		return
	}
	r.index[id] = len(r.items)
	r.items = append(r.items, item)
}

func (r *records[T]) remove(id string) bool {
	if _, ok := r.index[id]; !ok {
		return false
	}
	kept := r.items[:0]
	for _, item := range r.items {
		if r.idOf(item) != id {
			kept = append(kept, item)
		}
	}
	r.items = kept
	r.index = make(map[string]int, len(kept))
	for i, item := range kept {
		r.index[r.idOf(item)] = i
	}
	return true
}

func (r *records[T]) filter(keep func(T) bool) []T {
	out := make([]T, 0)
	for _, item := range r.items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}
