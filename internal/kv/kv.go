package kv

import (
	"context"
	"errors"
	"sync"
)

var ErrQuotaExceeded = errors.New("storage quota exceeded")

// Store is a durable string-keyed store. A missing key is reported with ok == false, not an error.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

type MemoryStore struct {
	mu    sync.RWMutex
	data  map[string]string
	size  int
	quota int
}

type Option func(*MemoryStore)

// WithQuota limits the total number of key and value bytes the store accepts. Zero means unlimited.
func WithQuota(bytes int) Option {
	return func(s *MemoryStore) {
		s.quota = bytes
	}
}

func NewMemoryStore(opts ...Option) *MemoryStore {
	s := &MemoryStore{
		data: make(map[string]string),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.data[key]
	return value, ok, nil
}

func (s *MemoryStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	size := s.size + len(value)
	if old, ok := s.data[key]; ok {
		size -= len(old)
	} else {
		size += len(key)
	}
	if s.quota > 0 && size > s.quota {
		return ErrQuotaExceeded
	}

	s.data[key] = value
	s.size = size
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if old, ok := s.data[key]; ok {
		s.size -= len(key) + len(old)
		delete(s.data, key)
	}
	return nil
}
