package storage

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrUserNotFound      = fmt.Errorf("user %w", ErrNotFound)
	ErrGoalNotFound      = fmt.Errorf("goal %w", ErrNotFound)
	ErrInvalidInput      = errors.New("invalid input")
	ErrCorruptCollection = errors.New("corrupt collection")
	ErrWriteFailed       = errors.New("write failed")
	ErrStoreUnavailable  = errors.New("store unavailable")
)
