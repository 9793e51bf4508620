package kv

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_GetSetDelete(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, ok, err := s.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, "k", "v1"))
	require.NoError(t, s.Set(ctx, "k", "v2"))

	value, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v2", value)

	require.NoError(t, s.Delete(ctx, "k"))
	require.NoError(t, s.Delete(ctx, "k"))

	_, ok, err = s.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStore_Quota(t *testing.T) {
	tests := []struct {
		name      string
		quota     int
		prepare   map[string]string
		key       string
		value     string
		expectErr error
	}{
		{
			name:  "Fits into quota",
			quota: 10,
			key:   "key",
			value: "value",
		},
		{
			name:      "Exceeds quota",
			quota:     6,
			key:       "key",
			value:     "value",
			expectErr: ErrQuotaExceeded,
		},
		{
			name:    "Overwrite frees the old value",
			quota:   10,
			prepare: map[string]string{"key": "value"},
			key:     "key",
			value:   "other",
		},
		{
			name:    "Unlimited",
			quota:   0,
			prepare: map[string]string{"a": "0123456789"},
			key:     "b",
			value:   "0123456789",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			s := NewMemoryStore(WithQuota(tt.quota))
			for k, v := range tt.prepare {
				require.NoError(t, s.Set(ctx, k, v))
			}

			err := s.Set(ctx, tt.key, tt.value)
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				_, ok, _ := s.Get(ctx, tt.key)
				assert.False(t, ok)
				return
			}
			assert.NoError(t, err)
			value, ok, _ := s.Get(ctx, tt.key)
			assert.True(t, ok)
			assert.Equal(t, tt.value, value)
		})
	}
}

func TestMemoryStore_FailedWriteKeepsPreviousValue(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(WithQuota(8))

	require.NoError(t, s.Set(ctx, "key", "abc"))
	assert.ErrorIs(t, s.Set(ctx, "key", "abcdefgh"), ErrQuotaExceeded)

	value, ok, err := s.Get(ctx, "key")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "abc", value)
}
