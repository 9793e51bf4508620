package sqliterepo

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRepo(t *testing.T) *Repository {
	t.Helper()

	repo, err := Open(filepath.Join(t.TempDir(), "savesmart.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, repo.Close())
	})
	return repo
}

func TestRepository_GetMissing(t *testing.T) {
	repo := setupRepo(t)

	value, ok, err := repo.Get(context.Background(), "savesmart_users")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, value)
}

func TestRepository_SetOverwrites(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "savesmart_current_user", "user-1"))
	require.NoError(t, repo.Set(ctx, "savesmart_current_user", "user-2"))

	value, ok, err := repo.Get(ctx, "savesmart_current_user")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "user-2", value)
}

func TestRepository_Delete(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "savesmart_current_user", "user-1"))
	require.NoError(t, repo.Delete(ctx, "savesmart_current_user"))
	require.NoError(t, repo.Delete(ctx, "savesmart_current_user"))

	_, ok, err := repo.Get(ctx, "savesmart_current_user")
	require.NoError(t, err)
	assert.False(t, ok)
}
