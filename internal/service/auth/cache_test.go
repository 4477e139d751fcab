package auth

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileTokenCache_RoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cache := NewFileTokenCache(filepath.Join(t.TempDir(), "refresh_token.txt"))

	returned := cache.Set(ctx, "token-value")
	assert.Equal(t, "token-value", returned)

	loaded, ok := cache.Get(ctx)
	require.True(t, ok)
	assert.Equal(t, "token-value", loaded)
}

func TestFileTokenCache_CreatesParentDirectories(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "dir", "refresh_token.txt")
	cache := NewFileTokenCache(path)

	cache.Set(ctx, "token-value")

	loaded, ok := cache.Get(ctx)
	require.True(t, ok)
	assert.Equal(t, "token-value", loaded)

	// The token file must not be world-readable.
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestFileTokenCache_GetMissingFile(t *testing.T) {
	t.Parallel()

	cache := NewFileTokenCache(filepath.Join(t.TempDir(), "does-not-exist.txt"))

	loaded, ok := cache.Get(context.Background())
	assert.False(t, ok)
	assert.Empty(t, loaded)
}

func TestFileTokenCache_GetEmptyFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "refresh_token.txt")
	require.NoError(t, os.WriteFile(path, []byte("  \n"), 0o600))

	cache := NewFileTokenCache(path)

	_, ok := cache.Get(context.Background())
	assert.False(t, ok)
}

// TestFileTokenCache_SetFailureIsNonFatal points the slot at a directory so
// the write fails, which must not affect the returned token.
func TestFileTokenCache_SetFailureIsNonFatal(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cache := NewFileTokenCache(t.TempDir())

	returned := cache.Set(ctx, "token-value")
	assert.Equal(t, "token-value", returned)

	_, ok := cache.Get(ctx)
	assert.False(t, ok)
}
