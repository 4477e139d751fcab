package auth

//go:generate $MOCKGEN -source=cache.go -destination=mocks/cache_mock.go

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/oshokin/glogin/internal/constants"
	"github.com/oshokin/glogin/internal/logger"
)

// TokenCache persists a single refresh token across invocations.
// Storage failures are never fatal to the login flow.
type TokenCache interface {
	// Get loads the cached refresh token. The second result is false when no
	// usable token is available, whatever the cause.
	Get(ctx context.Context) (string, bool)
	// Set persists the refresh token best-effort and returns it unchanged.
	Set(ctx context.Context, refreshToken string) string
}

// FileTokenCache stores the refresh token in a single file.
type FileTokenCache struct {
	path string
}

// NewFileTokenCache creates a cache backed by the file at path.
func NewFileTokenCache(path string) *FileTokenCache {
	return &FileTokenCache{path: path}
}

// Get loads the cached refresh token from the file.
// Read failures are logged and reported as an absent token.
func (c *FileTokenCache) Get(ctx context.Context) (string, bool) {
	logger.Debugf(ctx, "Loading refresh token from %q", c.path)

	data, err := os.ReadFile(c.path)
	if err != nil {
		logger.Infof(ctx, "Failed to load refresh token: %v", err)

		return "", false
	}

	refreshToken := strings.TrimSpace(string(data))
	if refreshToken == "" {
		logger.Infof(ctx, "Refresh token file %q is empty", c.path)

		return "", false
	}

	return refreshToken, true
}

// Set writes the refresh token to the file, creating parent directories as
// needed. Write failures are logged as a warning and otherwise ignored.
func (c *FileTokenCache) Set(ctx context.Context, refreshToken string) string {
	logger.Debugf(ctx, "Saving refresh token to %q", c.path)

	if dir := filepath.Dir(c.path); dir != "." {
		if err := os.MkdirAll(dir, constants.DefaultFolderPermissions); err != nil {
			logger.Warnf(ctx, "Failed to create refresh token directory: %v", err)

			return refreshToken
		}
	}

	err := os.WriteFile(c.path, []byte(refreshToken), constants.DefaultSecretFilePermissions)
	if err != nil {
		logger.Warnf(ctx, "Failed to save refresh token: %v", err)
	}

	return refreshToken
}
