package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oshokin/glogin/internal/config"
	"github.com/oshokin/glogin/internal/constants"
)

const testBaseConfigContent = `
refresh_token_path: "/config/refresh_token.txt"
log_level: "info"
request_timeout: "30s"
max_log_body_length: "32KB"
output_format: "json"
browser_engine: "static"
`

// newTestFlagSet mirrors the root command's flags.
func newTestFlagSet() *pflag.FlagSet {
	testCmd := &cobra.Command{Use: "test"}
	testCmd.Flags().StringP("token-file", "t", "", "refresh token file")
	testCmd.Flags().StringP("output", "o", "", "output format")
	testCmd.Flags().StringP("engine", "e", "", "browser engine")

	return testCmd.Flags()
}

// TestFlagOverrides tests that command-line flags correctly override configuration file values.
//
//nolint:nolintlint,tparallel // Cannot run in parallel due to Viper global state.
func TestFlagOverrides(t *testing.T) {
	tests := []struct {
		name           string
		flags          map[string]string
		expectedConfig func(*testing.T, *config.Config)
	}{
		{
			name:  "no flags - use config values",
			flags: map[string]string{},
			expectedConfig: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.Equal(t, "/config/refresh_token.txt", cfg.RefreshTokenPath)
				assert.Equal(t, config.OutputFormatJSON, cfg.OutputFormat)
				assert.Equal(t, config.BrowserEngineStatic, cfg.BrowserEngine)
			},
		},
		{
			name: "token-file flag only - override token path",
			flags: map[string]string{
				"token-file": "/flag/refresh_token.txt",
			},
			expectedConfig: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.Equal(t, "/flag/refresh_token.txt", cfg.RefreshTokenPath)
				assert.Equal(t, config.OutputFormatJSON, cfg.OutputFormat)
			},
		},
		{
			name: "output flag only - override output format",
			flags: map[string]string{
				"output": "yaml",
			},
			expectedConfig: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.Equal(t, "/config/refresh_token.txt", cfg.RefreshTokenPath)
				assert.Equal(t, config.OutputFormatYAML, cfg.OutputFormat)
			},
		},
		{
			name: "engine flag only - override browser engine",
			flags: map[string]string{
				"engine": "chrome",
			},
			expectedConfig: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.Equal(t, config.BrowserEngineChrome, cfg.BrowserEngine)
			},
		},
		{
			name: "all flags - override everything",
			flags: map[string]string{
				"token-file": "/all/refresh_token.txt",
				"output":     "yaml",
				"engine":     "chrome",
			},
			expectedConfig: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.Equal(t, "/all/refresh_token.txt", cfg.RefreshTokenPath)
				assert.Equal(t, config.OutputFormatYAML, cfg.OutputFormat)
				assert.Equal(t, config.BrowserEngineChrome, cfg.BrowserEngine)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "test-config.yaml")

			err := os.WriteFile(
				configPath,
				[]byte(testBaseConfigContent),
				constants.DefaultFilePermissions,
			) //nolint:gosec // It's a test file.
			require.NoError(t, err)

			cfg, err := config.LoadConfig(configPath)
			require.NoError(t, err)

			flags := newTestFlagSet()

			for flagName, flagValue := range tt.flags {
				require.NoError(t, flags.Set(flagName, flagValue), "failed to set flag %s", flagName)
			}

			err = bindFlagsToConfig(flags, cfg)
			require.NoError(t, err)

			tt.expectedConfig(t, cfg)
		})
	}
}

// TestFlagOverrides_InvalidValues tests that invalid flag values are caught during validation.
//
//nolint:nolintlint,tparallel // Cannot run in parallel due to Viper global state.
func TestFlagOverrides_InvalidValues(t *testing.T) {
	invalidTests := []struct {
		name          string
		flagName      string
		flagValue     string
		expectedError string
	}{
		{
			name:          "invalid output format",
			flagName:      "output",
			flagValue:     "xml",
			expectedError: "output_format",
		},
		{
			name:          "invalid browser engine",
			flagName:      "engine",
			flagValue:     "firefox",
			expectedError: "browser_engine",
		},
		{
			name:          "empty token file",
			flagName:      "token-file",
			flagValue:     "  ",
			expectedError: "refresh_token_path",
		},
	}

	for _, tt := range invalidTests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "test-config.yaml")

			err := os.WriteFile(
				configPath,
				[]byte(testBaseConfigContent),
				constants.DefaultFilePermissions,
			) //nolint:gosec // It's a test file.
			require.NoError(t, err)

			cfg, err := config.LoadConfig(configPath)
			require.NoError(t, err)

			flags := newTestFlagSet()
			require.NoError(t, flags.Set(tt.flagName, tt.flagValue))

			err = bindFlagsToConfig(flags, cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectedError)
		})
	}
}

// TestBindFlagsToConfig_EmptyFlagSet tests handling of an empty flag set.
func TestBindFlagsToConfig_EmptyFlagSet(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{
		RefreshTokenPath: "refresh_token.txt",
		LogLevel:         "info",
		RequestTimeout:   "60s",
		MaxLogBodyLength: "64KB",
		OutputFormat:     config.OutputFormatJSON,
		BrowserEngine:    config.BrowserEngineStatic,
	}

	emptyFlags := pflag.NewFlagSet("test", pflag.ContinueOnError)

	// Calling with an empty flag set should just validate the config.
	err := bindFlagsToConfig(emptyFlags, cfg)
	require.NoError(t, err)
}
