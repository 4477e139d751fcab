// Package config loads and validates the application configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/oshokin/glogin/internal/logger"
)

// Config holds all configuration settings.
type Config struct {
	// RefreshTokenPath is the file slot holding the cached OAuth refresh token.
	RefreshTokenPath string `mapstructure:"refresh_token_path"`
	// LogLevel specifies the logging verbosity level.
	LogLevel string `mapstructure:"log_level"`
	// RequestTimeout bounds every HTTP request (e.g., "60s", "2m").
	RequestTimeout string `mapstructure:"request_timeout"`
	// MaxLogBodyLength is the maximum size of request/response dumps in debug logs (e.g., "64KB").
	MaxLogBodyLength string `mapstructure:"max_log_body_length"`
	// OutputFormat selects how the resulting cookie map is printed: "json" or "yaml".
	OutputFormat string `mapstructure:"output_format"`
	// BrowserEngine selects the login form engine: "static" (HTTP + HTML parsing)
	// or "chrome" (a real headless browser).
	BrowserEngine string `mapstructure:"browser_engine"`

	// ParsedLogLevel is the parsed zap log level.
	ParsedLogLevel zapcore.Level
	// ParsedRequestTimeout is the parsed HTTP request timeout.
	ParsedRequestTimeout time.Duration
	// ParsedMaxLogBodyLength is the parsed debug dump size limit in bytes.
	ParsedMaxLogBodyLength uint64
}

const (
	// DefaultConfigFilename is the default name of the configuration file.
	DefaultConfigFilename = ".glogin.yaml"

	// DefaultRefreshTokenFilename is the default refresh token slot.
	DefaultRefreshTokenFilename = "refresh_token.txt"

	// DefaultLogLevel is used when the config does not specify one.
	DefaultLogLevel = "info"

	// DefaultRequestTimeout is used when the config does not specify one.
	DefaultRequestTimeout = "60s"

	// DefaultMaxLogBodyLength caps debug request/response dumps.
	DefaultMaxLogBodyLength = "64KB"

	// OutputFormatJSON prints the cookie map as JSON.
	OutputFormatJSON = "json"
	// OutputFormatYAML prints the cookie map as YAML.
	OutputFormatYAML = "yaml"

	// BrowserEngineStatic drives the login form over plain HTTP with an HTML parser.
	BrowserEngineStatic = "static"
	// BrowserEngineChrome drives the login form through a headless Chrome instance.
	BrowserEngineChrome = "chrome"
)

// Static error definitions for better error handling.
var (
	// ErrEmptyRefreshTokenPath indicates that the refresh token slot path is missing.
	ErrEmptyRefreshTokenPath = errors.New("refresh_token_path cannot be empty")
	// ErrUnknownLogLevel indicates that the log level is not recognized.
	ErrUnknownLogLevel = errors.New("unknown log level")
	// ErrInvalidRequestTimeout indicates that the request timeout is invalid.
	ErrInvalidRequestTimeout = errors.New("request_timeout must be positive")
	// ErrInvalidMaxLogBodyLength indicates that the dump size limit is invalid.
	ErrInvalidMaxLogBodyLength = errors.New("max_log_body_length must be positive")
	// ErrUnknownOutputFormat indicates an unsupported output format.
	ErrUnknownOutputFormat = errors.New("output_format must be \"json\" or \"yaml\"")
	// ErrUnknownBrowserEngine indicates an unsupported browser engine.
	ErrUnknownBrowserEngine = errors.New("browser_engine must be \"static\" or \"chrome\"")
)

// LoadConfig loads configuration settings from a YAML file.
// A missing file is not an error: a first login legitimately starts
// with no local state, so defaults are returned instead.
func LoadConfig(configFilename string) (*Config, error) {
	if configFilename == "" {
		configFilename = DefaultConfigFilename
	}

	viper.SetConfigFile(configFilename)
	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config from file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults() {
	viper.SetDefault("refresh_token_path", DefaultRefreshTokenFilename)
	viper.SetDefault("log_level", DefaultLogLevel)
	viper.SetDefault("request_timeout", DefaultRequestTimeout)
	viper.SetDefault("max_log_body_length", DefaultMaxLogBodyLength)
	viper.SetDefault("output_format", OutputFormatJSON)
	viper.SetDefault("browser_engine", BrowserEngineStatic)
}

// ValidateConfig checks the configuration for validity and sets derived fields.
func ValidateConfig(cfg *Config) error {
	if strings.TrimSpace(cfg.RefreshTokenPath) == "" {
		return ErrEmptyRefreshTokenPath
	}

	parsedLogLevel, isLogLevelCorrect := logger.ParseLogLevel(cfg.LogLevel)
	if !isLogLevelCorrect {
		return fmt.Errorf("%w: '%s'", ErrUnknownLogLevel, cfg.LogLevel)
	}

	cfg.ParsedLogLevel = parsedLogLevel

	parsedTimeout, err := time.ParseDuration(cfg.RequestTimeout)
	if err != nil {
		return fmt.Errorf("failed to parse request timeout: %w", err)
	}

	if parsedTimeout <= 0 {
		return ErrInvalidRequestTimeout
	}

	cfg.ParsedRequestTimeout = parsedTimeout

	parsedMaxLogBodyLength, err := humanize.ParseBytes(cfg.MaxLogBodyLength)
	if err != nil {
		return fmt.Errorf("failed to parse max log body length: %w", err)
	}

	if parsedMaxLogBodyLength == 0 {
		return ErrInvalidMaxLogBodyLength
	}

	cfg.ParsedMaxLogBodyLength = parsedMaxLogBodyLength

	switch cfg.OutputFormat {
	case OutputFormatJSON, OutputFormatYAML:
	default:
		return fmt.Errorf("%w, got '%s'", ErrUnknownOutputFormat, cfg.OutputFormat)
	}

	switch cfg.BrowserEngine {
	case BrowserEngineStatic, BrowserEngineChrome:
	default:
		return fmt.Errorf("%w, got '%s'", ErrUnknownBrowserEngine, cfg.BrowserEngine)
	}

	return nil
}
