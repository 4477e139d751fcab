package app

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"

	"gopkg.in/yaml.v3"

	"github.com/oshokin/glogin/internal/client/gaia"
	"github.com/oshokin/glogin/internal/config"
	"github.com/oshokin/glogin/internal/logger"
	"github.com/oshokin/glogin/internal/service/auth"
	http_transport "github.com/oshokin/glogin/internal/transport/http"
	"github.com/oshokin/glogin/internal/utils"
)

// appName is used for the User-Agent the provider fingerprints clients by.
const appName = "glogin"

// ExecuteRootCommand is the entry point for the application.
// It assembles the shared HTTP session, runs the login flow, and prints the
// resulting session cookies in the configured output format.
func ExecuteRootCommand(ctx context.Context, cfg *config.Config) {
	service, err := newAuthService(cfg)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize authentication service: %v", err)
	}

	cookies, err := service.GetAuth(ctx)
	if err != nil {
		logger.Fatalf(ctx, "Authentication failed: %v", err)
	}

	output, err := formatCookies(cookies, cfg.OutputFormat)
	if err != nil {
		logger.Fatalf(ctx, "Failed to format session cookies: %v", err)
	}

	fmt.Println(output)
}

// newAuthService builds the login service on a fresh HTTP session.
// The session carries a cookie jar shared by the login form walk and the
// session-cookie derivation, with the logging and user-agent transports
// wrapped around the default one.
func newAuthService(cfg *config.Config) (auth.Service, error) {
	httpClient, err := newHTTPClient(cfg)
	if err != nil {
		return nil, err
	}

	return auth.NewService(
		cfg,
		gaia.NewClient(httpClient),
		httpClient,
		auth.NewFileTokenCache(cfg.RefreshTokenPath),
		auth.NewPromptCredentialSource(),
	), nil
}

// newHTTPClient builds the shared HTTP session. If the config carries no
// parsed timeout, the transport default applies.
func newHTTPClient(cfg *config.Config) (*http.Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	timeout := cfg.ParsedRequestTimeout
	if timeout == 0 {
		timeout = http_transport.DefaultTimeout
	}

	return &http.Client{
		Transport: http_transport.NewUserAgentInjector(
			http_transport.NewLogTransport(http.DefaultTransport, cfg.ParsedMaxLogBodyLength),
			utils.NewVersionUserAgentProvider(appName),
		),
		Jar:     jar,
		Timeout: timeout,
	}, nil
}

// formatCookies renders the cookie map in the requested output format.
func formatCookies(cookies map[string]string, format string) (string, error) {
	switch format {
	case config.OutputFormatYAML:
		data, err := yaml.Marshal(cookies)
		if err != nil {
			return "", err
		}

		return string(data), nil
	default:
		data, err := json.MarshalIndent(cookies, "", "  ")
		if err != nil {
			return "", err
		}

		return string(data), nil
	}
}
