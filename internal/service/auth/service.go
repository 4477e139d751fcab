package auth

//go:generate $MOCKGEN -source=service.go -destination=mocks/service_mock.go

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/oshokin/glogin/internal/client/gaia"
	"github.com/oshokin/glogin/internal/config"
	"github.com/oshokin/glogin/internal/logger"
)

// Login form landmarks. These mirror the provider's account pages and are
// the most fragile part of the whole flow: a form redesign or an unexpected
// interstitial prompt breaks the scripted login.
const (
	// formSelector locates the account login form.
	formSelector = "#gaia_loginform"
	// emailSelector locates the email input inside the login form.
	emailSelector = "#Email"
	// passwordSelector locates the password input inside the login form.
	passwordSelector = "#Passwd"
	// verificationFormSelector locates the two-step verification form.
	verificationFormSelector = "#challenge"
	// verificationCodeSelector locates the code input inside the verification form.
	verificationCodeSelector = "#totpPin"

	// authorizationCodeCookieName is the cookie carrying the authorization
	// code once the interactive login completes.
	authorizationCodeCookieName = "oauth_code"
)

// Service authenticates one account per call.
type Service interface {
	// GetAuth logs the account in and returns its web-session cookies keyed
	// by cookie name. A cached refresh token is used when possible; otherwise
	// the user is taken through the interactive credential flow.
	GetAuth(ctx context.Context) (map[string]string, error)
}

// ServiceImpl implements the two-path login flow.
type ServiceImpl struct {
	// cfg contains the application configuration.
	cfg *config.Config
	// client performs the token and session-cookie exchanges.
	client gaia.Client
	// httpClient is the shared HTTP session; its cookie jar collects the
	// provider's cookies across the whole attempt.
	httpClient *http.Client
	// cache persists the refresh token between invocations.
	cache TokenCache
	// credentials supplies email, password, and verification code on demand.
	credentials CredentialSource
	// newBrowser opens a browser session for the interactive flow.
	newBrowser BrowserFactory
}

// NewService creates the login service with dependency-injected components.
func NewService(
	cfg *config.Config,
	client gaia.Client,
	httpClient *http.Client,
	cache TokenCache,
	credentials CredentialSource,
) Service {
	return &ServiceImpl{
		cfg:         cfg,
		client:      client,
		httpClient:  httpClient,
		cache:       cache,
		credentials: credentials,
		newBrowser:  NewBrowserFactory(cfg),
	}
}

// GetAuth logs the account in and returns its web-session cookies keyed by name.
//
// Exactly one of the two paths acquires the access token per call. The
// refresh-token path failing is expected and only triggers the credential
// path; any failure after that is terminal for the attempt.
func (s *ServiceImpl) GetAuth(ctx context.Context) (map[string]string, error) {
	ctx = logger.ToContext(ctx, logger.FromContext(ctx).With("attempt_id", uuid.NewString()))

	logger.Info(ctx, "Authenticating with refresh token")

	accessToken, err := s.authWithCachedToken(ctx)
	if err != nil {
		logger.Infof(ctx, "Failed to authenticate using refresh token: %v", err)
		logger.Info(ctx, "Authenticating with credentials")

		accessToken, err = s.authWithCredentials(ctx)
		if err != nil {
			return nil, err
		}
	}

	logger.Info(ctx, "Authentication successful")

	return s.client.GetSessionCookies(ctx, accessToken)
}

// authWithCachedToken exchanges the cached refresh token for an access token.
func (s *ServiceImpl) authWithCachedToken(ctx context.Context) (string, error) {
	refreshToken, ok := s.cache.Get(ctx)
	if !ok {
		return "", gaia.NewAuthErrorf("refresh token not found")
	}

	return s.client.AuthWithRefreshToken(ctx, refreshToken)
}

// authWithCredentials runs the interactive login, exchanges the resulting
// authorization code for tokens, and persists the new refresh token.
func (s *ServiceImpl) authWithCredentials(ctx context.Context) (string, error) {
	authorizationCode, err := s.getAuthorizationCode(ctx)
	if err != nil {
		return "", err
	}

	accessToken, refreshToken, err := s.client.AuthWithCode(ctx, authorizationCode)
	if err != nil {
		return "", err
	}

	s.cache.Set(ctx, refreshToken)

	return accessToken, nil
}

// getAuthorizationCode drives the login form with the user's credentials and
// reads the authorization code the provider places in a cookie.
func (s *ServiceImpl) getAuthorizationCode(ctx context.Context) (string, error) {
	browser, err := s.newBrowser(ctx, s.httpClient, gaia.LoginURL())
	if err != nil {
		return "", err
	}

	defer browser.Close(ctx)

	email, err := s.credentials.Email(ctx)
	if err != nil {
		return "", gaia.NewAuthError("failed to read email", err)
	}

	if err = browser.SubmitForm(ctx, formSelector, map[string]string{emailSelector: email}); err != nil {
		return "", err
	}

	password, err := s.credentials.Password(ctx)
	if err != nil {
		return "", gaia.NewAuthError("failed to read password", err)
	}

	if err = browser.SubmitForm(ctx, formSelector, map[string]string{passwordSelector: password}); err != nil {
		return "", err
	}

	if browser.HasForm(ctx, verificationFormSelector) {
		verificationCode, codeErr := s.credentials.VerificationCode(ctx)
		if codeErr != nil {
			return "", gaia.NewAuthError("failed to read verification code", codeErr)
		}

		err = browser.SubmitForm(ctx, verificationFormSelector, map[string]string{
			verificationCodeSelector: verificationCode,
		})
		if err != nil {
			return "", err
		}
	}

	authorizationCode, err := browser.GetCookie(ctx, authorizationCodeCookieName)
	if err != nil {
		return "", gaia.NewAuthError("authorization code cookie not found", err)
	}

	return authorizationCode, nil
}
