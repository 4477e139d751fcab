package gaia

//go:generate $MOCKGEN -source=client.go -destination=mocks/client_mock.go

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/oshokin/glogin/internal/logger"
	http_transport "github.com/oshokin/glogin/internal/transport/http"
)

// Client defines the provider operations needed by the authentication flow.
type Client interface {
	// AuthWithRefreshToken exchanges a refresh token for an access token.
	AuthWithRefreshToken(ctx context.Context, refreshToken string) (string, error)
	// AuthWithCode exchanges an authorization code for an access token and a refresh token.
	AuthWithCode(ctx context.Context, authorizationCode string) (accessToken, refreshToken string, err error)
	// GetSessionCookies trades an access token for the web-session cookie set,
	// keyed by cookie name.
	GetSessionCookies(ctx context.Context, accessToken string) (map[string]string, error)
}

// ClientImpl implements Client against the real provider endpoints.
// It shares the caller's HTTP session (and its cookie jar) with the rest of
// the login attempt; the jar is where MergeSession deposits the final cookies.
type ClientImpl struct {
	httpClient *http.Client

	// Endpoint fields default to the production URLs and exist so tests can
	// point the client at a local server.
	tokenURL        string
	uberauthURL     string
	mergeSessionFmt string
	cookieScopeURL  string
}

// NewClient creates and returns a new instance of ClientImpl using the shared HTTP session.
// The session must carry a cookie jar; GetSessionCookies reads its output from there.
func NewClient(httpClient *http.Client) Client {
	return &ClientImpl{
		httpClient:      httpClient,
		tokenURL:        tokenRequestURL,
		uberauthURL:     uberauthRequestURL,
		mergeSessionFmt: mergeSessionURLFormat,
		cookieScopeURL:  sessionCookieURL,
	}
}

// AuthWithRefreshToken exchanges a refresh token for an access token.
func (c *ClientImpl) AuthWithRefreshToken(ctx context.Context, refreshToken string) (string, error) {
	data := url.Values{}
	data.Set("client_id", oauthClientID)
	data.Set("client_secret", oauthClientSecret)
	data.Set("grant_type", "refresh_token")
	data.Set("refresh_token", refreshToken)

	res, err := c.makeTokenRequest(ctx, data)
	if err != nil {
		return "", err
	}

	if res.AccessToken == "" {
		return "", NewAuthErrorf("token response is missing access_token")
	}

	return res.AccessToken, nil
}

// AuthWithCode exchanges an authorization code for an access token and a refresh token.
func (c *ClientImpl) AuthWithCode(ctx context.Context, authorizationCode string) (string, string, error) {
	data := url.Values{}
	data.Set("client_id", oauthClientID)
	data.Set("client_secret", oauthClientSecret)
	data.Set("code", authorizationCode)
	data.Set("grant_type", "authorization_code")
	data.Set("redirect_uri", redirectURI)

	res, err := c.makeTokenRequest(ctx, data)
	if err != nil {
		return "", "", err
	}

	if res.AccessToken == "" || res.RefreshToken == "" {
		return "", "", NewAuthErrorf("token response is missing access_token or refresh_token")
	}

	return res.AccessToken, res.RefreshToken, nil
}

// makeTokenRequest posts a form-encoded grant request to the token endpoint.
// A JSON body carrying an "error" key is surfaced as a provider error even when
// the HTTP status is non-2xx; without one, a non-OK status is a transport failure.
func (c *ClientImpl) makeTokenRequest(ctx context.Context, data url.Values) (*tokenResponse, error) {
	request, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.tokenURL, strings.NewReader(data.Encode()),
	)
	if err != nil {
		return nil, NewAuthError("token request failed", err)
	}

	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, NewAuthError("token request failed", err)
	}

	defer response.Body.Close() //nolint:errcheck // Error on close is not critical here.

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, NewAuthError("token request failed", err)
	}

	var res tokenResponse
	decodeErr := json.Unmarshal(body, &res)

	if decodeErr == nil && res.Error != "" {
		return nil, NewAuthErrorf("token request error: %q", res.Error)
	}

	if response.StatusCode != http.StatusOK {
		return nil, NewAuthErrorf("token request failed: unexpected status %d", response.StatusCode)
	}

	if decodeErr != nil {
		return nil, NewAuthError("failed to decode token response", decodeErr)
	}

	return &res, nil
}

// GetSessionCookies uses the access token to get session cookies.
//
// The first call issues an uberauth value (returned verbatim as the response
// body), the second merges it into a browser session; both run under a bearer
// authorization header. The cookies land in the shared jar, scoped to the
// provider domain, and an empty result is never valid output.
func (c *ClientImpl) GetSessionCookies(ctx context.Context, accessToken string) (map[string]string, error) {
	uberauth, err := c.bearerGet(ctx, c.uberauthURL, accessToken)
	if err != nil {
		return nil, NewAuthError("OAuthLogin request failed", err)
	}

	mergeURL := fmt.Sprintf(c.mergeSessionFmt, url.QueryEscape(uberauth))
	if _, err = c.bearerGet(ctx, mergeURL, accessToken); err != nil {
		return nil, NewAuthError("MergeSession request failed", err)
	}

	scope, err := url.Parse(c.cookieScopeURL)
	if err != nil {
		return nil, NewAuthError("invalid cookie scope URL", err)
	}

	cookies := make(map[string]string)
	for _, cookie := range c.httpClient.Jar.Cookies(scope) {
		cookies[cookie.Name] = cookie.Value
	}

	if len(cookies) == 0 {
		return nil, NewAuthErrorf("no session cookies found")
	}

	logger.Debugf(ctx, "Derived %d session cookies", len(cookies))

	return cookies, nil
}

// bearerGet performs a GET with a bearer authorization header and returns the
// response body as text.
func (c *ClientImpl) bearerGet(ctx context.Context, rawURL, accessToken string) (string, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
	if err != nil {
		return "", err
	}

	request.Header.Set("Authorization", "Bearer "+accessToken)

	response, err := c.httpClient.Do(request)
	if err != nil {
		// A transport failure carries the full URL, uberauth credential
		// included, so scrub it before the error leaves this package.
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			urlErr.URL = http_transport.RedactURLString(urlErr.URL)
		}

		return "", err
	}

	defer response.Body.Close() //nolint:errcheck // Error on close is not critical here.

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return "", err
	}

	if response.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d", response.StatusCode)
	}

	return string(body), nil
}
