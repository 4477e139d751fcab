package gaia

import (
	"net/url"
	"strings"

	"github.com/oshokin/glogin/internal/utils"
)

const (
	// oauthClientID is the OAuth 2.0 client ID of the iOS Hangouts app.
	oauthClientID = "936475272427.apps.googleusercontent.com"

	// oauthClientSecret is the matching client secret. It ships inside the iOS
	// binary, so it is not actually secret.
	oauthClientSecret = "KWsJlkaMn1jGLxQpWxMnOox-"

	// tokenRequestURL is the OAuth token endpoint.
	tokenRequestURL = "https://accounts.google.com/o/oauth2/token"

	// oauthLoginBaseURL is the programmatic login page that serves the account form.
	oauthLoginBaseURL = "https://accounts.google.com/o/oauth2/programmatic_auth"

	// redirectURI is the fixed out-of-band redirect for the authorization-code grant.
	redirectURI = "urn:ietf:wg:oauth:2.0:oob"

	// uberauthRequestURL issues an uberauth value for a bearer access token.
	// Its response body is the raw uberauth string.
	uberauthRequestURL = "https://accounts.google.com/accounts/OAuthLogin?source=glogin&issueuberauth=1"

	// mergeSessionURLFormat turns an uberauth value into full web-session cookies.
	mergeSessionURLFormat = "https://accounts.google.com/MergeSession?" +
		"service=mail&continue=http://www.google.com&uberauth=%s"

	// sessionCookieURL scopes the cookie jar lookup for the final session cookie set.
	sessionCookieURL = "https://google.com/"
)

// oauthScopes are requested on login. The first one is the private scope
// whitelisted only for first-party clients.
//
//nolint:gochecknoglobals // Immutable list used as a constant.
var oauthScopes = []string{
	"https://www.google.com/accounts/OAuthLogin",
	"https://www.googleapis.com/auth/userinfo.email",
}

// LoginURL returns the login page URL for the interactive credential flow.
// The provider expects the scope list joined by literal '+' characters, so the
// scopes are escaped individually and the separator is left untouched.
func LoginURL() string {
	scope := strings.Join(utils.Map(oauthScopes, url.QueryEscape), "+")

	return oauthLoginBaseURL + "?scope=" + scope + "&client_id=" + url.QueryEscape(oauthClientID)
}
