package http

import (
	"net/http"

	"github.com/oshokin/glogin/internal/utils"
)

// UserAgentInjector is a custom http.RoundTripper that stamps every HTTP request
// with the application's User-Agent. The provider uses the User-Agent for client
// fingerprinting, so the injector overrides whatever the caller set: the string
// must be identical on every request of a release.
type UserAgentInjector struct {
	next              http.RoundTripper
	userAgentProvider utils.UserAgentProvider
}

// userAgentHeader is the HTTP header name for User-Agent.
const userAgentHeader = "User-Agent"

// NewUserAgentInjector creates and returns a new instance of UserAgentInjector.
func NewUserAgentInjector(next http.RoundTripper, userAgentProvider utils.UserAgentProvider) http.RoundTripper {
	return &UserAgentInjector{
		next:              next,
		userAgentProvider: userAgentProvider,
	}
}

// RoundTrip executes a single HTTP transaction with the application User-Agent set.
// It implements the http.RoundTripper interface.
func (t *UserAgentInjector) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set(userAgentHeader, t.userAgentProvider.GetUserAgent())

	return t.next.RoundTrip(req)
}
