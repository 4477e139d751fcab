package utils

//go:generate $MOCKGEN -source=user_agent_provider.go -destination=mocks/user_agent_provider_mock.go

import (
	"fmt"
	"runtime"

	"github.com/oshokin/glogin/internal/version"
)

// UserAgentProvider is an interface that defines a method for retrieving a User-Agent string.
type UserAgentProvider interface {
	// GetUserAgent returns a User-Agent string.
	GetUserAgent() string
}

// SimpleUserAgentProvider is a basic implementation of the UserAgentProvider interface.
// It provides a static User-Agent string that is set during initialization.
type SimpleUserAgentProvider struct {
	userAgent string
}

// NewSimpleUserAgentProvider creates and returns a new instance of SimpleUserAgentProvider.
func NewSimpleUserAgentProvider(userAgent string) UserAgentProvider {
	return &SimpleUserAgentProvider{userAgent: userAgent}
}

// GetUserAgent returns a User-Agent string.
func (p *SimpleUserAgentProvider) GetUserAgent() string {
	return p.userAgent
}

// NewVersionUserAgentProvider returns a provider whose User-Agent identifies the
// application name, release version and host platform, e.g. "glogin/1.0.0 (linux amd64)".
// The provider uses this string to fingerprint clients, so it must stay stable per release.
func NewVersionUserAgentProvider(appName string) UserAgentProvider {
	return NewSimpleUserAgentProvider(fmt.Sprintf(
		"%s/%s (%s %s)", appName, version.Short(), runtime.GOOS, runtime.GOARCH,
	))
}
