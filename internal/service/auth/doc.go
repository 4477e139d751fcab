// Package auth orchestrates the two-path login flow: a cached refresh token
// is tried first, and on any failure the package drives the provider's HTML
// login form with user credentials to obtain an authorization code. Both
// paths converge on deriving the final web-session cookie set.
//
// The provider-coupled form scraping is isolated behind the BrowserSession
// interface so the parsing engine can be swapped without touching the flow.
package auth
