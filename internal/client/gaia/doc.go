// Package gaia implements the client for Google's account endpoints used by the
// login flow: the OAuth token endpoint (refresh-token and authorization-code
// grants) and the pair of calls that trade an access token for web-session
// cookies. The flow uses the OAuth client identity of the iOS Hangouts app,
// since the required login scope is only whitelisted for first-party clients.
//
// Access granted through this client can be revoked from
// https://security.google.com/settings/security/activity.
package gaia
