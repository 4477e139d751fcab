// Package http provides the HTTP round tripper chain shared by every outbound
// request: a User-Agent injector that keeps the client fingerprint stable, and
// a debug log transport that dumps traffic with credentials redacted.
package http
