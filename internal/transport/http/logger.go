package http

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"
	"time"

	"github.com/oshokin/glogin/internal/logger"
	"github.com/oshokin/glogin/internal/utils"
)

// LogTransport is a custom http.RoundTripper that logs HTTP requests and responses
// at debug level. Authentication traffic carries credentials in headers, bodies and
// cookies, so dumps are redacted: sensitive headers are replaced with a placeholder
// and bodies of credential-bearing exchanges are never written out.
type LogTransport struct {
	next         http.RoundTripper
	maxLogLength uint64
}

// Static error definitions for better error handling.
var (
	// ErrNilRequest indicates that the HTTP request is nil.
	ErrNilRequest = errors.New("request is nil")
)

// sensitiveHeaders never appear verbatim in dumps.
//
//nolint:gochecknoglobals // Immutable lookup list used as a constant.
var sensitiveHeaders = []string{"Authorization", "Cookie", "Set-Cookie"}

// sensitiveQueryParams never appear verbatim in dumps or log lines.
// The session-cookie derivation passes the uberauth credential in the URL.
//
//nolint:gochecknoglobals // Immutable lookup list used as a constant.
var sensitiveQueryParams = []string{"uberauth"}

// redactedPlaceholder replaces sensitive header values in dumps.
const redactedPlaceholder = "[redacted]"

// NewLogTransport creates and returns a new instance of LogTransport.
// If maxLogLength is 0, it defaults to DefaultMaxLogBodyLength.
func NewLogTransport(next http.RoundTripper, maxLogLength uint64) http.RoundTripper {
	if maxLogLength == 0 {
		maxLogLength = DefaultMaxLogBodyLength
	}

	return &LogTransport{
		next:         next,
		maxLogLength: maxLogLength,
	}
}

// RoundTrip executes a single HTTP transaction and logs the request and response.
// It implements the http.RoundTripper interface.
func (t *LogTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req == nil {
		return nil, ErrNilRequest
	}

	// Skip logging entirely below debug level.
	if !logger.IsDebugLevel() {
		return t.next.RoundTrip(req)
	}

	ctx := req.Context()
	sensitive := isSensitiveRequest(req)
	requestDump := t.dumpRequest(req, sensitive)

	startTime := time.Now()

	resp, err := t.next.RoundTrip(req)

	duration := time.Since(startTime)

	if err != nil {
		logger.Debugf(ctx, "Request failed: %s %s | Error: %v", req.Method, redactURL(req.URL).String(), err)

		return nil, err
	}

	responseDump := t.dumpResponse(resp, sensitive)

	logger.Debugf(ctx, "%s %s [%d] %s\nRequest: %s\nResponse: %s",
		req.Method, req.URL.Path, resp.StatusCode, duration, requestDump, responseDump)

	return resp, nil
}

// isSensitiveRequest reports whether the exchange carries credentials:
// form-encoded posts (token grants, login form submissions) and
// bearer-authorized calls (session cookie derivation).
func isSensitiveRequest(req *http.Request) bool {
	if req.Header.Get("Authorization") != "" {
		return true
	}

	contentType := req.Header.Get("Content-Type")

	return req.Method == http.MethodPost && strings.HasPrefix(contentType, "application/x-www-form-urlencoded")
}

// dumpRequest renders the request head with sensitive headers redacted.
// The body is appended only for non-sensitive requests, re-read through
// GetBody so the live request body is never disturbed.
func (t *LogTransport) dumpRequest(req *http.Request, sensitive bool) string {
	clone := req.Clone(req.Context())
	redactHeaders(clone.Header)

	clone.URL = redactURL(clone.URL)
	clone.Body = http.NoBody
	clone.ContentLength = 0

	dump, err := httputil.DumpRequestOut(clone, false)
	if err != nil {
		return err.Error()
	}

	if !sensitive && req.GetBody != nil {
		if rc, bodyErr := req.GetBody(); bodyErr == nil {
			body, readErr := io.ReadAll(rc)

			rc.Close() //nolint:errcheck,gosec // Error on close is not critical here.

			if readErr == nil {
				dump = append(dump, body...)
			}
		}
	}

	return t.truncate(dump)
}

// dumpResponse renders the response head with sensitive headers redacted,
// appending the body only for non-sensitive text responses. The consumed
// body is replaced with an equivalent reader on the live response.
func (t *LogTransport) dumpResponse(resp *http.Response, sensitive bool) string {
	// Shallow copy so redaction does not leak into the caller's response.
	clone := *resp
	clone.Header = resp.Header.Clone()
	redactHeaders(clone.Header)

	clone.Body = http.NoBody

	dump, err := httputil.DumpResponse(&clone, false)
	if err != nil {
		return err.Error()
	}

	includeBody := !sensitive && utils.IsTextContentType(resp.Header.Get("Content-Type"))
	if includeBody && resp.Body != nil {
		body, readErr := io.ReadAll(resp.Body)

		resp.Body.Close() //nolint:errcheck,gosec // Error on close is not critical here.

		resp.Body = io.NopCloser(bytes.NewReader(body))

		if readErr == nil {
			dump = append(dump, body...)
		}
	}

	return t.truncate(dump)
}

// redactURL returns a copy of u with sensitive query values replaced
// by the placeholder. The original URL is left untouched.
func redactURL(u *url.URL) *url.URL {
	if u == nil || u.RawQuery == "" {
		return u
	}

	query := u.Query()

	changed := false

	for _, name := range sensitiveQueryParams {
		if len(query[name]) > 0 {
			query.Set(name, redactedPlaceholder)

			changed = true
		}
	}

	if !changed {
		return u
	}

	clone := *u
	clone.RawQuery = query.Encode()

	return &clone
}

// RedactURLString redacts sensitive query values in a raw URL string.
// If the string does not parse, everything after the query separator is
// dropped rather than risk echoing a credential.
func RedactURLString(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		base, _, _ := strings.Cut(rawURL, "?")

		return base
	}

	return redactURL(u).String()
}

func redactHeaders(h http.Header) {
	for _, name := range sensitiveHeaders {
		if len(h.Values(name)) > 0 {
			h.Set(name, redactedPlaceholder)
		}
	}
}

func (t *LogTransport) truncate(data []byte) string {
	if uint64(len(data)) > t.maxLogLength {
		return string(data[:t.maxLogLength]) + "... [truncated]"
	}

	return string(data)
}
