package http

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/oshokin/glogin/internal/logger"
)

// roundTripperFunc adapts a function to http.RoundTripper.
type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func TestIsSensitiveRequest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		build     func() *http.Request
		sensitive bool
	}{
		{
			name: "form encoded post",
			build: func() *http.Request {
				req, _ := http.NewRequest(http.MethodPost, "https://example.com/token", strings.NewReader("a=b"))
				req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

				return req
			},
			sensitive: true,
		},
		{
			name: "bearer authorized get",
			build: func() *http.Request {
				req, _ := http.NewRequest(http.MethodGet, "https://example.com/session", http.NoBody)
				req.Header.Set("Authorization", "Bearer token")

				return req
			},
			sensitive: true,
		},
		{
			name: "plain get",
			build: func() *http.Request {
				req, _ := http.NewRequest(http.MethodGet, "https://example.com/page", http.NoBody)

				return req
			},
			sensitive: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.sensitive, isSensitiveRequest(tt.build()))
		})
	}
}

func TestRedactHeaders(t *testing.T) {
	t.Parallel()

	h := http.Header{}
	h.Set("Authorization", "Bearer secret")
	h.Set("Cookie", "oauth_code=abc")
	h.Set("Content-Type", "text/html")

	redactHeaders(h)

	assert.Equal(t, redactedPlaceholder, h.Get("Authorization"))
	assert.Equal(t, redactedPlaceholder, h.Get("Cookie"))
	assert.Equal(t, "text/html", h.Get("Content-Type"))
}

// TestDumpRequest_SensitiveBodyOmitted verifies that credential-bearing bodies
// and headers never reach the dump.
func TestDumpRequest_SensitiveBodyOmitted(t *testing.T) {
	t.Parallel()

	transport := &LogTransport{next: http.DefaultTransport, maxLogLength: DefaultMaxLogBodyLength}

	req, err := http.NewRequest(http.MethodPost, "https://example.com/o/oauth2/token",
		strings.NewReader("client_secret=hunter2&refresh_token=rt"))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer access-token")

	dump := transport.dumpRequest(req, true)

	assert.NotContains(t, dump, "hunter2")
	assert.NotContains(t, dump, "refresh_token")
	assert.NotContains(t, dump, "access-token")
	assert.Contains(t, dump, redactedPlaceholder)
}

func TestRedactURLString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "uberauth value redacted",
			input:    "https://accounts.example.com/MergeSession?service=mail&uberauth=secret-value",
			expected: "https://accounts.example.com/MergeSession?service=mail&uberauth=%5Bredacted%5D",
		},
		{
			name:     "no query untouched",
			input:    "https://accounts.example.com/MergeSession",
			expected: "https://accounts.example.com/MergeSession",
		},
		{
			name:     "other params untouched",
			input:    "https://example.com/page?q=hello",
			expected: "https://example.com/page?q=hello",
		},
		{
			name:     "unparsable loses the query",
			input:    "https://example.com/%zz?uberauth=secret-value",
			expected: "https://example.com/%zz",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := RedactURLString(tt.input)
			assert.Equal(t, tt.expected, result)
			assert.NotContains(t, result, "secret-value")
		})
	}
}

// TestDumpRequest_SensitiveQueryRedacted verifies that credentials carried in
// the URL query never reach the dump, while the live request keeps its URL.
func TestDumpRequest_SensitiveQueryRedacted(t *testing.T) {
	t.Parallel()

	transport := &LogTransport{next: http.DefaultTransport, maxLogLength: DefaultMaxLogBodyLength}

	req, err := http.NewRequest(http.MethodGet,
		"https://accounts.example.com/MergeSession?service=mail&uberauth=uber-secret", http.NoBody)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer access-token")

	dump := transport.dumpRequest(req, true)

	assert.NotContains(t, dump, "uber-secret")
	assert.NotContains(t, dump, "access-token")
	assert.Contains(t, dump, redactedPlaceholder)
	assert.Equal(t, "uber-secret", req.URL.Query().Get("uberauth"))
}

// TestRoundTrip_NoCredentialsLogged drives real requests through the transport
// at debug level and checks the captured log output for credential values,
// covering both the success dump and the failure branch.
func TestRoundTrip_NoCredentialsLogged(t *testing.T) {
	// Not parallel: swaps the global logger and level.
	core, logs := observer.New(zapcore.DebugLevel)

	originalLogger := logger.Logger()
	originalLevel := logger.Level()

	logger.SetLogger(zap.New(core).Sugar())
	logger.SetLevel(zapcore.DebugLevel)

	defer func() {
		logger.SetLogger(originalLogger)
		logger.SetLevel(originalLevel)
	}()

	next := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		if req.URL.Path == "/broken" {
			return nil, errors.New("connection refused")
		}

		return &http.Response{
			StatusCode: http.StatusOK,
			Proto:      "HTTP/1.1",
			ProtoMajor: 1,
			ProtoMinor: 1,
			Header:     http.Header{"Set-Cookie": []string{"SID=session-secret"}},
			Body:       io.NopCloser(strings.NewReader("")),
			Request:    req,
		}, nil
	})

	transport := NewLogTransport(next, DefaultMaxLogBodyLength)

	req, err := http.NewRequest(http.MethodGet,
		"https://accounts.example.com/MergeSession?service=mail&uberauth=uber-secret", http.NoBody)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer access-token")

	resp, err := transport.RoundTrip(req)
	require.NoError(t, err)
	resp.Body.Close()

	failing, err := http.NewRequest(http.MethodGet,
		"https://accounts.example.com/broken?uberauth=uber-secret", http.NoBody)
	require.NoError(t, err)
	failing.Header.Set("Authorization", "Bearer access-token")

	_, err = transport.RoundTrip(failing)
	require.Error(t, err)

	entries := logs.All()
	require.NotEmpty(t, entries)

	var output strings.Builder
	for _, entry := range entries {
		output.WriteString(entry.Message)
	}

	logged := output.String()
	assert.NotContains(t, logged, "uber-secret")
	assert.NotContains(t, logged, "access-token")
	assert.NotContains(t, logged, "session-secret")
	assert.Contains(t, logged, redactedPlaceholder)
}

func TestDumpRequest_PlainBodyIncluded(t *testing.T) {
	t.Parallel()

	transport := &LogTransport{next: http.DefaultTransport, maxLogLength: DefaultMaxLogBodyLength}

	req, err := http.NewRequest(http.MethodPost, "https://example.com/echo", strings.NewReader("hello=world"))
	require.NoError(t, err)

	dump := transport.dumpRequest(req, false)
	assert.Contains(t, dump, "hello=world")
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	transport := &LogTransport{next: http.DefaultTransport, maxLogLength: 4}

	assert.Equal(t, "abcd... [truncated]", transport.truncate([]byte("abcdef")))
	assert.Equal(t, "ab", transport.truncate([]byte("ab")))
}
