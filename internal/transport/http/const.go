package http

import "time"

const (
	// DefaultTimeout is the default timeout duration for HTTP requests.
	DefaultTimeout = 60 * time.Second

	// DefaultMaxLogBodyLength is the fallback size limit (in bytes) for debug request/response dumps.
	DefaultMaxLogBodyLength = 64 * 1024
)
