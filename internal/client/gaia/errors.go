package gaia

import "fmt"

// AuthError is the single error kind surfaced across the authentication
// boundary. It carries a human-readable reason and optionally wraps the
// underlying cause for errors.Is/As inspection.
type AuthError struct {
	// Reason describes what failed, e.g. "token request failed".
	Reason string
	// Err is the underlying cause, if any.
	Err error
}

// NewAuthError returns an AuthError with the given reason wrapping cause.
func NewAuthError(reason string, cause error) *AuthError {
	return &AuthError{Reason: reason, Err: cause}
}

// NewAuthErrorf returns an AuthError with a formatted reason and no wrapped cause.
func NewAuthErrorf(format string, args ...any) *AuthError {
	return &AuthError{Reason: fmt.Sprintf(format, args...)}
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.Err != nil {
		return e.Reason + ": " + e.Err.Error()
	}

	return e.Reason
}

// Unwrap returns the underlying cause.
func (e *AuthError) Unwrap() error {
	return e.Err
}
