// Package common defines shared constants and sentinel errors used across
// client and server layers of Linkfo. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")
	ErrorConflict = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorUnavailable  = errors.New("service unavailable")

	// Validation errors. Detailed field lists wrap this value.
	ErrorValidation = errors.New("validation error")

	// Auth errors (invalid or malformed token).
	ErrMissingToken   = errors.New("missing token")
	ErrMalformedToken = errors.New("malformed token")
	ErrInvalidToken   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token expired")

	// Configuration errors.
	ErrMissingSecret = errors.New("secret key is not configured")
)

// Error is a specific failure with a message safe to show to clients. It
// matches its generic kind (one of the sentinels above) under errors.Is.
type Error struct {
	kind error
	msg  string
}

// NewError returns an Error of the given kind.
func NewError(kind error, msg string) *Error {
	return &Error{kind: kind, msg: msg}
}

func (e *Error) Error() string { return e.msg }

func (e *Error) Unwrap() error { return e.kind }
