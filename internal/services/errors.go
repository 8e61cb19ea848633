package services

import "errors"

// Sentinel errors the handlers map onto HTTP status codes.
var (
	ErrAuthRequired       = errors.New("authentication required")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrNotFound           = errors.New("announcement not found")

	// ErrReadBackFailed means an insert or update succeeded but the
	// follow-up read returned nothing.
	ErrReadBackFailed = errors.New("document missing after write")
)

// ValidationError rejects malformed input. Detail is surfaced verbatim in
// the response body.
type ValidationError struct {
	Detail string
}

func (e *ValidationError) Error() string { return e.Detail }
