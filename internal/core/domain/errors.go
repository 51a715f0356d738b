package domain

import "errors"

// Authentication and authorization failures. These are resolved by the
// authorization middleware and never reach a resource handler.
var (
	ErrTokenMissing   = errors.New("missing token")
	ErrTokenMalformed = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token expired")
	ErrForbidden      = errors.New("forbidden")
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTooManyAttempts    = errors.New("too many login attempts")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidRole        = errors.New("role must be one of: admin, accountant, intern")
	ErrPasswordTooLong    = errors.New("password must be at most 72 bytes")
)

var (
	ErrBadRequest = errors.New("bad request")
	// ErrPersistence wraps any store failure. Its cause is logged, never returned to callers.
	ErrPersistence = errors.New("persistence failure")
)
