package ports

import (
	"context"
	"time"
)

// LoginResult is returned by a successful login.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
}

type AuthService interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)
}

// LoginThrottle limits repeated failed logins per username.
type LoginThrottle interface {
	// Acquire atomically reserves one attempt for username and reports
	// whether it falls within the limit.
	Acquire(ctx context.Context, username string) (bool, error)
	Reset(ctx context.Context, username string) error
}
