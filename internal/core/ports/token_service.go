package ports

import (
	"time"

	"github.com/cogip/cogip-api/internal/core/domain"
)

// TokenIssuer mints signed access tokens.
type TokenIssuer interface {
	Issue(username string) (token string, expiresAt time.Time, err error)
}

// TokenVerifier checks a token's signature and expiry.
type TokenVerifier interface {
	// Verify returns domain.ErrTokenMalformed or domain.ErrTokenExpired on failure.
	Verify(token string) (*domain.Claims, error)
}
