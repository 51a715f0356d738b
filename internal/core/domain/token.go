package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the claim set carried by an access token. It deliberately holds no
// role: roles are looked up on every request.
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Decision is the outcome of authorizing a single request.
type Decision struct {
	Username  string
	Role      Role
	Permitted bool
}

// Expiry returns the token expiry, or the zero time when the claim is absent.
func (c *Claims) Expiry() time.Time {
	if c.ExpiresAt == nil {
		return time.Time{}
	}
	return c.ExpiresAt.Time
}
