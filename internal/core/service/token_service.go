package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/cogip/cogip-api/internal/core/domain"
)

// DefaultTokenTTL is the lifetime of an access token.
const DefaultTokenTTL = 30 * time.Minute

// TokenService issues and verifies HS256 access tokens. It holds no state
// besides the signing secret, so a single instance is shared by all requests.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// WithClock replaces the time source. Intended for tests.
func (s *TokenService) WithClock(now func() time.Time) *TokenService {
	s.now = now
	return s
}

// Issue signs a token for username that expires after the configured TTL.
func (s *TokenService) Issue(username string) (string, time.Time, error) {
	now := s.now()
	exp := now.Add(s.ttl)
	claims := domain.Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, claims.Expiry(), nil
}

// Verify checks the signature first and the expiry second, so a token that is
// both tampered and expired reports domain.ErrTokenMalformed. A token stays
// valid up to and including its expiry instant.
func (s *TokenService) Verify(token string) (*domain.Claims, error) {
	claims := &domain.Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)
	if err != nil || !parsed.Valid {
		return nil, domain.ErrTokenMalformed
	}
	if claims.Username == "" || claims.ExpiresAt == nil {
		return nil, domain.ErrTokenMalformed
	}
	// exp is truncated to jwt.TimePrecision on issue; compare at the same precision.
	if s.now().Truncate(jwt.TimePrecision).After(claims.ExpiresAt.Time) {
		return nil, domain.ErrTokenExpired
	}
	return claims, nil
}
