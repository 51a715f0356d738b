package middleware

import (
	"errors"
	"fmt"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/cogip/cogip-api/internal/api/metrics"
	"github.com/cogip/cogip-api/internal/core/domain"
	"github.com/cogip/cogip-api/internal/core/ports"
)

// Context keys set on a permitted request.
const (
	ContextKeyUsername = "username"
	ContextKeyRole     = "role"
)

const (
	bearerPrefix    = "bearer "
	tokenQueryParam = "token"
)

// Authorize validates the bearer token, looks up the caller's current role in
// the credential store and checks it against allowed. The role is never read
// from the token, so a role change takes effect on the next request.
//
// Failures are returned as domain errors for the central error handler:
// ErrTokenMissing, ErrTokenMalformed, ErrTokenExpired, ErrForbidden or a
// wrapped ErrPersistence.
func Authorize(tokens ports.TokenVerifier, roles ports.RoleResolver, log zerolog.Logger, allowed ...domain.Role) echo.MiddlewareFunc {
	set := newRoleSet(allowed)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			decision, err := authorize(c, tokens, roles, set)
			if err != nil {
				metrics.AuthDecisionsTotal.WithLabelValues(outcome(err)).Inc()
				log.Debug().
					Err(err).
					Str("method", c.Request().Method).
					Str("path", c.Path()).
					Str("username", decision.Username).
					Msg("request denied")
				return err
			}

			metrics.AuthDecisionsTotal.WithLabelValues("permitted").Inc()
			c.Set(ContextKeyUsername, decision.Username)
			c.Set(ContextKeyRole, decision.Role)
			return next(c)
		}
	}
}

func authorize(c echo.Context, tokens ports.TokenVerifier, roles ports.RoleResolver, set roleSet) (domain.Decision, error) {
	raw := extractToken(c)
	if raw == "" {
		return domain.Decision{}, domain.ErrTokenMissing
	}

	claims, err := tokens.Verify(raw)
	if err != nil {
		return domain.Decision{}, err
	}

	role, err := roles.FindRoleByUsername(c.Request().Context(), claims.Username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.Decision{Username: claims.Username}, domain.ErrForbidden
		}
		if errors.Is(err, domain.ErrPersistence) {
			return domain.Decision{Username: claims.Username}, err
		}
		return domain.Decision{Username: claims.Username}, fmt.Errorf("%w: resolve role: %v", domain.ErrPersistence, err)
	}

	decision := set.decide(claims.Username, role)
	if !decision.Permitted {
		return decision, domain.ErrForbidden
	}
	return decision, nil
}

// extractToken reads the Authorization header, stripping an optional
// case-insensitive "Bearer " prefix, and falls back to the token query parameter.
func extractToken(c echo.Context) string {
	header := strings.TrimSpace(c.Request().Header.Get(echo.HeaderAuthorization))
	if strings.EqualFold(header, strings.TrimSpace(bearerPrefix)) {
		header = ""
	}
	if len(header) >= len(bearerPrefix) && strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		header = strings.TrimSpace(header[len(bearerPrefix):])
	}
	if header != "" {
		return header
	}
	return strings.TrimSpace(c.QueryParam(tokenQueryParam))
}

func outcome(err error) string {
	switch {
	case errors.Is(err, domain.ErrTokenMissing):
		return "missing"
	case errors.Is(err, domain.ErrTokenExpired):
		return "expired"
	case errors.Is(err, domain.ErrTokenMalformed):
		return "malformed"
	case errors.Is(err, domain.ErrForbidden):
		return "forbidden"
	default:
		return "error"
	}
}

// Username returns the caller set by Authorize, or "" on unauthenticated routes.
func Username(c echo.Context) string {
	u, _ := c.Get(ContextKeyUsername).(string)
	return u
}

// Role returns the role set by Authorize.
func Role(c echo.Context) domain.Role {
	r, _ := c.Get(ContextKeyRole).(domain.Role)
	return r
}
