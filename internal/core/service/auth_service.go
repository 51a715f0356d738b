package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/cogip/cogip-api/internal/api/metrics"
	"github.com/cogip/cogip-api/internal/core/domain"
	"github.com/cogip/cogip-api/internal/core/ports"
)

// AuthService implements login, the only path that mints tokens.
type AuthService struct {
	store    ports.CredentialStore
	tokens   ports.TokenIssuer
	throttle ports.LoginThrottle
	logger   zerolog.Logger
}

// NewAuthService wires the login use case. throttle may be nil to disable
// failed-login limiting.
func NewAuthService(store ports.CredentialStore, tokens ports.TokenIssuer, throttle ports.LoginThrottle, logger zerolog.Logger) *AuthService {
	return &AuthService{store: store, tokens: tokens, throttle: throttle, logger: logger}
}

// Login reserves a throttle slot before checking credentials. A failed
// attempt keeps its slot until the window ends; success releases them.
func (s *AuthService) Login(ctx context.Context, username, password string) (*ports.LoginResult, error) {
	if s.throttle != nil && username != "" {
		ok, err := s.throttle.Acquire(ctx, username)
		if err != nil {
			s.logger.Warn().Err(err).Str("username", username).Msg("login throttle unavailable, allowing attempt")
		} else if !ok {
			metrics.LoginsTotal.WithLabelValues("throttled").Inc()
			return nil, domain.ErrTooManyAttempts
		}
	}

	user, err := s.store.FindByCredentials(ctx, username, password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
			return nil, err
		}
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		s.logger.Error().Err(err).Msg("credential lookup failed")
		return nil, err
	}

	token, exp, err := s.tokens.Issue(user.Username)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		s.logger.Error().Err(err).Msg("failed to sign token")
		return nil, err
	}

	if s.throttle != nil {
		if err := s.throttle.Reset(ctx, username); err != nil {
			s.logger.Warn().Err(err).Str("username", username).Msg("failed to reset login throttle")
		}
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.logger.Info().Str("username", user.Username).Msg("login succeeded")
	return &ports.LoginResult{Token: token, ExpiresAt: exp}, nil
}
