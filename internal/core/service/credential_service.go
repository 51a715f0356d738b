package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/cogip/cogip-api/internal/api/metrics"
	"github.com/cogip/cogip-api/internal/core/domain"
	"github.com/cogip/cogip-api/internal/core/ports"
	"github.com/cogip/cogip-api/internal/pkg/password"
)

// CredentialService implements the credential store on top of a UserRepository.
// Passwords are only ever stored as salted bcrypt hashes.
type CredentialService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewCredentialService(repo ports.UserRepository, logger zerolog.Logger) *CredentialService {
	return &CredentialService{repo: repo, logger: logger}
}

// FindByCredentials returns the user when username exists and password matches.
// Unknown users are checked against a dummy hash so both failures take as long.
func (s *CredentialService) FindByCredentials(ctx context.Context, username, plain string) (*domain.User, error) {
	if username == "" || plain == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			password.CheckDummy(plain)
			return nil, domain.ErrInvalidCredentials
		}
		metrics.StoreErrorsTotal.WithLabelValues("user", "lookup").Inc()
		return nil, fmt.Errorf("%w: find user: %v", domain.ErrPersistence, err)
	}

	if !password.Check(user.PasswordHash, plain) {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}

// FindRoleByUsername returns the role currently stored for username.
func (s *CredentialService) FindRoleByUsername(ctx context.Context, username string) (domain.Role, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrUserNotFound
		}
		metrics.StoreErrorsTotal.WithLabelValues("user", "lookup").Inc()
		return "", fmt.Errorf("%w: find role: %v", domain.ErrPersistence, err)
	}
	return user.Role, nil
}

// Register validates input, hashes the password, and stores a new user.
func (s *CredentialService) Register(ctx context.Context, in ports.RegisterUserInput) (*domain.User, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrBadRequest
	}
	role, err := domain.ParseRole(in.Role)
	if err != nil {
		return nil, err
	}

	hash, err := password.Hash(in.Password)
	if errors.Is(err, password.ErrTooLong) {
		return nil, domain.ErrPasswordTooLong
	}
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Username:     in.Username,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return nil, err
		}
		metrics.StoreErrorsTotal.WithLabelValues("user", "create").Inc()
		s.logger.Error().Err(err).Str("username", in.Username).Msg("failed to create user")
		return nil, fmt.Errorf("%w: create user: %v", domain.ErrPersistence, err)
	}

	metrics.RecordsCreatedTotal.WithLabelValues("user").Inc()
	s.logger.Info().Int64("user_id", user.ID).Str("username", user.Username).Str("role", string(user.Role)).Msg("user created")
	return user, nil
}

func (s *CredentialService) List(ctx context.Context) ([]*domain.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		metrics.StoreErrorsTotal.WithLabelValues("user", "list").Inc()
		s.logger.Error().Err(err).Msg("failed to list users")
		return nil, fmt.Errorf("%w: list users: %v", domain.ErrPersistence, err)
	}
	return users, nil
}

// EnsureAdmin registers username as an admin when the user store is empty.
// It reports whether a user was created. Losing a race to another instance
// seeding the same account is not an error.
func (s *CredentialService) EnsureAdmin(ctx context.Context, username, plain string) (bool, error) {
	users, err := s.List(ctx)
	if err != nil {
		return false, err
	}
	if len(users) > 0 {
		return false, nil
	}

	_, err = s.Register(ctx, ports.RegisterUserInput{Username: username, Password: plain, Role: string(domain.RoleAdmin)})
	if errors.Is(err, domain.ErrUserExists) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	s.logger.Info().Str("username", username).Msg("seeded initial admin")
	return true, nil
}
