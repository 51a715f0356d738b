package ports

import (
	"context"

	"github.com/cogip/cogip-api/internal/core/domain"
)

// RoleResolver looks up the current role of a user.
type RoleResolver interface {
	FindRoleByUsername(ctx context.Context, username string) (domain.Role, error)
}

// CredentialStore is the contract the login and authorization paths rely on.
type CredentialStore interface {
	RoleResolver
	// FindByCredentials returns domain.ErrInvalidCredentials for an unknown
	// username and for a wrong password alike.
	FindByCredentials(ctx context.Context, username, password string) (*domain.User, error)
}

// RegisterUserInput carries the fields required to create a user.
type RegisterUserInput struct {
	Username string
	Password string
	Role     string
}

// UserService defines the user-management use cases.
type UserService interface {
	Register(ctx context.Context, input RegisterUserInput) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}
