package ports

import (
	"context"

	"github.com/cogip/cogip-api/internal/core/domain"
)

// UserRepository defines persistence operations for stored credentials.
type UserRepository interface {
	// Create stores user and fills in its ID. Returns domain.ErrUserExists
	// when the username is taken.
	Create(ctx context.Context, user *domain.User) error
	// FindByUsername returns domain.ErrUserNotFound when no user matches exactly.
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}
