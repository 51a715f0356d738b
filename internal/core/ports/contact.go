package ports

import (
	"context"

	"github.com/cogip/cogip-api/internal/core/domain"
)

// ContactRepository defines persistence operations for contacts.
type ContactRepository interface {
	Create(ctx context.Context, contact *domain.Contact) error
	List(ctx context.Context) ([]*domain.Contact, error)
}

type CreateContactInput struct {
	Name      string
	Email     string
	Phone     string
	CompanyID int64
}

type ContactService interface {
	CreateContact(ctx context.Context, input CreateContactInput) (*domain.Contact, error)
	ListContacts(ctx context.Context) ([]*domain.Contact, error)
}
