package ports

import (
	"context"
	"time"

	"github.com/cogip/cogip-api/internal/core/domain"
)

// InvoiceRepository defines persistence operations for invoices.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *domain.Invoice) error
	List(ctx context.Context) ([]*domain.Invoice, error)
}

type CreateInvoiceInput struct {
	Reference string
	CompanyID int64
	Amount    float64
	DueDate   time.Time
}

type InvoiceService interface {
	CreateInvoice(ctx context.Context, input CreateInvoiceInput) (*domain.Invoice, error)
	ListInvoices(ctx context.Context) ([]*domain.Invoice, error)
}
