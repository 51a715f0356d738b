package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/cogip/cogip-api/internal/core/domain"
)

type InvoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

func (r *InvoiceRepository) Create(ctx context.Context, invoice *domain.Invoice) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	row := invoiceRow{
		Reference: invoice.Reference,
		CompanyID: invoice.CompanyID,
		Amount:    invoice.Amount,
		DueDate:   invoice.DueDate,
		CreatedAt: invoice.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("insert invoice: %w", err)
	}
	invoice.ID = row.ID
	return nil
}

func (r *InvoiceRepository) List(ctx context.Context) ([]*domain.Invoice, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var rows []invoiceRow
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	out := make([]*domain.Invoice, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}
