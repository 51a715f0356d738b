package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/cogip/cogip-api/internal/core/domain"
)

type ContactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

func (r *ContactRepository) Create(ctx context.Context, contact *domain.Contact) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	row := contactRow{
		Name:      contact.Name,
		Email:     contact.Email,
		Phone:     contact.Phone,
		CompanyID: contact.CompanyID,
		CreatedAt: contact.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("insert contact: %w", err)
	}
	contact.ID = row.ID
	return nil
}

func (r *ContactRepository) List(ctx context.Context) ([]*domain.Contact, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var rows []contactRow
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	out := make([]*domain.Contact, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}
