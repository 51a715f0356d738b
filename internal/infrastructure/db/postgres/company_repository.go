package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/cogip/cogip-api/internal/core/domain"
)

type CompanyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

func (r *CompanyRepository) Create(ctx context.Context, company *domain.Company) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	row := companyRow{
		Name:      company.Name,
		Country:   company.Country,
		VAT:       company.VAT,
		Type:      company.Type,
		CreatedAt: company.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("insert company: %w", err)
	}
	company.ID = row.ID
	return nil
}

func (r *CompanyRepository) List(ctx context.Context) ([]*domain.Company, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var rows []companyRow
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	out := make([]*domain.Company, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}
