package ports

import (
	"context"

	"github.com/cogip/cogip-api/internal/core/domain"
)

// CompanyRepository defines persistence operations for companies.
type CompanyRepository interface {
	Create(ctx context.Context, company *domain.Company) error
	List(ctx context.Context) ([]*domain.Company, error)
}

// CreateCompanyInput carries the fields required to create a company.
type CreateCompanyInput struct {
	Name    string
	Country string
	VAT     string
	Type    string
}

type CompanyService interface {
	CreateCompany(ctx context.Context, input CreateCompanyInput) (*domain.Company, error)
	ListCompanies(ctx context.Context) ([]*domain.Company, error)
}
