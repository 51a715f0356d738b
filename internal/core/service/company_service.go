package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/cogip/cogip-api/internal/api/metrics"
	"github.com/cogip/cogip-api/internal/core/domain"
	"github.com/cogip/cogip-api/internal/core/ports"
)

// CompanyService implements the company use cases. Rows are never updated
// after creation.
type CompanyService struct {
	repo   ports.CompanyRepository
	logger zerolog.Logger
}

func NewCompanyService(repo ports.CompanyRepository, logger zerolog.Logger) *CompanyService {
	return &CompanyService{repo: repo, logger: logger}
}

func (s *CompanyService) CreateCompany(ctx context.Context, input ports.CreateCompanyInput) (*domain.Company, error) {
	company := &domain.Company{
		Name:      input.Name,
		Country:   input.Country,
		VAT:       input.VAT,
		Type:      input.Type,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, company); err != nil {
		metrics.StoreErrorsTotal.WithLabelValues("company", "create").Inc()
		s.logger.Error().Err(err).Msg("failed to create company")
		return nil, fmt.Errorf("%w: create company: %v", domain.ErrPersistence, err)
	}

	metrics.RecordsCreatedTotal.WithLabelValues("company").Inc()
	s.logger.Info().Int64("company_id", company.ID).Str("name", company.Name).Msg("company created")
	return company, nil
}

func (s *CompanyService) ListCompanies(ctx context.Context) ([]*domain.Company, error) {
	companies, err := s.repo.List(ctx)
	if err != nil {
		metrics.StoreErrorsTotal.WithLabelValues("company", "list").Inc()
		s.logger.Error().Err(err).Msg("failed to list companies")
		return nil, fmt.Errorf("%w: list companies: %v", domain.ErrPersistence, err)
	}
	return companies, nil
}
