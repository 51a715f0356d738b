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

type InvoiceService struct {
	repo   ports.InvoiceRepository
	logger zerolog.Logger
}

func NewInvoiceService(repo ports.InvoiceRepository, logger zerolog.Logger) *InvoiceService {
	return &InvoiceService{repo: repo, logger: logger}
}

func (s *InvoiceService) CreateInvoice(ctx context.Context, input ports.CreateInvoiceInput) (*domain.Invoice, error) {
	invoice := &domain.Invoice{
		Reference: input.Reference,
		CompanyID: input.CompanyID,
		Amount:    input.Amount,
		DueDate:   input.DueDate.UTC(),
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, invoice); err != nil {
		metrics.StoreErrorsTotal.WithLabelValues("invoice", "create").Inc()
		s.logger.Error().Err(err).Msg("failed to create invoice")
		return nil, fmt.Errorf("%w: create invoice: %v", domain.ErrPersistence, err)
	}

	metrics.RecordsCreatedTotal.WithLabelValues("invoice").Inc()
	s.logger.Info().Int64("invoice_id", invoice.ID).Str("reference", invoice.Reference).Msg("invoice created")
	return invoice, nil
}

func (s *InvoiceService) ListInvoices(ctx context.Context) ([]*domain.Invoice, error) {
	invoices, err := s.repo.List(ctx)
	if err != nil {
		metrics.StoreErrorsTotal.WithLabelValues("invoice", "list").Inc()
		s.logger.Error().Err(err).Msg("failed to list invoices")
		return nil, fmt.Errorf("%w: list invoices: %v", domain.ErrPersistence, err)
	}
	return invoices, nil
}
