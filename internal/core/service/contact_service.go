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

type ContactService struct {
	repo   ports.ContactRepository
	logger zerolog.Logger
}

func NewContactService(repo ports.ContactRepository, logger zerolog.Logger) *ContactService {
	return &ContactService{repo: repo, logger: logger}
}

func (s *ContactService) CreateContact(ctx context.Context, input ports.CreateContactInput) (*domain.Contact, error) {
	contact := &domain.Contact{
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		CompanyID: input.CompanyID,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, contact); err != nil {
		metrics.StoreErrorsTotal.WithLabelValues("contact", "create").Inc()
		s.logger.Error().Err(err).Msg("failed to create contact")
		return nil, fmt.Errorf("%w: create contact: %v", domain.ErrPersistence, err)
	}

	metrics.RecordsCreatedTotal.WithLabelValues("contact").Inc()
	s.logger.Info().Int64("contact_id", contact.ID).Int64("company_id", contact.CompanyID).Msg("contact created")
	return contact, nil
}

func (s *ContactService) ListContacts(ctx context.Context) ([]*domain.Contact, error) {
	contacts, err := s.repo.List(ctx)
	if err != nil {
		metrics.StoreErrorsTotal.WithLabelValues("contact", "list").Inc()
		s.logger.Error().Err(err).Msg("failed to list contacts")
		return nil, fmt.Errorf("%w: list contacts: %v", domain.ErrPersistence, err)
	}
	return contacts, nil
}
