package service

import (
	"context"

	"theme-park-ticketing/internal/model"
	apperrors "theme-park-ticketing/pkg/app_errors"
)

type CatalogService interface {
	List(ctx context.Context) ([]*model.Ticket, error)
	UpdateDiscounts(ctx context.Context, discounts map[string]int) error
	UpdatePrice(ctx context.Context, ticketType string, price float64) error
}

type CatalogServiceImpl struct {
	ds *Dataset
}

func NewCatalogService(ds *Dataset) CatalogService {
	return &CatalogServiceImpl{ds: ds}
}

func (s *CatalogServiceImpl) List(ctx context.Context) ([]*model.Ticket, error) {
	s.ds.mu.Lock()
	defer s.ds.mu.Unlock()

	tickets := make([]*model.Ticket, len(s.ds.tickets))
	copy(tickets, s.ds.tickets)
	return tickets, nil
}

// UpdateDiscounts applies a batch of per-type discount edits. The whole batch
// is validated before any ticket changes: one bad value rejects everything.
func (s *CatalogServiceImpl) UpdateDiscounts(ctx context.Context, discounts map[string]int) error {
	s.ds.mu.Lock()
	defer s.ds.mu.Unlock()

	for ticketType, discount := range discounts {
		if s.ds.findTicket(ticketType) == nil {
			return apperrors.ErrNotFound
		}
		if discount < 0 || discount > 100 {
			return apperrors.NewValidationError("discount", "invalid discount value for %s, enter 0-100", ticketType)
		}
	}

	for ticketType, discount := range discounts {
		if err := s.ds.findTicket(ticketType).SetDiscount(discount); err != nil {
			return err
		}
	}
	return s.ds.ticketRepo.Save(ctx, s.ds.tickets)
}

func (s *CatalogServiceImpl) UpdatePrice(ctx context.Context, ticketType string, price float64) error {
	s.ds.mu.Lock()
	defer s.ds.mu.Unlock()

	ticket := s.ds.findTicket(ticketType)
	if ticket == nil {
		return apperrors.ErrNotFound
	}
	if err := ticket.SetPrice(price); err != nil {
		return err
	}
	return s.ds.ticketRepo.Save(ctx, s.ds.tickets)
}
