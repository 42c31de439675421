package service

import (
	"context"
	"sync"

	"theme-park-ticketing/internal/model"
	"theme-park-ticketing/internal/repository"
)

// Dataset holds every entity collection for the running process. The domain
// model assumes one logical session at a time, so a single mutex serializes
// every operation; domain semantics stay strictly sequential even though the
// HTTP shell above it is concurrent.
type Dataset struct {
	mu sync.Mutex

	customers []*model.CustomerAccount
	admins    []*model.Admin
	tickets   []*model.Ticket
	orders    []*model.Order

	seq *OrderSequence

	customerRepo repository.CustomerRepository
	adminRepo    repository.AdminRepository
	ticketRepo   repository.TicketRepository
	orderRepo    repository.OrderRepository
}

// LoadDataset reads all four collections, seeds the order-ID sequence from
// the highest persisted ID, and seeds the default catalog when the tickets
// collection is empty.
func LoadDataset(
	ctx context.Context,
	customerRepo repository.CustomerRepository,
	adminRepo repository.AdminRepository,
	ticketRepo repository.TicketRepository,
	orderRepo repository.OrderRepository,
) (*Dataset, error) {
	customers, err := customerRepo.Load(ctx)
	if err != nil {
		return nil, err
	}
	admins, err := adminRepo.Load(ctx)
	if err != nil {
		return nil, err
	}
	tickets, err := ticketRepo.Load(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := orderRepo.Load(ctx)
	if err != nil {
		return nil, err
	}

	ds := &Dataset{
		customers:    customers,
		admins:       admins,
		tickets:      tickets,
		orders:       orders,
		seq:          NewOrderSequence(orders),
		customerRepo: customerRepo,
		adminRepo:    adminRepo,
		ticketRepo:   ticketRepo,
		orderRepo:    orderRepo,
	}

	if len(ds.tickets) == 0 {
		ds.tickets = repository.DefaultCatalog()
		if err := ticketRepo.Save(ctx, ds.tickets); err != nil {
			return nil, err
		}
	}

	return ds, nil
}

func (ds *Dataset) findCustomer(username string) (*model.CustomerAccount, int) {
	for i, customer := range ds.customers {
		if customer.Username == username {
			return customer, i
		}
	}
	return nil, -1
}

func (ds *Dataset) findAdmin(adminID string) (*model.Admin, int) {
	for i, admin := range ds.admins {
		if admin.AdminID == adminID {
			return admin, i
		}
	}
	return nil, -1
}

func (ds *Dataset) findTicket(ticketType string) *model.Ticket {
	for _, ticket := range ds.tickets {
		if ticket.Type == ticketType {
			return ticket
		}
	}
	return nil
}
