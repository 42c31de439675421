package repository

import (
	"context"
	"path/filepath"

	"theme-park-ticketing/internal/model"
)

type TicketRepository interface {
	Load(ctx context.Context) ([]*model.Ticket, error)
	Save(ctx context.Context, tickets []*model.Ticket) error
}

type TicketRepositoryImpl struct {
	path string
}

func NewTicketRepository(dir string) TicketRepository {
	return &TicketRepositoryImpl{
		path: filepath.Join(dir, "tickets.json"),
	}
}

func (r *TicketRepositoryImpl) Load(ctx context.Context) ([]*model.Ticket, error) {
	records, err := readCollection[model.Ticket](r.path)
	if err != nil {
		return nil, err
	}

	tickets := make([]*model.Ticket, 0, len(records))
	for i := range records {
		ticket := records[i]
		tickets = append(tickets, &ticket)
	}
	return tickets, nil
}

func (r *TicketRepositoryImpl) Save(ctx context.Context, tickets []*model.Ticket) error {
	records := make([]model.Ticket, 0, len(tickets))
	for _, ticket := range tickets {
		records = append(records, *ticket)
	}
	return writeCollection(r.path, records)
}
