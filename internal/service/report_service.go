package service

import (
	"context"

	"theme-park-ticketing/internal/model"
)

// DailySales aggregates the paid orders of one calendar day.
type DailySales struct {
	Date        string         `json:"date"`
	TicketCount int            `json:"ticket_count"`
	TotalPrice  float64        `json:"total_price"`
	TicketTypes map[string]int `json:"ticket_types"`
}

type ReportService interface {
	SalesReport(ctx context.Context) ([]*DailySales, error)
}

type ReportServiceImpl struct {
	ds *Dataset
}

func NewReportService(ds *Dataset) ReportService {
	return &ReportServiceImpl{ds: ds}
}

// SalesReport groups paid orders by purchase date. Groups come back in
// insertion order of first occurrence, not sorted; callers wanting sorted
// output sort themselves. Pure read, no persisted side effect.
func (s *ReportServiceImpl) SalesReport(ctx context.Context) ([]*DailySales, error) {
	s.ds.mu.Lock()
	defer s.ds.mu.Unlock()

	var report []*DailySales
	byDate := make(map[string]*DailySales)

	for _, order := range s.ds.orders {
		if order.Status != model.OrderStatusPaid {
			continue
		}
		key := order.DateKey()
		day, ok := byDate[key]
		if !ok {
			day = &DailySales{Date: key, TicketTypes: make(map[string]int)}
			byDate[key] = day
			report = append(report, day)
		}
		day.TicketCount += len(order.Tickets)
		day.TotalPrice += order.TotalPrice
		for _, ticket := range order.Tickets {
			day.TicketTypes[ticket.Type]++
		}
	}
	return report, nil
}
