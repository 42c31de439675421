package service

import "theme-park-ticketing/internal/model"

// OrderSequence allocates order IDs, monotonically and process-wide. It is
// seeded with max(existing IDs)+1 at load time; callers hold the dataset
// mutex, so Next needs no locking of its own.
type OrderSequence struct {
	next int
}

func NewOrderSequence(orders []*model.Order) *OrderSequence {
	next := 1
	for _, order := range orders {
		if order.ID >= next {
			next = order.ID + 1
		}
	}
	return &OrderSequence{next: next}
}

func (s *OrderSequence) Next() int {
	id := s.next
	s.next++
	return id
}
