package model

import (
	"time"

	apperrors "theme-park-ticketing/pkg/app_errors"
)

// OrderStatus 訂單狀態類型
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusPaid      OrderStatus = "Paid"
	OrderStatusCancelled OrderStatus = "Cancelled"
)

// IsValid 驗證狀態是否有效
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPaid, OrderStatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo 檢查是否可以轉換到目標狀態
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	transitions := map[OrderStatus][]OrderStatus{
		OrderStatusPending:   {OrderStatusPaid, OrderStatusCancelled},
		OrderStatusPaid:      {OrderStatusCancelled},
		OrderStatusCancelled: {},
	}

	allowed, ok := transitions[s]
	if !ok {
		return false
	}

	for _, status := range allowed {
		if status == target {
			return true
		}
	}
	return false
}

// Order aggregates the ticket snapshots of one purchase. It is appended to
// exactly one customer's history and to the global order log; after payment
// only status transitions mutate it.
type Order struct {
	ID           int         `json:"order_id"`
	PurchaseDate time.Time   `json:"purchase_date"`
	Status       OrderStatus `json:"status"`
	Tickets      []Ticket    `json:"tickets"`
	Payment      *Payment    `json:"payment,omitempty"`
	TotalPrice   float64     `json:"total_price"`
}

func NewOrder(id int, purchaseDate time.Time, status OrderStatus, tickets []Ticket, payment *Payment) *Order {
	o := &Order{
		ID:           id,
		PurchaseDate: DateOnly(purchaseDate),
		Status:       status,
		Tickets:      tickets,
		Payment:      payment,
	}
	o.CalculateTotalPrice()
	return o
}

// CalculateTotalPrice recomputes the total from the contained tickets.
func (o *Order) CalculateTotalPrice() {
	var total float64
	for _, ticket := range o.Tickets {
		total += ticket.Price
	}
	o.TotalPrice = total
}

func (o *Order) SetStatus(status OrderStatus) error {
	if !status.IsValid() || !o.Status.CanTransitionTo(status) {
		return apperrors.NewValidationError("status", "cannot transition order from %s to %s", o.Status, status)
	}
	o.Status = status
	return nil
}

func (o *Order) HasPayment() bool {
	return o.Payment != nil
}

// DateKey is the calendar-day grouping key of the purchase date.
func (o *Order) DateKey() string {
	return o.PurchaseDate.Format(time.DateOnly)
}

// DateOnly truncates t to calendar-day granularity in UTC.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
