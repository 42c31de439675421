package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{OrderStatusPending, OrderStatusPaid, true},
		{OrderStatusPending, OrderStatusCancelled, true},
		{OrderStatusPaid, OrderStatusCancelled, true},
		{OrderStatusPaid, OrderStatusPending, false},
		{OrderStatusCancelled, OrderStatusPaid, false},
		{OrderStatusCancelled, OrderStatusPending, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestNewOrder(t *testing.T) {
	now := time.Date(2026, 9, 1, 14, 30, 0, 0, time.UTC)
	tickets := []Ticket{
		{Type: "Single-Day Pass", Price: 275.0},
		{Type: "Child Ticket", Price: 185.0},
	}
	payment := &Payment{Method: PaymentCredit, Amount: 460.0}

	order := NewOrder(7, now, OrderStatusPaid, tickets, payment)

	assert.Equal(t, 7, order.ID)
	assert.Equal(t, "2026-09-01", order.DateKey())
	assert.InDelta(t, 460.0, order.TotalPrice, 1e-9)
	assert.True(t, order.HasPayment())
}

func TestOrder_SetStatus(t *testing.T) {
	order := NewOrder(1, time.Now(), OrderStatusPending, nil, nil)

	require.NoError(t, order.SetStatus(OrderStatusPaid))
	assert.Equal(t, OrderStatusPaid, order.Status)

	err := order.SetStatus(OrderStatusPending)
	require.Error(t, err)
	assert.Equal(t, OrderStatusPaid, order.Status)
}

func TestPaymentMethod_IsValid(t *testing.T) {
	assert.True(t, PaymentCredit.IsValid())
	assert.True(t, PaymentDebit.IsValid())
	assert.False(t, PaymentMethod("cash").IsValid())
}
