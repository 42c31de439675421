package model

import (
	"testing"

	apperrors "theme-park-ticketing/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTicket_SetDiscount(t *testing.T) {
	ticket := &Ticket{Type: "Single-Day Pass", Description: "Access to the park for one day", Price: 275.0, Validity: "1 Day"}

	t.Run("Success - bounds", func(t *testing.T) {
		require.NoError(t, ticket.SetDiscount(0))
		require.NoError(t, ticket.SetDiscount(100))
		require.NoError(t, ticket.SetDiscount(15))
		assert.Equal(t, 15, ticket.Discount)
	})

	t.Run("Failed - out of range", func(t *testing.T) {
		for _, value := range []int{-1, 101, 500} {
			err := ticket.SetDiscount(value)
			require.Error(t, err)
			ve := apperrors.AsValidation(err)
			require.NotNil(t, ve)
			assert.Equal(t, "discount", ve.Field)
			assert.Equal(t, 15, ticket.Discount)
		}
	})
}

func TestTicket_SetPrice(t *testing.T) {
	ticket := &Ticket{Type: "Child Ticket", Description: "Discounted ticket for children (ages 3-12)", Price: 185.0, Validity: "1 Day"}

	t.Run("Success", func(t *testing.T) {
		require.NoError(t, ticket.SetPrice(200.0))
		assert.Equal(t, 200.0, ticket.Price)
	})

	t.Run("Failed - non-positive", func(t *testing.T) {
		for _, value := range []float64{0, -10} {
			err := ticket.SetPrice(value)
			require.Error(t, err)
			require.NotNil(t, apperrors.AsValidation(err))
			assert.Equal(t, 200.0, ticket.Price)
		}
	})
}

func TestTicket_DiscountedPrice(t *testing.T) {
	ticket := &Ticket{Type: "Two-Day Pass", Price: 480.0, Discount: 10}
	assert.InDelta(t, 432.0, ticket.DiscountedPrice(), 1e-9)

	ticket.Discount = 0
	assert.Equal(t, 480.0, ticket.DiscountedPrice())
}

func TestTicket_Snapshot(t *testing.T) {
	catalog := &Ticket{Type: "Two-Day Pass", Description: "Access to the park for two consecutive days", Price: 480.0, Validity: "2 Days", Discount: 10}

	snapshot := catalog.Snapshot()
	assert.InDelta(t, 432.0, snapshot.Price, 1e-9)
	assert.Equal(t, 10, snapshot.Discount)

	// later catalog edits must not reach the snapshot
	require.NoError(t, catalog.SetPrice(999.0))
	require.NoError(t, catalog.SetDiscount(50))
	assert.InDelta(t, 432.0, snapshot.Price, 1e-9)
}

func TestNewTicket_Validation(t *testing.T) {
	tests := []struct {
		name        string
		ticketType  string
		description string
		price       float64
		validity    string
		discount    int
		wantField   string
	}{
		{"empty type", " ", "desc", 10, "1 Day", 0, "ticket_type"},
		{"empty description", "Pass", "", 10, "1 Day", 0, "description"},
		{"zero price", "Pass", "desc", 0, "1 Day", 0, "price"},
		{"blank validity", "Pass", "desc", 10, "  ", 0, "validity"},
		{"discount too high", "Pass", "desc", 10, "1 Day", 101, "discount"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTicket(tt.ticketType, tt.description, tt.price, tt.validity, "", tt.discount)
			require.Error(t, err)
			ve := apperrors.AsValidation(err)
			require.NotNil(t, ve)
			assert.Equal(t, tt.wantField, ve.Field)
		})
	}

	ticket, err := NewTicket("VIP Experience Pass", "Includes expedited access", 550.0, "1 Day", "Limited availability", 0)
	require.NoError(t, err)
	assert.Equal(t, "VIP Experience Pass", ticket.Type)
}
