package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCart_Total(t *testing.T) {
	var cart Cart
	assert.Equal(t, 0.0, cart.Total())

	single := Ticket{Type: "Single-Day Pass", Price: 275.0}
	twoDay := Ticket{Type: "Two-Day Pass", Price: 432.0}

	cart.Add(single)
	cart.Add(twoDay)
	assert.InDelta(t, 707.0, cart.Total(), 1e-9)

	// add then remove restores the prior total
	cart.Add(single)
	cart.Remove(single)
	assert.InDelta(t, 707.0, cart.Total(), 1e-9)
}

func TestCart_Remove(t *testing.T) {
	var cart Cart
	single := Ticket{Type: "Single-Day Pass", Price: 275.0}

	t.Run("removes first matching entry only", func(t *testing.T) {
		cart.Add(single)
		cart.Add(single)
		cart.Remove(single)
		assert.Len(t, cart.Items(), 1)
	})

	t.Run("no-op when absent", func(t *testing.T) {
		cart.Remove(Ticket{Type: "Annual Membership", Price: 1840.0})
		assert.Len(t, cart.Items(), 1)
	})
}

func TestCart_Clear(t *testing.T) {
	var cart Cart
	cart.Add(Ticket{Type: "Single-Day Pass", Price: 275.0})
	cart.Add(Ticket{Type: "Child Ticket", Price: 185.0})

	cart.Clear()
	assert.True(t, cart.IsEmpty())
	assert.Equal(t, 0.0, cart.Total())
}
