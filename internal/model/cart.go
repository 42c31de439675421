package model

// Cart is a per-customer ordered collection of ticket snapshots pending
// purchase. Duplicates are allowed.
type Cart struct {
	items []Ticket
}

// RestoreCart rebuilds a cart from persisted snapshots.
func RestoreCart(items []Ticket) Cart {
	return Cart{items: items}
}

func (c *Cart) Add(ticket Ticket) {
	c.items = append(c.items, ticket)
}

// Remove drops the first entry equal to ticket by value. Absent entries are a
// no-op.
func (c *Cart) Remove(ticket Ticket) {
	for i, item := range c.items {
		if item == ticket {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

func (c *Cart) Clear() {
	c.items = nil
}

func (c *Cart) Items() []Ticket {
	return c.items
}

func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// Total sums the contained ticket prices; 0 for an empty cart.
func (c *Cart) Total() float64 {
	var total float64
	for _, item := range c.items {
		total += item.Price
	}
	return total
}
