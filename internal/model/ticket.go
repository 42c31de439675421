package model

import (
	"strings"

	apperrors "theme-park-ticketing/pkg/app_errors"
)

// Ticket describes a purchasable product. Catalog entries are mutated through
// the setters; copies placed in carts and orders are snapshots and never
// change with later catalog edits.
type Ticket struct {
	Type        string  `json:"ticket_type"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Validity    string  `json:"validity"`
	Limitations string  `json:"limitations"`
	Discount    int     `json:"discount"`
}

func NewTicket(ticketType, description string, price float64, validity, limitations string, discount int) (*Ticket, error) {
	t := &Ticket{}
	if err := t.SetType(ticketType); err != nil {
		return nil, err
	}
	if err := t.SetDescription(description); err != nil {
		return nil, err
	}
	if err := t.SetPrice(price); err != nil {
		return nil, err
	}
	if err := t.SetValidity(validity); err != nil {
		return nil, err
	}
	t.Limitations = limitations
	if err := t.SetDiscount(discount); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Ticket) SetType(ticketType string) error {
	if strings.TrimSpace(ticketType) == "" {
		return apperrors.NewValidationError("ticket_type", "ticket type must be a non-empty string")
	}
	t.Type = ticketType
	return nil
}

func (t *Ticket) SetDescription(description string) error {
	if strings.TrimSpace(description) == "" {
		return apperrors.NewValidationError("description", "description must be a non-empty string")
	}
	t.Description = description
	return nil
}

func (t *Ticket) SetPrice(price float64) error {
	if price <= 0 {
		return apperrors.NewValidationError("price", "price must be a positive number")
	}
	t.Price = price
	return nil
}

func (t *Ticket) SetValidity(validity string) error {
	if strings.TrimSpace(validity) == "" {
		return apperrors.NewValidationError("validity", "validity must be a non-empty string")
	}
	t.Validity = validity
	return nil
}

func (t *Ticket) SetDiscount(discount int) error {
	if discount < 0 || discount > 100 {
		return apperrors.NewValidationError("discount", "discount must be an integer between 0 and 100")
	}
	t.Discount = discount
	return nil
}

// DiscountedPrice is the list price with the current discount applied.
func (t *Ticket) DiscountedPrice() float64 {
	return t.Price * (1 - float64(t.Discount)/100)
}

// Snapshot returns an independent copy priced at the current discounted rate.
// This is the value that enters a cart: catalog edits after this point do not
// reach it.
func (t *Ticket) Snapshot() Ticket {
	return Ticket{
		Type:        t.Type,
		Description: t.Description,
		Price:       t.DiscountedPrice(),
		Validity:    t.Validity,
		Limitations: t.Limitations,
		Discount:    t.Discount,
	}
}
