package repository

import "theme-park-ticketing/internal/model"

// DefaultCatalog is the seed ticket catalog, applied when the tickets
// collection is missing or empty.
func DefaultCatalog() []*model.Ticket {
	return []*model.Ticket{
		{Type: "Single-Day Pass", Description: "Access to the park for one day", Price: 275.0, Validity: "1 Day", Limitations: "Valid only on selected date", Discount: 0},
		{Type: "Two-Day Pass", Description: "Access to the park for two consecutive days", Price: 480.0, Validity: "2 Days", Limitations: "Cannot be split over multiple trips", Discount: 10},
		{Type: "Annual Membership", Description: "Unlimited access for one year", Price: 1840.0, Validity: "1 Year", Limitations: "Must be used by the same person", Discount: 15},
		{Type: "Child Ticket", Description: "Discounted ticket for children (ages 3-12)", Price: 185.0, Validity: "1 Day", Limitations: "Valid only on selected date, must be accompanied by an adult", Discount: 0},
		{Type: "Group Ticket (10+)", Description: "Special rate for groups of 10 or more", Price: 220.0, Validity: "1 Day", Limitations: "Must be booked in advance", Discount: 20},
		{Type: "VIP Experience Pass", Description: "Includes expedited access and reserved seating for shows", Price: 550.0, Validity: "1 Day", Limitations: "Limited availability, must be purchased in advance", Discount: 0},
	}
}
