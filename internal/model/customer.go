package model

import (
	"strings"

	apperrors "theme-park-ticketing/pkg/app_errors"
)

// CustomerAccount is a customer identity with one cart and the ordered
// history of completed orders. Passwords are stored and compared in plain
// text, preserved as a known weakness of the system being reproduced.
type CustomerAccount struct {
	Username string
	Password string
	Email    string
	Cart     Cart
	History  []*Order
}

func NewCustomerAccount(username, password, email string) (*CustomerAccount, error) {
	if err := ValidateCustomerSignup(username, password, email); err != nil {
		return nil, err
	}
	return &CustomerAccount{
		Username: username,
		Password: password,
		Email:    email,
	}, nil
}

// ValidateCustomerSignup applies the signup format checks; the returned error
// names the failing field.
func ValidateCustomerSignup(username, password, email string) error {
	if len(username) < 3 {
		return apperrors.NewValidationError("username", "username must be at least 3 characters long")
	}
	if len(password) < 6 {
		return apperrors.NewValidationError("password", "password must be at least 6 characters long")
	}
	if !strings.Contains(email, "@") {
		return apperrors.NewValidationError("email", "invalid email, please provide a valid email address")
	}
	return nil
}

// ValidatePassword compares the stored password verbatim.
func (c *CustomerAccount) ValidatePassword(input string) bool {
	return c.Password == input
}

// AddOrderToHistory recomputes the order total and appends it.
func (c *CustomerAccount) AddOrderToHistory(order *Order) {
	order.CalculateTotalPrice()
	c.History = append(c.History, order)
}

// AccountUpdate carries the optional settings changes; nil fields are left
// untouched.
type AccountUpdate struct {
	Username *string
	Password *string
	Email    *string
}

func (c *CustomerAccount) ApplyUpdate(update AccountUpdate) {
	if update.Username != nil && *update.Username != "" {
		c.Username = *update.Username
	}
	if update.Password != nil && *update.Password != "" {
		c.Password = *update.Password
	}
	if update.Email != nil && *update.Email != "" {
		c.Email = *update.Email
	}
}
