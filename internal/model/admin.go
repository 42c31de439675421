package model

import (
	apperrors "theme-park-ticketing/pkg/app_errors"
)

// Admin is an administrator identity plus the orders it administers. The
// registry of sibling admin records is the admins collection itself.
type Admin struct {
	AdminID  string
	Password string
	Email    string
	Orders   []*Order
}

func NewAdmin(adminID, password, email string) (*Admin, error) {
	if err := ValidateAdminSignup(adminID, password); err != nil {
		return nil, err
	}
	return &Admin{
		AdminID:  adminID,
		Password: password,
		Email:    email,
	}, nil
}

// ValidateAdminSignup applies the admin signup format checks.
func ValidateAdminSignup(adminID, password string) error {
	if len(adminID) < 3 {
		return apperrors.NewValidationError("admin_id", "admin ID must be at least 3 characters long")
	}
	if len(password) < 6 {
		return apperrors.NewValidationError("password", "password must be at least 6 characters long")
	}
	return nil
}

func (a *Admin) ValidatePassword(input string) bool {
	return a.Password == input
}

func (a *Admin) ApplyUpdate(update AccountUpdate) {
	if update.Username != nil && *update.Username != "" {
		a.AdminID = *update.Username
	}
	if update.Password != nil && *update.Password != "" {
		a.Password = *update.Password
	}
	if update.Email != nil && *update.Email != "" {
		a.Email = *update.Email
	}
}
