package service

import (
	"context"

	"theme-park-ticketing/internal/model"
	"theme-park-ticketing/internal/session"
	apperrors "theme-park-ticketing/pkg/app_errors"
)

type AuthService interface {
	Signup(ctx context.Context, role session.Role, username, password, email string) error
	Login(ctx context.Context, role session.Role, username, password string) (*session.Session, error)
	Logout(ctx context.Context, token string)
	UpdateAccount(ctx context.Context, sess *session.Session, update model.AccountUpdate) error
	DeleteAccount(ctx context.Context, sess *session.Session) error

	CreateAdmin(ctx context.Context, adminID, password, email string) error
	DeleteAdmin(ctx context.Context, adminID string) error
	ChangeAdminPassword(ctx context.Context, adminID, newPassword string) error
}

type AuthServiceImpl struct {
	ds       *Dataset
	sessions *session.Manager
}

func NewAuthService(ds *Dataset, sessions *session.Manager) AuthService {
	return &AuthServiceImpl{ds: ds, sessions: sessions}
}

func (s *AuthServiceImpl) Signup(ctx context.Context, role session.Role, username, password, email string) error {
	s.ds.mu.Lock()
	defer s.ds.mu.Unlock()

	switch role {
	case session.RoleCustomer:
		customer, err := model.NewCustomerAccount(username, password, email)
		if err != nil {
			return err
		}
		if existing, _ := s.ds.findCustomer(username); existing != nil {
			return apperrors.NewValidationError("username", "username %s is already taken", username)
		}
		s.ds.customers = append(s.ds.customers, customer)
		return s.ds.customerRepo.Save(ctx, s.ds.customers)

	case session.RoleAdmin:
		admin, err := model.NewAdmin(username, password, email)
		if err != nil {
			return err
		}
		if existing, _ := s.ds.findAdmin(username); existing != nil {
			return apperrors.NewValidationError("admin_id", "admin ID already exists")
		}
		s.ds.admins = append(s.ds.admins, admin)
		return s.ds.adminRepo.Save(ctx, s.ds.admins)

	default:
		return apperrors.NewValidationError("role", "role must be customer or admin")
	}
}

// Login scans the relevant collection and compares credentials verbatim. The
// failure is deliberately generic: it does not distinguish a missing account
// from a wrong password.
func (s *AuthServiceImpl) Login(ctx context.Context, role session.Role, username, password string) (*session.Session, error) {
	s.ds.mu.Lock()
	defer s.ds.mu.Unlock()

	switch role {
	case session.RoleCustomer:
		customer, _ := s.ds.findCustomer(username)
		if customer == nil || !customer.ValidatePassword(password) {
			return nil, apperrors.ErrAuthentication
		}
		return s.sessions.Create(session.RoleCustomer, customer.Username), nil

	case session.RoleAdmin:
		admin, _ := s.ds.findAdmin(username)
		if admin == nil || !admin.ValidatePassword(password) {
			return nil, apperrors.ErrAuthentication
		}
		return s.sessions.Create(session.RoleAdmin, admin.AdminID), nil

	default:
		return nil, apperrors.ErrAuthentication
	}
}

func (s *AuthServiceImpl) Logout(ctx context.Context, token string) {
	s.sessions.Delete(token)
}

func (s *AuthServiceImpl) UpdateAccount(ctx context.Context, sess *session.Session, update model.AccountUpdate) error {
	s.ds.mu.Lock()
	defer s.ds.mu.Unlock()

	switch sess.Role {
	case session.RoleCustomer:
		customer, _ := s.ds.findCustomer(sess.AccountID)
		if customer == nil {
			return apperrors.ErrNotFound
		}
		if update.Username != nil && *update.Username != "" && *update.Username != customer.Username {
			if existing, _ := s.ds.findCustomer(*update.Username); existing != nil {
				return apperrors.NewValidationError("username", "username %s is already taken", *update.Username)
			}
		}
		oldID := customer.Username
		customer.ApplyUpdate(update)
		if err := s.ds.customerRepo.Save(ctx, s.ds.customers); err != nil {
			return err
		}
		if customer.Username != oldID {
			s.sessions.Rename(session.RoleCustomer, oldID, customer.Username)
		}
		return nil

	case session.RoleAdmin:
		admin, _ := s.ds.findAdmin(sess.AccountID)
		if admin == nil {
			return apperrors.ErrNotFound
		}
		if update.Username != nil && *update.Username != "" && *update.Username != admin.AdminID {
			if existing, _ := s.ds.findAdmin(*update.Username); existing != nil {
				return apperrors.NewValidationError("admin_id", "admin ID already exists")
			}
		}
		oldID := admin.AdminID
		admin.ApplyUpdate(update)
		if err := s.ds.adminRepo.Save(ctx, s.ds.admins); err != nil {
			return err
		}
		if admin.AdminID != oldID {
			s.sessions.Rename(session.RoleAdmin, oldID, admin.AdminID)
		}
		return nil

	default:
		return apperrors.ErrNotFound
	}
}

// DeleteAccount removes the account from its collection and ends its
// sessions. Orders already in the global log stay there.
func (s *AuthServiceImpl) DeleteAccount(ctx context.Context, sess *session.Session) error {
	s.ds.mu.Lock()
	defer s.ds.mu.Unlock()

	switch sess.Role {
	case session.RoleCustomer:
		customer, i := s.ds.findCustomer(sess.AccountID)
		if customer == nil {
			return apperrors.ErrNotFound
		}
		s.ds.customers = append(s.ds.customers[:i], s.ds.customers[i+1:]...)
		if err := s.ds.customerRepo.Save(ctx, s.ds.customers); err != nil {
			return err
		}
		s.sessions.DeleteForAccount(session.RoleCustomer, customer.Username)
		return nil

	case session.RoleAdmin:
		return s.deleteAdminLocked(ctx, sess.AccountID)

	default:
		return apperrors.ErrNotFound
	}
}

func (s *AuthServiceImpl) CreateAdmin(ctx context.Context, adminID, password, email string) error {
	s.ds.mu.Lock()
	defer s.ds.mu.Unlock()

	admin, err := model.NewAdmin(adminID, password, email)
	if err != nil {
		return err
	}
	if existing, _ := s.ds.findAdmin(adminID); existing != nil {
		return apperrors.NewValidationError("admin_id", "admin ID already exists")
	}
	s.ds.admins = append(s.ds.admins, admin)
	return s.ds.adminRepo.Save(ctx, s.ds.admins)
}

func (s *AuthServiceImpl) DeleteAdmin(ctx context.Context, adminID string) error {
	s.ds.mu.Lock()
	defer s.ds.mu.Unlock()

	return s.deleteAdminLocked(ctx, adminID)
}

func (s *AuthServiceImpl) deleteAdminLocked(ctx context.Context, adminID string) error {
	admin, i := s.ds.findAdmin(adminID)
	if admin == nil {
		return apperrors.ErrNotFound
	}
	s.ds.admins = append(s.ds.admins[:i], s.ds.admins[i+1:]...)
	if err := s.ds.adminRepo.Save(ctx, s.ds.admins); err != nil {
		return err
	}
	s.sessions.DeleteForAccount(session.RoleAdmin, adminID)
	return nil
}

func (s *AuthServiceImpl) ChangeAdminPassword(ctx context.Context, adminID, newPassword string) error {
	s.ds.mu.Lock()
	defer s.ds.mu.Unlock()

	admin, _ := s.ds.findAdmin(adminID)
	if admin == nil {
		return apperrors.ErrNotFound
	}
	admin.Password = newPassword
	return s.ds.adminRepo.Save(ctx, s.ds.admins)
}
