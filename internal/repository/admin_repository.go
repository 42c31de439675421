package repository

import (
	"context"
	"path/filepath"

	"theme-park-ticketing/internal/model"
)

// adminRecord is the persisted shape of an admin identity record.
type adminRecord struct {
	AdminID  string         `json:"admin_id"`
	Password string         `json:"password"`
	Email    string         `json:"email"`
	Orders   []*model.Order `json:"orders"`
}

type AdminRepository interface {
	Load(ctx context.Context) ([]*model.Admin, error)
	Save(ctx context.Context, admins []*model.Admin) error
}

type AdminRepositoryImpl struct {
	path string
}

func NewAdminRepository(dir string) AdminRepository {
	return &AdminRepositoryImpl{
		path: filepath.Join(dir, "admins.json"),
	}
}

func (r *AdminRepositoryImpl) Load(ctx context.Context) ([]*model.Admin, error) {
	records, err := readCollection[adminRecord](r.path)
	if err != nil {
		return nil, err
	}

	admins := make([]*model.Admin, 0, len(records))
	for _, record := range records {
		admins = append(admins, &model.Admin{
			AdminID:  record.AdminID,
			Password: record.Password,
			Email:    record.Email,
			Orders:   record.Orders,
		})
	}
	return admins, nil
}

func (r *AdminRepositoryImpl) Save(ctx context.Context, admins []*model.Admin) error {
	records := make([]adminRecord, 0, len(admins))
	for _, admin := range admins {
		records = append(records, adminRecord{
			AdminID:  admin.AdminID,
			Password: admin.Password,
			Email:    admin.Email,
			Orders:   admin.Orders,
		})
	}
	return writeCollection(r.path, records)
}
