package repository

import (
	"context"
	"path/filepath"

	"theme-park-ticketing/internal/model"
)

// customerRecord is the persisted shape of a customer account: identity plus
// its cart snapshots and purchase history, no behavior.
type customerRecord struct {
	Username        string         `json:"username"`
	Password        string         `json:"password"`
	Email           string         `json:"email"`
	Cart            []model.Ticket `json:"cart"`
	PurchaseHistory []*model.Order `json:"purchase_history"`
}

type CustomerRepository interface {
	Load(ctx context.Context) ([]*model.CustomerAccount, error)
	Save(ctx context.Context, customers []*model.CustomerAccount) error
}

type CustomerRepositoryImpl struct {
	path string
}

func NewCustomerRepository(dir string) CustomerRepository {
	return &CustomerRepositoryImpl{
		path: filepath.Join(dir, "customers.json"),
	}
}

func (r *CustomerRepositoryImpl) Load(ctx context.Context) ([]*model.CustomerAccount, error) {
	records, err := readCollection[customerRecord](r.path)
	if err != nil {
		return nil, err
	}

	customers := make([]*model.CustomerAccount, 0, len(records))
	for _, record := range records {
		customers = append(customers, &model.CustomerAccount{
			Username: record.Username,
			Password: record.Password,
			Email:    record.Email,
			Cart:     model.RestoreCart(record.Cart),
			History:  record.PurchaseHistory,
		})
	}
	return customers, nil
}

func (r *CustomerRepositoryImpl) Save(ctx context.Context, customers []*model.CustomerAccount) error {
	records := make([]customerRecord, 0, len(customers))
	for _, customer := range customers {
		records = append(records, customerRecord{
			Username:        customer.Username,
			Password:        customer.Password,
			Email:           customer.Email,
			Cart:            customer.Cart.Items(),
			PurchaseHistory: customer.History,
		})
	}
	return writeCollection(r.path, records)
}
