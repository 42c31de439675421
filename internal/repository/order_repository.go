package repository

import (
	"context"
	"path/filepath"

	"theme-park-ticketing/internal/model"
)

type OrderRepository interface {
	Load(ctx context.Context) ([]*model.Order, error)
	Save(ctx context.Context, orders []*model.Order) error
}

type OrderRepositoryImpl struct {
	path string
}

func NewOrderRepository(dir string) OrderRepository {
	return &OrderRepositoryImpl{
		path: filepath.Join(dir, "orders.json"),
	}
}

func (r *OrderRepositoryImpl) Load(ctx context.Context) ([]*model.Order, error) {
	return readCollection[*model.Order](r.path)
}

func (r *OrderRepositoryImpl) Save(ctx context.Context, orders []*model.Order) error {
	return writeCollection(r.path, orders)
}
