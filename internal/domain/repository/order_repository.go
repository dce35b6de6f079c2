package repository

import (
	"context"
	"time"

	"github.com/quangthoIT/CRM-Lospec-sub000/internal/domain/entity"
)

// OrderFilter filtros para el listado de órdenes.
type OrderFilter struct {
	Status     string
	CustomerID string
	From       *time.Time
	To         *time.Time
	Limit      int
	Offset     int
}

// OrderRepository puerto de persistencia de órdenes y sus líneas.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	CreateItem(ctx context.Context, item *entity.OrderItem) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	GetItemsByOrderID(ctx context.Context, orderID string) ([]*entity.OrderItem, error)
	List(ctx context.Context, filter OrderFilter) ([]*entity.Order, error)
}
