package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/quangthoIT/CRM-Lospec-sub000/internal/domain/entity"
)

// CustomerRepository puerto de persistencia de clientes.
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id string) (*entity.Customer, error)
	List(ctx context.Context, onlyActive bool, limit, offset int) ([]*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
	SoftDelete(ctx context.Context, id string) error

	// ApplyCompletedOrder incrementa total_orders (+1) y total_spent (+orderTotal)
	// en un solo update atómico en la BD, nunca read-modify-write en la
	// aplicación (evita lost updates bajo concurrencia).
	ApplyCompletedOrder(ctx context.Context, customerID string, orderTotal decimal.Decimal) error
}
