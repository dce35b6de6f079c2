package repository

import (
	"context"

	"github.com/quangthoIT/CRM-Lospec-sub000/internal/domain/entity"
)

// ProductRepository puerto de persistencia de productos.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetBySKU(ctx context.Context, sku string) (*entity.Product, error)
	// List lista productos. onlyActive filtra borrados lógicos; lowStock
	// filtra productos con stock_quantity <= min_stock.
	List(ctx context.Context, onlyActive, lowStock bool, limit, offset int) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	SoftDelete(ctx context.Context, id string) error

	// DecrementStock resta quantity al stock con un update condicional
	// (stock_quantity >= quantity). Retorna ErrInsufficientStock si no hay
	// stock suficiente en el momento del decremento: dos ventas compitiendo
	// por las últimas unidades se serializan en la BD, no en la aplicación.
	DecrementStock(ctx context.Context, productID string, quantity int) error
	// IncrementStock suma quantity al stock (entrada por compra o ajuste).
	IncrementStock(ctx context.Context, productID string, quantity int) error
}
