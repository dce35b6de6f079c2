package sales

import (
	"context"

	"github.com/quangthoIT/CRM-Lospec-sub000/internal/domain/repository"
)

// SalesTxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa transacción. Garantiza el alcance atómico del
// checkout: o se persisten orden, líneas, descuento de stock, ledger y
// acumulados del cliente, o ninguno.
type SalesTxRunner interface {
	RunSale(ctx context.Context, fn func(
		orderRepo repository.OrderRepository,
		productRepo repository.ProductRepository,
		ledgerRepo repository.WarehouseTransactionRepository,
		customerRepo repository.CustomerRepository,
	) error) error
}
