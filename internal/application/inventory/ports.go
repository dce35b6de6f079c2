package inventory

import (
	"context"

	"github.com/quangthoIT/CRM-Lospec-sub000/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD con los repos
// que necesita el motor de bodega. Garantiza que el cambio de stock y su
// entrada en el ledger se persistan juntos o ninguno.
type TxRunner interface {
	RunInventory(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		ledgerRepo repository.WarehouseTransactionRepository,
	) error) error
}
