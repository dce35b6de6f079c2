package repository

import (
	"context"
	"time"

	"github.com/quangthoIT/CRM-Lospec-sub000/internal/domain/entity"
)

// WarehouseTransactionRepository puerto del ledger de bodega (append-only:
// solo Create y lecturas; las entradas jamás se actualizan ni borran).
type WarehouseTransactionRepository interface {
	Create(ctx context.Context, tx *entity.WarehouseTransaction) error
	ListByProduct(ctx context.Context, productID string, from, to *time.Time, limit, offset int) ([]*entity.WarehouseTransaction, error)
	List(ctx context.Context, from, to *time.Time, limit, offset int) ([]*entity.WarehouseTransaction, error)
}
