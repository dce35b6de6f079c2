package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/quangthoIT/CRM-Lospec-sub000/internal/application/inventory"
	"github.com/quangthoIT/CRM-Lospec-sub000/internal/application/sales"
	"github.com/quangthoIT/CRM-Lospec-sub000/internal/domain/repository"
)

// Ensure TxRunner implements sales.SalesTxRunner and inventory.TxRunner.
var _ sales.SalesTxRunner = (*TxRunner)(nil)
var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL. Acota cada
// transacción con un timeout: ante contención de locks que no resuelve a
// tiempo, se aborta y la BD revierte todo (nunca queda estado parcial).
type TxRunner struct {
	pool    *pgxpool.Pool
	timeout time.Duration
}

// NewTxRunner construye el runner con el pool. timeout <= 0 usa 5s.
func NewTxRunner(pool *pgxpool.Pool, timeout time.Duration) *TxRunner {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &TxRunner{pool: pool, timeout: timeout}
}

// RunSale inicia una transacción con los repos del checkout, ejecuta fn con
// repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) RunSale(ctx context.Context, fn func(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	ledgerRepo repository.WarehouseTransactionRepository,
	customerRepo repository.CustomerRepository,
) error) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	orderRepo := NewOrderRepository(tx)
	productRepo := NewProductRepository(tx)
	ledgerRepo := NewWarehouseTransactionRepository(tx)
	customerRepo := NewCustomerRepository(tx)

	if err := fn(orderRepo, productRepo, ledgerRepo, customerRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunInventory inicia una transacción con los repos del motor de bodega
// (entradas por compra y ajustes manuales).
func (r *TxRunner) RunInventory(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	ledgerRepo repository.WarehouseTransactionRepository,
) error) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewProductRepository(tx), NewWarehouseTransactionRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
