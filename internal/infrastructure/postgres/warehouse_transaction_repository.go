package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/quangthoIT/CRM-Lospec-sub000/internal/domain/entity"
	"github.com/quangthoIT/CRM-Lospec-sub000/internal/domain/repository"
)

var _ repository.WarehouseTransactionRepository = (*WarehouseTransactionRepo)(nil)

const transactionColumns = `id, transaction_type, product_id, quantity, unit_price, total, reference_type, reference_id, user_id, notes, created_at`

// WarehouseTransactionRepo adaptador del ledger de bodega sobre PostgreSQL
// (usable con pool o tx). Solo inserta y lee: el ledger es append-only.
type WarehouseTransactionRepo struct {
	q Querier
}

// NewWarehouseTransactionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewWarehouseTransactionRepository(q Querier) *WarehouseTransactionRepo {
	return &WarehouseTransactionRepo{q: q}
}

// Create persiste una entrada del ledger.
func (r *WarehouseTransactionRepo) Create(ctx context.Context, tx *entity.WarehouseTransaction) error {
	query := `
		INSERT INTO warehouse_transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		tx.ID, tx.TransactionType, tx.ProductID, tx.Quantity, tx.UnitPrice, tx.Total,
		tx.ReferenceType, tx.ReferenceID, tx.UserID, tx.Notes, tx.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert warehouse transaction: %w", err)
	}
	return nil
}

// ListByProduct lista movimientos de un producto en un rango de fechas.
func (r *WarehouseTransactionRepo) ListByProduct(ctx context.Context, productID string, from, to *time.Time, limit, offset int) ([]*entity.WarehouseTransaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM warehouse_transactions WHERE product_id = $1`
	args := []any{productID}
	pos := 2
	if from != nil {
		query += fmt.Sprintf(" AND created_at >= $%d", pos)
		args = append(args, *from)
		pos++
	}
	if to != nil {
		query += fmt.Sprintf(" AND created_at <= $%d", pos)
		args = append(args, *to)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)
	return r.list(ctx, query, args)
}

// List lista movimientos de todos los productos en un rango de fechas.
func (r *WarehouseTransactionRepo) List(ctx context.Context, from, to *time.Time, limit, offset int) ([]*entity.WarehouseTransaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM warehouse_transactions WHERE 1=1`
	var args []any
	pos := 1
	if from != nil {
		query += fmt.Sprintf(" AND created_at >= $%d", pos)
		args = append(args, *from)
		pos++
	}
	if to != nil {
		query += fmt.Sprintf(" AND created_at <= $%d", pos)
		args = append(args, *to)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)
	return r.list(ctx, query, args)
}

func (r *WarehouseTransactionRepo) list(ctx context.Context, query string, args []any) ([]*entity.WarehouseTransaction, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list warehouse transactions: %w", err)
	}
	defer rows.Close()
	var list []*entity.WarehouseTransaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan warehouse transaction: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// scanTransaction escanea una fila de warehouse_transactions.
func scanTransaction(row pgx.Row) (*entity.WarehouseTransaction, error) {
	var t entity.WarehouseTransaction
	err := row.Scan(
		&t.ID, &t.TransactionType, &t.ProductID, &t.Quantity, &t.UnitPrice, &t.Total,
		&t.ReferenceType, &t.ReferenceID, &t.UserID, &t.Notes, &t.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
