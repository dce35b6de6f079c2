package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/quangthoIT/CRM-Lospec-sub000/internal/domain/entity"
	"github.com/quangthoIT/CRM-Lospec-sub000/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de reporte sobre órdenes completadas (solo lectura).
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// SalesSummary agrega ventas del rango. COALESCE para rangos sin órdenes.
func (r *AnalyticsRepo) SalesSummary(ctx context.Context, from, to *time.Time) (*repository.SalesSummary, error) {
	query := `
		SELECT COUNT(*),
		       COALESCE(SUM(subtotal), 0),
		       COALESCE(SUM(discount), 0),
		       COALESCE(SUM(tax), 0),
		       COALESCE(SUM(total), 0)
		FROM orders WHERE status = $1`
	args := []any{entity.OrderStatusCompleted}
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

	var s repository.SalesSummary
	err := r.q.QueryRow(ctx, query, args...).Scan(
		&s.OrderCount, &s.GrossSales, &s.TotalDiscount, &s.TotalTax, &s.NetSales,
	)
	if err != nil {
		return nil, fmt.Errorf("sales summary: %w", err)
	}
	return &s, nil
}
