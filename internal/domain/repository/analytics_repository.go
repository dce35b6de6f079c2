package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// SalesSummary agregado de ventas en un rango de fechas (proyección de solo
// lectura sobre órdenes completadas).
type SalesSummary struct {
	OrderCount    int
	GrossSales    decimal.Decimal // Σ subtotal
	TotalDiscount decimal.Decimal
	TotalTax      decimal.Decimal
	NetSales      decimal.Decimal // Σ total
}

// AnalyticsRepository puerto de consultas de reporte (sin invariantes de
// escritura; solo ve estado ya commiteado).
type AnalyticsRepository interface {
	SalesSummary(ctx context.Context, from, to *time.Time) (*SalesSummary, error)
}
