package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer representa un cliente del negocio.
// TotalOrders y TotalSpent son acumulados que solo incrementa el coordinador
// de ventas (una vez por orden completada); nunca se recalculan desde cero.
type Customer struct {
	ID          string
	Name        string
	Email       string
	Phone       string
	Address     string
	TotalOrders int
	TotalSpent  decimal.Decimal
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
