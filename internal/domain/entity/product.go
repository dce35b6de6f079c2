package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto o SKU del catálogo.
// StockQuantity es un contador derivado: solo lo mutan el motor de ventas
// (salida por orden) y el de compras (entrada), siempre dentro de una
// transacción, más el ajuste manual que deja rastro en el ledger.
type Product struct {
	ID            string
	SKU           string // código único
	Name          string
	Description   string
	Price         decimal.Decimal // precio de venta
	Cost          decimal.Decimal // costo de compra
	StockQuantity int             // nunca negativo (CHECK en BD + update condicional)
	MinStock      int
	MaxStock      int
	IsActive      bool // borrado lógico
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
