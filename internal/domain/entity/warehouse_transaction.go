package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de bodega.
const (
	TransactionTypeImport = "import" // entrada (compra, ajuste a favor)
	TransactionTypeExport = "export" // salida (venta, ajuste en contra)
)

// Tipos de documento de referencia de un movimiento.
const (
	ReferenceTypeOrder    = "order"
	ReferenceTypePurchase = "purchase"
	ReferenceTypeManual   = "manual"
)

// WarehouseTransaction es una entrada inmutable del ledger de bodega.
// El ledger es append-only y reconcilia products.stock_quantity contra el
// histórico: stock_inicial − Σ(export) + Σ(import) = stock_actual.
type WarehouseTransaction struct {
	ID              string
	TransactionType string
	ProductID       string
	Quantity        int
	UnitPrice       decimal.Decimal
	Total           decimal.Decimal
	ReferenceType   string
	ReferenceID     string
	UserID          string
	Notes           string
	CreatedAt       time.Time
}
