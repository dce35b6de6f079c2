package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden de venta.
const (
	OrderStatusCompleted = "completed"
	OrderStatusPending   = "pending"
	OrderStatusCancelled = "cancelled"
)

// Métodos de pago aceptados en caja.
const (
	PaymentMethodCash     = "cash"
	PaymentMethodTransfer = "transfer"
	PaymentMethodCard     = "card"
)

// Estados de pago.
const (
	PaymentStatusPaid    = "paid"
	PaymentStatusPending = "pending"
)

// Order representa la cabecera de una venta. Total = Subtotal − Discount + Tax,
// siempre recalculado en el servidor a partir de las líneas; nunca se confía
// en un total enviado por el cliente. Una orden no se edita después de creada.
type Order struct {
	ID            string
	OrderNumber   string  // único, legible (ORD-YYYYMMDD-XXXXXX)
	CustomerID    *string // opcional; referencia débil (el cliente se borra lógico)
	UserID        string  // cajero que procesó la venta
	Status        string
	Subtotal      decimal.Decimal
	Discount      decimal.Decimal
	Tax           decimal.Decimal
	Total         decimal.Decimal
	PaymentMethod string
	PaymentStatus string
	Notes         string
	CreatedAt     time.Time
}
