package entity

import "github.com/shopspring/decimal"

// OrderItem representa una línea de una orden. ProductName, ProductSKU y
// UnitPrice son snapshots al momento de la venta: ediciones posteriores del
// catálogo no alteran órdenes históricas.
type OrderItem struct {
	ID          string
	OrderID     string
	LineNumber  int // posición 1..N en el carrito; define el orden del detalle
	ProductID   string
	ProductName string
	ProductSKU  string
	Quantity    int // > 0
	UnitPrice   decimal.Decimal
	Total       decimal.Decimal // Quantity × UnitPrice
}
