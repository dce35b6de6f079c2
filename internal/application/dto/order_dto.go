package dto

import "github.com/shopspring/decimal"

// CartLineRequest una línea del carrito enviada por la terminal POS.
// Name y SKU llegan del cliente pero se re-leen del catálogo al crear la
// orden; UnitPrice sí se respeta tal cual (precio manual por línea).
type CartLineRequest struct {
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Name      string          `json:"name"`
	SKU       string          `json:"sku"`
}

// CreateOrderRequest cuerpo de POST /api/orders.
type CreateOrderRequest struct {
	CustomerID    string            `json:"customer_id"`
	Items         []CartLineRequest `json:"items"`
	Discount      decimal.Decimal   `json:"discount"`
	PaymentMethod string            `json:"payment_method"`
	Notes         string            `json:"notes"`
}

// OrderItemResponse línea de orden en respuestas.
type OrderItemResponse struct {
	ID          string          `json:"id"`
	LineNumber  int             `json:"line_number"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	ProductSKU  string          `json:"product_sku"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Total       decimal.Decimal `json:"total"`
}

// OrderResponse cabecera de orden (con líneas si se pidió el detalle).
type OrderResponse struct {
	ID            string              `json:"id"`
	OrderNumber   string              `json:"order_number"`
	CustomerID    *string             `json:"customer_id,omitempty"`
	UserID        string              `json:"user_id"`
	Status        string              `json:"status"`
	Subtotal      decimal.Decimal     `json:"subtotal"`
	Discount      decimal.Decimal     `json:"discount"`
	Tax           decimal.Decimal     `json:"tax"`
	Total         decimal.Decimal     `json:"total"`
	PaymentMethod string              `json:"payment_method"`
	PaymentStatus string              `json:"payment_status"`
	Notes         string              `json:"notes,omitempty"`
	CreatedAt     string              `json:"created_at"`
	Items         []OrderItemResponse `json:"items,omitempty"`
}

// ListOrdersRequest filtros de GET /api/orders.
type ListOrdersRequest struct {
	Status     string `query:"status"`
	CustomerID string `query:"customerId"`
	StartDate  string `query:"startDate"` // YYYY-MM-DD
	EndDate    string `query:"endDate"`   // YYYY-MM-DD
	PageRequest
}
