package dto

import "github.com/shopspring/decimal"

// RegisterImportRequest cuerpo de POST /api/inventory/imports (recepción de
// compra: suma stock y deja entrada import en el ledger).
type RegisterImportRequest struct {
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Notes     string          `json:"notes"`
}

// AdjustStockRequest cuerpo de POST /api/inventory/adjustments. Delta positivo
// suma stock (import), negativo descuenta (export, sujeto a stock disponible).
type AdjustStockRequest struct {
	ProductID string `json:"product_id"`
	Delta     int    `json:"delta"`
	Notes     string `json:"notes"`
}

// WarehouseTransactionResponse entrada del ledger en respuestas.
type WarehouseTransactionResponse struct {
	ID              string          `json:"id"`
	TransactionType string          `json:"transaction_type"`
	ProductID       string          `json:"product_id"`
	Quantity        int             `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	Total           decimal.Decimal `json:"total"`
	ReferenceType   string          `json:"reference_type"`
	ReferenceID     string          `json:"reference_id"`
	UserID          string          `json:"user_id"`
	Notes           string          `json:"notes,omitempty"`
	CreatedAt       string          `json:"created_at"`
}

// ListTransactionsRequest filtros de GET /api/inventory/transactions.
type ListTransactionsRequest struct {
	ProductID string `query:"productId"`
	StartDate string `query:"startDate"`
	EndDate   string `query:"endDate"`
	PageRequest
}
