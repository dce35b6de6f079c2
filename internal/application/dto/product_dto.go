package dto

import "github.com/shopspring/decimal"

// CreateProductRequest cuerpo de POST /api/products.
type CreateProductRequest struct {
	SKU          string          `json:"sku"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	Cost         decimal.Decimal `json:"cost"`
	InitialStock int             `json:"initial_stock"`
	MinStock     int             `json:"min_stock"`
	MaxStock     int             `json:"max_stock"`
}

// UpdateProductRequest cuerpo de PUT /api/products/:id. El stock no se toca
// aquí: solo cambia vía movimientos de bodega.
type UpdateProductRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Cost        decimal.Decimal `json:"cost"`
	MinStock    int             `json:"min_stock"`
	MaxStock    int             `json:"max_stock"`
}

// ProductResponse producto en respuestas.
type ProductResponse struct {
	ID            string          `json:"id"`
	SKU           string          `json:"sku"`
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	Price         decimal.Decimal `json:"price"`
	Cost          decimal.Decimal `json:"cost"`
	StockQuantity int             `json:"stock_quantity"`
	MinStock      int             `json:"min_stock"`
	MaxStock      int             `json:"max_stock"`
	IsActive      bool            `json:"is_active"`
	CreatedAt     string          `json:"created_at"`
}

// ListProductsRequest filtros de GET /api/products.
type ListProductsRequest struct {
	IncludeInactive bool `query:"includeInactive"`
	LowStock        bool `query:"lowStock"`
	PageRequest
}
