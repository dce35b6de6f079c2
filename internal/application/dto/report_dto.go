package dto

import "github.com/shopspring/decimal"

// SalesReportRequest filtros de GET /api/reports/sales.
type SalesReportRequest struct {
	StartDate string `query:"startDate"`
	EndDate   string `query:"endDate"`
}

// SalesReportResponse agregado de ventas del rango.
type SalesReportResponse struct {
	OrderCount    int             `json:"order_count"`
	GrossSales    decimal.Decimal `json:"gross_sales"`
	TotalDiscount decimal.Decimal `json:"total_discount"`
	TotalTax      decimal.Decimal `json:"total_tax"`
	NetSales      decimal.Decimal `json:"net_sales"`
}
