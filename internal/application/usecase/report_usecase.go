package usecase

import (
	"context"

	"github.com/quangthoIT/CRM-Lospec-sub000/internal/application/dto"
	"github.com/quangthoIT/CRM-Lospec-sub000/internal/domain/repository"
)

// ReportUseCase proyecciones de reporte sobre órdenes completadas.
type ReportUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(analyticsRepo repository.AnalyticsRepository) *ReportUseCase {
	return &ReportUseCase{analyticsRepo: analyticsRepo}
}

// SalesReport agrega ventas del rango (conteo, bruto, descuento, impuesto, neto).
func (uc *ReportUseCase) SalesReport(ctx context.Context, in dto.SalesReportRequest) (*dto.SalesReportResponse, error) {
	from, to, err := dto.ParseDateRange(in.StartDate, in.EndDate)
	if err != nil {
		return nil, err
	}
	summary, err := uc.analyticsRepo.SalesSummary(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return &dto.SalesReportResponse{
		OrderCount:    summary.OrderCount,
		GrossSales:    summary.GrossSales,
		TotalDiscount: summary.TotalDiscount,
		TotalTax:      summary.TotalTax,
		NetSales:      summary.NetSales,
	}, nil
}
