package billing

import (
	"context"

	"github.com/quangthoIT/CRM-Lospec-sub000/internal/domain/entity"
)

// ReceiptPDFGenerator genera el recibo PDF de una orden (tirilla de venta).
type ReceiptPDFGenerator interface {
	GenerateReceiptPDF(ctx context.Context, order *entity.Order, items []*entity.OrderItem, storeName string) ([]byte, error)
}
