package billing

import (
	"context"
	"fmt"

	"github.com/quangthoIT/CRM-Lospec-sub000/internal/domain"
	"github.com/quangthoIT/CRM-Lospec-sub000/internal/domain/repository"
)

// ReceiptUseCase genera el recibo PDF de una orden ya commiteada.
type ReceiptUseCase struct {
	orderRepo repository.OrderRepository
	generator ReceiptPDFGenerator
	storeName string
}

// NewReceiptUseCase construye el caso de uso.
func NewReceiptUseCase(orderRepo repository.OrderRepository, generator ReceiptPDFGenerator, storeName string) *ReceiptUseCase {
	return &ReceiptUseCase{orderRepo: orderRepo, generator: generator, storeName: storeName}
}

// DownloadReceiptPDF carga la orden con sus líneas y genera el PDF.
// Retorna (bytes, nombre de archivo, nil) o domain.ErrNotFound si no existe.
func (uc *ReceiptUseCase) DownloadReceiptPDF(ctx context.Context, orderID string) ([]byte, string, error) {
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, "", fmt.Errorf("receipt: obtener orden: %w", err)
	}
	if order == nil {
		return nil, "", domain.ErrNotFound
	}
	items, err := uc.orderRepo.GetItemsByOrderID(ctx, orderID)
	if err != nil {
		return nil, "", fmt.Errorf("receipt: obtener líneas: %w", err)
	}
	pdf, err := uc.generator.GenerateReceiptPDF(ctx, order, items, uc.storeName)
	if err != nil {
		return nil, "", err
	}
	return pdf, fmt.Sprintf("recibo-%s.pdf", order.OrderNumber), nil
}
