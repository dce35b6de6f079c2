package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/quangthoIT/CRM-Lospec-sub000/internal/application/dto"
	"github.com/quangthoIT/CRM-Lospec-sub000/internal/domain"
	"github.com/quangthoIT/CRM-Lospec-sub000/internal/domain/entity"
	"github.com/quangthoIT/CRM-Lospec-sub000/internal/domain/repository"
)

// LedgerUseCase registra movimientos de bodega (entradas por compra y ajustes
// manuales) y sirve el histórico. Las salidas por venta no pasan por aquí:
// las escribe el coordinador de ventas dentro de su propia transacción.
type LedgerUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	ledgerRepo  repository.WarehouseTransactionRepository
}

// NewLedgerUseCase construye el caso de uso.
func NewLedgerUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	ledgerRepo repository.WarehouseTransactionRepository,
) *LedgerUseCase {
	return &LedgerUseCase{
		txRunner:    txRunner,
		productRepo: productRepo,
		ledgerRepo:  ledgerRepo,
	}
}

// RegisterImport recibe una compra: suma stock y deja una entrada import en el
// ledger (referencia purchase), ambas en la misma transacción.
func (uc *LedgerUseCase) RegisterImport(ctx context.Context, userID string, in dto.RegisterImportRequest) (*dto.WarehouseTransactionResponse, error) {
	if in.ProductID == "" || in.Quantity <= 0 || in.UnitPrice.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil || !product.IsActive {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	entry := &entity.WarehouseTransaction{
		ID:              uuid.New().String(),
		TransactionType: entity.TransactionTypeImport,
		ProductID:       in.ProductID,
		Quantity:        in.Quantity,
		UnitPrice:       in.UnitPrice,
		Total:           in.UnitPrice.Mul(decimal.NewFromInt(int64(in.Quantity))),
		ReferenceType:   entity.ReferenceTypePurchase,
		ReferenceID:     uuid.New().String(), // documento de compra generado
		UserID:          userID,
		Notes:           in.Notes,
		CreatedAt:       now,
	}
	err = uc.txRunner.RunInventory(ctx, func(
		productRepo repository.ProductRepository,
		ledgerRepo repository.WarehouseTransactionRepository,
	) error {
		if err := productRepo.IncrementStock(ctx, in.ProductID, in.Quantity); err != nil {
			return err
		}
		return ledgerRepo.Create(ctx, entry)
	})
	if err != nil {
		return nil, err
	}
	return toTransactionResponse(entry), nil
}

// RegisterManualAdjustment ajusta stock por edición administrativa. Positivo
// entra como import, negativo sale como export con decremento condicional
// (el stock nunca queda negativo, ni por ajuste manual).
func (uc *LedgerUseCase) RegisterManualAdjustment(ctx context.Context, userID, productID string, delta int, notes string) (*dto.WarehouseTransactionResponse, error) {
	if productID == "" || delta == 0 {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil || !product.IsActive {
		return nil, domain.ErrNotFound
	}

	txType := entity.TransactionTypeImport
	qty := delta
	if delta < 0 {
		txType = entity.TransactionTypeExport
		qty = -delta
	}
	now := time.Now()
	entry := &entity.WarehouseTransaction{
		ID:              uuid.New().String(),
		TransactionType: txType,
		ProductID:       productID,
		Quantity:        qty,
		UnitPrice:       product.Cost,
		Total:           product.Cost.Mul(decimal.NewFromInt(int64(qty))),
		ReferenceType:   entity.ReferenceTypeManual,
		ReferenceID:     uuid.New().String(),
		UserID:          userID,
		Notes:           notes,
		CreatedAt:       now,
	}
	err = uc.txRunner.RunInventory(ctx, func(
		productRepo repository.ProductRepository,
		ledgerRepo repository.WarehouseTransactionRepository,
	) error {
		if delta > 0 {
			if err := productRepo.IncrementStock(ctx, productID, qty); err != nil {
				return err
			}
		} else {
			if err := productRepo.DecrementStock(ctx, productID, qty); err != nil {
				return err
			}
		}
		return ledgerRepo.Create(ctx, entry)
	})
	if err != nil {
		return nil, err
	}
	return toTransactionResponse(entry), nil
}

// ListTransactions lista el ledger (opcionalmente por producto y rango de fechas).
func (uc *LedgerUseCase) ListTransactions(ctx context.Context, in dto.ListTransactionsRequest) ([]*dto.WarehouseTransactionResponse, error) {
	in.DefaultPage()
	from, to, err := dto.ParseDateRange(in.StartDate, in.EndDate)
	if err != nil {
		return nil, err
	}
	var entries []*entity.WarehouseTransaction
	if in.ProductID != "" {
		entries, err = uc.ledgerRepo.ListByProduct(ctx, in.ProductID, from, to, in.Limit, in.Offset)
	} else {
		entries, err = uc.ledgerRepo.List(ctx, from, to, in.Limit, in.Offset)
	}
	if err != nil {
		return nil, err
	}
	list := make([]*dto.WarehouseTransactionResponse, 0, len(entries))
	for _, e := range entries {
		list = append(list, toTransactionResponse(e))
	}
	return list, nil
}

func toTransactionResponse(e *entity.WarehouseTransaction) *dto.WarehouseTransactionResponse {
	return &dto.WarehouseTransactionResponse{
		ID:              e.ID,
		TransactionType: e.TransactionType,
		ProductID:       e.ProductID,
		Quantity:        e.Quantity,
		UnitPrice:       e.UnitPrice,
		Total:           e.Total,
		ReferenceType:   e.ReferenceType,
		ReferenceID:     e.ReferenceID,
		UserID:          e.UserID,
		Notes:           e.Notes,
		CreatedAt:       e.CreatedAt.Format(time.RFC3339),
	}
}
