package sales

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/quangthoIT/CRM-Lospec-sub000/internal/application/dto"
	"github.com/quangthoIT/CRM-Lospec-sub000/internal/domain"
	"github.com/quangthoIT/CRM-Lospec-sub000/internal/domain/entity"
	"github.com/quangthoIT/CRM-Lospec-sub000/internal/domain/pricing"
	"github.com/quangthoIT/CRM-Lospec-sub000/internal/domain/repository"
	"github.com/quangthoIT/CRM-Lospec-sub000/pkg/logger"
)

// CreateOrderUseCase coordina el checkout: valida el carrito, calcula totales,
// y persiste orden + líneas + descuento de stock + ledger + acumulados del
// cliente como una sola unidad atómica. Varias cajas pueden ejecutar checkouts
// concurrentes; la BD serializa la disputa por stock (update condicional).
type CreateOrderUseCase struct {
	txRunner     SalesTxRunner
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
	taxRate      decimal.Decimal // fracción (0.10 = 10%), viene de config
	log          *logger.Logger
}

// NewCreateOrderUseCase construye el caso de uso.
func NewCreateOrderUseCase(
	txRunner SalesTxRunner,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	taxRate decimal.Decimal,
	log *logger.Logger,
) *CreateOrderUseCase {
	return &CreateOrderUseCase{
		txRunner:     txRunner,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		taxRate:      taxRate,
		log:          log,
	}
}

// cartLine línea ya validada, con nombre/SKU tomados del catálogo.
type cartLine struct {
	productID   string
	productName string
	productSKU  string
	quantity    int
	unitPrice   decimal.Decimal
	lineTotal   decimal.Decimal
}

// CreateOrder crea una orden de venta completa.
//
// Fuera de la transacción: validación del carrito (productos existentes y
// activos, cantidades > 0, precios >= 0) y cálculo de totales. Dentro de la
// transacción: insertar orden, por cada línea (en el orden del carrito)
// insertar línea + descontar stock condicionalmente + registrar salida en el
// ledger, y si hay cliente, incrementar sus acumulados. Cualquier fallo hace
// rollback de todo; no queda estado parcial visible.
//
// El precio unitario es el que manda la terminal (precio manual por línea);
// no se re-lee del catálogo. Sin clave de idempotencia: un reintento tras un
// commit ambiguo puede duplicar la orden (el caller no debe reintentar a ciegas).
func (uc *CreateOrderUseCase) CreateOrder(ctx context.Context, userID string, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}
	if len(in.Items) == 0 {
		return nil, domain.ErrEmptyCart
	}
	switch in.PaymentMethod {
	case entity.PaymentMethodCash, entity.PaymentMethodTransfer, entity.PaymentMethodCard:
	default:
		return nil, domain.ErrInvalidInput
	}
	if in.Discount.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	// Validar líneas contra el catálogo. El stock NO se verifica aquí: eso
	// sería check-then-act; la verificación real es el update condicional
	// dentro de la transacción.
	lines := make([]cartLine, 0, len(in.Items))
	priceLines := make([]pricing.Line, 0, len(in.Items))
	for _, item := range in.Items {
		if item.ProductID == "" || item.Quantity <= 0 || item.UnitPrice.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidLineItem
		}
		product, err := uc.productRepo.GetByID(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil || !product.IsActive {
			return nil, domain.ErrInvalidLineItem
		}
		qty := decimal.NewFromInt(int64(item.Quantity))
		lines = append(lines, cartLine{
			productID:   product.ID,
			productName: product.Name,
			productSKU:  product.SKU,
			quantity:    item.Quantity,
			unitPrice:   item.UnitPrice,
			lineTotal:   item.UnitPrice.Mul(qty),
		})
		priceLines = append(priceLines, pricing.Line{Quantity: item.Quantity, UnitPrice: item.UnitPrice})
	}

	// Validar cliente (opcional) fuera de la transacción, solo lectura.
	var customerID *string
	if in.CustomerID != "" {
		customer, err := uc.customerRepo.GetByID(ctx, in.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer == nil || !customer.IsActive {
			return nil, domain.ErrNotFound
		}
		customerID = &in.CustomerID
	}

	totals, err := pricing.ComputeTotals(priceLines, in.Discount, uc.taxRate)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	order := &entity.Order{
		ID:            uuid.New().String(),
		OrderNumber:   generateOrderNumber(now),
		CustomerID:    customerID,
		UserID:        userID,
		Status:        entity.OrderStatusCompleted,
		Subtotal:      totals.Subtotal,
		Discount:      in.Discount,
		Tax:           totals.Tax,
		Total:         totals.Total,
		PaymentMethod: in.PaymentMethod,
		PaymentStatus: entity.PaymentStatusPaid,
		Notes:         in.Notes,
		CreatedAt:     now,
	}
	items := make([]*entity.OrderItem, 0, len(lines))

	err = uc.txRunner.RunSale(ctx, func(
		orderRepo repository.OrderRepository,
		productRepo repository.ProductRepository,
		ledgerRepo repository.WarehouseTransactionRepository,
		customerRepo repository.CustomerRepository,
	) error {
		if err := orderRepo.Create(ctx, order); err != nil {
			return err
		}
		// Líneas en el orden del carrito (no se reordenan: define el orden
		// del ledger para auditoría).
		for i, line := range lines {
			item := &entity.OrderItem{
				ID:          uuid.New().String(),
				OrderID:     order.ID,
				LineNumber:  i + 1,
				ProductID:   line.productID,
				ProductName: line.productName,
				ProductSKU:  line.productSKU,
				Quantity:    line.quantity,
				UnitPrice:   line.unitPrice,
				Total:       line.lineTotal,
			}
			if err := orderRepo.CreateItem(ctx, item); err != nil {
				return err
			}
			// Descuento condicional: si el stock ya no alcanza (otra caja
			// ganó la carrera), retorna ErrInsufficientStock y toda la orden
			// hace rollback. Nunca se vende más de lo que hay.
			if err := productRepo.DecrementStock(ctx, line.productID, line.quantity); err != nil {
				return err
			}
			if err := ledgerRepo.Create(ctx, &entity.WarehouseTransaction{
				ID:              uuid.New().String(),
				TransactionType: entity.TransactionTypeExport,
				ProductID:       line.productID,
				Quantity:        line.quantity,
				UnitPrice:       line.unitPrice,
				Total:           line.lineTotal,
				ReferenceType:   entity.ReferenceTypeOrder,
				ReferenceID:     order.ID,
				UserID:          userID,
				Notes:           in.Notes,
				CreatedAt:       now,
			}); err != nil {
				return err
			}
			items = append(items, item)
		}
		if customerID != nil {
			if err := customerRepo.ApplyCompletedOrder(ctx, *customerID, order.Total); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		uc.log.Warn().Err(err).Str("order_number", order.OrderNumber).Msg("checkout fallido, rollback")
		return nil, err
	}

	uc.log.Info().
		Str("order_id", order.ID).
		Str("order_number", order.OrderNumber).
		Int("items", len(items)).
		Str("total", order.Total.String()).
		Msg("orden creada")

	return toOrderResponse(order, items), nil
}

// generateOrderNumber genera un consecutivo legible único: ORD-YYYYMMDD-XXXXXXXX.
// El sufijo sale de un UUID, así dos cajas no chocan sin coordinar secuencias.
func generateOrderNumber(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:8])
	return fmt.Sprintf("ORD-%s-%s", now.Format("20060102"), suffix)
}

func toOrderResponse(order *entity.Order, items []*entity.OrderItem) *dto.OrderResponse {
	resp := &dto.OrderResponse{
		ID:            order.ID,
		OrderNumber:   order.OrderNumber,
		CustomerID:    order.CustomerID,
		UserID:        order.UserID,
		Status:        order.Status,
		Subtotal:      order.Subtotal,
		Discount:      order.Discount,
		Tax:           order.Tax,
		Total:         order.Total,
		PaymentMethod: order.PaymentMethod,
		PaymentStatus: order.PaymentStatus,
		Notes:         order.Notes,
		CreatedAt:     order.CreatedAt.Format(time.RFC3339),
	}
	for _, it := range items {
		resp.Items = append(resp.Items, dto.OrderItemResponse{
			ID:          it.ID,
			LineNumber:  it.LineNumber,
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			ProductSKU:  it.ProductSKU,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Total:       it.Total,
		})
	}
	return resp
}
