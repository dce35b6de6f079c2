package sales

import (
	"context"

	"github.com/quangthoIT/CRM-Lospec-sub000/internal/application/dto"
	"github.com/quangthoIT/CRM-Lospec-sub000/internal/domain"
	"github.com/quangthoIT/CRM-Lospec-sub000/internal/domain/repository"
)

// OrderQueryUseCase capa de lectura de órdenes (historial y detalle).
// Sin invariantes de escritura; solo ve órdenes ya commiteadas.
type OrderQueryUseCase struct {
	orderRepo repository.OrderRepository
}

// NewOrderQueryUseCase construye el caso de uso.
func NewOrderQueryUseCase(orderRepo repository.OrderRepository) *OrderQueryUseCase {
	return &OrderQueryUseCase{orderRepo: orderRepo}
}

// GetOrder obtiene la cabecera de una orden con sus líneas.
func (uc *OrderQueryUseCase) GetOrder(ctx context.Context, id string) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.orderRepo.GetItemsByOrderID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order, items), nil
}

// ListOrders lista órdenes con filtros de estado, cliente y rango de fechas.
func (uc *OrderQueryUseCase) ListOrders(ctx context.Context, in dto.ListOrdersRequest) ([]*dto.OrderResponse, error) {
	in.DefaultPage()
	from, to, err := dto.ParseDateRange(in.StartDate, in.EndDate)
	if err != nil {
		return nil, err
	}
	orders, err := uc.orderRepo.List(ctx, repository.OrderFilter{
		Status:     in.Status,
		CustomerID: in.CustomerID,
		From:       from,
		To:         to,
		Limit:      in.Limit,
		Offset:     in.Offset,
	})
	if err != nil {
		return nil, err
	}
	list := make([]*dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		list = append(list, toOrderResponse(o, nil))
	}
	return list, nil
}
