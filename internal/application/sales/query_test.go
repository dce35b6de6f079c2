package sales_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quangthoIT/CRM-Lospec-sub000/internal/application/dto"
	"github.com/quangthoIT/CRM-Lospec-sub000/internal/application/sales"
	"github.com/quangthoIT/CRM-Lospec-sub000/internal/domain"
	"github.com/quangthoIT/CRM-Lospec-sub000/internal/domain/entity"
)

func buildQueryUseCase(store *memStore) *sales.OrderQueryUseCase {
	return sales.NewOrderQueryUseCase(&memOrderRepo{store: store})
}

// checkout crea una orden completa vía el caso de uso de escritura.
func checkout(t *testing.T, store *memStore, customerID string, items []dto.CartLineRequest) *dto.OrderResponse {
	t.Helper()
	resp, err := buildUseCase(store).CreateOrder(context.Background(), testCashierID, dto.CreateOrderRequest{
		CustomerID:    customerID,
		Items:         items,
		PaymentMethod: entity.PaymentMethodCash,
	})
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests — detalle de orden
// ──────────────────────────────────────────────────────────────────────────────

func TestGetOrder_NoExiste(t *testing.T) {
	store := newMemStore()
	uc := buildQueryUseCase(store)

	_, err := uc.GetOrder(context.Background(), "00000000-0000-0000-0000-00000000dead")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Leer el detalle no muta nada: dos lecturas consecutivas devuelven
// exactamente lo mismo, y lo mismo que devolvió el checkout.
func TestGetOrder_LecturaIdempotente(t *testing.T) {
	store := newMemStore()
	prodA := seedProduct(store, "Café 500g", "10000", 10)
	prodB := seedProduct(store, "Azúcar 1kg", "5000", 10)
	created := checkout(t, store, "", []dto.CartLineRequest{
		{ProductID: prodA, Quantity: 2, UnitPrice: d("10000")},
		{ProductID: prodB, Quantity: 1, UnitPrice: d("5000")},
	})

	uc := buildQueryUseCase(store)
	first, err := uc.GetOrder(context.Background(), created.ID)
	require.NoError(t, err)
	second, err := uc.GetOrder(context.Background(), created.ID)
	require.NoError(t, err)

	assert.Equal(t, first, second, "dos lecturas consecutivas deben ser idénticas")
	assert.Equal(t, created, first, "el detalle debe coincidir con lo que devolvió el checkout")

	// Cabecera + líneas unidas, en el orden del carrito.
	require.Len(t, first.Items, 2)
	assert.Equal(t, 1, first.Items[0].LineNumber)
	assert.Equal(t, "Café 500g", first.Items[0].ProductName)
	assert.Equal(t, 2, first.Items[1].LineNumber)
	assert.Equal(t, "Azúcar 1kg", first.Items[1].ProductName)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests — listado con filtros
// ──────────────────────────────────────────────────────────────────────────────

// seedHistory crea tres órdenes (dos del cliente, una de mostrador) con
// fechas conocidas en días consecutivos.
func seedHistory(t *testing.T, store *memStore) (custID string, ids [3]string) {
	t.Helper()
	prodA := seedProduct(store, "Café 500g", "10000", 100)
	custID = seedCustomer(store, "Cliente Frecuente")

	line := []dto.CartLineRequest{{ProductID: prodA, Quantity: 1, UnitPrice: d("10000")}}
	ids[0] = checkout(t, store, custID, line).ID
	ids[1] = checkout(t, store, "", line).ID
	ids[2] = checkout(t, store, custID, line).ID

	base := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)
	for i, id := range ids {
		store.orders[id].CreatedAt = base.AddDate(0, 0, i)
	}
	return custID, ids
}

func TestListOrders_MasRecientePrimero(t *testing.T) {
	store := newMemStore()
	_, ids := seedHistory(t, store)
	uc := buildQueryUseCase(store)

	out, err := uc.ListOrders(context.Background(), dto.ListOrdersRequest{})
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, ids[2], out[0].ID, "la orden más reciente va primero")
	assert.Equal(t, ids[1], out[1].ID)
	assert.Equal(t, ids[0], out[2].ID)
}

func TestListOrders_FiltraPorCliente(t *testing.T) {
	store := newMemStore()
	custID, ids := seedHistory(t, store)
	uc := buildQueryUseCase(store)

	out, err := uc.ListOrders(context.Background(), dto.ListOrdersRequest{CustomerID: custID})
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, ids[2], out[0].ID)
	assert.Equal(t, ids[0], out[1].ID)
	for _, o := range out {
		require.NotNil(t, o.CustomerID)
		assert.Equal(t, custID, *o.CustomerID)
	}
}

func TestListOrders_FiltraPorEstado(t *testing.T) {
	store := newMemStore()
	_, ids := seedHistory(t, store)
	store.orders[ids[1]].Status = entity.OrderStatusCancelled
	uc := buildQueryUseCase(store)

	out, err := uc.ListOrders(context.Background(), dto.ListOrdersRequest{Status: entity.OrderStatusCompleted})
	require.NoError(t, err)
	require.Len(t, out, 2)
	for _, o := range out {
		assert.Equal(t, entity.OrderStatusCompleted, o.Status)
	}
}

// El rango de fechas es inclusivo: endDate cubre hasta el final de ese día.
func TestListOrders_FiltraPorRangoDeFechas(t *testing.T) {
	store := newMemStore()
	_, ids := seedHistory(t, store) // órdenes el 1, 2 y 3 de agosto
	uc := buildQueryUseCase(store)

	out, err := uc.ListOrders(context.Background(), dto.ListOrdersRequest{
		StartDate: "2025-08-02",
		EndDate:   "2025-08-02",
	})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, ids[1], out[0].ID)

	out, err = uc.ListOrders(context.Background(), dto.ListOrdersRequest{StartDate: "2025-08-02"})
	require.NoError(t, err)
	assert.Len(t, out, 2, "desde el 2 de agosto en adelante")
}

func TestListOrders_FechaInvalida(t *testing.T) {
	store := newMemStore()
	uc := buildQueryUseCase(store)

	_, err := uc.ListOrders(context.Background(), dto.ListOrdersRequest{StartDate: "02/08/2025"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestListOrders_Paginacion(t *testing.T) {
	store := newMemStore()
	_, ids := seedHistory(t, store)
	uc := buildQueryUseCase(store)

	out, err := uc.ListOrders(context.Background(), dto.ListOrdersRequest{
		PageRequest: dto.PageRequest{Limit: 2, Offset: 2},
	})
	require.NoError(t, err)
	require.Len(t, out, 1, "tercera página de tamaño 2: solo queda la más antigua")
	assert.Equal(t, ids[0], out[0].ID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests — acumulados del cliente tras N órdenes
// ──────────────────────────────────────────────────────────────────────────────

// Tras N checkouts del mismo cliente, los acumulados crecen monótonamente:
// total_orders == N y total_spent == Σ totales.
func TestCustomerAggregates_MonotonosTrasNOrdenes(t *testing.T) {
	store := newMemStore()
	prodA := seedProduct(store, "Café 500g", "10000", 100)
	custID := seedCustomer(store, "Cliente Frecuente")

	const n = 5
	expectedSpent := decimal.Zero
	for i := 0; i < n; i++ {
		resp := checkout(t, store, custID, []dto.CartLineRequest{
			{ProductID: prodA, Quantity: i + 1, UnitPrice: d("10000")},
		})
		expectedSpent = expectedSpent.Add(resp.Total)

		cust := store.customers[custID]
		assert.Equal(t, i+1, cust.TotalOrders, "total_orders crece de a uno")
		assert.True(t, expectedSpent.Equal(cust.TotalSpent),
			"total_spent tras %d órdenes: esperado %s, obtenido %s", i+1, expectedSpent, cust.TotalSpent)
	}
}
