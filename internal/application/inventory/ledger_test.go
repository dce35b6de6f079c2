package inventory_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quangthoIT/CRM-Lospec-sub000/internal/application/dto"
	"github.com/quangthoIT/CRM-Lospec-sub000/internal/application/inventory"
	"github.com/quangthoIT/CRM-Lospec-sub000/internal/domain"
	"github.com/quangthoIT/CRM-Lospec-sub000/internal/domain/entity"
	"github.com/quangthoIT/CRM-Lospec-sub000/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria con semántica transaccional (snapshot + rollback)
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	mu       sync.Mutex
	products map[string]*entity.Product
	ledger   []*entity.WarehouseTransaction
}

func newMemStore() *memStore {
	return &memStore{products: make(map[string]*entity.Product)}
}

type memProductRepo struct{ store *memStore }

func (r *memProductRepo) Create(_ context.Context, p *entity.Product) error {
	cp := *p
	r.store.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	p, ok := r.store.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memProductRepo) GetBySKU(_ context.Context, _ string) (*entity.Product, error) {
	return nil, nil
}

func (r *memProductRepo) List(_ context.Context, _, _ bool, _, _ int) ([]*entity.Product, error) {
	return nil, nil
}

func (r *memProductRepo) Update(_ context.Context, _ *entity.Product) error { return nil }

func (r *memProductRepo) SoftDelete(_ context.Context, _ string) error { return nil }

func (r *memProductRepo) DecrementStock(_ context.Context, productID string, quantity int) error {
	p, ok := r.store.products[productID]
	if !ok {
		return domain.ErrNotFound
	}
	if p.StockQuantity < quantity {
		return domain.ErrInsufficientStock
	}
	p.StockQuantity -= quantity
	return nil
}

func (r *memProductRepo) IncrementStock(_ context.Context, productID string, quantity int) error {
	p, ok := r.store.products[productID]
	if !ok {
		return domain.ErrNotFound
	}
	p.StockQuantity += quantity
	return nil
}

type memLedgerRepo struct{ store *memStore }

func (r *memLedgerRepo) Create(_ context.Context, tx *entity.WarehouseTransaction) error {
	ct := *tx
	r.store.ledger = append(r.store.ledger, &ct)
	return nil
}

func (r *memLedgerRepo) ListByProduct(_ context.Context, productID string, _, _ *time.Time, limit, offset int) ([]*entity.WarehouseTransaction, error) {
	var out []*entity.WarehouseTransaction
	for _, tx := range r.store.ledger {
		if tx.ProductID == productID {
			ct := *tx
			out = append(out, &ct)
		}
	}
	return page(out, limit, offset), nil
}

func (r *memLedgerRepo) List(_ context.Context, _, _ *time.Time, limit, offset int) ([]*entity.WarehouseTransaction, error) {
	out := make([]*entity.WarehouseTransaction, 0, len(r.store.ledger))
	for _, tx := range r.store.ledger {
		ct := *tx
		out = append(out, &ct)
	}
	return page(out, limit, offset), nil
}

func page(in []*entity.WarehouseTransaction, limit, offset int) []*entity.WarehouseTransaction {
	if offset >= len(in) {
		return nil
	}
	in = in[offset:]
	if limit > 0 && limit < len(in) {
		in = in[:limit]
	}
	return in
}

type memTxRunner struct{ store *memStore }

func (r *memTxRunner) RunInventory(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	ledgerRepo repository.WarehouseTransactionRepository,
) error) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	snapProducts := make(map[string]*entity.Product, len(r.store.products))
	for id, p := range r.store.products {
		cp := *p
		snapProducts[id] = &cp
	}
	snapLedger := append([]*entity.WarehouseTransaction(nil), r.store.ledger...)
	err := fn(&memProductRepo{store: r.store}, &memLedgerRepo{store: r.store})
	if err != nil {
		r.store.products = snapProducts
		r.store.ledger = snapLedger
	}
	return err
}

const testAdminID = "00000000-0000-0000-0000-0000000000bb"

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func buildUseCase(store *memStore) *inventory.LedgerUseCase {
	return inventory.NewLedgerUseCase(
		&memTxRunner{store: store},
		&memProductRepo{store: store},
		&memLedgerRepo{store: store},
	)
}

func seedProduct(store *memStore, stock int) string {
	id := uuid.New().String()
	store.products[id] = &entity.Product{
		ID:            id,
		SKU:           "SKU-" + id[:8],
		Name:          "Café 500g",
		Price:         d("10000"),
		Cost:          d("6000"),
		StockQuantity: stock,
		IsActive:      true,
	}
	return id
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests — recepción de compra
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterImport_SumaStockYDejaEntrada(t *testing.T) {
	store := newMemStore()
	uc := buildUseCase(store)
	prodID := seedProduct(store, 10)

	resp, err := uc.RegisterImport(context.Background(), testAdminID, dto.RegisterImportRequest{
		ProductID: prodID,
		Quantity:  25,
		UnitPrice: d("6000"),
		Notes:     "pedido proveedor",
	})
	require.NoError(t, err)

	assert.Equal(t, 35, store.products[prodID].StockQuantity)
	assert.Equal(t, entity.TransactionTypeImport, resp.TransactionType)
	assert.Equal(t, entity.ReferenceTypePurchase, resp.ReferenceType)
	assert.True(t, d("150000").Equal(resp.Total), "total = 25 × 6000: %s", resp.Total)
	require.Len(t, store.ledger, 1)
	assert.Equal(t, testAdminID, store.ledger[0].UserID)
}

func TestRegisterImport_EntradasInvalidas(t *testing.T) {
	store := newMemStore()
	uc := buildUseCase(store)
	prodID := seedProduct(store, 10)

	cases := []struct {
		name string
		in   dto.RegisterImportRequest
	}{
		{"sin producto", dto.RegisterImportRequest{Quantity: 1, UnitPrice: d("100")}},
		{"cantidad cero", dto.RegisterImportRequest{ProductID: prodID, Quantity: 0, UnitPrice: d("100")}},
		{"precio negativo", dto.RegisterImportRequest{ProductID: prodID, Quantity: 1, UnitPrice: d("-1")}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.RegisterImport(context.Background(), testAdminID, tc.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
	assert.Empty(t, store.ledger, "ninguna entrada debe quedar registrada")
	assert.Equal(t, 10, store.products[prodID].StockQuantity)
}

func TestRegisterImport_ProductoInexistente(t *testing.T) {
	store := newMemStore()
	uc := buildUseCase(store)

	_, err := uc.RegisterImport(context.Background(), testAdminID, dto.RegisterImportRequest{
		ProductID: uuid.New().String(),
		Quantity:  5,
		UnitPrice: d("100"),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests — ajuste manual
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterManualAdjustment_DeltaPositivo(t *testing.T) {
	store := newMemStore()
	uc := buildUseCase(store)
	prodID := seedProduct(store, 10)

	resp, err := uc.RegisterManualAdjustment(context.Background(), testAdminID, prodID, 4, "conteo físico")
	require.NoError(t, err)

	assert.Equal(t, 14, store.products[prodID].StockQuantity)
	assert.Equal(t, entity.TransactionTypeImport, resp.TransactionType)
	assert.Equal(t, entity.ReferenceTypeManual, resp.ReferenceType)
	assert.Equal(t, 4, resp.Quantity, "el ledger guarda magnitud, el tipo da el signo")
}

func TestRegisterManualAdjustment_DeltaNegativo(t *testing.T) {
	store := newMemStore()
	uc := buildUseCase(store)
	prodID := seedProduct(store, 10)

	resp, err := uc.RegisterManualAdjustment(context.Background(), testAdminID, prodID, -3, "merma")
	require.NoError(t, err)

	assert.Equal(t, 7, store.products[prodID].StockQuantity)
	assert.Equal(t, entity.TransactionTypeExport, resp.TransactionType)
	assert.Equal(t, 3, resp.Quantity)
}

// Un ajuste negativo mayor al stock disponible falla y no deja rastro: ni
// decremento ni entrada de ledger.
func TestRegisterManualAdjustment_NuncaDejaStockNegativo(t *testing.T) {
	store := newMemStore()
	uc := buildUseCase(store)
	prodID := seedProduct(store, 2)

	_, err := uc.RegisterManualAdjustment(context.Background(), testAdminID, prodID, -5, "merma")
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, 2, store.products[prodID].StockQuantity, "stock intacto tras el rollback")
	assert.Empty(t, store.ledger, "sin entrada de ledger para el ajuste fallido")
}

func TestRegisterManualAdjustment_DeltaCero(t *testing.T) {
	store := newMemStore()
	uc := buildUseCase(store)
	prodID := seedProduct(store, 10)

	_, err := uc.RegisterManualAdjustment(context.Background(), testAdminID, prodID, 0, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests — histórico
// ──────────────────────────────────────────────────────────────────────────────

func TestListTransactions_FiltraPorProducto(t *testing.T) {
	store := newMemStore()
	uc := buildUseCase(store)
	prodA := seedProduct(store, 10)
	prodB := seedProduct(store, 10)

	_, err := uc.RegisterImport(context.Background(), testAdminID, dto.RegisterImportRequest{ProductID: prodA, Quantity: 5, UnitPrice: d("100")})
	require.NoError(t, err)
	_, err = uc.RegisterImport(context.Background(), testAdminID, dto.RegisterImportRequest{ProductID: prodB, Quantity: 7, UnitPrice: d("100")})
	require.NoError(t, err)

	all, err := uc.ListTransactions(context.Background(), dto.ListTransactionsRequest{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	onlyA, err := uc.ListTransactions(context.Background(), dto.ListTransactionsRequest{ProductID: prodA})
	require.NoError(t, err)
	require.Len(t, onlyA, 1)
	assert.Equal(t, prodA, onlyA[0].ProductID)
}

func TestListTransactions_RangoDeFechasInvalido(t *testing.T) {
	store := newMemStore()
	uc := buildUseCase(store)

	_, err := uc.ListTransactions(context.Background(), dto.ListTransactionsRequest{StartDate: "31-12-2025"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
