package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/amm-ar03/Point-of-Sale-System/internal/domain"
	"github.com/amm-ar03/Point-of-Sale-System/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSnapshotRepo struct {
	mu       sync.Mutex
	products []domain.Product
	loadErr  error
	stored   chan []domain.Product
}

func newFakeSnapshotRepo() *fakeSnapshotRepo {
	return &fakeSnapshotRepo{loadErr: e.ErrSnapshotMiss, stored: make(chan []domain.Product, 4)}
}

func (f *fakeSnapshotRepo) Load(ctx context.Context) ([]domain.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return f.products, nil
}

func (f *fakeSnapshotRepo) Store(ctx context.Context, products []domain.Product) error {
	f.stored <- products
	return nil
}

func (f *fakeSnapshotRepo) prime(products []domain.Product) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.products = products
	f.loadErr = nil
}

func waitStored(t *testing.T, snapshot *fakeSnapshotRepo) []domain.Product {
	t.Helper()
	select {
	case products := <-snapshot.stored:
		return products
	case <-time.After(2 * time.Second):
		t.Fatal("snapshot was not stored")
		return nil
	}
}

func TestCatalogWarmStart_FreshTerminal(t *testing.T) {
	repo := &fakeProductRepo{products: testProducts()}
	snapshot := newFakeSnapshotRepo()
	catalog := NewCatalogUC(repo, snapshot, nopLogger{})

	require.NoError(t, catalog.WarmStart(context.Background()))

	assert.Len(t, catalog.Products(), 3)
	assert.Len(t, waitStored(t, snapshot), 3)
}

func TestCatalogWarmStart_ServesCacheWhenBackendDown(t *testing.T) {
	repo := &fakeProductRepo{listErr: e.Wrap("connection refused", e.ErrBackendUnavailable)}
	snapshot := newFakeSnapshotRepo()
	snapshot.prime(testProducts())
	catalog := NewCatalogUC(repo, snapshot, nopLogger{})

	require.NoError(t, catalog.WarmStart(context.Background()))

	assert.Len(t, catalog.Products(), 3, "кэшированный снапшот переживает недоступность бэкенда")
}

func TestCatalogWarmStart_FatalWithoutCache(t *testing.T) {
	repo := &fakeProductRepo{listErr: e.Wrap("connection refused", e.ErrBackendUnavailable)}
	catalog := NewCatalogUC(repo, nil, nopLogger{})

	err := catalog.WarmStart(context.Background())
	assert.ErrorIs(t, err, e.ErrBackendUnavailable)
	assert.Empty(t, catalog.Products())
}

func TestCatalogRefresh_ReplacesSnapshot(t *testing.T) {
	repo := &fakeProductRepo{products: testProducts()}
	catalog := NewCatalogUC(repo, nil, nopLogger{})

	require.NoError(t, catalog.Refresh(context.Background()))
	require.Len(t, catalog.Products(), 3)

	repo.products = testProducts()[:1]
	require.NoError(t, catalog.Refresh(context.Background()))
	assert.Len(t, catalog.Products(), 1)
}

func TestCatalogProductByID(t *testing.T) {
	repo := &fakeProductRepo{products: testProducts()}
	catalog := NewCatalogUC(repo, nil, nopLogger{})
	require.NoError(t, catalog.Refresh(context.Background()))

	product, err := catalog.ProductByID(2)
	require.NoError(t, err)
	assert.Equal(t, "Bread", product.Name)

	_, err = catalog.ProductByID(99)
	assert.ErrorIs(t, err, e.ErrProductNotFound)
}

func TestCatalogFindLocal(t *testing.T) {
	repo := &fakeProductRepo{products: testProducts()}
	catalog := NewCatalogUC(repo, nil, nopLogger{})
	require.NoError(t, catalog.Refresh(context.Background()))

	product, ok := catalog.FindLocal("zebra")
	require.True(t, ok)
	assert.Equal(t, int64(3), product.ID)

	product, ok = catalog.FindLocal("b2")
	require.True(t, ok)
	assert.Equal(t, "Bread", product.Name)

	_, ok = catalog.FindLocal("nonexistent")
	assert.False(t, ok)

	_, ok = catalog.FindLocal("   ")
	assert.False(t, ok)
}

func TestCatalogCreateProduct(t *testing.T) {
	repo := &fakeProductRepo{products: testProducts()}
	catalog := NewCatalogUC(repo, nil, nopLogger{})
	require.NoError(t, catalog.Refresh(context.Background()))

	created, err := catalog.CreateProduct(context.Background(), &CreateProductReq{
		Name:          "Coffee",
		SKU:           "C7",
		Price:         dec("4.20"),
		StockQuantity: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, "C7", created.SKU)

	got, err := catalog.ProductByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Coffee", got.Name)
}

func TestCatalogCreateProduct_Validation(t *testing.T) {
	repo := &fakeProductRepo{products: testProducts()}
	catalog := NewCatalogUC(repo, nil, nopLogger{})
	require.NoError(t, catalog.Refresh(context.Background()))

	cases := []struct {
		name string
		req  CreateProductReq
		want error
	}{
		{"empty name", CreateProductReq{SKU: "X1", Price: dec("1")}, e.ErrProductNameRequired},
		{"empty sku", CreateProductReq{Name: "X", Price: dec("1")}, e.ErrProductSKURequired},
		{"negative price", CreateProductReq{Name: "X", SKU: "X1", Price: dec("-1")}, e.ErrNegativePrice},
		{"negative stock", CreateProductReq{Name: "X", SKU: "X1", Price: dec("1"), StockQuantity: -1}, e.ErrNegativeStock},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := tc.req
			_, err := catalog.CreateProduct(context.Background(), &req)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestCatalogDeleteProduct(t *testing.T) {
	repo := &fakeProductRepo{products: testProducts()}
	catalog := NewCatalogUC(repo, nil, nopLogger{})
	require.NoError(t, catalog.Refresh(context.Background()))

	require.NoError(t, catalog.DeleteProduct(context.Background(), 2))

	_, err := catalog.ProductByID(2)
	assert.ErrorIs(t, err, e.ErrProductNotFound)
	assert.Len(t, catalog.Products(), 2)
}
