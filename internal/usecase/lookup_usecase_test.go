package usecase

import (
	"context"
	"testing"

	"github.com/amm-ar03/Point-of-Sale-System/internal/domain"
	"github.com/amm-ar03/Point-of-Sale-System/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLookup(t *testing.T) (*LookupUseCase, *CartUseCase, *fakeProductRepo, *fakeCatalog) {
	t.Helper()

	catalog := &fakeCatalog{products: testProducts()}
	repo := &fakeProductRepo{bySKU: map[string]domain.Product{}}
	for _, p := range testProducts() {
		repo.bySKU[p.SKU] = p
	}
	cart := NewCartUC(catalog, dec("0.07"))

	return NewLookupUC(repo, catalog, cart, nopLogger{}), cart, repo, catalog
}

func TestLookupSearch_ExactSKU(t *testing.T) {
	lookup, _, _, _ := newTestLookup(t)

	view, err := lookup.Search(context.Background(), "A1")
	require.NoError(t, err)

	assert.Equal(t, LookupFound, view.State)
	require.NotNil(t, view.Product)
	assert.Equal(t, "Apple Juice", view.Product.Name)
	assert.Equal(t, int64(1), view.Quantity)
}

func TestLookupSearch_FallsBackToLocalSubstring(t *testing.T) {
	lookup, _, _, _ := newTestLookup(t)

	// "Z9" не является точным SKU, но встречается в имени товара
	view, err := lookup.Search(context.Background(), "Z9")
	require.NoError(t, err)

	assert.Equal(t, LookupFound, view.State)
	require.NotNil(t, view.Product)
	assert.Equal(t, "Zebra Snack (Z9)", view.Product.Name)
}

func TestLookupSearch_NotFound(t *testing.T) {
	lookup, _, _, _ := newTestLookup(t)

	view, err := lookup.Search(context.Background(), "nonexistent")
	require.ErrorIs(t, err, e.ErrProductNotFound)

	require.NotNil(t, view)
	assert.Equal(t, LookupNotFound, view.State)
	assert.Nil(t, view.Product)
}

func TestLookupSearch_BackendStatusDegradesToLocal(t *testing.T) {
	lookup, _, repo, _ := newTestLookup(t)
	repo.findErr = e.Wrap("status 503", e.ErrBackendStatus)

	view, err := lookup.Search(context.Background(), "bread")
	require.NoError(t, err)

	assert.Equal(t, LookupFound, view.State)
	require.NotNil(t, view.Product)
	assert.Equal(t, "Bread", view.Product.Name)
}

func TestLookupSearch_TransportFailureReturnsToIdle(t *testing.T) {
	lookup, _, repo, _ := newTestLookup(t)
	repo.findErr = e.Wrap("connection refused", e.ErrBackendUnavailable)

	view, err := lookup.Search(context.Background(), "A1")
	require.ErrorIs(t, err, e.ErrBackendUnavailable)
	assert.Nil(t, view)

	assert.Equal(t, LookupIdle, lookup.Current().State)
}

func TestLookupSearch_EmptyTerm(t *testing.T) {
	lookup, _, _, _ := newTestLookup(t)

	_, err := lookup.Search(context.Background(), "   ")
	assert.ErrorIs(t, err, e.ErrStatusBadRequest)
	assert.Equal(t, LookupIdle, lookup.Current().State)
}

func TestLookupCommit_AddsToCartAndResets(t *testing.T) {
	lookup, cart, _, _ := newTestLookup(t)

	_, err := lookup.Search(context.Background(), "A1")
	require.NoError(t, err)

	require.NoError(t, lookup.Commit(&CommitLookupReq{Quantity: 2}))

	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, int64(2), lines[0].Quantity)
	assert.Equal(t, LookupIdle, lookup.Current().State)
}

func TestLookupCommit_StockRejectionStaysFound(t *testing.T) {
	lookup, cart, _, _ := newTestLookup(t)

	// в корзине уже 2 из 3 доступных
	require.NoError(t, cart.AddOrIncrement(&AddItemReq{ProductID: 3, Quantity: 2}))

	_, err := lookup.Search(context.Background(), "Z9-001")
	require.NoError(t, err)

	err = lookup.Commit(&CommitLookupReq{Quantity: 2})
	require.ErrorIs(t, err, e.ErrInsufficientStock)

	// оператор может поправить количество и повторить
	assert.Equal(t, LookupFound, lookup.Current().State)
	require.NoError(t, lookup.Commit(&CommitLookupReq{Quantity: 1}))
	assert.Equal(t, int64(3), cart.Lines()[0].Quantity)
}

func TestLookupCommit_WithoutActiveLookup(t *testing.T) {
	lookup, _, _, _ := newTestLookup(t)

	err := lookup.Commit(&CommitLookupReq{Quantity: 1})
	assert.ErrorIs(t, err, e.ErrNoActiveLookup)
}

func TestLookupCommit_PriceOverride(t *testing.T) {
	lookup, cart, _, _ := newTestLookup(t)

	_, err := lookup.Search(context.Background(), "A1")
	require.NoError(t, err)

	require.NoError(t, lookup.Commit(&CommitLookupReq{Quantity: 1, PriceOverride: decPtr("7.77")}))

	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.True(t, lines[0].UnitPrice.Equal(dec("7.77")))
}

func TestLookupCancel(t *testing.T) {
	lookup, cart, _, _ := newTestLookup(t)

	_, err := lookup.Search(context.Background(), "A1")
	require.NoError(t, err)

	lookup.Cancel()

	assert.Equal(t, LookupIdle, lookup.Current().State)
	assert.Empty(t, cart.Lines())

	// отмена без активного диалога безвредна
	lookup.Cancel()
	assert.Equal(t, LookupIdle, lookup.Current().State)
}

func TestLookupScanAdd(t *testing.T) {
	lookup, cart, _, _ := newTestLookup(t)

	require.NoError(t, lookup.ScanAdd(context.Background(), "B2"))
	require.NoError(t, lookup.ScanAdd(context.Background(), "B2"))

	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, int64(2), lines[0].Quantity)
	assert.True(t, lines[0].UnitPrice.Equal(dec("5.00")))

	assert.ErrorIs(t, lookup.ScanAdd(context.Background(), "nope"), e.ErrProductNotFound)
}
