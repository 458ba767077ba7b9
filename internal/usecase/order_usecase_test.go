package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/amm-ar03/Point-of-Sale-System/internal/domain"
	"github.com/amm-ar03/Point-of-Sale-System/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder(t *testing.T) (*OrderUseCase, *CartUseCase, *fakeOrderRepo, *fakeJournal, *fakeRefresher) {
	t.Helper()

	catalog := &fakeCatalog{products: testProducts()}
	cart := NewCartUC(catalog, dec("0.07"))
	repo := &fakeOrderRepo{
		order: &domain.Order{
			ID:         77,
			CreatedAt:  time.Now(),
			GrandTotal: dec("26.40"),
		},
	}
	journal := newFakeJournal()
	refresher := newFakeRefresher()

	return NewOrderUC(cart, repo, journal, refresher, nopLogger{}), cart, repo, journal, refresher
}

func TestOrderSubmit_EmptyCartSkipsNetwork(t *testing.T) {
	order, _, repo, _, _ := newTestOrder(t)

	_, err := order.Submit(context.Background())
	require.ErrorIs(t, err, e.ErrEmptyCart)
	assert.Zero(t, repo.submitCalls, "пустая корзина не должна порождать сетевой вызов")
}

func TestOrderSubmit_Success(t *testing.T) {
	order, cart, repo, journal, refresher := newTestOrder(t)

	require.NoError(t, cart.AddOrIncrement(&AddItemReq{ProductID: 1, Quantity: 2}))
	require.NoError(t, cart.AddOrIncrement(&AddItemReq{ProductID: 2, Quantity: 1}))

	res, err := order.Submit(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(77), res.OrderID)
	assert.True(t, res.GrandTotal.Equal(dec("26.40")))

	require.NotNil(t, repo.lastReq)
	assert.NotEmpty(t, repo.lastReq.RequestID)
	require.Len(t, repo.lastReq.Items, 2)
	assert.Equal(t, int64(1), repo.lastReq.Items[0].ProductID)
	assert.Equal(t, int64(2), repo.lastReq.Items[0].Quantity)
	assert.True(t, repo.lastReq.Items[1].TaxExempt)

	assert.Empty(t, cart.Lines(), "успех опустошает корзину")

	select {
	case event := <-journal.events:
		assert.Equal(t, int64(77), event.OrderID)
		assert.NotEmpty(t, event.EventID)
	case <-time.After(2 * time.Second):
		t.Fatal("sale event was not published")
	}

	select {
	case <-refresher.refreshed:
	case <-time.After(2 * time.Second):
		t.Fatal("catalog was not refreshed after sale")
	}
}

func TestOrderSubmit_FailureLeavesCartIntact(t *testing.T) {
	order, cart, repo, _, _ := newTestOrder(t)
	repo.submitErr = e.Wrap("status 500", e.ErrBackendStatus)

	require.NoError(t, cart.AddOrIncrement(&AddItemReq{ProductID: 1, Quantity: 2}))

	_, err := order.Submit(context.Background())
	require.ErrorIs(t, err, e.ErrBackendStatus)

	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, int64(2), lines[0].Quantity, "сбой отправки не должен уничтожать продажу")
}

func TestOrderSubmit_TransportFailureLeavesCartIntact(t *testing.T) {
	order, cart, repo, _, _ := newTestOrder(t)
	repo.submitErr = e.Wrap("connection refused", e.ErrBackendUnavailable)

	require.NoError(t, cart.AddOrIncrement(&AddItemReq{ProductID: 1, Quantity: 1}))

	_, err := order.Submit(context.Background())
	require.ErrorIs(t, err, e.ErrBackendUnavailable)
	require.Len(t, cart.Lines(), 1)
	assert.Equal(t, 1, repo.submitCalls, "запись не ретраится")
}

func TestOrderSubmit_FreshRequestIDPerSubmission(t *testing.T) {
	order, cart, repo, _, _ := newTestOrder(t)

	require.NoError(t, cart.AddOrIncrement(&AddItemReq{ProductID: 1, Quantity: 1}))
	_, err := order.Submit(context.Background())
	require.NoError(t, err)
	first := repo.lastReq.RequestID

	require.NoError(t, cart.AddOrIncrement(&AddItemReq{ProductID: 1, Quantity: 1}))
	_, err = order.Submit(context.Background())
	require.NoError(t, err)

	assert.NotEqual(t, first, repo.lastReq.RequestID)
}

func TestOrderHistory(t *testing.T) {
	order, _, repo, _, _ := newTestOrder(t)
	repo.orders = []domain.Order{
		{ID: 1, GrandTotal: dec("10.70")},
		{ID: 2, GrandTotal: dec("26.40")},
	}

	orders, err := order.History(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, int64(1), orders[0].ID)
}
