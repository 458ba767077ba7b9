package usecase

import (
	"context"
	"strings"

	"github.com/amm-ar03/Point-of-Sale-System/internal/domain"
	"github.com/amm-ar03/Point-of-Sale-System/pkg/e"
	"github.com/shopspring/decimal"
)

type nopLogger struct{}

func (nopLogger) Infof(format string, args ...any)            {}
func (nopLogger) Warnf(format string, args ...any)            {}
func (nopLogger) Errorf(err error, format string, args ...any) {}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

// fakeCatalog реализует CatalogReader поверх фиксированного набора товаров.
type fakeCatalog struct {
	products []domain.Product
}

func (f *fakeCatalog) ProductByID(id int64) (*domain.Product, error) {
	for _, p := range f.products {
		if p.ID == id {
			product := p
			return &product, nil
		}
	}
	return nil, e.ErrProductNotFound
}

func (f *fakeCatalog) FindLocal(term string) (*domain.Product, bool) {
	lower := strings.ToLower(strings.TrimSpace(term))
	if lower == "" {
		return nil, false
	}
	for _, p := range f.products {
		if strings.Contains(strings.ToLower(p.Name), lower) ||
			strings.Contains(strings.ToLower(p.SKU), lower) {
			product := p
			return &product, true
		}
	}
	return nil, false
}

func (f *fakeCatalog) setStock(id, stock int64) {
	for i := range f.products {
		if f.products[i].ID == id {
			f.products[i].StockQuantity = stock
		}
	}
}

// fakeProductRepo реализует ProductRepository для поиска по SKU.
type fakeProductRepo struct {
	bySKU    map[string]domain.Product
	findErr  error
	listErr  error
	products []domain.Product
	calls    int
}

func (f *fakeProductRepo) List(ctx context.Context) ([]domain.Product, error) {
	f.calls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.products, nil
}

func (f *fakeProductRepo) FindBySKU(ctx context.Context, sku string) (*domain.Product, error) {
	f.calls++
	if f.findErr != nil {
		return nil, f.findErr
	}
	if p, ok := f.bySKU[sku]; ok {
		return &p, nil
	}
	return nil, e.ErrProductNotFound
}

func (f *fakeProductRepo) Create(ctx context.Context, req *CreateProductReq) (*domain.Product, error) {
	f.calls++
	product := domain.Product{
		ID:            int64(len(f.products) + 1),
		SKU:           req.SKU,
		Name:          req.Name,
		Price:         req.Price,
		StockQuantity: req.StockQuantity,
		TaxExempt:     req.TaxExempt,
	}
	f.products = append(f.products, product)
	return &product, nil
}

func (f *fakeProductRepo) Delete(ctx context.Context, id int64) error {
	f.calls++
	return nil
}

// fakeOrderRepo считает сетевые вызовы, чтобы проверять их отсутствие.
type fakeOrderRepo struct {
	submitErr   error
	submitCalls int
	lastReq     *SubmitOrderReq
	order       *domain.Order
	orders      []domain.Order
}

func (f *fakeOrderRepo) Submit(ctx context.Context, req *SubmitOrderReq) (*domain.Order, error) {
	f.submitCalls++
	f.lastReq = req
	if f.submitErr != nil {
		return nil, f.submitErr
	}
	return f.order, nil
}

func (f *fakeOrderRepo) List(ctx context.Context) ([]domain.Order, error) {
	return f.orders, nil
}

type fakeJournal struct {
	events chan *SaleEventReq
}

func newFakeJournal() *fakeJournal {
	return &fakeJournal{events: make(chan *SaleEventReq, 1)}
}

func (f *fakeJournal) PublishSale(ctx context.Context, req *SaleEventReq) error {
	f.events <- req
	return nil
}

type fakeRefresher struct {
	refreshed chan struct{}
}

func newFakeRefresher() *fakeRefresher {
	return &fakeRefresher{refreshed: make(chan struct{}, 1)}
}

func (f *fakeRefresher) Refresh(ctx context.Context) error {
	select {
	case f.refreshed <- struct{}{}:
	default:
	}
	return nil
}

func testProducts() []domain.Product {
	return []domain.Product{
		{ID: 1, SKU: "A1", Name: "Apple Juice", Price: dec("10.00"), StockQuantity: 5, TaxExempt: false},
		{ID: 2, SKU: "B2", Name: "Bread", Price: dec("5.00"), StockQuantity: 8, TaxExempt: true},
		{ID: 3, SKU: "Z9-001", Name: "Zebra Snack (Z9)", Price: dec("2.50"), StockQuantity: 3, TaxExempt: false},
	}
}
