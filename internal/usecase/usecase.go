package usecase

import (
	"context"

	"github.com/amm-ar03/Point-of-Sale-System/internal/domain"
)

type CatalogUC interface {
	Products() []domain.Product
	Refresh(ctx context.Context) error
	CreateProduct(ctx context.Context, req *CreateProductReq) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}

type CartUC interface {
	AddOrIncrement(req *AddItemReq) error
	Increment(productID int64) error
	Decrement(productID int64) error
	Remove(productID int64)
	Clear()
	View() *CartView
}

type LookupUC interface {
	Search(ctx context.Context, term string) (*LookupView, error)
	Current() *LookupView
	Commit(req *CommitLookupReq) error
	Cancel()
	ScanAdd(ctx context.Context, term string) error
}

type OrderUC interface {
	Submit(ctx context.Context) (*SubmitOrderRes, error)
	History(ctx context.Context) ([]domain.Order, error)
}

// CatalogReader — читающий доступ корзины и поиска к снапшоту каталога.
type CatalogReader interface {
	ProductByID(id int64) (*domain.Product, error)
	FindLocal(term string) (*domain.Product, bool)
}

// CartAdder — единственная стокозащищённая операция добавления,
// через которую проходят все точки входа, меняющие количество.
type CartAdder interface {
	AddOrIncrement(req *AddItemReq) error
}
