package usecase

import (
	"context"

	"github.com/amm-ar03/Point-of-Sale-System/internal/domain"
)

// ProductRepository — операции контракта бэкенда над товарами.
type ProductRepository interface {
	List(ctx context.Context) ([]domain.Product, error)
	// FindBySKU возвращает e.ErrProductNotFound при промахе (404-класс),
	// e.ErrBackendStatus при прочих не-2xx ответах.
	FindBySKU(ctx context.Context, sku string) (*domain.Product, error)
	Create(ctx context.Context, req *CreateProductReq) (*domain.Product, error)
	Delete(ctx context.Context, id int64) error
}

// OrderRepository — операции контракта бэкенда над заказами.
type OrderRepository interface {
	Submit(ctx context.Context, req *SubmitOrderReq) (*domain.Order, error)
	List(ctx context.Context) ([]domain.Order, error)
}

// SnapshotRepository хранит последний полностью загруженный снапшот каталога
// для тёплого старта терминала. Load возвращает e.ErrSnapshotMiss,
// если снапшота нет.
type SnapshotRepository interface {
	Load(ctx context.Context) ([]domain.Product, error)
	Store(ctx context.Context, products []domain.Product) error
}
