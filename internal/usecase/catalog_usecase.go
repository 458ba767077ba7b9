package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/amm-ar03/Point-of-Sale-System/internal/domain"
	"github.com/amm-ar03/Point-of-Sale-System/pkg/e"
	"github.com/amm-ar03/Point-of-Sale-System/pkg/logger"
)

// CatalogUseCase держит in-memory снапшот каталога товаров. Снапшот
// загружается с бэкенда целиком и заменяется атомарно; читатели всегда
// видят последний полностью загруженный срез. Возможное отставание от
// фактических остатков бэкенда — осознанный компромисс (оптимистичная,
// а не транзакционная проверка остатков).
type CatalogUseCase struct {
	mu       sync.RWMutex
	products []domain.Product
	byID     map[int64]domain.Product

	productRepo ProductRepository
	snapshot    SnapshotRepository // nil — тёплый старт выключен
	logger      logger.Logger
}

func NewCatalogUC(productRepo ProductRepository, snapshot SnapshotRepository, logger logger.Logger) *CatalogUseCase {
	return &CatalogUseCase{
		byID:        make(map[int64]domain.Product),
		productRepo: productRepo,
		snapshot:    snapshot,
		logger:      logger,
	}
}

// WarmStart наполняет снапшот при запуске терминала: сначала из кэша
// снапшотов (если он включён), затем свежими данными бэкенда. Недоступность
// бэкенда при уже загруженном кэшированном снапшоте не фатальна.
func (c *CatalogUseCase) WarmStart(ctx context.Context) error {
	const op = "CatalogUseCase.WarmStart"

	primed := false
	if c.snapshot != nil {
		products, err := c.snapshot.Load(ctx)
		switch {
		case err == nil:
			c.install(products)
			primed = true
			c.logger.Infof("catalog primed from snapshot cache: %d products", len(products))
		case errors.Is(err, e.ErrSnapshotMiss):
			// первый запуск терминала, кэш ещё пуст
		default:
			c.logger.Warnf("snapshot load failed: %v", e.Wrap(op, err))
		}
	}

	if err := c.Refresh(ctx); err != nil {
		if primed {
			c.logger.Warnf("initial refresh failed, serving cached snapshot: %v", e.Wrap(op, err))
			return nil
		}
		return e.Wrap(op, err)
	}

	return nil
}

// Refresh целиком перечитывает каталог с бэкенда и атомарно заменяет снапшот.
func (c *CatalogUseCase) Refresh(ctx context.Context) error {
	const op = "CatalogUseCase.Refresh"

	products, err := c.productRepo.List(ctx)
	if err != nil {
		return e.Wrap(op, err)
	}

	c.install(products)
	c.storeSnapshot(products)

	return nil
}

// Products возвращает копию текущего снапшота в порядке выдачи бэкенда.
func (c *CatalogUseCase) Products() []domain.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]domain.Product, len(c.products))
	copy(out, c.products)
	return out
}

// ProductByID возвращает товар из снапшота или e.ErrProductNotFound.
func (c *CatalogUseCase) ProductByID(id int64) (*domain.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	product, ok := c.byID[id]
	if !ok {
		return nil, e.ErrProductNotFound
	}
	return &product, nil
}

// FindLocal ищет первый товар, имя или SKU которого содержит term
// (без учёта регистра). Это резервный поиск на случай промаха
// авторитетного SKU-эндпоинта бэкенда.
func (c *CatalogUseCase) FindLocal(term string) (*domain.Product, bool) {
	lower := strings.ToLower(strings.TrimSpace(term))
	if lower == "" {
		return nil, false
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, product := range c.products {
		if strings.Contains(strings.ToLower(product.Name), lower) ||
			strings.Contains(strings.ToLower(product.SKU), lower) {
			p := product
			return &p, true
		}
	}

	return nil, false
}

// CreateProduct регистрирует новый товар на бэкенде и добавляет его в снапшот.
func (c *CatalogUseCase) CreateProduct(ctx context.Context, req *CreateProductReq) (*domain.Product, error) {
	const op = "CatalogUseCase.CreateProduct"

	if err := c.validateProduct(req); err != nil {
		return nil, e.Wrap(op, err)
	}

	created, err := c.productRepo.Create(ctx, req)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	c.mu.Lock()
	c.products = append(c.products, *created)
	c.byID[created.ID] = *created
	snapshot := make([]domain.Product, len(c.products))
	copy(snapshot, c.products)
	c.mu.Unlock()

	c.storeSnapshot(snapshot)

	return created, nil
}

// DeleteProduct удаляет товар на бэкенде и из снапшота.
func (c *CatalogUseCase) DeleteProduct(ctx context.Context, id int64) error {
	const op = "CatalogUseCase.DeleteProduct"

	if err := c.productRepo.Delete(ctx, id); err != nil {
		return e.Wrap(op, err)
	}

	c.mu.Lock()
	kept := c.products[:0]
	for _, product := range c.products {
		if product.ID != id {
			kept = append(kept, product)
		}
	}
	c.products = kept
	delete(c.byID, id)
	snapshot := make([]domain.Product, len(c.products))
	copy(snapshot, c.products)
	c.mu.Unlock()

	c.storeSnapshot(snapshot)

	return nil
}

// install атомарно заменяет снапшот каталога.
func (c *CatalogUseCase) install(products []domain.Product) {
	byID := make(map[int64]domain.Product, len(products))
	for _, product := range products {
		byID[product.ID] = product
	}

	c.mu.Lock()
	c.products = products
	c.byID = byID
	c.mu.Unlock()
}

// storeSnapshot фоном записывает снапшот в кэш, логируя сбои.
func (c *CatalogUseCase) storeSnapshot(products []domain.Product) {
	if c.snapshot == nil {
		return
	}

	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()

		if err := c.snapshot.Store(bgCtx, products); err != nil {
			c.logger.Warnf("failed to store catalog snapshot in background: %v", err)
		}
	}()
}

// validateProduct проверяет корректность входных данных нового товара.
func (c *CatalogUseCase) validateProduct(req *CreateProductReq) error {
	if strings.TrimSpace(req.Name) == "" {
		return e.ErrProductNameRequired
	}

	if strings.TrimSpace(req.SKU) == "" {
		return e.ErrProductSKURequired
	}

	if req.Price.IsNegative() {
		return e.ErrNegativePrice
	}

	if req.StockQuantity < 0 {
		return e.ErrNegativeStock
	}

	return nil
}
