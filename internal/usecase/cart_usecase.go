package usecase

import (
	"sync"

	"github.com/amm-ar03/Point-of-Sale-System/internal/domain"
	"github.com/amm-ar03/Point-of-Sale-System/pkg/e"
	"github.com/shopspring/decimal"
)

// CartUseCase — хранилище текущей продажи. Позиции упорядочены по моменту
// первого добавления; на товар приходится не более одной позиции. Все
// мутации сериализуются мьютексом и проходят через одну стокозащищённую
// операцию apply, так что проверка остатков не дублируется по точкам входа.
type CartUseCase struct {
	mu      sync.Mutex
	lines   []domain.CartLine
	catalog CatalogReader
	taxRate decimal.Decimal
}

func NewCartUC(catalog CatalogReader, taxRate decimal.Decimal) *CartUseCase {
	return &CartUseCase{
		catalog: catalog,
		taxRate: taxRate,
	}
}

// AddOrIncrement добавляет товар в корзину или увеличивает количество
// существующей позиции на req.Quantity. Итоговое количество проверяется
// против текущего кэшированного остатка; при нарушении корзина не меняется.
// Переопределение цены при слиянии перезаписывает цену позиции
// (последний override выигрывает).
func (c *CartUseCase) AddOrIncrement(req *AddItemReq) error {
	const op = "CartUseCase.AddOrIncrement"

	if req.Quantity <= 0 {
		return e.Wrap(op, e.ErrInvalidQuantity)
	}
	if req.PriceOverride != nil && !req.PriceOverride.IsPositive() {
		return e.Wrap(op, e.ErrInvalidPrice)
	}

	product, err := c.catalog.ProductByID(req.ProductID)
	if err != nil {
		return e.Wrap(op, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	return c.apply(product, req.Quantity, req.PriceOverride, false)
}

// Increment увеличивает количество существующей позиции на единицу.
// Остаток перечитывается из снапшота каталога на момент вызова,
// а не на момент добавления позиции.
func (c *CartUseCase) Increment(productID int64) error {
	const op = "CartUseCase.Increment"

	product, err := c.catalog.ProductByID(productID)
	if err != nil {
		return e.Wrap(op, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	return c.apply(product, 1, nil, true)
}

// Decrement уменьшает количество позиции на единицу с нижней границей 1.
// Количество 1 — no-op: удаление позиции всегда явное действие оператора.
func (c *CartUseCase) Decrement(productID int64) error {
	const op = "CartUseCase.Decrement"

	c.mu.Lock()
	defer c.mu.Unlock()

	idx, ok := c.find(productID)
	if !ok {
		return e.Wrap(op, e.ErrLineNotFound)
	}

	if c.lines[idx].Quantity > 1 {
		c.lines[idx].Quantity--
	}

	return nil
}

// Remove безусловно удаляет позицию. Отсутствующая позиция — no-op.
func (c *CartUseCase) Remove(productID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	kept := c.lines[:0]
	for _, line := range c.lines {
		if line.ProductID != productID {
			kept = append(kept, line)
		}
	}
	c.lines = kept
}

// Clear опустошает корзину ("New Sale", "Void", сброс после оплаты).
func (c *CartUseCase) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lines = nil
}

// Lines возвращает копию позиций в порядке добавления.
func (c *CartUseCase) Lines() []domain.CartLine {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]domain.CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// View возвращает позиции вместе со свежепосчитанными итогами.
func (c *CartUseCase) View() *CartView {
	lines := c.Lines()
	return &CartView{
		Lines:  lines,
		Totals: CalcTotals(lines, c.taxRate),
	}
}

// apply — единственная операция, меняющая количество. Проверяет, что
// перспективное суммарное количество (уже в корзине + запрошенное) не
// превышает текущий кэшированный остаток. Вызывается под c.mu.
func (c *CartUseCase) apply(product *domain.Product, quantity int64, priceOverride *decimal.Decimal, mustExist bool) error {
	idx, exists := c.find(product.ID)
	if mustExist && !exists {
		return e.ErrLineNotFound
	}

	var existing int64
	if exists {
		existing = c.lines[idx].Quantity
	}

	if existing+quantity > product.StockQuantity {
		return e.ErrInsufficientStock
	}

	if exists {
		c.lines[idx].Quantity = existing + quantity
		if priceOverride != nil {
			c.lines[idx].UnitPrice = *priceOverride
		}
		return nil
	}

	unitPrice := product.Price
	if priceOverride != nil {
		unitPrice = *priceOverride
	}
	c.lines = append(c.lines, domain.NewCartLine(product, quantity, unitPrice))

	return nil
}

// find возвращает индекс позиции товара. Вызывается под c.mu.
func (c *CartUseCase) find(productID int64) (int, bool) {
	for i, line := range c.lines {
		if line.ProductID == productID {
			return i, true
		}
	}
	return 0, false
}
