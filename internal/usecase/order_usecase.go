package usecase

import (
	"context"
	"time"

	"github.com/amm-ar03/Point-of-Sale-System/internal/domain"
	"github.com/amm-ar03/Point-of-Sale-System/pkg/e"
	"github.com/amm-ar03/Point-of-Sale-System/pkg/logger"
	"github.com/google/uuid"
)

// CartSource — доступ отправки заказа к содержимому корзины.
type CartSource interface {
	Lines() []domain.CartLine
	Clear()
}

// CatalogRefresher — фоновое обновление снапшота после продажи:
// остатки на бэкенде изменились.
type CatalogRefresher interface {
	Refresh(ctx context.Context) error
}

// OrderUseCase отправляет завершённую продажу на бэкенд и читает историю заказов.
type OrderUseCase struct {
	cart      CartSource
	orderRepo OrderRepository
	journal   SaleJournal // nil — журнал продаж выключен
	catalog   CatalogRefresher
	logger    logger.Logger
}

func NewOrderUC(cart CartSource, orderRepo OrderRepository, journal SaleJournal,
	catalog CatalogRefresher, logger logger.Logger) *OrderUseCase {
	return &OrderUseCase{
		cart:      cart,
		orderRepo: orderRepo,
		journal:   journal,
		catalog:   catalog,
		logger:    logger,
	}
}

// Submit сериализует корзину в заказ и отправляет его на бэкенд.
// Пустая корзина отвергается до какого-либо сетевого вызова. Любой сбой
// отправки оставляет корзину нетронутой: частичный или неоднозначный отказ
// никогда не должен молча уничтожить неоплаченную продажу. Только успешный
// ответ бэкенда опустошает корзину.
func (o *OrderUseCase) Submit(ctx context.Context) (*SubmitOrderRes, error) {
	const op = "OrderUseCase.Submit"

	lines := o.cart.Lines()
	if len(lines) == 0 {
		return nil, e.Wrap(op, e.ErrEmptyCart)
	}

	items := make([]domain.OrderItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, domain.OrderItem{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
			TaxExempt: line.TaxExempt,
		})
	}

	req := &SubmitOrderReq{
		RequestID: uuid.NewString(),
		Items:     items,
	}

	order, err := o.orderRepo.Submit(ctx, req)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	o.cart.Clear()
	o.publishSale(order)
	o.refreshCatalog()

	return &SubmitOrderRes{
		OrderID:    order.ID,
		GrandTotal: order.GrandTotal,
	}, nil
}

// History возвращает список заказов бэкенда.
func (o *OrderUseCase) History(ctx context.Context) ([]domain.Order, error) {
	const op = "OrderUseCase.History"

	orders, err := o.orderRepo.List(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return orders, nil
}

// publishSale фоном публикует событие продажи в журнал, логируя сбои.
func (o *OrderUseCase) publishSale(order *domain.Order) {
	if o.journal == nil {
		return
	}

	event := &SaleEventReq{
		EventID:    uuid.NewString(),
		OrderID:    order.ID,
		Items:      order.Items,
		GrandTotal: order.GrandTotal,
		OccurredAt: time.Now(),
	}

	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := o.journal.PublishSale(bgCtx, event); err != nil {
			o.logger.Warnf("failed to publish sale event for order %d: %v", order.ID, err)
		}
	}()
}

// refreshCatalog фоном перечитывает каталог после продажи.
func (o *OrderUseCase) refreshCatalog() {
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := o.catalog.Refresh(bgCtx); err != nil {
			o.logger.Warnf("post-sale catalog refresh failed: %v", err)
		}
	}()
}
