package usecase

import (
	"time"

	"github.com/amm-ar03/Point-of-Sale-System/internal/domain"
	"github.com/shopspring/decimal"
)

// CATALOG USECASE

// CreateProductReq — запрос на регистрацию нового товара в каталоге бэкенда.
type CreateProductReq struct {
	Name          string
	SKU           string
	Price         decimal.Decimal
	StockQuantity int64
	TaxExempt     bool
}

// CART USECASE

// AddItemReq — запрос на добавление товара в корзину (или увеличение
// количества существующей позиции на Quantity).
type AddItemReq struct {
	ProductID     int64
	Quantity      int64
	PriceOverride *decimal.Decimal // nil — использовать каталожную цену
}

// CartView — снимок корзины вместе со свежепосчитанными итогами.
type CartView struct {
	Lines  []domain.CartLine
	Totals domain.Totals
}

// LOOKUP USECASE

// LookupState — состояние диалога поиска товара.
type LookupState int

const (
	LookupIdle LookupState = iota
	LookupSearching
	LookupFound
	LookupNotFound
)

func (s LookupState) String() string {
	switch s {
	case LookupIdle:
		return "idle"
	case LookupSearching:
		return "searching"
	case LookupFound:
		return "found"
	case LookupNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

// LookupView — наблюдаемое состояние поиска для слоя отображения.
// Product заполнен только в состоянии found.
type LookupView struct {
	State    LookupState
	Product  *domain.Product
	Quantity int64
}

// CommitLookupReq — подтверждение найденного товара: запрошенное количество
// и необязательное переопределение цены.
type CommitLookupReq struct {
	Quantity      int64
	PriceOverride *decimal.Decimal
}

// ORDER USECASE

// SubmitOrderReq — сериализованная корзина для отправки на бэкенд.
// RequestID генерируется на клиенте и передаётся в заголовке запроса;
// дедупликация на стороне бэкенда остаётся вне рамок ядра.
type SubmitOrderReq struct {
	RequestID string
	Items     []domain.OrderItem
}

// SubmitOrderRes — результат успешной продажи: идентификатор заказа
// и итоговая сумма, назначенные бэкендом.
type SubmitOrderRes struct {
	OrderID    int64
	GrandTotal decimal.Decimal
}

// INFRASTRUCTURE

// SaleEventReq — событие завершённой продажи для журнала.
type SaleEventReq struct {
	EventID    string
	OrderID    int64
	Items      []domain.OrderItem
	GrandTotal decimal.Decimal
	OccurredAt time.Time
}
