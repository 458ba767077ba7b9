package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItem — позиция заказа в том виде, в котором её принимает бэкенд.
type OrderItem struct {
	ProductID int64
	Quantity  int64
	UnitPrice decimal.Decimal
	TaxExempt bool
}

// Order — заказ, возвращённый бэкендом. Идентификатор, время создания
// и итоговые суммы назначаются бэкендом и здесь не пересчитываются.
type Order struct {
	ID         int64
	CreatedAt  time.Time
	Items      []OrderItem
	NetTotal   decimal.Decimal
	TaxAmount  decimal.Decimal
	GrandTotal decimal.Decimal
}
