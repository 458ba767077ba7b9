package domain

import "github.com/shopspring/decimal"

// Totals — производные суммы по текущей корзине. Не хранятся,
// а пересчитываются при каждом чтении.
type Totals struct {
	NetTotal        decimal.Decimal
	TaxableSubtotal decimal.Decimal
	TaxAmount       decimal.Decimal
	GrandTotal      decimal.Decimal
}
