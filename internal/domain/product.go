package domain

import "github.com/shopspring/decimal"

// Product описывает товар каталога. Заполняется исключительно из ответов
// бэкенда; ядро никогда не создаёт и не изменяет товары самостоятельно.
type Product struct {
	ID            int64
	SKU           string
	Name          string
	Price         decimal.Decimal
	StockQuantity int64
	TaxExempt     bool
}
