package domain

import "github.com/shopspring/decimal"

// CartLine — одна позиция продажи. На каждый товар в корзине существует
// не более одной позиции; повторные добавления суммируют количество.
type CartLine struct {
	ProductID int64
	SKU       string
	Name      string
	UnitPrice decimal.Decimal // может отличаться от каталожной цены (override)
	Quantity  int64
	TaxExempt bool // копируется из товара в момент добавления
}

// NewCartLine создаёт позицию корзины из товара каталога.
// unitPrice передаётся отдельно, поскольку оператор может переопределить цену.
func NewCartLine(product *Product, quantity int64, unitPrice decimal.Decimal) CartLine {
	return CartLine{
		ProductID: product.ID,
		SKU:       product.SKU,
		Name:      product.Name,
		UnitPrice: unitPrice,
		Quantity:  quantity,
		TaxExempt: product.TaxExempt,
	}
}

// RowTotal возвращает стоимость позиции без налога.
func (l CartLine) RowTotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(l.Quantity))
}
