package usecase

import (
	"github.com/amm-ar03/Point-of-Sale-System/internal/domain"
	"github.com/shopspring/decimal"
)

// CalcTotals считает итоги по позициям корзины: чистую сумму, облагаемую
// налогом часть, сумму налога и общий итог. Накопление идёт в decimal
// без промежуточного округления; округление до 2 знаков выполняется
// только на уровне отображения.
func CalcTotals(lines []domain.CartLine, taxRate decimal.Decimal) domain.Totals {
	net := decimal.Zero
	taxable := decimal.Zero

	for _, line := range lines {
		row := line.RowTotal()
		net = net.Add(row)
		if !line.TaxExempt {
			taxable = taxable.Add(row)
		}
	}

	tax := taxable.Mul(taxRate)

	return domain.Totals{
		NetTotal:        net,
		TaxableSubtotal: taxable,
		TaxAmount:       tax,
		GrandTotal:      net.Add(tax),
	}
}
