package usecase

import (
	"testing"

	"github.com/amm-ar03/Point-of-Sale-System/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCalcTotals_MixedCart(t *testing.T) {
	lines := []domain.CartLine{
		{ProductID: 1, SKU: "A1", UnitPrice: dec("10.00"), Quantity: 2, TaxExempt: false},
		{ProductID: 2, SKU: "B2", UnitPrice: dec("5.00"), Quantity: 1, TaxExempt: true},
	}

	totals := CalcTotals(lines, dec("0.07"))

	assert.True(t, totals.NetTotal.Equal(dec("25.00")), "net = %s", totals.NetTotal)
	assert.True(t, totals.TaxableSubtotal.Equal(dec("20.00")), "taxable = %s", totals.TaxableSubtotal)
	assert.True(t, totals.TaxAmount.Equal(dec("1.40")), "tax = %s", totals.TaxAmount)
	assert.True(t, totals.GrandTotal.Equal(dec("26.40")), "grand = %s", totals.GrandTotal)
}

func TestCalcTotals_EmptyCart(t *testing.T) {
	totals := CalcTotals(nil, dec("0.07"))

	assert.True(t, totals.NetTotal.IsZero())
	assert.True(t, totals.TaxAmount.IsZero())
	assert.True(t, totals.GrandTotal.IsZero())
}

func TestCalcTotals_OrderIndependent(t *testing.T) {
	lines := []domain.CartLine{
		{ProductID: 1, UnitPrice: dec("10.00"), Quantity: 2},
		{ProductID: 2, UnitPrice: dec("5.00"), Quantity: 1, TaxExempt: true},
		{ProductID: 3, UnitPrice: dec("2.50"), Quantity: 3},
	}
	reversed := []domain.CartLine{lines[2], lines[1], lines[0]}

	rate := dec("0.07")
	a := CalcTotals(lines, rate)
	b := CalcTotals(reversed, rate)

	assert.True(t, a.GrandTotal.Equal(b.GrandTotal))
	assert.True(t, a.TaxAmount.Equal(b.TaxAmount))
}

func TestCalcTotals_ExemptOnlyCart(t *testing.T) {
	lines := []domain.CartLine{
		{ProductID: 2, UnitPrice: dec("5.00"), Quantity: 4, TaxExempt: true},
	}

	totals := CalcTotals(lines, dec("0.07"))

	assert.True(t, totals.NetTotal.Equal(dec("20.00")))
	assert.True(t, totals.TaxableSubtotal.IsZero())
	assert.True(t, totals.TaxAmount.IsZero())
	assert.True(t, totals.GrandTotal.Equal(dec("20.00")))
}

func TestCalcTotals_NoPrematureRounding(t *testing.T) {
	// три строки по 0.333 не должны округляться построчно
	lines := []domain.CartLine{
		{ProductID: 1, UnitPrice: dec("0.333"), Quantity: 1},
		{ProductID: 2, UnitPrice: dec("0.333"), Quantity: 1},
		{ProductID: 3, UnitPrice: dec("0.333"), Quantity: 1},
	}

	totals := CalcTotals(lines, decimal.Zero)

	assert.True(t, totals.NetTotal.Equal(dec("0.999")), "net = %s", totals.NetTotal)
	assert.Equal(t, "1.00", totals.GrandTotal.StringFixed(2))
}
