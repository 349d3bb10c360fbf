package document

import "github.com/shopspring/decimal"

// Totals son los totales corridos de un documento. Los flags Has* indican qué
// totales aplican al tipo: Discrepancy solo en tipos de conciliación, TotalAmount
// en todos menos traslado, Profit solo en salidas.
type Totals struct {
	TotalQuantity       decimal.Decimal
	TotalActualQuantity decimal.Decimal
	Discrepancy         decimal.Decimal // actual − registro; positivo = sobrante, negativo = faltante
	TotalAmount         decimal.Decimal
	Profit              decimal.Decimal
	HasDiscrepancy      bool
	HasAmount           bool
	HasProfit           bool
}

// ComputeTotals recalcula los totales sobre el estado actual. Función pura e
// idempotente: no muta el ledger y dos llamadas sin mutación intermedia devuelven
// lo mismo.
//
// El margen (Profit, solo salidas) se calcula contra el precio de compra del
// catálogo, no contra el del renglón: editar el costo en el renglón no maquilla
// la rentabilidad real. Si el producto ya no está en el catálogo se usa el costo
// copiado en el renglón.
func (l *Ledger) ComputeTotals() Totals {
	rules := l.docType.Rules()
	t := Totals{
		TotalQuantity:       decimal.Zero,
		TotalActualQuantity: decimal.Zero,
		Discrepancy:         decimal.Zero,
		TotalAmount:         decimal.Zero,
		Profit:              decimal.Zero,
		HasDiscrepancy:      rules.NeedsActualQuantity,
		HasAmount:           rules.Basis != BasisNone,
		HasProfit:           l.docType == TypeOutgoing,
	}

	for _, line := range l.lines {
		t.TotalQuantity = t.TotalQuantity.Add(line.Quantity)

		actual := line.Quantity
		if line.ActualQuantity != nil {
			actual = *line.ActualQuantity
		}
		t.TotalActualQuantity = t.TotalActualQuantity.Add(actual)

		t.TotalAmount = t.TotalAmount.Add(l.LineTotal(line))

		if t.HasProfit {
			cost := line.UnitPurchasePrice
			if info, err := l.catalog.Lookup(line.ProductID); err == nil {
				cost = info.PurchasePrice
			}
			t.Profit = t.Profit.Add(line.UnitSellPrice.Sub(cost).Mul(line.Quantity))
		}
	}

	t.Discrepancy = t.TotalActualQuantity.Sub(t.TotalQuantity)
	return t
}
