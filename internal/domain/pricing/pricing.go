package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/quangthoIT/CRM-Lospec-sub000/internal/domain"
)

// Line es una línea de venta para el cálculo de totales.
type Line struct {
	Quantity  int
	UnitPrice decimal.Decimal
}

// Totals resultado del cálculo de una venta.
type Totals struct {
	Subtotal      decimal.Decimal
	TaxableAmount decimal.Decimal
	Tax           decimal.Decimal
	Total         decimal.Decimal
}

// ComputeTotals calcula subtotal, base gravable, impuesto y total (servicio de
// dominio, puro). Aritmética decimal exacta; nunca float.
//
//	subtotal = Σ(cantidad × precioUnitario)
//	base     = max(0, subtotal − descuento)   // el descuento no vuelve negativa la base
//	impuesto = base × taxRate                 // taxRate es fracción (0.10 = 10%), viene de config
//	total    = base + impuesto
func ComputeTotals(lines []Line, discount, taxRate decimal.Decimal) (*Totals, error) {
	if discount.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	subtotal := decimal.Zero
	for _, l := range lines {
		if l.Quantity <= 0 || l.UnitPrice.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		subtotal = subtotal.Add(l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}

	taxable := subtotal.Sub(discount)
	if taxable.LessThan(decimal.Zero) {
		taxable = decimal.Zero // descuento mayor al subtotal: venta a costo cero, nunca negativa
	}
	tax := taxable.Mul(taxRate)

	return &Totals{
		Subtotal:      subtotal,
		TaxableAmount: taxable,
		Tax:           tax,
		Total:         taxable.Add(tax),
	}, nil
}
