package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quangthoIT/CRM-Lospec-sub000/internal/domain"
	"github.com/quangthoIT/CRM-Lospec-sub000/internal/domain/pricing"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// Caso base: dos líneas, sin descuento, IVA 10%.
func TestComputeTotals_CasoBase(t *testing.T) {
	lines := []pricing.Line{
		{Quantity: 2, UnitPrice: d("10000")},
		{Quantity: 1, UnitPrice: d("5000")},
	}

	got, err := pricing.ComputeTotals(lines, decimal.Zero, d("0.10"))
	require.NoError(t, err)

	assert.True(t, d("25000").Equal(got.Subtotal), "subtotal: esperado 25000, obtenido %s", got.Subtotal)
	assert.True(t, d("25000").Equal(got.TaxableAmount), "base gravable debe igualar el subtotal sin descuento")
	assert.True(t, d("2500").Equal(got.Tax), "impuesto: esperado 2500, obtenido %s", got.Tax)
	assert.True(t, d("27500").Equal(got.Total), "total: esperado 27500, obtenido %s", got.Total)
}

// El descuento reduce la base gravable antes de aplicar el impuesto.
func TestComputeTotals_DescuentoReduceBase(t *testing.T) {
	lines := []pricing.Line{{Quantity: 1, UnitPrice: d("20000")}}

	got, err := pricing.ComputeTotals(lines, d("5000"), d("0.10"))
	require.NoError(t, err)

	assert.True(t, d("20000").Equal(got.Subtotal))
	assert.True(t, d("15000").Equal(got.TaxableAmount))
	assert.True(t, d("1500").Equal(got.Tax))
	assert.True(t, d("16500").Equal(got.Total))
}

// Un descuento mayor al subtotal nunca produce totales negativos: se trunca a cero.
func TestComputeTotals_DescuentoMayorAlSubtotal_TruncaACero(t *testing.T) {
	lines := []pricing.Line{{Quantity: 1, UnitPrice: d("10000")}}

	got, err := pricing.ComputeTotals(lines, d("999999"), d("0.10"))
	require.NoError(t, err)

	assert.True(t, d("10000").Equal(got.Subtotal), "el subtotal no se ve afectado por el descuento")
	assert.True(t, got.TaxableAmount.IsZero(), "base gravable truncada a cero")
	assert.True(t, got.Tax.IsZero(), "impuesto cero sobre base cero")
	assert.True(t, got.Total.IsZero(), "total cero, nunca negativo")
}

// Sin líneas el resultado es cero limpio (la validación de carrito vacío vive
// en el caso de uso, no aquí).
func TestComputeTotals_SinLineas(t *testing.T) {
	got, err := pricing.ComputeTotals(nil, decimal.Zero, d("0.10"))
	require.NoError(t, err)

	assert.True(t, got.Subtotal.IsZero())
	assert.True(t, got.Total.IsZero())
}

// Aritmética decimal exacta: precios con centavos no acumulan error de flotante.
func TestComputeTotals_PrecisionDecimal(t *testing.T) {
	lines := []pricing.Line{
		{Quantity: 3, UnitPrice: d("0.10")},
	}

	got, err := pricing.ComputeTotals(lines, decimal.Zero, d("0.19"))
	require.NoError(t, err)

	assert.True(t, d("0.30").Equal(got.Subtotal), "3 × 0.10 debe ser exactamente 0.30")
	assert.True(t, d("0.057").Equal(got.Tax), "0.30 × 0.19 debe ser exactamente 0.057")
	assert.True(t, d("0.357").Equal(got.Total))
}

func TestComputeTotals_EntradasInvalidas(t *testing.T) {
	cases := []struct {
		name     string
		lines    []pricing.Line
		discount decimal.Decimal
	}{
		{"cantidad cero", []pricing.Line{{Quantity: 0, UnitPrice: d("100")}}, decimal.Zero},
		{"cantidad negativa", []pricing.Line{{Quantity: -1, UnitPrice: d("100")}}, decimal.Zero},
		{"precio negativo", []pricing.Line{{Quantity: 1, UnitPrice: d("-100")}}, decimal.Zero},
		{"descuento negativo", []pricing.Line{{Quantity: 1, UnitPrice: d("100")}}, d("-1")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := pricing.ComputeTotals(tc.lines, tc.discount, d("0.10"))
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}
