// Package pdf implementa la generación del recibo de venta (tirilla POS).
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────┐
//	│  HEADER: Nombre del negocio │ N° Orden+Fecha │
//	│  ─────────────────────────────────────────  │
//	│  TABLA: Cant | Producto | P.Unit | Total     │
//	│  ─────────────────────────────────────────  │
//	│  TOTALES: Subtotal / Descuento / IVA / TOTAL │
//	│  Método de pago                              │
//	└─────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/quangthoIT/CRM-Lospec-sub000/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// money formatea un valor para el recibo con separadores de miles.
// Solo presentación: los cálculos siempre se hacen en decimal.
var moneyPrinter = message.NewPrinter(language.Spanish)

func money(d decimal.Decimal) string {
	return moneyPrinter.Sprintf("$ %v", number.Decimal(d.InexactFloat64(), number.MaxFractionDigits(2)))
}

// ReceiptGenerator implementa billing.ReceiptPDFGenerator usando Maroto v2.
type ReceiptGenerator struct{}

// NewReceiptGenerator construye el generador.
func NewReceiptGenerator() *ReceiptGenerator { return &ReceiptGenerator{} }

// GenerateReceiptPDF genera el recibo y devuelve sus bytes.
func (g *ReceiptGenerator) GenerateReceiptPDF(
	_ context.Context,
	order *entity.Order,
	items []*entity.OrderItem,
	storeName string,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Recibo de venta "+order.OrderNumber, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(order, storeName))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, it := range items {
		m.AddRows(itemRow(it))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRows(order)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar recibo: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: negocio (izq), número de orden y fecha (der).
func headerRow(order *entity.Order, storeName string) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(storeName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Recibo de venta", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(order.OrderNumber, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 3,
			}),
			text.New("Fecha: "+order.CreatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 11, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary}
	hRight := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Align: align.Right}
	return row.New(6).Add(
		col.New(1).Add(text.New("Cant", h)),
		col.New(6).Add(text.New("Producto", h)),
		col.New(2).Add(text.New("P. Unit", hRight)),
		col.New(3).Add(text.New("Total", hRight)),
	)
}

func itemRow(it *entity.OrderItem) core.Row {
	cell := props.Text{Size: 8}
	cellRight := props.Text{Size: 8, Align: align.Right}
	return row.New(5).Add(
		col.New(1).Add(text.New(fmt.Sprintf("%d", it.Quantity), cell)),
		col.New(6).Add(text.New(fmt.Sprintf("%s (%s)", it.ProductName, it.ProductSKU), cell)),
		col.New(2).Add(text.New(money(it.UnitPrice), cellRight)),
		col.New(3).Add(text.New(money(it.Total), cellRight)),
	)
}

func totalsRows(order *entity.Order) []core.Row {
	label := props.Text{Size: 9, Align: align.Right, Color: colorGray}
	value := props.Text{Size: 9, Align: align.Right}
	totalLabel := props.Text{Style: fontstyle.Bold, Size: 11, Align: align.Right, Color: colorPrimary}
	totalValue := props.Text{Style: fontstyle.Bold, Size: 11, Align: align.Right}

	rows := []core.Row{
		row.New(5).Add(
			col.New(9).Add(text.New("Subtotal", label)),
			col.New(3).Add(text.New(money(order.Subtotal), value)),
		),
		row.New(5).Add(
			col.New(9).Add(text.New("Descuento", label)),
			col.New(3).Add(text.New(money(order.Discount), value)),
		),
		row.New(5).Add(
			col.New(9).Add(text.New("Impuesto", label)),
			col.New(3).Add(text.New(money(order.Tax), value)),
		),
		row.New(8).Add(
			col.New(9).Add(text.New("TOTAL", totalLabel)),
			col.New(3).Add(text.New(money(order.Total), totalValue)),
		),
		row.New(5).Add(
			col.New(12).Add(text.New("Método de pago: "+order.PaymentMethod, props.Text{Size: 8, Color: colorGray})),
		),
	}
	return rows
}
