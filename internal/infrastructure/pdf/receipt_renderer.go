// Package pdf genera el comprobante de una orden de pago con sus pagos.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: ORDEN DE PAGO + N°   │  Fecha de emisión + Estado   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  BENEFICIARIO + CONCEPTO                                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Método | Referencia | Monto                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Monto orden / Pagado / Saldo                      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: QR con la referencia de la orden                   │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
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

	"github.com/jhoicas/timebox-api/internal/application/finance"
	"github.com/jhoicas/timebox-api/internal/domain/entity"
)

var _ finance.ReceiptRenderer = (*ReceiptRenderer)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ReceiptRenderer implementa finance.ReceiptRenderer usando Maroto v2.
type ReceiptRenderer struct {
	issuer string
}

// NewReceiptRenderer construye el generador. issuer aparece como autor del documento.
func NewReceiptRenderer(issuer string) *ReceiptRenderer { return &ReceiptRenderer{issuer: issuer} }

// RenderOrderReceipt genera el PDF y devuelve sus bytes.
func (g *ReceiptRenderer) RenderOrderReceipt(order *entity.PaymentOrder, payments []*entity.Payment) ([]byte, error) {
	if order == nil {
		return nil, fmt.Errorf("pdf: orden nula")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Orden de pago "+order.ID, true).
		WithAuthor(g.issuer, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(order))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(payeeRow(order))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(paymentRows(payments)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(order, payments))

	m.AddRows(line.NewRow(3))
	m.AddRows(footerRow(order))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(order *entity.PaymentOrder) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New("ORDEN DE PAGO", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("N° "+order.ID, props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Emisión: "+order.IssueDate.Format("02/01/2006"), props.Text{
				Size: 9, Align: align.Right, Top: 2,
			}),
			text.New("Estado: "+strings.ToUpper(order.Status), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 9, Color: colorPrimary,
			}),
		),
	)
}

func payeeRow(order *entity.PaymentOrder) core.Row {
	return row.New(16).Add(
		col.New(12).Add(
			text.New("BENEFICIARIO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(order.PayeeID, "-"), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New("Concepto: "+nonEmpty(order.Concept, "-"), props.Text{
				Size: 8, Top: 12, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 2, align.Left),
		h("Método", 2, align.Left),
		h("Referencia", 5, align.Left),
		h("Monto", 3, align.Right),
	)
}

func paymentRows(payments []*entity.Payment) []core.Row {
	if len(payments) == 0 {
		return []core.Row{row.New(7).Add(col.New(12).Add(
			text.New("Sin pagos registrados", props.Text{Size: 8, Top: 1, Color: colorGray, Align: align.Center}),
		))}
	}
	out := make([]core.Row, 0, len(payments))
	for _, p := range payments {
		out = append(out, row.New(7).Add(
			col.New(2).Add(text.New(p.PaidAt.Format("02/01/2006"), props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(p.Method, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(5).Add(text.New(p.Reference, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(3).Add(text.New(
				formatMoney(p.Amount)+" "+p.Currency,
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return out
}

// totalsRow: solo los comprobantes saldan la orden; el anticipo se informa aparte.
func totalsRow(order *entity.PaymentOrder, payments []*entity.Payment) core.Row {
	var advance, settled decimal.Decimal
	for _, p := range payments {
		switch p.Method {
		case entity.PaymentMethodAnticipo:
			advance = advance.Add(p.Amount)
		case entity.PaymentMethodComprobante:
			settled = settled.Add(p.Amount)
		}
	}
	balance := order.Amount.Sub(settled)
	if balance.IsNegative() {
		balance = decimal.Zero
	}

	label := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2})
	}
	value := func(d decimal.Decimal) core.Component {
		return text.New(formatMoney(d)+" "+order.Currency, props.Text{Size: 9, Align: align.Right, Right: 1})
	}

	return row.New(26).Add(
		col.New(4),
		col.New(4).Add(
			label("Monto de la orden:"),
			label("Anticipos:"),
			label("Comprobantes:"),
			text.New("SALDO:", props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 2}),
		),
		col.New(4).Add(
			value(order.Amount),
			value(advance),
			value(settled),
			text.New(formatMoney(balance)+" "+order.Currency, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 1,
			}),
		),
	)
}

func footerRow(order *entity.PaymentOrder) core.Row {
	return row.New(40).Add(
		col.New(3).Add(code.NewQr("ORDEN:"+order.ID, props.Rect{Percent: 95, Center: true})),
		col.New(9).Add(
			text.New("Documento de soporte de la orden de pago.", props.Text{
				Size: 8, Top: 4, Left: 3, Color: colorGray,
			}),
			text.New("Conserve este comprobante junto al archivo del pago.", props.Text{
				Size: 8, Top: 10, Left: 3, Color: colorGray,
			}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney formatea con puntos de miles y coma decimal.
// Ej: 25000 → "25.000,00", 1234567.5 → "1.234.567,50"
func formatMoney(d decimal.Decimal) string {
	s := d.Abs().StringFixed(2)
	intPart, frac := s[:len(s)-3], s[len(s)-2:]
	n := len(intPart)
	buf := make([]byte, 0, n+n/3+4)
	if d.IsNegative() {
		buf = append(buf, '-')
	}
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	buf = append(buf, ',')
	buf = append(buf, frac...)
	return string(buf)
}
