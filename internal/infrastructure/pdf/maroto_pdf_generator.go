// Package pdf genera el comprobante imprimible de una factura del dashboard.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la app    │  Referencia + Fecha          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nombre + Email                                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DETALLE: Estado | Monto                                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: QR con la referencia + leyenda                     │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

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

	"github.com/jhoicas/invoices-dashboard/internal/domain/entity"
	"github.com/jhoicas/invoices-dashboard/internal/domain/money"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorPaid    = &props.Color{Red: 22, Green: 128, Blue: 61}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa billing.InvoicePDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	issuer string
}

// NewMarotoPDFGenerator construye el generador; issuer aparece en el encabezado.
func NewMarotoPDFGenerator(issuer string) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{issuer: nonEmpty(issuer, "Invoices Dashboard")}
}

// GenerateInvoicePDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateInvoicePDF(
	ctx context.Context,
	invoice *entity.Invoice,
	customer *entity.Customer,
) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if invoice == nil || customer == nil {
		return nil, fmt.Errorf("pdf: factura y cliente son obligatorios")
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Invoice "+invoice.ID, true).
		WithAuthor(g.issuer, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(invoice))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(customer))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(detailRows(invoice)...)
	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(invoice))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func (g *MarotoPDFGenerator) headerRow(invoice *entity.Invoice) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(g.issuer, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("INVOICE", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(shortRef(invoice.ID), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Date: "+invoice.Date, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

func customerRow(customer *entity.Customer) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("BILLED TO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(customer.Name, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(nonEmpty(customer.Email, "—"), props.Text{
				Size: 8, Top: 12, Color: colorGray,
			}),
		),
	)
}

func detailRows(invoice *entity.Invoice) []core.Row {
	statusColor := colorGray
	if invoice.Status == entity.InvoiceStatusPaid {
		statusColor = colorPaid
	}
	return []core.Row{
		row.New(8).Add(
			col.New(6).Add(text.New("Status", props.Text{
				Style: fontstyle.Bold, Size: 9, Top: 2,
			})),
			col.New(6).Add(text.New(strings.ToUpper(string(invoice.Status)), props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2, Color: statusColor,
			})),
		),
		row.New(10).Add(
			col.New(6).Add(text.New("Amount", props.Text{
				Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 2,
			})),
			col.New(6).Add(text.New(money.FormatCurrency(invoice.Amount), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 2,
			})),
		),
	}
}

// footerRow: QR con el id completo de la factura.
func footerRow(invoice *entity.Invoice) core.Row {
	return row.New(40).Add(
		col.New(3).Add(code.NewQr(invoice.ID, props.Rect{
			Percent: 95,
			Center:  true,
		})),
		col.New(9).Add(
			text.New("Reference: "+invoice.ID, props.Text{
				Size: 7, Top: 4, Left: 3, Color: colorGray,
			}),
			text.New("Keep this document for your records.", props.Text{
				Size: 7, Top: 10, Left: 3, Color: colorGray,
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

// shortRef primeros 8 caracteres del id, en mayúsculas.
// Ej: "3958dc9e-712f-4377-85e9-fec4b6a6442a" → "#3958DC9E"
func shortRef(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return "#" + strings.ToUpper(id)
}
