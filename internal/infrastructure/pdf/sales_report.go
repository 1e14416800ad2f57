// Package pdf implementa el reporte imprimible de ventas con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + período  │  Fecha de generación           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  MÉTRICAS: Total Sales | Unique Locations | Expected Rev.   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Sales by Location                                    │
//	│  TABLA: Sales by Month                                       │
//	│  TABLA: Top Products by Quantity                             │
//	└─────────────────────────────────────────────────────────────┘
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

	"github.com/vstock/ventas-api/internal/application/chat"
	"github.com/vstock/ventas-api/internal/application/usecase"
	"github.com/vstock/ventas-api/internal/domain/repository"
)

var _ usecase.ReportPDFGenerator = (*MarotoReportGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa usecase.ReportPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateSalesReport genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateSalesReport(_ context.Context, report *usecase.SalesReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Sales Report", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(metricsRow(report.Metrics))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(amountTableRows("Sales by Location", "Location", report.SalesByLocation)...)
	m.AddRows(amountTableRows("Sales by Month", "Month", report.SalesByMonth)...)
	m.AddRows(countTableRows("Top Products by Quantity", report.TopProducts)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título + período (izq) y fecha de generación (der).
func headerRow(report *usecase.SalesReport) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New("SALES REPORT", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Period: "+report.Period, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Generated: "+report.GeneratedAt.Format("2006-01-02 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

// metricsRow: los tres indicadores de cabecera del panel.
func metricsRow(m repository.SalesMetrics) core.Row {
	metric := func(label, value string) core.Col {
		return col.New(4).Add(
			text.New(label, props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Center,
				Color: colorGray, Top: 2,
			}),
			text.New(value, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Center,
				Color: colorPrimary, Top: 8,
			}),
		)
	}
	return row.New(18).Add(
		metric("Total Sales", chat.FormatMoney(m.TotalSales)),
		metric("Unique Locations", fmt.Sprintf("%d", m.UniqueLocations)),
		metric("Expected Revenue", chat.FormatMoney(m.ExpectedRevenue)),
	)
}

// amountTableRows: título de sección + cabecera + una fila por agregado.
func amountTableRows(title, labelHeader string, rows []repository.LabeledAmount) []core.Row {
	out := sectionHeader(title, labelHeader, "Total Sales")
	for _, r := range rows {
		out = append(out, row.New(6).Add(
			col.New(8).Add(text.New(r.Label, props.Text{
				Size: 8, Align: align.Left, Top: 1, Left: 1,
			})),
			col.New(4).Add(text.New(chat.FormatMoney(r.Amount), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
		))
	}
	if len(rows) == 0 {
		out = append(out, emptyRow())
	}
	return out
}

// countTableRows: igual que amountTableRows pero con unidades en vez de montos.
func countTableRows(title string, rows []repository.LabeledCount) []core.Row {
	out := sectionHeader(title, "Product ID", "Units Sold")
	for _, r := range rows {
		out = append(out, row.New(6).Add(
			col.New(8).Add(text.New(r.Label, props.Text{
				Size: 8, Align: align.Left, Top: 1, Left: 1,
			})),
			col.New(4).Add(text.New(fmt.Sprintf("%d", r.Count), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
		))
	}
	if len(rows) == 0 {
		out = append(out, emptyRow())
	}
	return out
}

func sectionHeader(title, left, right string) []core.Row {
	return []core.Row{
		row.New(4),
		row.New(8).Add(col.New(12).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 1,
			}),
		)),
		row.New(7).Add(
			col.New(8).Add(text.New(left, props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Left, Top: 1, Left: 1,
			})),
			col.New(4).Add(text.New(right, props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
		),
	}
}

func emptyRow() core.Row {
	return row.New(6).Add(col.New(12).Add(
		text.New("No data for the selected period.", props.Text{
			Size: 8, Color: colorGray, Top: 1, Left: 1,
		}),
	))
}
