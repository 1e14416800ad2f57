package chat

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/vstock/ventas-api/internal/domain/repository"
)

// Tipos de gráfico que el front sabe dibujar.
const (
	ChartBar  = "bar"
	ChartLine = "line"
)

// ChartRow fila (etiqueta, valor) de una tabla graficable.
type ChartRow struct {
	Label string
	Value decimal.Decimal
}

// ChartTable es la tabla lista para graficar que acompaña a una respuesta
// agrupada: título, nombres de columnas y filas en el orden de la consulta.
type ChartTable struct {
	Title  string
	Kind   string // bar | line
	XLabel string
	YLabel string
	Rows   []ChartRow
}

// moneyPrinter agrupa miles según la convención en-US ($1,234.50).
var moneyPrinter = message.NewPrinter(language.English)

// FormatMoney renderiza un monto con dos decimales y separador de miles.
func FormatMoney(amount decimal.Decimal) string {
	f, _ := amount.Round(2).Float64()
	return moneyPrinter.Sprintf("$%.2f", f)
}

// formatGrouped produce el bloque de texto de una consulta agrupada: una línea
// de cabecera más una línea "- {etiqueta}: {monto}" por fila. Un resultado
// vacío produce solo la cabecera.
func formatGrouped(header string, labelPrefix string, rows []repository.LabeledAmount) string {
	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n")
	for _, r := range rows {
		b.WriteString("- ")
		b.WriteString(labelPrefix)
		b.WriteString(r.Label)
		b.WriteString(": ")
		b.WriteString(FormatMoney(r.Amount))
		b.WriteString("\n")
	}
	return b.String()
}

// chartFor arma la tabla graficable de una consulta agrupada. Un resultado
// vacío no produce gráfico.
func chartFor(title, kind, xLabel string, rows []repository.LabeledAmount) *ChartTable {
	if len(rows) == 0 {
		return nil
	}
	chart := &ChartTable{
		Title:  title,
		Kind:   kind,
		XLabel: xLabel,
		YLabel: "Total Sales",
		Rows:   make([]ChartRow, 0, len(rows)),
	}
	for _, r := range rows {
		chart.Rows = append(chart.Rows, ChartRow{Label: r.Label, Value: r.Amount})
	}
	return chart
}
