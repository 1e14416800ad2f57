package chat

import (
	"context"
	"strings"

	"github.com/vstock/ventas-api/internal/domain"
	"github.com/vstock/ventas-api/internal/domain/repository"
)

// Intent es una de las consultas de ventas que el chatbot sabe responder.
type Intent string

const (
	IntentTotalSales      Intent = "total_sales"
	IntentSalesByLocation Intent = "sales_by_location"
	IntentSalesByProduct  Intent = "sales_by_product"
	IntentSalesByDay      Intent = "sales_by_day"
	IntentSalesByMonth    Intent = "sales_by_month"
	IntentSalesByYear     Intent = "sales_by_year"
	IntentUnrecognized    Intent = "unrecognized"
)

// helpMessage es la respuesta fija cuando ninguna frase coincide.
const helpMessage = "I can only answer questions related to 'total sales', " +
	"'sales by location', 'sales by product', or 'sales by day/month/year' for now."

// Answer es el resultado estructurado del dispatcher: resumen de texto y,
// para las intenciones agrupadas con filas, una tabla graficable.
type Answer struct {
	Text  string
	Chart *ChartTable
}

// intentRule asocia una frase literal con su intención. El orden de la tabla
// es contractual: se evalúa de arriba hacia abajo y gana la primera
// coincidencia (contención de substring, sin distinguir mayúsculas).
type intentRule struct {
	phrase string
	intent Intent
}

var intentTable = []intentRule{
	{"total sales", IntentTotalSales},
	{"sales by location", IntentSalesByLocation},
	{"sales by product", IntentSalesByProduct},
	{"sales by day", IntentSalesByDay},
	{"sales by month", IntentSalesByMonth},
	{"sales by year", IntentSalesByYear},
}

// Classify mapea una pregunta libre a su intención. Exportada para poder
// enumerar la tabla completa en tests.
func Classify(query string) Intent {
	q := strings.ToLower(query)
	for _, rule := range intentTable {
		if strings.Contains(q, rule.phrase) {
			return rule.intent
		}
	}
	return IntentUnrecognized
}

// Dispatcher resuelve preguntas de ventas contra el repositorio de analítica.
type Dispatcher struct {
	sales repository.SalesAnalyticsRepository
}

// NewDispatcher construye el dispatcher.
func NewDispatcher(sales repository.SalesAnalyticsRepository) *Dispatcher {
	return &Dispatcher{sales: sales}
}

// Dispatch clasifica la pregunta y ejecuta la agregación correspondiente.
// Una intención no reconocida devuelve el mensaje de ayuda sin tabla y sin
// error. Un fallo de datos devuelve un error con clase KindDataAccess; el
// texto del fallo interno jamás se incrusta en la respuesta del chat.
func (d *Dispatcher) Dispatch(ctx context.Context, query string) (*Answer, error) {
	// El chatbot consulta toda la tabla: filtro vacío.
	var all repository.SalesFilter

	switch Classify(query) {
	case IntentTotalSales:
		total, err := d.sales.TotalSales(ctx, all)
		if err != nil {
			return nil, domain.NewDataAccessError("sales data is temporarily unavailable", err)
		}
		return &Answer{Text: "Total sales amount is " + FormatMoney(total)}, nil

	case IntentSalesByLocation:
		rows, err := d.sales.SalesByLocation(ctx, all)
		if err != nil {
			return nil, domain.NewDataAccessError("sales data is temporarily unavailable", err)
		}
		return &Answer{
			Text:  formatGrouped("Sales by location:", "", rows),
			Chart: chartFor("Sales by Location", ChartBar, "Location", rows),
		}, nil

	case IntentSalesByProduct:
		rows, err := d.sales.SalesByProduct(ctx, all)
		if err != nil {
			return nil, domain.NewDataAccessError("sales data is temporarily unavailable", err)
		}
		return &Answer{
			Text:  formatGrouped("Sales by product:", "Product ", rows),
			Chart: chartFor("Sales by Product", ChartBar, "Product ID", rows),
		}, nil

	case IntentSalesByDay:
		return d.periodAnswer(ctx, repository.ByDay, "Sales by day", "Sale Date")

	case IntentSalesByMonth:
		return d.periodAnswer(ctx, repository.ByMonth, "Sales by month", "Month")

	case IntentSalesByYear:
		return d.periodAnswer(ctx, repository.ByYear, "Sales by year", "Year")

	default:
		return &Answer{Text: helpMessage}, nil
	}
}

// periodAnswer responde las tres intenciones temporales, que comparten forma:
// caption fijo + serie de línea ordenada por fecha ascendente.
func (d *Dispatcher) periodAnswer(
	ctx context.Context,
	g repository.Granularity,
	title, xLabel string,
) (*Answer, error) {
	rows, err := d.sales.SalesByPeriod(ctx, repository.SalesFilter{}, g)
	if err != nil {
		return nil, domain.NewDataAccessError("sales data is temporarily unavailable", err)
	}
	return &Answer{
		Text:  formatGrouped(title+":", "", rows),
		Chart: chartFor(title, ChartLine, xLabel, rows),
	}, nil
}
