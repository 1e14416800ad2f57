package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Granularity es el período de agrupación temporal de ventas.
type Granularity string

const (
	ByDay   Granularity = "day"
	ByMonth Granularity = "month"
	ByYear  Granularity = "year"
)

// SalesFilter acota las consultas del dashboard. El valor cero no filtra nada
// (es el modo del chatbot, que consulta sobre toda la tabla).
type SalesFilter struct {
	StartDate  *time.Time
	EndDate    *time.Time
	Locations  []string
	ProductIDs []string
}

// LabeledAmount es una fila (etiqueta, monto) de una agregación de ventas.
type LabeledAmount struct {
	Label  string
	Amount decimal.Decimal
}

// LabeledCount es una fila (etiqueta, cantidad) para los rankings por unidades.
type LabeledCount struct {
	Label string
	Count int64
}

// SalesMetrics son los indicadores de cabecera del dashboard.
type SalesMetrics struct {
	TotalSales      decimal.Decimal
	UniqueLocations int
	ExpectedRevenue decimal.Decimal
}

// SalesAnalyticsRepository define las consultas de solo lectura sobre la tabla
// de ventas. Las usan el dispatcher del chatbot (sin filtro) y el dashboard
// (con filtro). Las implementaciones no modifican datos.
type SalesAnalyticsRepository interface {
	// TotalSales suma sale_amount sobre las filas del filtro.
	TotalSales(ctx context.Context, f SalesFilter) (decimal.Decimal, error)

	// GetMetrics devuelve los tres indicadores de cabecera en una sola pasada.
	GetMetrics(ctx context.Context, f SalesFilter) (*SalesMetrics, error)

	// SalesByLocation agrupa sale_amount por ubicación.
	SalesByLocation(ctx context.Context, f SalesFilter) ([]LabeledAmount, error)

	// SalesByProduct agrupa sale_amount por product_id.
	SalesByProduct(ctx context.Context, f SalesFilter) ([]LabeledAmount, error)

	// SalesByPeriod agrupa sale_amount por la fecha truncada a la granularidad
	// dada, ordenada ascendente por fecha. Etiquetas: 2006-01-02 / 2006-01 / 2006.
	SalesByPeriod(ctx context.Context, f SalesFilter, g Granularity) ([]LabeledAmount, error)

	// SalesByChannel agrupa sale_amount por canal de venta.
	SalesByChannel(ctx context.Context, f SalesFilter) ([]LabeledAmount, error)

	// SalesByGender agrupa sale_amount por género del cliente.
	SalesByGender(ctx context.Context, f SalesFilter) ([]LabeledAmount, error)

	// SalesByAge agrupa sale_amount por edad del cliente, ascendente.
	SalesByAge(ctx context.Context, f SalesFilter) ([]LabeledAmount, error)

	// TopProductsByQuantity devuelve productos ordenados por unidades vendidas.
	TopProductsByQuantity(ctx context.Context, f SalesFilter) ([]LabeledCount, error)
}
