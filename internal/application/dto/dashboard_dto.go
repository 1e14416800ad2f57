package dto

import "github.com/shopspring/decimal"

// DashboardRequest filtros del dashboard (query params).
// Fechas en formato YYYY-MM-DD; listas separadas por coma.
type DashboardRequest struct {
	StartDate  string `query:"start_date"`
	EndDate    string `query:"end_date"`
	Locations  string `query:"locations"`
	ProductIDs string `query:"product_ids"`
	ViewBy     string `query:"view_by"` // day | month | year (default day)
}

// SeriesPointDTO punto (etiqueta, monto) de una serie agrupada.
type SeriesPointDTO struct {
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
}

// CountPointDTO punto (etiqueta, unidades) del ranking de productos.
type CountPointDTO struct {
	Label string `json:"label"`
	Count int64  `json:"count"`
}

// DashboardSummaryDTO respuesta completa de GET /api/dashboard/summary.
// Replica los widgets del tablero: métricas de cabecera, serie temporal según
// view_by, ventas por ubicación/canal/género/edad y top de productos.
type DashboardSummaryDTO struct {
	TotalSales      decimal.Decimal  `json:"total_sales"`
	UniqueLocations int              `json:"unique_locations"`
	ExpectedRevenue decimal.Decimal  `json:"expected_revenue"`
	ViewBy          string           `json:"view_by"`
	SalesByPeriod   []SeriesPointDTO `json:"sales_by_period"`
	SalesByLocation []SeriesPointDTO `json:"sales_by_location"`
	TopProducts     []CountPointDTO  `json:"top_products"`
	SalesByChannel  []SeriesPointDTO `json:"sales_by_channel"`
	SalesByGender   []SeriesPointDTO `json:"sales_by_gender"`
	SalesByAge      []SeriesPointDTO `json:"sales_by_age"`
}
