package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/vstock/ventas-api/internal/domain/repository"
)

var _ repository.SalesAnalyticsRepository = (*SalesAnalyticsRepo)(nil)

// SalesAnalyticsRepo implementa las consultas de agregación sobre la tabla
// sales. Todas las consultas son de solo lectura.
type SalesAnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewSalesAnalyticsRepository construye el adaptador de analítica de ventas.
func NewSalesAnalyticsRepository(pool *pgxpool.Pool) *SalesAnalyticsRepo {
	return &SalesAnalyticsRepo{pool: pool}
}

// buildFilter traduce el SalesFilter a una cláusula WHERE con argumentos
// posicionales. Devuelve cadena vacía cuando el filtro no acota nada.
func buildFilter(f repository.SalesFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	if f.StartDate != nil {
		args = append(args, *f.StartDate)
		conds = append(conds, fmt.Sprintf("sale_date >= $%d", len(args)))
	}
	if f.EndDate != nil {
		args = append(args, *f.EndDate)
		conds = append(conds, fmt.Sprintf("sale_date <= $%d", len(args)))
	}
	if len(f.Locations) > 0 {
		args = append(args, f.Locations)
		conds = append(conds, fmt.Sprintf("location = ANY($%d)", len(args)))
	}
	if len(f.ProductIDs) > 0 {
		args = append(args, f.ProductIDs)
		conds = append(conds, fmt.Sprintf("product_id = ANY($%d)", len(args)))
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// TotalSales suma sale_amount sobre las filas que pasan el filtro.
func (r *SalesAnalyticsRepo) TotalSales(ctx context.Context, f repository.SalesFilter) (decimal.Decimal, error) {
	where, args := buildFilter(f)
	query := `SELECT COALESCE(SUM(sale_amount), 0) FROM sales` + where
	var total decimal.Decimal
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("total sales: %w", err)
	}
	return total, nil
}

// GetMetrics calcula los indicadores de cabecera en una sola pasada. El
// tablero original muestra el ingreso esperado igual al total vendido, así
// que ambos salen de la misma suma.
func (r *SalesAnalyticsRepo) GetMetrics(ctx context.Context, f repository.SalesFilter) (*repository.SalesMetrics, error) {
	where, args := buildFilter(f)
	query := `SELECT COALESCE(SUM(sale_amount), 0), COUNT(DISTINCT location) FROM sales` + where
	var m repository.SalesMetrics
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&m.TotalSales, &m.UniqueLocations); err != nil {
		return nil, fmt.Errorf("sales metrics: %w", err)
	}
	m.ExpectedRevenue = m.TotalSales
	return &m, nil
}

// SalesByLocation agrupa el monto vendido por ubicación.
func (r *SalesAnalyticsRepo) SalesByLocation(ctx context.Context, f repository.SalesFilter) ([]repository.LabeledAmount, error) {
	return r.groupedAmounts(ctx, f, "location", "location")
}

// SalesByProduct agrupa el monto vendido por producto.
func (r *SalesAnalyticsRepo) SalesByProduct(ctx context.Context, f repository.SalesFilter) ([]repository.LabeledAmount, error) {
	return r.groupedAmounts(ctx, f, "product_id", "product_id")
}

// SalesByChannel agrupa el monto vendido por canal.
func (r *SalesAnalyticsRepo) SalesByChannel(ctx context.Context, f repository.SalesFilter) ([]repository.LabeledAmount, error) {
	return r.groupedAmounts(ctx, f, "sale_channel", "sale_channel")
}

// SalesByGender agrupa el monto vendido por género del cliente.
func (r *SalesAnalyticsRepo) SalesByGender(ctx context.Context, f repository.SalesFilter) ([]repository.LabeledAmount, error) {
	return r.groupedAmounts(ctx, f, "customer_gender", "customer_gender")
}

// SalesByAge agrupa el monto vendido por edad, ordenado de menor a mayor.
func (r *SalesAnalyticsRepo) SalesByAge(ctx context.Context, f repository.SalesFilter) ([]repository.LabeledAmount, error) {
	return r.groupedAmounts(ctx, f, "customer_age::text", "customer_age")
}

// SalesByPeriod agrupa el monto vendido por la fecha truncada a la
// granularidad pedida, ascendente. Etiquetas: YYYY-MM-DD, YYYY-MM o YYYY.
func (r *SalesAnalyticsRepo) SalesByPeriod(ctx context.Context, f repository.SalesFilter, g repository.Granularity) ([]repository.LabeledAmount, error) {
	var format string
	switch g {
	case repository.ByMonth:
		format = "YYYY-MM"
	case repository.ByYear:
		format = "YYYY"
	default:
		format = "YYYY-MM-DD"
	}
	expr := fmt.Sprintf("to_char(sale_date, '%s')", format)
	return r.groupedAmounts(ctx, f, expr, expr)
}

// TopProductsByQuantity ordena los productos por unidades vendidas.
func (r *SalesAnalyticsRepo) TopProductsByQuantity(ctx context.Context, f repository.SalesFilter) ([]repository.LabeledCount, error) {
	where, args := buildFilter(f)
	query := `SELECT product_id, COALESCE(SUM(quantity), 0) FROM sales` + where +
		` GROUP BY product_id ORDER BY 2 DESC`
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("top products: %w", err)
	}
	defer rows.Close()
	var out []repository.LabeledCount
	for rows.Next() {
		var row repository.LabeledCount
		if err := rows.Scan(&row.Label, &row.Count); err != nil {
			return nil, fmt.Errorf("scan top products: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// groupedAmounts ejecuta SUM(sale_amount) agrupado y ordenado ascendente por
// groupExpr; labelExpr es la proyección de la etiqueta (puede llevar cast).
func (r *SalesAnalyticsRepo) groupedAmounts(ctx context.Context, f repository.SalesFilter, labelExpr, groupExpr string) ([]repository.LabeledAmount, error) {
	where, args := buildFilter(f)
	query := fmt.Sprintf(
		`SELECT %s, COALESCE(SUM(sale_amount), 0) FROM sales%s GROUP BY %s ORDER BY %s`,
		labelExpr, where, groupExpr, groupExpr,
	)
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("sales by %s: %w", labelExpr, err)
	}
	defer rows.Close()
	var out []repository.LabeledAmount
	for rows.Next() {
		var row repository.LabeledAmount
		if err := rows.Scan(&row.Label, &row.Amount); err != nil {
			return nil, fmt.Errorf("scan sales by %s: %w", labelExpr, err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
