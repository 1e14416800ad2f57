package chat_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vstock/ventas-api/internal/application/chat"
	"github.com/vstock/ventas-api/internal/domain"
	"github.com/vstock/ventas-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake del repositorio de analítica
// ──────────────────────────────────────────────────────────────────────────────

type fakeSalesRepo struct {
	total      decimal.Decimal
	byLocation []repository.LabeledAmount
	byProduct  []repository.LabeledAmount
	byPeriod   map[repository.Granularity][]repository.LabeledAmount
	err        error
}

func (f *fakeSalesRepo) TotalSales(context.Context, repository.SalesFilter) (decimal.Decimal, error) {
	return f.total, f.err
}
func (f *fakeSalesRepo) GetMetrics(context.Context, repository.SalesFilter) (*repository.SalesMetrics, error) {
	return &repository.SalesMetrics{TotalSales: f.total, ExpectedRevenue: f.total}, f.err
}
func (f *fakeSalesRepo) SalesByLocation(context.Context, repository.SalesFilter) ([]repository.LabeledAmount, error) {
	return f.byLocation, f.err
}
func (f *fakeSalesRepo) SalesByProduct(context.Context, repository.SalesFilter) ([]repository.LabeledAmount, error) {
	return f.byProduct, f.err
}
func (f *fakeSalesRepo) SalesByPeriod(_ context.Context, _ repository.SalesFilter, g repository.Granularity) ([]repository.LabeledAmount, error) {
	return f.byPeriod[g], f.err
}
func (f *fakeSalesRepo) SalesByChannel(context.Context, repository.SalesFilter) ([]repository.LabeledAmount, error) {
	return nil, f.err
}
func (f *fakeSalesRepo) SalesByGender(context.Context, repository.SalesFilter) ([]repository.LabeledAmount, error) {
	return nil, f.err
}
func (f *fakeSalesRepo) SalesByAge(context.Context, repository.SalesFilter) ([]repository.LabeledAmount, error) {
	return nil, f.err
}
func (f *fakeSalesRepo) TopProductsByQuantity(context.Context, repository.SalesFilter) ([]repository.LabeledCount, error) {
	return nil, f.err
}

func amt(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

// ──────────────────────────────────────────────────────────────────────────────
// Clasificación: la tabla de intenciones completa, en orden
// ──────────────────────────────────────────────────────────────────────────────

func TestClassify_TablaCompleta(t *testing.T) {
	cases := []struct {
		query string
		want  chat.Intent
	}{
		{"total sales", chat.IntentTotalSales},
		{"Total sales please", chat.IntentTotalSales},
		{"TOTAL SALES NOW", chat.IntentTotalSales},
		{"show me sales by location", chat.IntentSalesByLocation},
		{"sales by product this quarter", chat.IntentSalesByProduct},
		{"what are sales by day", chat.IntentSalesByDay},
		{"Sales By Month", chat.IntentSalesByMonth},
		{"give me sales by year", chat.IntentSalesByYear},
		{"hello there", chat.IntentUnrecognized},
		{"sales", chat.IntentUnrecognized},     // menciona sales pero sin frase conocida
		{"by location", chat.IntentUnrecognized},
		{"", chat.IntentUnrecognized},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, chat.Classify(tc.query), "query: %q", tc.query)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Dispatch
// ──────────────────────────────────────────────────────────────────────────────

func TestDispatch_TotalSales_FormateaMonto(t *testing.T) {
	repo := &fakeSalesRepo{total: amt("1234.5")}
	d := chat.NewDispatcher(repo)

	ans, err := d.Dispatch(context.Background(), "Total sales please")
	require.NoError(t, err)
	assert.Equal(t, "Total sales amount is $1,234.50", ans.Text,
		"dos decimales y separador de miles")
	assert.Nil(t, ans.Chart, "total_sales no lleva tabla")
}

func TestDispatch_SalesByLocation_LineasYTabla(t *testing.T) {
	repo := &fakeSalesRepo{byLocation: []repository.LabeledAmount{
		{Label: "A", Amount: amt("15.00")},
		{Label: "B", Amount: amt("3.00")},
	}}
	d := chat.NewDispatcher(repo)

	ans, err := d.Dispatch(context.Background(), "sales by location")
	require.NoError(t, err)
	assert.Contains(t, ans.Text, "Sales by location:")
	assert.Contains(t, ans.Text, "- A: $15.00")
	assert.Contains(t, ans.Text, "- B: $3.00")

	require.NotNil(t, ans.Chart)
	assert.Equal(t, "Location", ans.Chart.XLabel)
	assert.Equal(t, "Total Sales", ans.Chart.YLabel)
	assert.Equal(t, chat.ChartBar, ans.Chart.Kind)
	require.Len(t, ans.Chart.Rows, 2)
	assert.Equal(t, "A", ans.Chart.Rows[0].Label)
}

func TestDispatch_SalesByProduct_PrefijaEtiqueta(t *testing.T) {
	repo := &fakeSalesRepo{byProduct: []repository.LabeledAmount{
		{Label: "42", Amount: amt("99.9")},
	}}
	d := chat.NewDispatcher(repo)

	ans, err := d.Dispatch(context.Background(), "SALES BY PRODUCT")
	require.NoError(t, err)
	assert.Contains(t, ans.Text, "- Product 42: $99.90")
	require.NotNil(t, ans.Chart)
	assert.Equal(t, "Product ID", ans.Chart.XLabel)
}

func TestDispatch_SalesByPeriodo_OrdenYLinea(t *testing.T) {
	repo := &fakeSalesRepo{byPeriod: map[repository.Granularity][]repository.LabeledAmount{
		repository.ByMonth: {
			{Label: "2024-01", Amount: amt("10")},
			{Label: "2024-02", Amount: amt("20")},
		},
	}}
	d := chat.NewDispatcher(repo)

	ans, err := d.Dispatch(context.Background(), "sales by month")
	require.NoError(t, err)
	require.NotNil(t, ans.Chart)
	assert.Equal(t, chat.ChartLine, ans.Chart.Kind)
	assert.Equal(t, "Month", ans.Chart.XLabel)
	assert.Equal(t, "2024-01", ans.Chart.Rows[0].Label, "orden ascendente del repo se conserva")
}

func TestDispatch_ResultadoVacio_SoloCabeceraSinTabla(t *testing.T) {
	d := chat.NewDispatcher(&fakeSalesRepo{}) // sin filas

	for _, q := range []string{"sales by location", "sales by product", "sales by day", "sales by month", "sales by year"} {
		ans, err := d.Dispatch(context.Background(), q)
		require.NoError(t, err, "query: %q", q)
		assert.Nil(t, ans.Chart, "resultado vacío no produce gráfico (query %q)", q)
		assert.NotEmpty(t, ans.Text, "la cabecera siempre está presente")
		assert.NotContains(t, ans.Text, "- ", "sin filas no hay líneas de detalle")
	}
}

func TestDispatch_NoReconocida_MensajeDeAyuda(t *testing.T) {
	d := chat.NewDispatcher(&fakeSalesRepo{})

	ans, err := d.Dispatch(context.Background(), "how is the weather in sales-town")
	require.NoError(t, err)
	assert.Nil(t, ans.Chart)
	assert.Contains(t, ans.Text, "I can only answer questions related to")
}

func TestDispatch_FalloDeDatos_ErrorConClase(t *testing.T) {
	repo := &fakeSalesRepo{err: errors.New("conn refused")}
	d := chat.NewDispatcher(repo)

	ans, err := d.Dispatch(context.Background(), "total sales")
	require.Error(t, err)
	assert.Nil(t, ans)
	assert.Equal(t, domain.KindDataAccess, domain.KindOf(err))
	assert.NotContains(t, domain.UserMessage(err), "conn refused",
		"el detalle interno no se filtra al usuario")
}
