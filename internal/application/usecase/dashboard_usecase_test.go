package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vstock/ventas-api/internal/application/dto"
	"github.com/vstock/ventas-api/internal/application/usecase"
	"github.com/vstock/ventas-api/internal/domain"
	"github.com/vstock/ventas-api/internal/domain/repository"
)

// fakeAnalytics devuelve datos fijos y captura el filtro recibido.
type fakeAnalytics struct {
	gotFilter      repository.SalesFilter
	gotGranularity repository.Granularity
}

func (f *fakeAnalytics) TotalSales(_ context.Context, flt repository.SalesFilter) (decimal.Decimal, error) {
	f.gotFilter = flt
	return decimal.NewFromInt(100), nil
}
func (f *fakeAnalytics) GetMetrics(_ context.Context, flt repository.SalesFilter) (*repository.SalesMetrics, error) {
	f.gotFilter = flt
	return &repository.SalesMetrics{
		TotalSales:      decimal.NewFromFloat(123.456),
		UniqueLocations: 3,
		ExpectedRevenue: decimal.NewFromFloat(123.456),
	}, nil
}
func (f *fakeAnalytics) SalesByLocation(context.Context, repository.SalesFilter) ([]repository.LabeledAmount, error) {
	return []repository.LabeledAmount{{Label: "A", Amount: decimal.NewFromInt(10)}}, nil
}
func (f *fakeAnalytics) SalesByProduct(context.Context, repository.SalesFilter) ([]repository.LabeledAmount, error) {
	return nil, nil
}
func (f *fakeAnalytics) SalesByPeriod(_ context.Context, _ repository.SalesFilter, g repository.Granularity) ([]repository.LabeledAmount, error) {
	f.gotGranularity = g
	return []repository.LabeledAmount{{Label: "2024-01", Amount: decimal.NewFromInt(5)}}, nil
}
func (f *fakeAnalytics) SalesByChannel(context.Context, repository.SalesFilter) ([]repository.LabeledAmount, error) {
	return nil, nil
}
func (f *fakeAnalytics) SalesByGender(context.Context, repository.SalesFilter) ([]repository.LabeledAmount, error) {
	return nil, nil
}
func (f *fakeAnalytics) SalesByAge(context.Context, repository.SalesFilter) ([]repository.LabeledAmount, error) {
	return nil, nil
}
func (f *fakeAnalytics) TopProductsByQuantity(context.Context, repository.SalesFilter) ([]repository.LabeledCount, error) {
	return []repository.LabeledCount{{Label: "p1", Count: 7}}, nil
}

func TestGetSummary_CombinaResultados(t *testing.T) {
	repo := &fakeAnalytics{}
	uc := usecase.NewDashboardUseCase(repo)

	out, err := uc.GetSummary(context.Background(), dto.DashboardRequest{ViewBy: "month"})
	require.NoError(t, err)

	assert.Equal(t, "month", out.ViewBy)
	assert.Equal(t, repository.ByMonth, repo.gotGranularity)
	assert.Equal(t, 3, out.UniqueLocations)
	assert.True(t, out.TotalSales.Equal(decimal.NewFromFloat(123.46)), "redondeo a dos decimales")
	require.Len(t, out.SalesByPeriod, 1)
	require.Len(t, out.TopProducts, 1)
	assert.Equal(t, int64(7), out.TopProducts[0].Count)
}

func TestGetSummary_FiltrosParseados(t *testing.T) {
	repo := &fakeAnalytics{}
	uc := usecase.NewDashboardUseCase(repo)

	_, err := uc.GetSummary(context.Background(), dto.DashboardRequest{
		StartDate:  "2023-01-01",
		EndDate:    "2024-12-31",
		Locations:  "Delhi, Mumbai",
		ProductIDs: "p1,p2",
	})
	require.NoError(t, err)

	require.NotNil(t, repo.gotFilter.StartDate)
	require.NotNil(t, repo.gotFilter.EndDate)
	assert.Equal(t, []string{"Delhi", "Mumbai"}, repo.gotFilter.Locations, "espacios recortados")
	assert.Equal(t, []string{"p1", "p2"}, repo.gotFilter.ProductIDs)
}

func TestGetSummary_Validaciones(t *testing.T) {
	uc := usecase.NewDashboardUseCase(&fakeAnalytics{})

	cases := []dto.DashboardRequest{
		{StartDate: "01/01/2023"},
		{EndDate: "ayer"},
		{StartDate: "2024-02-01", EndDate: "2024-01-01"}, // rango invertido
		{ViewBy: "semana"},
	}
	for _, req := range cases {
		_, err := uc.GetSummary(context.Background(), req)
		require.Error(t, err, "request: %+v", req)
		assert.Equal(t, domain.KindValidation, domain.KindOf(err))
	}
}
