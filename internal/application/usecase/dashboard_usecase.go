package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/vstock/ventas-api/internal/application/dto"
	"github.com/vstock/ventas-api/internal/domain"
	"github.com/vstock/ventas-api/internal/domain/repository"
)

// DashboardUseCase arma el resumen del tablero de analítica de ventas:
// métricas de cabecera, serie temporal según view_by y los desgloses por
// ubicación, producto, canal, género y edad.
//
// Fuente de datos: SalesAnalyticsRepository (consultas read-only).
type DashboardUseCase struct {
	salesRepo repository.SalesAnalyticsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(salesRepo repository.SalesAnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{salesRepo: salesRepo}
}

// GetSummary ejecuta las consultas del tablero en paralelo (son independientes
// entre sí) y combina los resultados en un solo DTO.
func (uc *DashboardUseCase) GetSummary(ctx context.Context, req dto.DashboardRequest) (*dto.DashboardSummaryDTO, error) {
	filter, granularity, err := parseDashboardRequest(req)
	if err != nil {
		return nil, err
	}

	type metricsResult struct {
		m   *repository.SalesMetrics
		err error
	}
	type seriesResult struct {
		rows []repository.LabeledAmount
		err  error
	}
	type countResult struct {
		rows []repository.LabeledCount
		err  error
	}

	metricsCh := make(chan metricsResult, 1)
	periodCh := make(chan seriesResult, 1)
	locationCh := make(chan seriesResult, 1)
	channelCh := make(chan seriesResult, 1)
	genderCh := make(chan seriesResult, 1)
	ageCh := make(chan seriesResult, 1)
	topCh := make(chan countResult, 1)

	go func() {
		m, err := uc.salesRepo.GetMetrics(ctx, filter)
		metricsCh <- metricsResult{m, err}
	}()
	go func() {
		rows, err := uc.salesRepo.SalesByPeriod(ctx, filter, granularity)
		periodCh <- seriesResult{rows, err}
	}()
	go func() {
		rows, err := uc.salesRepo.SalesByLocation(ctx, filter)
		locationCh <- seriesResult{rows, err}
	}()
	go func() {
		rows, err := uc.salesRepo.SalesByChannel(ctx, filter)
		channelCh <- seriesResult{rows, err}
	}()
	go func() {
		rows, err := uc.salesRepo.SalesByGender(ctx, filter)
		genderCh <- seriesResult{rows, err}
	}()
	go func() {
		rows, err := uc.salesRepo.SalesByAge(ctx, filter)
		ageCh <- seriesResult{rows, err}
	}()
	go func() {
		rows, err := uc.salesRepo.TopProductsByQuantity(ctx, filter)
		topCh <- countResult{rows, err}
	}()

	metrics := <-metricsCh
	period := <-periodCh
	location := <-locationCh
	channel := <-channelCh
	gender := <-genderCh
	age := <-ageCh
	top := <-topCh

	if metrics.err != nil {
		return nil, fmt.Errorf("dashboard: métricas: %w", metrics.err)
	}
	for _, r := range []struct {
		name string
		err  error
	}{
		{"serie temporal", period.err},
		{"por ubicación", location.err},
		{"por canal", channel.err},
		{"por género", gender.err},
		{"por edad", age.err},
		{"top productos", top.err},
	} {
		if r.err != nil {
			return nil, fmt.Errorf("dashboard: %s: %w", r.name, r.err)
		}
	}

	return &dto.DashboardSummaryDTO{
		TotalSales:      metrics.m.TotalSales.Round(2),
		UniqueLocations: metrics.m.UniqueLocations,
		ExpectedRevenue: metrics.m.ExpectedRevenue.Round(2),
		ViewBy:          string(granularity),
		SalesByPeriod:   toSeries(period.rows),
		SalesByLocation: toSeries(location.rows),
		TopProducts:     toCounts(top.rows),
		SalesByChannel:  toSeries(channel.rows),
		SalesByGender:   toSeries(gender.rows),
		SalesByAge:      toSeries(age.rows),
	}, nil
}

// parseDashboardRequest valida fechas y listas del query string.
func parseDashboardRequest(req dto.DashboardRequest) (repository.SalesFilter, repository.Granularity, error) {
	var filter repository.SalesFilter

	if req.StartDate != "" {
		t, err := time.Parse("2006-01-02", req.StartDate)
		if err != nil {
			return filter, "", domain.NewValidationError("start_date must be YYYY-MM-DD")
		}
		filter.StartDate = &t
	}
	if req.EndDate != "" {
		t, err := time.Parse("2006-01-02", req.EndDate)
		if err != nil {
			return filter, "", domain.NewValidationError("end_date must be YYYY-MM-DD")
		}
		filter.EndDate = &t
	}
	if filter.StartDate != nil && filter.EndDate != nil && filter.EndDate.Before(*filter.StartDate) {
		return filter, "", domain.NewValidationError("end_date must not be before start_date")
	}
	filter.Locations = splitCSV(req.Locations)
	filter.ProductIDs = splitCSV(req.ProductIDs)

	granularity := repository.ByDay
	switch strings.ToLower(req.ViewBy) {
	case "", "day":
		granularity = repository.ByDay
	case "month":
		granularity = repository.ByMonth
	case "year":
		granularity = repository.ByYear
	default:
		return filter, "", domain.NewValidationError("view_by must be day, month or year")
	}
	return filter, granularity, nil
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func toSeries(rows []repository.LabeledAmount) []dto.SeriesPointDTO {
	out := make([]dto.SeriesPointDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.SeriesPointDTO{Label: r.Label, Amount: r.Amount})
	}
	return out
}

func toCounts(rows []repository.LabeledCount) []dto.CountPointDTO {
	out := make([]dto.CountPointDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.CountPointDTO{Label: r.Label, Count: r.Count})
	}
	return out
}
