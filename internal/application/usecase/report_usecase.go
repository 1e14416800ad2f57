package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/vstock/ventas-api/internal/application/dto"
	"github.com/vstock/ventas-api/internal/domain/repository"
)

// SalesReport es el contenido del reporte imprimible de ventas.
type SalesReport struct {
	Period          string
	GeneratedAt     time.Time
	Metrics         repository.SalesMetrics
	SalesByLocation []repository.LabeledAmount
	SalesByMonth    []repository.LabeledAmount
	TopProducts     []repository.LabeledCount
}

// ReportPDFGenerator es el puerto del renderizador del reporte.
type ReportPDFGenerator interface {
	GenerateSalesReport(ctx context.Context, report *SalesReport) ([]byte, error)
}

// ReportUseCase arma el reporte de ventas en PDF para un rango de fechas.
// Reutiliza los filtros del dashboard; sin fechas el reporte cubre toda la tabla.
type ReportUseCase struct {
	salesRepo repository.SalesAnalyticsRepository
	pdf       ReportPDFGenerator
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(salesRepo repository.SalesAnalyticsRepository, pdf ReportPDFGenerator) *ReportUseCase {
	return &ReportUseCase{salesRepo: salesRepo, pdf: pdf}
}

// GenerateSalesPDF consulta las agregaciones del reporte y las renderiza.
func (uc *ReportUseCase) GenerateSalesPDF(ctx context.Context, req dto.DashboardRequest) ([]byte, error) {
	filter, _, err := parseDashboardRequest(req)
	if err != nil {
		return nil, err
	}

	metrics, err := uc.salesRepo.GetMetrics(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("report: métricas: %w", err)
	}
	byLocation, err := uc.salesRepo.SalesByLocation(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("report: por ubicación: %w", err)
	}
	byMonth, err := uc.salesRepo.SalesByPeriod(ctx, filter, repository.ByMonth)
	if err != nil {
		return nil, fmt.Errorf("report: por mes: %w", err)
	}
	topProducts, err := uc.salesRepo.TopProductsByQuantity(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("report: top productos: %w", err)
	}

	report := &SalesReport{
		Period:          periodLabel(req.StartDate, req.EndDate),
		GeneratedAt:     time.Now(),
		Metrics:         *metrics,
		SalesByLocation: byLocation,
		SalesByMonth:    byMonth,
		TopProducts:     topProducts,
	}
	return uc.pdf.GenerateSalesReport(ctx, report)
}

func periodLabel(start, end string) string {
	switch {
	case start == "" && end == "":
		return "All time"
	case start == "":
		return "Until " + end
	case end == "":
		return "From " + start
	default:
		return start + " to " + end
	}
}
