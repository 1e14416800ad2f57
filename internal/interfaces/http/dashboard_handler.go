package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vstock/ventas-api/internal/application/dto"
	"github.com/vstock/ventas-api/internal/application/usecase"
)

// DashboardHandler expone el resumen analítico de ventas.
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler construye el handler del dashboard.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary godoc
// @Summary      Resumen analítico de ventas
// @Tags         dashboard
// @Produce      json
// @Param        start_date   query  string  false  "YYYY-MM-DD"
// @Param        end_date     query  string  false  "YYYY-MM-DD"
// @Param        locations    query  string  false  "lista separada por comas"
// @Param        product_ids  query  string  false  "lista separada por comas"
// @Param        view_by      query  string  false  "day | month | year"
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	var req dto.DashboardRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros de consulta inválidos"})
	}
	summary, err := h.uc.GetSummary(c.Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}
