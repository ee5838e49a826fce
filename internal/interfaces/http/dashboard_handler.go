package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/inventory-dashboard-api/internal/application/analytics"
	"github.com/jhoicas/inventory-dashboard-api/internal/application/dto"
	"github.com/jhoicas/inventory-dashboard-api/internal/application/usecase"
)

// DashboardHandler maneja los endpoints del tablero: serie de tendencia y tarjetas de KPIs.
type DashboardHandler struct {
	summary *appanalytics.DashboardUseCase
	kpis    *appanalytics.KPIUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(summary *appanalytics.DashboardUseCase, kpis *appanalytics.KPIUseCase) *DashboardHandler {
	return &DashboardHandler{summary: summary, kpis: kpis}
}

// GetSummary godoc
// @Summary      KPIs del tablero
// @Description  Stock total, demanda total y fill rate sobre los productos filtrados.
// @Tags         dashboard
// @Produce      json
// @Param        search     query  string  false  "Subcadena en nombre, SKU o ID"
// @Param        status     query  string  false  "All, Healthy, Low o Critical"
// @Param        warehouse  query  string  false  "Código de bodega"
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	var in dto.ProductFilterRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	out, err := h.summary.GetSummary(usecase.ToFilter(in))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetKPIs godoc
// @Summary      Serie de tendencia stock/demanda
// @Description  Un punto por día terminando hoy. Rangos 7d, 14d, 30d; otro valor = 30 días.
// @Tags         dashboard
// @Produce      json
// @Param        range  query  string  false  "7d, 14d o 30d"  default(7d)
// @Success      200  {object}  dto.KPISeriesResponse
// @Router       /api/kpis [get]
func (h *DashboardHandler) GetKPIs(c *fiber.Ctx) error {
	return c.JSON(h.kpis.GetSeries(c.Query("range", "7d")))
}
