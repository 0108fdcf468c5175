package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cod-metrics-api/internal/application/analytics"
	"github.com/jhoicas/cod-metrics-api/internal/application/dto"
)

// DashboardHandler maneja la consulta del panel de métricas.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Get godoc
// @Summary      Panel de métricas COD
// @Description  KPIs con tendencia, eficiencia publicitaria, rentabilidad, metas y alertas para los filtros dados.
// @Tags         dashboard
// @Produce      json
// @Param        time_filter  query  string  false  "ALL|TODAY|WEEK|MONTH|QUARTER|YEAR|CUSTOM"  default(MONTH)
// @Param        comparison   query  string  false  "NONE|PREVIOUS_PERIOD|PREVIOUS_YEAR"        default(NONE)
// @Param        start_date   query  string  false  "YYYY-MM-DD (solo CUSTOM)"
// @Param        end_date     query  string  false  "YYYY-MM-DD (solo CUSTOM)"
// @Param        product_id   query  string  false  "ID del producto o ALL"
// @Param        source       query  string  false  "ALL|WEBSITE|PAGE"
// @Param        season       query  string  false  "ALL|SUMMER|WINTER"
// @Success      200  {object}  dto.DashboardDTO
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Get(c *fiber.Ctx) error {
	req := dto.DashboardRequest{
		TimeFilter: c.Query("time_filter", "MONTH"),
		Comparison: c.Query("comparison", "NONE"),
		StartDate:  c.Query("start_date"),
		EndDate:    c.Query("end_date"),
		ProductID:  c.Query("product_id"),
		Source:     c.Query("source"),
		Season:     c.Query("season"),
	}
	out, err := h.uc.GetDashboard(c.Context(), req)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}
