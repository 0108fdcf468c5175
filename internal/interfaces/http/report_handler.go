package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cod-metrics-api/internal/application/analytics"
	"github.com/jhoicas/cod-metrics-api/internal/application/dto"
)

// ReportHandler maneja la generación de reportes de rango fijo.
type ReportHandler struct {
	uc *analytics.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *analytics.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Generate godoc
// @Summary      Generar reporte de un rango de fechas
// @Tags         reports
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ReportRequest  true  "Configuración del reporte"
// @Success      200   {object}  dto.ReportDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/reports [post]
func (h *ReportHandler) Generate(c *fiber.Ctx) error {
	var in dto.ReportRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Generate(c.Context(), in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}

// GeneratePDF godoc
// @Summary      Exportar reporte como PDF
// @Tags         reports
// @Accept       json
// @Produce      application/pdf
// @Param        body  body  dto.ReportRequest  true  "Configuración del reporte"
// @Success      200   {file}    binary
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/reports/pdf [post]
func (h *ReportHandler) GeneratePDF(c *fiber.Ctx) error {
	var in dto.ReportRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	data, err := h.uc.GeneratePDF(c.Context(), in)
	if err != nil {
		return errorResponse(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="reporte.pdf"`)
	return c.Send(data)
}
