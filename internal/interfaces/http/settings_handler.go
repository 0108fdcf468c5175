package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cod-metrics-api/internal/application/dto"
	"github.com/jhoicas/cod-metrics-api/internal/application/usecase"
)

// SettingsHandler maneja las peticiones HTTP de configuración global y
// categorías de producto.
type SettingsHandler struct {
	settingsUC *usecase.SettingsUseCase
	categoryUC *usecase.CategoryUseCase
}

// NewSettingsHandler construye el handler.
func NewSettingsHandler(settingsUC *usecase.SettingsUseCase, categoryUC *usecase.CategoryUseCase) *SettingsHandler {
	return &SettingsHandler{settingsUC: settingsUC, categoryUC: categoryUC}
}

// Get godoc
// @Summary      Obtener configuración global
// @Tags         settings
// @Produce      json
// @Success      200  {object}  dto.SettingsDTO
// @Router       /api/settings [get]
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	out, err := h.settingsUC.Get()
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Reemplazar configuración global
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SettingsDTO  true  "Configuración completa"
// @Success      200   {object}  dto.SettingsDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/settings [put]
func (h *SettingsHandler) Update(c *fiber.Ctx) error {
	var in dto.SettingsDTO
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.settingsUC.Update(in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}

// CreateCategory godoc
// @Summary      Crear categoría de producto
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCategoryRequest  true  "Nombre de la categoría"
// @Success      201   {object}  dto.CategoryResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/settings/categories [post]
func (h *SettingsHandler) CreateCategory(c *fiber.Ctx) error {
	var in dto.CreateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.categoryUC.Create(in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListCategories godoc
// @Summary      Listar categorías
// @Tags         settings
// @Produce      json
// @Success      200  {array}  dto.CategoryResponse
// @Router       /api/settings/categories [get]
func (h *SettingsHandler) ListCategories(c *fiber.Ctx) error {
	out, err := h.categoryUC.List()
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}

// DeleteCategory godoc
// @Summary      Eliminar categoría (falla si algún producto la usa)
// @Tags         settings
// @Param        id  path  string  true  "ID de la categoría"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/settings/categories/{id} [delete]
func (h *SettingsHandler) DeleteCategory(c *fiber.Ctx) error {
	if err := h.categoryUC.Delete(c.Params("id")); err != nil {
		return errorResponse(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
