package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cod-metrics-api/internal/application/dto"
	"github.com/jhoicas/cod-metrics-api/internal/application/usecase"
)

// EntryHandler maneja las peticiones HTTP para registros diarios de ventas.
type EntryHandler struct {
	uc *usecase.EntryUseCase
}

// NewEntryHandler construye el handler.
func NewEntryHandler(uc *usecase.EntryUseCase) *EntryHandler {
	return &EntryHandler{uc: uc}
}

// Create godoc
// @Summary      Crear registro diario
// @Tags         entries
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEntryRequest  true  "Registro diario"
// @Success      201   {object}  dto.EntryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/entries [post]
func (h *EntryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// CreateBatch godoc
// @Summary      Importar lote de registros (todo o nada)
// @Tags         entries
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BatchCreateEntriesRequest  true  "Lote de registros"
// @Success      201   {object}  dto.EntryListResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/entries/batch [post]
func (h *EntryHandler) CreateBatch(c *fiber.Ctx) error {
	var in dto.BatchCreateEntriesRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateBatch(in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar registros ordenados por fecha y hora
// @Tags         entries
// @Produce      json
// @Param        product_id  query  string  false  "Filtrar por producto (vacío o ALL = todos)"
// @Success      200  {object}  dto.EntryListResponse
// @Router       /api/entries [get]
func (h *EntryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Query("product_id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener registro por ID
// @Tags         entries
// @Produce      json
// @Param        id   path  string  true  "ID del registro"
// @Success      200  {object}  dto.EntryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/entries/{id} [get]
func (h *EntryHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "registro no encontrado"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Reemplazar registro diario
// @Tags         entries
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID del registro"
// @Param        body  body  dto.CreateEntryRequest  true  "Contenido nuevo"
// @Success      200   {object}  dto.EntryResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/entries/{id} [put]
func (h *EntryHandler) Update(c *fiber.Ctx) error {
	var in dto.CreateEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return errorResponse(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "registro no encontrado"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar registro
// @Tags         entries
// @Param        id  path  string  true  "ID del registro"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/entries/{id} [delete]
func (h *EntryHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return errorResponse(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
