package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bodega-api/internal/application/dto"
	"github.com/jhoicas/bodega-api/internal/application/usecase"
	"github.com/jhoicas/bodega-api/pkg/validator"
)

// ZoneHandler maneja las peticiones HTTP para zonas de almacenamiento (protegido).
type ZoneHandler struct {
	uc *usecase.ZoneUseCase
}

// NewZoneHandler construye el handler.
func NewZoneHandler(uc *usecase.ZoneUseCase) *ZoneHandler {
	return &ZoneHandler{uc: uc}
}

// Create godoc
// @Summary      Crear zona de almacenamiento
// @Tags         zones
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateZoneRequest  true  "Datos de la zona"
// @Success      201   {object}  dto.ZoneResponse
// @Router       /api/zones [post]
func (h *ZoneHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateZoneRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validator.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener zona por ID
// @Tags         zones
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la zona"
// @Success      200  {object}  dto.ZoneResponse
// @Router       /api/zones/{id} [get]
func (h *ZoneHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar zonas
// @Tags         zones
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ZoneListResponse
// @Router       /api/zones [get]
func (h *ZoneHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	out, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar zona
// @Tags         zones
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la zona"
// @Param        body  body  dto.UpdateZoneRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.ZoneResponse
// @Router       /api/zones/{id} [put]
func (h *ZoneHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateZoneRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validator.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar zona
// @Tags         zones
// @Security     Bearer
// @Param        id  path  string  true  "ID de la zona"
// @Success      204
// @Router       /api/zones/{id} [delete]
func (h *ZoneHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
