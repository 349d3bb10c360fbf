package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	appdoc "github.com/jhoicas/bodega-api/internal/application/document"
	"github.com/jhoicas/bodega-api/internal/application/dto"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
	"github.com/jhoicas/bodega-api/pkg/validator"
)

// DocumentHandler maneja documentos de almacén: CRUD de cabeceras, sesión de
// edición de renglones y contabilización.
type DocumentHandler struct {
	uc       *appdoc.UseCase
	sessions *appdoc.SessionManager
}

// NewDocumentHandler construye el handler.
func NewDocumentHandler(uc *appdoc.UseCase, sessions *appdoc.SessionManager) *DocumentHandler {
	return &DocumentHandler{uc: uc, sessions: sessions}
}

// Create godoc
// @Summary      Crear documento (borrador)
// @Tags         documents
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDocumentRequest  true  "Cabecera del documento"
// @Success      201   {object}  dto.DocumentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/documents [post]
func (h *DocumentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDocumentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validator.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.Create(in, GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar documentos
// @Tags         documents
// @Security     Bearer
// @Produce      json
// @Param        type_id  query  int     false  "Tipo (1..5)"
// @Param        status   query  string  false  "draft | posted"
// @Param        from     query  string  false  "Fecha desde (YYYY-MM-DD)"
// @Param        to       query  string  false  "Fecha hasta (YYYY-MM-DD)"
// @Success      200      {object}  dto.DocumentListResponse
// @Router       /api/documents [get]
func (h *DocumentHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	filter := repository.DocumentFilter{
		TypeID: c.QueryInt("type_id", 0),
		Status: c.Query("status"),
		From:   parseDate(c.Query("from")),
		To:     parseDate(c.Query("to")),
		Limit:  page.Limit,
		Offset: page.Offset,
	}
	out, err := h.uc.List(filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Detalle del documento con renglones y totales
// @Tags         documents
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del documento"
// @Success      200  {object}  dto.DocumentDetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/documents/{id} [get]
func (h *DocumentHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar cabecera del documento (solo borradores)
// @Tags         documents
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del documento"
// @Param        body  body  dto.UpdateDocumentRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.DocumentResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/documents/{id} [put]
func (h *DocumentHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateDocumentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar documento en borrador (con sus renglones)
// @Tags         documents
// @Security     Bearer
// @Param        id  path  string  true  "ID del documento"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/documents/{id} [delete]
func (h *DocumentHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Post godoc
// @Summary      Contabilizar documento (ajusta stock, transaccional)
// @Tags         documents
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del documento"
// @Success      200  {object}  dto.DocumentResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/documents/{id}/post [post]
func (h *DocumentHandler) Post(c *fiber.Ctx) error {
	out, err := h.uc.Post(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// AddLine godoc
// @Summary      Agregar renglón al documento abierto
// @Tags         documents
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del documento"
// @Param        body  body  dto.AddLineRequest  true  "Producto y zonas propuestas"
// @Success      201   {object}  dto.LineMutationResponse
// @Failure      409   {object}  dto.ErrorResponse  "Producto duplicado o stock insuficiente"
// @Router       /api/documents/{id}/lines [post]
func (h *DocumentHandler) AddLine(c *fiber.Ctx) error {
	var in dto.AddLineRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validator.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	s, err := h.sessions.Open(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	out, err := s.AddLine(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateLineQuantity godoc
// @Summary      Cambiar cantidad (registro o conteo físico) de un renglón
// @Tags         documents
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id      path  string  true  "ID del documento"
// @Param        lineID  path  string  true  "ID del renglón"
// @Param        body    body  dto.UpdateLineQuantityRequest  true  "Campo y valor"
// @Success      200     {object}  dto.LineMutationResponse
// @Failure      409     {object}  dto.ErrorResponse  "Stock insuficiente"
// @Failure      423     {object}  dto.ErrorResponse  "Renglón con petición en vuelo"
// @Router       /api/documents/{id}/lines/{lineID}/quantity [patch]
func (h *DocumentHandler) UpdateLineQuantity(c *fiber.Ctx) error {
	var in dto.UpdateLineQuantityRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validator.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	s, err := h.sessions.Open(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	out, err := s.UpdateQuantity(c.Context(), c.Params("lineID"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateLinePrice godoc
// @Summary      Cambiar precio de compra o de venta de un renglón
// @Tags         documents
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id      path  string  true  "ID del documento"
// @Param        lineID  path  string  true  "ID del renglón"
// @Param        body    body  dto.UpdateLinePriceRequest  true  "Campo y valor"
// @Success      200     {object}  dto.LineMutationResponse
// @Router       /api/documents/{id}/lines/{lineID}/price [patch]
func (h *DocumentHandler) UpdateLinePrice(c *fiber.Ctx) error {
	var in dto.UpdateLinePriceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validator.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	s, err := h.sessions.Open(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	out, err := s.UpdatePrice(c.Context(), c.Params("lineID"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// RemoveLine godoc
// @Summary      Eliminar renglón del documento abierto
// @Tags         documents
// @Security     Bearer
// @Produce      json
// @Param        id      path  string  true  "ID del documento"
// @Param        lineID  path  string  true  "ID del renglón"
// @Success      200     {object}  dto.LineMutationResponse
// @Router       /api/documents/{id}/lines/{lineID} [delete]
func (h *DocumentHandler) RemoveLine(c *fiber.Ctx) error {
	s, err := h.sessions.Open(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	out, err := s.RemoveLine(c.Context(), c.Params("lineID"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CloseSession godoc
// @Summary      Cerrar la sesión de edición del documento
// @Tags         documents
// @Security     Bearer
// @Param        id  path  string  true  "ID del documento"
// @Success      204
// @Router       /api/documents/{id}/session [delete]
func (h *DocumentHandler) CloseSession(c *fiber.Ctx) error {
	h.sessions.Close(c.Params("id"))
	return c.SendStatus(fiber.StatusNoContent)
}

// parseDate acepta YYYY-MM-DD o RFC3339; inválido o vacío devuelve cero.
func parseDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	return time.Time{}
}
