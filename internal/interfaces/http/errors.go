package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bodega-api/internal/application/dto"
	"github.com/jhoicas/bodega-api/internal/domain"
	"github.com/jhoicas/bodega-api/internal/domain/document"
)

// respondError traduce errores de dominio a respuestas HTTP. Los rechazos del
// ledger (*Rejection) viajan como 409 con available/max/unit para que el
// dashboard arme el mensaje correctivo.
func respondError(c *fiber.Ctx, err error) error {
	var rej *document.Rejection
	if errors.As(err, &rej) {
		body := dto.ErrorResponse{
			Code:    string(rej.Reason),
			Message: rej.Error(),
		}
		if rej.Reason == document.ReasonStockInsufficient {
			body.Available = rej.Available.String()
			body.Max = rej.Max.String()
			body.Unit = rej.Unit
		}
		return c.Status(fiber.StatusConflict).JSON(body)
	}

	switch {
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrSessionNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "SESSION_NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrLineBusy):
		return c.Status(fiber.StatusLocked).JSON(dto.ErrorResponse{Code: "LINE_BUSY", Message: err.Error()})
	case errors.Is(err, domain.ErrDocumentPosted):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DOCUMENT_POSTED", Message: err.Error()})
	case errors.Is(err, domain.ErrDuplicateProduct):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE_PRODUCT", Message: err.Error()})
	case errors.Is(err, domain.ErrEmailAlreadyExists), errors.Is(err, domain.ErrDuplicate), errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: err.Error()})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "STOCK_INSUFFICIENT", Message: err.Error()})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: err.Error()})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
