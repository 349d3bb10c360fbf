package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/bodega-api/internal/application/dto"
	"github.com/jhoicas/bodega-api/internal/application/reports"
)

// ReportHandler maneja los reportes de solo lectura y la impresión de documentos.
type ReportHandler struct {
	uc    *reports.UseCase
	print *reports.PrintUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.UseCase, print *reports.PrintUseCase) *ReportHandler {
	return &ReportHandler{uc: uc, print: print}
}

// StockByZone godoc
// @Summary      Stock por zona
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        zone_id  query  string  false  "Zona (vacío = todas)"
// @Success      200  {array}  dto.ZoneStockReportRow
// @Router       /api/reports/stock-by-zone [get]
func (h *ReportHandler) StockByZone(c *fiber.Ctx) error {
	out, err := h.uc.StockByZone(c.Context(), c.Query("zone_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DocumentTotals godoc
// @Summary      Totales de documentos contabilizados por tipo y período
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        from  query  string  false  "Fecha desde (YYYY-MM-DD)"
// @Param        to    query  string  false  "Fecha hasta (YYYY-MM-DD)"
// @Success      200   {array}  dto.DocumentTotalsReportRow
// @Router       /api/reports/document-totals [get]
func (h *ReportHandler) DocumentTotals(c *fiber.Ctx) error {
	from := parseDate(c.Query("from"))
	to := parseDate(c.Query("to"))
	if to.IsZero() {
		to = time.Now()
	}
	out, err := h.uc.DocumentTotals(c.Context(), from, to)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// LowStock godoc
// @Summary      Productos con stock por debajo del umbral
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        threshold  query  string  false  "Umbral"  default(10)
// @Success      200  {array}  dto.LowStockReportRow
// @Router       /api/reports/low-stock [get]
func (h *ReportHandler) LowStock(c *fiber.Ctx) error {
	threshold, err := decimal.NewFromString(c.Query("threshold", "10"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "threshold inválido"})
	}
	out, err := h.uc.LowStock(c.Context(), threshold)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DocumentPDF godoc
// @Summary      Imprimir documento en PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID del documento"
// @Success      200  {file}  byte
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/documents/{id}/pdf [get]
func (h *ReportHandler) DocumentPDF(c *fiber.Ctx) error {
	data, err := h.print.DocumentPDF(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	return c.Send(data)
}
