// Package reports expone los reportes de solo lectura del almacén: stock por
// zona, totales de documentos por período y productos con stock bajo, más la
// impresión de documentos en PDF.
package reports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/bodega-api/internal/application/dto"
	"github.com/jhoicas/bodega-api/internal/domain/document"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
)

// UseCase casos de uso de reportes.
type UseCase struct {
	repo repository.ReportRepository
}

// NewUseCase construye el caso de uso de reportes.
func NewUseCase(repo repository.ReportRepository) *UseCase {
	return &UseCase{repo: repo}
}

// StockByZone devuelve el stock por producto de una zona (o de todas si zoneID es vacío).
func (uc *UseCase) StockByZone(ctx context.Context, zoneID string) ([]dto.ZoneStockReportRow, error) {
	rows, err := uc.repo.GetStockByZone(ctx, zoneID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ZoneStockReportRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ZoneStockReportRow{
			ZoneID:      r.ZoneID,
			ZoneName:    r.ZoneName,
			ProductID:   r.ProductID,
			ProductName: r.ProductName,
			Unit:        r.Unit,
			Quantity:    r.Quantity.String(),
		})
	}
	return out, nil
}

// DocumentTotals devuelve los totales de documentos contabilizados por tipo en el período.
func (uc *UseCase) DocumentTotals(ctx context.Context, from, to time.Time) ([]dto.DocumentTotalsReportRow, error) {
	rows, err := uc.repo.GetDocumentTotals(ctx, from, to)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DocumentTotalsReportRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.DocumentTotalsReportRow{
			TypeID:        r.TypeID,
			Type:          document.Type(r.TypeID).String(),
			DocumentCount: r.DocumentCount,
			TotalQuantity: r.TotalQuantity.String(),
			TotalAmount:   r.TotalAmount.String(),
		})
	}
	return out, nil
}

// LowStock devuelve los productos con saldo por debajo del umbral.
func (uc *UseCase) LowStock(ctx context.Context, threshold decimal.Decimal) ([]dto.LowStockReportRow, error) {
	rows, err := uc.repo.GetLowStock(ctx, threshold)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LowStockReportRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.LowStockReportRow{
			ProductID:   r.ProductID,
			ProductName: r.ProductName,
			Unit:        r.Unit,
			Stock:       r.Stock.String(),
		})
	}
	return out, nil
}
