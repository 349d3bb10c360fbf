package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// ZoneStockResult stock agregado de una zona para el reporte por zonas.
type ZoneStockResult struct {
	ZoneID      string
	ZoneName    string
	ProductID   string
	ProductName string
	Unit        string
	Quantity    decimal.Decimal
}

// DocumentTotalsResult totales de documentos agrupados por tipo en un período.
type DocumentTotalsResult struct {
	TypeID        int
	DocumentCount int64
	TotalQuantity decimal.Decimal
	TotalAmount   decimal.Decimal
}

// LowStockResult producto por debajo del umbral de stock.
type LowStockResult struct {
	ProductID   string
	ProductName string
	Unit        string
	Stock       decimal.Decimal
}

// ReportRepository consultas de solo lectura para los reportes derivados del dashboard.
type ReportRepository interface {
	GetStockByZone(ctx context.Context, zoneID string) ([]ZoneStockResult, error)
	GetDocumentTotals(ctx context.Context, from, to time.Time) ([]DocumentTotalsResult, error)
	GetLowStock(ctx context.Context, threshold decimal.Decimal) ([]LowStockResult, error)
}
