package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/bodega-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura para reportes.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// GetStockByZone devuelve el stock por producto de una zona; zoneID vacío trae todas.
func (r *ReportRepo) GetStockByZone(ctx context.Context, zoneID string) ([]repository.ZoneStockResult, error) {
	query := `
		SELECT z.id, z.name, p.id, p.name, p.unit_measure, s.quantity
		FROM zone_stock s
		JOIN storage_zones z ON z.id = s.zone_id
		JOIN products p ON p.id = s.product_id
		WHERE ($1 = '' OR s.zone_id = $1) AND s.quantity <> 0
		ORDER BY z.name, p.name`
	rows, err := r.q.Query(ctx, query, zoneID)
	if err != nil {
		return nil, fmt.Errorf("stock by zone: %w", err)
	}
	defer rows.Close()
	var list []repository.ZoneStockResult
	for rows.Next() {
		var res repository.ZoneStockResult
		if err := rows.Scan(&res.ZoneID, &res.ZoneName, &res.ProductID, &res.ProductName, &res.Unit, &res.Quantity); err != nil {
			return nil, fmt.Errorf("scan zone stock row: %w", err)
		}
		list = append(list, res)
	}
	return list, rows.Err()
}

// GetDocumentTotals agrega los documentos contabilizados del período por tipo.
// El monto por renglón sigue el precio base del tipo: compra en entradas y bajas,
// venta en salidas e inventarios, cero en traslados.
func (r *ReportRepo) GetDocumentTotals(ctx context.Context, from, to time.Time) ([]repository.DocumentTotalsResult, error) {
	query := `
		SELECT d.type_id,
		       COUNT(DISTINCT d.id),
		       COALESCE(SUM(l.quantity), 0),
		       COALESCE(SUM(l.quantity * CASE d.type_id
		           WHEN 1 THEN l.unit_purchase_price
		           WHEN 5 THEN l.unit_purchase_price
		           WHEN 2 THEN l.unit_sell_price
		           WHEN 4 THEN l.unit_sell_price
		           ELSE 0 END), 0)
		FROM documents d
		JOIN document_lines l ON l.document_id = d.id
		WHERE d.status = 'posted' AND d.date >= $1 AND d.date <= $2
		GROUP BY d.type_id
		ORDER BY d.type_id`
	rows, err := r.q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("document totals: %w", err)
	}
	defer rows.Close()
	var list []repository.DocumentTotalsResult
	for rows.Next() {
		var res repository.DocumentTotalsResult
		if err := rows.Scan(&res.TypeID, &res.DocumentCount, &res.TotalQuantity, &res.TotalAmount); err != nil {
			return nil, fmt.Errorf("scan totals row: %w", err)
		}
		list = append(list, res)
	}
	return list, rows.Err()
}

// GetLowStock devuelve los productos con saldo por debajo del umbral.
func (r *ReportRepo) GetLowStock(ctx context.Context, threshold decimal.Decimal) ([]repository.LowStockResult, error) {
	query := `
		SELECT id, name, unit_measure, stock_quantity
		FROM products WHERE stock_quantity < $1
		ORDER BY stock_quantity, name`
	rows, err := r.q.Query(ctx, query, threshold)
	if err != nil {
		return nil, fmt.Errorf("low stock: %w", err)
	}
	defer rows.Close()
	var list []repository.LowStockResult
	for rows.Next() {
		var res repository.LowStockResult
		if err := rows.Scan(&res.ProductID, &res.ProductName, &res.Unit, &res.Stock); err != nil {
			return nil, fmt.Errorf("scan low stock row: %w", err)
		}
		list = append(list, res)
	}
	return list, rows.Err()
}
