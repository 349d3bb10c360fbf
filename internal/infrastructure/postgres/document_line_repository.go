package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/bodega-api/internal/domain"
	"github.com/jhoicas/bodega-api/internal/domain/entity"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
)

var _ repository.DocumentLineRepository = (*DocumentLineRepo)(nil)

// DocumentLineRepo implementación de DocumentLineRepository sobre PostgreSQL
// (usable con pool o tx). A diferencia del resto de repos recibe ctx por método:
// la sesión de edición emite cada mutación como petición cancelable.
type DocumentLineRepo struct {
	q Querier
}

// NewDocumentLineRepository construye el adaptador de renglones de documento.
func NewDocumentLineRepository(q Querier) *DocumentLineRepo {
	return &DocumentLineRepo{q: q}
}

// Create persiste un renglón nuevo y devuelve la fila con el ID definitivo.
// La constraint única (document_id, product_id) respalda en BD la regla de
// un renglón por producto.
func (r *DocumentLineRepo) Create(ctx context.Context, line *entity.DocumentLine) (*entity.DocumentLine, error) {
	query := `
		INSERT INTO document_lines (id, document_id, product_id, quantity, actual_quantity, unit_purchase_price, unit_sell_price, sender_zone_id, receiver_zone_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''), NULLIF($9, ''), $10, $11)`
	_, err := r.q.Exec(ctx, query,
		line.ID, line.DocumentID, line.ProductID, line.Quantity, line.ActualQuantity,
		line.UnitPurchasePrice, line.UnitSellPrice, line.SenderZoneID, line.ReceiverZoneID,
		line.CreatedAt, line.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicateProduct
		}
		return nil, fmt.Errorf("insert document line: %w", err)
	}
	return line.Clone(), nil
}

// Update actualiza cantidades y precios del renglón.
func (r *DocumentLineRepo) Update(ctx context.Context, line *entity.DocumentLine) (*entity.DocumentLine, error) {
	query := `
		UPDATE document_lines SET quantity = $2, actual_quantity = $3, unit_purchase_price = $4, unit_sell_price = $5, sender_zone_id = NULLIF($6, ''), receiver_zone_id = NULLIF($7, ''), updated_at = $8
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		line.ID, line.Quantity, line.ActualQuantity, line.UnitPurchasePrice,
		line.UnitSellPrice, line.SenderZoneID, line.ReceiverZoneID, line.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("update document line: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return nil, domain.ErrNotFound
	}
	return line.Clone(), nil
}

// Delete elimina un renglón por ID.
func (r *DocumentLineRepo) Delete(ctx context.Context, lineID string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM document_lines WHERE id = $1`, lineID)
	if err != nil {
		return fmt.Errorf("delete document line: %w", err)
	}
	return nil
}

// ListByDocument lista los renglones de un documento en orden de inserción.
func (r *DocumentLineRepo) ListByDocument(ctx context.Context, documentID string) ([]*entity.DocumentLine, error) {
	query := `
		SELECT id, document_id, product_id, quantity, actual_quantity, unit_purchase_price, unit_sell_price, COALESCE(sender_zone_id, ''), COALESCE(receiver_zone_id, ''), created_at, updated_at
		FROM document_lines WHERE document_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(ctx, query, documentID)
	if err != nil {
		return nil, fmt.Errorf("list document lines: %w", err)
	}
	defer rows.Close()
	var list []*entity.DocumentLine
	for rows.Next() {
		var l entity.DocumentLine
		if err := rows.Scan(&l.ID, &l.DocumentID, &l.ProductID, &l.Quantity, &l.ActualQuantity,
			&l.UnitPurchasePrice, &l.UnitSellPrice, &l.SenderZoneID, &l.ReceiverZoneID,
			&l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan document line: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// DeleteByDocument elimina todos los renglones del documento (al borrar el borrador).
func (r *DocumentLineRepo) DeleteByDocument(ctx context.Context, documentID string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM document_lines WHERE document_id = $1`, documentID)
	if err != nil {
		return fmt.Errorf("delete document lines: %w", err)
	}
	return nil
}
