package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/bodega-api/internal/domain/entity"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
)

var _ repository.DocumentRepository = (*DocumentRepo)(nil)

// DocumentRepo implementación de DocumentRepository sobre PostgreSQL (usable con pool o tx).
type DocumentRepo struct {
	q Querier
}

// NewDocumentRepository construye el adaptador de cabeceras de documento.
func NewDocumentRepository(q Querier) *DocumentRepo {
	return &DocumentRepo{q: q}
}

// Create persiste una cabecera nueva.
func (r *DocumentRepo) Create(doc *entity.Document) error {
	query := `
		INSERT INTO documents (id, type_id, number, date, comment, status, supplier_id, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), NULLIF($8, ''), $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		doc.ID, doc.TypeID, doc.Number, doc.Date, doc.Comment, doc.Status,
		doc.SupplierID, doc.CreatedBy, doc.CreatedAt, doc.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert document: %w", err)
	}
	return nil
}

// GetByID obtiene una cabecera por ID.
func (r *DocumentRepo) GetByID(id string) (*entity.Document, error) {
	query := `
		SELECT id, type_id, number, date, comment, status, COALESCE(supplier_id, ''), COALESCE(created_by, ''), created_at, updated_at
		FROM documents WHERE id = $1`
	var d entity.Document
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&d.ID, &d.TypeID, &d.Number, &d.Date, &d.Comment, &d.Status,
		&d.SupplierID, &d.CreatedBy, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get document: %w", err)
	}
	return &d, nil
}

// Update actualiza la cabecera (fecha, comentario, proveedor).
func (r *DocumentRepo) Update(doc *entity.Document) error {
	query := `
		UPDATE documents SET date = $2, comment = $3, supplier_id = NULLIF($4, ''), updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		doc.ID, doc.Date, doc.Comment, doc.SupplierID, doc.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update document: %w", err)
	}
	return nil
}

// UpdateStatus cambia el estado del documento (draft -> posted).
func (r *DocumentRepo) UpdateStatus(id, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE documents SET status = $2, updated_at = now() WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return fmt.Errorf("update document status: %w", err)
	}
	return nil
}

// List lista documentos con filtros de tipo, estado y rango de fechas.
func (r *DocumentRepo) List(filter repository.DocumentFilter) ([]*entity.Document, error) {
	var (
		conds []string
		args  []any
	)
	if filter.TypeID != 0 {
		args = append(args, filter.TypeID)
		conds = append(conds, fmt.Sprintf("type_id = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if !filter.From.IsZero() {
		args = append(args, filter.From)
		conds = append(conds, fmt.Sprintf("date >= $%d", len(args)))
	}
	if !filter.To.IsZero() {
		args = append(args, filter.To)
		conds = append(conds, fmt.Sprintf("date <= $%d", len(args)))
	}
	where := ""
	if len(conds) > 0 {
		where = "WHERE " + strings.Join(conds, " AND ")
	}
	args = append(args, filter.Limit, filter.Offset)
	query := fmt.Sprintf(`
		SELECT id, type_id, number, date, comment, status, COALESCE(supplier_id, ''), COALESCE(created_by, ''), created_at, updated_at
		FROM documents %s ORDER BY date DESC, number DESC LIMIT $%d OFFSET $%d`,
		where, len(args)-1, len(args))

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()
	var list []*entity.Document
	for rows.Next() {
		var d entity.Document
		if err := rows.Scan(&d.ID, &d.TypeID, &d.Number, &d.Date, &d.Comment, &d.Status,
			&d.SupplierID, &d.CreatedBy, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// NextNumber devuelve el siguiente consecutivo por tipo, con relleno a seis dígitos.
func (r *DocumentRepo) NextNumber(typeID int) (string, error) {
	var next int64
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(MAX(number::bigint), 0) + 1 FROM documents WHERE type_id = $1`,
		typeID,
	).Scan(&next)
	if err != nil {
		return "", fmt.Errorf("next document number: %w", err)
	}
	return fmt.Sprintf("%06d", next), nil
}

// Delete elimina una cabecera por ID.
func (r *DocumentRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM documents WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	return nil
}
