package repository

import (
	"context"

	"github.com/jhoicas/bodega-api/internal/domain/entity"
)

// DocumentLineRepository define el puerto de persistencia para renglones de documento.
// Lleva ctx porque la sesión de edición emite cada alta/cambio/baja como petición
// independiente y necesita poder cancelarla.
type DocumentLineRepository interface {
	Create(ctx context.Context, line *entity.DocumentLine) (*entity.DocumentLine, error)
	Update(ctx context.Context, line *entity.DocumentLine) (*entity.DocumentLine, error)
	Delete(ctx context.Context, lineID string) error
	ListByDocument(ctx context.Context, documentID string) ([]*entity.DocumentLine, error)
	DeleteByDocument(ctx context.Context, documentID string) error
}
