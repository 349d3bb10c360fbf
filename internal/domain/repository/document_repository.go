package repository

import (
	"time"

	"github.com/jhoicas/bodega-api/internal/domain/entity"
)

// DocumentFilter filtros para listar documentos.
type DocumentFilter struct {
	TypeID int // 0 = todos
	Status string
	From   time.Time
	To     time.Time
	Limit  int
	Offset int
}

// DocumentRepository define el puerto de persistencia para cabeceras de documento.
type DocumentRepository interface {
	Create(doc *entity.Document) error
	GetByID(id string) (*entity.Document, error)
	Update(doc *entity.Document) error
	UpdateStatus(id, status string) error
	List(filter DocumentFilter) ([]*entity.Document, error)
	// NextNumber devuelve el siguiente consecutivo para el tipo (por ejemplo "000042").
	NextNumber(typeID int) (string, error)
	Delete(id string) error
}
