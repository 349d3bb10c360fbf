package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/bodega-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	// UpdateStock actualiza solo el saldo registrado (lo usa la contabilización de documentos).
	UpdateStock(productID string, quantity decimal.Decimal) error
	List(limit, offset int) ([]*entity.Product, error)
	Delete(id string) error
}
