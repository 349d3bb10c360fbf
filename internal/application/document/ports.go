package document

import (
	"context"

	"github.com/jhoicas/bodega-api/internal/domain"
	"github.com/jhoicas/bodega-api/internal/domain/document"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios
// atados a esa tx. Garantiza atomicidad al contabilizar documentos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		zoneStockRepo repository.ZoneStockRepository,
		lineRepo repository.DocumentLineRepository,
		docRepo repository.DocumentRepository,
	) error) error
}

// catalogAdapter adapta ProductRepository al puerto ProductCatalog del ledger.
type catalogAdapter struct {
	products repository.ProductRepository
}

func (a catalogAdapter) Lookup(productID string) (*document.ProductInfo, error) {
	p, err := a.products.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return &document.ProductInfo{
		ID:            p.ID,
		Name:          p.Name,
		Unit:          p.UnitMeasure,
		Category:      p.Category,
		PurchasePrice: p.PurchasePrice,
		SellPrice:     p.SellPrice,
		Stock:         p.StockQuantity,
	}, nil
}

// zoneAdapter adapta StorageZoneRepository al puerto ZoneDirectory del ledger.
type zoneAdapter struct {
	zones repository.StorageZoneRepository
}

func (a zoneAdapter) Lookup(zoneID string) (*document.ZoneInfo, error) {
	z, err := a.zones.GetByID(zoneID)
	if err != nil {
		return nil, err
	}
	if z == nil {
		return nil, domain.ErrNotFound
	}
	return &document.ZoneInfo{ID: z.ID, Name: z.Name}, nil
}
