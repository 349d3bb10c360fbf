package repository

import "github.com/jhoicas/bodega-api/internal/domain/entity"

// ZoneStockRepository define el puerto para consultar/actualizar stock por zona+producto.
// Usado dentro de transacciones para garantizar consistencia.
type ZoneStockRepository interface {
	Get(productID, zoneID string) (*entity.ZoneStock, error)
	Upsert(stock *entity.ZoneStock) error
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE).
	GetForUpdate(productID, zoneID string) (*entity.ZoneStock, error)
}
