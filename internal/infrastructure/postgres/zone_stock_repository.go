package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/bodega-api/internal/domain/entity"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
)

var _ repository.ZoneStockRepository = (*ZoneStockRepo)(nil)

// ZoneStockRepo implementación de ZoneStockRepository sobre PostgreSQL (usable con pool o tx).
type ZoneStockRepo struct {
	q Querier
}

// NewZoneStockRepository construye el adaptador de stock por zona. Pasar pool o tx (Querier).
func NewZoneStockRepository(q Querier) *ZoneStockRepo {
	return &ZoneStockRepo{q: q}
}

// Get obtiene el stock actual de un producto en una zona. Zona sin fila devuelve cantidad cero.
func (r *ZoneStockRepo) Get(productID, zoneID string) (*entity.ZoneStock, error) {
	query := `
		SELECT product_id, zone_id, quantity, updated_at
		FROM zone_stock WHERE product_id = $1 AND zone_id = $2`
	var s entity.ZoneStock
	err := r.q.QueryRow(context.Background(), query, productID, zoneID).Scan(
		&s.ProductID, &s.ZoneID, &s.Quantity, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.ZoneStock{ProductID: productID, ZoneID: zoneID, Quantity: decimal.Zero}, nil
		}
		return nil, fmt.Errorf("get zone stock: %w", err)
	}
	return &s, nil
}

// Upsert inserta o actualiza la cantidad en stock (por producto y zona).
func (r *ZoneStockRepo) Upsert(stock *entity.ZoneStock) error {
	query := `
		INSERT INTO zone_stock (product_id, zone_id, quantity, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (product_id, zone_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query, stock.ProductID, stock.ZoneID, stock.Quantity)
	if err != nil {
		return fmt.Errorf("upsert zone stock: %w", err)
	}
	return nil
}

// GetForUpdate obtiene el stock y bloquea la fila para update (SELECT FOR UPDATE).
func (r *ZoneStockRepo) GetForUpdate(productID, zoneID string) (*entity.ZoneStock, error) {
	query := `
		SELECT product_id, zone_id, quantity, updated_at
		FROM zone_stock WHERE product_id = $1 AND zone_id = $2
		FOR UPDATE`
	var s entity.ZoneStock
	err := r.q.QueryRow(context.Background(), query, productID, zoneID).Scan(
		&s.ProductID, &s.ZoneID, &s.Quantity, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.ZoneStock{ProductID: productID, ZoneID: zoneID, Quantity: decimal.Zero}, nil
		}
		return nil, fmt.Errorf("get zone stock for update: %w", err)
	}
	return &s, nil
}
