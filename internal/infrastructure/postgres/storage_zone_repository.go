package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/bodega-api/internal/domain"
	"github.com/jhoicas/bodega-api/internal/domain/entity"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
)

var _ repository.StorageZoneRepository = (*StorageZoneRepo)(nil)

// StorageZoneRepo implementación de StorageZoneRepository sobre PostgreSQL.
type StorageZoneRepo struct {
	q Querier
}

// NewStorageZoneRepository construye el adaptador de zonas de almacenamiento.
func NewStorageZoneRepository(q Querier) *StorageZoneRepo {
	return &StorageZoneRepo{q: q}
}

// Create persiste una zona nueva.
func (r *StorageZoneRepo) Create(zone *entity.StorageZone) error {
	query := `
		INSERT INTO storage_zones (id, name, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		zone.ID, zone.Name, zone.Description, zone.CreatedAt, zone.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert storage zone: %w", err)
	}
	return nil
}

// GetByID obtiene una zona por ID.
func (r *StorageZoneRepo) GetByID(id string) (*entity.StorageZone, error) {
	query := `
		SELECT id, name, description, created_at, updated_at
		FROM storage_zones WHERE id = $1`
	var z entity.StorageZone
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&z.ID, &z.Name, &z.Description, &z.CreatedAt, &z.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get storage zone: %w", err)
	}
	return &z, nil
}

// Update actualiza una zona.
func (r *StorageZoneRepo) Update(zone *entity.StorageZone) error {
	query := `
		UPDATE storage_zones SET name = $2, description = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		zone.ID, zone.Name, zone.Description, zone.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update storage zone: %w", err)
	}
	return nil
}

// List lista zonas con paginación.
func (r *StorageZoneRepo) List(limit, offset int) ([]*entity.StorageZone, error) {
	query := `
		SELECT id, name, description, created_at, updated_at
		FROM storage_zones ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list storage zones: %w", err)
	}
	defer rows.Close()
	var list []*entity.StorageZone
	for rows.Next() {
		var z entity.StorageZone
		if err := rows.Scan(&z.ID, &z.Name, &z.Description, &z.CreatedAt, &z.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan storage zone: %w", err)
		}
		list = append(list, &z)
	}
	return list, rows.Err()
}

// Delete elimina una zona por ID.
func (r *StorageZoneRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM storage_zones WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete storage zone: %w", err)
	}
	return nil
}
