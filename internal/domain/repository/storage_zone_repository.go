package repository

import "github.com/jhoicas/bodega-api/internal/domain/entity"

// StorageZoneRepository define el puerto de persistencia para StorageZone.
type StorageZoneRepository interface {
	Create(zone *entity.StorageZone) error
	GetByID(id string) (*entity.StorageZone, error)
	Update(zone *entity.StorageZone) error
	List(limit, offset int) ([]*entity.StorageZone, error)
	Delete(id string) error
}
