package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/bodega-api/internal/application/dto"
	"github.com/jhoicas/bodega-api/internal/domain"
	"github.com/jhoicas/bodega-api/internal/domain/entity"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
)

// ZoneUseCase casos de uso CRUD para zonas de almacenamiento.
type ZoneUseCase struct {
	repo repository.StorageZoneRepository
}

// NewZoneUseCase construye el caso de uso.
func NewZoneUseCase(repo repository.StorageZoneRepository) *ZoneUseCase {
	return &ZoneUseCase{repo: repo}
}

// Create crea una zona nueva.
func (uc *ZoneUseCase) Create(in dto.CreateZoneRequest) (*dto.ZoneResponse, error) {
	now := time.Now()
	zone := &entity.StorageZone{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(zone); err != nil {
		return nil, err
	}
	return toZoneResponse(zone), nil
}

// GetByID obtiene una zona por ID.
func (uc *ZoneUseCase) GetByID(id string) (*dto.ZoneResponse, error) {
	zone, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if zone == nil {
		return nil, domain.ErrNotFound
	}
	return toZoneResponse(zone), nil
}

// Update actualiza una zona.
func (uc *ZoneUseCase) Update(id string, in dto.UpdateZoneRequest) (*dto.ZoneResponse, error) {
	zone, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if zone == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		zone.Name = *in.Name
	}
	if in.Description != nil {
		zone.Description = *in.Description
	}
	zone.UpdatedAt = time.Now()
	if err := uc.repo.Update(zone); err != nil {
		return nil, err
	}
	return toZoneResponse(zone), nil
}

// List lista zonas con paginación.
func (uc *ZoneUseCase) List(limit, offset int) (*dto.ZoneListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ZoneResponse, 0, len(list))
	for _, z := range list {
		items = append(items, *toZoneResponse(z))
	}
	return &dto.ZoneListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina una zona por ID.
func (uc *ZoneUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toZoneResponse(z *entity.StorageZone) *dto.ZoneResponse {
	if z == nil {
		return nil
	}
	return &dto.ZoneResponse{
		ID:          z.ID,
		Name:        z.Name,
		Description: z.Description,
		CreatedAt:   z.CreatedAt,
		UpdatedAt:   z.UpdatedAt,
	}
}
