package dto

import "time"

// CreateZoneRequest entrada para crear una zona de almacenamiento.
type CreateZoneRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Description string `json:"description"`
}

// UpdateZoneRequest entrada para actualizar una zona.
type UpdateZoneRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description"`
}

// ZoneResponse salida de una zona.
type ZoneResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ZoneListResponse lista paginada de zonas.
type ZoneListResponse struct {
	Items []ZoneResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
