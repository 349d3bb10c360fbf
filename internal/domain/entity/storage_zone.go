package entity

import "time"

// StorageZone representa una zona de almacenamiento dentro del almacén
// (estantería, cámara fría, muelle de recepción...).
type StorageZone struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
