package entity

import "time"

// Supplier representa un proveedor del registro de proveedores.
type Supplier struct {
	ID          string
	Name        string
	ContactName string
	Phone       string
	Email       string
	Address     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
