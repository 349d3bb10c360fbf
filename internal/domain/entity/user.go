package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin       = "admin"
	RoleAlmacenista = "almacenista"
	RoleOperador    = "operador"
)

// User representa un usuario con acceso al sistema.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // admin, almacenista, operador
	Status       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
