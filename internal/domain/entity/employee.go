package entity

import "time"

// Employee representa un empleado de la plantilla del almacén.
// Independiente de User: no todo empleado tiene acceso al sistema.
type Employee struct {
	ID        string
	FullName  string
	Position  string // puesto: jefe de almacén, almacenista, operador...
	Email     string
	Phone     string
	Status    string // active, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}
