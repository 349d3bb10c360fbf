package dto

import "time"

// CreateEmployeeRequest entrada para crear un empleado.
type CreateEmployeeRequest struct {
	FullName string `json:"full_name" validate:"required,min=1,max=200"`
	Position string `json:"position" validate:"required"`
	Email    string `json:"email" validate:"omitempty,email"`
	Phone    string `json:"phone"`
}

// UpdateEmployeeRequest entrada para actualizar un empleado.
type UpdateEmployeeRequest struct {
	FullName *string `json:"full_name" validate:"omitempty,min=1,max=200"`
	Position *string `json:"position"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Phone    *string `json:"phone"`
	Status   *string `json:"status" validate:"omitempty,oneof=active inactive"`
}

// EmployeeResponse salida de un empleado.
type EmployeeResponse struct {
	ID        string    `json:"id"`
	FullName  string    `json:"full_name"`
	Position  string    `json:"position"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EmployeeListResponse lista paginada de empleados.
type EmployeeListResponse struct {
	Items []EmployeeResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
