package repository

import "github.com/jhoicas/bodega-api/internal/domain/entity"

// EmployeeRepository define el puerto de persistencia para Employee.
type EmployeeRepository interface {
	Create(employee *entity.Employee) error
	GetByID(id string) (*entity.Employee, error)
	Update(employee *entity.Employee) error
	List(limit, offset int) ([]*entity.Employee, error)
	Delete(id string) error
}
