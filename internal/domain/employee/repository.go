package employee

import (
	"context"
)

type EmployeeRepository interface {
	// GetByID returns ErrEmployeeNotFound for missing or soft-deleted employees
	GetByID(ctx context.Context, id int64) (Employee, error)
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	ExistsByNIK(ctx context.Context, nik string) (bool, error)
	SoftDelete(ctx context.Context, id int64) error

	// List returns one page of active employees and the total matching the filter
	List(ctx context.Context, filter EmployeeFilter) ([]Employee, int64, error)
	CountByPosition(ctx context.Context) ([]PositionCount, error)
}
