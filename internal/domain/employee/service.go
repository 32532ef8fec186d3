package employee

import (
	"context"
	"time"
)

// EmployeeService defines business logic for employee operations
type EmployeeService interface {
	// GetEmployee retrieves a single employee by ID
	GetEmployee(ctx context.Context, id int64) (EmployeeResponse, error)

	// ListEmployees lists active employees with filters and pagination
	ListEmployees(ctx context.Context, filter EmployeeFilter, now time.Time) (ListEmployeeResponse, error)

	// CreateEmployee creates a new employee (admin/hrd only)
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// DeleteEmployee soft deletes an employee (admin/hrd only)
	DeleteEmployee(ctx context.Context, id int64) error

	// CheckNIK reports whether a NIK is still available
	CheckNIK(ctx context.Context, nik string) (CheckNIKResponse, error)

	// GetHistory returns the audit trail of an employee and its attendance records
	GetHistory(ctx context.Context, id int64) (HistoryResponse, error)

	// GetPositionStats returns headcount per position, split by location and status
	GetPositionStats(ctx context.Context) (PositionStatsResponse, error)
}
