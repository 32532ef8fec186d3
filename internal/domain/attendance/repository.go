package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
// Every read excludes soft-deleted rows. Period bounds are half-open: [from, to).
type AttendanceRepository interface {
	// Create creates a new attendance record
	Create(ctx context.Context, attendance Attendance) (Attendance, error)

	// ExistsOnDate is used to prevent double check-in with the same status
	ExistsOnDate(ctx context.Context, employeeID int64, date time.Time, status Status) (bool, error)

	// ListByEmployeeAndPeriod returns every record of the employee in the period
	ListByEmployeeAndPeriod(ctx context.Context, employeeID int64, from, to time.Time) ([]Attendance, error)

	// ListPageByEmployeeAndPeriod returns one page of records plus the total count
	ListPageByEmployeeAndPeriod(ctx context.Context, employeeID int64, from, to time.Time, limit, offset int) ([]Attendance, int64, error)

	// CountByStatusInPeriod tallies records per status across all employees
	CountByStatusInPeriod(ctx context.Context, from, to time.Time) (map[Status]int64, error)
}
