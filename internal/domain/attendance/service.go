package attendance

import (
	"context"
	"time"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// GetSummary aggregates one employee's month into an AttendanceSummary
	GetSummary(ctx context.Context, req SummaryRequest) (AttendanceSummary, error)

	// GetWorkingDays returns the Monday-Friday count of a month
	GetWorkingDays(ctx context.Context, month, year int) (WorkingDaysResponse, error)

	// ListMonthly returns a page of an employee's records for a month along with the summary
	ListMonthly(ctx context.Context, filter MonthlyFilter) (ListAttendanceResponse, error)

	// CheckIn records a new attendance event at now
	CheckIn(ctx context.Context, req CheckInRequest, now time.Time) (AttendanceResponse, error)
}
