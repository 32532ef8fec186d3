package dashboard

import (
	"context"
	"time"

	"github.com/sbexpress/hris-backend-go/internal/domain/attendance"
)

// TodayRecord is the minimal projection of an attendance row for today's tally
type TodayRecord struct {
	EmployeeID  int64
	Status      attendance.Status
	CheckedInAt *time.Time
}

// LocationStats is the raw per-location count before the percentage is derived
type LocationStats struct {
	Location string
	Present  int64
	Total    int64
}

// ActivityRecord joins an activity log row with its actor
type ActivityRecord struct {
	CreatedAt   time.Time
	Username    *string
	Location    *string
	Description string
}

// DashboardRepository defines the interface for dashboard data access
type DashboardRepository interface {
	// CountEmployeesByStatus returns non-deleted employee counts keyed by employment status
	CountEmployeesByStatus(ctx context.Context) (map[string]int64, error)

	// ListAttendanceOnDate returns non-deleted attendance rows of one date
	ListAttendanceOnDate(ctx context.Context, date time.Time) ([]TodayRecord, error)

	// CountActiveUsers counts distinct users with a successful login or view since the given time
	CountActiveUsers(ctx context.Context, since time.Time) (int64, error)

	// GetLocationAttendance returns, per location, distinct employees with a record on date and the headcount
	GetLocationAttendance(ctx context.Context, date time.Time) ([]LocationStats, error)

	// ListRecentActivities returns the newest activity entries since the given time
	ListRecentActivities(ctx context.Context, since time.Time, limit int) ([]ActivityRecord, error)
}
