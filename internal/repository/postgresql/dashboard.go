package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/sbexpress/hris-backend-go/internal/domain/attendance"
	"github.com/sbexpress/hris-backend-go/internal/domain/dashboard"
	"github.com/sbexpress/hris-backend-go/internal/pkg/database"
)

type dashboardRepositoryImpl struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepositoryImpl{db: db}
}

// CountEmployeesByStatus returns non-deleted employee counts per employment status in single query
func (r *dashboardRepositoryImpl) CountEmployeesByStatus(ctx context.Context) (map[string]int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employment_status, COUNT(*)
		FROM employees
		WHERE deleted_at IS NULL
		GROUP BY employment_status
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to count employees by status: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var status string
		var n int64
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("failed to scan employee count: %w", err)
		}
		counts[status] = n
	}
	return counts, rows.Err()
}

// ListAttendanceOnDate returns attendance rows of active employees for a day
func (r *dashboardRepositoryImpl) ListAttendanceOnDate(ctx context.Context, date time.Time) ([]dashboard.TodayRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.employee_id, a.status, a.checked_in_at
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id AND e.deleted_at IS NULL
		WHERE a.date = $1 AND a.deleted_at IS NULL
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance on date: %w", err)
	}
	defer rows.Close()

	var records []dashboard.TodayRecord
	for rows.Next() {
		var rec dashboard.TodayRecord
		var status string
		if err := rows.Scan(&rec.EmployeeID, &status, &rec.CheckedInAt); err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		rec.Status = attendance.Status(status)
		records = append(records, rec)
	}
	return records, rows.Err()
}

// CountActiveUsers counts distinct users with a successful login or view since the given time
func (r *dashboardRepositoryImpl) CountActiveUsers(ctx context.Context, since time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(DISTINCT user_id)
		FROM activity_logs
		WHERE created_at >= $1
			AND status = 'success'
			AND activity_type IN ('login', 'view')
			AND user_id IS NOT NULL
	`

	var n int64
	if err := q.QueryRow(ctx, query, since).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count active users: %w", err)
	}
	return n, nil
}

// GetLocationAttendance returns present (distinct employees with a record on date) and total per location in single query
func (r *dashboardRepositoryImpl) GetLocationAttendance(ctx context.Context, date time.Time) ([]dashboard.LocationStats, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.location, COUNT(DISTINCT a.employee_id) AS present, COUNT(DISTINCT e.id) AS total
		FROM employees e
		LEFT JOIN attendances a ON a.employee_id = e.id AND a.date = $1 AND a.deleted_at IS NULL
		WHERE e.deleted_at IS NULL
		GROUP BY e.location
		ORDER BY e.location
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to get location attendance: %w", err)
	}
	defer rows.Close()

	var stats []dashboard.LocationStats
	for rows.Next() {
		var s dashboard.LocationStats
		if err := rows.Scan(&s.Location, &s.Present, &s.Total); err != nil {
			return nil, fmt.Errorf("failed to scan location attendance: %w", err)
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

// ListRecentActivities returns the newest activity entries with their actor since the given time
func (r *dashboardRepositoryImpl) ListRecentActivities(ctx context.Context, since time.Time, limit int) ([]dashboard.ActivityRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT l.created_at, u.username, e.location, l.description
		FROM activity_logs l
		LEFT JOIN users u ON u.id = l.user_id
		LEFT JOIN employees e ON e.id = u.employee_id
		WHERE l.created_at >= $1
		ORDER BY l.created_at DESC
		LIMIT $2
	`

	rows, err := q.Query(ctx, query, since, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent activities: %w", err)
	}
	defer rows.Close()

	var activities []dashboard.ActivityRecord
	for rows.Next() {
		var a dashboard.ActivityRecord
		if err := rows.Scan(&a.CreatedAt, &a.Username, &a.Location, &a.Description); err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}
		activities = append(activities, a)
	}
	return activities, rows.Err()
}
