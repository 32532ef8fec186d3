package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/sbexpress/hris-backend-go/internal/domain/attendance"
	"github.com/sbexpress/hris-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

const attendanceColumns = `id, employee_id, date, status, checked_in_at, note, created_at, deleted_at`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var a attendance.Attendance
	var status string
	if err := row.Scan(&a.ID, &a.EmployeeID, &a.Date, &status, &a.CheckedInAt, &a.Note, &a.CreatedAt, &a.DeletedAt); err != nil {
		return attendance.Attendance{}, err
	}
	a.Status = attendance.Status(status)
	return a, nil
}

func collectAttendances(rows pgx.Rows) ([]attendance.Attendance, error) {
	defer rows.Close()

	var out []attendance.Attendance
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendances (employee_id, date, status, checked_in_at, note)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + attendanceColumns

	created, err := scanAttendance(q.QueryRow(ctx, query, a.EmployeeID, a.Date, string(a.Status), a.CheckedInAt, a.Note))
	if err != nil {
		if database.IsUniqueViolation(err) {
			return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}
	return created, nil
}

// ExistsOnDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ExistsOnDate(ctx context.Context, employeeID int64, date time.Time, status attendance.Status) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS(
			SELECT 1 FROM attendances
			WHERE employee_id = $1 AND date = $2 AND status = $3 AND deleted_at IS NULL
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, employeeID, date, string(status)).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check attendance: %w", err)
	}
	return exists, nil
}

// ListByEmployeeAndPeriod implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByEmployeeAndPeriod(ctx context.Context, employeeID int64, from, to time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE employee_id = $1 AND date >= $2 AND date < $3 AND deleted_at IS NULL
		ORDER BY date, checked_in_at
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	records, err := collectAttendances(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to scan attendance: %w", err)
	}
	return records, nil
}

// ListPageByEmployeeAndPeriod implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListPageByEmployeeAndPeriod(ctx context.Context, employeeID int64, from, to time.Time, limit, offset int) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, r.db)

	countQuery := `
		SELECT COUNT(*) FROM attendances
		WHERE employee_id = $1 AND date >= $2 AND date < $3 AND deleted_at IS NULL
	`
	var total int64
	if err := q.QueryRow(ctx, countQuery, employeeID, from, to).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendance: %w", err)
	}

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE employee_id = $1 AND date >= $2 AND date < $3 AND deleted_at IS NULL
		ORDER BY date DESC, checked_in_at DESC
		LIMIT $4 OFFSET $5
	`
	rows, err := q.Query(ctx, query, employeeID, from, to, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendance page: %w", err)
	}
	records, err := collectAttendances(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to scan attendance: %w", err)
	}
	return records, total, nil
}

// CountByStatusInPeriod implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) CountByStatusInPeriod(ctx context.Context, from, to time.Time) (map[attendance.Status]int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT status, COUNT(*)
		FROM attendances
		WHERE date >= $1 AND date < $2 AND deleted_at IS NULL
		GROUP BY status
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to count attendance by status: %w", err)
	}
	defer rows.Close()

	counts := make(map[attendance.Status]int64)
	for rows.Next() {
		var status string
		var n int64
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("failed to scan attendance count: %w", err)
		}
		counts[attendance.Status(status)] = n
	}
	return counts, rows.Err()
}
