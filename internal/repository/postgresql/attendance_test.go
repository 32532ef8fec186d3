package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/sbexpress/hris-backend-go/internal/domain/attendance"
	"github.com/sbexpress/hris-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var attendanceCols = []string{"id", "employee_id", "date", "status", "checked_in_at", "note", "created_at", "deleted_at"}

func TestAttendanceRepository_ListByEmployeeAndPeriod(t *testing.T) {
	mock, db := newMockDB(t)
	repo := postgresql.NewAttendanceRepository(db)

	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)
	checkedIn := time.Date(2024, 3, 4, 1, 10, 0, 0, time.UTC)
	note := "flu"

	rows := pgxmock.NewRows(attendanceCols).
		AddRow(int64(1), int64(5), time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC), "present", &checkedIn, nil, checkedIn, nil).
		AddRow(int64(2), int64(5), time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), "sick", nil, &note, checkedIn, nil)

	mock.ExpectQuery(queryLike("WHERE employee_id = $1 AND date >= $2 AND date < $3 AND deleted_at IS NULL")).
		WithArgs(int64(5), from, to).
		WillReturnRows(rows)

	got, err := repo.ListByEmployeeAndPeriod(context.Background(), 5, from, to)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, attendance.StatusPresent, got[0].Status)
	require.NotNil(t, got[0].CheckedInAt)
	assert.Equal(t, attendance.StatusSick, got[1].Status)
	assert.Nil(t, got[1].CheckedInAt)
	require.NotNil(t, got[1].Note)
	assert.Equal(t, "flu", *got[1].Note)
}

func TestAttendanceRepository_ListPageByEmployeeAndPeriod(t *testing.T) {
	mock, db := newMockDB(t)
	repo := postgresql.NewAttendanceRepository(db)

	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	mock.ExpectQuery(queryLike("SELECT COUNT(*) FROM attendances")).
		WithArgs(int64(5), from, to).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(12)))
	mock.ExpectQuery(queryLike("LIMIT $4 OFFSET $5")).
		WithArgs(int64(5), from, to, 10, 10).
		WillReturnRows(pgxmock.NewRows(attendanceCols).
			AddRow(int64(11), int64(5), time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), "leave", nil, nil, from, nil))

	got, total, err := repo.ListPageByEmployeeAndPeriod(context.Background(), 5, from, to, 10, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(12), total)
	require.Len(t, got, 1)
	assert.Equal(t, attendance.StatusLeave, got[0].Status)
}

func TestAttendanceRepository_ExistsOnDate(t *testing.T) {
	mock, db := newMockDB(t)
	repo := postgresql.NewAttendanceRepository(db)

	date := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(queryLike("WHERE employee_id = $1 AND date = $2 AND status = $3")).
		WithArgs(int64(5), date, "present").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))

	exists, err := repo.ExistsOnDate(context.Background(), 5, date, attendance.StatusPresent)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestAttendanceRepository_Create(t *testing.T) {
	mock, db := newMockDB(t)
	repo := postgresql.NewAttendanceRepository(db)

	date := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	checkedIn := time.Date(2024, 3, 4, 0, 55, 0, 0, time.UTC)

	mock.ExpectQuery(queryLike("INSERT INTO attendances")).
		WithArgs(int64(5), date, "present", &checkedIn, pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows(attendanceCols).
			AddRow(int64(40), int64(5), date, "present", &checkedIn, nil, checkedIn, nil))

	got, err := repo.Create(context.Background(), attendance.Attendance{
		EmployeeID:  5,
		Date:        date,
		Status:      attendance.StatusPresent,
		CheckedInAt: &checkedIn,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(40), got.ID)
}

func TestAttendanceRepository_CountByStatusInPeriod(t *testing.T) {
	mock, db := newMockDB(t)
	repo := postgresql.NewAttendanceRepository(db)

	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	mock.ExpectQuery(queryLike("GROUP BY status")).
		WithArgs(from, to).
		WillReturnRows(pgxmock.NewRows([]string{"status", "count"}).
			AddRow("present", int64(40)).
			AddRow("sick", int64(3)))

	got, err := repo.CountByStatusInPeriod(context.Background(), from, to)
	require.NoError(t, err)
	assert.Equal(t, map[attendance.Status]int64{attendance.StatusPresent: 40, attendance.StatusSick: 3}, got)
}

func TestAttendanceRepository_Create_UniqueViolation(t *testing.T) {
	mock, db := newMockDB(t)
	repo := postgresql.NewAttendanceRepository(db)

	date := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	checkedIn := time.Date(2024, 3, 4, 0, 55, 0, 0, time.UTC)

	// a concurrent check-in committed first
	mock.ExpectQuery(queryLike("INSERT INTO attendances")).
		WithArgs(int64(5), date, "present", &checkedIn, pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "attendances_employee_date_status_uidx"})

	_, err := repo.Create(context.Background(), attendance.Attendance{
		EmployeeID:  5,
		Date:        date,
		Status:      attendance.StatusPresent,
		CheckedInAt: &checkedIn,
	})
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
}

func TestAttendanceRepository_Create_OtherErrorIsWrapped(t *testing.T) {
	mock, db := newMockDB(t)
	repo := postgresql.NewAttendanceRepository(db)

	date := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	fkErr := &pgconn.PgError{Code: "23503"}
	mock.ExpectQuery(queryLike("INSERT INTO attendances")).
		WithArgs(int64(999), date, "sick", pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(fkErr)

	_, err := repo.Create(context.Background(), attendance.Attendance{
		EmployeeID: 999,
		Date:       date,
		Status:     attendance.StatusSick,
	})
	require.Error(t, err)
	assert.NotErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
	assert.ErrorIs(t, err, fkErr)
}
