package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/sbexpress/hris-backend-go/internal/config"
	"github.com/sbexpress/hris-backend-go/internal/domain/activitylog"
	"github.com/sbexpress/hris-backend-go/internal/domain/attendance"
	"github.com/sbexpress/hris-backend-go/internal/domain/employee"
	"github.com/sbexpress/hris-backend-go/internal/pkg/calendar"
	"github.com/sbexpress/hris-backend-go/internal/pkg/database"
	"github.com/sbexpress/hris-backend-go/internal/pkg/metrics"
	"github.com/sbexpress/hris-backend-go/internal/repository/postgresql"
)

type txRunner func(ctx context.Context, fn func(txCtx context.Context) error) error

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	employeeRepo employee.EmployeeRepository
	activityRepo activitylog.ActivityLogRepository
	policy       config.Policy
	metrics      *metrics.Recorder
	withTx       txRunner
	now          func() time.Time
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	activityRepo activitylog.ActivityLogRepository,
	policy config.Policy,
	recorder *metrics.Recorder,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		employeeRepo:         employeeRepo,
		activityRepo:         activityRepo,
		policy:               policy,
		metrics:              recorder,
		withTx: func(ctx context.Context, fn func(txCtx context.Context) error) error {
			return postgresql.WithTransaction(ctx, db, fn)
		},
		now: time.Now,
	}
}

// resolvePeriod fills a missing month/year from the current date in the policy zone.
func (a *AttendanceServiceImpl) resolvePeriod(month, year int) (int, int) {
	if month == 0 && year == 0 {
		today := a.now().In(a.policy.Loc())
		return int(today.Month()), today.Year()
	}
	if month == 0 {
		month = int(a.now().In(a.policy.Loc()).Month())
	}
	if year == 0 {
		year = a.now().In(a.policy.Loc()).Year()
	}
	return month, year
}

// GetSummary implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetSummary(ctx context.Context, req attendance.SummaryRequest) (attendance.AttendanceSummary, error) {
	req.Month, req.Year = a.resolvePeriod(req.Month, req.Year)
	if err := req.Validate(); err != nil {
		return attendance.AttendanceSummary{}, err
	}

	if _, err := a.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return attendance.AttendanceSummary{}, err
		}
		return attendance.AttendanceSummary{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return a.summary(ctx, req.EmployeeID, req.Month, req.Year)
}

func (a *AttendanceServiceImpl) summary(ctx context.Context, employeeID int64, month, year int) (attendance.AttendanceSummary, error) {
	from, to := calendar.MonthRange(time.Month(month), year, time.UTC)
	records, err := a.ListByEmployeeAndPeriod(ctx, employeeID, from, to)
	if err != nil {
		return attendance.AttendanceSummary{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	summary := Summarize(records, time.Month(month), year, a.policy)
	summary.EmployeeID = employeeID

	for _, kind := range summary.Anomalies {
		a.metrics.Anomaly(kind)
		slog.Warn("attendance summary normalised",
			"employee_id", employeeID,
			"month", month,
			"year", year,
			"anomaly", kind,
		)
	}

	return summary, nil
}

// Summarize aggregates the records of one employee in one month.
// Records dated outside the month are ignored. The absence count and the rate are
// clamped into range and every clamp is reported in Anomalies.
func Summarize(records []attendance.Attendance, month time.Month, year int, policy config.Policy) attendance.AttendanceSummary {
	summary := attendance.AttendanceSummary{
		Month:       int(month),
		Year:        year,
		WorkingDays: calendar.WorkingDays(month, year),
	}

	presentDays := make(map[string]struct{})
	for _, r := range records {
		if r.Date.Year() != year || r.Date.Month() != month {
			continue
		}
		switch r.Status {
		case attendance.StatusPresent:
			summary.Present++
			presentDays[r.Date.Format(calendar.DateLayout)] = struct{}{}
			if r.CheckedInAt != nil && policy.IsLate(*r.CheckedInAt) {
				summary.Late++
			}
		case attendance.StatusPermission:
			summary.Permission++
		case attendance.StatusSick:
			summary.Sick++
		case attendance.StatusLeave:
			summary.Leave++
		case attendance.StatusOvertime:
			summary.Overtime++
		}
	}
	summary.DaysPresent = len(presentDays)

	summary.Absent = summary.WorkingDays - summary.DaysPresent
	if summary.Absent < 0 {
		summary.Absent = 0
		summary.Anomalies = append(summary.Anomalies, metrics.AnomalyNegativeAbsence)
	}

	if summary.WorkingDays > 0 {
		rate := roundTo(float64(summary.Present)/float64(summary.WorkingDays)*100, 2)
		if rate > 100 {
			rate = 100
			summary.Anomalies = append(summary.Anomalies, metrics.AnomalyRateOverflow)
		}
		summary.AttendanceRate = rate
	}

	return summary
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

// GetWorkingDays implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetWorkingDays(ctx context.Context, month, year int) (attendance.WorkingDaysResponse, error) {
	month, year = a.resolvePeriod(month, year)
	if err := attendance.ValidatePeriod(month, year); err != nil {
		return attendance.WorkingDaysResponse{}, err
	}

	return attendance.WorkingDaysResponse{
		Month:       month,
		Year:        year,
		WorkingDays: calendar.WorkingDays(time.Month(month), year),
	}, nil
}

// ListMonthly implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListMonthly(ctx context.Context, filter attendance.MonthlyFilter) (attendance.ListAttendanceResponse, error) {
	filter.Month, filter.Year = a.resolvePeriod(filter.Month, filter.Year)
	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	if _, err := a.employeeRepo.GetByID(ctx, filter.EmployeeID); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return attendance.ListAttendanceResponse{}, err
		}
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	from, to := calendar.MonthRange(time.Month(filter.Month), filter.Year, time.UTC)
	offset := (filter.Page - 1) * filter.Limit
	records, total, err := a.ListPageByEmployeeAndPeriod(ctx, filter.EmployeeID, from, to, filter.Limit, offset)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	summary, err := a.summary(ctx, filter.EmployeeID, filter.Month, filter.Year)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	// Map to response
	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, a.toResponse(r))
	}

	totalPages := int(math.Ceil(float64(total) / float64(filter.Limit)))
	showing := fmt.Sprintf("%d-%d of %d", offset+1, min(filter.Page*filter.Limit, int(total)), total)
	if total == 0 {
		showing = "0 of 0"
	}

	return attendance.ListAttendanceResponse{
		TotalCount:  total,
		Page:        filter.Page,
		Limit:       filter.Limit,
		TotalPages:  totalPages,
		Showing:     showing,
		Attendances: responses,
		Summary:     summary,
	}, nil
}

// CheckIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest, now time.Time) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	emp, err := a.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return attendance.AttendanceResponse{}, err
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	status := attendance.Status(req.Status)
	local := now.In(a.policy.Loc())
	today := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)

	var created attendance.Attendance
	err = a.withTx(ctx, func(txCtx context.Context) error {
		exists, err := a.ExistsOnDate(txCtx, req.EmployeeID, today, status)
		if err != nil {
			return fmt.Errorf("failed to check existing attendance: %w", err)
		}
		if exists {
			return attendance.ErrAlreadyCheckedIn
		}

		checkedInAt := now
		created, err = a.Create(txCtx, attendance.Attendance{
			EmployeeID:  req.EmployeeID,
			Date:        today,
			Status:      status,
			CheckedInAt: &checkedInAt,
			Note:        req.Note,
		})
		if err != nil {
			// a concurrent check-in can pass the existence check; the unique index settles it
			if errors.Is(err, attendance.ErrAlreadyCheckedIn) {
				return err
			}
			return fmt.Errorf("failed to create attendance: %w", err)
		}

		entityType := "attendance"
		if _, err := a.activityRepo.Create(txCtx, activitylog.Entry{
			UserID:       req.UserID,
			ActivityType: activitylog.TypeCreate,
			Description:  fmt.Sprintf("Attendance %s recorded for %s", status, emp.FullName),
			Status:       activitylog.OutcomeSuccess,
			EntityType:   &entityType,
			EntityID:     &created.ID,
		}); err != nil {
			return fmt.Errorf("failed to record activity: %w", err)
		}
		return nil
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return a.toResponse(created), nil
}

func (a *AttendanceServiceImpl) toResponse(r attendance.Attendance) attendance.AttendanceResponse {
	late := r.Status == attendance.StatusPresent && r.CheckedInAt != nil && a.policy.IsLate(*r.CheckedInAt)
	return attendance.NewAttendanceResponse(r, late, a.policy.Loc())
}
