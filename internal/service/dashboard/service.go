package dashboard

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/sbexpress/hris-backend-go/internal/config"
	"github.com/sbexpress/hris-backend-go/internal/domain/attendance"
	"github.com/sbexpress/hris-backend-go/internal/domain/dashboard"
	"github.com/sbexpress/hris-backend-go/internal/domain/employee"
	"github.com/sbexpress/hris-backend-go/internal/pkg/calendar"
	"github.com/sbexpress/hris-backend-go/internal/pkg/metrics"
	"golang.org/x/sync/errgroup"
)

const maxTrendMonths = 24

type DashboardServiceImpl struct {
	dashboard.DashboardRepository
	attendanceRepo attendance.AttendanceRepository
	policy         config.Policy
	metrics        *metrics.Recorder
}

func NewDashboardService(
	repo dashboard.DashboardRepository,
	attendanceRepo attendance.AttendanceRepository,
	policy config.Policy,
	recorder *metrics.Recorder,
) dashboard.DashboardService {
	return &DashboardServiceImpl{
		DashboardRepository: repo,
		attendanceRepo:      attendanceRepo,
		policy:              policy,
		metrics:             recorder,
	}
}

// GetSnapshot returns the realtime dashboard using parallel goroutines.
// 5 goroutines, each with 1 DB query.
func (s *DashboardServiceImpl) GetSnapshot(ctx context.Context, now time.Time) (*dashboard.SnapshotResponse, error) {
	loc := s.policy.Loc()
	local := now.In(loc)
	// DATE columns come back as UTC midnight
	today := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
	since := now.Add(-s.policy.ActiveWindow)

	var (
		statusCounts map[string]int64
		todayRecords []dashboard.TodayRecord
		activeUsers  int64
		locations    []dashboard.LocationStats
		activities   []dashboard.ActivityRecord
	)

	g, gCtx := errgroup.WithContext(ctx)

	// 1. Employee counts by status
	g.Go(func() error {
		var err error
		statusCounts, err = s.CountEmployeesByStatus(gCtx)
		if err != nil {
			return fmt.Errorf("failed to count employees: %w", err)
		}
		return nil
	})

	// 2. Today's attendance rows
	g.Go(func() error {
		var err error
		todayRecords, err = s.ListAttendanceOnDate(gCtx, today)
		if err != nil {
			return fmt.Errorf("failed to list today's attendance: %w", err)
		}
		return nil
	})

	// 3. Active users in the trailing window
	g.Go(func() error {
		var err error
		activeUsers, err = s.CountActiveUsers(gCtx, since)
		if err != nil {
			return fmt.Errorf("failed to count active users: %w", err)
		}
		return nil
	})

	// 4. Per-location attendance
	g.Go(func() error {
		var err error
		locations, err = s.GetLocationAttendance(gCtx, today)
		if err != nil {
			return fmt.Errorf("failed to get location attendance: %w", err)
		}
		return nil
	})

	// 5. Recent activity feed
	g.Go(func() error {
		var err error
		activities, err = s.ListRecentActivities(gCtx, since, s.policy.RecentActivityLimit)
		if err != nil {
			return fmt.Errorf("failed to list recent activities: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	counts := employeeCounts(statusCounts)
	tally, anomalies := s.tallyToday(todayRecords, counts.Total)
	for _, kind := range anomalies {
		s.metrics.Anomaly(kind)
	}

	return &dashboard.SnapshotResponse{
		GeneratedAt:        local.Format(time.RFC3339),
		Date:               today.Format(calendar.DateLayout),
		EmployeeCounts:     counts,
		TodayAttendance:    tally,
		ActiveUsers:        activeUsers,
		LocationAttendance: locationAttendance(locations),
		RecentActivities:   activityFeed(activities, loc),
		Anomalies:          anomalies,
	}, nil
}

func employeeCounts(byStatus map[string]int64) dashboard.EmployeeCounts {
	var c dashboard.EmployeeCounts
	for status, n := range byStatus {
		c.Total += n
		switch employee.EmploymentStatus(status) {
		case employee.EmploymentStatusContract:
			c.Contract = n
		case employee.EmploymentStatusPermanent:
			c.Permanent = n
		case employee.EmploymentStatusFreelance:
			c.Freelance = n
		case employee.EmploymentStatusIntern:
			c.Intern = n
		case employee.EmploymentStatusTerminated:
			c.Terminated = n
		}
	}
	return c
}

// tallyToday counts today's rows per status. Present counts distinct employees and
// Late is the subset of them whose check-in was after the work start.
func (s *DashboardServiceImpl) tallyToday(records []dashboard.TodayRecord, totalEmployees int64) (dashboard.TodayAttendance, []string) {
	var t dashboard.TodayAttendance
	presentSeen := map[int64]bool{}

	for _, r := range records {
		switch r.Status {
		case attendance.StatusPresent:
			if presentSeen[r.EmployeeID] {
				continue
			}
			presentSeen[r.EmployeeID] = true
			t.Present++
			if r.CheckedInAt != nil && s.policy.IsLate(*r.CheckedInAt) {
				t.Late++
			}
		case attendance.StatusPermission:
			t.Permission++
		case attendance.StatusSick:
			t.Sick++
		case attendance.StatusLeave:
			t.Leave++
		case attendance.StatusOvertime:
			t.Overtime++
		}
	}

	var anomalies []string
	t.Absent = totalEmployees - t.Present - t.Permission - t.Sick - t.Leave
	if t.Absent < 0 {
		t.Absent = 0
		anomalies = append(anomalies, metrics.AnomalyNegativeTodayAbsence)
	}
	return t, anomalies
}

func locationAttendance(stats []dashboard.LocationStats) []dashboard.LocationAttendance {
	out := make([]dashboard.LocationAttendance, 0, len(stats))
	for _, st := range stats {
		present := min(st.Present, st.Total)
		var pct float64
		if st.Total > 0 {
			pct = math.Round(float64(present)/float64(st.Total)*1000) / 10
		}
		out = append(out, dashboard.LocationAttendance{
			Location:   st.Location,
			Present:    present,
			Total:      st.Total,
			Percentage: pct,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Location < out[j].Location })
	return out
}

func activityFeed(records []dashboard.ActivityRecord, loc *time.Location) []dashboard.ActivityItem {
	out := make([]dashboard.ActivityItem, 0, len(records))
	for _, r := range records {
		item := dashboard.ActivityItem{
			Time:        r.CreatedAt.In(loc).Format("15:04"),
			User:        "System",
			Location:    "-",
			Description: r.Description,
		}
		if r.Username != nil && *r.Username != "" {
			item.User = *r.Username
		}
		if r.Location != nil && *r.Location != "" {
			item.Location = *r.Location
		}
		out = append(out, item)
	}
	return out
}

// GetAttendanceTrend returns totals for the last n months ending with the month of now.
func (s *DashboardServiceImpl) GetAttendanceTrend(ctx context.Context, now time.Time, months int) (*dashboard.TrendResponse, error) {
	if months <= 0 {
		months = 6
	}
	if months > maxTrendMonths {
		months = maxTrendMonths
	}

	local := now.In(s.policy.Loc())
	current := time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, time.UTC)

	resp := &dashboard.TrendResponse{
		Labels:     make([]string, months),
		Present:    make([]int64, months),
		Permission: make([]int64, months),
		Sick:       make([]int64, months),
	}

	g, gCtx := errgroup.WithContext(ctx)
	for i := 0; i < months; i++ {
		i := i
		start := current.AddDate(0, i-months+1, 0)
		resp.Labels[i] = start.Format("Jan 2006")
		g.Go(func() error {
			counts, err := s.attendanceRepo.CountByStatusInPeriod(gCtx, start, start.AddDate(0, 1, 0))
			if err != nil {
				return fmt.Errorf("failed to count attendance for %s: %w", start.Format("2006-01"), err)
			}
			resp.Present[i] = counts[attendance.StatusPresent]
			resp.Permission[i] = counts[attendance.StatusPermission]
			resp.Sick[i] = counts[attendance.StatusSick]
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return resp, nil
}
