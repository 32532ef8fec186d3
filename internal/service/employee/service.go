package employee

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/sbexpress/hris-backend-go/internal/config"
	"github.com/sbexpress/hris-backend-go/internal/domain/activitylog"
	"github.com/sbexpress/hris-backend-go/internal/domain/employee"
	"github.com/sbexpress/hris-backend-go/internal/pkg/calendar"
	"github.com/sbexpress/hris-backend-go/internal/pkg/jwt"
	"github.com/sbexpress/hris-backend-go/internal/pkg/validator"
)

const historyLimit = 100

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
	historyRepo     activitylog.HistoryRepository
	activityService activitylog.ActivityLogService
	loc             *time.Location
}

func NewEmployeeService(
	employeeRepo employee.EmployeeRepository,
	historyRepo activitylog.HistoryRepository,
	activityService activitylog.ActivityLogService,
	policy config.Policy,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		EmployeeRepository: employeeRepo,
		historyRepo:        historyRepo,
		activityService:    activityService,
		loc:                policy.Loc(),
	}
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id int64) (employee.EmployeeResponse, error) {
	if !validator.IsPositiveID(id) {
		return employee.EmployeeResponse{}, validator.ValidationErrors{{Field: "id", Message: "id must be a positive number"}}
	}

	emp, err := s.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.EmployeeResponse{}, err
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return employee.NewEmployeeResponse(emp), nil
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	req.NIK = strings.TrimSpace(req.NIK)
	req.FullName = strings.TrimSpace(req.FullName)
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	exists, err := s.ExistsByNIK(ctx, req.NIK)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check NIK: %w", err)
	}
	if exists {
		return employee.EmployeeResponse{}, employee.ErrNIKExists
	}

	created, err := s.Create(ctx, req.ToEntity())
	if err != nil {
		if errors.Is(err, employee.ErrNIKExists) {
			return employee.EmployeeResponse{}, err
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	entityType := "employee"
	s.activityService.Record(ctx, activitylog.Entry{
		UserID:       jwt.UserIDFromContext(ctx),
		ActivityType: activitylog.TypeCreate,
		Description:  fmt.Sprintf("Added employee %s", created.FullName),
		EntityType:   &entityType,
		EntityID:     &created.ID,
	})

	return employee.NewEmployeeResponse(created), nil
}

// DeleteEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id int64) error {
	if !validator.IsPositiveID(id) {
		return validator.ValidationErrors{{Field: "id", Message: "id must be a positive number"}}
	}

	emp, err := s.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return err
		}
		return fmt.Errorf("failed to get employee: %w", err)
	}

	if err := s.SoftDelete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	entityType := "employee"
	s.activityService.Record(ctx, activitylog.Entry{
		UserID:       jwt.UserIDFromContext(ctx),
		ActivityType: activitylog.TypeDelete,
		Description:  fmt.Sprintf("Deleted employee %s", emp.FullName),
		EntityType:   &entityType,
		EntityID:     &emp.ID,
	})

	return nil
}

// CheckNIK implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CheckNIK(ctx context.Context, nik string) (employee.CheckNIKResponse, error) {
	nik = strings.TrimSpace(nik)
	if !validator.IsValidNIK(nik) {
		return employee.CheckNIKResponse{}, validator.ValidationErrors{{Field: "nik", Message: employee.ErrInvalidNIK.Error()}}
	}

	exists, err := s.ExistsByNIK(ctx, nik)
	if err != nil {
		return employee.CheckNIKResponse{}, fmt.Errorf("failed to check NIK: %w", err)
	}

	return employee.CheckNIKResponse{NIK: nik, Available: !exists}, nil
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, filter employee.EmployeeFilter, now time.Time) (employee.ListEmployeeResponse, error) {
	if err := filter.Validate(); err != nil {
		return employee.ListEmployeeResponse{}, err
	}

	employees, total, err := s.List(ctx, filter)
	if err != nil {
		return employee.ListEmployeeResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	today := calendar.DateOf(now, s.loc)
	items := make([]employee.EmployeeListItem, 0, len(employees))
	for _, emp := range employees {
		items = append(items, employee.EmployeeListItem{
			EmployeeResponse: employee.NewEmployeeResponse(emp),
			Tenure:           Tenure(emp.HireDate, today),
		})
	}

	totalPages := int(math.Ceil(float64(total) / float64(filter.Limit)))
	showing := fmt.Sprintf("%d-%d of %d", (filter.Page-1)*filter.Limit+1, min(filter.Page*filter.Limit, int(total)), total)
	if total == 0 || len(items) == 0 {
		showing = fmt.Sprintf("0 of %d", total)
	}

	return employee.ListEmployeeResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
		Showing:    showing,
		Employees:  items,
	}, nil
}

// Tenure formats the whole years and months between hire and today as "2y 3m".
// Less than a month, or a hire date in the future, yields "0m".
func Tenure(hire, today time.Time) string {
	months := (today.Year()-hire.Year())*12 + int(today.Month()) - int(hire.Month())
	if today.Day() < hire.Day() {
		months--
	}
	if months <= 0 {
		return "0m"
	}

	years, rest := months/12, months%12
	switch {
	case years > 0 && rest > 0:
		return fmt.Sprintf("%dy %dm", years, rest)
	case years > 0:
		return fmt.Sprintf("%dy", years)
	default:
		return fmt.Sprintf("%dm", rest)
	}
}

// GetHistory implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetHistory(ctx context.Context, id int64) (employee.HistoryResponse, error) {
	if !validator.IsPositiveID(id) {
		return employee.HistoryResponse{}, validator.ValidationErrors{{Field: "id", Message: "id must be a positive number"}}
	}

	if _, err := s.GetByID(ctx, id); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.HistoryResponse{}, err
		}
		return employee.HistoryResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	records, err := s.historyRepo.ListByEmployee(ctx, id, historyLimit)
	if err != nil {
		return employee.HistoryResponse{}, fmt.Errorf("failed to list history: %w", err)
	}

	resp := employee.HistoryResponse{
		EmployeeID: id,
		Total:      len(records),
		Days:       []employee.HistoryDay{},
	}
	for _, rec := range records {
		day := rec.CreatedAt.In(s.loc).Format(calendar.DateLayout)
		if n := len(resp.Days); n == 0 || resp.Days[n-1].Date != day {
			resp.Days = append(resp.Days, employee.HistoryDay{Date: day})
		}
		last := &resp.Days[len(resp.Days)-1]
		last.Items = append(last.Items, toHistoryItem(rec, s.loc))
	}

	return resp, nil
}

func toHistoryItem(rec activitylog.HistoryRecord, loc *time.Location) employee.HistoryItem {
	return employee.HistoryItem{
		ID:           rec.ID,
		ActivityType: string(rec.ActivityType),
		Description:  rec.Description,
		Status:       string(rec.Status),
		CreatedAt:    rec.CreatedAt.In(loc).Format(time.RFC3339),
		User: employee.HistoryActor{
			Username: rec.Username,
			Name:     rec.ActorName,
		},
		EntityType: rec.EntityType,
		EntityID:   rec.EntityID,
		IPAddress:  rec.IPAddress,
		UserAgent:  rec.UserAgent,
	}
}

// GetPositionStats implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetPositionStats(ctx context.Context) (employee.PositionStatsResponse, error) {
	counts, err := s.CountByPosition(ctx)
	if err != nil {
		return employee.PositionStatsResponse{}, fmt.Errorf("failed to count positions: %w", err)
	}

	return SummarizePositions(counts), nil
}

// SummarizePositions folds headcount buckets into one entry per position,
// largest first and then by name.
func SummarizePositions(counts []employee.PositionCount) employee.PositionStatsResponse {
	byPosition := make(map[string]*employee.PositionStats)
	for _, c := range counts {
		stats, ok := byPosition[c.Position]
		if !ok {
			stats = &employee.PositionStats{
				Position:   c.Position,
				ByLocation: map[string]int{},
				ByStatus:   map[string]int{},
			}
			byPosition[c.Position] = stats
		}
		stats.Total += c.Count
		stats.ByLocation[c.Location] += c.Count
		stats.ByStatus[string(c.EmploymentStatus)] += c.Count
	}

	resp := employee.PositionStatsResponse{
		Positions:  make([]string, 0, len(byPosition)),
		Statistics: make([]employee.PositionStats, 0, len(byPosition)),
	}
	for _, stats := range byPosition {
		resp.Statistics = append(resp.Statistics, *stats)
	}
	sort.Slice(resp.Statistics, func(i, j int) bool {
		a, b := resp.Statistics[i], resp.Statistics[j]
		if a.Total != b.Total {
			return a.Total > b.Total
		}
		return a.Position < b.Position
	})
	for _, stats := range resp.Statistics {
		resp.Positions = append(resp.Positions, stats.Position)
	}
	return resp
}
