package attendance

import (
	"time"

	"github.com/sbexpress/hris-backend-go/internal/pkg/validator"
)

// ========================================
// SUMMARY DTOs
// ========================================

// SummaryRequest selects an employee and month. Zero Month and Year default to the current month.
type SummaryRequest struct {
	EmployeeID int64 `json:"employee_id"`
	Month      int   `json:"month"`
	Year       int   `json:"year"`
}

func (r *SummaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsPositiveID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id must be a positive number",
		})
	}

	errs = append(errs, validatePeriod(r.Month, r.Year)...)

	if len(errs) > 0 {
		return errs
	}

	return nil
}

func validatePeriod(month, year int) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if !validator.IsValidMonth(month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if !validator.IsValidYear(year) {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be between 1900 and 9999",
		})
	}

	return errs
}

// ValidatePeriod checks a month/year pair.
func ValidatePeriod(month, year int) error {
	if errs := validatePeriod(month, year); len(errs) > 0 {
		return errs
	}
	return nil
}

// AttendanceSummary is the monthly rollup of one employee's attendance.
// JSON keys follow the labels used by the existing front end.
type AttendanceSummary struct {
	EmployeeID     int64    `json:"employee_id"`
	Month          int      `json:"month"`
	Year           int      `json:"year"`
	Present        int      `json:"hadir"`
	Permission     int      `json:"ijin"`
	Sick           int      `json:"sakit"`
	Leave          int      `json:"cuti"`
	Overtime       int      `json:"lembur"`
	DaysPresent    int      `json:"total_hari"`
	Late           int      `json:"telat"`
	WorkingDays    int      `json:"working_days"`
	Absent         int      `json:"absent"`
	AttendanceRate float64  `json:"attendance_rate"`
	Anomalies      []string `json:"anomalies,omitempty"`
}

type WorkingDaysResponse struct {
	Month       int `json:"month"`
	Year        int `json:"year"`
	WorkingDays int `json:"working_days"`
}

// ========================================
// CHECK-IN DTOs
// ========================================

type CheckInRequest struct {
	EmployeeID int64   `json:"employee_id"`
	Status     string  `json:"status"`
	Note       *string `json:"note,omitempty"`

	// set by the handler from the authenticated session
	UserID *int64 `json:"-"`
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsPositiveID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id must be a positive number",
		})
	}

	if r.Status == "" {
		r.Status = string(StatusPresent)
	}
	if !Status(r.Status).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: present, permission, sick, leave, overtime",
		})
	}

	if r.Note != nil && len(*r.Note) > 500 {
		errs = append(errs, validator.ValidationError{
			Field:   "note",
			Message: "note must not exceed 500 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AttendanceResponse struct {
	ID          int64   `json:"id"`
	EmployeeID  int64   `json:"employee_id"`
	Date        string  `json:"date"`
	Status      string  `json:"status"`
	CheckedInAt *string `json:"checked_in_at,omitempty"`
	IsLate      bool    `json:"is_late"`
	Note        *string `json:"note,omitempty"`
	CreatedAt   string  `json:"created_at"`
}

// ========================================
// LISTING DTOs
// ========================================

type MonthlyFilter struct {
	EmployeeID int64 `json:"employee_id"`
	Month      int   `json:"month"`
	Year       int   `json:"year"`

	// Pagination
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *MonthlyFilter) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsPositiveID(f.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id must be a positive number",
		})
	}

	errs = append(errs, validatePeriod(f.Month, f.Year)...)

	// Page validation
	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1 // Default page
	}

	// Limit validation
	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 10 // Default limit
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListAttendanceResponse struct {
	TotalCount  int64                `json:"total_count"`
	Page        int                  `json:"page"`
	Limit       int                  `json:"limit"`
	TotalPages  int                  `json:"total_pages"`
	Showing     string               `json:"showing"`
	Attendances []AttendanceResponse `json:"attendances"`
	Summary     AttendanceSummary    `json:"summary"`
}

// NewAttendanceResponse maps a record; isLate is decided by the caller's policy.
func NewAttendanceResponse(a Attendance, isLate bool, loc *time.Location) AttendanceResponse {
	resp := AttendanceResponse{
		ID:         a.ID,
		EmployeeID: a.EmployeeID,
		Date:       a.Date.Format("2006-01-02"),
		Status:     string(a.Status),
		IsLate:     isLate,
		Note:       a.Note,
		CreatedAt:  a.CreatedAt.Format(time.RFC3339),
	}
	if a.CheckedInAt != nil {
		s := a.CheckedInAt.In(loc).Format("15:04:05")
		resp.CheckedInAt = &s
	}
	return resp
}
