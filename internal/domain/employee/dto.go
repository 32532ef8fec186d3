package employee

import (
	"strings"
	"time"

	"github.com/sbexpress/hris-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	NIK              string  `json:"nik"`
	FullName         string  `json:"full_name"`
	Position         string  `json:"position"`
	Location         string  `json:"location"`
	EmploymentStatus string  `json:"employment_status"`
	DOB              *string `json:"dob,omitempty"`
	HireDate         string  `json:"hire_date"`
	ContractStart    *string `json:"contract_start,omitempty"`
	ContractEnd      *string `json:"contract_end,omitempty"`
	Performance      *string `json:"performance,omitempty"`
}

// Validate checks the request and enforces the contract invariant:
// contract employees need both dates and the end strictly after the start.
func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidNIK(r.NIK) {
		errs = append(errs, validator.ValidationError{
			Field:   "nik",
			Message: ErrInvalidNIK.Error(),
		})
	}

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}

	if validator.IsEmpty(r.Position) {
		errs = append(errs, validator.ValidationError{
			Field:   "position",
			Message: "position is required",
		})
	}

	if validator.IsEmpty(r.Location) {
		errs = append(errs, validator.ValidationError{
			Field:   "location",
			Message: "location is required",
		})
	}

	status := EmploymentStatus(r.EmploymentStatus)
	if !status.IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "employment_status",
			Message: "employment_status must be one of: contract, permanent, freelance, intern, terminated",
		})
	}

	if _, valid := validator.IsValidDate(r.HireDate); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "hire_date",
			Message: "hire_date must be in YYYY-MM-DD format",
		})
	}

	if r.DOB != nil && *r.DOB != "" {
		if _, valid := validator.IsValidDate(*r.DOB); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "dob",
				Message: "dob must be in YYYY-MM-DD format",
			})
		}
	}

	var start, end time.Time
	var startOK, endOK bool
	if r.ContractStart != nil && *r.ContractStart != "" {
		if start, startOK = validator.IsValidDate(*r.ContractStart); !startOK {
			errs = append(errs, validator.ValidationError{
				Field:   "contract_start",
				Message: "contract_start must be in YYYY-MM-DD format",
			})
		}
	}
	if r.ContractEnd != nil && *r.ContractEnd != "" {
		if end, endOK = validator.IsValidDate(*r.ContractEnd); !endOK {
			errs = append(errs, validator.ValidationError{
				Field:   "contract_end",
				Message: "contract_end must be in YYYY-MM-DD format",
			})
		}
	}

	if status == EmploymentStatusContract {
		if r.ContractStart == nil || *r.ContractStart == "" {
			errs = append(errs, validator.ValidationError{
				Field:   "contract_start",
				Message: "contract_start is required for contract employees",
			})
		}
		if r.ContractEnd == nil || *r.ContractEnd == "" {
			errs = append(errs, validator.ValidationError{
				Field:   "contract_end",
				Message: "contract_end is required for contract employees",
			})
		} else if startOK && endOK && !end.After(start) {
			errs = append(errs, validator.ValidationError{
				Field:   "contract_end",
				Message: ErrInvalidContractEnd.Error(),
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ToEntity converts a validated request into an Employee.
func (r *CreateEmployeeRequest) ToEntity() Employee {
	e := Employee{
		NIK:              r.NIK,
		FullName:         r.FullName,
		Position:         r.Position,
		Location:         r.Location,
		EmploymentStatus: EmploymentStatus(r.EmploymentStatus),
		Performance:      r.Performance,
	}
	e.HireDate, _ = validator.IsValidDate(r.HireDate)
	e.DOB = parseOptionalDate(r.DOB)
	e.ContractStart = parseOptionalDate(r.ContractStart)
	e.ContractEnd = parseOptionalDate(r.ContractEnd)
	return e
}

func parseOptionalDate(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	d, ok := validator.IsValidDate(*s)
	if !ok {
		return nil
	}
	return &d
}

type EmployeeResponse struct {
	ID               int64   `json:"id"`
	NIK              string  `json:"nik"`
	FullName         string  `json:"full_name"`
	Position         string  `json:"position"`
	Location         string  `json:"location"`
	EmploymentStatus string  `json:"employment_status"`
	DOB              *string `json:"dob,omitempty"`
	HireDate         string  `json:"hire_date"`
	ContractStart    *string `json:"contract_start,omitempty"`
	ContractEnd      *string `json:"contract_end,omitempty"`
	Performance      *string `json:"performance,omitempty"`
	CreatedAt        string  `json:"created_at"`
	UpdatedAt        string  `json:"updated_at"`
}

// NewEmployeeResponse maps an entity to its API representation.
func NewEmployeeResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:               e.ID,
		NIK:              e.NIK,
		FullName:         e.FullName,
		Position:         e.Position,
		Location:         e.Location,
		EmploymentStatus: string(e.EmploymentStatus),
		DOB:              formatOptionalDate(e.DOB),
		HireDate:         e.HireDate.Format("2006-01-02"),
		ContractStart:    formatOptionalDate(e.ContractStart),
		ContractEnd:      formatOptionalDate(e.ContractEnd),
		Performance:      e.Performance,
		CreatedAt:        e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        e.UpdatedAt.Format(time.RFC3339),
	}
}

func formatOptionalDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}

type CheckNIKResponse struct {
	NIK       string `json:"nik"`
	Available bool   `json:"available"`
}

// ========================================
// LIST DTOs
// ========================================

type EmployeeFilter struct {
	// Search matches NIK or full name
	Search           *string `json:"search,omitempty"`
	Location         *string `json:"location,omitempty"`
	EmploymentStatus *string `json:"employment_status,omitempty"`
	Position         *string `json:"position,omitempty"`

	// Pagination
	Page  int `json:"page"`
	Limit int `json:"limit"`

	// Sorting
	SortBy    string `json:"sort_by,omitempty"`
	SortOrder string `json:"sort_order,omitempty"`
}

var sortableColumns = []string{"nik", "full_name", "position", "location", "employment_status", "hire_date", "contract_end", "performance"}

func (f *EmployeeFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.EmploymentStatus != nil && !EmploymentStatus(*f.EmploymentStatus).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "employment_status",
			Message: "employment_status must be one of: contract, permanent, freelance, intern, terminated",
		})
	}

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1
	}

	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 10
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	if f.SortBy != "" && !validator.IsInSlice(f.SortBy, sortableColumns) {
		errs = append(errs, validator.ValidationError{
			Field:   "sort_by",
			Message: "sort_by must be one of: " + strings.Join(sortableColumns, ", "),
		})
	}

	if f.SortOrder != "" && !validator.IsInSlice(strings.ToLower(f.SortOrder), []string{"asc", "desc"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "sort_order",
			Message: "sort_order must be asc or desc",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeListItem struct {
	EmployeeResponse
	// Tenure is the time since hire, e.g. "2y 3m"
	Tenure string `json:"tenure"`
}

type ListEmployeeResponse struct {
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	TotalPages int                `json:"total_pages"`
	Showing    string             `json:"showing"`
	Employees  []EmployeeListItem `json:"employees"`
}

// ========================================
// HISTORY DTOs
// ========================================

type HistoryActor struct {
	Username *string `json:"username"`
	Name     *string `json:"name"`
}

type HistoryItem struct {
	ID           int64        `json:"id"`
	ActivityType string       `json:"activity_type"`
	Description  string       `json:"description"`
	Status       string       `json:"status"`
	CreatedAt    string       `json:"created_at"`
	User         HistoryActor `json:"user"`
	EntityType   *string      `json:"entity_type,omitempty"`
	EntityID     *int64       `json:"entity_id,omitempty"`
	IPAddress    *string      `json:"ip_address,omitempty"`
	UserAgent    *string      `json:"user_agent,omitempty"`
}

// HistoryDay groups the history of one local calendar day, newest first.
type HistoryDay struct {
	Date  string        `json:"date"`
	Items []HistoryItem `json:"items"`
}

type HistoryResponse struct {
	EmployeeID int64        `json:"employee_id"`
	Total      int          `json:"total"`
	Days       []HistoryDay `json:"days"`
}

// ========================================
// POSITION DTOs
// ========================================

type PositionStats struct {
	Position   string         `json:"position"`
	Total      int            `json:"total"`
	ByLocation map[string]int `json:"by_location"`
	ByStatus   map[string]int `json:"by_status"`
}

type PositionStatsResponse struct {
	Positions  []string        `json:"positions"`
	Statistics []PositionStats `json:"statistics"`
}
