package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/sbexpress/hris-backend-go/internal/domain/activitylog"
	"github.com/sbexpress/hris-backend-go/internal/domain/employee"
	"github.com/sbexpress/hris-backend-go/internal/handler/http/response"
	"github.com/sbexpress/hris-backend-go/internal/pkg/validator"
)

type EmployeeHandler interface {
	ListEmployees(w http.ResponseWriter, r *http.Request)
	GetEmployee(w http.ResponseWriter, r *http.Request)
	GetHistory(w http.ResponseWriter, r *http.Request)
	GetPositionStats(w http.ResponseWriter, r *http.Request)
	CreateEmployee(w http.ResponseWriter, r *http.Request)
	DeleteEmployee(w http.ResponseWriter, r *http.Request)
	CheckNIK(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService employee.EmployeeService
	activityService activitylog.ActivityLogService
	now             func() time.Time
}

func NewEmployeeHandler(employeeService employee.EmployeeService, activityService activitylog.ActivityLogService) EmployeeHandler {
	return &employeeHandlerImpl{
		employeeService: employeeService,
		activityService: activityService,
		now:             time.Now,
	}
}

// ListEmployees implements EmployeeHandler
func (h *employeeHandlerImpl) ListEmployees(w http.ResponseWriter, r *http.Request) {
	filter := employee.EmployeeFilter{}
	query := r.URL.Query()

	// Search
	if search := strings.TrimSpace(query.Get("search")); search != "" {
		filter.Search = &search
	}

	// Filters
	if location := query.Get("location"); location != "" {
		filter.Location = &location
	}
	if status := query.Get("employment_status"); status != "" {
		filter.EmploymentStatus = &status
	}
	if position := query.Get("position"); position != "" {
		filter.Position = &position
	}

	// Pagination
	page, err := queryInt(r, "page")
	if err != nil {
		response.HandleError(w, err)
		return
	}
	limit, err := queryInt(r, "limit")
	if err != nil {
		response.HandleError(w, err)
		return
	}
	filter.Page = page
	filter.Limit = limit

	// Sorting
	filter.SortBy = query.Get("sort_by")
	filter.SortOrder = query.Get("sort_order")

	result, err := h.employeeService.ListEmployees(r.Context(), filter, h.now())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	h.activityService.Record(r.Context(), viewEntry(r, "Viewed employee list"))

	response.SuccessWithMeta(w, result, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
		TotalPages: result.TotalPages,
		Showing:    result.Showing,
	})
}

// GetHistory implements EmployeeHandler
func (h *employeeHandlerImpl) GetHistory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.employeeService.GetHistory(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	entry := viewEntry(r, "Viewed employee history")
	entityType := "employee"
	entry.EntityType = &entityType
	entry.EntityID = &id
	h.activityService.Record(r.Context(), entry)

	response.Success(w, result)
}

// GetPositionStats implements EmployeeHandler
func (h *employeeHandlerImpl) GetPositionStats(w http.ResponseWriter, r *http.Request) {
	result, err := h.employeeService.GetPositionStats(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetEmployee implements EmployeeHandler
func (h *employeeHandlerImpl) GetEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.employeeService.GetEmployee(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	entry := viewEntry(r, fmt.Sprintf("Viewed employee %s", result.NIK))
	entityType := "employee"
	entry.EntityType = &entityType
	entry.EntityID = &id
	h.activityService.Record(r.Context(), entry)

	response.Success(w, result)
}

// CreateEmployee implements EmployeeHandler
func (h *employeeHandlerImpl) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateEmployee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.employeeService.CreateEmployee(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee created successfully", result)
}

// DeleteEmployee implements EmployeeHandler
func (h *employeeHandlerImpl) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.employeeService.DeleteEmployee(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee deleted successfully", nil)
}

// CheckNIK implements EmployeeHandler
func (h *employeeHandlerImpl) CheckNIK(w http.ResponseWriter, r *http.Request) {
	nik := r.URL.Query().Get("nik")
	if !validator.IsValidNIK(nik) {
		response.HandleError(w, validator.ValidationErrors{{
			Field:   "nik",
			Message: employee.ErrInvalidNIK.Error(),
		}})
		return
	}

	result, err := h.employeeService.CheckNIK(r.Context(), nik)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
