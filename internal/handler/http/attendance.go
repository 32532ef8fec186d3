package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/sbexpress/hris-backend-go/internal/domain/attendance"
	"github.com/sbexpress/hris-backend-go/internal/handler/http/response"
	"github.com/sbexpress/hris-backend-go/internal/pkg/jwt"
)

type AttendanceHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	ListMonthly(w http.ResponseWriter, r *http.Request)
	GetSummary(w http.ResponseWriter, r *http.Request)
	GetWorkingDays(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
	now               func() time.Time
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
		now:               time.Now,
	}
}

// CheckIn handles POST /attendance/check-in
func (h *attendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	var req attendance.CheckInRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CheckIn decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.UserID = jwt.UserIDFromContext(r.Context())

	// Validate request
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	// Call service
	result, err := h.attendanceService.CheckIn(r.Context(), req, h.now())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Check in successful", result)
}

// ListMonthly handles GET /employees/{id}/attendance
func (h *attendanceHandlerImpl) ListMonthly(w http.ResponseWriter, r *http.Request) {
	employeeID, err := pathID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	filter := attendance.MonthlyFilter{EmployeeID: employeeID}
	for key, dst := range map[string]*int{
		"month": &filter.Month,
		"year":  &filter.Year,
		"page":  &filter.Page,
		"limit": &filter.Limit,
	} {
		if *dst, err = queryInt(r, key); err != nil {
			response.HandleError(w, err)
			return
		}
	}

	result, err := h.attendanceService.ListMonthly(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
		TotalPages: result.TotalPages,
		Showing:    result.Showing,
	})
}

// GetSummary handles GET /employees/{id}/attendance/summary
func (h *attendanceHandlerImpl) GetSummary(w http.ResponseWriter, r *http.Request) {
	employeeID, err := pathID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	req := attendance.SummaryRequest{EmployeeID: employeeID}
	if req.Month, err = queryInt(r, "month"); err != nil {
		response.HandleError(w, err)
		return
	}
	if req.Year, err = queryInt(r, "year"); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.GetSummary(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetWorkingDays handles GET /attendance/working-days
func (h *attendanceHandlerImpl) GetWorkingDays(w http.ResponseWriter, r *http.Request) {
	month, err := queryInt(r, "month")
	if err != nil {
		response.HandleError(w, err)
		return
	}
	year, err := queryInt(r, "year")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.GetWorkingDays(r.Context(), month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
