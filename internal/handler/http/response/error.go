package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/sbexpress/hris-backend-go/internal/domain/attendance"
	"github.com/sbexpress/hris-backend-go/internal/domain/auth"
	"github.com/sbexpress/hris-backend-go/internal/domain/contract"
	"github.com/sbexpress/hris-backend-go/internal/domain/employee"
	"github.com/sbexpress/hris-backend-go/internal/domain/user"
	"github.com/sbexpress/hris-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, user.ErrInsufficientPermissions):
		Forbidden(w, "Insufficient permissions")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrNIKExists):
		Conflict(w, "NIK already registered")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance not found")
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "Attendance already recorded for today")

	// Contract domain errors
	case errors.Is(err, contract.ErrNotContractEmployee):
		ValidationError(w, map[string]string{"employee_id": err.Error()})
	case errors.Is(err, contract.ErrMissingContractEnd):
		ValidationError(w, map[string]string{"contract_end": err.Error()})

	// Default
	default:
		slog.Error("unhandled error", "error", err)
		InternalServerError(w, "Data access failed")
	}
}
