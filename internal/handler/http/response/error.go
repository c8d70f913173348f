package response

import (
	"errors"
	"net/http"

	"github.com/kmsteel/hr-backend-go/internal/domain/attendance"
	"github.com/kmsteel/hr-backend-go/internal/domain/employee"
	"github.com/kmsteel/hr-backend-go/internal/domain/payroll"
	"github.com/kmsteel/hr-backend-go/internal/pkg/validator"
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
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrNotHourlyPaid):
		BadRequest(w, "Employee is not hourly paid", nil)
	case errors.Is(err, payroll.ErrHourlyRateMissing):
		BadRequest(w, "Employee has no hourly rate on file", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
