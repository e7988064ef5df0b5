package response

import (
	"errors"
	"net/http"

	"github.com/meridianhr/console-backend-go/internal/domain/auth"
	"github.com/meridianhr/console-backend-go/internal/domain/payrollrun"
	"github.com/meridianhr/console-backend-go/internal/domain/statement"
	"github.com/meridianhr/console-backend-go/internal/pkg/validator"
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
		Unauthorized(w, "Invalid credentials")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")

	// Payroll run domain errors
	case errors.Is(err, payrollrun.ErrRunNotFound):
		NotFound(w, "Payroll run not found")
	case errors.Is(err, payrollrun.ErrRosterUnavailable):
		BadGateway(w, err.Error())
	case errors.Is(err, payrollrun.ErrEmployeeNotInRun):
		NotFound(w, "Employee is not part of this payroll run")
	case errors.Is(err, payrollrun.ErrEmployeeNotEligible):
		BadRequest(w, "Employee has no compensation structure assigned", nil)
	case errors.Is(err, payrollrun.ErrRunAlreadyGenerated):
		Conflict(w, "Payroll run has already been generated")
	case errors.Is(err, payrollrun.ErrRunNotGenerated):
		Conflict(w, "Payroll run has not been generated yet")
	case errors.Is(err, payrollrun.ErrNoEmployeesSelected):
		BadRequest(w, "No eligible employees selected for generation", nil)

	// Statement domain errors
	case errors.Is(err, statement.ErrSlipNotFound):
		NotFound(w, "Salary slip not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
