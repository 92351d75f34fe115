package response

import (
	"errors"
	"net/http"

	"github.com/tomato-writer-2024/PulseOpti-HR-sub007/internal/domain/employee"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrUnauthorized):
		Unauthorized(w, "Unauthorized to access this employee")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
