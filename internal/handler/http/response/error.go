package response

import (
	"errors"
	"net/http"

	"github.com/worklens/worklens-backend-go/internal/domain/idle"
	"github.com/worklens/worklens-backend-go/internal/domain/report"
	"github.com/worklens/worklens-backend-go/internal/domain/task"
	"github.com/worklens/worklens-backend-go/internal/domain/user"
	"github.com/worklens/worklens-backend-go/internal/pkg/validator"
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
	// Report domain errors
	case errors.Is(err, report.ErrNoDataFound):
		NotFound(w, "No data found for the specified cell")
	case errors.Is(err, report.ErrInvalidHorizon):
		BadRequest(w, "Horizon must be one of daily, weekly, monthly", nil)
	case errors.Is(err, task.ErrTaskNotFound):
		NotFound(w, "Task not found")

	// Idle accountability domain errors
	case errors.Is(err, idle.ErrItemNotFound):
		NotFound(w, "Idle item not found")
	case errors.Is(err, idle.ErrUnknownCategory):
		Conflict(w, "Unknown reason category")
	case errors.Is(err, idle.ErrInvalidSubcategory):
		Conflict(w, "Subcategory does not belong to the given category")
	case errors.Is(err, idle.ErrItemNotEditable):
		Conflict(w, "Item no longer accepts reason submissions")
	case errors.Is(err, idle.ErrTicketAttached):
		Conflict(w, "Ticket already attached to item")

	// Identity errors
	case errors.Is(err, user.ErrIdentityMissing):
		Unauthorized(w, "Employee identity missing from token")
	case errors.Is(err, user.ErrCapabilityRequired):
		Forbidden(w, "Insufficient permissions")

	// Default: upstream or unexpected failure
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
