package idle

import (
	"github.com/worklens/worklens-backend-go/internal/pkg/validator"
)

type SubmitReasonRequest struct {
	Category    string `json:"category"`
	Subcategory string `json:"subcategory"`
	Reason      string `json:"reason"`
}

func (r *SubmitReasonRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Category) {
		errs = append(errs, validator.ValidationError{
			Field:   "category",
			Message: "category is required",
		})
	}
	if validator.IsEmpty(r.Subcategory) {
		errs = append(errs, validator.ValidationError{
			Field:   "subcategory",
			Message: "subcategory is required",
		})
	}
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// MyItemsRequest scopes the accountability queues to the authenticated
// employee. Date bounds are optional; unparseable bounds constrain nothing.
type MyItemsRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type ItemRow struct {
	ID               string `json:"id"`
	EmployeeID       string `json:"employee_id"`
	Date             string `json:"date"`
	IdleMinutes      int    `json:"idle_minutes"`
	ThresholdMinutes int    `json:"threshold_minutes"`
	Status           string `json:"status"`
	Category         string `json:"category,omitempty"`
	Subcategory      string `json:"subcategory,omitempty"`
	Reason           string `json:"reason,omitempty"`
	TicketID         string `json:"ticket_id,omitempty"`
}

// MyItemsResponse holds the two mutually exclusive queues: every surfaced
// item appears in exactly one of them.
type MyItemsResponse struct {
	Pending  []ItemRow `json:"pending"`
	Resolved []ItemRow `json:"resolved"`
}
