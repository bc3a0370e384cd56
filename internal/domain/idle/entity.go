package idle

import "time"

type Status string

const (
	StatusPending       Status = "pending"
	StatusSubmitted     Status = "submitted"
	StatusTicketCreated Status = "ticket_created"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusSubmitted, StatusTicketCreated:
		return true
	}
	return false
}

// Resolved reports whether the item has left the pending queue.
func (s Status) Resolved() bool {
	return s == StatusSubmitted || s == StatusTicketCreated
}

// Item is one employee-day record of excess idle time. Exactly one item
// exists per (employee, date) pair.
type Item struct {
	ID               string
	OrgID            string
	EmployeeID       string
	Date             time.Time
	IdleMinutes      int
	ThresholdMinutes int
	Status           Status
	Category         *string
	Subcategory      *string
	Reason           *string
	TicketID         *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Event is one raw idle interval reported for an employee. Detection sums
// events per (employee, day) before comparing against the threshold.
type Event struct {
	OrgID      string
	EmployeeID string
	Date       time.Time
	Minutes    int
}
