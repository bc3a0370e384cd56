package idle

import (
	"context"
	"time"
)

// Repository persists accountability items. Status-changing writes are
// compare-and-set against the item's current status so one submission applies
// at most one transition.
type Repository interface {
	// SumEventMinutes rolls up raw idle events into per-(employee, day)
	// totals for the window.
	SumEventMinutes(ctx context.Context, orgID string, from, to time.Time) ([]Event, error)

	// UpsertDetection creates the item for (employee, date) or refreshes
	// idle_minutes/threshold on the existing one. It never reverts the
	// status of an already-resolved item.
	UpsertDetection(ctx context.Context, item Item) (Item, error)

	GetByID(ctx context.Context, id string) (Item, error)

	// ListByEmployee returns all items for the employee within the
	// optional bounds, newest date first.
	ListByEmployee(ctx context.Context, orgID, employeeID string, from, to *time.Time) ([]Item, error)

	// SubmitReason persists the category/subcategory/reason triple and
	// advances status to submitted, but only while the current status is
	// one of allowed. Returns ErrItemNotEditable when the guard fails.
	SubmitReason(ctx context.Context, id, category, subcategory, reason string, allowed []Status) (Item, error)

	// AttachTicket moves a pending or submitted item to ticket_created.
	// The transition is monotonic; it fails once a ticket is attached.
	AttachTicket(ctx context.Context, id, ticketID string) (Item, error)
}
