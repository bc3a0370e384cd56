package idle

import (
	"context"
	"time"
)

// Service enforces the accountability item lifecycle.
type Service interface {
	// GetMyItems returns the pending and resolved queues for the
	// authenticated employee. Items at or under the pending floor are
	// never surfaced in the pending queue.
	GetMyItems(ctx context.Context, req MyItemsRequest) (MyItemsResponse, error)

	// SubmitReason validates the triple against the category taxonomy and
	// advances the item to submitted. Idempotent for already-submitted
	// items; rejected once a ticket exists.
	SubmitReason(ctx context.Context, itemID string, req SubmitReasonRequest) (ItemRow, error)

	// RecordDetection upserts the item for (employee, date) with the
	// summed idle minutes. Used by the detection sweep.
	RecordDetection(ctx context.Context, orgID, employeeID string, date time.Time, idleMinutes int) (Item, error)

	// AttachTicket applies the external escalation event.
	AttachTicket(ctx context.Context, itemID, ticketID string) (Item, error)
}
