package idle

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"

	"github.com/worklens/worklens-backend-go/internal/domain/idle"
	"github.com/worklens/worklens-backend-go/internal/domain/reference"
	"github.com/worklens/worklens-backend-go/internal/pkg/timefmt"
	"github.com/worklens/worklens-backend-go/internal/pkg/validator"
)

type IdleServiceImpl struct {
	idleRepo idle.Repository
	refRepo  reference.Repository

	thresholdMinutes int
	floorMinutes     int

	// Per-item locks serialize status transitions for one id so at most
	// one state change applies per submission. The repository's
	// compare-and-set backs this across processes.
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewIdleService(idleRepo idle.Repository, refRepo reference.Repository, thresholdMinutes, floorMinutes int) idle.Service {
	return &IdleServiceImpl{
		idleRepo:         idleRepo,
		refRepo:          refRepo,
		thresholdMinutes: thresholdMinutes,
		floorMinutes:     floorMinutes,
		locks:            make(map[string]*sync.Mutex),
	}
}

func (s *IdleServiceImpl) itemLock(id string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	if l, ok := s.locks[id]; ok {
		return l
	}
	l := &sync.Mutex{}
	s.locks[id] = l
	return l
}

// identityFromContext extracts org_id and employee_id from JWT claims
func (s *IdleServiceImpl) identityFromContext(ctx context.Context) (orgID, employeeID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	orgID, ok := claims["org_id"].(string)
	if !ok || orgID == "" {
		return "", "", fmt.Errorf("org_id claim is missing or invalid")
	}
	employeeID, ok = claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", "", fmt.Errorf("employee_id claim is missing or invalid")
	}
	return orgID, employeeID, nil
}

func itemRow(item idle.Item) idle.ItemRow {
	row := idle.ItemRow{
		ID:               item.ID,
		EmployeeID:       item.EmployeeID,
		Date:             item.Date.Format(timefmt.DateLayout),
		IdleMinutes:      item.IdleMinutes,
		ThresholdMinutes: item.ThresholdMinutes,
		Status:           string(item.Status),
	}
	if item.Category != nil {
		row.Category = *item.Category
	}
	if item.Subcategory != nil {
		row.Subcategory = *item.Subcategory
	}
	if item.Reason != nil {
		row.Reason = *item.Reason
	}
	if item.TicketID != nil {
		row.TicketID = *item.TicketID
	}
	return row
}

// GetMyItems partitions the employee's items into the pending and resolved
// queues. Pending requires idle minutes above both the item's recorded
// threshold and the surfacing floor; everything resolved goes to the other
// queue, so a surfaced item appears in exactly one of the two.
func (s *IdleServiceImpl) GetMyItems(ctx context.Context, req idle.MyItemsRequest) (idle.MyItemsResponse, error) {
	orgID, employeeID, err := s.identityFromContext(ctx)
	if err != nil {
		return idle.MyItemsResponse{}, err
	}

	var from, to *time.Time
	if f, ok := validator.ParseDateBound(req.StartDate); ok {
		from = &f
	}
	if t, ok := validator.ParseDateBound(req.EndDate); ok {
		to = &t
	}

	items, err := s.idleRepo.ListByEmployee(ctx, orgID, employeeID, from, to)
	if err != nil {
		return idle.MyItemsResponse{}, fmt.Errorf("failed to get idle items: %w", err)
	}

	resp := idle.MyItemsResponse{
		Pending:  []idle.ItemRow{},
		Resolved: []idle.ItemRow{},
	}
	for _, item := range items {
		switch {
		case item.Status.Resolved():
			resp.Resolved = append(resp.Resolved, itemRow(item))
		case item.IdleMinutes > item.ThresholdMinutes && item.IdleMinutes > s.floorMinutes:
			resp.Pending = append(resp.Pending, itemRow(item))
		}
	}
	return resp, nil
}

// SubmitReason validates the triple against the taxonomy and advances the
// item to submitted. Either the full triple is recorded and the status
// advances, or nothing changes.
func (s *IdleServiceImpl) SubmitReason(ctx context.Context, itemID string, req idle.SubmitReasonRequest) (idle.ItemRow, error) {
	if err := req.Validate(); err != nil {
		return idle.ItemRow{}, err
	}

	orgID, employeeID, err := s.identityFromContext(ctx)
	if err != nil {
		return idle.ItemRow{}, err
	}

	taxonomy, err := s.refRepo.GetTaxonomy(ctx, orgID)
	if err != nil {
		return idle.ItemRow{}, fmt.Errorf("failed to get category taxonomy: %w", err)
	}
	category, ok := taxonomy.Find(req.Category)
	if !ok {
		return idle.ItemRow{}, idle.ErrUnknownCategory
	}
	if !category.HasSubcategory(req.Subcategory) {
		return idle.ItemRow{}, idle.ErrInvalidSubcategory
	}

	lock := s.itemLock(itemID)
	lock.Lock()
	defer lock.Unlock()

	item, err := s.idleRepo.GetByID(ctx, itemID)
	if err != nil {
		return idle.ItemRow{}, err
	}
	if item.OrgID != orgID || item.EmployeeID != employeeID {
		return idle.ItemRow{}, idle.ErrItemNotFound
	}
	if item.Status == idle.StatusTicketCreated {
		return idle.ItemRow{}, idle.ErrItemNotEditable
	}

	// Submitting again while already submitted just updates the triple;
	// the status stays submitted.
	updated, err := s.idleRepo.SubmitReason(ctx, itemID, req.Category, req.Subcategory, req.Reason,
		[]idle.Status{idle.StatusPending, idle.StatusSubmitted})
	if err != nil {
		return idle.ItemRow{}, err
	}
	return itemRow(updated), nil
}

// RecordDetection upserts the accountability item for (employee, date).
// Re-detection refreshes the measured minutes but never reverts a resolved
// item's status.
func (s *IdleServiceImpl) RecordDetection(ctx context.Context, orgID, employeeID string, date time.Time, idleMinutes int) (idle.Item, error) {
	item := idle.Item{
		ID:               uuid.NewString(),
		OrgID:            orgID,
		EmployeeID:       employeeID,
		Date:             timefmt.Day(date),
		IdleMinutes:      idleMinutes,
		ThresholdMinutes: s.thresholdMinutes,
		Status:           idle.StatusPending,
	}

	saved, err := s.idleRepo.UpsertDetection(ctx, item)
	if err != nil {
		return idle.Item{}, fmt.Errorf("failed to record detection: %w", err)
	}
	return saved, nil
}

// AttachTicket applies the external escalation event for an item.
func (s *IdleServiceImpl) AttachTicket(ctx context.Context, itemID, ticketID string) (idle.Item, error) {
	lock := s.itemLock(itemID)
	lock.Lock()
	defer lock.Unlock()

	item, err := s.idleRepo.AttachTicket(ctx, itemID, ticketID)
	if err != nil {
		return idle.Item{}, err
	}
	return item, nil
}
