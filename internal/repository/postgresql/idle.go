package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/worklens/worklens-backend-go/internal/domain/idle"
	"github.com/worklens/worklens-backend-go/internal/pkg/database"
)

type idleRepositoryImpl struct {
	db *database.DB
}

func NewIdleRepository(db *database.DB) idle.Repository {
	return &idleRepositoryImpl{db: db}
}

const idleItemColumns = `
	id, org_id, employee_id, date, idle_minutes, threshold_minutes,
	status, category, subcategory, reason, ticket_id, created_at, updated_at
`

func scanIdleItem(row pgx.Row) (idle.Item, error) {
	var item idle.Item
	err := row.Scan(
		&item.ID,
		&item.OrgID,
		&item.EmployeeID,
		&item.Date,
		&item.IdleMinutes,
		&item.ThresholdMinutes,
		&item.Status,
		&item.Category,
		&item.Subcategory,
		&item.Reason,
		&item.TicketID,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	return item, err
}

func (r *idleRepositoryImpl) SumEventMinutes(ctx context.Context, orgID string, from, to time.Time) ([]idle.Event, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT org_id, employee_id, date, SUM(minutes)::int
		FROM idle_events
		WHERE org_id = $1 AND date >= $2 AND date <= $3
		GROUP BY org_id, employee_id, date
		ORDER BY date ASC, employee_id ASC
	`, orgID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query idle events: %w", err)
	}
	defer rows.Close()

	var events []idle.Event
	for rows.Next() {
		var ev idle.Event
		if err := rows.Scan(&ev.OrgID, &ev.EmployeeID, &ev.Date, &ev.Minutes); err != nil {
			return nil, fmt.Errorf("failed to scan idle event: %w", err)
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read idle events: %w", err)
	}

	return events, nil
}

// UpsertDetection inserts the item for (org, employee, date) or refreshes the
// measured minutes on the existing row. Status is only written on insert so a
// resolved item never reverts.
func (r *idleRepositoryImpl) UpsertDetection(ctx context.Context, item idle.Item) (idle.Item, error) {
	q := GetQuerier(ctx, r.db)

	row := q.QueryRow(ctx, `
		INSERT INTO idle_items (
			id, org_id, employee_id, date, idle_minutes, threshold_minutes,
			status, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		ON CONFLICT (org_id, employee_id, date) DO UPDATE SET
			idle_minutes = EXCLUDED.idle_minutes,
			threshold_minutes = EXCLUDED.threshold_minutes,
			updated_at = NOW()
		RETURNING `+idleItemColumns,
		item.ID, item.OrgID, item.EmployeeID, item.Date,
		item.IdleMinutes, item.ThresholdMinutes, item.Status,
	)

	saved, err := scanIdleItem(row)
	if err != nil {
		return idle.Item{}, fmt.Errorf("failed to upsert idle item: %w", err)
	}
	return saved, nil
}

func (r *idleRepositoryImpl) GetByID(ctx context.Context, id string) (idle.Item, error) {
	q := GetQuerier(ctx, r.db)

	item, err := scanIdleItem(q.QueryRow(ctx,
		`SELECT `+idleItemColumns+` FROM idle_items WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return idle.Item{}, idle.ErrItemNotFound
		}
		return idle.Item{}, fmt.Errorf("failed to get idle item: %w", err)
	}
	return item, nil
}

func (r *idleRepositoryImpl) ListByEmployee(ctx context.Context, orgID, employeeID string, from, to *time.Time) ([]idle.Item, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + idleItemColumns + ` FROM idle_items WHERE org_id = $1 AND employee_id = $2`
	args := []interface{}{orgID, employeeID}

	if from != nil {
		args = append(args, *from)
		query += fmt.Sprintf(" AND date >= $%d", len(args))
	}
	if to != nil {
		args = append(args, *to)
		query += fmt.Sprintf(" AND date <= $%d", len(args))
	}
	query += " ORDER BY date DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query idle items: %w", err)
	}
	defer rows.Close()

	var items []idle.Item
	for rows.Next() {
		item, err := scanIdleItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan idle item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read idle items: %w", err)
	}

	return items, nil
}

// SubmitReason is a compare-and-set: the row is only updated while its status
// is still one of allowed, which serializes concurrent submissions for the
// same item.
func (r *idleRepositoryImpl) SubmitReason(ctx context.Context, id, category, subcategory, reason string, allowed []idle.Status) (idle.Item, error) {
	q := GetQuerier(ctx, r.db)

	allowedStrs := make([]string, 0, len(allowed))
	for _, s := range allowed {
		allowedStrs = append(allowedStrs, string(s))
	}

	row := q.QueryRow(ctx, `
		UPDATE idle_items SET
			category = $2,
			subcategory = $3,
			reason = $4,
			status = $5,
			updated_at = NOW()
		WHERE id = $1 AND status = ANY($6)
		RETURNING `+idleItemColumns,
		id, category, subcategory, reason, idle.StatusSubmitted, allowedStrs,
	)

	item, err := scanIdleItem(row)
	if err == nil {
		return item, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return idle.Item{}, fmt.Errorf("failed to submit reason: %w", err)
	}

	// Guard failed: distinguish a missing item from one past self-resolution.
	if _, getErr := r.GetByID(ctx, id); getErr != nil {
		return idle.Item{}, getErr
	}
	return idle.Item{}, idle.ErrItemNotEditable
}

// AttachTicket escalates the item. Monotonic: once a ticket exists the write
// never applies again.
func (r *idleRepositoryImpl) AttachTicket(ctx context.Context, id, ticketID string) (idle.Item, error) {
	q := GetQuerier(ctx, r.db)

	row := q.QueryRow(ctx, `
		UPDATE idle_items SET
			status = $2,
			ticket_id = $3,
			updated_at = NOW()
		WHERE id = $1 AND ticket_id IS NULL AND status = ANY($4)
		RETURNING `+idleItemColumns,
		id, idle.StatusTicketCreated, ticketID,
		[]string{string(idle.StatusPending), string(idle.StatusSubmitted)},
	)

	item, err := scanIdleItem(row)
	if err == nil {
		return item, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return idle.Item{}, fmt.Errorf("failed to attach ticket: %w", err)
	}

	if _, getErr := r.GetByID(ctx, id); getErr != nil {
		return idle.Item{}, getErr
	}
	return idle.Item{}, idle.ErrTicketAttached
}
