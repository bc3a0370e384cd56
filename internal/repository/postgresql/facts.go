package postgresql

import (
	"context"
	"fmt"

	"github.com/worklens/worklens-backend-go/internal/domain/report"
	"github.com/worklens/worklens-backend-go/internal/domain/task"
	"github.com/worklens/worklens-backend-go/internal/domain/timelog"
	"github.com/worklens/worklens-backend-go/internal/pkg/database"
)

type factRepositoryImpl struct {
	db *database.DB
}

func NewFactRepository(db *database.DB) report.FactRepository {
	return &factRepositoryImpl{db: db}
}

// ListTasks returns task records for the org, coarsely bounded by created-at
// day. Fine-grained filtering happens in the service's filter pipeline so
// summary and drill-down share one fact set.
func (r *factRepositoryImpl) ListTasks(ctx context.Context, orgID string, w report.Window) ([]task.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			t.id,
			t.org_id,
			t.title,
			t.status,
			t.priority,
			COALESCE(t.department, ''),
			COALESCE(t.assignee, ''),
			COALESCE(t.label, ''),
			t.created_at,
			t.due_date,
			COALESCE(t.estimate_hours, 0),
			COALESCE(t.estimate_minutes, 0)
		FROM tasks t
		WHERE t.org_id = $1
	`
	args := []interface{}{orgID}

	if w.From != nil {
		args = append(args, *w.From)
		query += fmt.Sprintf(" AND t.created_at::date >= $%d", len(args))
	}
	if w.To != nil {
		args = append(args, *w.To)
		query += fmt.Sprintf(" AND t.created_at::date <= $%d", len(args))
	}
	query += " ORDER BY t.created_at ASC, t.id ASC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer rows.Close()

	var records []task.Record
	for rows.Next() {
		var rec task.Record
		err := rows.Scan(
			&rec.ID,
			&rec.OrgID,
			&rec.Title,
			&rec.Status,
			&rec.Priority,
			&rec.Department,
			&rec.Assignee,
			&rec.Label,
			&rec.CreatedAt,
			&rec.DueDate,
			&rec.Estimate.Hours,
			&rec.Estimate.Minutes,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read tasks: %w", err)
	}

	return records, nil
}

// ListTimeLogs returns log entries joined to their owning task for the
// denormalized title, label, priority and estimate.
func (r *factRepositoryImpl) ListTimeLogs(ctx context.Context, orgID string, w report.Window) ([]timelog.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			l.id,
			l.org_id,
			l.employee_name,
			COALESCE(l.department, ''),
			l.task_id,
			t.title,
			l.log_date,
			l.seconds,
			COALESCE(t.label, ''),
			t.priority,
			COALESCE(t.estimate_hours, 0),
			COALESCE(t.estimate_minutes, 0)
		FROM time_logs l
		JOIN tasks t ON t.id = l.task_id
		WHERE l.org_id = $1
	`
	args := []interface{}{orgID}

	if w.From != nil {
		args = append(args, *w.From)
		query += fmt.Sprintf(" AND l.log_date >= $%d", len(args))
	}
	if w.To != nil {
		args = append(args, *w.To)
		query += fmt.Sprintf(" AND l.log_date <= $%d", len(args))
	}
	query += " ORDER BY l.log_date ASC, l.id ASC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query time logs: %w", err)
	}
	defer rows.Close()

	var entries []timelog.Entry
	for rows.Next() {
		var e timelog.Entry
		err := rows.Scan(
			&e.ID,
			&e.OrgID,
			&e.Employee,
			&e.Department,
			&e.TaskID,
			&e.TaskTitle,
			&e.LogDate,
			&e.Seconds,
			&e.Label,
			&e.Priority,
			&e.Estimate.Hours,
			&e.Estimate.Minutes,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan time log: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read time logs: %w", err)
	}

	return entries, nil
}
