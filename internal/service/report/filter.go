package report

import (
	"strings"
	"time"

	"github.com/worklens/worklens-backend-go/internal/domain/report"
	"github.com/worklens/worklens-backend-go/internal/domain/task"
	"github.com/worklens/worklens-backend-go/internal/domain/timelog"
	"github.com/worklens/worklens-backend-go/internal/pkg/timefmt"
	"github.com/worklens/worklens-backend-go/internal/pkg/validator"
)

// The filter pipeline is pure: it narrows a record sequence to the entries
// satisfying every present constraint, preserving order. An absent or
// unparseable bound constrains nothing, so no filter combination fails.

// dayInRange compares at calendar-day resolution, bounds inclusive.
func dayInRange(t time.Time, from time.Time, hasFrom bool, to time.Time, hasTo bool) bool {
	day := timefmt.Day(t)
	if hasFrom && day.Before(timefmt.Day(from)) {
		return false
	}
	if hasTo && day.After(timefmt.Day(to)) {
		return false
	}
	return true
}

// ApplyTaskFilter returns the subsequence of records matching every present
// constraint of f.
func ApplyTaskFilter(records []task.Record, f report.TaskFilter) []task.Record {
	createdFrom, hasCreatedFrom := validator.ParseDateBound(f.StartDate)
	createdTo, hasCreatedTo := validator.ParseDateBound(f.EndDate)
	dueFrom, hasDueFrom := validator.ParseDateBound(f.DueDateFrom)
	dueTo, hasDueTo := validator.ParseDateBound(f.DueDateTo)
	label := strings.ToLower(strings.TrimSpace(f.Label))

	out := make([]task.Record, 0, len(records))
	for _, rec := range records {
		if !dayInRange(rec.CreatedAt, createdFrom, hasCreatedFrom, createdTo, hasCreatedTo) {
			continue
		}
		if hasDueFrom || hasDueTo {
			// A record without a due date is excluded from due-bounded queries.
			if rec.DueDate == nil {
				continue
			}
			if !dayInRange(*rec.DueDate, dueFrom, hasDueFrom, dueTo, hasDueTo) {
				continue
			}
		}
		if f.Department != "" && rec.Department != f.Department {
			continue
		}
		if f.AssignedTo != "" && rec.Assignee != f.AssignedTo {
			continue
		}
		if f.Status != "" && string(rec.Status) != f.Status {
			continue
		}
		if f.Priority != "" && string(rec.Priority) != f.Priority {
			continue
		}
		if label != "" && !strings.Contains(strings.ToLower(rec.Label), label) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// ApplyTimeLogFilter returns the subsequence of entries matching every
// present constraint of f. TaskName is a case-insensitive substring match
// against the owning task's title.
func ApplyTimeLogFilter(entries []timelog.Entry, f report.TimeLogFilter) []timelog.Entry {
	from, hasFrom := validator.ParseDateBound(f.StartDate)
	to, hasTo := validator.ParseDateBound(f.EndDate)
	taskName := strings.ToLower(strings.TrimSpace(f.TaskName))

	out := make([]timelog.Entry, 0, len(entries))
	for _, e := range entries {
		if !dayInRange(e.LogDate, from, hasFrom, to, hasTo) {
			continue
		}
		if f.Employee != "" && e.Employee != f.Employee {
			continue
		}
		if f.Department != "" && e.Department != f.Department {
			continue
		}
		if taskName != "" && !strings.Contains(strings.ToLower(e.TaskTitle), taskName) {
			continue
		}
		out = append(out, e)
	}
	return out
}
