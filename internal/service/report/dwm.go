package report

import (
	"fmt"
	"time"

	"github.com/worklens/worklens-backend-go/internal/domain/report"
	"github.com/worklens/worklens-backend-go/internal/domain/task"
	"github.com/worklens/worklens-backend-go/internal/pkg/timefmt"
)

// horizonScope resolves the inclusive day window of one rollup cell: the
// horizon's calendar span around day, intersected with the requested range.
// ok is false when the intersection is empty. Summary rows and drill-down
// both call this; it is the single source of cell scoping.
func horizonScope(day time.Time, horizon report.Horizon, rangeStart, rangeEnd time.Time) (from, to time.Time, ok bool) {
	switch horizon {
	case report.HorizonDaily:
		from, to = timefmt.Day(day), timefmt.Day(day)
	case report.HorizonWeekly:
		from, to = timefmt.WeekBounds(day)
	case report.HorizonMonthly:
		from, to = timefmt.MonthBounds(day)
	default:
		return time.Time{}, time.Time{}, false
	}

	if from.Before(rangeStart) {
		from = rangeStart
	}
	if to.After(rangeEnd) {
		to = rangeEnd
	}
	if to.Before(from) {
		return time.Time{}, time.Time{}, false
	}
	return from, to, true
}

// inScope reports whether a task record is counted in the cell spanning
// [from, to] by its created-at day.
func inScope(rec task.Record, from, to time.Time) bool {
	day := timefmt.Day(rec.CreatedAt)
	return !day.Before(from) && !day.After(to)
}

func countScope(records []task.Record, from, to time.Time) (completed, total int) {
	for _, rec := range records {
		if !inScope(rec, from, to) {
			continue
		}
		total++
		if rec.Status == task.StatusCompleted {
			completed++
		}
	}
	return completed, total
}

// scopeItems returns the exact record set counted in one cell, split by
// completion state. Because it filters with the same predicate countScope
// uses, the drill-down item count always equals the cell's counters.
func scopeItems(records []task.Record, from, to time.Time, completed bool) []task.Record {
	var items []task.Record
	for _, rec := range records {
		if !inScope(rec, from, to) {
			continue
		}
		if (rec.Status == task.StatusCompleted) != completed {
			continue
		}
		items = append(items, rec)
	}
	return items
}

func formatCell(completed, total int) string {
	return fmt.Sprintf("%d/%d", completed, total)
}

// buildDWMRows enumerates every calendar day in [start, end] ascending and
// computes the three horizon counters per day. records must already be
// narrowed by department/employee.
func buildDWMRows(records []task.Record, start, end time.Time) []report.DWMRow {
	var rows []report.DWMRow
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		row := report.DWMRow{Date: day.Format(timefmt.DateLayout)}

		if from, to, ok := horizonScope(day, report.HorizonDaily, start, end); ok {
			row.DailyCompleted, row.DailyTotal = countScope(records, from, to)
		}
		// The daily cell always renders numerically; 0/0 is a valid day.
		row.Daily = formatCell(row.DailyCompleted, row.DailyTotal)

		if from, to, ok := horizonScope(day, report.HorizonWeekly, start, end); ok {
			row.WeeklyCompleted, row.WeeklyTotal = countScope(records, from, to)
		}
		if row.WeeklyTotal == 0 {
			row.Weekly = "N/A"
		} else {
			row.Weekly = formatCell(row.WeeklyCompleted, row.WeeklyTotal)
		}

		if from, to, ok := horizonScope(day, report.HorizonMonthly, start, end); ok {
			row.MonthlyCompleted, row.MonthlyTotal = countScope(records, from, to)
		}
		if row.MonthlyTotal == 0 {
			row.Monthly = "N/A"
		} else {
			row.Monthly = formatCell(row.MonthlyCompleted, row.MonthlyTotal)
		}

		rows = append(rows, row)
	}
	return rows
}
