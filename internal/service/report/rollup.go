package report

import (
	"github.com/worklens/worklens-backend-go/internal/domain/report"
	"github.com/worklens/worklens-backend-go/internal/domain/timelog"
	"github.com/worklens/worklens-backend-go/internal/pkg/timefmt"
)

// buildTimeLogRows emits one row per log entry plus the grand total of
// elapsed seconds.
func buildTimeLogRows(entries []timelog.Entry) ([]report.TimeLogRow, int64) {
	rows := make([]report.TimeLogRow, 0, len(entries))
	var total int64
	for _, e := range entries {
		rows = append(rows, report.TimeLogRow{
			Employee:  e.Employee,
			TaskTitle: e.TaskTitle,
			Date:      e.LogDate.Format(timefmt.DateLayout),
			Label:     e.Label,
			Priority:  string(e.Priority),
			Seconds:   e.Seconds,
			Duration:  timefmt.FormatDuration(e.Seconds),
		})
		total += e.Seconds
	}
	return rows, total
}

// buildConsolidatedRows groups entries by task, summing elapsed seconds per
// task across the whole range. The estimate is the task's own and is carried
// through unsummed. Row order follows first appearance, so the grand total
// covers exactly the entries buildTimeLogRows would count.
func buildConsolidatedRows(entries []timelog.Entry) ([]report.ConsolidatedRow, int64) {
	var rows []report.ConsolidatedRow
	index := make(map[string]int)
	var total int64

	for _, e := range entries {
		i, ok := index[e.TaskID]
		if !ok {
			rows = append(rows, report.ConsolidatedRow{
				TaskID:    e.TaskID,
				TaskTitle: e.TaskTitle,
				Label:     e.Label,
				Priority:  string(e.Priority),
				Estimate:  timefmt.FormatEstimate(e.Estimate.Hours, e.Estimate.Minutes),
			})
			i = len(rows) - 1
			index[e.TaskID] = i
		}
		rows[i].Seconds += e.Seconds
		total += e.Seconds
	}

	for i := range rows {
		rows[i].Duration = timefmt.FormatDuration(rows[i].Seconds)
	}
	return rows, total
}
