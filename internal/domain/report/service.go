package report

import "context"

// Service computes workforce reporting aggregates. All operations are pure
// reads over the fact store snapshot; the same inputs always yield the same
// rows.
type Service interface {
	// GetTaskStats returns completion counters plus the filtered task list.
	GetTaskStats(ctx context.Context, req TaskStatsRequest) (TaskStatsResponse, error)

	// GetDWMReport returns one row per calendar day in the range with
	// daily, weekly and monthly completion counts.
	GetDWMReport(ctx context.Context, req DWMRequest) (DWMResponse, error)

	// GetDWMDrilldown returns the exact task set backing one rollup cell
	// plus the sum of seconds logged against those tasks.
	GetDWMDrilldown(ctx context.Context, req DrilldownRequest) (DrilldownResponse, error)

	// GetTimeLog returns one row per log entry and a grand total.
	GetTimeLog(ctx context.Context, req TimeLogRequest) (TimeLogResponse, error)

	// GetConsolidatedTimeLog groups entries by task with the task's
	// estimate carried through. Its grand total equals GetTimeLog's for
	// the same filter set.
	GetConsolidatedTimeLog(ctx context.Context, req TimeLogRequest) (ConsolidatedTimeLogResponse, error)

	// InvalidateDWM drops any cached rollup for the request's
	// (range, department, employee) tuple. Called by the fact-owning
	// collaborator after task records change.
	InvalidateDWM(ctx context.Context, req DWMRequest)
}
