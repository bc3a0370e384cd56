package report

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/sync/errgroup"

	"github.com/worklens/worklens-backend-go/internal/domain/report"
	"github.com/worklens/worklens-backend-go/internal/domain/task"
	"github.com/worklens/worklens-backend-go/internal/pkg/timefmt"
	"github.com/worklens/worklens-backend-go/internal/pkg/validator"
)

type ReportServiceImpl struct {
	factRepo report.FactRepository
	cache    *dwmCache
}

func NewReportService(factRepo report.FactRepository) report.Service {
	return &ReportServiceImpl{
		factRepo: factRepo,
		cache:    newDWMCache(),
	}
}

// orgIDFromContext extracts org_id from JWT claims
func (s *ReportServiceImpl) orgIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	orgID, ok := claims["org_id"].(string)
	if !ok || orgID == "" {
		return "", fmt.Errorf("org_id claim is missing or invalid")
	}

	return orgID, nil
}

// window converts optional date bound strings into a coarse fetch window.
func window(startDate, endDate string) report.Window {
	var w report.Window
	if from, ok := validator.ParseDateBound(startDate); ok {
		w.From = &from
	}
	if to, ok := validator.ParseDateBound(endDate); ok {
		w.To = &to
	}
	return w
}

func taskRow(rec task.Record) report.TaskRow {
	row := report.TaskRow{
		ID:         rec.ID,
		Title:      rec.Title,
		Status:     string(rec.Status),
		Priority:   string(rec.Priority),
		Department: rec.Department,
		AssignedTo: rec.Assignee,
		Label:      rec.Label,
		CreatedAt:  rec.CreatedAt.Format(timefmt.DateLayout),
		Estimate:   timefmt.FormatEstimate(rec.Estimate.Hours, rec.Estimate.Minutes),
	}
	if rec.DueDate != nil {
		row.DueDate = rec.DueDate.Format(timefmt.DateLayout)
	}
	return row
}

// GetTaskStats returns completion counters plus the filtered task list.
func (s *ReportServiceImpl) GetTaskStats(ctx context.Context, req report.TaskStatsRequest) (report.TaskStatsResponse, error) {
	orgID, err := s.orgIDFromContext(ctx)
	if err != nil {
		return report.TaskStatsResponse{}, err
	}

	records, err := s.factRepo.ListTasks(ctx, orgID, window(req.StartDate, req.EndDate))
	if err != nil {
		return report.TaskStatsResponse{}, fmt.Errorf("failed to get task data: %w", err)
	}

	filtered := ApplyTaskFilter(records, req.TaskFilter)

	resp := report.TaskStatsResponse{
		Total: len(filtered),
		Tasks: make([]report.TaskRow, 0, len(filtered)),
	}
	for _, rec := range filtered {
		switch rec.Status {
		case task.StatusCompleted:
			resp.Completed++
		case task.StatusInProgress:
			resp.InProgress++
		case task.StatusDue:
			resp.Overdue++
		}
		resp.Tasks = append(resp.Tasks, taskRow(rec))
	}

	return resp, nil
}

// scopedTasks fetches the org's task records for the range and narrows them
// by department/employee. Both the rollup and its drill-down call this with
// the same filter tuple, so they always evaluate the same fact set.
func (s *ReportServiceImpl) scopedTasks(ctx context.Context, orgID string, startDate, endDate, department, employee string) ([]task.Record, error) {
	records, err := s.factRepo.ListTasks(ctx, orgID, window(startDate, endDate))
	if err != nil {
		return nil, err
	}
	return ApplyTaskFilter(records, report.TaskFilter{
		StartDate:  startDate,
		EndDate:    endDate,
		Department: department,
		AssignedTo: employee,
	}), nil
}

// GetDWMReport returns one row per calendar day in [start, end] ascending.
func (s *ReportServiceImpl) GetDWMReport(ctx context.Context, req report.DWMRequest) (report.DWMResponse, error) {
	if err := req.Validate(); err != nil {
		return report.DWMResponse{}, err
	}

	orgID, err := s.orgIDFromContext(ctx)
	if err != nil {
		return report.DWMResponse{}, err
	}

	resp := report.DWMResponse{
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		GeneratedAt: time.Now().Format(time.RFC3339),
	}

	start, _ := validator.IsValidDate(req.StartDate)
	end, _ := validator.IsValidDate(req.EndDate)
	if end.Before(start) {
		// Contradictory range degrades to an empty report, not a failure.
		return resp, nil
	}

	key := dwmCacheKey(orgID, req)
	if rows, ok := s.cache.get(key); ok {
		resp.Rows = rows
		return resp, nil
	}

	records, err := s.scopedTasks(ctx, orgID, req.StartDate, req.EndDate, req.Department, req.Employee)
	if err != nil {
		return report.DWMResponse{}, fmt.Errorf("failed to get task data: %w", err)
	}

	rows := buildDWMRows(records, start, end)
	s.cache.set(key, rows)
	resp.Rows = rows
	return resp, nil
}

// GetDWMDrilldown returns the records behind one cell. Item counts are
// consistent with the summary by construction: both sides run horizonScope
// over the identically filtered fact set.
func (s *ReportServiceImpl) GetDWMDrilldown(ctx context.Context, req report.DrilldownRequest) (report.DrilldownResponse, error) {
	if err := req.Validate(); err != nil {
		return report.DrilldownResponse{}, err
	}

	orgID, err := s.orgIDFromContext(ctx)
	if err != nil {
		return report.DrilldownResponse{}, err
	}

	day, _ := validator.IsValidDate(req.Date)
	start, _ := validator.IsValidDate(req.StartDate)
	end, _ := validator.IsValidDate(req.EndDate)
	if end.Before(start) {
		return report.DrilldownResponse{Items: []report.TaskRow{}, Total: timefmt.FormatDuration(0)}, nil
	}

	from, to, ok := horizonScope(day, req.Horizon, start, end)
	if !ok {
		return report.DrilldownResponse{}, report.ErrNoDataFound
	}

	// Tasks and time logs live in disjoint read-only tables; fetch them
	// concurrently. A time-log failure degrades the seconds total instead
	// of failing the drill-down.
	var records []task.Record
	var logSeconds map[string]int64
	var logsErr error

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		records, err = s.scopedTasks(gctx, orgID, req.StartDate, req.EndDate, req.Department, req.Employee)
		if err != nil {
			return fmt.Errorf("failed to get task data: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		entries, err := s.factRepo.ListTimeLogs(gctx, orgID, window(req.StartDate, req.EndDate))
		if err != nil {
			logsErr = err
			return nil
		}
		logSeconds = make(map[string]int64, len(entries))
		for _, e := range entries {
			logDay := timefmt.Day(e.LogDate)
			if logDay.Before(from) || logDay.After(to) {
				continue
			}
			logSeconds[e.TaskID] += e.Seconds
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return report.DrilldownResponse{}, err
	}

	items := scopeItems(records, from, to, req.Completed)

	resp := report.DrilldownResponse{Items: make([]report.TaskRow, 0, len(items))}
	for _, rec := range items {
		resp.Items = append(resp.Items, taskRow(rec))
		resp.TotalSeconds += logSeconds[rec.ID]
	}
	resp.Total = timefmt.FormatDuration(resp.TotalSeconds)

	if logsErr != nil {
		slog.Error("drilldown time totals unavailable", "error", logsErr)
		resp.Warning = "time totals unavailable"
	}
	return resp, nil
}

// GetTimeLog returns one row per matched log entry plus the grand total.
func (s *ReportServiceImpl) GetTimeLog(ctx context.Context, req report.TimeLogRequest) (report.TimeLogResponse, error) {
	orgID, err := s.orgIDFromContext(ctx)
	if err != nil {
		return report.TimeLogResponse{}, err
	}

	entries, err := s.factRepo.ListTimeLogs(ctx, orgID, window(req.StartDate, req.EndDate))
	if err != nil {
		return report.TimeLogResponse{}, fmt.Errorf("failed to get time log data: %w", err)
	}

	rows, total := buildTimeLogRows(ApplyTimeLogFilter(entries, req.TimeLogFilter))
	return report.TimeLogResponse{
		Rows:         rows,
		TotalSeconds: total,
		Total:        timefmt.FormatDuration(total),
	}, nil
}

// GetConsolidatedTimeLog groups the same scoped entries by task. Its grand
// total equals GetTimeLog's for an identical filter set because both modes
// consume the identical filtered sequence.
func (s *ReportServiceImpl) GetConsolidatedTimeLog(ctx context.Context, req report.TimeLogRequest) (report.ConsolidatedTimeLogResponse, error) {
	orgID, err := s.orgIDFromContext(ctx)
	if err != nil {
		return report.ConsolidatedTimeLogResponse{}, err
	}

	entries, err := s.factRepo.ListTimeLogs(ctx, orgID, window(req.StartDate, req.EndDate))
	if err != nil {
		return report.ConsolidatedTimeLogResponse{}, fmt.Errorf("failed to get time log data: %w", err)
	}

	rows, total := buildConsolidatedRows(ApplyTimeLogFilter(entries, req.TimeLogFilter))
	return report.ConsolidatedTimeLogResponse{
		Rows:         rows,
		TotalSeconds: total,
		Total:        timefmt.FormatDuration(total),
	}, nil
}

// InvalidateDWM drops the cached rollup for the request's tuple.
func (s *ReportServiceImpl) InvalidateDWM(ctx context.Context, req report.DWMRequest) {
	orgID, err := s.orgIDFromContext(ctx)
	if err != nil {
		return
	}
	s.cache.invalidate(dwmCacheKey(orgID, req))
}
