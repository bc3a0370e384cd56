package report

import (
	"context"
	"errors"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worklens/worklens-backend-go/internal/domain/report"
	"github.com/worklens/worklens-backend-go/internal/domain/task"
	"github.com/worklens/worklens-backend-go/internal/domain/timelog"
	"github.com/worklens/worklens-backend-go/internal/pkg/validator"
)

const testOrgID = "org-1"

// reportTestContext carries claims the way the token verifier middleware
// leaves them for handlers.
func reportTestContext(t *testing.T, orgID string) context.Context {
	ja := jwtauth.New("HS256", []byte("test-secret-key-for-jwt"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"employee_id": "emp-1",
		"org_id":      orgID,
		"type":        "access",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

type fakeFactRepo struct {
	tasks    []task.Record
	logs     []timelog.Entry
	tasksErr error
	logsErr  error

	taskCalls int
}

func (f *fakeFactRepo) ListTasks(ctx context.Context, orgID string, w report.Window) ([]task.Record, error) {
	f.taskCalls++
	if f.tasksErr != nil {
		return nil, f.tasksErr
	}
	return f.tasks, nil
}

func (f *fakeFactRepo) ListTimeLogs(ctx context.Context, orgID string, w report.Window) ([]timelog.Entry, error) {
	if f.logsErr != nil {
		return nil, f.logsErr
	}
	return f.logs, nil
}

func TestReportService_GetTaskStats(t *testing.T) {
	repo := &fakeFactRepo{tasks: filterTestTasks()}
	svc := NewReportService(repo)
	ctx := reportTestContext(t, testOrgID)

	resp, err := svc.GetTaskStats(ctx, report.TaskStatsRequest{})
	require.NoError(t, err)

	assert.Equal(t, 4, resp.Total)
	assert.Equal(t, 1, resp.Completed)
	assert.Equal(t, 1, resp.InProgress)
	assert.Equal(t, 1, resp.Overdue)
	assert.Len(t, resp.Tasks, 4)
	assert.Equal(t, "2025-08-01", resp.Tasks[0].CreatedAt)
	assert.Equal(t, "2025-08-10", resp.Tasks[0].DueDate)
}

func TestReportService_GetTaskStats_MalformedDatesConstrainNothing(t *testing.T) {
	repo := &fakeFactRepo{tasks: filterTestTasks()}
	svc := NewReportService(repo)
	ctx := reportTestContext(t, testOrgID)

	resp, err := svc.GetTaskStats(ctx, report.TaskStatsRequest{
		TaskFilter: report.TaskFilter{StartDate: "garbage", EndDate: "also-garbage"},
	})
	require.NoError(t, err)
	assert.Equal(t, 4, resp.Total)
}

func TestReportService_GetTaskStats_MissingClaims(t *testing.T) {
	svc := NewReportService(&fakeFactRepo{})

	_, err := svc.GetTaskStats(context.Background(), report.TaskStatsRequest{})
	assert.Error(t, err)
}

func TestReportService_GetDWMReport(t *testing.T) {
	repo := &fakeFactRepo{tasks: dwmScenarioTasks()}
	svc := NewReportService(repo)
	ctx := reportTestContext(t, testOrgID)

	resp, err := svc.GetDWMReport(ctx, report.DWMRequest{
		StartDate: "2025-08-01",
		EndDate:   "2025-08-05",
	})
	require.NoError(t, err)

	require.Len(t, resp.Rows, 5)
	assert.Equal(t, "6/10", resp.Rows[1].Daily)
	assert.Equal(t, "N/A", resp.Rows[4].Weekly)
	assert.Equal(t, "6/10", resp.Rows[4].Monthly)
	assert.NotEmpty(t, resp.GeneratedAt)
}

func TestReportService_GetDWMReport_InvalidDates(t *testing.T) {
	svc := NewReportService(&fakeFactRepo{})
	ctx := reportTestContext(t, testOrgID)

	_, err := svc.GetDWMReport(ctx, report.DWMRequest{StartDate: "01-08-2025", EndDate: "2025-08-05"})
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}

func TestReportService_GetDWMReport_EndBeforeStartIsEmpty(t *testing.T) {
	repo := &fakeFactRepo{tasks: dwmScenarioTasks()}
	svc := NewReportService(repo)
	ctx := reportTestContext(t, testOrgID)

	resp, err := svc.GetDWMReport(ctx, report.DWMRequest{
		StartDate: "2025-08-05",
		EndDate:   "2025-08-01",
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Rows)
	assert.Zero(t, repo.taskCalls)
}

func TestReportService_GetDWMReport_CachesByRequestTuple(t *testing.T) {
	repo := &fakeFactRepo{tasks: dwmScenarioTasks()}
	svc := NewReportService(repo)
	ctx := reportTestContext(t, testOrgID)
	req := report.DWMRequest{StartDate: "2025-08-01", EndDate: "2025-08-05"}

	first, err := svc.GetDWMReport(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.taskCalls)

	// Underlying data changes but the cached rollup is served until
	// explicitly invalidated.
	repo.tasks = nil
	second, err := svc.GetDWMReport(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.taskCalls)
	assert.Equal(t, first.Rows, second.Rows)

	svc.InvalidateDWM(ctx, req)
	third, err := svc.GetDWMReport(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.taskCalls)
	assert.Equal(t, "0/0", third.Rows[1].Daily)
}

func TestReportService_GetDWMDrilldown_ConsistentWithSummary(t *testing.T) {
	repo := &fakeFactRepo{tasks: dwmScenarioTasks()}
	svc := NewReportService(repo)
	ctx := reportTestContext(t, testOrgID)

	summary, err := svc.GetDWMReport(ctx, report.DWMRequest{
		StartDate: "2025-08-01",
		EndDate:   "2025-08-05",
	})
	require.NoError(t, err)
	cell := summary.Rows[1]

	completed, err := svc.GetDWMDrilldown(ctx, report.DrilldownRequest{
		Date:      "2025-08-02",
		Horizon:   report.HorizonDaily,
		Completed: true,
		StartDate: "2025-08-01",
		EndDate:   "2025-08-05",
	})
	require.NoError(t, err)
	assert.Len(t, completed.Items, cell.DailyCompleted)

	remaining, err := svc.GetDWMDrilldown(ctx, report.DrilldownRequest{
		Date:      "2025-08-02",
		Horizon:   report.HorizonDaily,
		Completed: false,
		StartDate: "2025-08-01",
		EndDate:   "2025-08-05",
	})
	require.NoError(t, err)
	assert.Len(t, remaining.Items, cell.DailyTotal-cell.DailyCompleted)
}

func TestReportService_GetDWMDrilldown_SumsTimeLogsWithinScope(t *testing.T) {
	tasks := dwmScenarioTasks()
	repo := &fakeFactRepo{
		tasks: tasks,
		logs: []timelog.Entry{
			{ID: "l1", TaskID: tasks[0].ID, LogDate: day("2025-08-02"), Seconds: 3600},
			{ID: "l2", TaskID: tasks[0].ID, LogDate: day("2025-08-02"), Seconds: 61},
			// Outside the daily cell's window, excluded from the total.
			{ID: "l3", TaskID: tasks[0].ID, LogDate: day("2025-08-03"), Seconds: 500},
		},
	}
	svc := NewReportService(repo)
	ctx := reportTestContext(t, testOrgID)

	resp, err := svc.GetDWMDrilldown(ctx, report.DrilldownRequest{
		Date:      "2025-08-02",
		Horizon:   report.HorizonDaily,
		Completed: true,
		StartDate: "2025-08-01",
		EndDate:   "2025-08-05",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3661), resp.TotalSeconds)
	assert.Equal(t, "1:01:01", resp.Total)
	assert.Empty(t, resp.Warning)
}

func TestReportService_GetDWMDrilldown_DegradesWhenTimeLogsFail(t *testing.T) {
	repo := &fakeFactRepo{
		tasks:   dwmScenarioTasks(),
		logsErr: errors.New("connection refused"),
	}
	svc := NewReportService(repo)
	ctx := reportTestContext(t, testOrgID)

	resp, err := svc.GetDWMDrilldown(ctx, report.DrilldownRequest{
		Date:      "2025-08-02",
		Horizon:   report.HorizonDaily,
		Completed: true,
		StartDate: "2025-08-01",
		EndDate:   "2025-08-05",
	})
	require.NoError(t, err)
	assert.Len(t, resp.Items, 6)
	assert.Zero(t, resp.TotalSeconds)
	assert.Equal(t, "time totals unavailable", resp.Warning)
}

func TestReportService_GetDWMDrilldown_UnresolvableCell(t *testing.T) {
	svc := NewReportService(&fakeFactRepo{})
	ctx := reportTestContext(t, testOrgID)

	_, err := svc.GetDWMDrilldown(ctx, report.DrilldownRequest{
		Date:      "2025-09-10",
		Horizon:   report.HorizonDaily,
		Completed: true,
		StartDate: "2025-08-01",
		EndDate:   "2025-08-05",
	})
	assert.ErrorIs(t, err, report.ErrNoDataFound)
}

func TestReportService_GetTimeLog(t *testing.T) {
	repo := &fakeFactRepo{logs: filterTestEntries()}
	svc := NewReportService(repo)
	ctx := reportTestContext(t, testOrgID)

	resp, err := svc.GetTimeLog(ctx, report.TimeLogRequest{
		TimeLogFilter: report.TimeLogFilter{Employee: "alice"},
	})
	require.NoError(t, err)

	require.Len(t, resp.Rows, 2)
	assert.Equal(t, int64(4500), resp.TotalSeconds)
	assert.Equal(t, "1:15:00", resp.Total)
	assert.Equal(t, "1:00:00", resp.Rows[0].Duration)
}

func TestReportService_ConsolidatedTotalMatchesPerEntryTotal(t *testing.T) {
	repo := &fakeFactRepo{logs: filterTestEntries()}
	svc := NewReportService(repo)
	ctx := reportTestContext(t, testOrgID)

	filters := []report.TimeLogFilter{
		{},
		{Employee: "alice"},
		{Department: "Engineering"},
		{StartDate: "2025-08-02", EndDate: "2025-08-04"},
		{TaskName: "design"},
	}

	for _, f := range filters {
		perEntry, err := svc.GetTimeLog(ctx, report.TimeLogRequest{TimeLogFilter: f})
		require.NoError(t, err)
		consolidated, err := svc.GetConsolidatedTimeLog(ctx, report.TimeLogRequest{TimeLogFilter: f})
		require.NoError(t, err)

		assert.Equal(t, perEntry.TotalSeconds, consolidated.TotalSeconds)
		assert.Equal(t, perEntry.Total, consolidated.Total)
	}
}

func TestReportService_GetConsolidatedTimeLog_GroupsByTask(t *testing.T) {
	entries := filterTestEntries()
	entries[0].Estimate = task.Estimate{Hours: 2, Minutes: 30}
	entries[2].Estimate = task.Estimate{Hours: 2, Minutes: 30}
	repo := &fakeFactRepo{logs: entries}
	svc := NewReportService(repo)
	ctx := reportTestContext(t, testOrgID)

	resp, err := svc.GetConsolidatedTimeLog(ctx, report.TimeLogRequest{})
	require.NoError(t, err)

	require.Len(t, resp.Rows, 3)
	assert.Equal(t, "t1", resp.Rows[0].TaskID)
	assert.Equal(t, int64(4500), resp.Rows[0].Seconds)
	// The estimate is the task's own, not a sum over entries.
	assert.Equal(t, "2h 30m", resp.Rows[0].Estimate)
	assert.Equal(t, "no estimate", resp.Rows[1].Estimate)
}

func TestReportService_RepositoryFailureSurfaces(t *testing.T) {
	repo := &fakeFactRepo{tasksErr: errors.New("connection refused")}
	svc := NewReportService(repo)
	ctx := reportTestContext(t, testOrgID)

	_, err := svc.GetTaskStats(ctx, report.TaskStatsRequest{})
	assert.Error(t, err)
}
