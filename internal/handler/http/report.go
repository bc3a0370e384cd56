package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/worklens/worklens-backend-go/internal/domain/report"
	"github.com/worklens/worklens-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	// Task statistics with ad-hoc filters
	GetTaskStats(w http.ResponseWriter, r *http.Request)

	// Daily/weekly/monthly completion rollup
	GetDWMReport(w http.ResponseWriter, r *http.Request)

	// Records behind one rollup cell
	GetDWMDrilldown(w http.ResponseWriter, r *http.Request)

	// Per-entry time log
	GetTimeLog(w http.ResponseWriter, r *http.Request)

	// Per-task consolidated time log with estimates
	GetConsolidatedTimeLog(w http.ResponseWriter, r *http.Request)

	// Cache drop for one rollup tuple, called when task data changes
	InvalidateDWMReport(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.Service
}

func NewReportHandler(reportService report.Service) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// GetTaskStats handles GET /reports/tasks
func (h *reportHandlerImpl) GetTaskStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	req := report.TaskStatsRequest{
		TaskFilter: report.TaskFilter{
			StartDate:   q.Get("start_date"),
			EndDate:     q.Get("end_date"),
			Department:  q.Get("department"),
			AssignedTo:  q.Get("assigned_to"),
			Status:      q.Get("status"),
			Priority:    q.Get("priority"),
			Label:       q.Get("label"),
			DueDateFrom: q.Get("due_date_from"),
			DueDateTo:   q.Get("due_date_to"),
		},
	}

	result, err := h.reportService.GetTaskStats(ctx, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetDWMReport handles GET /reports/dwm
func (h *reportHandlerImpl) GetDWMReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	req := report.DWMRequest{
		StartDate:  q.Get("start_date"),
		EndDate:    q.Get("end_date"),
		Department: q.Get("department"),
		Employee:   q.Get("employee"),
	}

	result, err := h.reportService.GetDWMReport(ctx, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetDWMDrilldown handles GET /reports/dwm/drilldown
func (h *reportHandlerImpl) GetDWMDrilldown(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	completed, err := strconv.ParseBool(q.Get("completed"))
	if err != nil {
		response.BadRequest(w, "invalid completed parameter", nil)
		return
	}

	req := report.DrilldownRequest{
		Date:       q.Get("date"),
		Horizon:    report.Horizon(q.Get("horizon")),
		Completed:  completed,
		StartDate:  q.Get("start_date"),
		EndDate:    q.Get("end_date"),
		Department: q.Get("department"),
		Employee:   q.Get("employee"),
	}

	result, err := h.reportService.GetDWMDrilldown(ctx, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetTimeLog handles GET /reports/time-log
func (h *reportHandlerImpl) GetTimeLog(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	result, err := h.reportService.GetTimeLog(ctx, report.TimeLogRequest{
		TimeLogFilter: timeLogFilterFromQuery(r),
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetConsolidatedTimeLog handles GET /reports/time-log/consolidated
func (h *reportHandlerImpl) GetConsolidatedTimeLog(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	result, err := h.reportService.GetConsolidatedTimeLog(ctx, report.TimeLogRequest{
		TimeLogFilter: timeLogFilterFromQuery(r),
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// InvalidateDWMReport handles POST /reports/dwm/invalidate
func (h *reportHandlerImpl) InvalidateDWMReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req report.DWMRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body", nil)
		return
	}

	h.reportService.InvalidateDWM(ctx, req)
	response.SuccessWithMessage(w, "Report cache invalidated", nil)
}

func timeLogFilterFromQuery(r *http.Request) report.TimeLogFilter {
	q := r.URL.Query()
	return report.TimeLogFilter{
		StartDate:  q.Get("start_date"),
		EndDate:    q.Get("end_date"),
		Employee:   q.Get("employee"),
		Department: q.Get("department"),
		TaskName:   q.Get("task_name"),
	}
}
