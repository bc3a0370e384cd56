package report

import (
	"github.com/worklens/worklens-backend-go/internal/pkg/validator"
)

// ========================================
// TASK STATISTICS
// ========================================

// TaskFilter is the ad-hoc filter set for task records. Every field is
// optional; an absent or unparseable date bound constrains nothing, so no
// filter combination fails.
type TaskFilter struct {
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Department  string `json:"department"`
	AssignedTo  string `json:"assigned_to"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
	Label       string `json:"label"`
	DueDateFrom string `json:"due_date_from"`
	DueDateTo   string `json:"due_date_to"`
}

type TaskStatsRequest struct {
	TaskFilter
}

type TaskRow struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Status     string `json:"status"`
	Priority   string `json:"priority"`
	Department string `json:"department"`
	AssignedTo string `json:"assigned_to"`
	Label      string `json:"label,omitempty"`
	CreatedAt  string `json:"created_at"`
	DueDate    string `json:"due_date,omitempty"`
	Estimate   string `json:"estimate"`
}

type TaskStatsResponse struct {
	Total      int       `json:"total"`
	Completed  int       `json:"completed"`
	InProgress int       `json:"in_progress"`
	Overdue    int       `json:"overdue"`
	Tasks      []TaskRow `json:"tasks"`
}

// ========================================
// DWM COMPLETION ROLLUP
// ========================================

type Horizon string

const (
	HorizonDaily   Horizon = "daily"
	HorizonWeekly  Horizon = "weekly"
	HorizonMonthly Horizon = "monthly"
)

func (h Horizon) IsValid() bool {
	switch h {
	case HorizonDaily, HorizonWeekly, HorizonMonthly:
		return true
	}
	return false
}

type DWMRequest struct {
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Department string `json:"department"`
	Employee   string `json:"employee"`
}

func (r *DWMRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}
	if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// DWMRow is one calendar day of the rollup. A weekly or monthly total of 0
// means the horizon is not resolvable for that day and renders "N/A"; the
// daily cell always renders numerically, 0/0 included.
type DWMRow struct {
	Date             string `json:"date"`
	DailyCompleted   int    `json:"daily_completed"`
	DailyTotal       int    `json:"daily_total"`
	Daily            string `json:"daily"`
	WeeklyCompleted  int    `json:"weekly_completed"`
	WeeklyTotal      int    `json:"weekly_total"`
	Weekly           string `json:"weekly"`
	MonthlyCompleted int    `json:"monthly_completed"`
	MonthlyTotal     int    `json:"monthly_total"`
	Monthly          string `json:"monthly"`
}

type DWMResponse struct {
	StartDate   string   `json:"start_date"`
	EndDate     string   `json:"end_date"`
	GeneratedAt string   `json:"generated_at"`
	Rows        []DWMRow `json:"rows"`
}

// DrilldownRequest addresses one cell of the rollup. It carries the ISO date
// and the full filter tuple of the summary that produced the cell, so both
// sides evaluate the identical scope.
type DrilldownRequest struct {
	Date       string  `json:"date"`
	Horizon    Horizon `json:"horizon"`
	Completed  bool    `json:"completed"`
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
	Department string  `json:"department"`
	Employee   string  `json:"employee"`
}

func (r *DrilldownRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}
	if !r.Horizon.IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "horizon",
			Message: "horizon must be one of daily, weekly, monthly",
		})
	}
	if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}
	if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DrilldownResponse struct {
	Items        []TaskRow `json:"items"`
	TotalSeconds int64     `json:"total_seconds"`
	Total        string    `json:"total"`
	Warning      string    `json:"warning,omitempty"`
}

// ========================================
// TIME LOG ROLLUPS
// ========================================

// TimeLogFilter scopes time-log entries. TaskName is a case-insensitive
// substring match against the owning task's title.
type TimeLogFilter struct {
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Employee   string `json:"employee"`
	Department string `json:"department"`
	TaskName   string `json:"task_name"`
}

type TimeLogRequest struct {
	TimeLogFilter
}

type TimeLogRow struct {
	Employee  string `json:"employee"`
	TaskTitle string `json:"task_title"`
	Date      string `json:"date"`
	Label     string `json:"label,omitempty"`
	Priority  string `json:"priority"`
	Seconds   int64  `json:"seconds"`
	Duration  string `json:"duration"`
}

type TimeLogResponse struct {
	Rows         []TimeLogRow `json:"rows"`
	TotalSeconds int64        `json:"total_seconds"`
	Total        string       `json:"total"`
}

// ConsolidatedRow is one task with its elapsed seconds summed across the
// range. The estimate comes from the task itself and is never summed.
type ConsolidatedRow struct {
	TaskID    string `json:"task_id"`
	TaskTitle string `json:"task_title"`
	Label     string `json:"label,omitempty"`
	Priority  string `json:"priority"`
	Seconds   int64  `json:"seconds"`
	Duration  string `json:"duration"`
	Estimate  string `json:"estimate"`
}

type ConsolidatedTimeLogResponse struct {
	Rows         []ConsolidatedRow `json:"rows"`
	TotalSeconds int64             `json:"total_seconds"`
	Total        string            `json:"total"`
}
