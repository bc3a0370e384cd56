package task

import "time"

type Status string

const (
	StatusPending    Status = "Pending"
	StatusInProgress Status = "In Progress"
	StatusCompleted  Status = "Completed"
	StatusDue        Status = "Due"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusDue:
		return true
	}
	return false
}

type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Estimate is the planned effort recorded on a task. It is a property of the
// task itself, never summed across log entries.
type Estimate struct {
	Hours   int
	Minutes int
}

func (e Estimate) IsZero() bool {
	return e.Hours == 0 && e.Minutes == 0
}

// Record is an immutable task fact as fetched from the store.
type Record struct {
	ID         string
	OrgID      string
	Title      string
	Status     Status
	Priority   Priority
	Department string
	Assignee   string
	Label      string
	CreatedAt  time.Time
	DueDate    *time.Time
	Estimate   Estimate
}
