package timelog

import (
	"time"

	"github.com/worklens/worklens-backend-go/internal/domain/task"
)

// Entry is one logged block of work for an employee on a task, bucketed by
// calendar day. Task title, label, priority and estimate are denormalized
// from the owning task by the fact store so rollups never re-join.
type Entry struct {
	ID         string
	OrgID      string
	Employee   string
	Department string
	TaskID     string
	TaskTitle  string
	LogDate    time.Time
	Seconds    int64
	Label      string
	Priority   task.Priority
	Estimate   task.Estimate
}
