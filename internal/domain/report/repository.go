package report

import (
	"context"
	"time"

	"github.com/worklens/worklens-backend-go/internal/domain/task"
	"github.com/worklens/worklens-backend-go/internal/domain/timelog"
)

// Window bounds fact queries by calendar day, inclusive. A nil bound is
// unconstrained.
type Window struct {
	From *time.Time
	To   *time.Time
}

// FactRepository is the read-only fact store adapter. It returns immutable
// records coarsely scoped by org and date window; the filter pipeline applies
// the remaining constraints in memory so summary and drill-down always
// evaluate the same fact set.
type FactRepository interface {
	ListTasks(ctx context.Context, orgID string, w Window) ([]task.Record, error)
	ListTimeLogs(ctx context.Context, orgID string, w Window) ([]timelog.Entry, error)
}
