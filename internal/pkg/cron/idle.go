package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/worklens/worklens-backend-go/internal/domain/idle"
	"github.com/worklens/worklens-backend-go/internal/pkg/timefmt"
)

// IdleDetectionJobs rolls raw idle events up into accountability items on a
// schedule, so every (employee, day) pair over threshold has exactly one item
// awaiting justification.
type IdleDetectionJobs struct {
	idleRepo idle.Repository
	idleSvc  idle.Service
	orgIDs   func(ctx context.Context) ([]string, error)
	lookback time.Duration
}

func NewIdleDetectionJobs(idleRepo idle.Repository, idleSvc idle.Service, orgIDs func(ctx context.Context) ([]string, error), lookback time.Duration) *IdleDetectionJobs {
	return &IdleDetectionJobs{
		idleRepo: idleRepo,
		idleSvc:  idleSvc,
		orgIDs:   orgIDs,
		lookback: lookback,
	}
}

func (j *IdleDetectionJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("idle_detection_sweep", 1*time.Hour, j.SweepIdleEvents)
}

// SweepIdleEvents sums idle events per (employee, day) over the lookback
// window and upserts the corresponding accountability items. Already-resolved
// items keep their status; only the measured minutes are refreshed.
func (j *IdleDetectionJobs) SweepIdleEvents(ctx context.Context) error {
	orgs, err := j.orgIDs(ctx)
	if err != nil {
		return err
	}

	to := timefmt.Day(time.Now())
	from := to.Add(-j.lookback)

	for _, orgID := range orgs {
		events, err := j.idleRepo.SumEventMinutes(ctx, orgID, from, to)
		if err != nil {
			slog.Error("Cron: idle event rollup failed", "org_id", orgID, "error", err)
			continue
		}

		var upserted int
		for _, ev := range events {
			if _, err := j.idleSvc.RecordDetection(ctx, orgID, ev.EmployeeID, ev.Date, ev.Minutes); err != nil {
				slog.Error("Cron: idle detection upsert failed",
					"org_id", orgID, "employee_id", ev.EmployeeID, "date", ev.Date.Format(timefmt.DateLayout), "error", err)
				continue
			}
			upserted++
		}
		slog.Info("Cron: idle detection sweep done", "org_id", orgID, "events", len(events), "upserted", upserted)
	}

	return nil
}
