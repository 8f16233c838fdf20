// Package scheduler runs the periodic beat that enqueues lifecycle jobs.
// It only enqueues; the worker executes. Each job is at-least-once and none
// of them is idempotent across overlapping runs, so intervals are the only
// pacing mechanism.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/osokin/eventbook/internal/queue"
	"github.com/osokin/eventbook/internal/service"
)

// Beat owns the three tickers: reminder fan-out and the pending drain on the
// urgent lane, the expiry sweep on the default lane.
type Beat struct {
	tasks  service.TaskEnqueuer
	logger *slog.Logger

	remindInterval time.Duration
	expireInterval time.Duration
	drainInterval  time.Duration
}

// New creates a Beat.
func New(
	tasks service.TaskEnqueuer,
	remindInterval, expireInterval, drainInterval time.Duration,
	logger *slog.Logger,
) *Beat {
	return &Beat{
		tasks:          tasks,
		logger:         logger,
		remindInterval: remindInterval,
		expireInterval: expireInterval,
		drainInterval:  drainInterval,
	}
}

// Start runs the beat until ctx is cancelled.
func (b *Beat) Start(ctx context.Context) {
	remind := time.NewTicker(b.remindInterval)
	defer remind.Stop()
	expire := time.NewTicker(b.expireInterval)
	defer expire.Stop()
	drain := time.NewTicker(b.drainInterval)
	defer drain.Stop()

	b.logger.Info("scheduler started",
		slog.Duration("remind_interval", b.remindInterval),
		slog.Duration("expire_interval", b.expireInterval),
		slog.Duration("drain_interval", b.drainInterval),
	)

	for {
		select {
		case <-ctx.Done():
			b.logger.Info("scheduler stopped")
			return
		case <-remind.C:
			b.enqueue(ctx, queue.LaneUrgent, queue.JobNotifyUpcoming)
		case <-expire.C:
			b.enqueue(ctx, queue.LaneDefault, queue.JobFinishExpiredEvents)
		case <-drain.C:
			b.enqueue(ctx, queue.LaneUrgent, queue.JobProcessPending)
		}
	}
}

func (b *Beat) enqueue(ctx context.Context, lane queue.Lane, jobType queue.JobType) {
	if err := b.tasks.Enqueue(ctx, lane, jobType, struct{}{}); err != nil {
		b.logger.Error("failed to enqueue scheduled job",
			slog.String("job_type", string(jobType)),
			slog.String("error", err.Error()),
		)

		return
	}

	b.logger.Debug("scheduled job enqueued", slog.String("job_type", string(jobType)))
}
