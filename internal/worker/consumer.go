package worker

import (
	"context"
	"log/slog"
	"time"

	"github.com/osokin/eventbook/internal/queue"
)

const errorRetryDelay = 1 * time.Second

// Consumer reads both lanes and feeds messages to the Handler. Messages are
// acked only after the handler succeeds, so a crashed worker's work is
// redelivered to another consumer.
type Consumer struct {
	queue   *queue.Queue
	handler *Handler
	name    string
	batch   int64
	logger  *slog.Logger
}

// NewConsumer creates a Consumer identified by name within the worker group.
func NewConsumer(q *queue.Queue, handler *Handler, name string, batch int64, logger *slog.Logger) *Consumer {
	return &Consumer{
		queue:   q,
		handler: handler,
		name:    name,
		batch:   batch,
		logger:  logger,
	}
}

// Run consumes until ctx is cancelled.
func (c *Consumer) Run(ctx context.Context) {
	c.queue.EnsureGroups(ctx)

	c.logger.Info("worker started",
		slog.String("consumer", c.name),
		slog.Int64("batch", c.batch),
	)

	for {
		select {
		case <-ctx.Done():
			c.logger.Info("worker stopped")
			return
		default:
			if err := c.consumeOnce(ctx); err != nil {
				c.logger.Error("error consuming messages", slog.String("error", err.Error()))
				time.Sleep(errorRetryDelay)
			}
		}
	}
}

func (c *Consumer) consumeOnce(ctx context.Context) error {
	messages, err := c.queue.Read(ctx, c.name, c.batch)
	if err != nil {
		return err
	}

	for _, msg := range messages {
		if err := c.handler.Handle(ctx, msg); err != nil {
			c.logger.Error("failed to process job",
				slog.String("job_id", msg.JobID),
				slog.String("job_type", string(msg.Type)),
				slog.String("error", err.Error()),
			)

			continue
		}

		if err := c.queue.Ack(ctx, msg); err != nil {
			c.logger.Error("failed to ack job",
				slog.String("job_id", msg.JobID),
				slog.String("error", err.Error()),
			)
		}
	}

	return nil
}
