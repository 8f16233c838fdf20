package service

import (
	"context"
	"log/slog"

	"github.com/osokin/eventbook/internal/model"
)

// DeliveryRouter dispatches a pending notification to one of two channels.
// The remote channel is the synchronous gateway call made right after
// creation; the local channel is the always-successful structured-log sink
// used by the scheduler's drain and by reminder fan-out.
//
// Delivery failure is terminal: the notification is marked failed and nothing
// at this layer retries it. Only the periodic drain rescans, and only records
// that never left pending.
type DeliveryRouter struct {
	notifications NotificationService
	sender        RemoteSender
	logger        *slog.Logger
}

// NewDeliveryRouter creates a DeliveryRouter.
func NewDeliveryRouter(notifications NotificationService, sender RemoteSender, logger *slog.Logger) *DeliveryRouter {
	return &DeliveryRouter{
		notifications: notifications,
		sender:        sender,
		logger:        logger,
	}
}

// DeliverRemote attempts one synchronous gateway delivery and records the
// outcome. Transport errors are absorbed here; they never reach the caller.
func (r *DeliveryRouter) DeliverRemote(ctx context.Context, n *model.Notification) bool {
	ok, err := r.sender.Send(ctx, n)
	if err != nil {
		r.logger.Error("remote delivery failed",
			slog.Int64("notification_id", n.ID),
			slog.String("error", err.Error()),
		)
		r.markFailed(ctx, n.ID, err.Error())

		return false
	}
	if !ok {
		r.markFailed(ctx, n.ID, "")

		return false
	}

	if _, err := r.notifications.MarkSent(ctx, n.ID); err != nil {
		r.logger.Error("failed to mark notification sent",
			slog.Int64("notification_id", n.ID),
			slog.String("error", err.Error()),
		)

		return false
	}

	return true
}

// DeliverLocal emits the notification to the structured log and marks it
// sent. It fails only on an internal error.
func (r *DeliveryRouter) DeliverLocal(ctx context.Context, n *model.Notification) bool {
	r.logger.Info("notification delivered locally",
		slog.Int64("notification_id", n.ID),
		slog.Int64("user_id", n.UserID),
		slog.String("title", n.Title),
		slog.String("message", n.Message),
	)

	if _, err := r.notifications.MarkSent(ctx, n.ID); err != nil {
		r.logger.Error("local delivery failed",
			slog.Int64("notification_id", n.ID),
			slog.String("error", err.Error()),
		)
		r.markFailed(ctx, n.ID, err.Error())

		return false
	}

	return true
}

// DrainPending delivers every still-pending notification through the local
// channel, oldest first, and returns the sent/failed counts.
func (r *DeliveryRouter) DrainPending(ctx context.Context) (sent, failed int, err error) {
	pending, err := r.notifications.Pending(ctx)
	if err != nil {
		return 0, 0, err
	}

	for _, n := range pending {
		if r.DeliverLocal(ctx, n) {
			sent++
		} else {
			failed++
		}
	}

	return sent, failed, nil
}

func (r *DeliveryRouter) markFailed(ctx context.Context, id int64, detail string) {
	if _, err := r.notifications.MarkFailed(ctx, id, detail); err != nil {
		r.logger.Error("failed to mark notification failed",
			slog.Int64("notification_id", id),
			slog.String("error", err.Error()),
		)
	}
}
