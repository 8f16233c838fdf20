// Package worker executes queued jobs: notification dispatch, reminder
// fan-out, the expiry sweep and the pending drain.
package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/osokin/eventbook/internal/clock"
	"github.com/osokin/eventbook/internal/model"
	"github.com/osokin/eventbook/internal/queue"
	"github.com/osokin/eventbook/internal/repository"
	"github.com/osokin/eventbook/internal/service"
)

// Handler executes one job per message. Jobs are at-least-once: a handler
// error leaves the message unacked for redelivery, while domain conditions
// that cannot heal (a booking deleted before its confirmation ran) are logged
// and acked.
type Handler struct {
	events        repository.EventRepository
	bookings      repository.BookingRepository
	notifications service.NotificationService
	router        *service.DeliveryRouter
	tasks         service.TaskEnqueuer
	clock         clock.Clock
	logger        *slog.Logger

	expireAfter  time.Duration
	remindLead   time.Duration
	remindWindow time.Duration
}

// Options carries the scheduler thresholds the jobs need.
type Options struct {
	ExpireAfter  time.Duration
	RemindLead   time.Duration
	RemindWindow time.Duration
}

// NewHandler creates a job Handler.
func NewHandler(
	events repository.EventRepository,
	bookings repository.BookingRepository,
	notifications service.NotificationService,
	router *service.DeliveryRouter,
	tasks service.TaskEnqueuer,
	clk clock.Clock,
	logger *slog.Logger,
	opts Options,
) *Handler {
	return &Handler{
		events:        events,
		bookings:      bookings,
		notifications: notifications,
		router:        router,
		tasks:         tasks,
		clock:         clk,
		logger:        logger,
		expireAfter:   opts.ExpireAfter,
		remindLead:    opts.RemindLead,
		remindWindow:  opts.RemindWindow,
	}
}

// Handle dispatches a message to its job. Unknown job types are ignored.
func (h *Handler) Handle(ctx context.Context, msg queue.Message) error {
	switch msg.Type {
	case queue.JobBookingConfirmation:
		return h.handleBookingConfirmation(ctx, msg.Payload)
	case queue.JobEventCancelled:
		return h.handleEventCancelled(ctx, msg.Payload)
	case queue.JobEventReminder:
		return h.handleEventReminder(ctx, msg.Payload)
	case queue.JobNotifyUpcoming:
		return h.handleNotifyUpcoming(ctx)
	case queue.JobFinishExpiredEvents:
		return h.handleFinishExpired(ctx)
	case queue.JobProcessPending:
		return h.handleProcessPending(ctx)
	default:
		h.logger.Warn("unknown job type", slog.String("job_type", string(msg.Type)))
		return nil
	}
}

// handleBookingConfirmation creates the confirmation notification and
// attempts immediate remote delivery. Delivery failure is recorded on the
// notification, not retried.
func (h *Handler) handleBookingConfirmation(ctx context.Context, payload []byte) error {
	var p queue.BookingConfirmationPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return fmt.Errorf("decode booking confirmation payload: %w", err)
	}

	booking, err := h.bookings.GetByID(ctx, p.BookingID)
	if err != nil {
		if errors.Is(err, model.ErrBookingNotFound) {
			h.logger.Warn("booking gone before confirmation", slog.Int64("booking_id", p.BookingID))
			return nil
		}

		return err
	}

	event, err := h.events.GetByID(ctx, booking.EventID)
	if err != nil {
		return err
	}

	n, err := h.notifications.Create(ctx, model.BookingConfirmationParams(booking.UserID, event, booking.Seats))
	if err != nil {
		return err
	}

	h.router.DeliverRemote(ctx, n)

	return nil
}

// handleEventCancelled notifies the cancelling visitor through the local
// channel.
func (h *Handler) handleEventCancelled(ctx context.Context, payload []byte) error {
	var p queue.EventCancelledPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return fmt.Errorf("decode event cancelled payload: %w", err)
	}

	event, err := h.events.GetByID(ctx, p.EventID)
	if err != nil {
		if errors.Is(err, model.ErrEventNotFound) {
			h.logger.Warn("event gone before cancellation notice", slog.Int64("event_id", p.EventID))
			return nil
		}

		return err
	}

	n, err := h.notifications.Create(ctx, model.EventCancelledParams(p.UserID, event))
	if err != nil {
		return err
	}

	h.router.DeliverLocal(ctx, n)

	return nil
}

// handleEventReminder fans out one reminder per booking of the event and
// local-delivers each immediately.
func (h *Handler) handleEventReminder(ctx context.Context, payload []byte) error {
	var p queue.EventReminderPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return fmt.Errorf("decode event reminder payload: %w", err)
	}

	event, err := h.events.GetByID(ctx, p.EventID)
	if err != nil {
		if errors.Is(err, model.ErrEventNotFound) {
			h.logger.Warn("event gone before reminder", slog.Int64("event_id", p.EventID))
			return nil
		}

		return err
	}

	bookings, err := h.bookings.ListByEvent(ctx, event.ID)
	if err != nil {
		return err
	}

	sent := 0
	for _, booking := range bookings {
		n, err := h.notifications.Create(ctx, model.ReminderParams(booking.UserID, event, ""))
		if err != nil {
			return err
		}
		if h.router.DeliverLocal(ctx, n) {
			sent++
		}
	}

	h.logger.Info("reminders sent",
		slog.Int64("event_id", event.ID),
		slog.Int("count", sent),
	)

	return nil
}

// handleNotifyUpcoming selects upcoming events starting inside the reminder
// window and enqueues one reminder job per event. Running twice while an
// event stays in the window produces duplicate reminders; the job is
// at-least-once and does not deduplicate.
func (h *Handler) handleNotifyUpcoming(ctx context.Context) error {
	from := h.clock.Now().Add(h.remindLead)
	events, err := h.events.ListStartingBetween(ctx, from, from.Add(h.remindWindow))
	if err != nil {
		return err
	}

	for _, event := range events {
		err := h.tasks.Enqueue(ctx, queue.LaneUrgent, queue.JobEventReminder,
			queue.EventReminderPayload{EventID: event.ID})
		if err != nil {
			return err
		}
	}

	h.logger.Info("reminder window scanned", slog.Int("events", len(events)))

	return nil
}

// handleFinishExpired bulk-completes upcoming events past the threshold.
func (h *Handler) handleFinishExpired(ctx context.Context) error {
	now := h.clock.Now()
	finished, err := h.events.FinishExpired(ctx, now.Add(-h.expireAfter), now)
	if err != nil {
		return err
	}

	h.logger.Info("expired events finished", slog.Int64("count", finished))

	return nil
}

// handleProcessPending drains still-pending notifications through the local
// fallback channel.
func (h *Handler) handleProcessPending(ctx context.Context) error {
	sent, failed, err := h.router.DrainPending(ctx)
	if err != nil {
		return err
	}

	h.logger.Info("pending notifications processed",
		slog.Int("sent", sent),
		slog.Int("failed", failed),
	)

	return nil
}
