// Package queue implements the durable two-lane task queue on Redis Streams.
//
// All notification-dispatch and reminder fan-out work rides the urgent lane;
// the expiry sweep rides the default lane so bulk housekeeping cannot starve
// user-visible notification latency. Delivery is at-least-once: a message is
// acked only after its handler returns without error.
package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/redis/rueidis"
)

// Lane is a priority lane backed by one Redis stream.
type Lane string

const (
	// LaneUrgent carries notification dispatch, reminder fan-out and the
	// pending drain.
	LaneUrgent Lane = "tasks:urgent"
	// LaneDefault carries the expiry sweep.
	LaneDefault Lane = "tasks:default"
)

// Lanes lists all lanes in read-priority order.
var Lanes = []Lane{LaneUrgent, LaneDefault}

// Group is the consumer group shared by all workers.
const Group = "eventbook-workers"

const blockTimeout = 1000 // milliseconds

// JobType names a unit of work the worker knows how to execute.
type JobType string

const (
	// JobBookingConfirmation creates and remote-delivers a booking confirmation.
	JobBookingConfirmation JobType = "send_booking_confirmation"
	// JobEventCancelled creates and local-delivers a cancellation notice.
	JobEventCancelled JobType = "send_event_cancelled"
	// JobEventReminder fans out reminders to every booking of one event.
	JobEventReminder JobType = "event_reminder"
	// JobNotifyUpcoming scans the reminder window and enqueues one
	// JobEventReminder per event found.
	JobNotifyUpcoming JobType = "notify_upcoming_events"
	// JobFinishExpiredEvents bulk-completes events past the threshold.
	JobFinishExpiredEvents JobType = "finish_expired_events"
	// JobProcessPending drains still-pending notifications via the local channel.
	JobProcessPending JobType = "process_pending_notifications"
)

// BookingConfirmationPayload identifies the booking to confirm.
type BookingConfirmationPayload struct {
	BookingID int64 `json:"booking_id"`
}

// EventCancelledPayload identifies the cancelling visitor and the event.
type EventCancelledPayload struct {
	UserID  int64 `json:"user_id"`
	EventID int64 `json:"event_id"`
}

// EventReminderPayload identifies the event whose participants get reminded.
type EventReminderPayload struct {
	EventID int64 `json:"event_id"`
}

// Message is one consumed job, carrying what is needed to ack it.
type Message struct {
	ID      string
	Lane    Lane
	JobID   string
	Type    JobType
	Payload []byte
}

// Queue produces and consumes jobs over the two lanes.
type Queue struct {
	client rueidis.Client
}

// New creates a Queue on an existing Redis client.
func New(client rueidis.Client) *Queue {
	return &Queue{client: client}
}

// Enqueue appends a job to the lane's stream.
func (q *Queue) Enqueue(ctx context.Context, lane Lane, jobType JobType, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s payload: %w", jobType, err)
	}

	cmd := q.client.B().Xadd().Key(string(lane)).Id("*").
		FieldValue().
		FieldValue("job_id", uuid.New().String()).
		FieldValue("job_type", string(jobType)).
		FieldValue("payload", string(body)).
		Build()
	if err := q.client.Do(ctx, cmd).Error(); err != nil {
		return fmt.Errorf("enqueue %s to %s: %w", jobType, lane, err)
	}

	return nil
}

// EnsureGroups creates the consumer group on every lane, tolerating
// already-exists errors.
func (q *Queue) EnsureGroups(ctx context.Context) {
	for _, lane := range Lanes {
		cmd := q.client.B().XgroupCreate().Key(string(lane)).Group(Group).Id("0").Mkstream().Build()
		// BUSYGROUP means the group already exists.
		if err := q.client.Do(ctx, cmd).Error(); err != nil && !isBusyGroup(err) {
			slog.Warn("failed to create consumer group",
				slog.String("lane", string(lane)),
				slog.String("error", err.Error()),
			)
		}
	}
}

func isBusyGroup(err error) bool {
	return err != nil && strings.Contains(err.Error(), "BUSYGROUP")
}

// Read blocks for up to a second and returns messages from the lanes,
// urgent lane first.
func (q *Queue) Read(ctx context.Context, consumer string, count int64) ([]Message, error) {
	cmd := q.client.B().Xreadgroup().Group(Group, consumer).
		Count(count).
		Block(blockTimeout).
		Streams().
		Key(string(LaneUrgent), string(LaneDefault)).
		Id(">", ">").
		Build()

	result := q.client.Do(ctx, cmd)
	if err := result.Error(); err != nil {
		if rueidis.IsRedisNil(err) {
			return nil, nil // block timeout, nothing pending
		}

		return nil, fmt.Errorf("read lanes: %w", err)
	}

	streams, err := result.AsXRead()
	if err != nil {
		return nil, fmt.Errorf("parse stream entries: %w", err)
	}

	var messages []Message
	for _, lane := range Lanes {
		for _, entry := range streams[string(lane)] {
			messages = append(messages, Message{
				ID:      entry.ID,
				Lane:    lane,
				JobID:   entry.FieldValues["job_id"],
				Type:    JobType(entry.FieldValues["job_type"]),
				Payload: []byte(entry.FieldValues["payload"]),
			})
		}
	}

	return messages, nil
}

// Ack acknowledges a processed message on its lane.
func (q *Queue) Ack(ctx context.Context, msg Message) error {
	cmd := q.client.B().Xack().Key(string(msg.Lane)).Group(Group).Id(msg.ID).Build()
	if err := q.client.Do(ctx, cmd).Error(); err != nil {
		return fmt.Errorf("ack %s on %s: %w", msg.ID, msg.Lane, err)
	}

	return nil
}
