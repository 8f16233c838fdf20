// Package service provides business logic layer implementations.
package service

import (
	"context"

	"github.com/osokin/eventbook/internal/model"
	"github.com/osokin/eventbook/internal/queue"
)

// EventService defines business logic methods for the event catalog.
type EventService interface {
	ListOrdered(ctx context.Context) ([]*model.Event, error)
	Get(ctx context.Context, id int64) (*model.Event, error)
	Create(ctx context.Context, params *model.CreateEventParams, organizer *model.User) (*model.Event, error)
	UpdateStatus(ctx context.Context, id int64, rawStatus string, organizer *model.User) (*model.Event, error)
	Delete(ctx context.Context, id int64, organizer *model.User) error
}

// BookingService defines business logic methods for the booking ledger.
type BookingService interface {
	AvailableEvents(ctx context.Context) ([]*model.Event, error)
	Create(ctx context.Context, visitor *model.User, eventID int64, seats int) (*model.Booking, error)
	Cancel(ctx context.Context, visitor *model.User, eventID int64) error
	UpcomingForUser(ctx context.Context, visitor *model.User) ([]*model.Event, error)
}

// NotificationService defines business logic methods for notifications and
// their delivery state machine.
type NotificationService interface {
	Create(ctx context.Context, params model.CreateNotificationParams) (*model.Notification, error)
	Get(ctx context.Context, id int64) (*model.Notification, error)
	MarkSent(ctx context.Context, id int64) (*model.Notification, error)
	MarkFailed(ctx context.Context, id int64, detail string) (*model.Notification, error)
	MarkRead(ctx context.Context, id int64) (*model.Notification, error)
	Pending(ctx context.Context) ([]*model.Notification, error)
	ForUser(ctx context.Context, userID int64, status *model.NotificationStatus) ([]*model.Notification, error)
	NotifyAllParticipants(ctx context.Context, event *model.Event, notificationType model.NotificationType, title, message string) ([]*model.Notification, error)
}

// TaskEnqueuer appends jobs to a priority lane of the task queue.
type TaskEnqueuer interface {
	Enqueue(ctx context.Context, lane queue.Lane, jobType queue.JobType, payload any) error
}

// RemoteSender performs one synchronous delivery call against the remote
// gateway and reports its success flag.
type RemoteSender interface {
	Send(ctx context.Context, n *model.Notification) (bool, error)
}
