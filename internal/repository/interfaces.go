// Package repository provides data access interfaces and implementations.
package repository

import (
	"context"
	"time"

	"github.com/osokin/eventbook/internal/model"
)

// EventRepository defines methods for event data access. Seat metrics are
// recomputed from bookings on every read.
type EventRepository interface {
	Create(ctx context.Context, event *model.Event) error
	GetByID(ctx context.Context, id int64) (*model.Event, error)
	ExistsIdentical(ctx context.Context, params *model.CreateEventParams, organizerID int64) (bool, error)
	ListOrdered(ctx context.Context, now time.Time) ([]*model.Event, error)
	ListAvailable(ctx context.Context, now time.Time) ([]*model.Event, error)
	ListUserUpcoming(ctx context.Context, userID int64, now time.Time) ([]*model.Event, error)
	ListStartingBetween(ctx context.Context, from, to time.Time) ([]*model.Event, error)
	UpdateStatus(ctx context.Context, id int64, status model.EventStatus, now time.Time) error
	Delete(ctx context.Context, id int64) error
	FinishExpired(ctx context.Context, cutoff, now time.Time) (int64, error)
}

// BookingRepository defines methods for booking data access.
//
// CreateSerialized performs the capacity check and the insert atomically with
// respect to concurrent bookings on the same event.
type BookingRepository interface {
	CreateSerialized(ctx context.Context, params *model.CreateBookingParams, now time.Time) (*model.Booking, error)
	GetByEventAndUser(ctx context.Context, eventID, userID int64) (*model.Booking, error)
	GetByID(ctx context.Context, id int64) (*model.Booking, error)
	DeleteByEventAndUser(ctx context.Context, eventID, userID int64) error
	ListByEvent(ctx context.Context, eventID int64) ([]*model.Booking, error)
}

// NotificationRepository defines methods for notification data access.
// The Mark methods enforce the delivery state machine in their WHERE guards.
type NotificationRepository interface {
	Create(ctx context.Context, params *model.CreateNotificationParams, now time.Time) (*model.Notification, error)
	GetByID(ctx context.Context, id int64) (*model.Notification, error)
	MarkSent(ctx context.Context, id int64, now time.Time) (*model.Notification, error)
	MarkFailed(ctx context.Context, id int64, detail string, now time.Time) (*model.Notification, error)
	MarkRead(ctx context.Context, id int64, now time.Time) (*model.Notification, error)
	ListPending(ctx context.Context) ([]*model.Notification, error)
	ListForUser(ctx context.Context, userID int64, status *model.NotificationStatus) ([]*model.Notification, error)
}

// UserRepository defines methods for user data access.
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*model.User, error)
}
