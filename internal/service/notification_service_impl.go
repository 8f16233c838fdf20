package service

import (
	"context"
	"fmt"

	"github.com/osokin/eventbook/internal/clock"
	"github.com/osokin/eventbook/internal/model"
	"github.com/osokin/eventbook/internal/repository"
)

// NotificationServiceImpl implements NotificationService.
type NotificationServiceImpl struct {
	notifications repository.NotificationRepository
	bookings      repository.BookingRepository
	clock         clock.Clock
}

// NewNotificationServiceImpl creates a new NotificationService implementation.
func NewNotificationServiceImpl(
	notifications repository.NotificationRepository,
	bookings repository.BookingRepository,
	clk clock.Clock,
) NotificationService {
	return &NotificationServiceImpl{
		notifications: notifications,
		bookings:      bookings,
		clock:         clk,
	}
}

// Create creates a notification in pending status.
func (s *NotificationServiceImpl) Create(
	ctx context.Context, params model.CreateNotificationParams,
) (*model.Notification, error) {
	return s.notifications.Create(ctx, &params, s.clock.Now())
}

// Get returns a notification by its ID.
func (s *NotificationServiceImpl) Get(ctx context.Context, id int64) (*model.Notification, error) {
	return s.notifications.GetByID(ctx, id)
}

// MarkSent transitions the notification to sent and stamps sent_at.
func (s *NotificationServiceImpl) MarkSent(ctx context.Context, id int64) (*model.Notification, error) {
	return s.notifications.MarkSent(ctx, id, s.clock.Now())
}

// MarkFailed transitions the notification to failed, appending detail to the
// message when provided.
func (s *NotificationServiceImpl) MarkFailed(ctx context.Context, id int64, detail string) (*model.Notification, error) {
	return s.notifications.MarkFailed(ctx, id, detail, s.clock.Now())
}

// MarkRead records the user's acknowledgment.
func (s *NotificationServiceImpl) MarkRead(ctx context.Context, id int64) (*model.Notification, error) {
	return s.notifications.MarkRead(ctx, id, s.clock.Now())
}

// Pending returns pending notifications oldest first.
func (s *NotificationServiceImpl) Pending(ctx context.Context) ([]*model.Notification, error) {
	return s.notifications.ListPending(ctx)
}

// ForUser returns the user's notifications newest first, optionally filtered.
func (s *NotificationServiceImpl) ForUser(
	ctx context.Context, userID int64, status *model.NotificationStatus,
) ([]*model.Notification, error) {
	return s.notifications.ListForUser(ctx, userID, status)
}

// NotifyAllParticipants creates one notification per booking of the event.
// It is the broadcast primitive for event-updated and cancellation fan-out.
func (s *NotificationServiceImpl) NotifyAllParticipants(
	ctx context.Context,
	event *model.Event,
	notificationType model.NotificationType,
	title, message string,
) ([]*model.Notification, error) {
	bookings, err := s.bookings.ListByEvent(ctx, event.ID)
	if err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}

	notifications := make([]*model.Notification, 0, len(bookings))
	for _, booking := range bookings {
		n, err := s.notifications.Create(ctx, &model.CreateNotificationParams{
			UserID:         booking.UserID,
			Type:           notificationType,
			Title:          title,
			Message:        message,
			RelatedEventID: &event.ID,
		}, s.clock.Now())
		if err != nil {
			return notifications, fmt.Errorf("notify participant %d: %w", booking.UserID, err)
		}
		notifications = append(notifications, n)
	}

	return notifications, nil
}
