package model

import (
	"fmt"
	"time"
)

// NotificationType identifies what a notification informs the user about.
type NotificationType string

const (
	// NotificationEventReminder reminds a booked user shortly before start.
	NotificationEventReminder NotificationType = "event_reminder"
	// NotificationBookingConfirmation confirms a successful booking.
	NotificationBookingConfirmation NotificationType = "booking_confirmation"
	// NotificationEventCancelled informs about a cancellation.
	NotificationEventCancelled NotificationType = "event_cancelled"
	// NotificationEventUpdated informs about changed event details.
	NotificationEventUpdated NotificationType = "event_updated"
)

// NotificationStatus is the delivery state of a notification.
type NotificationStatus string

const (
	// NotificationPending awaits dispatch; the initial state.
	NotificationPending NotificationStatus = "pending"
	// NotificationSent was delivered through one of the channels.
	NotificationSent NotificationStatus = "sent"
	// NotificationRead was acknowledged by the user; terminal.
	NotificationRead NotificationStatus = "read"
	// NotificationFailed could not be delivered; terminal, no retry.
	NotificationFailed NotificationStatus = "failed"
)

// ParseNotificationStatus validates a raw status value at the boundary.
func ParseNotificationStatus(raw string) (NotificationStatus, error) {
	switch NotificationStatus(raw) {
	case NotificationPending, NotificationSent, NotificationRead, NotificationFailed:
		return NotificationStatus(raw), nil
	default:
		return "", fmt.Errorf("%w: unknown notification status %q", ErrValidation, raw)
	}
}

// CanTransitionTo reports whether the delivery state machine allows moving
// from s to next. Allowed: pending->sent, pending->failed, pending->read,
// sent->read. Everything else is a programming error.
func (s NotificationStatus) CanTransitionTo(next NotificationStatus) bool {
	switch next {
	case NotificationSent, NotificationFailed:
		return s == NotificationPending
	case NotificationRead:
		return s == NotificationPending || s == NotificationSent
	default:
		return false
	}
}

// Notification represents a user-facing message with a delivery state machine.
type Notification struct {
	ID             int64              `json:"id"`
	UserID         int64              `json:"user_id"`
	Type           NotificationType   `json:"type"`
	Status         NotificationStatus `json:"status"`
	Title          string             `json:"title"`
	Message        string             `json:"message"`
	RelatedEventID *int64             `json:"related_event_id,omitempty"`
	SentAt         *time.Time         `json:"sent_at,omitempty"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}

// CreateNotificationParams represents parameters for creating a new
// notification. Status is always pending on creation.
type CreateNotificationParams struct {
	UserID         int64
	Type           NotificationType
	Title          string
	Message        string
	RelatedEventID *int64
}

// ReminderParams builds the event-reminder notification text for a booked user.
// A non-empty customMessage overrides the default body.
func ReminderParams(userID int64, event *Event, customMessage string) CreateNotificationParams {
	message := customMessage
	if message == "" {
		message = fmt.Sprintf("The event will start in an hour '%s'", event.Title)
	}

	return CreateNotificationParams{
		UserID:         userID,
		Type:           NotificationEventReminder,
		Title:          fmt.Sprintf("Reminder: %s", event.Title),
		Message:        message,
		RelatedEventID: &event.ID,
	}
}

// BookingConfirmationParams builds the booking-confirmation notification text.
func BookingConfirmationParams(userID int64, event *Event, seats int) CreateNotificationParams {
	return CreateNotificationParams{
		UserID:         userID,
		Type:           NotificationBookingConfirmation,
		Title:          fmt.Sprintf("Booking confirmed: %s", event.Title),
		Message:        fmt.Sprintf("You have successfully booked %d for '%s'", seats, event.Title),
		RelatedEventID: &event.ID,
	}
}

// EventCancelledParams builds the event-cancelled notification text.
func EventCancelledParams(userID int64, event *Event) CreateNotificationParams {
	return CreateNotificationParams{
		UserID:         userID,
		Type:           NotificationEventCancelled,
		Title:          fmt.Sprintf("The event has been cancelled: %s", event.Title),
		Message:        fmt.Sprintf("Unfortunately, '%s' has been cancelled.", event.Title),
		RelatedEventID: &event.ID,
	}
}

// EventUpdatedParams builds the event-updated notification text. The changes
// slice lists "field: new value" lines appended to the body.
func EventUpdatedParams(userID int64, event *Event, changes []string) CreateNotificationParams {
	message := fmt.Sprintf("Information about '%s' has been updated.", event.Title)
	if len(changes) > 0 {
		message += "\n\nChanges:"
		for _, change := range changes {
			message += "\n- " + change
		}
	}

	return CreateNotificationParams{
		UserID:         userID,
		Type:           NotificationEventUpdated,
		Title:          fmt.Sprintf("The event has been updated: %s", event.Title),
		Message:        message,
		RelatedEventID: &event.ID,
	}
}
