package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osokin/eventbook/internal/clock"
	"github.com/osokin/eventbook/internal/model"
	"github.com/osokin/eventbook/internal/queue"
	"github.com/osokin/eventbook/internal/repository"
)

// BookingServiceImpl implements BookingService for seat-inventory logic.
//
// Notification work is enqueued only after the booking transaction has
// committed, and enqueue failures never roll back or fail the triggering
// operation.
type BookingServiceImpl struct {
	events   repository.EventRepository
	bookings repository.BookingRepository
	tasks    TaskEnqueuer
	clock    clock.Clock
	logger   *slog.Logger
}

// NewBookingServiceImpl creates a new BookingService implementation.
func NewBookingServiceImpl(
	events repository.EventRepository,
	bookings repository.BookingRepository,
	tasks TaskEnqueuer,
	clk clock.Clock,
	logger *slog.Logger,
) BookingService {
	return &BookingServiceImpl{
		events:   events,
		bookings: bookings,
		tasks:    tasks,
		clock:    clk,
		logger:   logger,
	}
}

// AvailableEvents returns upcoming events with at least one free seat.
func (s *BookingServiceImpl) AvailableEvents(ctx context.Context) ([]*model.Event, error) {
	return s.events.ListAvailable(ctx, s.clock.Now())
}

// Create books seats for the visitor. The capacity check and the insert run
// in one serialized transaction inside the repository.
func (s *BookingServiceImpl) Create(
	ctx context.Context, visitor *model.User, eventID int64, seats int,
) (*model.Booking, error) {
	if seats < 1 {
		return nil, fmt.Errorf("%w: seats must be at least 1", model.ErrValidation)
	}

	booking, err := s.bookings.CreateSerialized(ctx, &model.CreateBookingParams{
		EventID: eventID,
		UserID:  visitor.ID,
		Seats:   seats,
	}, s.clock.Now())
	if err != nil {
		return nil, err
	}

	s.logger.Info("booking created",
		slog.Int64("booking_id", booking.ID),
		slog.Int64("event_id", eventID),
		slog.Int64("user_id", visitor.ID),
		slog.Int("seats", seats),
	)

	err = s.tasks.Enqueue(ctx, queue.LaneUrgent, queue.JobBookingConfirmation,
		queue.BookingConfirmationPayload{BookingID: booking.ID})
	if err != nil {
		s.logger.Error("failed to enqueue booking confirmation",
			slog.Int64("booking_id", booking.ID),
			slog.String("error", err.Error()),
		)
	}

	return booking, nil
}

// Cancel deletes the visitor's booking for an event that has not started and
// enqueues a cancellation notice addressed to the cancelling visitor.
func (s *BookingServiceImpl) Cancel(ctx context.Context, visitor *model.User, eventID int64) error {
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return err
	}
	if !event.StartTime.After(s.clock.Now()) {
		return fmt.Errorf("%w: cannot cancel booking for past events", model.ErrValidation)
	}

	if err := s.bookings.DeleteByEventAndUser(ctx, eventID, visitor.ID); err != nil {
		return err
	}

	s.logger.Info("booking cancelled",
		slog.Int64("event_id", eventID),
		slog.Int64("user_id", visitor.ID),
	)

	err = s.tasks.Enqueue(ctx, queue.LaneUrgent, queue.JobEventCancelled,
		queue.EventCancelledPayload{UserID: visitor.ID, EventID: eventID})
	if err != nil {
		s.logger.Error("failed to enqueue cancellation notice",
			slog.Int64("event_id", eventID),
			slog.String("error", err.Error()),
		)
	}

	return nil
}

// UpcomingForUser returns the visitor's booked events that are upcoming and
// strictly in the future.
func (s *BookingServiceImpl) UpcomingForUser(ctx context.Context, visitor *model.User) ([]*model.Event, error) {
	return s.events.ListUserUpcoming(ctx, visitor.ID, s.clock.Now())
}
