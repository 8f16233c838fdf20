package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osokin/eventbook/internal/clock"
	"github.com/osokin/eventbook/internal/model"
	"github.com/osokin/eventbook/internal/queue"
)

func TestBookingServiceCreate(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	visitor := &model.User{ID: 2, Username: "bob"}

	newRepos := func(seatsTotal int) (*fakeEventRepo, *fakeBookingRepo) {
		events := newFakeEventRepo(&model.Event{
			ID:          10,
			Title:       "Go Meetup",
			StartTime:   now.Add(48 * time.Hour),
			SeatsTotal:  seatsTotal,
			Status:      model.EventStatusUpcoming,
			OrganizerID: 1,
		})

		return events, newFakeBookingRepo(events)
	}

	t.Run("books and enqueues confirmation", func(t *testing.T) {
		events, bookings := newRepos(10)
		tasks := &fakeEnqueuer{}
		svc := NewBookingServiceImpl(events, bookings, tasks, clock.NewFixed(now), discardLogger())

		booking, err := svc.Create(context.Background(), visitor, 10, 2)
		require.NoError(t, err)
		assert.Equal(t, 2, booking.Seats)

		jobs := tasks.all()
		require.Len(t, jobs, 1)
		assert.Equal(t, queue.LaneUrgent, jobs[0].Lane)
		assert.Equal(t, queue.JobBookingConfirmation, jobs[0].Type)
		assert.Equal(t, queue.BookingConfirmationPayload{BookingID: booking.ID}, jobs[0].Payload)
	})

	t.Run("zero seats rejected", func(t *testing.T) {
		events, bookings := newRepos(10)
		svc := NewBookingServiceImpl(events, bookings, &fakeEnqueuer{}, clock.NewFixed(now), discardLogger())

		_, err := svc.Create(context.Background(), visitor, 10, 0)
		require.ErrorIs(t, err, model.ErrValidation)
	})

	t.Run("second booking by same user rejected", func(t *testing.T) {
		events, bookings := newRepos(10)
		svc := NewBookingServiceImpl(events, bookings, &fakeEnqueuer{}, clock.NewFixed(now), discardLogger())

		_, err := svc.Create(context.Background(), visitor, 10, 2)
		require.NoError(t, err)

		_, err = svc.Create(context.Background(), visitor, 10, 1)
		require.ErrorIs(t, err, model.ErrAlreadyBooked)
	})

	t.Run("over capacity rejected", func(t *testing.T) {
		events, bookings := newRepos(5)
		svc := NewBookingServiceImpl(events, bookings, &fakeEnqueuer{}, clock.NewFixed(now), discardLogger())

		_, err := svc.Create(context.Background(), visitor, 10, 3)
		require.NoError(t, err)

		other := &model.User{ID: 3}
		_, err = svc.Create(context.Background(), other, 10, 3)
		require.ErrorIs(t, err, model.ErrNotEnoughSeats)

		// The remaining two seats are still bookable.
		_, err = svc.Create(context.Background(), other, 10, 2)
		require.NoError(t, err)
	})

	t.Run("missing event", func(t *testing.T) {
		events, bookings := newRepos(10)
		svc := NewBookingServiceImpl(events, bookings, &fakeEnqueuer{}, clock.NewFixed(now), discardLogger())

		_, err := svc.Create(context.Background(), visitor, 99, 1)
		require.ErrorIs(t, err, model.ErrEventNotFound)
	})

	t.Run("enqueue failure does not fail the booking", func(t *testing.T) {
		events, bookings := newRepos(10)
		tasks := &fakeEnqueuer{err: context.DeadlineExceeded}
		svc := NewBookingServiceImpl(events, bookings, tasks, clock.NewFixed(now), discardLogger())

		booking, err := svc.Create(context.Background(), visitor, 10, 1)
		require.NoError(t, err)
		assert.NotZero(t, booking.ID)
	})

	t.Run("concurrent requests never oversell", func(t *testing.T) {
		events, bookings := newRepos(10)
		svc := NewBookingServiceImpl(events, bookings, &fakeEnqueuer{}, clock.NewFixed(now), discardLogger())

		var wg sync.WaitGroup
		for i := range 8 {
			wg.Add(1)
			go func(userID int64) {
				defer wg.Done()
				_, _ = svc.Create(context.Background(), &model.User{ID: userID}, 10, 6)
			}(int64(100 + i))
		}
		wg.Wait()

		assert.LessOrEqual(t, bookings.totalSeats(10), 10)
	})
}

func TestBookingServiceCancel(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	visitor := &model.User{ID: 2, Username: "bob"}

	newRepos := func(startTime time.Time) (*fakeEventRepo, *fakeBookingRepo) {
		events := newFakeEventRepo(&model.Event{
			ID:          10,
			Title:       "Go Meetup",
			StartTime:   startTime,
			SeatsTotal:  10,
			Status:      model.EventStatusUpcoming,
			OrganizerID: 1,
		})
		bookings := newFakeBookingRepo(events, &model.Booking{
			ID: 5, EventID: 10, UserID: visitor.ID, Seats: 2,
		})

		return events, bookings
	}

	t.Run("cancels and notifies the visitor", func(t *testing.T) {
		events, bookings := newRepos(now.Add(2 * time.Hour))
		tasks := &fakeEnqueuer{}
		svc := NewBookingServiceImpl(events, bookings, tasks, clock.NewFixed(now), discardLogger())

		require.NoError(t, svc.Cancel(context.Background(), visitor, 10))

		_, err := bookings.GetByEventAndUser(context.Background(), 10, visitor.ID)
		require.ErrorIs(t, err, model.ErrBookingNotFound)

		jobs := tasks.all()
		require.Len(t, jobs, 1)
		assert.Equal(t, queue.JobEventCancelled, jobs[0].Type)
		assert.Equal(t, queue.EventCancelledPayload{UserID: visitor.ID, EventID: 10}, jobs[0].Payload)
	})

	t.Run("past event rejected", func(t *testing.T) {
		events, bookings := newRepos(now.Add(-time.Minute))
		svc := NewBookingServiceImpl(events, bookings, &fakeEnqueuer{}, clock.NewFixed(now), discardLogger())

		err := svc.Cancel(context.Background(), visitor, 10)
		require.ErrorIs(t, err, model.ErrValidation)
	})

	t.Run("no booking to cancel", func(t *testing.T) {
		events, bookings := newRepos(now.Add(2 * time.Hour))
		svc := NewBookingServiceImpl(events, bookings, &fakeEnqueuer{}, clock.NewFixed(now), discardLogger())

		other := &model.User{ID: 7}
		err := svc.Cancel(context.Background(), other, 10)
		require.ErrorIs(t, err, model.ErrBookingNotFound)
	})
}
