package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/osokin/eventbook/internal/model"
	"github.com/osokin/eventbook/internal/queue"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeEventRepo struct {
	mu     sync.Mutex
	events map[int64]*model.Event
	nextID int64
}

func newFakeEventRepo(events ...*model.Event) *fakeEventRepo {
	repo := &fakeEventRepo{events: make(map[int64]*model.Event), nextID: 1}
	for _, e := range events {
		if e.ID >= repo.nextID {
			repo.nextID = e.ID + 1
		}
		repo.events[e.ID] = e
	}

	return repo
}

func (r *fakeEventRepo) Create(_ context.Context, event *model.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	event.ID = r.nextID
	r.nextID++
	r.events[event.ID] = event

	return nil
}

func (r *fakeEventRepo) GetByID(_ context.Context, id int64) (*model.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	event, ok := r.events[id]
	if !ok {
		return nil, model.ErrEventNotFound
	}

	return event, nil
}

func (r *fakeEventRepo) ExistsIdentical(
	_ context.Context, params *model.CreateEventParams, organizerID int64,
) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, e := range r.events {
		if e.OrganizerID == organizerID &&
			e.Title == params.Title &&
			e.Description == params.Description &&
			e.City == params.City &&
			e.StartTime.Equal(params.StartTime) &&
			e.SeatsTotal == params.SeatsTotal {
			return true, nil
		}
	}

	return false, nil
}

func (r *fakeEventRepo) ListOrdered(_ context.Context, _ time.Time) ([]*model.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*model.Event, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e)
	}

	return out, nil
}

func (r *fakeEventRepo) ListAvailable(_ context.Context, _ time.Time) ([]*model.Event, error) {
	return r.ListOrdered(nil, time.Time{})
}

func (r *fakeEventRepo) ListUserUpcoming(_ context.Context, _ int64, _ time.Time) ([]*model.Event, error) {
	return r.ListOrdered(nil, time.Time{})
}

func (r *fakeEventRepo) ListStartingBetween(_ context.Context, from, to time.Time) ([]*model.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*model.Event
	for _, e := range r.events {
		if e.Status != model.EventStatusUpcoming {
			continue
		}
		if !e.StartTime.Before(from) && e.StartTime.Before(to) {
			out = append(out, e)
		}
	}

	return out, nil
}

func (r *fakeEventRepo) UpdateStatus(_ context.Context, id int64, status model.EventStatus, now time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	event, ok := r.events[id]
	if !ok {
		return model.ErrEventNotFound
	}
	event.Status = status
	event.UpdatedAt = now

	return nil
}

func (r *fakeEventRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.events[id]; !ok {
		return model.ErrEventNotFound
	}
	delete(r.events, id)

	return nil
}

func (r *fakeEventRepo) FinishExpired(_ context.Context, cutoff, now time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var finished int64
	for _, e := range r.events {
		if e.Status == model.EventStatusUpcoming && !e.StartTime.After(cutoff) {
			e.Status = model.EventStatusCompleted
			e.UpdatedAt = now
			finished++
		}
	}

	return finished, nil
}

type fakeBookingRepo struct {
	mu       sync.Mutex
	events   *fakeEventRepo
	bookings map[int64]*model.Booking
	nextID   int64
}

func newFakeBookingRepo(events *fakeEventRepo, bookings ...*model.Booking) *fakeBookingRepo {
	repo := &fakeBookingRepo{events: events, bookings: make(map[int64]*model.Booking), nextID: 1}
	for _, b := range bookings {
		if b.ID >= repo.nextID {
			repo.nextID = b.ID + 1
		}
		repo.bookings[b.ID] = b
	}

	return repo
}

func (r *fakeBookingRepo) CreateSerialized(
	ctx context.Context, params *model.CreateBookingParams, now time.Time,
) (*model.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	event, err := r.events.GetByID(ctx, params.EventID)
	if err != nil {
		return nil, err
	}
	if event.Status != model.EventStatusUpcoming {
		return nil, fmt.Errorf("%w: the event is not open for booking", model.ErrValidation)
	}

	booked := 0
	for _, b := range r.bookings {
		if b.EventID != params.EventID {
			continue
		}
		if b.UserID == params.UserID {
			return nil, model.ErrAlreadyBooked
		}
		booked += b.Seats
	}
	if booked+params.Seats > event.SeatsTotal {
		return nil, model.ErrNotEnoughSeats
	}

	booking := &model.Booking{
		ID:        r.nextID,
		EventID:   params.EventID,
		UserID:    params.UserID,
		Seats:     params.Seats,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.nextID++
	r.bookings[booking.ID] = booking

	return booking, nil
}

func (r *fakeBookingRepo) GetByEventAndUser(_ context.Context, eventID, userID int64) (*model.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, b := range r.bookings {
		if b.EventID == eventID && b.UserID == userID {
			return b, nil
		}
	}

	return nil, model.ErrBookingNotFound
}

func (r *fakeBookingRepo) GetByID(_ context.Context, id int64) (*model.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	booking, ok := r.bookings[id]
	if !ok {
		return nil, model.ErrBookingNotFound
	}

	return booking, nil
}

func (r *fakeBookingRepo) DeleteByEventAndUser(_ context.Context, eventID, userID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, b := range r.bookings {
		if b.EventID == eventID && b.UserID == userID {
			delete(r.bookings, id)
			return nil
		}
	}

	return model.ErrBookingNotFound
}

func (r *fakeBookingRepo) ListByEvent(_ context.Context, eventID int64) ([]*model.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*model.Booking
	for _, b := range r.bookings {
		if b.EventID == eventID {
			out = append(out, b)
		}
	}

	return out, nil
}

func (r *fakeBookingRepo) totalSeats(eventID int64) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	total := 0
	for _, b := range r.bookings {
		if b.EventID == eventID {
			total += b.Seats
		}
	}

	return total
}

type fakeNotificationRepo struct {
	mu            sync.Mutex
	notifications map[int64]*model.Notification
	nextID        int64
}

func newFakeNotificationRepo(notifications ...*model.Notification) *fakeNotificationRepo {
	repo := &fakeNotificationRepo{notifications: make(map[int64]*model.Notification), nextID: 1}
	for _, n := range notifications {
		if n.ID >= repo.nextID {
			repo.nextID = n.ID + 1
		}
		repo.notifications[n.ID] = n
	}

	return repo
}

func (r *fakeNotificationRepo) Create(
	_ context.Context, params *model.CreateNotificationParams, now time.Time,
) (*model.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := &model.Notification{
		ID:             r.nextID,
		UserID:         params.UserID,
		Type:           params.Type,
		Status:         model.NotificationPending,
		Title:          params.Title,
		Message:        params.Message,
		RelatedEventID: params.RelatedEventID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	r.nextID++
	r.notifications[n.ID] = n

	return n, nil
}

func (r *fakeNotificationRepo) GetByID(_ context.Context, id int64) (*model.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n, ok := r.notifications[id]
	if !ok {
		return nil, model.ErrNotificationNotFound
	}

	return n, nil
}

func (r *fakeNotificationRepo) MarkSent(_ context.Context, id int64, now time.Time) (*model.Notification, error) {
	return r.transition(id, model.NotificationSent, "", now)
}

func (r *fakeNotificationRepo) MarkFailed(
	_ context.Context, id int64, detail string, now time.Time,
) (*model.Notification, error) {
	return r.transition(id, model.NotificationFailed, detail, now)
}

func (r *fakeNotificationRepo) MarkRead(_ context.Context, id int64, now time.Time) (*model.Notification, error) {
	return r.transition(id, model.NotificationRead, "", now)
}

func (r *fakeNotificationRepo) transition(
	id int64, next model.NotificationStatus, detail string, now time.Time,
) (*model.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n, ok := r.notifications[id]
	if !ok {
		return nil, model.ErrNotificationNotFound
	}
	if !n.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w: %s -> %s", model.ErrInvalidTransition, n.Status, next)
	}

	n.Status = next
	n.UpdatedAt = now
	if next == model.NotificationSent {
		sentAt := now
		n.SentAt = &sentAt
	}
	if next == model.NotificationFailed && detail != "" {
		n.Message += "\n\nError: " + detail
	}

	return n, nil
}

func (r *fakeNotificationRepo) ListPending(_ context.Context) ([]*model.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*model.Notification
	for id := int64(1); id < r.nextID; id++ {
		if n, ok := r.notifications[id]; ok && n.Status == model.NotificationPending {
			out = append(out, n)
		}
	}

	return out, nil
}

func (r *fakeNotificationRepo) ListForUser(
	_ context.Context, userID int64, status *model.NotificationStatus,
) ([]*model.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*model.Notification
	for id := int64(1); id < r.nextID; id++ {
		n, ok := r.notifications[id]
		if !ok || n.UserID != userID {
			continue
		}
		if status != nil && n.Status != *status {
			continue
		}
		out = append(out, n)
	}

	return out, nil
}

type enqueuedJob struct {
	Lane    queue.Lane
	Type    queue.JobType
	Payload any
}

type fakeEnqueuer struct {
	mu   sync.Mutex
	jobs []enqueuedJob
	err  error
}

func (f *fakeEnqueuer) Enqueue(_ context.Context, lane queue.Lane, jobType queue.JobType, payload any) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return f.err
	}
	f.jobs = append(f.jobs, enqueuedJob{Lane: lane, Type: jobType, Payload: payload})

	return nil
}

func (f *fakeEnqueuer) all() []enqueuedJob {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]enqueuedJob(nil), f.jobs...)
}

type fakeSender struct {
	ok   bool
	err  error
	sent []*model.Notification
}

func (f *fakeSender) Send(_ context.Context, n *model.Notification) (bool, error) {
	f.sent = append(f.sent, n)

	return f.ok, f.err
}
