package worker

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/osokin/eventbook/internal/model"
	"github.com/osokin/eventbook/internal/queue"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeEventRepo struct {
	events map[int64]*model.Event
}

func newFakeEventRepo(events ...*model.Event) *fakeEventRepo {
	repo := &fakeEventRepo{events: make(map[int64]*model.Event)}
	for _, e := range events {
		repo.events[e.ID] = e
	}

	return repo
}

func (r *fakeEventRepo) Create(context.Context, *model.Event) error { return nil }

func (r *fakeEventRepo) GetByID(_ context.Context, id int64) (*model.Event, error) {
	event, ok := r.events[id]
	if !ok {
		return nil, model.ErrEventNotFound
	}

	return event, nil
}

func (r *fakeEventRepo) ExistsIdentical(context.Context, *model.CreateEventParams, int64) (bool, error) {
	return false, nil
}

func (r *fakeEventRepo) ListOrdered(context.Context, time.Time) ([]*model.Event, error) {
	return nil, nil
}

func (r *fakeEventRepo) ListAvailable(context.Context, time.Time) ([]*model.Event, error) {
	return nil, nil
}

func (r *fakeEventRepo) ListUserUpcoming(context.Context, int64, time.Time) ([]*model.Event, error) {
	return nil, nil
}

func (r *fakeEventRepo) ListStartingBetween(_ context.Context, from, to time.Time) ([]*model.Event, error) {
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
	event, ok := r.events[id]
	if !ok {
		return model.ErrEventNotFound
	}
	event.Status = status
	event.UpdatedAt = now

	return nil
}

func (r *fakeEventRepo) Delete(_ context.Context, id int64) error {
	delete(r.events, id)

	return nil
}

func (r *fakeEventRepo) FinishExpired(_ context.Context, cutoff, now time.Time) (int64, error) {
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
	bookings map[int64]*model.Booking
}

func newFakeBookingRepo(bookings ...*model.Booking) *fakeBookingRepo {
	repo := &fakeBookingRepo{bookings: make(map[int64]*model.Booking)}
	for _, b := range bookings {
		repo.bookings[b.ID] = b
	}

	return repo
}

func (r *fakeBookingRepo) CreateSerialized(
	context.Context, *model.CreateBookingParams, time.Time,
) (*model.Booking, error) {
	return nil, nil
}

func (r *fakeBookingRepo) GetByEventAndUser(context.Context, int64, int64) (*model.Booking, error) {
	return nil, model.ErrBookingNotFound
}

func (r *fakeBookingRepo) GetByID(_ context.Context, id int64) (*model.Booking, error) {
	booking, ok := r.bookings[id]
	if !ok {
		return nil, model.ErrBookingNotFound
	}

	return booking, nil
}

func (r *fakeBookingRepo) DeleteByEventAndUser(context.Context, int64, int64) error {
	return nil
}

func (r *fakeBookingRepo) ListByEvent(_ context.Context, eventID int64) ([]*model.Booking, error) {
	var out []*model.Booking
	for id := int64(0); id < 1000; id++ {
		if b, ok := r.bookings[id]; ok && b.EventID == eventID {
			out = append(out, b)
		}
	}

	return out, nil
}

type fakeNotificationRepo struct {
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

func (r *fakeNotificationRepo) ListPending(context.Context) ([]*model.Notification, error) {
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

func (r *fakeNotificationRepo) byUser(userID int64) []*model.Notification {
	out, _ := r.ListForUser(context.Background(), userID, nil)

	return out
}

type enqueuedJob struct {
	Lane    queue.Lane
	Type    queue.JobType
	Payload any
}

type fakeEnqueuer struct {
	jobs []enqueuedJob
}

func (f *fakeEnqueuer) Enqueue(_ context.Context, lane queue.Lane, jobType queue.JobType, payload any) error {
	f.jobs = append(f.jobs, enqueuedJob{Lane: lane, Type: jobType, Payload: payload})

	return nil
}

type fakeSender struct {
	ok  bool
	err error
}

func (f *fakeSender) Send(context.Context, *model.Notification) (bool, error) {
	return f.ok, f.err
}
