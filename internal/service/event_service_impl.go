package service

import (
	"context"
	"fmt"

	"github.com/osokin/eventbook/internal/clock"
	"github.com/osokin/eventbook/internal/model"
	"github.com/osokin/eventbook/internal/repository"
)

// EventServiceImpl implements EventService for catalog business logic.
type EventServiceImpl struct {
	events repository.EventRepository
	clock  clock.Clock
}

// NewEventServiceImpl creates a new EventService implementation.
func NewEventServiceImpl(events repository.EventRepository, clk clock.Clock) EventService {
	return &EventServiceImpl{events: events, clock: clk}
}

// ListOrdered returns all events in the canonical order: upcoming first, then
// by distance of start_time from now.
func (s *EventServiceImpl) ListOrdered(ctx context.Context) ([]*model.Event, error) {
	return s.events.ListOrdered(ctx, s.clock.Now())
}

// Get returns a single event with derived seat metrics.
func (s *EventServiceImpl) Get(ctx context.Context, id int64) (*model.Event, error) {
	return s.events.GetByID(ctx, id)
}

// Create creates a new upcoming event for the organizer.
func (s *EventServiceImpl) Create(
	ctx context.Context, params *model.CreateEventParams, organizer *model.User,
) (*model.Event, error) {
	if !organizer.IsStaff {
		return nil, fmt.Errorf("%w: only the organizers can create events", model.ErrForbidden)
	}

	now := s.clock.Now()
	if err := params.Validate(now); err != nil {
		return nil, err
	}

	exists, err := s.events.ExistsIdentical(ctx, params, organizer.ID)
	if err != nil {
		return nil, fmt.Errorf("check identical event: %w", err)
	}
	if exists {
		return nil, model.ErrDuplicateEvent
	}

	event := &model.Event{
		Title:          params.Title,
		Description:    params.Description,
		City:           params.City,
		StartTime:      params.StartTime,
		SeatsTotal:     params.SeatsTotal,
		SeatsAvailable: params.SeatsTotal,
		Status:         model.EventStatusUpcoming,
		OrganizerID:    organizer.ID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.events.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	return event, nil
}

// UpdateStatus changes the event status. Only the organizer of record may do
// so, and the raw value is rejected at this boundary when unrecognized.
func (s *EventServiceImpl) UpdateStatus(
	ctx context.Context, id int64, rawStatus string, organizer *model.User,
) (*model.Event, error) {
	event, err := s.events.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if event.OrganizerID != organizer.ID {
		return nil, fmt.Errorf("%w: only the event organizer can change its status", model.ErrForbidden)
	}

	status, err := model.ParseEventStatus(rawStatus)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	if err := s.events.UpdateStatus(ctx, id, status, now); err != nil {
		return nil, err
	}
	event.Status = status
	event.UpdatedAt = now

	return event, nil
}

// Delete removes the event. Only its organizer may delete it, and only within
// one hour of creation.
func (s *EventServiceImpl) Delete(ctx context.Context, id int64, organizer *model.User) error {
	event, err := s.events.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if event.OrganizerID != organizer.ID {
		return fmt.Errorf("%w: only the organizer can delete the event", model.ErrForbidden)
	}
	if s.clock.Now().Sub(event.CreatedAt) > model.EventDeleteWindow {
		return model.ErrDeleteWindow
	}

	return s.events.Delete(ctx, id)
}
