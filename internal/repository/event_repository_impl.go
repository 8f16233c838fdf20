package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osokin/eventbook/internal/model"
)

// Events are always listed with the same two-key comparator: upcoming first,
// then distance of start_time from now, ascending. Among past events the most
// recently concluded sorts first.
const eventOrderClause = `ORDER BY CASE WHEN e.status = 'upcoming' THEN 0 ELSE 1 END,
         ABS(EXTRACT(EPOCH FROM (e.start_time - $1::timestamptz)))`

const eventSelectColumns = `e.id, e.title, e.description, e.city, e.start_time, e.seats_total,
       e.status, e.organizer_id, e.created_at, e.updated_at,
       COALESCE(SUM(b.seats), 0)::int AS seats_booked`

// EventRepositoryImpl implements EventRepository using PostgreSQL.
type EventRepositoryImpl struct {
	pool *pgxpool.Pool
}

// NewEventRepositoryImpl creates a new EventRepository implementation.
func NewEventRepositoryImpl(pool *pgxpool.Pool) EventRepository {
	return &EventRepositoryImpl{pool: pool}
}

// Create inserts a new event and fills in its generated ID.
func (r *EventRepositoryImpl) Create(ctx context.Context, event *model.Event) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO events (title, description, city, start_time, seats_total, status, organizer_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
		 RETURNING id`,
		event.Title, event.Description, event.City, event.StartTime,
		event.SeatsTotal, event.Status, event.OrganizerID, event.CreatedAt,
	).Scan(&event.ID)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}

	return nil
}

// GetByID retrieves an event with derived seat metrics.
func (r *EventRepositoryImpl) GetByID(ctx context.Context, id int64) (*model.Event, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+eventSelectColumns+`
		 FROM events e
		 LEFT JOIN bookings b ON b.event_id = e.id
		 WHERE e.id = $1
		 GROUP BY e.id`,
		id,
	)

	event, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrEventNotFound
		}

		return nil, fmt.Errorf("get event: %w", err)
	}

	return event, nil
}

// ExistsIdentical reports whether an event with the exact same attributes
// and organizer already exists.
func (r *EventRepositoryImpl) ExistsIdentical(
	ctx context.Context, params *model.CreateEventParams, organizerID int64,
) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (
		   SELECT 1 FROM events
		   WHERE title = $1 AND description = $2 AND city = $3
		     AND start_time = $4 AND seats_total = $5 AND organizer_id = $6
		 )`,
		params.Title, params.Description, params.City,
		params.StartTime, params.SeatsTotal, organizerID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check identical event: %w", err)
	}

	return exists, nil
}

// ListOrdered returns all events in the canonical order.
func (r *EventRepositoryImpl) ListOrdered(ctx context.Context, now time.Time) ([]*model.Event, error) {
	return r.listEvents(ctx,
		`SELECT `+eventSelectColumns+`
		 FROM events e
		 LEFT JOIN bookings b ON b.event_id = e.id
		 GROUP BY e.id
		 `+eventOrderClause,
		now,
	)
}

// ListAvailable returns upcoming events with at least one free seat.
func (r *EventRepositoryImpl) ListAvailable(ctx context.Context, now time.Time) ([]*model.Event, error) {
	return r.listEvents(ctx,
		`SELECT `+eventSelectColumns+`
		 FROM events e
		 LEFT JOIN bookings b ON b.event_id = e.id
		 WHERE e.status = 'upcoming'
		 GROUP BY e.id
		 HAVING e.seats_total - COALESCE(SUM(b.seats), 0) >= 1
		 `+eventOrderClause,
		now,
	)
}

// ListUserUpcoming returns the user's booked events that are upcoming and
// strictly in the future.
func (r *EventRepositoryImpl) ListUserUpcoming(
	ctx context.Context, userID int64, now time.Time,
) ([]*model.Event, error) {
	return r.listEvents(ctx,
		`SELECT `+eventSelectColumns+`
		 FROM events e
		 JOIN bookings ub ON ub.event_id = e.id AND ub.user_id = $2
		 LEFT JOIN bookings b ON b.event_id = e.id
		 WHERE e.status = 'upcoming' AND e.start_time > $1
		 GROUP BY e.id
		 `+eventOrderClause,
		now, userID,
	)
}

// ListStartingBetween returns upcoming events with start_time in [from, to).
func (r *EventRepositoryImpl) ListStartingBetween(ctx context.Context, from, to time.Time) ([]*model.Event, error) {
	return r.listEvents(ctx,
		`SELECT `+eventSelectColumns+`
		 FROM events e
		 LEFT JOIN bookings b ON b.event_id = e.id
		 WHERE e.status = 'upcoming' AND e.start_time >= $1 AND e.start_time < $2
		 GROUP BY e.id
		 ORDER BY e.start_time`,
		from, to,
	)
}

// UpdateStatus mutates status and updated_at only.
func (r *EventRepositoryImpl) UpdateStatus(
	ctx context.Context, id int64, status model.EventStatus, now time.Time,
) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE events SET status = $2, updated_at = $3 WHERE id = $1`,
		id, status, now,
	)
	if err != nil {
		return fmt.Errorf("update event status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrEventNotFound
	}

	return nil
}

// Delete removes the event. Bookings and notifications cascade via FK.
func (r *EventRepositoryImpl) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrEventNotFound
	}

	return nil
}

// FinishExpired bulk-transitions upcoming events that started before cutoff
// to completed and returns the count affected.
func (r *EventRepositoryImpl) FinishExpired(ctx context.Context, cutoff, now time.Time) (int64, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE events SET status = 'completed', updated_at = $2
		 WHERE status = 'upcoming' AND start_time <= $1`,
		cutoff, now,
	)
	if err != nil {
		return 0, fmt.Errorf("finish expired events: %w", err)
	}

	return tag.RowsAffected(), nil
}

func (r *EventRepositoryImpl) listEvents(ctx context.Context, query string, args ...any) ([]*model.Event, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var events []*model.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, event)
	}

	return events, rows.Err()
}

func scanEvent(row pgx.Row) (*model.Event, error) {
	var e model.Event
	err := row.Scan(
		&e.ID, &e.Title, &e.Description, &e.City, &e.StartTime, &e.SeatsTotal,
		&e.Status, &e.OrganizerID, &e.CreatedAt, &e.UpdatedAt, &e.SeatsBooked,
	)
	if err != nil {
		return nil, err
	}
	e.SeatsAvailable = e.SeatsTotal - e.SeatsBooked

	return &e, nil
}
