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

// BookingRepositoryImpl implements BookingRepository using PostgreSQL.
type BookingRepositoryImpl struct {
	pool *pgxpool.Pool
}

// NewBookingRepositoryImpl creates a new BookingRepository implementation.
func NewBookingRepositoryImpl(pool *pgxpool.Pool) BookingRepository {
	return &BookingRepositoryImpl{pool: pool}
}

// CreateSerialized books seats inside a single transaction.
//
// SELECT ... FOR UPDATE takes a row-level lock on the event, so concurrent
// bookings against the same event serialize on the capacity check. Two
// requests that individually fit but jointly exceed seats_total cannot both
// commit.
func (r *BookingRepositoryImpl) CreateSerialized(
	ctx context.Context, params *model.CreateBookingParams, now time.Time,
) (*model.Booking, error) {
	var booking *model.Booking

	err := withTx(ctx, r.pool, func(tx pgx.Tx) error {
		var status model.EventStatus
		var seatsTotal int
		err := tx.QueryRow(ctx,
			`SELECT status, seats_total FROM events WHERE id = $1 FOR UPDATE`,
			params.EventID,
		).Scan(&status, &seatsTotal)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return model.ErrEventNotFound
			}

			return fmt.Errorf("lock event row: %w", err)
		}

		if status != model.EventStatusUpcoming {
			return fmt.Errorf("%w: event is not available for booking", model.ErrValidation)
		}

		var exists bool
		err = tx.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM bookings WHERE event_id = $1 AND user_id = $2)`,
			params.EventID, params.UserID,
		).Scan(&exists)
		if err != nil {
			return fmt.Errorf("check duplicate booking: %w", err)
		}
		if exists {
			return model.ErrAlreadyBooked
		}

		var seatsBooked int
		err = tx.QueryRow(ctx,
			`SELECT COALESCE(SUM(seats), 0) FROM bookings WHERE event_id = $1`,
			params.EventID,
		).Scan(&seatsBooked)
		if err != nil {
			return fmt.Errorf("sum booked seats: %w", err)
		}

		available := seatsTotal - seatsBooked
		if params.Seats > available {
			return fmt.Errorf("%w (%d/%d)", model.ErrNotEnoughSeats, params.Seats, available)
		}

		b := &model.Booking{
			EventID:   params.EventID,
			UserID:    params.UserID,
			Seats:     params.Seats,
			CreatedAt: now,
			UpdatedAt: now,
		}
		err = tx.QueryRow(ctx,
			`INSERT INTO bookings (event_id, user_id, seats, attended, created_at, updated_at)
			 VALUES ($1, $2, $3, false, $4, $4)
			 RETURNING id`,
			b.EventID, b.UserID, b.Seats, now,
		).Scan(&b.ID)
		if err != nil {
			return fmt.Errorf("insert booking: %w", err)
		}

		booking = b

		return nil
	})
	if err != nil {
		return nil, err
	}

	return booking, nil
}

// GetByEventAndUser returns the user's booking for the event.
func (r *BookingRepositoryImpl) GetByEventAndUser(ctx context.Context, eventID, userID int64) (*model.Booking, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT id, event_id, user_id, seats, attended, created_at, updated_at
		 FROM bookings WHERE event_id = $1 AND user_id = $2`,
		eventID, userID,
	)

	return scanBookingRow(row)
}

// GetByID returns a booking by its ID.
func (r *BookingRepositoryImpl) GetByID(ctx context.Context, id int64) (*model.Booking, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT id, event_id, user_id, seats, attended, created_at, updated_at
		 FROM bookings WHERE id = $1`,
		id,
	)

	return scanBookingRow(row)
}

// DeleteByEventAndUser removes the user's booking for the event.
func (r *BookingRepositoryImpl) DeleteByEventAndUser(ctx context.Context, eventID, userID int64) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM bookings WHERE event_id = $1 AND user_id = $2`,
		eventID, userID,
	)
	if err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrBookingNotFound
	}

	return nil
}

// ListByEvent returns all bookings of an event, oldest first.
func (r *BookingRepositoryImpl) ListByEvent(ctx context.Context, eventID int64) ([]*model.Booking, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, event_id, user_id, seats, attended, created_at, updated_at
		 FROM bookings WHERE event_id = $1
		 ORDER BY created_at`,
		eventID,
	)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*model.Booking
	for rows.Next() {
		var b model.Booking
		if err := rows.Scan(&b.ID, &b.EventID, &b.UserID, &b.Seats, &b.Attended, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		bookings = append(bookings, &b)
	}

	return bookings, rows.Err()
}

func scanBookingRow(row pgx.Row) (*model.Booking, error) {
	var b model.Booking
	err := row.Scan(&b.ID, &b.EventID, &b.UserID, &b.Seats, &b.Attended, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrBookingNotFound
		}

		return nil, fmt.Errorf("get booking: %w", err)
	}

	return &b, nil
}
