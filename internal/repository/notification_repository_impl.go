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

const notificationColumns = `id, user_id, type, status, title, message, related_event_id, sent_at, created_at, updated_at`

// NotificationRepositoryImpl implements NotificationRepository using PostgreSQL.
//
// The Mark methods guard the allowed source statuses in their WHERE clause, so
// a disallowed transition can never be written; it surfaces as
// model.ErrInvalidTransition instead.
type NotificationRepositoryImpl struct {
	pool *pgxpool.Pool
}

// NewNotificationRepositoryImpl creates a new NotificationRepository implementation.
func NewNotificationRepositoryImpl(pool *pgxpool.Pool) NotificationRepository {
	return &NotificationRepositoryImpl{pool: pool}
}

// Create inserts a new notification in pending status.
func (r *NotificationRepositoryImpl) Create(
	ctx context.Context, params *model.CreateNotificationParams, now time.Time,
) (*model.Notification, error) {
	n := &model.Notification{
		UserID:         params.UserID,
		Type:           params.Type,
		Status:         model.NotificationPending,
		Title:          params.Title,
		Message:        params.Message,
		RelatedEventID: params.RelatedEventID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	err := r.pool.QueryRow(ctx,
		`INSERT INTO notifications (user_id, type, status, title, message, related_event_id, created_at, updated_at)
		 VALUES ($1, $2, 'pending', $3, $4, $5, $6, $6)
		 RETURNING id`,
		n.UserID, n.Type, n.Title, n.Message, n.RelatedEventID, now,
	).Scan(&n.ID)
	if err != nil {
		return nil, fmt.Errorf("insert notification: %w", err)
	}

	return n, nil
}

// GetByID returns a notification by its ID.
func (r *NotificationRepositoryImpl) GetByID(ctx context.Context, id int64) (*model.Notification, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+notificationColumns+` FROM notifications WHERE id = $1`, id)

	n, err := scanNotification(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNotificationNotFound
		}

		return nil, fmt.Errorf("get notification: %w", err)
	}

	return n, nil
}

// MarkSent transitions pending -> sent and stamps sent_at.
func (r *NotificationRepositoryImpl) MarkSent(ctx context.Context, id int64, now time.Time) (*model.Notification, error) {
	row := r.pool.QueryRow(ctx,
		`UPDATE notifications
		 SET status = 'sent', sent_at = $2, updated_at = $2
		 WHERE id = $1 AND status = 'pending'
		 RETURNING `+notificationColumns,
		id, now,
	)

	return r.finishMark(ctx, id, row)
}

// MarkFailed transitions pending -> failed, appending the error detail to the
// message when provided.
func (r *NotificationRepositoryImpl) MarkFailed(
	ctx context.Context, id int64, detail string, now time.Time,
) (*model.Notification, error) {
	row := r.pool.QueryRow(ctx,
		`UPDATE notifications
		 SET status = 'failed',
		     message = message || CASE WHEN $2 <> '' THEN e'\n\nError: ' || $2 ELSE '' END,
		     updated_at = $3
		 WHERE id = $1 AND status = 'pending'
		 RETURNING `+notificationColumns,
		id, detail, now,
	)

	return r.finishMark(ctx, id, row)
}

// MarkRead transitions pending|sent -> read on user acknowledgment.
func (r *NotificationRepositoryImpl) MarkRead(ctx context.Context, id int64, now time.Time) (*model.Notification, error) {
	row := r.pool.QueryRow(ctx,
		`UPDATE notifications
		 SET status = 'read', updated_at = $2
		 WHERE id = $1 AND status IN ('pending', 'sent')
		 RETURNING `+notificationColumns,
		id, now,
	)

	return r.finishMark(ctx, id, row)
}

// ListPending returns pending notifications oldest first, the queue order for
// the batch fallback channel.
func (r *NotificationRepositoryImpl) ListPending(ctx context.Context) ([]*model.Notification, error) {
	return r.list(ctx,
		`SELECT `+notificationColumns+`
		 FROM notifications WHERE status = 'pending'
		 ORDER BY created_at`,
	)
}

// ListForUser returns the user's notifications newest first, optionally
// filtered by status.
func (r *NotificationRepositoryImpl) ListForUser(
	ctx context.Context, userID int64, status *model.NotificationStatus,
) ([]*model.Notification, error) {
	if status != nil {
		return r.list(ctx,
			`SELECT `+notificationColumns+`
			 FROM notifications WHERE user_id = $1 AND status = $2
			 ORDER BY created_at DESC`,
			userID, *status,
		)
	}

	return r.list(ctx,
		`SELECT `+notificationColumns+`
		 FROM notifications WHERE user_id = $1
		 ORDER BY created_at DESC`,
		userID,
	)
}

// finishMark distinguishes a missing row from a disallowed transition when
// the guarded UPDATE matched nothing.
func (r *NotificationRepositoryImpl) finishMark(
	ctx context.Context, id int64, row pgx.Row,
) (*model.Notification, error) {
	n, err := scanNotification(row)
	if err == nil {
		return n, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("mark notification: %w", err)
	}

	var status model.NotificationStatus
	err = r.pool.QueryRow(ctx, `SELECT status FROM notifications WHERE id = $1`, id).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNotificationNotFound
		}

		return nil, fmt.Errorf("check notification status: %w", err)
	}

	return nil, fmt.Errorf("%w: notification %d is %s", model.ErrInvalidTransition, id, status)
}

func (r *NotificationRepositoryImpl) list(ctx context.Context, query string, args ...any) ([]*model.Notification, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()

	var notifications []*model.Notification
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		notifications = append(notifications, n)
	}

	return notifications, rows.Err()
}

func scanNotification(row pgx.Row) (*model.Notification, error) {
	var n model.Notification
	err := row.Scan(
		&n.ID, &n.UserID, &n.Type, &n.Status, &n.Title, &n.Message,
		&n.RelatedEventID, &n.SentAt, &n.CreatedAt, &n.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &n, nil
}
