package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/GuiiMoreira/jobah-api/internal/domain/errors"
	"github.com/GuiiMoreira/jobah-api/internal/domain/model"
)

type notificationRepository struct {
	q querier
}

const notificationColumns = `id, user_id, type, message, order_id, is_read, created_at, dispatched_at`

func scanNotification(row scanner) (model.Notification, error) {
	var (
		n       model.Notification
		orderID uuid.NullUUID
	)
	if err := row.Scan(&n.ID, &n.UserID, &n.Type, &n.Message, &orderID, &n.IsRead, &n.CreatedAt, &n.DispatchedAt); err != nil {
		return n, err
	}
	if orderID.Valid {
		id := orderID.UUID
		n.OrderID = &id
	}
	return n, nil
}

func (r *notificationRepository) Enqueue(ctx context.Context, n *model.Notification) error {
	const query = `INSERT INTO notifications (id, user_id, type, message, order_id) VALUES ($1, $2, $3, $4, $5) RETURNING created_at`
	var orderID uuid.NullUUID
	if n.OrderID != nil {
		orderID = uuid.NullUUID{UUID: *n.OrderID, Valid: true}
	}
	if err := r.q.QueryRow(ctx, query, n.ID, n.UserID, n.Type, n.Message, orderID).Scan(&n.CreatedAt); err != nil {
		return fmt.Errorf("enqueue notification: %w", err)
	}
	return nil
}

func (r *notificationRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Notification, error) {
	rows, err := r.q.Query(ctx, `SELECT `+notificationColumns+` FROM notifications
                                 WHERE user_id=$1 AND NOT deleted ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("query notifications: %w", err)
	}
	return r.collect(rows)
}

type rowsIterator interface {
	scanner
	Next() bool
	Err() error
	Close()
}

func (r *notificationRepository) collect(rows rowsIterator) ([]model.Notification, error) {
	defer rows.Close()
	var result []model.Notification
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *notificationRepository) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	if _, err := r.q.Exec(ctx, `UPDATE notifications SET is_read=TRUE WHERE user_id=$1 AND NOT is_read`, userID); err != nil {
		return fmt.Errorf("mark notifications read: %w", err)
	}
	return nil
}

func (r *notificationRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	tag, err := r.q.Exec(ctx, `UPDATE notifications SET deleted=TRUE WHERE id=$1 AND user_id=$2 AND NOT deleted`, id, userID)
	if err != nil {
		return fmt.Errorf("delete notification: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// ClaimUndispatched leases a batch so concurrent dispatchers skip each other's rows.
// A lease that expires without MarkDispatched makes the row claimable again.
func (r *notificationRepository) ClaimUndispatched(ctx context.Context, limit int, lease time.Duration) ([]model.Notification, error) {
	const query = `UPDATE notifications SET claimed_at=NOW()
                   WHERE id IN (
                       SELECT id FROM notifications
                       WHERE dispatched_at IS NULL AND (claimed_at IS NULL OR claimed_at < NOW() - make_interval(secs => $2))
                       ORDER BY created_at
                       LIMIT $1
                       FOR UPDATE SKIP LOCKED
                   )
                   RETURNING ` + notificationColumns
	rows, err := r.q.Query(ctx, query, limit, lease.Seconds())
	if err != nil {
		return nil, fmt.Errorf("claim notifications: %w", err)
	}
	return r.collect(rows)
}

func (r *notificationRepository) MarkDispatched(ctx context.Context, id uuid.UUID) error {
	if _, err := r.q.Exec(ctx, `UPDATE notifications SET dispatched_at=NOW() WHERE id=$1`, id); err != nil {
		return fmt.Errorf("mark dispatched: %w", err)
	}
	return nil
}
