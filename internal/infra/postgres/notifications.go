package postgres

import (
	"context"
	"time"

	"parkspot/internal/domain/notification"
	"parkspot/internal/infra"
)

type notificationRepo struct {
	db DBTX
}

func (r *notificationRepo) Create(ctx context.Context, n *notification.Notification) (int64, error) {
	const q = `
		INSERT INTO notifications (user_id, title, message, kind, is_read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	var id int64
	err := r.db.QueryRow(ctx, q,
		n.UserID(), n.Title(), n.Message(), n.Kind().String(), n.IsRead(), n.CreatedAt(),
	).Scan(&id)
	if err != nil {
		return 0, wrapQueryErr(err, "notification not found")
	}
	return id, nil
}

func (r *notificationRepo) ListByUser(ctx context.Context, userID int64) ([]*notification.Notification, error) {
	const q = `
		SELECT id, user_id, title, message, kind, is_read, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC`

	rows, err := r.db.Query(ctx, q, userID)
	if err != nil {
		return nil, wrapQueryErr(err, "notification not found")
	}
	defer rows.Close()

	var notifications []*notification.Notification
	for rows.Next() {
		var (
			id        int64
			uid       int64
			title     string
			message   string
			kind      string
			isRead    bool
			createdAt time.Time
		)
		if err := rows.Scan(&id, &uid, &title, &message, &kind, &isRead, &createdAt); err != nil {
			return nil, wrapQueryErr(err, "notification not found")
		}
		notifications = append(notifications,
			notification.Reconstruct(id, uid, title, message, notification.Kind(kind), isRead, createdAt))
	}
	if err := rows.Err(); err != nil {
		return nil, wrapQueryErr(err, "notification not found")
	}
	return notifications, nil
}

func (r *notificationRepo) MarkRead(ctx context.Context, id, userID int64) error {
	const q = `
		UPDATE notifications
		SET is_read = TRUE
		WHERE id = $1 AND user_id = $2`

	tag, err := r.db.Exec(ctx, q, id, userID)
	if err != nil {
		return wrapQueryErr(err, "notification not found")
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "notification not found")
	}
	return nil
}

func (r *notificationRepo) MarkAllRead(ctx context.Context, userID int64) error {
	const q = `
		UPDATE notifications
		SET is_read = TRUE
		WHERE user_id = $1 AND is_read = FALSE`

	if _, err := r.db.Exec(ctx, q, userID); err != nil {
		return wrapQueryErr(err, "notification not found")
	}
	return nil
}
