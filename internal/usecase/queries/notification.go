package queries

import (
	"context"

	"parkspot/internal/usecase/shared"
)

type NotificationQueries interface {
	ListByUser(ctx context.Context, userID int64) ([]NotificationView, error)
	CountUnread(ctx context.Context, userID int64) (int64, error)
}

type notificationQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewNotificationQueries(uow shared.UnitOfWork) NotificationQueries {
	return &notificationQueriesImpl{uow: uow}
}

func (q *notificationQueriesImpl) ListByUser(ctx context.Context, userID int64) ([]NotificationView, error) {
	var views []NotificationView

	err := q.uow.WithinRead(ctx, func(ctx context.Context, tx shared.Tx) error {
		rows, err := tx.Notifications().ListByUser(ctx, userID)
		if err != nil {
			return err
		}
		views = make([]NotificationView, 0, len(rows))
		for _, n := range rows {
			views = append(views, NotificationView{
				ID:        n.ID(),
				UserID:    n.UserID(),
				Title:     n.Title(),
				Message:   n.Message(),
				Kind:      n.Kind(),
				IsRead:    n.IsRead(),
				CreatedAt: n.CreatedAt(),
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}

func (q *notificationQueriesImpl) CountUnread(ctx context.Context, userID int64) (int64, error) {
	var count int64

	err := q.uow.WithinRead(ctx, func(ctx context.Context, tx shared.Tx) error {
		rows, err := tx.Notifications().ListByUser(ctx, userID)
		if err != nil {
			return err
		}
		for _, n := range rows {
			if !n.IsRead() {
				count++
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}
