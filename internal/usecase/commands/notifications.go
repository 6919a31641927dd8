package commands

import (
	"context"

	"parkspot/internal/infra"
	"parkspot/internal/pkg/errs"
	"parkspot/internal/usecase/shared"
)

var ErrNotificationNotFound = errs.New("notification not found")

type NotificationCommands interface {
	// MarkRead marks one of the user's notifications read; notifications of
	// other users are invisible and yield ErrNotificationNotFound.
	MarkRead(ctx context.Context, notificationID, userID int64) error
	MarkAllRead(ctx context.Context, userID int64) error
}

type notificationCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewNotificationCommands(uow shared.UnitOfWork) NotificationCommands {
	return &notificationCommandsImpl{uow: uow}
}

func (n *notificationCommandsImpl) MarkRead(ctx context.Context, notificationID, userID int64) error {
	return n.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Notifications().MarkRead(ctx, notificationID, userID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrNotificationNotFound
			}
			return errs.Mark(err, ErrStoreOperationFailed)
		}
		return nil
	})
}

func (n *notificationCommandsImpl) MarkAllRead(ctx context.Context, userID int64) error {
	return n.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Notifications().MarkAllRead(ctx, userID); err != nil {
			return errs.Mark(err, ErrStoreOperationFailed)
		}
		return nil
	})
}
