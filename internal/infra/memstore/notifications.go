package memstore

import (
	"context"
	"sort"

	"parkspot/internal/domain/notification"
	"parkspot/internal/infra"
)

type notificationRepo struct {
	store *Store
}

func (r *notificationRepo) Create(_ context.Context, n *notification.Notification) (int64, error) {
	id := r.store.nextNotificationID
	r.store.nextNotificationID++
	r.store.notifications[id] = n.WithID(id)
	return id, nil
}

func (r *notificationRepo) ListByUser(_ context.Context, userID int64) ([]*notification.Notification, error) {
	var result []*notification.Notification
	for _, n := range r.store.notifications {
		if n.UserID() == userID {
			clone := *n
			result = append(result, &clone)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt().Equal(result[j].CreatedAt()) {
			return result[i].ID() > result[j].ID()
		}
		return result[i].CreatedAt().After(result[j].CreatedAt())
	})
	return result, nil
}

func (r *notificationRepo) MarkRead(_ context.Context, id, userID int64) error {
	n, ok := r.store.notifications[id]
	if !ok || n.UserID() != userID {
		return infra.NewRepoErr(infra.KindNotFound, "notification not found")
	}
	n.MarkRead()
	return nil
}

func (r *notificationRepo) MarkAllRead(_ context.Context, userID int64) error {
	for _, n := range r.store.notifications {
		if n.UserID() == userID && !n.IsRead() {
			n.MarkRead()
		}
	}
	return nil
}
