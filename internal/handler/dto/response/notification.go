package response

import (
	"time"

	"parkspot/internal/usecase/queries"
)

type NotificationResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Kind      string    `json:"kind"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}

type NotificationListResponse struct {
	Notifications []*NotificationResponse `json:"notifications"`
	UnreadCount   int64                   `json:"unreadCount"`
}

func FromNotificationViews(views []queries.NotificationView, unread int64) *NotificationListResponse {
	notifications := make([]*NotificationResponse, len(views))
	for i := range views {
		v := &views[i]
		notifications[i] = &NotificationResponse{
			ID:        v.ID,
			Title:     v.Title,
			Message:   v.Message,
			Kind:      v.Kind.String(),
			IsRead:    v.IsRead,
			CreatedAt: v.CreatedAt,
		}
	}
	return &NotificationListResponse{
		Notifications: notifications,
		UnreadCount:   unread,
	}
}
