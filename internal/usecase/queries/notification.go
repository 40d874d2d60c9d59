package queries

import (
	"context"
	"time"

	"savesphere/internal/domain/notification"
	"savesphere/internal/pkg/errs"
)

type NotificationView struct {
	ID            string    `json:"id"`
	Kind          string    `json:"kind"`
	Title         string    `json:"title"`
	Message       string    `json:"message"`
	Timestamp     time.Time `json:"timestamp"`
	Read          bool      `json:"read"`
	RelatedDealID string    `json:"related_deal_id,omitempty"`
}

type InboxView struct {
	Notifications []*NotificationView `json:"notifications"`
	UnreadCount   int                 `json:"unread_count"`
}

type NotificationReadStore interface {
	ListByUser(ctx context.Context, userID string) ([]*notification.Notification, error)
	UnreadCount(ctx context.Context, userID string) (int, error)
}

type NotificationQueries interface {
	Inbox(ctx context.Context, userID string) (*InboxView, error)
}

type notificationQueriesImpl struct {
	store NotificationReadStore
}

func NewNotificationQueries(store NotificationReadStore) NotificationQueries {
	return &notificationQueriesImpl{store: store}
}

func (q *notificationQueriesImpl) Inbox(ctx context.Context, userID string) (*InboxView, error) {
	items, err := q.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, errs.Wrap(err, "list notifications")
	}
	unread, err := q.store.UnreadCount(ctx, userID)
	if err != nil {
		return nil, errs.Wrap(err, "count unread notifications")
	}

	views := make([]*NotificationView, 0, len(items))
	for _, n := range items {
		views = append(views, &NotificationView{
			ID:            n.ID(),
			Kind:          string(n.Kind()),
			Title:         n.Title(),
			Message:       n.Message(),
			Timestamp:     n.Timestamp(),
			Read:          n.Read(),
			RelatedDealID: n.RelatedDealID(),
		})
	}
	return &InboxView{Notifications: views, UnreadCount: unread}, nil
}
