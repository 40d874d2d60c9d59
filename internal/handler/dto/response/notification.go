package response

import (
	"time"

	"github.com/jinzhu/copier"

	"savesphere/internal/usecase/queries"
)

type NotificationResponse struct {
	ID            string    `json:"id"`
	Kind          string    `json:"kind"`
	Title         string    `json:"title"`
	Message       string    `json:"message"`
	Timestamp     time.Time `json:"timestamp"`
	Read          bool      `json:"read"`
	RelatedDealID string    `json:"related_deal_id,omitempty"`
}

type InboxResponse struct {
	Notifications []*NotificationResponse `json:"notifications"`
	UnreadCount   int                     `json:"unread_count"`
}

func FromInboxView(view *queries.InboxView) *InboxResponse {
	items := make([]*NotificationResponse, len(view.Notifications))
	for i, n := range view.Notifications {
		var resp NotificationResponse
		_ = copier.Copy(&resp, n)
		items[i] = &resp
	}
	return &InboxResponse{Notifications: items, UnreadCount: view.UnreadCount}
}
