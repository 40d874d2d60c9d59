package memstore

import (
	"context"
	"sort"
	"sync"

	"savesphere/internal/domain/notification"
	"savesphere/internal/infra"
)

type NotificationStore struct {
	mu     sync.RWMutex
	byUser map[string][]*notification.Notification
}

func NewNotificationStore() *NotificationStore {
	return &NotificationStore{byUser: make(map[string][]*notification.Notification)}
}

func (s *NotificationStore) Seed(items []*notification.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, n := range items {
		s.byUser[n.UserID()] = append(s.byUser[n.UserID()], cloneNotification(n))
	}
}

func (s *NotificationStore) Create(_ context.Context, n *notification.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byUser[n.UserID()] = append(s.byUser[n.UserID()], cloneNotification(n))
	return nil
}

// ListByUser returns the user's inbox, newest first.
func (s *NotificationStore) ListByUser(_ context.Context, userID string) ([]*notification.Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := s.byUser[userID]
	out := make([]*notification.Notification, 0, len(items))
	for _, n := range items {
		out = append(out, cloneNotification(n))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp().After(out[j].Timestamp())
	})
	return out, nil
}

func (s *NotificationStore) UnreadCount(_ context.Context, userID string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count := 0
	for _, n := range s.byUser[userID] {
		if !n.Read() {
			count++
		}
	}
	return count, nil
}

func (s *NotificationStore) MarkRead(_ context.Context, userID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, n := range s.byUser[userID] {
		if n.ID() == id {
			n.MarkRead()
			return nil
		}
	}
	return infra.NewRepoErr(infra.KindNotFound, "notification "+id+" not found")
}

func (s *NotificationStore) MarkAllRead(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, n := range s.byUser[userID] {
		n.MarkRead()
	}
	return nil
}

func cloneNotification(n *notification.Notification) *notification.Notification {
	return notification.Reconstruct(
		n.ID(), n.UserID(), n.Kind(), n.Title(), n.Message(),
		n.Timestamp(), n.Read(), n.RelatedDealID(),
	)
}
