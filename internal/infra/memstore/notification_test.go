//go:build unit

package memstore_test

import (
	"context"
	"testing"
	"time"

	"savesphere/internal/domain/notification"
	"savesphere/internal/infra"
	"savesphere/internal/infra/memstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedInbox(t *testing.T) *memstore.NotificationStore {
	t.Helper()
	base := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	s := memstore.NewNotificationStore()
	s.Seed([]*notification.Notification{
		notification.Reconstruct("n1", "u1", notification.KindPointsEarned, "Points earned", "+10 points", base.Add(-2*time.Hour), false, "d1"),
		notification.Reconstruct("n2", "u1", notification.KindDealExpiring, "Deal expiring", "Hurry", base.Add(-time.Hour), false, "d3"),
		notification.Reconstruct("n3", "u1", notification.KindDealVerified, "Deal verified", "Nice find", base.Add(-3*time.Hour), true, "d1"),
		notification.Reconstruct("n4", "u2", notification.KindNewDeal, "New deal nearby", "Check it out", base, false, "d2"),
	})
	return s
}

func TestNotificationStoreListByUser(t *testing.T) {
	ctx := context.Background()
	s := seedInbox(t)

	t.Run("newest first, scoped to the user", func(t *testing.T) {
		items, err := s.ListByUser(ctx, "u1")
		require.NoError(t, err)
		require.Len(t, items, 3)
		assert.Equal(t, "n2", items[0].ID())
		assert.Equal(t, "n1", items[1].ID())
		assert.Equal(t, "n3", items[2].ID())
	})

	t.Run("unknown user gets an empty inbox", func(t *testing.T) {
		items, err := s.ListByUser(ctx, "nobody")
		require.NoError(t, err)
		assert.Empty(t, items)
	})
}

func TestNotificationStoreUnreadCount(t *testing.T) {
	ctx := context.Background()
	s := seedInbox(t)

	count, err := s.UnreadCount(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestNotificationStoreMarkRead(t *testing.T) {
	ctx := context.Background()

	t.Run("marks a single entry", func(t *testing.T) {
		s := seedInbox(t)
		require.NoError(t, s.MarkRead(ctx, "u1", "n1"))

		count, err := s.UnreadCount(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("unknown id", func(t *testing.T) {
		s := seedInbox(t)
		err := s.MarkRead(ctx, "u1", "nope")
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("another user's entry is out of reach", func(t *testing.T) {
		s := seedInbox(t)
		err := s.MarkRead(ctx, "u1", "n4")
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestNotificationStoreMarkAllRead(t *testing.T) {
	ctx := context.Background()
	s := seedInbox(t)

	require.NoError(t, s.MarkAllRead(ctx, "u1"))

	count, err := s.UnreadCount(ctx, "u1")
	require.NoError(t, err)
	assert.Zero(t, count)

	t.Run("other inboxes untouched", func(t *testing.T) {
		count, err := s.UnreadCount(ctx, "u2")
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})
}

func TestNotificationStoreCreate(t *testing.T) {
	ctx := context.Background()
	s := memstore.NewNotificationStore()

	n, err := notification.New("n9", "u1", notification.KindPointsEarned, "Points earned", "+5 points", time.Now(), "d1")
	require.NoError(t, err)
	require.NoError(t, s.Create(ctx, n))

	items, err := s.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "n9", items[0].ID())

	t.Run("stored copy is detached", func(t *testing.T) {
		items[0].MarkRead()

		count, err := s.UnreadCount(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})
}
