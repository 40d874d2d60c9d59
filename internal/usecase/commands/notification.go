package commands

import (
	"context"

	"savesphere/internal/infra"
	"savesphere/internal/pkg/errs"
)

var ErrNotificationNotFound = errs.New("notification not found")

type NotificationInboxStore interface {
	MarkRead(ctx context.Context, userID, id string) error
	MarkAllRead(ctx context.Context, userID string) error
}

type NotificationCommands interface {
	MarkRead(ctx context.Context, userID, id string) error
	MarkAllRead(ctx context.Context, userID string) error
}

type notificationCommandsImpl struct {
	store NotificationInboxStore
}

func NewNotificationCommands(store NotificationInboxStore) NotificationCommands {
	return &notificationCommandsImpl{store: store}
}

func (c *notificationCommandsImpl) MarkRead(ctx context.Context, userID, id string) error {
	if err := c.store.MarkRead(ctx, userID, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrNotificationNotFound
		}
		return errs.Wrap(err, "mark notification read")
	}
	return nil
}

func (c *notificationCommandsImpl) MarkAllRead(ctx context.Context, userID string) error {
	if err := c.store.MarkAllRead(ctx, userID); err != nil {
		return errs.Wrap(err, "mark all notifications read")
	}
	return nil
}
