package notification

import (
	"context"

	"eventra/models"
)

// Notifier queues push notifications for later delivery.
type Notifier interface {
	Notify(ctx context.Context, n models.PushNotification)
}

// NotificationService delivers a queued push to its recipient.
type NotificationService interface {
	SendUserPushNotification(ctx context.Context, n models.PushNotification) error
}
