package notification

import (
	"context"

	"weddify/models"
)

// NotificationService delivers notifications to users: appended to the
// user record, and pushed via FCM when a device token is registered.
type NotificationService interface {
	NotifyUser(ctx context.Context, userID string, n models.Notification) error
}
