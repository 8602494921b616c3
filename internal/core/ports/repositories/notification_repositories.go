package repositories

import (
	"context"

	"github.com/gusau-lga/asset_management_app/internal/core/domain"
)

// NotificationRepositoryFacade defines persistence for notifications.
type NotificationRepositoryFacade interface {
	// SaveNotification persists a new notification.
	SaveNotification(ctx context.Context, n domain.Notification) error

	// FindNotificationsForUser retrieves a user's notifications, newest first.
	FindNotificationsForUser(ctx context.Context, userID string, limit int, offset int) ([]domain.Notification, error)

	// MarkNotificationRead flags a notification as read. Scoped to the
	// recipient so users cannot touch each other's notifications.
	MarkNotificationRead(ctx context.Context, notificationID string, userID string) error
}
