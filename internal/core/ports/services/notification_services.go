package services

import (
	"context"

	"github.com/gusau-lga/asset_management_app/internal/core/domain"
)

// NotificationDispatcher is the fire-and-forget side of notifications, used
// by the workflow executor. Dispatch failures are logged by implementations
// and never propagate into the transition.
type NotificationDispatcher interface {
	Dispatch(ctx context.Context, n domain.Notification)
}

// NotificationSvcFacade combines dispatch with the user-facing operations.
type NotificationSvcFacade interface {
	NotificationDispatcher

	// ListNotifications retrieves the actor's notifications, newest first.
	ListNotifications(ctx context.Context, userID string, limit, offset int) ([]domain.Notification, error)

	// MarkRead flags one of the actor's notifications as read.
	MarkRead(ctx context.Context, notificationID string, userID string) error
}
