package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gusau-lga/asset_management_app/internal/core/domain"
	portsrepo "github.com/gusau-lga/asset_management_app/internal/core/ports/repositories"
	portssvc "github.com/gusau-lga/asset_management_app/internal/core/ports/services"
)

type notificationService struct {
	BaseService
	notificationRepo portsrepo.NotificationRepositoryFacade
}

// NewNotificationService creates the notification service.
func NewNotificationService(notificationRepo portsrepo.NotificationRepositoryFacade) portssvc.NotificationSvcFacade {
	return &notificationService{notificationRepo: notificationRepo}
}

var _ portssvc.NotificationSvcFacade = (*notificationService)(nil)

// Dispatch persists a notification, logging failures instead of returning
// them. Transitions must not fail because a notification could not be saved.
func (s *notificationService) Dispatch(ctx context.Context, n domain.Notification) {
	if err := s.notificationRepo.SaveNotification(ctx, n); err != nil {
		s.LogError(ctx, err, "failed to dispatch notification",
			slog.String("recipient", n.UserID),
			slog.String("entity_type", n.EntityType),
			slog.String("entity_id", n.EntityID))
	}
}

func (s *notificationService) ListNotifications(ctx context.Context, userID string, limit, offset int) ([]domain.Notification, error) {
	notifications, err := s.notificationRepo.FindNotificationsForUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications for user %s: %w", userID, err)
	}
	return notifications, nil
}

func (s *notificationService) MarkRead(ctx context.Context, notificationID string, userID string) error {
	if err := s.notificationRepo.MarkNotificationRead(ctx, notificationID, userID); err != nil {
		return fmt.Errorf("failed to mark notification %s read: %w", notificationID, err)
	}
	return nil
}
