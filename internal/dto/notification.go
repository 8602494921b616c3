package dto

import (
	"time"

	"github.com/gusau-lga/asset_management_app/internal/core/domain"
)

// ListNotificationsParams defines query parameters for listing notifications.
type ListNotificationsParams struct {
	Limit  int `form:"limit,default=50"`
	Offset int `form:"offset,default=0"`
}

// NotificationResponse is the API representation of a notification.
type NotificationResponse struct {
	NotificationID string    `json:"notificationID"`
	Title          string    `json:"title"`
	Message        string    `json:"message"`
	Type           string    `json:"type"`
	Priority       string    `json:"priority"`
	EntityType     string    `json:"entityType,omitempty"`
	EntityID       string    `json:"entityID,omitempty"`
	IsRead         bool      `json:"isRead"`
	CreatedAt      time.Time `json:"createdAt"`
}

// ToNotificationResponse converts a domain.Notification.
func ToNotificationResponse(n *domain.Notification) NotificationResponse {
	return NotificationResponse{
		NotificationID: n.NotificationID,
		Title:          n.Title,
		Message:        n.Message,
		Type:           string(n.Type),
		Priority:       string(n.Priority),
		EntityType:     n.EntityType,
		EntityID:       n.EntityID,
		IsRead:         n.IsRead,
		CreatedAt:      n.CreatedAt,
	}
}
