package domain

import "time"

// NotificationType loosely classifies a notification for client rendering.
type NotificationType string

const (
	NotifyInfo     NotificationType = "info"
	NotifyApproval NotificationType = "approval"
	NotifyWorkflow NotificationType = "workflow"
	NotifyWarning  NotificationType = "warning"
)

// NotificationPriority ranks delivery urgency.
type NotificationPriority string

const (
	NotifyLow    NotificationPriority = "low"
	NotifyMedium NotificationPriority = "medium"
	NotifyHigh   NotificationPriority = "high"
)

// Notification is a message queued for a user, typically raised by a
// workflow transition. Dispatch is fire-and-forget: a failed notification
// never fails the transition that raised it.
type Notification struct {
	NotificationID string               `json:"notificationID"`
	UserID         string               `json:"userID"` // recipient
	SenderID       string               `json:"senderID,omitempty"`
	Title          string               `json:"title"`
	Message        string               `json:"message"`
	Type           NotificationType     `json:"type"`
	Priority       NotificationPriority `json:"priority"`
	EntityType     string               `json:"entityType,omitempty"` // e.g. "auction"
	EntityID       string               `json:"entityID,omitempty"`
	IsRead         bool                 `json:"isRead"`
	CreatedAt      time.Time            `json:"createdAt"`
}
