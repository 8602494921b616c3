package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/gusau-lga/asset_management_app/internal/core/ports/services"
	"github.com/gusau-lga/asset_management_app/internal/dto"
)

// notificationHandler handles HTTP requests for the actor's notifications.
type notificationHandler struct {
	notificationService portssvc.NotificationSvcFacade
}

// newNotificationHandler creates a new notificationHandler.
func newNotificationHandler(ns portssvc.NotificationSvcFacade) *notificationHandler {
	return &notificationHandler{
		notificationService: ns,
	}
}

// registerNotificationRoutes registers all notification routes. Users only
// ever see their own notifications; there is no cross-user access.
func registerNotificationRoutes(rg *gin.RouterGroup, notificationService portssvc.NotificationSvcFacade) {
	h := newNotificationHandler(notificationService)

	notifications := rg.Group("/notifications")
	{
		notifications.GET("", h.listNotifications)
		notifications.PUT("/:id/read", h.markRead)
	}
}

// listNotifications godoc
// @Summary List notifications
// @Description Retrieves the requesting user's notifications, newest first.
// @Tags notifications
// @Produce json
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Offset" default(0)
// @Success 200 {array} dto.NotificationResponse
// @Security BearerAuth
// @Router /notifications [get]
func (h *notificationHandler) listNotifications(c *gin.Context) {
	logger := requestLogger(c)
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var params dto.ListNotificationsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	notifications, err := h.notificationService.ListNotifications(c.Request.Context(), actor.UserID, params.Limit, params.Offset)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to list notifications")
		return
	}

	out := make([]dto.NotificationResponse, len(notifications))
	for i := range notifications {
		out[i] = dto.ToNotificationResponse(&notifications[i])
	}
	c.JSON(http.StatusOK, out)
}

// markRead godoc
// @Summary Mark a notification as read
// @Description Flags one of the requesting user's notifications as read.
// @Tags notifications
// @Produce json
// @Param id path string true "Notification ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /notifications/{id}/read [put]
func (h *notificationHandler) markRead(c *gin.Context) {
	logger := requestLogger(c)
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	notificationID := c.Param("id")

	if err := h.notificationService.MarkRead(c.Request.Context(), notificationID, actor.UserID); err != nil {
		handleServiceError(c, logger, err, "Failed to mark notification read")
		return
	}

	c.Status(http.StatusNoContent)
}
