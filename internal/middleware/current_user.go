package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gusau-lga/asset_management_app/internal/apperrors"
	"github.com/gusau-lga/asset_management_app/internal/core/domain"
	portssvc "github.com/gusau-lga/asset_management_app/internal/core/ports/services"
)

// CurrentUserMiddleware resolves the authenticated user ID into a full
// domain.User and stores it in the request context. Role and location checks
// downstream read from this resolved actor, never from the token alone.
// Must run after AuthMiddleware.
func CurrentUserMiddleware(userSvc portssvc.UserReaderSvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())
		if logger == nil {
			logger = slog.Default()
		}

		userID, ok := GetUserIDFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		user, err := userSvc.GetUserByID(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				logger.Warn("Token subject no longer exists", slog.String("user_id", userID))
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Account not found"})
				return
			}
			logger.Error("Failed to resolve current user", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		if user.DeletedAt != nil || user.Status != domain.UserActive {
			logger.Warn("Request from inactive account", slog.String("user_id", userID))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Account is not active"})
			return
		}

		ctx := context.WithValue(c.Request.Context(), currentUserKey, user)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
