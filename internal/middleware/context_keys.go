package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/gusau-lga/asset_management_app/internal/core/domain"
)

// userIDKey is the key used to store the authenticated user's ID in the
// request context.
const userIDKey = contextKey("userID")

// currentUserKey is the key used to store the fully resolved *domain.User.
const currentUserKey = contextKey("currentUser")

// GetUserIDFromContext retrieves the authenticated user ID from the Gin
// context. It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userID, ok := c.Request.Context().Value(userIDKey).(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}

// GetCurrentUser retrieves the resolved actor placed in the context by
// CurrentUserMiddleware. Handlers that need role or location data use this
// instead of re-fetching the user.
func GetCurrentUser(c *gin.Context) (*domain.User, bool) {
	user, ok := c.Request.Context().Value(currentUserKey).(*domain.User)
	if !ok || user == nil {
		return nil, false
	}
	return user, true
}
