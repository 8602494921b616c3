package handlers

import (
	"github.com/gin-gonic/gin"

	portssvc "github.com/gusau-lga/asset_management_app/internal/core/ports/services"
	"github.com/gusau-lga/asset_management_app/internal/middleware"
	"github.com/gusau-lga/asset_management_app/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Register public authentication routes
	registerAuthRoutes(r, cfg, services.Auth)

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	setupAPIV1Routes(r, cfg, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
) {
	// AuthMiddleware validates the token; CurrentUserMiddleware resolves the
	// full actor so every handler downstream can gate on role and locations.
	v1 := r.Group("/api/v1",
		middleware.AuthMiddleware(cfg.JWTSecret),
		middleware.CurrentUserMiddleware(service.User),
	)

	// Delegate route registration to specific handlers, passing required services
	registerUserRoutes(v1, service.User)
	registerAssetRoutes(v1, service.Asset, service.Reporting)
	registerLocationRoutes(v1, service.Location)
	registerMaintenanceRoutes(v1, service.Maintenance)
	registerTransferRoutes(v1, service.Transfer)
	registerAuctionRoutes(v1, service.Auction)
	registerDisposalRoutes(v1, service.Disposal)
	registerNotificationRoutes(v1, service.Notification)
	registerAuditRoutes(v1, service.Audit)
}
