package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gusau-lga/asset_management_app/internal/core/domain"
	portssvc "github.com/gusau-lga/asset_management_app/internal/core/ports/services"
	"github.com/gusau-lga/asset_management_app/internal/dto"
)

// locationHandler handles HTTP requests for the location catalog.
type locationHandler struct {
	locationService portssvc.LocationSvcFacade
}

// newLocationHandler creates a new locationHandler.
func newLocationHandler(ls portssvc.LocationSvcFacade) *locationHandler {
	return &locationHandler{
		locationService: ls,
	}
}

// registerLocationRoutes registers all location catalog routes. Reads are open
// to any authenticated user; the catalog itself is admin-managed.
func registerLocationRoutes(rg *gin.RouterGroup, locationService portssvc.LocationSvcFacade) {
	h := newLocationHandler(locationService)

	locations := rg.Group("/locations")
	{
		locations.GET("", h.listLocations)
		locations.GET("/:id", h.getLocation)
		locations.POST("", h.createLocation)   // Admin only
		locations.PUT("/:id", h.updateLocation) // Admin only
	}
}

// listLocations godoc
// @Summary List locations
// @Description Retrieves the whole location catalog, ordered by name.
// @Tags locations
// @Produce json
// @Success 200 {array} dto.LocationResponse
// @Security BearerAuth
// @Router /locations [get]
func (h *locationHandler) listLocations(c *gin.Context) {
	logger := requestLogger(c)

	locations, err := h.locationService.ListLocations(c.Request.Context())
	if err != nil {
		handleServiceError(c, logger, err, "Failed to list locations")
		return
	}

	out := make([]dto.LocationResponse, len(locations))
	for i := range locations {
		out[i] = dto.ToLocationResponse(&locations[i])
	}
	c.JSON(http.StatusOK, out)
}

// getLocation godoc
// @Summary Get a location by ID
// @Tags locations
// @Produce json
// @Param id path string true "Location ID"
// @Success 200 {object} dto.LocationResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /locations/{id} [get]
func (h *locationHandler) getLocation(c *gin.Context) {
	logger := requestLogger(c)
	locationID := c.Param("id")

	location, err := h.locationService.GetLocationByID(c.Request.Context(), locationID)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to retrieve location")
		return
	}

	c.JSON(http.StatusOK, dto.ToLocationResponse(location))
}

// createLocation godoc
// @Summary Add a catalog location
// @Description Adds a location to the catalog. Names must be unique; admin only.
// @Tags locations
// @Accept json
// @Produce json
// @Param location body dto.CreateLocationRequest true "Location details"
// @Success 201 {object} dto.LocationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /locations [post]
func (h *locationHandler) createLocation(c *gin.Context) {
	logger := requestLogger(c)
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	if actor.Role != domain.RoleAdmin {
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Forbidden"})
		return
	}

	var req dto.CreateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	location, err := h.locationService.CreateLocation(c.Request.Context(), req, actor.UserID)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to create location")
		return
	}

	c.JSON(http.StatusCreated, dto.ToLocationResponse(location))
}

// updateLocation godoc
// @Summary Update a catalog location
// @Description Edits a catalog entry. The name itself is immutable; admin only.
// @Tags locations
// @Accept json
// @Produce json
// @Param id path string true "Location ID"
// @Param location body dto.UpdateLocationRequest true "Fields to update"
// @Success 200 {object} dto.LocationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /locations/{id} [put]
func (h *locationHandler) updateLocation(c *gin.Context) {
	logger := requestLogger(c)
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	if actor.Role != domain.RoleAdmin {
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Forbidden"})
		return
	}
	locationID := c.Param("id")

	var req dto.UpdateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	location, err := h.locationService.UpdateLocation(c.Request.Context(), locationID, req, actor.UserID)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to update location")
		return
	}

	c.JSON(http.StatusOK, dto.ToLocationResponse(location))
}
