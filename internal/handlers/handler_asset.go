package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/gusau-lga/asset_management_app/internal/core/ports/services"
	"github.com/gusau-lga/asset_management_app/internal/dto"
)

// assetHandler handles HTTP requests related to assets.
type assetHandler struct {
	assetService     portssvc.AssetSvcFacade
	reportingService portssvc.ReportingSvc
}

// newAssetHandler creates a new assetHandler.
func newAssetHandler(as portssvc.AssetSvcFacade, rs portssvc.ReportingSvc) *assetHandler {
	return &assetHandler{
		assetService:     as,
		reportingService: rs,
	}
}

// registerAssetRoutes registers all asset-related routes.
func registerAssetRoutes(rg *gin.RouterGroup, assetService portssvc.AssetSvcFacade, reportingService portssvc.ReportingSvc) {
	h := newAssetHandler(assetService, reportingService)

	assets := rg.Group("/assets")
	{
		assets.GET("", h.listAssets)
		assets.GET("/stats", h.assetStats)
		assets.GET("/:id", h.getAsset)
		assets.POST("", h.createAsset)
		assets.PUT("/:id", h.updateAsset)
	}
}

// listAssets godoc
// @Summary List assets
// @Description Retrieves the assets visible to the requesting user. Results are filtered to the user's assigned locations.
// @Tags assets
// @Produce json
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Offset" default(0)
// @Success 200 {array} dto.AssetResponse
// @Security BearerAuth
// @Router /assets [get]
func (h *assetHandler) listAssets(c *gin.Context) {
	logger := requestLogger(c)
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var params dto.ListAssetsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	assets, err := h.assetService.ListAssets(c.Request.Context(), actor, params.Limit, params.Offset)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to list assets")
		return
	}

	c.JSON(http.StatusOK, dto.ToAssetResponseSlice(assets))
}

// assetStats godoc
// @Summary Asset statistics
// @Description Aggregates counts and total value over the assets visible to the requesting user.
// @Tags assets
// @Produce json
// @Success 200 {object} dto.AssetStatsResponse
// @Security BearerAuth
// @Router /assets/stats [get]
func (h *assetHandler) assetStats(c *gin.Context) {
	logger := requestLogger(c)
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	stats, err := h.reportingService.AssetStats(c.Request.Context(), actor)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to compute asset statistics")
		return
	}

	c.JSON(http.StatusOK, stats)
}

// getAsset godoc
// @Summary Get an asset by ID
// @Description Retrieves one asset. Denied when it sits outside the user's assigned locations.
// @Tags assets
// @Produce json
// @Param id path string true "Asset ID"
// @Success 200 {object} dto.AssetResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /assets/{id} [get]
func (h *assetHandler) getAsset(c *gin.Context) {
	logger := requestLogger(c)
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	assetID := c.Param("id")

	asset, err := h.assetService.GetAssetByID(c.Request.Context(), actor, assetID)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to retrieve asset")
		return
	}

	c.JSON(http.StatusOK, dto.ToAssetResponse(asset))
}

// createAsset godoc
// @Summary Register an asset
// @Description Registers a new asset at a catalog location the user can access.
// @Tags assets
// @Accept json
// @Produce json
// @Param asset body dto.CreateAssetRequest true "Asset details"
// @Success 201 {object} dto.AssetResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /assets [post]
func (h *assetHandler) createAsset(c *gin.Context) {
	logger := requestLogger(c)
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req dto.CreateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	asset, err := h.assetService.CreateAsset(c.Request.Context(), actor, req)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to create asset")
		return
	}

	logger.Info("Asset created", slog.String("asset_id", asset.AssetID))
	c.JSON(http.StatusCreated, dto.ToAssetResponse(asset))
}

// updateAsset godoc
// @Summary Update an asset
// @Description Updates an asset's details. Location never changes here; assets move only through completed transfers.
// @Tags assets
// @Accept json
// @Produce json
// @Param id path string true "Asset ID"
// @Param asset body dto.UpdateAssetRequest true "Fields to update"
// @Success 200 {object} dto.AssetResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /assets/{id} [put]
func (h *assetHandler) updateAsset(c *gin.Context) {
	logger := requestLogger(c)
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	assetID := c.Param("id")

	var req dto.UpdateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	asset, err := h.assetService.UpdateAsset(c.Request.Context(), actor, assetID, req)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to update asset")
		return
	}

	c.JSON(http.StatusOK, dto.ToAssetResponse(asset))
}
