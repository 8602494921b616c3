package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gusau-lga/asset_management_app/internal/core/domain"
	portssvc "github.com/gusau-lga/asset_management_app/internal/core/ports/services"
	"github.com/gusau-lga/asset_management_app/internal/dto"
)

// auctionHandler handles HTTP requests for auction records.
type auctionHandler struct {
	auctionService portssvc.AuctionSvcFacade
}

// newAuctionHandler creates a new auctionHandler.
func newAuctionHandler(as portssvc.AuctionSvcFacade) *auctionHandler {
	return &auctionHandler{
		auctionService: as,
	}
}

// registerAuctionRoutes registers all auction-related routes.
func registerAuctionRoutes(rg *gin.RouterGroup, auctionService portssvc.AuctionSvcFacade) {
	h := newAuctionHandler(auctionService)

	auctions := rg.Group("/auctions")
	{
		auctions.GET("", h.listAuctions)
		auctions.GET("/:id", h.getAuction)
		auctions.POST("", h.createAuction)
		auctions.PUT("/:id", h.updateAuction)
		auctions.PUT("/:id/status", h.changeStatus)
	}
}

// listAuctions godoc
// @Summary List auction records
// @Description Retrieves the auction records visible to the requesting user.
// @Tags auctions
// @Produce json
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Offset" default(0)
// @Success 200 {array} dto.AuctionResponse
// @Security BearerAuth
// @Router /auctions [get]
func (h *auctionHandler) listAuctions(c *gin.Context) {
	logger := requestLogger(c)
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var params dto.ListRecordsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	records, err := h.auctionService.ListAuctions(c.Request.Context(), actor, params.Limit, params.Offset)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to list auctions")
		return
	}

	out := make([]dto.AuctionResponse, len(records))
	for i := range records {
		out[i] = dto.ToAuctionResponse(&records[i], actor.Role)
	}
	c.JSON(http.StatusOK, out)
}

// getAuction godoc
// @Summary Get an auction record by ID
// @Tags auctions
// @Produce json
// @Param id path string true "Auction ID"
// @Success 200 {object} dto.AuctionResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /auctions/{id} [get]
func (h *auctionHandler) getAuction(c *gin.Context) {
	logger := requestLogger(c)
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	auctionID := c.Param("id")

	record, err := h.auctionService.GetAuctionByID(c.Request.Context(), actor, auctionID)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to retrieve auction")
		return
	}

	c.JSON(http.StatusOK, dto.ToAuctionResponse(record, actor.Role))
}

// createAuction godoc
// @Summary Draft an auction listing
// @Description Drafts an auction for an asset the user can access.
// @Tags auctions
// @Accept json
// @Produce json
// @Param auction body dto.CreateAuctionRequest true "Auction details"
// @Success 201 {object} dto.AuctionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /auctions [post]
func (h *auctionHandler) createAuction(c *gin.Context) {
	logger := requestLogger(c)
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req dto.CreateAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	record, err := h.auctionService.CreateAuction(c.Request.Context(), actor, req)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to create auction")
		return
	}

	logger.Info("Auction created", slog.String("auction_id", record.AuctionID))
	c.JSON(http.StatusCreated, dto.ToAuctionResponse(record, actor.Role))
}

// updateAuction godoc
// @Summary Update an auction record
// @Description Updates an auction's details, including the winning bid while bidding runs. Status never changes here.
// @Tags auctions
// @Accept json
// @Produce json
// @Param id path string true "Auction ID"
// @Param auction body dto.UpdateAuctionRequest true "Fields to update"
// @Success 200 {object} dto.AuctionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /auctions/{id} [put]
func (h *auctionHandler) updateAuction(c *gin.Context) {
	logger := requestLogger(c)
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	auctionID := c.Param("id")

	var req dto.UpdateAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	record, err := h.auctionService.UpdateAuction(c.Request.Context(), actor, auctionID, req)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to update auction")
		return
	}

	c.JSON(http.StatusOK, dto.ToAuctionResponse(record, actor.Role))
}

// changeStatus godoc
// @Summary Apply a workflow action to an auction
// @Description Moves the auction through its workflow. Completing an auction removes the sold asset from the registry.
// @Tags auctions
// @Accept json
// @Produce json
// @Param id path string true "Auction ID"
// @Param action body dto.ChangeStatusRequest true "Workflow action"
// @Success 200 {object} dto.TransitionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 410 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Security BearerAuth
// @Router /auctions/{id}/status [put]
func (h *auctionHandler) changeStatus(c *gin.Context) {
	logger := requestLogger(c)
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	auctionID := c.Param("id")

	var req dto.ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	result, err := h.auctionService.ChangeStatus(c.Request.Context(), actor, auctionID, domain.Action(req.Action))
	if err != nil {
		handleServiceError(c, logger, err, "Failed to change auction status")
		return
	}

	logger.Info("Auction status changed",
		slog.String("auction_id", auctionID),
		slog.String("from", string(result.From)),
		slog.String("to", string(result.To)))
	c.JSON(http.StatusOK, dto.ToTransitionResponse(*result))
}
