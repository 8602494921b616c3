package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gusau-lga/asset_management_app/internal/core/domain"
	portssvc "github.com/gusau-lga/asset_management_app/internal/core/ports/services"
	"github.com/gusau-lga/asset_management_app/internal/dto"
)

// disposalHandler handles HTTP requests for disposal records.
type disposalHandler struct {
	disposalService portssvc.DisposalSvcFacade
}

// newDisposalHandler creates a new disposalHandler.
func newDisposalHandler(ds portssvc.DisposalSvcFacade) *disposalHandler {
	return &disposalHandler{
		disposalService: ds,
	}
}

// registerDisposalRoutes registers all disposal-related routes.
func registerDisposalRoutes(rg *gin.RouterGroup, disposalService portssvc.DisposalSvcFacade) {
	h := newDisposalHandler(disposalService)

	disposals := rg.Group("/disposals")
	{
		disposals.GET("", h.listDisposals)
		disposals.GET("/:id", h.getDisposal)
		disposals.POST("", h.createDisposal)
		disposals.PUT("/:id", h.updateDisposal)
		disposals.PUT("/:id/status", h.changeStatus)
	}
}

// listDisposals godoc
// @Summary List disposal records
// @Description Retrieves the disposal records visible to the requesting user.
// @Tags disposals
// @Produce json
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Offset" default(0)
// @Success 200 {array} dto.DisposalResponse
// @Security BearerAuth
// @Router /disposals [get]
func (h *disposalHandler) listDisposals(c *gin.Context) {
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

	records, err := h.disposalService.ListDisposals(c.Request.Context(), actor, params.Limit, params.Offset)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to list disposals")
		return
	}

	out := make([]dto.DisposalResponse, len(records))
	for i := range records {
		out[i] = dto.ToDisposalResponse(&records[i], actor.Role)
	}
	c.JSON(http.StatusOK, out)
}

// getDisposal godoc
// @Summary Get a disposal record by ID
// @Tags disposals
// @Produce json
// @Param id path string true "Disposal ID"
// @Success 200 {object} dto.DisposalResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /disposals/{id} [get]
func (h *disposalHandler) getDisposal(c *gin.Context) {
	logger := requestLogger(c)
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	disposalID := c.Param("id")

	record, err := h.disposalService.GetDisposalByID(c.Request.Context(), actor, disposalID)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to retrieve disposal")
		return
	}

	c.JSON(http.StatusOK, dto.ToDisposalResponse(record, actor.Role))
}

// createDisposal godoc
// @Summary Draft a disposal request
// @Description Drafts a disposal for an asset the user can access.
// @Tags disposals
// @Accept json
// @Produce json
// @Param disposal body dto.CreateDisposalRequest true "Disposal details"
// @Success 201 {object} dto.DisposalResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /disposals [post]
func (h *disposalHandler) createDisposal(c *gin.Context) {
	logger := requestLogger(c)
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req dto.CreateDisposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	record, err := h.disposalService.CreateDisposal(c.Request.Context(), actor, req)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to create disposal")
		return
	}

	logger.Info("Disposal created", slog.String("disposal_id", record.DisposalID))
	c.JSON(http.StatusCreated, dto.ToDisposalResponse(record, actor.Role))
}

// updateDisposal godoc
// @Summary Update a disposal record
// @Description Updates a disposal's details. Status never changes here; use the status endpoint.
// @Tags disposals
// @Accept json
// @Produce json
// @Param id path string true "Disposal ID"
// @Param disposal body dto.UpdateDisposalRequest true "Fields to update"
// @Success 200 {object} dto.DisposalResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /disposals/{id} [put]
func (h *disposalHandler) updateDisposal(c *gin.Context) {
	logger := requestLogger(c)
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	disposalID := c.Param("id")

	var req dto.UpdateDisposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	record, err := h.disposalService.UpdateDisposal(c.Request.Context(), actor, disposalID, req)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to update disposal")
		return
	}

	c.JSON(http.StatusOK, dto.ToDisposalResponse(record, actor.Role))
}

// changeStatus godoc
// @Summary Apply a workflow action to a disposal
// @Description Moves the disposal through its workflow. Completing a disposal removes the asset from the registry.
// @Tags disposals
// @Accept json
// @Produce json
// @Param id path string true "Disposal ID"
// @Param action body dto.ChangeStatusRequest true "Workflow action"
// @Success 200 {object} dto.TransitionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 410 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Security BearerAuth
// @Router /disposals/{id}/status [put]
func (h *disposalHandler) changeStatus(c *gin.Context) {
	logger := requestLogger(c)
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	disposalID := c.Param("id")

	var req dto.ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	result, err := h.disposalService.ChangeStatus(c.Request.Context(), actor, disposalID, domain.Action(req.Action))
	if err != nil {
		handleServiceError(c, logger, err, "Failed to change disposal status")
		return
	}

	logger.Info("Disposal status changed",
		slog.String("disposal_id", disposalID),
		slog.String("from", string(result.From)),
		slog.String("to", string(result.To)))
	c.JSON(http.StatusOK, dto.ToTransitionResponse(*result))
}
