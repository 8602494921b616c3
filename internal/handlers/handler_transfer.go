package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gusau-lga/asset_management_app/internal/core/domain"
	portssvc "github.com/gusau-lga/asset_management_app/internal/core/ports/services"
	"github.com/gusau-lga/asset_management_app/internal/dto"
)

// transferHandler handles HTTP requests for transfer records.
type transferHandler struct {
	transferService portssvc.TransferSvcFacade
}

// newTransferHandler creates a new transferHandler.
func newTransferHandler(ts portssvc.TransferSvcFacade) *transferHandler {
	return &transferHandler{
		transferService: ts,
	}
}

// registerTransferRoutes registers all transfer-related routes.
func registerTransferRoutes(rg *gin.RouterGroup, transferService portssvc.TransferSvcFacade) {
	h := newTransferHandler(transferService)

	transfers := rg.Group("/transfers")
	{
		transfers.GET("", h.listTransfers)
		transfers.GET("/:id", h.getTransfer)
		transfers.POST("", h.createTransfer)
		transfers.PUT("/:id", h.updateTransfer)
		transfers.PUT("/:id/status", h.changeStatus)
	}
}

// listTransfers godoc
// @Summary List transfer records
// @Description Retrieves the transfer records visible to the requesting user.
// @Tags transfers
// @Produce json
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Offset" default(0)
// @Success 200 {array} dto.TransferResponse
// @Security BearerAuth
// @Router /transfers [get]
func (h *transferHandler) listTransfers(c *gin.Context) {
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

	records, err := h.transferService.ListTransfers(c.Request.Context(), actor, params.Limit, params.Offset)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to list transfers")
		return
	}

	out := make([]dto.TransferResponse, len(records))
	for i := range records {
		out[i] = dto.ToTransferResponse(&records[i], actor.Role)
	}
	c.JSON(http.StatusOK, out)
}

// getTransfer godoc
// @Summary Get a transfer record by ID
// @Tags transfers
// @Produce json
// @Param id path string true "Transfer ID"
// @Success 200 {object} dto.TransferResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /transfers/{id} [get]
func (h *transferHandler) getTransfer(c *gin.Context) {
	logger := requestLogger(c)
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	transferID := c.Param("id")

	record, err := h.transferService.GetTransferByID(c.Request.Context(), actor, transferID)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to retrieve transfer")
		return
	}

	c.JSON(http.StatusOK, dto.ToTransferResponse(record, actor.Role))
}

// createTransfer godoc
// @Summary Raise a transfer request
// @Description Raises a transfer for an asset the user can access. The source location is resolved from the asset, never from the request.
// @Tags transfers
// @Accept json
// @Produce json
// @Param transfer body dto.CreateTransferRequest true "Transfer details"
// @Success 201 {object} dto.TransferResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /transfers [post]
func (h *transferHandler) createTransfer(c *gin.Context) {
	logger := requestLogger(c)
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req dto.CreateTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	record, err := h.transferService.CreateTransfer(c.Request.Context(), actor, req)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to create transfer")
		return
	}

	logger.Info("Transfer created", slog.String("transfer_id", record.TransferID))
	c.JSON(http.StatusCreated, dto.ToTransferResponse(record, actor.Role))
}

// updateTransfer godoc
// @Summary Update a transfer record
// @Description Updates a transfer's details. The destination may only change while the transfer is still pending.
// @Tags transfers
// @Accept json
// @Produce json
// @Param id path string true "Transfer ID"
// @Param transfer body dto.UpdateTransferRequest true "Fields to update"
// @Success 200 {object} dto.TransferResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /transfers/{id} [put]
func (h *transferHandler) updateTransfer(c *gin.Context) {
	logger := requestLogger(c)
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	transferID := c.Param("id")

	var req dto.UpdateTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	record, err := h.transferService.UpdateTransfer(c.Request.Context(), actor, transferID, req)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to update transfer")
		return
	}

	c.JSON(http.StatusOK, dto.ToTransferResponse(record, actor.Role))
}

// changeStatus godoc
// @Summary Apply a workflow action to a transfer
// @Description Moves the transfer through its workflow. Completing a transfer relocates the asset to the destination.
// @Tags transfers
// @Accept json
// @Produce json
// @Param id path string true "Transfer ID"
// @Param action body dto.ChangeStatusRequest true "Workflow action"
// @Success 200 {object} dto.TransitionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Security BearerAuth
// @Router /transfers/{id}/status [put]
func (h *transferHandler) changeStatus(c *gin.Context) {
	logger := requestLogger(c)
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	transferID := c.Param("id")

	var req dto.ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	result, err := h.transferService.ChangeStatus(c.Request.Context(), actor, transferID, domain.Action(req.Action))
	if err != nil {
		handleServiceError(c, logger, err, "Failed to change transfer status")
		return
	}

	logger.Info("Transfer status changed",
		slog.String("transfer_id", transferID),
		slog.String("from", string(result.From)),
		slog.String("to", string(result.To)))
	c.JSON(http.StatusOK, dto.ToTransitionResponse(*result))
}
