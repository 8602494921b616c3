package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gusau-lga/asset_management_app/internal/core/domain"
	portssvc "github.com/gusau-lga/asset_management_app/internal/core/ports/services"
	"github.com/gusau-lga/asset_management_app/internal/dto"
)

// maintenanceHandler handles HTTP requests for maintenance records.
type maintenanceHandler struct {
	maintenanceService portssvc.MaintenanceSvcFacade
}

// newMaintenanceHandler creates a new maintenanceHandler.
func newMaintenanceHandler(ms portssvc.MaintenanceSvcFacade) *maintenanceHandler {
	return &maintenanceHandler{
		maintenanceService: ms,
	}
}

// registerMaintenanceRoutes registers all maintenance-related routes.
func registerMaintenanceRoutes(rg *gin.RouterGroup, maintenanceService portssvc.MaintenanceSvcFacade) {
	h := newMaintenanceHandler(maintenanceService)

	maintenance := rg.Group("/maintenance")
	{
		maintenance.GET("", h.listMaintenance)
		maintenance.GET("/:id", h.getMaintenance)
		maintenance.POST("", h.createMaintenance)
		maintenance.PUT("/:id", h.updateMaintenance)
		maintenance.PUT("/:id/status", h.changeStatus)
	}
}

// listMaintenance godoc
// @Summary List maintenance records
// @Description Retrieves the maintenance records visible to the requesting user.
// @Tags maintenance
// @Produce json
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Offset" default(0)
// @Success 200 {array} dto.MaintenanceResponse
// @Security BearerAuth
// @Router /maintenance [get]
func (h *maintenanceHandler) listMaintenance(c *gin.Context) {
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

	records, err := h.maintenanceService.ListMaintenance(c.Request.Context(), actor, params.Limit, params.Offset)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to list maintenance records")
		return
	}

	out := make([]dto.MaintenanceResponse, len(records))
	for i := range records {
		out[i] = dto.ToMaintenanceResponse(&records[i], actor.Role)
	}
	c.JSON(http.StatusOK, out)
}

// getMaintenance godoc
// @Summary Get a maintenance record by ID
// @Description Retrieves one maintenance record. Denied when its asset sits outside the user's assigned locations.
// @Tags maintenance
// @Produce json
// @Param id path string true "Maintenance ID"
// @Success 200 {object} dto.MaintenanceResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /maintenance/{id} [get]
func (h *maintenanceHandler) getMaintenance(c *gin.Context) {
	logger := requestLogger(c)
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	maintenanceID := c.Param("id")

	record, err := h.maintenanceService.GetMaintenanceByID(c.Request.Context(), actor, maintenanceID)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to retrieve maintenance record")
		return
	}

	c.JSON(http.StatusOK, dto.ToMaintenanceResponse(record, actor.Role))
}

// createMaintenance godoc
// @Summary Schedule maintenance
// @Description Schedules maintenance for an asset the user can access.
// @Tags maintenance
// @Accept json
// @Produce json
// @Param maintenance body dto.CreateMaintenanceRequest true "Maintenance details"
// @Success 201 {object} dto.MaintenanceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /maintenance [post]
func (h *maintenanceHandler) createMaintenance(c *gin.Context) {
	logger := requestLogger(c)
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req dto.CreateMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	record, err := h.maintenanceService.CreateMaintenance(c.Request.Context(), actor, req)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to create maintenance record")
		return
	}

	logger.Info("Maintenance record created", slog.String("maintenance_id", record.MaintenanceID))
	c.JSON(http.StatusCreated, dto.ToMaintenanceResponse(record, actor.Role))
}

// updateMaintenance godoc
// @Summary Update a maintenance record
// @Description Updates a maintenance record's details. Status never changes here; use the status endpoint.
// @Tags maintenance
// @Accept json
// @Produce json
// @Param id path string true "Maintenance ID"
// @Param maintenance body dto.UpdateMaintenanceRequest true "Fields to update"
// @Success 200 {object} dto.MaintenanceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /maintenance/{id} [put]
func (h *maintenanceHandler) updateMaintenance(c *gin.Context) {
	logger := requestLogger(c)
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	maintenanceID := c.Param("id")

	var req dto.UpdateMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	record, err := h.maintenanceService.UpdateMaintenance(c.Request.Context(), actor, maintenanceID, req)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to update maintenance record")
		return
	}

	c.JSON(http.StatusOK, dto.ToMaintenanceResponse(record, actor.Role))
}

// changeStatus godoc
// @Summary Apply a workflow action to a maintenance record
// @Description Moves the record through its workflow. The action must be valid for the record's current status and the user's role.
// @Tags maintenance
// @Accept json
// @Produce json
// @Param id path string true "Maintenance ID"
// @Param action body dto.ChangeStatusRequest true "Workflow action"
// @Success 200 {object} dto.TransitionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Security BearerAuth
// @Router /maintenance/{id}/status [put]
func (h *maintenanceHandler) changeStatus(c *gin.Context) {
	logger := requestLogger(c)
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	maintenanceID := c.Param("id")

	var req dto.ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	result, err := h.maintenanceService.ChangeStatus(c.Request.Context(), actor, maintenanceID, domain.Action(req.Action))
	if err != nil {
		handleServiceError(c, logger, err, "Failed to change maintenance status")
		return
	}

	logger.Info("Maintenance status changed",
		slog.String("maintenance_id", maintenanceID),
		slog.String("from", string(result.From)),
		slog.String("to", string(result.To)))
	c.JSON(http.StatusOK, dto.ToTransitionResponse(*result))
}
