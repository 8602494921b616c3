package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gusau-lga/asset_management_app/internal/core/domain"
	portssvc "github.com/gusau-lga/asset_management_app/internal/core/ports/services"
	"github.com/gusau-lga/asset_management_app/internal/dto"
)

// auditHandler handles HTTP requests for the audit trail.
type auditHandler struct {
	auditService portssvc.AuditSvc
}

// newAuditHandler creates a new auditHandler.
func newAuditHandler(as portssvc.AuditSvc) *auditHandler {
	return &auditHandler{
		auditService: as,
	}
}

// registerAuditRoutes registers the audit trail routes.
func registerAuditRoutes(rg *gin.RouterGroup, auditService portssvc.AuditSvc) {
	h := newAuditHandler(auditService)

	audit := rg.Group("/audit")
	{
		audit.GET("", h.listEntries)
	}
}

// listEntries godoc
// @Summary List audit trail entries
// @Description Retrieves a paginated slice of the audit trail, newest first. Requires the audit permission or the auditor role.
// @Tags audit
// @Produce json
// @Param limit query int false "Page size" default(100)
// @Param offset query int false "Offset" default(0)
// @Success 200 {array} dto.AuditEntryResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /audit [get]
func (h *auditHandler) listEntries(c *gin.Context) {
	logger := requestLogger(c)
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	if actor.Role != domain.RoleAuditor && !actor.HasPermission(domain.PermAudit) {
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Forbidden"})
		return
	}

	var params dto.ListAuditParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	entries, err := h.auditService.ListEntries(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		handleServiceError(c, logger, err, "Failed to list audit entries")
		return
	}

	out := make([]dto.AuditEntryResponse, len(entries))
	for i := range entries {
		out[i] = dto.ToAuditEntryResponse(&entries[i])
	}
	c.JSON(http.StatusOK, out)
}
