package dto

import (
	"time"

	"github.com/gusau-lga/asset_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateMaintenanceRequest schedules maintenance for an asset.
type CreateMaintenanceRequest struct {
	AssetID         string          `json:"assetID" binding:"required"`
	Type            string          `json:"type" binding:"required,oneof=preventive corrective emergency inspection"`
	Priority        string          `json:"priority" binding:"omitempty,oneof=low medium high critical"`
	MaintenanceDate *time.Time      `json:"maintenanceDate"`
	Description     string          `json:"description" binding:"required"`
	Cost            decimal.Decimal `json:"cost"`
	PerformedBy     string          `json:"performedBy"`
}

// UpdateMaintenanceRequest edits a maintenance record's details. Status is
// never updated here; it only moves through the workflow executor.
type UpdateMaintenanceRequest struct {
	Type            *string          `json:"type"`
	Priority        *string          `json:"priority"`
	MaintenanceDate *time.Time       `json:"maintenanceDate"`
	Description     *string          `json:"description"`
	Cost            *decimal.Decimal `json:"cost"`
	PerformedBy     *string          `json:"performedBy"`
}

// ListRecordsParams defines query parameters shared by the workflow record
// list endpoints.
type ListRecordsParams struct {
	Limit  int `form:"limit,default=50"`
	Offset int `form:"offset,default=0"`
}

// MaintenanceResponse is the API representation of a maintenance record.
// AvailableActions lists the transitions the requesting user may trigger.
type MaintenanceResponse struct {
	MaintenanceID    string          `json:"maintenanceID"`
	AssetID          string          `json:"assetID"`
	AssetName        string          `json:"assetName"`
	AssetLocation    string          `json:"assetLocation,omitempty"`
	Type             string          `json:"type"`
	Priority         string          `json:"priority"`
	MaintenanceDate  *time.Time      `json:"maintenanceDate,omitempty"`
	Description      string          `json:"description"`
	Cost             decimal.Decimal `json:"cost"`
	PerformedBy      string          `json:"performedBy,omitempty"`
	Status           string          `json:"status"`
	AvailableActions []string        `json:"availableActions"`
	CreatedAt        time.Time       `json:"createdAt"`
	CreatedBy        string          `json:"createdBy"`
}

// ToMaintenanceResponse converts a record, computing the actions available
// to the given role.
func ToMaintenanceResponse(m *domain.MaintenanceRecord, role domain.Role) MaintenanceResponse {
	return MaintenanceResponse{
		MaintenanceID:    m.MaintenanceID,
		AssetID:          m.AssetID,
		AssetName:        m.AssetName,
		AssetLocation:    m.AssetLocation,
		Type:             string(m.Type),
		Priority:         string(m.Priority),
		MaintenanceDate:  m.MaintenanceDate,
		Description:      m.Description,
		Cost:             m.Cost,
		PerformedBy:      m.PerformedBy,
		Status:           string(m.Status),
		AvailableActions: actionNames(m.Workflow().AvailableActions(m.Status, role)),
		CreatedAt:        m.CreatedAt,
		CreatedBy:        m.CreatedBy,
	}
}

func actionNames(actions []domain.Action) []string {
	out := make([]string, len(actions))
	for i, a := range actions {
		out[i] = string(a)
	}
	return out
}
