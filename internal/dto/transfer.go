package dto

import (
	"time"

	"github.com/gusau-lga/asset_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransferRequest raises a transfer request for an asset. FromLocation
// is resolved from the asset server-side, never trusted from the client.
type CreateTransferRequest struct {
	AssetID       string          `json:"assetID" binding:"required"`
	Type          string          `json:"type" binding:"omitempty,oneof=internal external temporary permanent"`
	ToLocation    string          `json:"toLocation" binding:"required"`
	ToCustodian   string          `json:"toCustodian"`
	RequestDate   *time.Time      `json:"requestDate"`
	Reason        string          `json:"reason" binding:"required"`
	EstimatedCost decimal.Decimal `json:"estimatedCost"`
}

// UpdateTransferRequest edits a transfer's details.
type UpdateTransferRequest struct {
	Type          *string          `json:"type"`
	ToLocation    *string          `json:"toLocation"`
	ToCustodian   *string          `json:"toCustodian"`
	TransferDate  *time.Time       `json:"transferDate"`
	Reason        *string          `json:"reason"`
	EstimatedCost *decimal.Decimal `json:"estimatedCost"`
}

// TransferResponse is the API representation of a transfer record.
type TransferResponse struct {
	TransferID       string          `json:"transferID"`
	AssetID          string          `json:"assetID"`
	AssetName        string          `json:"assetName"`
	AssetLocation    string          `json:"assetLocation,omitempty"`
	Type             string          `json:"type"`
	FromLocation     string          `json:"fromLocation"`
	ToLocation       string          `json:"toLocation"`
	FromCustodian    string          `json:"fromCustodian,omitempty"`
	ToCustodian      string          `json:"toCustodian,omitempty"`
	RequestDate      *time.Time      `json:"requestDate,omitempty"`
	TransferDate     *time.Time      `json:"transferDate,omitempty"`
	Reason           string          `json:"reason"`
	EstimatedCost    decimal.Decimal `json:"estimatedCost"`
	Status           string          `json:"status"`
	ApprovedBy       string          `json:"approvedBy,omitempty"`
	AvailableActions []string        `json:"availableActions"`
	CreatedAt        time.Time       `json:"createdAt"`
	CreatedBy        string          `json:"createdBy"`
}

// ToTransferResponse converts a record, computing the actions available to
// the given role.
func ToTransferResponse(t *domain.TransferRecord, role domain.Role) TransferResponse {
	return TransferResponse{
		TransferID:       t.TransferID,
		AssetID:          t.AssetID,
		AssetName:        t.AssetName,
		AssetLocation:    t.AssetLocation,
		Type:             string(t.Type),
		FromLocation:     t.FromLocation,
		ToLocation:       t.ToLocation,
		FromCustodian:    t.FromCustodian,
		ToCustodian:      t.ToCustodian,
		RequestDate:      t.RequestDate,
		TransferDate:     t.TransferDate,
		Reason:           t.Reason,
		EstimatedCost:    t.EstimatedCost,
		Status:           string(t.Status),
		ApprovedBy:       t.ApprovedBy,
		AvailableActions: actionNames(t.Workflow().AvailableActions(t.Status, role)),
		CreatedAt:        t.CreatedAt,
		CreatedBy:        t.CreatedBy,
	}
}
