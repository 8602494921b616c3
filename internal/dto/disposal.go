package dto

import (
	"time"

	"github.com/gusau-lga/asset_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateDisposalRequest drafts a disposal request for an asset.
type CreateDisposalRequest struct {
	AssetID      string          `json:"assetID" binding:"required"`
	Method       string          `json:"method" binding:"required,oneof=sale scrap donation destruction"`
	DisposalDate *time.Time      `json:"disposalDate"`
	Reason       string          `json:"reason" binding:"required"`
	Proceeds     decimal.Decimal `json:"proceeds"`
}

// UpdateDisposalRequest edits a disposal's details.
type UpdateDisposalRequest struct {
	Method       *string          `json:"method"`
	DisposalDate *time.Time       `json:"disposalDate"`
	Reason       *string          `json:"reason"`
	Proceeds     *decimal.Decimal `json:"proceeds"`
}

// DisposalResponse is the API representation of a disposal record.
type DisposalResponse struct {
	DisposalID       string          `json:"disposalID"`
	AssetID          string          `json:"assetID"`
	AssetName        string          `json:"assetName"`
	AssetLocation    string          `json:"assetLocation,omitempty"`
	Method           string          `json:"method"`
	DisposalDate     *time.Time      `json:"disposalDate,omitempty"`
	Reason           string          `json:"reason"`
	Proceeds         decimal.Decimal `json:"proceeds"`
	Status           string          `json:"status"`
	ApprovedBy       string          `json:"approvedBy,omitempty"`
	AvailableActions []string        `json:"availableActions"`
	CreatedAt        time.Time       `json:"createdAt"`
	CreatedBy        string          `json:"createdBy"`
}

// ToDisposalResponse converts a record, computing the actions available to
// the given role.
func ToDisposalResponse(d *domain.DisposalRecord, role domain.Role) DisposalResponse {
	return DisposalResponse{
		DisposalID:       d.DisposalID,
		AssetID:          d.AssetID,
		AssetName:        d.AssetName,
		AssetLocation:    d.AssetLocation,
		Method:           string(d.Method),
		DisposalDate:     d.DisposalDate,
		Reason:           d.Reason,
		Proceeds:         d.Proceeds,
		Status:           string(d.Status),
		ApprovedBy:       d.ApprovedBy,
		AvailableActions: actionNames(d.Workflow().AvailableActions(d.Status, role)),
		CreatedAt:        d.CreatedAt,
		CreatedBy:        d.CreatedBy,
	}
}
