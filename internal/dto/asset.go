package dto

import (
	"time"

	"github.com/gusau-lga/asset_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAssetRequest defines the data needed to register an asset.
type CreateAssetRequest struct {
	Name         string          `json:"name" binding:"required"`
	Category     string          `json:"category" binding:"required"`
	SerialNumber string          `json:"serialNumber"`
	Location     string          `json:"location" binding:"required"`
	Department   string          `json:"department"`
	Custodian    string          `json:"custodian"`
	PurchaseDate *time.Time      `json:"purchaseDate"`
	PurchaseCost decimal.Decimal `json:"purchaseCost"`
	CurrentValue decimal.Decimal `json:"currentValue"`
	Description  string          `json:"description"`
}

// UpdateAssetRequest defines the data allowed for updating an asset.
// Location is deliberately absent: an asset moves only through a completed
// transfer.
type UpdateAssetRequest struct {
	Name         *string          `json:"name"`
	Category     *string          `json:"category"`
	SerialNumber *string          `json:"serialNumber"`
	Department   *string          `json:"department"`
	Custodian    *string          `json:"custodian"`
	Status       *string          `json:"status"`
	CurrentValue *decimal.Decimal `json:"currentValue"`
	Description  *string          `json:"description"`
}

// ListAssetsParams defines query parameters for listing assets.
type ListAssetsParams struct {
	Limit  int `form:"limit,default=50"`
	Offset int `form:"offset,default=0"`
}

// AssetResponse is the API representation of an asset.
type AssetResponse struct {
	AssetID      string          `json:"assetID"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	SerialNumber string          `json:"serialNumber,omitempty"`
	Location     string          `json:"location"`
	Department   string          `json:"department,omitempty"`
	Custodian    string          `json:"custodian,omitempty"`
	Status       string          `json:"status"`
	PurchaseDate *time.Time      `json:"purchaseDate,omitempty"`
	PurchaseCost decimal.Decimal `json:"purchaseCost"`
	CurrentValue decimal.Decimal `json:"currentValue"`
	Description  string          `json:"description,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// ToAssetResponse converts a domain.Asset to its API representation.
func ToAssetResponse(a *domain.Asset) AssetResponse {
	return AssetResponse{
		AssetID:      a.AssetID,
		Name:         a.Name,
		Category:     a.Category,
		SerialNumber: a.SerialNumber,
		Location:     a.Location,
		Department:   a.Department,
		Custodian:    a.Custodian,
		Status:       string(a.Status),
		PurchaseDate: a.PurchaseDate,
		PurchaseCost: a.PurchaseCost,
		CurrentValue: a.CurrentValue,
		Description:  a.Description,
		CreatedAt:    a.CreatedAt,
	}
}

// ToAssetResponseSlice converts a slice of assets.
func ToAssetResponseSlice(assets []domain.Asset) []AssetResponse {
	out := make([]AssetResponse, len(assets))
	for i := range assets {
		out[i] = ToAssetResponse(&assets[i])
	}
	return out
}
