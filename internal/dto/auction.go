package dto

import (
	"time"

	"github.com/gusau-lga/asset_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAuctionRequest drafts an auction listing for an asset.
type CreateAuctionRequest struct {
	AssetID      string          `json:"assetID" binding:"required"`
	Type         string          `json:"type" binding:"omitempty,oneof=public private online live"`
	Title        string          `json:"title" binding:"required"`
	StartDate    *time.Time      `json:"startDate"`
	EndDate      *time.Time      `json:"endDate"`
	StartingBid  decimal.Decimal `json:"startingBid"`
	ReservePrice decimal.Decimal `json:"reservePrice"`
	Description  string          `json:"description"`
}

// UpdateAuctionRequest edits an auction's details, including recording the
// winning bid while bidding runs.
type UpdateAuctionRequest struct {
	Type          *string          `json:"type"`
	Title         *string          `json:"title"`
	StartDate     *time.Time       `json:"startDate"`
	EndDate       *time.Time       `json:"endDate"`
	StartingBid   *decimal.Decimal `json:"startingBid"`
	ReservePrice  *decimal.Decimal `json:"reservePrice"`
	WinningBid    *decimal.Decimal `json:"winningBid"`
	WinnerName    *string          `json:"winnerName"`
	WinnerContact *string          `json:"winnerContact"`
	TotalBids     *int             `json:"totalBids"`
	Description   *string          `json:"description"`
}

// AuctionResponse is the API representation of an auction record.
type AuctionResponse struct {
	AuctionID        string          `json:"auctionID"`
	AssetID          string          `json:"assetID"`
	AssetName        string          `json:"assetName"`
	AssetLocation    string          `json:"assetLocation,omitempty"`
	Type             string          `json:"type"`
	Title            string          `json:"title"`
	StartDate        *time.Time      `json:"startDate,omitempty"`
	EndDate          *time.Time      `json:"endDate,omitempty"`
	StartingBid      decimal.Decimal `json:"startingBid"`
	ReservePrice     decimal.Decimal `json:"reservePrice"`
	WinningBid       decimal.Decimal `json:"winningBid"`
	WinnerName       string          `json:"winnerName,omitempty"`
	WinnerContact    string          `json:"winnerContact,omitempty"`
	TotalBids        int             `json:"totalBids"`
	Description      string          `json:"description,omitempty"`
	Status           string          `json:"status"`
	AvailableActions []string        `json:"availableActions"`
	CreatedAt        time.Time       `json:"createdAt"`
	CreatedBy        string          `json:"createdBy"`
}

// ToAuctionResponse converts a record, computing the actions available to
// the given role.
func ToAuctionResponse(a *domain.AuctionRecord, role domain.Role) AuctionResponse {
	return AuctionResponse{
		AuctionID:        a.AuctionID,
		AssetID:          a.AssetID,
		AssetName:        a.AssetName,
		AssetLocation:    a.AssetLocation,
		Type:             string(a.Type),
		Title:            a.Title,
		StartDate:        a.StartDate,
		EndDate:          a.EndDate,
		StartingBid:      a.StartingBid,
		ReservePrice:     a.ReservePrice,
		WinningBid:       a.WinningBid,
		WinnerName:       a.WinnerName,
		WinnerContact:    a.WinnerContact,
		TotalBids:        a.TotalBids,
		Description:      a.Description,
		Status:           string(a.Status),
		AvailableActions: actionNames(a.Workflow().AvailableActions(a.Status, role)),
		CreatedAt:        a.CreatedAt,
		CreatedBy:        a.CreatedBy,
	}
}
