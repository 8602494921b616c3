package dto

import "github.com/shopspring/decimal"

// AssetStatsResponse aggregates the assets visible to the requesting user.
// Visibility filtering runs before aggregation, so none of these numbers can
// leak counts from inaccessible locations.
type AssetStatsResponse struct {
	TotalAssets int             `json:"totalAssets"`
	ByStatus    map[string]int  `json:"byStatus"`
	ByCategory  map[string]int  `json:"byCategory"`
	ByLocation  map[string]int  `json:"byLocation"`
	TotalValue  decimal.Decimal `json:"totalValue"`
}
