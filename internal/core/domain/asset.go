package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AssetStatus is the lifecycle state of an asset itself, distinct from the
// statuses of the workflow records that reference it.
type AssetStatus string

const (
	AssetActive      AssetStatus = "active"
	AssetMaintenance AssetStatus = "maintenance"
	AssetDisposed    AssetStatus = "disposed"
	AssetAuctioned   AssetStatus = "auctioned"
)

// Asset is a registered government asset. Its Location is the gating key for
// every workflow record that references it; location changes only through a
// completed transfer.
type Asset struct {
	AssetID      string          `json:"assetID"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	SerialNumber string          `json:"serialNumber"`
	Location     string          `json:"location"`
	Department   string          `json:"department"`
	Custodian    string          `json:"custodian"`
	Status       AssetStatus     `json:"status"`
	PurchaseDate *time.Time      `json:"purchaseDate,omitempty"`
	PurchaseCost decimal.Decimal `json:"purchaseCost"`
	CurrentValue decimal.Decimal `json:"currentValue"`
	Description  string          `json:"description"`
	AuditFields
}

// LocationName implements access.Locatable.
func (a Asset) LocationName() string {
	return a.Location
}
