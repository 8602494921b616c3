package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AuctionType classifies how an auction is run.
type AuctionType string

const (
	AuctionPublic  AuctionType = "public"
	AuctionPrivate AuctionType = "private"
	AuctionOnline  AuctionType = "online"
	AuctionLive    AuctionType = "live"
)

// AuctionRecord is an auction listing for an asset. Completion permanently
// deletes the referenced asset: the asset has left government ownership.
type AuctionRecord struct {
	AuctionID     string          `json:"auctionID"`
	AssetID       string          `json:"assetID"`
	AssetName     string          `json:"assetName"`
	AssetLocation string          `json:"assetLocation"`
	Type          AuctionType     `json:"type"`
	Title         string          `json:"title"`
	StartDate     *time.Time      `json:"startDate,omitempty"`
	EndDate       *time.Time      `json:"endDate,omitempty"`
	StartingBid   decimal.Decimal `json:"startingBid"`
	ReservePrice  decimal.Decimal `json:"reservePrice"`
	WinningBid    decimal.Decimal `json:"winningBid"`
	WinnerName    string          `json:"winnerName"`
	WinnerContact string          `json:"winnerContact"`
	TotalBids     int             `json:"totalBids"`
	Description   string          `json:"description"`
	Status        Status          `json:"status"`
	AuditFields
}

func (a AuctionRecord) RecordID() string      { return a.AuctionID }
func (a AuctionRecord) AssetRef() string      { return a.AssetID }
func (a AuctionRecord) CurrentStatus() Status { return a.Status }
func (a AuctionRecord) LocationName() string  { return a.AssetLocation }
func (a AuctionRecord) CreatorID() string     { return a.CreatedBy }

func (a AuctionRecord) Workflow() *Definition { return AuctionWorkflow }

// AuctionWorkflow: admin approves or rejects drafts; admin or auction_manager
// runs the bidding lifecycle. Completing from either bidding state deletes
// the asset, so the nominal reopen from completed only succeeds while the
// asset still exists (the executor enforces that).
var AuctionWorkflow = &Definition{
	Entity:   "auction",
	States:   []Status{StatusDraft, StatusPublished, StatusBiddingOpen, StatusBiddingClosed, StatusCompleted, StatusCancelled},
	Initial:  StatusDraft,
	Terminal: []Status{StatusCompleted, StatusCancelled},
	Transitions: map[StatusKey]Transition{
		{StatusDraft, ActionApprove}: {To: StatusPublished},
		{StatusDraft, ActionReject}:  {To: StatusCancelled},

		{StatusPublished, ActionOpenBidding}: {To: StatusBiddingOpen, Roles: []Role{RoleAuctionManager}},
		{StatusPublished, ActionCancel}:      {To: StatusCancelled, Roles: []Role{RoleAuctionManager}},

		{StatusBiddingOpen, ActionCloseBidding}: {To: StatusBiddingClosed, Roles: []Role{RoleAuctionManager}},
		{StatusBiddingOpen, ActionComplete}:     {To: StatusCompleted, Roles: []Role{RoleAuctionManager}, Effect: EffectDeleteAsset},

		{StatusBiddingClosed, ActionComplete}: {To: StatusCompleted, Roles: []Role{RoleAuctionManager}, Effect: EffectDeleteAsset},
		{StatusBiddingClosed, ActionReopen}:   {To: StatusBiddingOpen, Roles: []Role{RoleAuctionManager}},

		{StatusCancelled, ActionApprove}: {To: StatusPublished, Roles: []Role{RoleAuctionManager}},
		{StatusCompleted, ActionReopen}:  {To: StatusBiddingClosed, Roles: []Role{RoleAuctionManager}},
	},
}
