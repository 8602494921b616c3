package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DisposalMethod describes how the asset leaves service.
type DisposalMethod string

const (
	DisposalSale        DisposalMethod = "sale"
	DisposalScrap       DisposalMethod = "scrap"
	DisposalDonation    DisposalMethod = "donation"
	DisposalDestruction DisposalMethod = "destruction"
)

// DisposalRecord is a request to dispose of an asset. Completion permanently
// deletes the referenced asset.
type DisposalRecord struct {
	DisposalID    string          `json:"disposalID"`
	AssetID       string          `json:"assetID"`
	AssetName     string          `json:"assetName"`
	AssetLocation string          `json:"assetLocation"`
	Method        DisposalMethod  `json:"method"`
	DisposalDate  *time.Time      `json:"disposalDate,omitempty"`
	Reason        string          `json:"reason"`
	Proceeds      decimal.Decimal `json:"proceeds"`
	Status        Status          `json:"status"`
	ApprovedBy    string          `json:"approvedBy"`
	AuditFields
}

func (d DisposalRecord) RecordID() string      { return d.DisposalID }
func (d DisposalRecord) AssetRef() string      { return d.AssetID }
func (d DisposalRecord) CurrentStatus() Status { return d.Status }
func (d DisposalRecord) LocationName() string  { return d.AssetLocation }
func (d DisposalRecord) CreatorID() string     { return d.CreatedBy }

func (d DisposalRecord) Workflow() *Definition { return DisposalWorkflow }

// DisposalWorkflow: only admin approves or cancels drafts; admin or
// disposal_manager runs approved disposals through to completion. The
// pending state remains in the state set for stored rows but has no inbound
// transition. Reopen from completed is subject to the asset still existing.
var DisposalWorkflow = &Definition{
	Entity:   "disposal",
	States:   []Status{StatusDraft, StatusPending, StatusApproved, StatusInProgress, StatusCompleted, StatusCancelled},
	Initial:  StatusDraft,
	Terminal: []Status{StatusCompleted, StatusCancelled},
	Transitions: map[StatusKey]Transition{
		{StatusDraft, ActionApprove}: {To: StatusApproved},
		{StatusDraft, ActionCancel}:  {To: StatusCancelled},

		{StatusApproved, ActionStart}:  {To: StatusInProgress, Roles: []Role{RoleDisposalManager}},
		{StatusApproved, ActionRevoke}: {To: StatusDraft, Roles: []Role{RoleDisposalManager}},

		{StatusInProgress, ActionComplete}: {To: StatusCompleted, Roles: []Role{RoleDisposalManager}, Effect: EffectDeleteAsset},
		{StatusInProgress, ActionRevert}:   {To: StatusApproved, Roles: []Role{RoleDisposalManager}},

		{StatusCancelled, ActionApprove}: {To: StatusApproved, Roles: []Role{RoleDisposalManager}},
		{StatusCompleted, ActionReopen}:  {To: StatusInProgress, Roles: []Role{RoleDisposalManager}},
	},
}
