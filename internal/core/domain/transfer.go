package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransferType classifies a transfer request.
type TransferType string

const (
	TransferInternal  TransferType = "internal"
	TransferExternal  TransferType = "external"
	TransferTemporary TransferType = "temporary"
	TransferPermanent TransferType = "permanent"
)

// TransferRecord is a request to move an asset between locations. Completion
// relocates the referenced asset to ToLocation.
type TransferRecord struct {
	TransferID    string          `json:"transferID"`
	AssetID       string          `json:"assetID"`
	AssetName     string          `json:"assetName"`
	AssetLocation string          `json:"assetLocation"`
	Type          TransferType    `json:"type"`
	FromLocation  string          `json:"fromLocation"`
	ToLocation    string          `json:"toLocation"`
	FromCustodian string          `json:"fromCustodian"`
	ToCustodian   string          `json:"toCustodian"`
	RequestDate   *time.Time      `json:"requestDate,omitempty"`
	TransferDate  *time.Time      `json:"transferDate,omitempty"`
	Reason        string          `json:"reason"`
	EstimatedCost decimal.Decimal `json:"estimatedCost"`
	Status        Status          `json:"status"`
	ApprovedBy    string          `json:"approvedBy"`
	AuditFields
}

func (t TransferRecord) RecordID() string      { return t.TransferID }
func (t TransferRecord) AssetRef() string      { return t.AssetID }
func (t TransferRecord) CurrentStatus() Status { return t.Status }
func (t TransferRecord) LocationName() string  { return t.AssetLocation }
func (t TransferRecord) CreatorID() string     { return t.CreatedBy }

// RelocationTarget implements Relocator: completing a transfer moves the
// asset to the requested destination.
func (t TransferRecord) RelocationTarget() string { return t.ToLocation }

func (t TransferRecord) Workflow() *Definition { return TransferWorkflow }

// TransferWorkflow: admin approves or rejects pending requests; admin or
// manager completes and revokes approved ones. The cancelled state exists in
// stored data but has no inbound transition.
var TransferWorkflow = &Definition{
	Entity:   "transfer",
	States:   []Status{StatusPending, StatusApproved, StatusInProgress, StatusCompleted, StatusCancelled, StatusRejected},
	Initial:  StatusPending,
	Terminal: []Status{StatusCompleted, StatusCancelled, StatusRejected},
	Transitions: map[StatusKey]Transition{
		{StatusPending, ActionApprove}:   {To: StatusApproved},
		{StatusPending, ActionReject}:    {To: StatusRejected},
		{StatusApproved, ActionComplete}: {To: StatusCompleted, Roles: []Role{RoleManager}, Effect: EffectRelocateAsset},
		{StatusApproved, ActionRevoke}:   {To: StatusPending, Roles: []Role{RoleManager}},
		{StatusRejected, ActionApprove}:  {To: StatusApproved, Roles: []Role{RoleManager}},
		{StatusCompleted, ActionReopen}:  {To: StatusApproved, Roles: []Role{RoleManager}},
	},
}
