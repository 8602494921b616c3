package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MaintenanceType classifies why maintenance was raised.
type MaintenanceType string

const (
	MaintenancePreventive MaintenanceType = "preventive"
	MaintenanceCorrective MaintenanceType = "corrective"
	MaintenanceEmergency  MaintenanceType = "emergency"
	MaintenanceInspection MaintenanceType = "inspection"
)

// MaintenancePriority ranks urgency.
type MaintenancePriority string

const (
	PriorityLow      MaintenancePriority = "low"
	PriorityMedium   MaintenancePriority = "medium"
	PriorityHigh     MaintenancePriority = "high"
	PriorityCritical MaintenancePriority = "critical"
)

// MaintenanceRecord is a scheduled or running maintenance job on an asset.
// AssetName and AssetLocation are resolved from the referenced asset at load
// time; AssetLocation is the location-gating key.
type MaintenanceRecord struct {
	MaintenanceID   string              `json:"maintenanceID"`
	AssetID         string              `json:"assetID"`
	AssetName       string              `json:"assetName"`
	AssetLocation   string              `json:"assetLocation"`
	MaintenanceDate *time.Time          `json:"maintenanceDate,omitempty"`
	Type            MaintenanceType     `json:"type"`
	Priority        MaintenancePriority `json:"priority"`
	Description     string              `json:"description"`
	Cost            decimal.Decimal     `json:"cost"`
	PerformedBy     string              `json:"performedBy"`
	Status          Status              `json:"status"`
	AuditFields
}

func (m MaintenanceRecord) RecordID() string      { return m.MaintenanceID }
func (m MaintenanceRecord) AssetRef() string      { return m.AssetID }
func (m MaintenanceRecord) CurrentStatus() Status { return m.Status }
func (m MaintenanceRecord) LocationName() string  { return m.AssetLocation }
func (m MaintenanceRecord) CreatorID() string     { return m.CreatedBy }

func (m MaintenanceRecord) Workflow() *Definition { return MaintenanceWorkflow }

// MaintenanceWorkflow: every maintenance transition is admin-only. Completion
// retains the asset; there is no reopen path.
var MaintenanceWorkflow = &Definition{
	Entity:   "maintenance",
	States:   []Status{StatusScheduled, StatusInProgress, StatusCompleted, StatusCancelled, StatusOverdue},
	Initial:  StatusScheduled,
	Terminal: []Status{StatusCompleted, StatusCancelled},
	Transitions: map[StatusKey]Transition{
		{StatusScheduled, ActionStart}:     {To: StatusInProgress},
		{StatusScheduled, ActionCancel}:    {To: StatusCancelled},
		{StatusInProgress, ActionComplete}: {To: StatusCompleted},
		{StatusInProgress, ActionCancel}:   {To: StatusCancelled},
		{StatusOverdue, ActionStart}:       {To: StatusInProgress},
		{StatusOverdue, ActionCancel}:      {To: StatusCancelled},
	},
}
