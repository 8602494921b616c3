package domain

// Status is a workflow record's lifecycle state. The state sets are closed
// per entity; shared names (completed, cancelled) mean the same thing in
// every table.
type Status string

const (
	StatusDraft         Status = "draft"
	StatusPending       Status = "pending"
	StatusScheduled     Status = "scheduled"
	StatusApproved      Status = "approved"
	StatusPublished     Status = "published"
	StatusBiddingOpen   Status = "bidding_open"
	StatusBiddingClosed Status = "bidding_closed"
	StatusInProgress    Status = "in_progress"
	StatusCompleted     Status = "completed"
	StatusCancelled     Status = "cancelled"
	StatusRejected      Status = "rejected"
	StatusOverdue       Status = "overdue"
)

// Action is a transition trigger requested by an actor.
type Action string

const (
	ActionApprove      Action = "approve"
	ActionReject       Action = "reject"
	ActionStart        Action = "start"
	ActionComplete     Action = "complete"
	ActionCancel       Action = "cancel"
	ActionRevoke       Action = "revoke"
	ActionRevert       Action = "revert"
	ActionReopen       Action = "reopen"
	ActionOpenBidding  Action = "open_bidding"
	ActionCloseBidding Action = "close_bidding"
)

// Effect tags the side effect a transition carries. Effects are declared on
// the transition and executed by the workflow executor, never by callers.
type Effect int

const (
	// EffectNone leaves the referenced asset untouched.
	EffectNone Effect = iota
	// EffectDeleteAsset permanently deletes the referenced asset.
	EffectDeleteAsset
	// EffectRelocateAsset moves the referenced asset to the record's target
	// location (transfers only).
	EffectRelocateAsset
)

// StatusKey addresses one row of a transition table.
type StatusKey struct {
	From   Status
	Action Action
}

// Transition is one permitted state change. An empty Roles set means the
// transition is admin-only; admin is implicitly permitted on every
// transition regardless of the declared set.
type Transition struct {
	To     Status
	Roles  []Role
	Effect Effect
}

// Allows reports whether the given role may trigger this transition.
func (t Transition) Allows(r Role) bool {
	if r == RoleAdmin {
		return true
	}
	for _, allowed := range t.Roles {
		if allowed == r {
			return true
		}
	}
	return false
}

// Definition is a complete workflow state machine for one record type:
// the closed state set, the initial state, the soft-terminal states, and
// the transition table as data.
type Definition struct {
	Entity      string
	States      []Status
	Initial     Status
	Terminal    []Status
	Transitions map[StatusKey]Transition
}

// Lookup returns the transition for (from, action), if defined.
func (d *Definition) Lookup(from Status, action Action) (Transition, bool) {
	t, ok := d.Transitions[StatusKey{From: from, Action: action}]
	return t, ok
}

// IsTerminal reports whether the given status is a soft-terminal state: the
// default path has no further forward transition, though an explicit reopen
// may still be defined.
func (d *Definition) IsTerminal(s Status) bool {
	for _, t := range d.Terminal {
		if t == s {
			return true
		}
	}
	return false
}

// AvailableActions lists the actions the given role may trigger from the
// given status, in stable order. Used to surface action buttons to clients.
func (d *Definition) AvailableActions(from Status, r Role) []Action {
	var actions []Action
	for key, t := range d.Transitions {
		if key.From == from && t.Allows(r) {
			actions = append(actions, key.Action)
		}
	}
	sortActions(actions)
	return actions
}

func sortActions(actions []Action) {
	for i := 1; i < len(actions); i++ {
		for j := i; j > 0 && actions[j] < actions[j-1]; j-- {
			actions[j], actions[j-1] = actions[j-1], actions[j]
		}
	}
}

// WorkflowRecord is the view of a record the workflow executor needs: its
// identity, referenced asset, current status, owning state machine and the
// location that gates access to it.
type WorkflowRecord interface {
	RecordID() string
	AssetRef() string
	CurrentStatus() Status
	Workflow() *Definition
	LocationName() string
	CreatorID() string
}

// Relocator is implemented by records whose completion moves the referenced
// asset to a new location.
type Relocator interface {
	RelocationTarget() string
}

// TransitionResult describes a committed transition and its side effect.
type TransitionResult struct {
	Entity         string `json:"entity"`
	RecordID       string `json:"recordID"`
	Action         Action `json:"action"`
	From           Status `json:"from"`
	To             Status `json:"to"`
	AssetDeleted   bool   `json:"assetDeleted"`
	AssetRelocated bool   `json:"assetRelocated"`
	NewLocation    string `json:"newLocation,omitempty"`
}
