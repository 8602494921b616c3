package domain_test

import (
	"testing"

	"github.com/gusau-lga/asset_management_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allWorkflows = []*domain.Definition{
	domain.MaintenanceWorkflow,
	domain.TransferWorkflow,
	domain.AuctionWorkflow,
	domain.DisposalWorkflow,
}

// Every transition must start and end inside the definition's closed state
// set, and the initial state must be a member.
func TestDefinitions_Closed(t *testing.T) {
	for _, def := range allWorkflows {
		t.Run(def.Entity, func(t *testing.T) {
			states := make(map[domain.Status]bool)
			for _, s := range def.States {
				states[s] = true
			}
			assert.True(t, states[def.Initial], "initial state %q not in state set", def.Initial)
			for _, term := range def.Terminal {
				assert.True(t, states[term], "terminal state %q not in state set", term)
			}
			for key, tr := range def.Transitions {
				assert.True(t, states[key.From], "%s: from state %q not in state set", def.Entity, key.From)
				assert.True(t, states[tr.To], "%s: to state %q not in state set", def.Entity, tr.To)
			}
		})
	}
}

func TestTransitionAllows_AdminBypass(t *testing.T) {
	for _, def := range allWorkflows {
		for key, tr := range def.Transitions {
			assert.True(t, tr.Allows(domain.RoleAdmin),
				"%s: admin must be allowed on (%s, %s)", def.Entity, key.From, key.Action)
		}
	}
}

func TestTransitionAllows_RoleGate(t *testing.T) {
	tr, ok := domain.AuctionWorkflow.Lookup(domain.StatusBiddingOpen, domain.ActionComplete)
	require.True(t, ok)
	assert.True(t, tr.Allows(domain.RoleAuctionManager))
	assert.False(t, tr.Allows(domain.RoleDisposalManager))
	assert.False(t, tr.Allows(domain.RoleViewer))
	assert.Equal(t, domain.StatusCompleted, tr.To)
	assert.Equal(t, domain.EffectDeleteAsset, tr.Effect)
}

// Draft approval is admin-only for both auctions and disposals: the declared
// role set is empty, leaving only the implicit admin.
func TestDraftApproval_AdminOnly(t *testing.T) {
	for _, def := range []*domain.Definition{domain.AuctionWorkflow, domain.DisposalWorkflow} {
		tr, ok := def.Lookup(domain.StatusDraft, domain.ActionApprove)
		require.True(t, ok, "%s: draft approve missing", def.Entity)
		assert.Empty(t, tr.Roles, "%s: draft approve must be admin-only", def.Entity)
		assert.False(t, tr.Allows(domain.RoleAuctionManager))
		assert.False(t, tr.Allows(domain.RoleDisposalManager))
	}
}

func TestTransferComplete_RelocatesAsset(t *testing.T) {
	tr, ok := domain.TransferWorkflow.Lookup(domain.StatusApproved, domain.ActionComplete)
	require.True(t, ok)
	assert.Equal(t, domain.EffectRelocateAsset, tr.Effect)
	assert.True(t, tr.Allows(domain.RoleManager))
}

func TestMaintenance_NoSideEffects(t *testing.T) {
	for key, tr := range domain.MaintenanceWorkflow.Transitions {
		assert.Equal(t, domain.EffectNone, tr.Effect,
			"maintenance (%s, %s) must not carry a side effect", key.From, key.Action)
	}
}

func TestLookup_UnknownPair(t *testing.T) {
	_, ok := domain.MaintenanceWorkflow.Lookup(domain.StatusCompleted, domain.ActionStart)
	assert.False(t, ok)
	_, ok = domain.TransferWorkflow.Lookup(domain.StatusPending, domain.ActionComplete)
	assert.False(t, ok)
}

func TestAvailableActions(t *testing.T) {
	// Auction manager from bidding_closed: complete and reopen.
	actions := domain.AuctionWorkflow.AvailableActions(domain.StatusBiddingClosed, domain.RoleAuctionManager)
	assert.Equal(t, []domain.Action{domain.ActionComplete, domain.ActionReopen}, actions)

	// Viewer can trigger nothing anywhere.
	for _, def := range allWorkflows {
		for _, s := range def.States {
			assert.Empty(t, def.AvailableActions(s, domain.RoleViewer),
				"%s: viewer should have no actions from %s", def.Entity, s)
		}
	}

	// Admin always sees every defined action for the state.
	actions = domain.DisposalWorkflow.AvailableActions(domain.StatusDraft, domain.RoleAdmin)
	assert.Equal(t, []domain.Action{domain.ActionApprove, domain.ActionCancel}, actions)
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, domain.AuctionWorkflow.IsTerminal(domain.StatusCompleted))
	assert.True(t, domain.TransferWorkflow.IsTerminal(domain.StatusRejected))
	assert.False(t, domain.DisposalWorkflow.IsTerminal(domain.StatusInProgress))
}
