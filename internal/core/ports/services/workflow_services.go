package services

import (
	"context"

	"github.com/gusau-lga/asset_management_app/internal/core/domain"
)

// WorkflowExecutorSvc validates and applies workflow transitions. There is
// one executor for all four record types; the per-entity transition tables
// are data on the records themselves.
type WorkflowExecutorSvc interface {
	// Execute applies one action to a record on behalf of an actor. It
	// checks location access, looks up the transition, checks the actor's
	// role, commits the status change with a compare-and-swap and runs the
	// declared side effect, rolling the status back if the effect fails.
	Execute(ctx context.Context, actor *domain.User, record domain.WorkflowRecord, action domain.Action) (*domain.TransitionResult, error)
}
