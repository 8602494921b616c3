package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/gusau-lga/asset_management_app/internal/apperrors"
	"github.com/gusau-lga/asset_management_app/internal/core/access"
	"github.com/gusau-lga/asset_management_app/internal/core/domain"
	portsrepo "github.com/gusau-lga/asset_management_app/internal/core/ports/repositories"
	portssvc "github.com/gusau-lga/asset_management_app/internal/core/ports/services"
)

// workflowService is the single executor for every record type's state
// machine. Per-entity behavior lives in the transition tables, not here.
type workflowService struct {
	BaseService
	updaters  map[string]portsrepo.StatusUpdater
	assetRepo portsrepo.AssetRepositoryFacade
	audit     portssvc.AuditSvc
	notifier  portssvc.NotificationDispatcher
}

// NewWorkflowService creates the workflow executor. The updaters map is keyed
// by Definition.Entity and must cover every record type routed through it.
func NewWorkflowService(
	updaters map[string]portsrepo.StatusUpdater,
	assetRepo portsrepo.AssetRepositoryFacade,
	audit portssvc.AuditSvc,
	notifier portssvc.NotificationDispatcher,
) portssvc.WorkflowExecutorSvc {
	return &workflowService{
		updaters:  updaters,
		assetRepo: assetRepo,
		audit:     audit,
		notifier:  notifier,
	}
}

var _ portssvc.WorkflowExecutorSvc = (*workflowService)(nil)

// Execute runs the full transition pipeline: location gate, table lookup,
// role gate, compare-and-swap commit, side effect with rollback, then audit
// and notification. Checks run in that order so a caller without location
// access learns nothing about the transition table.
func (s *workflowService) Execute(ctx context.Context, actor *domain.User, record domain.WorkflowRecord, action domain.Action) (*domain.TransitionResult, error) {
	def := record.Workflow()
	from := record.CurrentStatus()

	if !access.CanAccessLocation(actor, record.LocationName()) {
		return nil, transitionErr(def, record, from, action, record.LocationName(), apperrors.ErrLocationDenied)
	}

	transition, ok := def.Lookup(from, action)
	if !ok {
		return nil, transitionErr(def, record, from, action, "", apperrors.ErrUnknownTransition)
	}

	if !transition.Allows(actor.Role) {
		return nil, transitionErr(def, record, from, action, requiredRoles(transition), apperrors.ErrForbiddenTransition)
	}

	// Reopening past a completing transition only makes sense while the
	// referenced asset is still around.
	if from == domain.StatusCompleted {
		if _, err := s.assetRepo.FindAssetByID(ctx, record.AssetRef()); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, transitionErr(def, record, from, action, "", apperrors.ErrAssetAlreadyDeleted)
			}
			return nil, fmt.Errorf("failed to check asset %s before reopen: %w", record.AssetRef(), err)
		}
	}

	updater, ok := s.updaters[def.Entity]
	if !ok {
		return nil, fmt.Errorf("no status updater registered for entity %q", def.Entity)
	}

	if err := updater.UpdateStatus(ctx, record.RecordID(), from, transition.To, actor.UserID); err != nil {
		if errors.Is(err, apperrors.ErrStaleStatus) {
			return nil, transitionErr(def, record, from, action, "", apperrors.ErrStaleStatus)
		}
		return nil, fmt.Errorf("failed to commit %s transition for %s: %w", def.Entity, record.RecordID(), err)
	}

	result := &domain.TransitionResult{
		Entity:   def.Entity,
		RecordID: record.RecordID(),
		Action:   action,
		From:     from,
		To:       transition.To,
	}

	if err := s.applyEffect(ctx, actor, record, transition, result); err != nil {
		s.LogError(ctx, err, "transition side effect failed, rolling back status",
			slog.String("entity", def.Entity),
			slog.String("record_id", record.RecordID()),
			slog.String("action", string(action)))
		if rbErr := updater.UpdateStatus(ctx, record.RecordID(), transition.To, from, actor.UserID); rbErr != nil {
			s.LogError(ctx, rbErr, "status rollback failed after side effect failure",
				slog.String("entity", def.Entity),
				slog.String("record_id", record.RecordID()))
		}
		te := transitionErr(def, record, from, action, "", apperrors.ErrSideEffectFailed)
		return nil, fmt.Errorf("%w: %v", te, err)
	}

	s.recordAudit(ctx, actor, def, record, action, from, transition.To, result)
	s.notifyCreator(ctx, actor, def, record, from, transition.To)

	s.LogInfo(ctx, "workflow transition committed",
		slog.String("entity", def.Entity),
		slog.String("record_id", record.RecordID()),
		slog.String("action", string(action)),
		slog.String("from", string(from)),
		slog.String("to", string(transition.To)))

	return result, nil
}

// applyEffect runs the transition's declared side effect and fills the
// mutation flags on the result.
func (s *workflowService) applyEffect(ctx context.Context, actor *domain.User, record domain.WorkflowRecord, transition domain.Transition, result *domain.TransitionResult) error {
	switch transition.Effect {
	case domain.EffectNone:
		return nil

	case domain.EffectDeleteAsset:
		if err := s.assetRepo.DeleteAsset(ctx, record.AssetRef()); err != nil {
			return fmt.Errorf("failed to delete asset %s: %w", record.AssetRef(), err)
		}
		result.AssetDeleted = true
		return nil

	case domain.EffectRelocateAsset:
		relocator, ok := record.(domain.Relocator)
		if !ok {
			return fmt.Errorf("record %s declares a relocation effect but carries no target location", record.RecordID())
		}
		target := relocator.RelocationTarget()
		if target == "" {
			return fmt.Errorf("record %s has an empty relocation target", record.RecordID())
		}
		if err := s.assetRepo.UpdateAssetLocation(ctx, record.AssetRef(), target, actor.UserID); err != nil {
			return fmt.Errorf("failed to relocate asset %s to %q: %w", record.AssetRef(), target, err)
		}
		result.AssetRelocated = true
		result.NewLocation = target
		return nil

	default:
		return fmt.Errorf("unknown transition effect %d", transition.Effect)
	}
}

// recordAudit writes the trail entries for the transition and any asset
// mutation it caused. Audit failures are logged inside the audit service.
func (s *workflowService) recordAudit(ctx context.Context, actor *domain.User, def *domain.Definition, record domain.WorkflowRecord, action domain.Action, from, to domain.Status, result *domain.TransitionResult) {
	now := time.Now()
	s.audit.Record(ctx, domain.AuditEntry{
		AuditID:   uuid.NewString(),
		UserID:    actor.UserID,
		Action:    "status_changed",
		TableName: def.Entity,
		RecordID:  record.RecordID(),
		OldValues: map[string]string{"status": string(from)},
		NewValues: map[string]string{"status": string(to), "action": string(action)},
		CreatedAt: now,
	})

	if result.AssetDeleted {
		s.audit.Record(ctx, domain.AuditEntry{
			AuditID:   uuid.NewString(),
			UserID:    actor.UserID,
			Action:    fmt.Sprintf("asset_deleted_via_%s", def.Entity),
			TableName: "assets",
			RecordID:  record.AssetRef(),
			CreatedAt: now,
		})
	}
	if result.AssetRelocated {
		s.audit.Record(ctx, domain.AuditEntry{
			AuditID:   uuid.NewString(),
			UserID:    actor.UserID,
			Action:    "asset_relocated",
			TableName: "assets",
			RecordID:  record.AssetRef(),
			OldValues: map[string]string{"location": record.LocationName()},
			NewValues: map[string]string{"location": result.NewLocation},
			CreatedAt: now,
		})
	}
}

// notifyCreator raises a fire-and-forget notification for the record's
// creator, unless the creator is the actor.
func (s *workflowService) notifyCreator(ctx context.Context, actor *domain.User, def *domain.Definition, record domain.WorkflowRecord, from, to domain.Status) {
	creator := record.CreatorID()
	if creator == "" || creator == actor.UserID {
		return
	}
	s.notifier.Dispatch(ctx, domain.Notification{
		NotificationID: uuid.NewString(),
		UserID:         creator,
		SenderID:       actor.UserID,
		Title:          fmt.Sprintf("%s status updated", def.Entity),
		Message:        fmt.Sprintf("Status moved from %s to %s", from, to),
		Type:           domain.NotifyWorkflow,
		Priority:       domain.NotifyMedium,
		EntityType:     def.Entity,
		EntityID:       record.RecordID(),
		CreatedAt:      time.Now(),
	})
}

func transitionErr(def *domain.Definition, record domain.WorkflowRecord, from domain.Status, action domain.Action, required string, sentinel error) error {
	return &apperrors.TransitionError{
		Entity:   def.Entity,
		RecordID: record.RecordID(),
		From:     string(from),
		Action:   string(action),
		Required: required,
		Err:      sentinel,
	}
}

func requiredRoles(t domain.Transition) string {
	if len(t.Roles) == 0 {
		return string(domain.RoleAdmin)
	}
	out := string(t.Roles[0])
	for _, r := range t.Roles[1:] {
		out += "," + string(r)
	}
	return out
}
