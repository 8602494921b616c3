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
	"github.com/gusau-lga/asset_management_app/internal/dto"
)

type disposalService struct {
	BaseService
	disposalRepo portsrepo.DisposalRepositoryFacade
	assetRepo    portsrepo.AssetReader
	executor     portssvc.WorkflowExecutorSvc
}

// NewDisposalService creates the disposal record service.
func NewDisposalService(
	disposalRepo portsrepo.DisposalRepositoryFacade,
	assetRepo portsrepo.AssetReader,
	executor portssvc.WorkflowExecutorSvc,
) portssvc.DisposalSvcFacade {
	return &disposalService{
		disposalRepo: disposalRepo,
		assetRepo:    assetRepo,
		executor:     executor,
	}
}

var _ portssvc.DisposalSvcFacade = (*disposalService)(nil)

func (s *disposalService) GetDisposalByID(ctx context.Context, actor *domain.User, disposalID string) (*domain.DisposalRecord, error) {
	record, err := s.disposalRepo.FindDisposalByID(ctx, disposalID)
	if err != nil {
		return nil, fmt.Errorf("failed to get disposal %s: %w", disposalID, err)
	}
	if !access.CanAccessLocation(actor, record.AssetLocation) {
		return nil, apperrors.ErrLocationDenied
	}
	return record, nil
}

func (s *disposalService) ListDisposals(ctx context.Context, actor *domain.User, limit, offset int) ([]domain.DisposalRecord, error) {
	records, err := s.disposalRepo.FindDisposals(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list disposals: %w", err)
	}
	return access.FilterVisible(actor, records), nil
}

func (s *disposalService) CreateDisposal(ctx context.Context, actor *domain.User, req dto.CreateDisposalRequest) (*domain.DisposalRecord, error) {
	asset, err := s.assetRepo.FindAssetByID(ctx, req.AssetID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: asset %s does not exist", apperrors.ErrValidation, req.AssetID)
		}
		return nil, fmt.Errorf("failed to resolve asset %s: %w", req.AssetID, err)
	}
	if !access.CanAccessLocation(actor, asset.Location) {
		return nil, apperrors.ErrLocationDenied
	}

	now := time.Now()
	record := domain.DisposalRecord{
		DisposalID:    uuid.NewString(),
		AssetID:       asset.AssetID,
		AssetName:     asset.Name,
		AssetLocation: asset.Location,
		Method:        domain.DisposalMethod(req.Method),
		DisposalDate:  req.DisposalDate,
		Reason:        req.Reason,
		Proceeds:      req.Proceeds,
		Status:        domain.DisposalWorkflow.Initial,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}

	if err := s.disposalRepo.SaveDisposal(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create disposal: %w", err)
	}

	s.LogInfo(ctx, "disposal drafted",
		slog.String("disposal_id", record.DisposalID),
		slog.String("asset_id", record.AssetID))
	return &record, nil
}

func (s *disposalService) UpdateDisposal(ctx context.Context, actor *domain.User, disposalID string, req dto.UpdateDisposalRequest) (*domain.DisposalRecord, error) {
	record, err := s.disposalRepo.FindDisposalByID(ctx, disposalID)
	if err != nil {
		return nil, fmt.Errorf("failed to load disposal %s for update: %w", disposalID, err)
	}
	if !access.CanAccessLocation(actor, record.AssetLocation) {
		return nil, apperrors.ErrLocationDenied
	}

	if req.Method != nil {
		record.Method = domain.DisposalMethod(*req.Method)
	}
	if req.DisposalDate != nil {
		record.DisposalDate = req.DisposalDate
	}
	if req.Reason != nil {
		record.Reason = *req.Reason
	}
	if req.Proceeds != nil {
		record.Proceeds = *req.Proceeds
	}

	record.LastUpdatedAt = time.Now()
	record.LastUpdatedBy = actor.UserID

	if err := s.disposalRepo.UpdateDisposal(ctx, *record); err != nil {
		return nil, fmt.Errorf("failed to update disposal %s: %w", disposalID, err)
	}
	return record, nil
}

func (s *disposalService) ChangeStatus(ctx context.Context, actor *domain.User, disposalID string, action domain.Action) (*domain.TransitionResult, error) {
	record, err := s.disposalRepo.FindDisposalByID(ctx, disposalID)
	if err != nil {
		return nil, fmt.Errorf("failed to load disposal %s: %w", disposalID, err)
	}

	result, err := s.executor.Execute(ctx, actor, *record, action)
	if err != nil {
		return nil, err
	}

	if action == domain.ActionApprove {
		record.Status = result.To
		record.ApprovedBy = actor.UserID
		record.LastUpdatedAt = time.Now()
		record.LastUpdatedBy = actor.UserID
		if err := s.disposalRepo.UpdateDisposal(ctx, *record); err != nil {
			s.LogError(ctx, err, "failed to record approver on disposal",
				slog.String("disposal_id", disposalID))
		}
	}
	return result, nil
}
