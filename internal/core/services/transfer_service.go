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

type transferService struct {
	BaseService
	transferRepo portsrepo.TransferRepositoryFacade
	assetRepo    portsrepo.AssetReader
	locationRepo portsrepo.LocationReader
	executor     portssvc.WorkflowExecutorSvc
}

// NewTransferService creates the transfer record service. The location
// reader validates that the destination is a cataloged location.
func NewTransferService(
	transferRepo portsrepo.TransferRepositoryFacade,
	assetRepo portsrepo.AssetReader,
	locationRepo portsrepo.LocationReader,
	executor portssvc.WorkflowExecutorSvc,
) portssvc.TransferSvcFacade {
	return &transferService{
		transferRepo: transferRepo,
		assetRepo:    assetRepo,
		locationRepo: locationRepo,
		executor:     executor,
	}
}

var _ portssvc.TransferSvcFacade = (*transferService)(nil)

func (s *transferService) GetTransferByID(ctx context.Context, actor *domain.User, transferID string) (*domain.TransferRecord, error) {
	record, err := s.transferRepo.FindTransferByID(ctx, transferID)
	if err != nil {
		return nil, fmt.Errorf("failed to get transfer %s: %w", transferID, err)
	}
	if !access.CanAccessLocation(actor, record.AssetLocation) {
		return nil, apperrors.ErrLocationDenied
	}
	return record, nil
}

func (s *transferService) ListTransfers(ctx context.Context, actor *domain.User, limit, offset int) ([]domain.TransferRecord, error) {
	records, err := s.transferRepo.FindTransfers(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list transfers: %w", err)
	}
	return access.FilterVisible(actor, records), nil
}

func (s *transferService) CreateTransfer(ctx context.Context, actor *domain.User, req dto.CreateTransferRequest) (*domain.TransferRecord, error) {
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

	if req.ToLocation == asset.Location {
		return nil, fmt.Errorf("%w: asset is already at %q", apperrors.ErrValidation, req.ToLocation)
	}
	dest, err := s.locationRepo.FindLocationByName(ctx, req.ToLocation)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: destination %q is not in the catalog", apperrors.ErrValidation, req.ToLocation)
		}
		return nil, fmt.Errorf("failed to validate destination %q: %w", req.ToLocation, err)
	}
	if !dest.IsActive {
		return nil, fmt.Errorf("%w: destination %q is inactive", apperrors.ErrValidation, req.ToLocation)
	}

	transferType := domain.TransferType(req.Type)
	if transferType == "" {
		transferType = domain.TransferInternal
	}

	now := time.Now()
	record := domain.TransferRecord{
		TransferID:    uuid.NewString(),
		AssetID:       asset.AssetID,
		AssetName:     asset.Name,
		AssetLocation: asset.Location,
		Type:          transferType,
		FromLocation:  asset.Location,
		ToLocation:    req.ToLocation,
		FromCustodian: asset.Custodian,
		ToCustodian:   req.ToCustodian,
		RequestDate:   req.RequestDate,
		Reason:        req.Reason,
		EstimatedCost: req.EstimatedCost,
		Status:        domain.TransferWorkflow.Initial,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}

	if err := s.transferRepo.SaveTransfer(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create transfer: %w", err)
	}

	s.LogInfo(ctx, "transfer requested",
		slog.String("transfer_id", record.TransferID),
		slog.String("asset_id", record.AssetID),
		slog.String("from", record.FromLocation),
		slog.String("to", record.ToLocation))
	return &record, nil
}

func (s *transferService) UpdateTransfer(ctx context.Context, actor *domain.User, transferID string, req dto.UpdateTransferRequest) (*domain.TransferRecord, error) {
	record, err := s.transferRepo.FindTransferByID(ctx, transferID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transfer %s for update: %w", transferID, err)
	}
	if !access.CanAccessLocation(actor, record.AssetLocation) {
		return nil, apperrors.ErrLocationDenied
	}

	if req.ToLocation != nil {
		// The destination can change while the request is still pending; once
		// approved it is fixed, otherwise completion could relocate the asset
		// somewhere the approver never saw.
		if record.Status != domain.StatusPending {
			return nil, fmt.Errorf("%w: destination can only change while pending", apperrors.ErrValidation)
		}
		dest, err := s.locationRepo.FindLocationByName(ctx, *req.ToLocation)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: destination %q is not in the catalog", apperrors.ErrValidation, *req.ToLocation)
			}
			return nil, fmt.Errorf("failed to validate destination %q: %w", *req.ToLocation, err)
		}
		if !dest.IsActive {
			return nil, fmt.Errorf("%w: destination %q is inactive", apperrors.ErrValidation, *req.ToLocation)
		}
		record.ToLocation = *req.ToLocation
	}
	if req.Type != nil {
		record.Type = domain.TransferType(*req.Type)
	}
	if req.ToCustodian != nil {
		record.ToCustodian = *req.ToCustodian
	}
	if req.TransferDate != nil {
		record.TransferDate = req.TransferDate
	}
	if req.Reason != nil {
		record.Reason = *req.Reason
	}
	if req.EstimatedCost != nil {
		record.EstimatedCost = *req.EstimatedCost
	}

	record.LastUpdatedAt = time.Now()
	record.LastUpdatedBy = actor.UserID

	if err := s.transferRepo.UpdateTransfer(ctx, *record); err != nil {
		return nil, fmt.Errorf("failed to update transfer %s: %w", transferID, err)
	}
	return record, nil
}

func (s *transferService) ChangeStatus(ctx context.Context, actor *domain.User, transferID string, action domain.Action) (*domain.TransitionResult, error) {
	record, err := s.transferRepo.FindTransferByID(ctx, transferID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transfer %s: %w", transferID, err)
	}

	result, err := s.executor.Execute(ctx, actor, *record, action)
	if err != nil {
		return nil, err
	}

	// Approvals are attributed on the record itself.
	if action == domain.ActionApprove {
		record.Status = result.To
		record.ApprovedBy = actor.UserID
		record.LastUpdatedAt = time.Now()
		record.LastUpdatedBy = actor.UserID
		if err := s.transferRepo.UpdateTransfer(ctx, *record); err != nil {
			s.LogError(ctx, err, "failed to record approver on transfer",
				slog.String("transfer_id", transferID))
		}
	}
	return result, nil
}
