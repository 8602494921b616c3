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

type maintenanceService struct {
	BaseService
	maintenanceRepo portsrepo.MaintenanceRepositoryFacade
	assetRepo       portsrepo.AssetReader
	executor        portssvc.WorkflowExecutorSvc
}

// NewMaintenanceService creates the maintenance record service.
func NewMaintenanceService(
	maintenanceRepo portsrepo.MaintenanceRepositoryFacade,
	assetRepo portsrepo.AssetReader,
	executor portssvc.WorkflowExecutorSvc,
) portssvc.MaintenanceSvcFacade {
	return &maintenanceService{
		maintenanceRepo: maintenanceRepo,
		assetRepo:       assetRepo,
		executor:        executor,
	}
}

var _ portssvc.MaintenanceSvcFacade = (*maintenanceService)(nil)

func (s *maintenanceService) GetMaintenanceByID(ctx context.Context, actor *domain.User, maintenanceID string) (*domain.MaintenanceRecord, error) {
	record, err := s.maintenanceRepo.FindMaintenanceByID(ctx, maintenanceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get maintenance record %s: %w", maintenanceID, err)
	}
	if !access.CanAccessLocation(actor, record.AssetLocation) {
		return nil, apperrors.ErrLocationDenied
	}
	return record, nil
}

func (s *maintenanceService) ListMaintenance(ctx context.Context, actor *domain.User, limit, offset int) ([]domain.MaintenanceRecord, error) {
	records, err := s.maintenanceRepo.FindMaintenanceRecords(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list maintenance records: %w", err)
	}
	return access.FilterVisible(actor, records), nil
}

func (s *maintenanceService) CreateMaintenance(ctx context.Context, actor *domain.User, req dto.CreateMaintenanceRequest) (*domain.MaintenanceRecord, error) {
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

	priority := domain.MaintenancePriority(req.Priority)
	if priority == "" {
		priority = domain.PriorityMedium
	}

	now := time.Now()
	record := domain.MaintenanceRecord{
		MaintenanceID:   uuid.NewString(),
		AssetID:         asset.AssetID,
		AssetName:       asset.Name,
		AssetLocation:   asset.Location,
		MaintenanceDate: req.MaintenanceDate,
		Type:            domain.MaintenanceType(req.Type),
		Priority:        priority,
		Description:     req.Description,
		Cost:            req.Cost,
		PerformedBy:     req.PerformedBy,
		Status:          domain.MaintenanceWorkflow.Initial,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}

	if err := s.maintenanceRepo.SaveMaintenance(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create maintenance record: %w", err)
	}

	s.LogInfo(ctx, "maintenance record created",
		slog.String("maintenance_id", record.MaintenanceID),
		slog.String("asset_id", record.AssetID))
	return &record, nil
}

func (s *maintenanceService) UpdateMaintenance(ctx context.Context, actor *domain.User, maintenanceID string, req dto.UpdateMaintenanceRequest) (*domain.MaintenanceRecord, error) {
	record, err := s.maintenanceRepo.FindMaintenanceByID(ctx, maintenanceID)
	if err != nil {
		return nil, fmt.Errorf("failed to load maintenance record %s for update: %w", maintenanceID, err)
	}
	if !access.CanAccessLocation(actor, record.AssetLocation) {
		return nil, apperrors.ErrLocationDenied
	}

	if req.Type != nil {
		record.Type = domain.MaintenanceType(*req.Type)
	}
	if req.Priority != nil {
		record.Priority = domain.MaintenancePriority(*req.Priority)
	}
	if req.MaintenanceDate != nil {
		record.MaintenanceDate = req.MaintenanceDate
	}
	if req.Description != nil {
		record.Description = *req.Description
	}
	if req.Cost != nil {
		record.Cost = *req.Cost
	}
	if req.PerformedBy != nil {
		record.PerformedBy = *req.PerformedBy
	}

	record.LastUpdatedAt = time.Now()
	record.LastUpdatedBy = actor.UserID

	if err := s.maintenanceRepo.UpdateMaintenance(ctx, *record); err != nil {
		return nil, fmt.Errorf("failed to update maintenance record %s: %w", maintenanceID, err)
	}
	return record, nil
}

func (s *maintenanceService) ChangeStatus(ctx context.Context, actor *domain.User, maintenanceID string, action domain.Action) (*domain.TransitionResult, error) {
	record, err := s.maintenanceRepo.FindMaintenanceByID(ctx, maintenanceID)
	if err != nil {
		return nil, fmt.Errorf("failed to load maintenance record %s: %w", maintenanceID, err)
	}
	return s.executor.Execute(ctx, actor, *record, action)
}
