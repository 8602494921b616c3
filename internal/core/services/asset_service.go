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

type assetService struct {
	BaseService
	assetRepo    portsrepo.AssetRepositoryFacade
	locationRepo portsrepo.LocationReader
}

// NewAssetService creates an asset service. The location reader validates
// that new assets land on a cataloged location.
func NewAssetService(assetRepo portsrepo.AssetRepositoryFacade, locationRepo portsrepo.LocationReader) portssvc.AssetSvcFacade {
	return &assetService{assetRepo: assetRepo, locationRepo: locationRepo}
}

var _ portssvc.AssetSvcFacade = (*assetService)(nil)

func (s *assetService) GetAssetByID(ctx context.Context, actor *domain.User, assetID string) (*domain.Asset, error) {
	asset, err := s.assetRepo.FindAssetByID(ctx, assetID)
	if err != nil {
		return nil, fmt.Errorf("failed to get asset %s: %w", assetID, err)
	}
	if !access.CanAccessLocation(actor, asset.Location) {
		return nil, apperrors.ErrLocationDenied
	}
	return asset, nil
}

func (s *assetService) ListAssets(ctx context.Context, actor *domain.User, limit, offset int) ([]domain.Asset, error) {
	assets, err := s.assetRepo.FindAssets(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}
	return access.FilterVisible(actor, assets), nil
}

func (s *assetService) CreateAsset(ctx context.Context, actor *domain.User, req dto.CreateAssetRequest) (*domain.Asset, error) {
	if !access.CanAccessLocation(actor, req.Location) {
		return nil, apperrors.ErrLocationDenied
	}

	loc, err := s.locationRepo.FindLocationByName(ctx, req.Location)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: location %q is not in the catalog", apperrors.ErrValidation, req.Location)
		}
		return nil, fmt.Errorf("failed to validate location %q: %w", req.Location, err)
	}
	if !loc.IsActive {
		return nil, fmt.Errorf("%w: location %q is inactive", apperrors.ErrValidation, req.Location)
	}

	now := time.Now()
	asset := domain.Asset{
		AssetID:      uuid.NewString(),
		Name:         req.Name,
		Category:     req.Category,
		SerialNumber: req.SerialNumber,
		Location:     req.Location,
		Department:   req.Department,
		Custodian:    req.Custodian,
		Status:       domain.AssetActive,
		PurchaseDate: req.PurchaseDate,
		PurchaseCost: req.PurchaseCost,
		CurrentValue: req.CurrentValue,
		Description:  req.Description,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}

	if err := s.assetRepo.SaveAsset(ctx, asset); err != nil {
		return nil, fmt.Errorf("failed to create asset: %w", err)
	}

	s.LogInfo(ctx, "asset created",
		slog.String("asset_id", asset.AssetID),
		slog.String("location", asset.Location),
		slog.String("created_by", actor.UserID))
	return &asset, nil
}

func (s *assetService) UpdateAsset(ctx context.Context, actor *domain.User, assetID string, req dto.UpdateAssetRequest) (*domain.Asset, error) {
	asset, err := s.assetRepo.FindAssetByID(ctx, assetID)
	if err != nil {
		return nil, fmt.Errorf("failed to load asset %s for update: %w", assetID, err)
	}
	if !access.CanAccessLocation(actor, asset.Location) {
		return nil, apperrors.ErrLocationDenied
	}

	if req.Status != nil {
		status := domain.AssetStatus(*req.Status)
		if !validAssetStatus(status) {
			return nil, fmt.Errorf("%w: unknown asset status %q", apperrors.ErrValidation, *req.Status)
		}
		asset.Status = status
	}
	if req.Name != nil {
		asset.Name = *req.Name
	}
	if req.Category != nil {
		asset.Category = *req.Category
	}
	if req.SerialNumber != nil {
		asset.SerialNumber = *req.SerialNumber
	}
	if req.Department != nil {
		asset.Department = *req.Department
	}
	if req.Custodian != nil {
		asset.Custodian = *req.Custodian
	}
	if req.CurrentValue != nil {
		asset.CurrentValue = *req.CurrentValue
	}
	if req.Description != nil {
		asset.Description = *req.Description
	}

	asset.LastUpdatedAt = time.Now()
	asset.LastUpdatedBy = actor.UserID

	if err := s.assetRepo.UpdateAsset(ctx, *asset); err != nil {
		return nil, fmt.Errorf("failed to update asset %s: %w", assetID, err)
	}
	return asset, nil
}

func validAssetStatus(s domain.AssetStatus) bool {
	switch s {
	case domain.AssetActive, domain.AssetMaintenance, domain.AssetDisposed, domain.AssetAuctioned:
		return true
	}
	return false
}
