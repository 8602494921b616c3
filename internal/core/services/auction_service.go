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

type auctionService struct {
	BaseService
	auctionRepo portsrepo.AuctionRepositoryFacade
	assetRepo   portsrepo.AssetReader
	executor    portssvc.WorkflowExecutorSvc
}

// NewAuctionService creates the auction record service.
func NewAuctionService(
	auctionRepo portsrepo.AuctionRepositoryFacade,
	assetRepo portsrepo.AssetReader,
	executor portssvc.WorkflowExecutorSvc,
) portssvc.AuctionSvcFacade {
	return &auctionService{
		auctionRepo: auctionRepo,
		assetRepo:   assetRepo,
		executor:    executor,
	}
}

var _ portssvc.AuctionSvcFacade = (*auctionService)(nil)

func (s *auctionService) GetAuctionByID(ctx context.Context, actor *domain.User, auctionID string) (*domain.AuctionRecord, error) {
	record, err := s.auctionRepo.FindAuctionByID(ctx, auctionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get auction %s: %w", auctionID, err)
	}
	if !access.CanAccessLocation(actor, record.AssetLocation) {
		return nil, apperrors.ErrLocationDenied
	}
	return record, nil
}

func (s *auctionService) ListAuctions(ctx context.Context, actor *domain.User, limit, offset int) ([]domain.AuctionRecord, error) {
	records, err := s.auctionRepo.FindAuctions(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list auctions: %w", err)
	}
	return access.FilterVisible(actor, records), nil
}

func (s *auctionService) CreateAuction(ctx context.Context, actor *domain.User, req dto.CreateAuctionRequest) (*domain.AuctionRecord, error) {
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

	auctionType := domain.AuctionType(req.Type)
	if auctionType == "" {
		auctionType = domain.AuctionPublic
	}

	now := time.Now()
	record := domain.AuctionRecord{
		AuctionID:     uuid.NewString(),
		AssetID:       asset.AssetID,
		AssetName:     asset.Name,
		AssetLocation: asset.Location,
		Type:          auctionType,
		Title:         req.Title,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		StartingBid:   req.StartingBid,
		ReservePrice:  req.ReservePrice,
		Description:   req.Description,
		Status:        domain.AuctionWorkflow.Initial,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}

	if err := s.auctionRepo.SaveAuction(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create auction: %w", err)
	}

	s.LogInfo(ctx, "auction drafted",
		slog.String("auction_id", record.AuctionID),
		slog.String("asset_id", record.AssetID))
	return &record, nil
}

func (s *auctionService) UpdateAuction(ctx context.Context, actor *domain.User, auctionID string, req dto.UpdateAuctionRequest) (*domain.AuctionRecord, error) {
	record, err := s.auctionRepo.FindAuctionByID(ctx, auctionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load auction %s for update: %w", auctionID, err)
	}
	if !access.CanAccessLocation(actor, record.AssetLocation) {
		return nil, apperrors.ErrLocationDenied
	}

	if req.Type != nil {
		record.Type = domain.AuctionType(*req.Type)
	}
	if req.Title != nil {
		record.Title = *req.Title
	}
	if req.StartDate != nil {
		record.StartDate = req.StartDate
	}
	if req.EndDate != nil {
		record.EndDate = req.EndDate
	}
	if req.StartingBid != nil {
		record.StartingBid = *req.StartingBid
	}
	if req.ReservePrice != nil {
		record.ReservePrice = *req.ReservePrice
	}
	if req.WinningBid != nil {
		record.WinningBid = *req.WinningBid
	}
	if req.WinnerName != nil {
		record.WinnerName = *req.WinnerName
	}
	if req.WinnerContact != nil {
		record.WinnerContact = *req.WinnerContact
	}
	if req.TotalBids != nil {
		record.TotalBids = *req.TotalBids
	}
	if req.Description != nil {
		record.Description = *req.Description
	}

	record.LastUpdatedAt = time.Now()
	record.LastUpdatedBy = actor.UserID

	if err := s.auctionRepo.UpdateAuction(ctx, *record); err != nil {
		return nil, fmt.Errorf("failed to update auction %s: %w", auctionID, err)
	}
	return record, nil
}

func (s *auctionService) ChangeStatus(ctx context.Context, actor *domain.User, auctionID string, action domain.Action) (*domain.TransitionResult, error) {
	record, err := s.auctionRepo.FindAuctionByID(ctx, auctionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load auction %s: %w", auctionID, err)
	}
	return s.executor.Execute(ctx, actor, *record, action)
}
