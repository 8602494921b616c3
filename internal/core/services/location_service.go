package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/gusau-lga/asset_management_app/internal/apperrors"
	"github.com/gusau-lga/asset_management_app/internal/core/domain"
	portsrepo "github.com/gusau-lga/asset_management_app/internal/core/ports/repositories"
	portssvc "github.com/gusau-lga/asset_management_app/internal/core/ports/services"
	"github.com/gusau-lga/asset_management_app/internal/dto"
)

type locationService struct {
	BaseService
	locationRepo portsrepo.LocationRepositoryFacade
}

// NewLocationService creates the location catalog service.
func NewLocationService(locationRepo portsrepo.LocationRepositoryFacade) portssvc.LocationSvcFacade {
	return &locationService{locationRepo: locationRepo}
}

var _ portssvc.LocationSvcFacade = (*locationService)(nil)

func (s *locationService) GetLocationByID(ctx context.Context, locationID string) (*domain.Location, error) {
	loc, err := s.locationRepo.FindLocationByID(ctx, locationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get location %s: %w", locationID, err)
	}
	return loc, nil
}

func (s *locationService) ListLocations(ctx context.Context) ([]domain.Location, error) {
	locations, err := s.locationRepo.ListLocations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}
	return locations, nil
}

func (s *locationService) CreateLocation(ctx context.Context, req dto.CreateLocationRequest, creatorUserID string) (*domain.Location, error) {
	existing, err := s.locationRepo.FindLocationByName(ctx, req.Name)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check location name uniqueness: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: location %q already exists", apperrors.ErrDuplicate, req.Name)
	}

	now := time.Now()
	loc := domain.Location{
		LocationID: uuid.NewString(),
		Name:       req.Name,
		Address:    req.Address,
		Region:     req.Region,
		IsActive:   true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.locationRepo.SaveLocation(ctx, loc); err != nil {
		return nil, fmt.Errorf("failed to create location: %w", err)
	}

	s.LogInfo(ctx, "location created",
		slog.String("location_id", loc.LocationID),
		slog.String("name", loc.Name))
	return &loc, nil
}

func (s *locationService) UpdateLocation(ctx context.Context, locationID string, req dto.UpdateLocationRequest, updaterUserID string) (*domain.Location, error) {
	loc, err := s.locationRepo.FindLocationByID(ctx, locationID)
	if err != nil {
		return nil, fmt.Errorf("failed to load location %s for update: %w", locationID, err)
	}

	if req.Address != nil {
		loc.Address = *req.Address
	}
	if req.Region != nil {
		loc.Region = *req.Region
	}
	if req.IsActive != nil {
		loc.IsActive = *req.IsActive
	}

	loc.LastUpdatedAt = time.Now()
	loc.LastUpdatedBy = updaterUserID

	if err := s.locationRepo.UpdateLocation(ctx, *loc); err != nil {
		return nil, fmt.Errorf("failed to update location %s: %w", locationID, err)
	}
	return loc, nil
}
