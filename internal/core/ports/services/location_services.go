package services

import (
	"context"

	"github.com/gusau-lga/asset_management_app/internal/core/domain"
	"github.com/gusau-lga/asset_management_app/internal/dto"
)

// LocationSvcFacade defines operations on the location catalog.
type LocationSvcFacade interface {
	// GetLocationByID retrieves a catalog entry.
	GetLocationByID(ctx context.Context, locationID string) (*domain.Location, error)

	// ListLocations retrieves the whole catalog, ordered by name.
	ListLocations(ctx context.Context) ([]domain.Location, error)

	// CreateLocation adds a catalog entry. Names must be unique.
	CreateLocation(ctx context.Context, req dto.CreateLocationRequest, creatorUserID string) (*domain.Location, error)

	// UpdateLocation edits a catalog entry (the name is immutable).
	UpdateLocation(ctx context.Context, locationID string, req dto.UpdateLocationRequest, updaterUserID string) (*domain.Location, error)
}
