package repositories

import (
	"context"

	"github.com/gusau-lga/asset_management_app/internal/core/domain"
)

// LocationReader defines read operations for the location catalog.
type LocationReader interface {
	FindLocationByID(ctx context.Context, locationID string) (*domain.Location, error)
	FindLocationByName(ctx context.Context, name string) (*domain.Location, error)
	ListLocations(ctx context.Context) ([]domain.Location, error)
}

// LocationWriter defines write operations for the location catalog.
type LocationWriter interface {
	SaveLocation(ctx context.Context, location domain.Location) error
	UpdateLocation(ctx context.Context, location domain.Location) error
}

// LocationRepositoryFacade combines location repository interfaces.
type LocationRepositoryFacade interface {
	LocationReader
	LocationWriter
}
