package repositories

import (
	"context"

	"github.com/gusau-lga/asset_management_app/internal/core/domain"
)

// AssetReader defines read operations for assets.
type AssetReader interface {
	// FindAssetByID retrieves an asset by ID. Returns apperrors.ErrNotFound
	// when the asset has been deleted (e.g. by a completed auction).
	FindAssetByID(ctx context.Context, assetID string) (*domain.Asset, error)

	// FindAssets retrieves a paginated list of assets. Visibility filtering
	// happens in the service layer, not here.
	FindAssets(ctx context.Context, limit int, offset int) ([]domain.Asset, error)
}

// AssetWriter defines write operations for assets.
type AssetWriter interface {
	// SaveAsset persists a new asset.
	SaveAsset(ctx context.Context, asset domain.Asset) error

	// UpdateAsset updates an existing asset's details.
	UpdateAsset(ctx context.Context, asset domain.Asset) error
}

// AssetLifecycleManager defines the mutations workflow side effects need.
type AssetLifecycleManager interface {
	// DeleteAsset permanently removes an asset. Invoked by the workflow
	// executor when an auction or disposal completes.
	DeleteAsset(ctx context.Context, assetID string) error

	// UpdateAssetLocation moves an asset to a new location. Invoked by the
	// workflow executor when a transfer completes.
	UpdateAssetLocation(ctx context.Context, assetID string, location string, updatedBy string) error
}

// AssetRepositoryFacade combines all asset-related repository interfaces.
type AssetRepositoryFacade interface {
	AssetReader
	AssetWriter
	AssetLifecycleManager
}
