package services

import (
	"context"

	"github.com/gusau-lga/asset_management_app/internal/core/domain"
	"github.com/gusau-lga/asset_management_app/internal/dto"
)

// AssetReaderSvc defines location-gated read operations for assets.
type AssetReaderSvc interface {
	// GetAssetByID retrieves one asset; returns apperrors.ErrLocationDenied
	// when the actor's assigned locations do not cover it.
	GetAssetByID(ctx context.Context, actor *domain.User, assetID string) (*domain.Asset, error)

	// ListAssets retrieves the assets visible to the actor, in storage order.
	ListAssets(ctx context.Context, actor *domain.User, limit, offset int) ([]domain.Asset, error)
}

// AssetWriterSvc defines write operations for assets.
type AssetWriterSvc interface {
	// CreateAsset registers a new asset at a catalog location.
	CreateAsset(ctx context.Context, actor *domain.User, req dto.CreateAssetRequest) (*domain.Asset, error)

	// UpdateAsset updates an asset's details (never its location).
	UpdateAsset(ctx context.Context, actor *domain.User, assetID string, req dto.UpdateAssetRequest) (*domain.Asset, error)
}

// AssetSvcFacade combines all asset-related service interfaces.
type AssetSvcFacade interface {
	AssetReaderSvc
	AssetWriterSvc
}
