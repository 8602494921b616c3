package services

import (
	"context"

	"github.com/gusau-lga/asset_management_app/internal/core/domain"
	"github.com/gusau-lga/asset_management_app/internal/dto"
)

// ReportingSvc computes aggregates over the records visible to the actor.
// Visibility filtering always runs before aggregation.
type ReportingSvc interface {
	// AssetStats aggregates counts and total value of visible assets.
	AssetStats(ctx context.Context, actor *domain.User) (*dto.AssetStatsResponse, error)
}
