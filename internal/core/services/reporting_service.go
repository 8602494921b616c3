package services

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/gusau-lga/asset_management_app/internal/core/access"
	"github.com/gusau-lga/asset_management_app/internal/core/domain"
	portsrepo "github.com/gusau-lga/asset_management_app/internal/core/ports/repositories"
	portssvc "github.com/gusau-lga/asset_management_app/internal/core/ports/services"
	"github.com/gusau-lga/asset_management_app/internal/dto"
)

// reportingFetchSize bounds how many assets one stats pass will aggregate.
const reportingFetchSize = 10000

type reportingService struct {
	BaseService
	assetRepo portsrepo.AssetReader
}

// NewReportingService creates the reporting service.
func NewReportingService(assetRepo portsrepo.AssetReader) portssvc.ReportingSvc {
	return &reportingService{assetRepo: assetRepo}
}

var _ portssvc.ReportingSvc = (*reportingService)(nil)

// AssetStats aggregates the assets the actor can see. Visibility filtering
// runs before aggregation, so a restricted user's totals never leak counts
// or values from other locations.
func (s *reportingService) AssetStats(ctx context.Context, actor *domain.User) (*dto.AssetStatsResponse, error) {
	assets, err := s.assetRepo.FindAssets(ctx, reportingFetchSize, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch assets for stats: %w", err)
	}
	visible := access.FilterVisible(actor, assets)

	stats := &dto.AssetStatsResponse{
		TotalAssets: len(visible),
		ByStatus:    make(map[string]int),
		ByCategory:  make(map[string]int),
		ByLocation:  make(map[string]int),
		TotalValue:  decimal.Zero,
	}
	for i := range visible {
		a := &visible[i]
		stats.ByStatus[string(a.Status)]++
		stats.ByCategory[a.Category]++
		stats.ByLocation[a.Location]++
		stats.TotalValue = stats.TotalValue.Add(a.CurrentValue)
	}
	return stats, nil
}
