package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/gusau-lga/asset_management_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:         newPgxUserRepository(dbPool),
		AssetRepo:        newPgxAssetRepository(dbPool),
		LocationRepo:     newPgxLocationRepository(dbPool),
		MaintenanceRepo:  newPgxMaintenanceRepository(dbPool),
		TransferRepo:     newPgxTransferRepository(dbPool),
		AuctionRepo:      newPgxAuctionRepository(dbPool),
		DisposalRepo:     newPgxDisposalRepository(dbPool),
		NotificationRepo: newPgxNotificationRepository(dbPool),
		AuditRepo:        newPgxAuditRepository(dbPool),
	}
}
