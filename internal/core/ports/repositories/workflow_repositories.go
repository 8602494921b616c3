package repositories

import (
	"context"

	"github.com/gusau-lga/asset_management_app/internal/core/domain"
)

// StatusUpdater commits a status transition with compare-and-swap semantics:
// the update applies only while the stored status still equals from.
// Implementations return apperrors.ErrStaleStatus when the guard misses, so
// two concurrent executions against the same record cannot both succeed.
type StatusUpdater interface {
	UpdateStatus(ctx context.Context, recordID string, from, to domain.Status, updatedBy string) error
}

// MaintenanceReader defines read operations for maintenance records.
type MaintenanceReader interface {
	// FindMaintenanceByID retrieves one record with its asset name and
	// location resolved.
	FindMaintenanceByID(ctx context.Context, maintenanceID string) (*domain.MaintenanceRecord, error)

	// FindMaintenanceRecords retrieves a paginated list with asset names and
	// locations resolved.
	FindMaintenanceRecords(ctx context.Context, limit int, offset int) ([]domain.MaintenanceRecord, error)
}

// MaintenanceWriter defines write operations for maintenance records.
type MaintenanceWriter interface {
	SaveMaintenance(ctx context.Context, record domain.MaintenanceRecord) error
	UpdateMaintenance(ctx context.Context, record domain.MaintenanceRecord) error
}

// MaintenanceRepositoryFacade combines maintenance repository interfaces.
type MaintenanceRepositoryFacade interface {
	MaintenanceReader
	MaintenanceWriter
	StatusUpdater
}

// TransferReader defines read operations for transfer records.
type TransferReader interface {
	FindTransferByID(ctx context.Context, transferID string) (*domain.TransferRecord, error)
	FindTransfers(ctx context.Context, limit int, offset int) ([]domain.TransferRecord, error)
}

// TransferWriter defines write operations for transfer records.
type TransferWriter interface {
	SaveTransfer(ctx context.Context, record domain.TransferRecord) error
	UpdateTransfer(ctx context.Context, record domain.TransferRecord) error
}

// TransferRepositoryFacade combines transfer repository interfaces.
type TransferRepositoryFacade interface {
	TransferReader
	TransferWriter
	StatusUpdater
}

// AuctionReader defines read operations for auction records.
type AuctionReader interface {
	FindAuctionByID(ctx context.Context, auctionID string) (*domain.AuctionRecord, error)
	FindAuctions(ctx context.Context, limit int, offset int) ([]domain.AuctionRecord, error)
}

// AuctionWriter defines write operations for auction records.
type AuctionWriter interface {
	SaveAuction(ctx context.Context, record domain.AuctionRecord) error
	UpdateAuction(ctx context.Context, record domain.AuctionRecord) error
}

// AuctionRepositoryFacade combines auction repository interfaces.
type AuctionRepositoryFacade interface {
	AuctionReader
	AuctionWriter
	StatusUpdater
}

// DisposalReader defines read operations for disposal records.
type DisposalReader interface {
	FindDisposalByID(ctx context.Context, disposalID string) (*domain.DisposalRecord, error)
	FindDisposals(ctx context.Context, limit int, offset int) ([]domain.DisposalRecord, error)
}

// DisposalWriter defines write operations for disposal records.
type DisposalWriter interface {
	SaveDisposal(ctx context.Context, record domain.DisposalRecord) error
	UpdateDisposal(ctx context.Context, record domain.DisposalRecord) error
}

// DisposalRepositoryFacade combines disposal repository interfaces.
type DisposalRepositoryFacade interface {
	DisposalReader
	DisposalWriter
	StatusUpdater
}
