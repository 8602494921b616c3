package services

import (
	"context"

	"github.com/gusau-lga/asset_management_app/internal/core/domain"
	"github.com/gusau-lga/asset_management_app/internal/dto"
)

// Each workflow record service follows the same contract: reads are
// visibility-filtered by the actor's assigned locations, creation requires
// location access to the referenced asset, and status only ever moves
// through ChangeStatus, which delegates to the workflow executor.

// MaintenanceSvcFacade defines operations on maintenance records.
type MaintenanceSvcFacade interface {
	GetMaintenanceByID(ctx context.Context, actor *domain.User, maintenanceID string) (*domain.MaintenanceRecord, error)
	ListMaintenance(ctx context.Context, actor *domain.User, limit, offset int) ([]domain.MaintenanceRecord, error)
	CreateMaintenance(ctx context.Context, actor *domain.User, req dto.CreateMaintenanceRequest) (*domain.MaintenanceRecord, error)
	UpdateMaintenance(ctx context.Context, actor *domain.User, maintenanceID string, req dto.UpdateMaintenanceRequest) (*domain.MaintenanceRecord, error)
	ChangeStatus(ctx context.Context, actor *domain.User, maintenanceID string, action domain.Action) (*domain.TransitionResult, error)
}

// TransferSvcFacade defines operations on transfer records.
type TransferSvcFacade interface {
	GetTransferByID(ctx context.Context, actor *domain.User, transferID string) (*domain.TransferRecord, error)
	ListTransfers(ctx context.Context, actor *domain.User, limit, offset int) ([]domain.TransferRecord, error)
	CreateTransfer(ctx context.Context, actor *domain.User, req dto.CreateTransferRequest) (*domain.TransferRecord, error)
	UpdateTransfer(ctx context.Context, actor *domain.User, transferID string, req dto.UpdateTransferRequest) (*domain.TransferRecord, error)
	ChangeStatus(ctx context.Context, actor *domain.User, transferID string, action domain.Action) (*domain.TransitionResult, error)
}

// AuctionSvcFacade defines operations on auction records.
type AuctionSvcFacade interface {
	GetAuctionByID(ctx context.Context, actor *domain.User, auctionID string) (*domain.AuctionRecord, error)
	ListAuctions(ctx context.Context, actor *domain.User, limit, offset int) ([]domain.AuctionRecord, error)
	CreateAuction(ctx context.Context, actor *domain.User, req dto.CreateAuctionRequest) (*domain.AuctionRecord, error)
	UpdateAuction(ctx context.Context, actor *domain.User, auctionID string, req dto.UpdateAuctionRequest) (*domain.AuctionRecord, error)
	ChangeStatus(ctx context.Context, actor *domain.User, auctionID string, action domain.Action) (*domain.TransitionResult, error)
}

// DisposalSvcFacade defines operations on disposal records.
type DisposalSvcFacade interface {
	GetDisposalByID(ctx context.Context, actor *domain.User, disposalID string) (*domain.DisposalRecord, error)
	ListDisposals(ctx context.Context, actor *domain.User, limit, offset int) ([]domain.DisposalRecord, error)
	CreateDisposal(ctx context.Context, actor *domain.User, req dto.CreateDisposalRequest) (*domain.DisposalRecord, error)
	UpdateDisposal(ctx context.Context, actor *domain.User, disposalID string, req dto.UpdateDisposalRequest) (*domain.DisposalRecord, error)
	ChangeStatus(ctx context.Context, actor *domain.User, disposalID string, action domain.Action) (*domain.TransitionResult, error)
}
