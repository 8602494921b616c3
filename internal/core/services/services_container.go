package services

import (
	"github.com/gusau-lga/asset_management_app/internal/core/domain"
	portsrepo "github.com/gusau-lga/asset_management_app/internal/core/ports/repositories"
	portssvc "github.com/gusau-lga/asset_management_app/internal/core/ports/services"
	"github.com/gusau-lga/asset_management_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Audit and notifications come first: the workflow executor depends on
	// both.
	container.Audit = NewAuditService(repos.AuditRepo)
	container.Notification = NewNotificationService(repos.NotificationRepo)

	executor := NewWorkflowService(
		map[string]portsrepo.StatusUpdater{
			domain.MaintenanceWorkflow.Entity: repos.MaintenanceRepo,
			domain.TransferWorkflow.Entity:    repos.TransferRepo,
			domain.AuctionWorkflow.Entity:     repos.AuctionRepo,
			domain.DisposalWorkflow.Entity:    repos.DisposalRepo,
		},
		repos.AssetRepo,
		container.Audit,
		container.Notification,
	)

	container.Auth = NewAuthService(cfg, repos.UserRepo)
	container.User = NewUserService(repos.UserRepo)
	container.Asset = NewAssetService(repos.AssetRepo, repos.LocationRepo)
	container.Location = NewLocationService(repos.LocationRepo)
	container.Maintenance = NewMaintenanceService(repos.MaintenanceRepo, repos.AssetRepo, executor)
	container.Transfer = NewTransferService(repos.TransferRepo, repos.AssetRepo, repos.LocationRepo, executor)
	container.Auction = NewAuctionService(repos.AuctionRepo, repos.AssetRepo, executor)
	container.Disposal = NewDisposalService(repos.DisposalRepo, repos.AssetRepo, executor)
	container.Reporting = NewReportingService(repos.AssetRepo)

	return container
}
