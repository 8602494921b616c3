package repositories

// RepositoryProvider bundles every repository facade the service layer
// depends on. Built once at startup by the storage implementation.
type RepositoryProvider struct {
	UserRepo         UserRepositoryFacade
	AssetRepo        AssetRepositoryFacade
	LocationRepo     LocationRepositoryFacade
	MaintenanceRepo  MaintenanceRepositoryFacade
	TransferRepo     TransferRepositoryFacade
	AuctionRepo      AuctionRepositoryFacade
	DisposalRepo     DisposalRepositoryFacade
	NotificationRepo NotificationRepositoryFacade
	AuditRepo        AuditRepositoryFacade
}
