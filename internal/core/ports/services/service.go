package services

// ServiceContainer holds instances of all the application services. It is
// the entry point handlers use to reach service functionality.
type ServiceContainer struct {
	Auth         AuthSvcFacade
	User         UserSvcFacade
	Asset        AssetSvcFacade
	Location     LocationSvcFacade
	Maintenance  MaintenanceSvcFacade
	Transfer     TransferSvcFacade
	Auction      AuctionSvcFacade
	Disposal     DisposalSvcFacade
	Notification NotificationSvcFacade
	Reporting    ReportingSvc
	Audit        AuditSvc
}
