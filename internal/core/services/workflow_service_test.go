package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/gusau-lga/asset_management_app/internal/apperrors"
	"github.com/gusau-lga/asset_management_app/internal/core/domain"
	portsrepo "github.com/gusau-lga/asset_management_app/internal/core/ports/repositories"
	portssvc "github.com/gusau-lga/asset_management_app/internal/core/ports/services"
	"github.com/gusau-lga/asset_management_app/internal/core/services"
)

// --- Mock StatusUpdater ---
type MockStatusUpdater struct {
	mock.Mock
}

func (m *MockStatusUpdater) UpdateStatus(ctx context.Context, recordID string, from, to domain.Status, updatedBy string) error {
	args := m.Called(ctx, recordID, from, to, updatedBy)
	return args.Error(0)
}

// --- Mock AssetRepository ---
type MockAssetRepository struct {
	mock.Mock
}

func (m *MockAssetRepository) FindAssetByID(ctx context.Context, assetID string) (*domain.Asset, error) {
	args := m.Called(ctx, assetID)
	var asset *domain.Asset
	if args.Get(0) != nil {
		asset = args.Get(0).(*domain.Asset)
	}
	return asset, args.Error(1)
}

func (m *MockAssetRepository) FindAssets(ctx context.Context, limit, offset int) ([]domain.Asset, error) {
	args := m.Called(ctx, limit, offset)
	var assets []domain.Asset
	if args.Get(0) != nil {
		assets = args.Get(0).([]domain.Asset)
	}
	return assets, args.Error(1)
}

func (m *MockAssetRepository) SaveAsset(ctx context.Context, asset domain.Asset) error {
	args := m.Called(ctx, asset)
	return args.Error(0)
}

func (m *MockAssetRepository) UpdateAsset(ctx context.Context, asset domain.Asset) error {
	args := m.Called(ctx, asset)
	return args.Error(0)
}

func (m *MockAssetRepository) DeleteAsset(ctx context.Context, assetID string) error {
	args := m.Called(ctx, assetID)
	return args.Error(0)
}

func (m *MockAssetRepository) UpdateAssetLocation(ctx context.Context, assetID string, location string, updatedBy string) error {
	args := m.Called(ctx, assetID, location, updatedBy)
	return args.Error(0)
}

// --- Mock AuditSvc ---
type MockAuditService struct {
	mock.Mock
}

func (m *MockAuditService) Record(ctx context.Context, entry domain.AuditEntry) {
	m.Called(ctx, entry)
}

func (m *MockAuditService) ListEntries(ctx context.Context, limit, offset int) ([]domain.AuditEntry, error) {
	args := m.Called(ctx, limit, offset)
	var entries []domain.AuditEntry
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.AuditEntry)
	}
	return entries, args.Error(1)
}

// --- Mock NotificationDispatcher ---
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Dispatch(ctx context.Context, n domain.Notification) {
	m.Called(ctx, n)
}

// --- Test Suite ---
type WorkflowServiceTestSuite struct {
	suite.Suite
	mockMaintenance *MockStatusUpdater
	mockTransfer    *MockStatusUpdater
	mockAuction     *MockStatusUpdater
	mockDisposal    *MockStatusUpdater
	mockAssets      *MockAssetRepository
	mockAudit       *MockAuditService
	mockNotifier    *MockNotifier
	executor        portssvc.WorkflowExecutorSvc

	admin      *domain.User
	manager    *domain.User
	auctionMgr *domain.User
	viewer     *domain.User
}

func (suite *WorkflowServiceTestSuite) SetupTest() {
	suite.mockMaintenance = new(MockStatusUpdater)
	suite.mockTransfer = new(MockStatusUpdater)
	suite.mockAuction = new(MockStatusUpdater)
	suite.mockDisposal = new(MockStatusUpdater)
	suite.mockAssets = new(MockAssetRepository)
	suite.mockAudit = new(MockAuditService)
	suite.mockNotifier = new(MockNotifier)

	suite.executor = services.NewWorkflowService(
		map[string]portsrepo.StatusUpdater{
			domain.MaintenanceWorkflow.Entity: suite.mockMaintenance,
			domain.TransferWorkflow.Entity:    suite.mockTransfer,
			domain.AuctionWorkflow.Entity:     suite.mockAuction,
			domain.DisposalWorkflow.Entity:    suite.mockDisposal,
		},
		suite.mockAssets,
		suite.mockAudit,
		suite.mockNotifier,
	)

	suite.admin = &domain.User{UserID: "user-admin", Role: domain.RoleAdmin}
	suite.manager = &domain.User{UserID: "user-manager", Role: domain.RoleManager}
	suite.auctionMgr = &domain.User{UserID: "user-auction-mgr", Role: domain.RoleAuctionManager}
	suite.viewer = &domain.User{UserID: "user-viewer", Role: domain.RoleViewer}
}

func testAuction(status domain.Status) domain.AuctionRecord {
	return domain.AuctionRecord{
		AuctionID:     "auction-1",
		AssetID:       "asset-1",
		AssetName:     "Toyota Hilux",
		AssetLocation: "Gusau Central Market",
		Status:        status,
		AuditFields:   domain.AuditFields{CreatedBy: "user-creator", CreatedAt: time.Now()},
	}
}

func testTransfer(status domain.Status) domain.TransferRecord {
	return domain.TransferRecord{
		TransferID:    "transfer-1",
		AssetID:       "asset-1",
		AssetName:     "Toyota Hilux",
		AssetLocation: "Gusau Central Market",
		FromLocation:  "Gusau Central Market",
		ToLocation:    "Gusau North District Office",
		Status:        status,
		AuditFields:   domain.AuditFields{CreatedBy: "user-creator", CreatedAt: time.Now()},
	}
}

func testDisposal(status domain.Status) domain.DisposalRecord {
	return domain.DisposalRecord{
		DisposalID:    "disposal-1",
		AssetID:       "asset-1",
		AssetName:     "Toyota Hilux",
		AssetLocation: "Gusau Central Market",
		Status:        status,
		AuditFields:   domain.AuditFields{CreatedBy: "user-creator", CreatedAt: time.Now()},
	}
}

func (suite *WorkflowServiceTestSuite) expectAuditAndNotify() {
	suite.mockAudit.On("Record", mock.Anything, mock.AnythingOfType("domain.AuditEntry")).Return()
	suite.mockNotifier.On("Dispatch", mock.Anything, mock.AnythingOfType("domain.Notification")).Return()
}

// --- Happy paths ---

func (suite *WorkflowServiceTestSuite) TestAdminApprovesDraftAuction() {
	ctx := context.Background()
	record := testAuction(domain.StatusDraft)

	suite.mockAuction.On("UpdateStatus", ctx, "auction-1", domain.StatusDraft, domain.StatusPublished, suite.admin.UserID).Return(nil).Once()
	suite.expectAuditAndNotify()

	result, err := suite.executor.Execute(ctx, suite.admin, record, domain.ActionApprove)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusDraft, result.From)
	suite.Equal(domain.StatusPublished, result.To)
	suite.False(result.AssetDeleted)
	suite.False(result.AssetRelocated)
	suite.mockAuction.AssertExpectations(suite.T())
	suite.mockNotifier.AssertCalled(suite.T(), "Dispatch", mock.Anything, mock.MatchedBy(func(n domain.Notification) bool {
		return n.UserID == "user-creator" && n.EntityID == "auction-1"
	}))
}

func (suite *WorkflowServiceTestSuite) TestAuctionManagerOpensBidding() {
	ctx := context.Background()
	record := testAuction(domain.StatusPublished)

	suite.mockAuction.On("UpdateStatus", ctx, "auction-1", domain.StatusPublished, domain.StatusBiddingOpen, suite.auctionMgr.UserID).Return(nil).Once()
	suite.expectAuditAndNotify()

	result, err := suite.executor.Execute(ctx, suite.auctionMgr, record, domain.ActionOpenBidding)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusBiddingOpen, result.To)
	suite.mockAuction.AssertExpectations(suite.T())
}

func (suite *WorkflowServiceTestSuite) TestCompletingAuctionDeletesAsset() {
	ctx := context.Background()
	record := testAuction(domain.StatusBiddingClosed)

	suite.mockAuction.On("UpdateStatus", ctx, "auction-1", domain.StatusBiddingClosed, domain.StatusCompleted, suite.auctionMgr.UserID).Return(nil).Once()
	suite.mockAssets.On("DeleteAsset", ctx, "asset-1").Return(nil).Once()
	suite.expectAuditAndNotify()

	result, err := suite.executor.Execute(ctx, suite.auctionMgr, record, domain.ActionComplete)

	suite.Require().NoError(err)
	suite.True(result.AssetDeleted)
	suite.Equal(domain.StatusCompleted, result.To)
	suite.mockAssets.AssertExpectations(suite.T())
	// One entry for the transition, one for the asset deletion.
	suite.mockAudit.AssertNumberOfCalls(suite.T(), "Record", 2)
}

func (suite *WorkflowServiceTestSuite) TestCompletingTransferRelocatesAsset() {
	ctx := context.Background()
	record := testTransfer(domain.StatusApproved)

	suite.mockTransfer.On("UpdateStatus", ctx, "transfer-1", domain.StatusApproved, domain.StatusCompleted, suite.manager.UserID).Return(nil).Once()
	suite.mockAssets.On("UpdateAssetLocation", ctx, "asset-1", "Gusau North District Office", suite.manager.UserID).Return(nil).Once()
	suite.expectAuditAndNotify()

	result, err := suite.executor.Execute(ctx, suite.manager, record, domain.ActionComplete)

	suite.Require().NoError(err)
	suite.True(result.AssetRelocated)
	suite.Equal("Gusau North District Office", result.NewLocation)
	suite.mockAssets.AssertExpectations(suite.T())
}

// --- Gate ordering ---

func (suite *WorkflowServiceTestSuite) TestLocationGateRunsBeforeTableLookup() {
	ctx := context.Background()
	restricted := &domain.User{
		UserID:      "user-restricted",
		Role:        domain.RoleAuctionManager,
		AssetAccess: []string{"Gusau North District Office"},
	}
	record := testAuction(domain.StatusDraft)

	// The action is also undefined from draft, but the location denial must
	// win so callers outside the location learn nothing about the table.
	_, err := suite.executor.Execute(ctx, restricted, record, domain.ActionCloseBidding)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrLocationDenied)
	suite.mockAuction.AssertNotCalled(suite.T(), "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *WorkflowServiceTestSuite) TestUnknownTransitionRejected() {
	ctx := context.Background()
	record := testAuction(domain.StatusDraft)

	_, err := suite.executor.Execute(ctx, suite.admin, record, domain.ActionComplete)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnknownTransition)

	var te *apperrors.TransitionError
	suite.Require().ErrorAs(err, &te)
	suite.Equal("auction", te.Entity)
	suite.Equal("draft", te.From)
	suite.Equal("complete", te.Action)
}

func (suite *WorkflowServiceTestSuite) TestDraftApprovalIsAdminOnly() {
	ctx := context.Background()
	record := testAuction(domain.StatusDraft)

	// Even the domain manager cannot approve a draft; the transition declares
	// no roles, which means admin only.
	_, err := suite.executor.Execute(ctx, suite.auctionMgr, record, domain.ActionApprove)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbiddenTransition)
	suite.mockAuction.AssertNotCalled(suite.T(), "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *WorkflowServiceTestSuite) TestViewerCannotOpenBidding() {
	ctx := context.Background()
	record := testAuction(domain.StatusPublished)

	_, err := suite.executor.Execute(ctx, suite.viewer, record, domain.ActionOpenBidding)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbiddenTransition)

	var te *apperrors.TransitionError
	suite.Require().ErrorAs(err, &te)
	suite.Equal("auction_manager", te.Required)
}

// --- Concurrency and side-effect failure ---

func (suite *WorkflowServiceTestSuite) TestStaleStatusSurfaces() {
	ctx := context.Background()
	record := testDisposal(domain.StatusInProgress)

	suite.mockDisposal.On("UpdateStatus", ctx, "disposal-1", domain.StatusInProgress, domain.StatusCompleted, suite.admin.UserID).Return(apperrors.ErrStaleStatus).Once()

	_, err := suite.executor.Execute(ctx, suite.admin, record, domain.ActionComplete)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrStaleStatus)
	suite.mockAssets.AssertNotCalled(suite.T(), "DeleteAsset", mock.Anything, mock.Anything)
}

func (suite *WorkflowServiceTestSuite) TestSideEffectFailureRollsBackStatus() {
	ctx := context.Background()
	record := testAuction(domain.StatusBiddingOpen)

	suite.mockAuction.On("UpdateStatus", ctx, "auction-1", domain.StatusBiddingOpen, domain.StatusCompleted, suite.admin.UserID).Return(nil).Once()
	suite.mockAssets.On("DeleteAsset", ctx, "asset-1").Return(assert.AnError).Once()
	// Rollback reverses the compare-and-swap.
	suite.mockAuction.On("UpdateStatus", ctx, "auction-1", domain.StatusCompleted, domain.StatusBiddingOpen, suite.admin.UserID).Return(nil).Once()

	result, err := suite.executor.Execute(ctx, suite.admin, record, domain.ActionComplete)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrSideEffectFailed)
	suite.mockAuction.AssertExpectations(suite.T())
	suite.mockAudit.AssertNotCalled(suite.T(), "Record", mock.Anything, mock.Anything)
}

// --- Reopen semantics ---

func (suite *WorkflowServiceTestSuite) TestReopenCompletedAuctionFailsWhenAssetGone() {
	ctx := context.Background()
	record := testAuction(domain.StatusCompleted)

	suite.mockAssets.On("FindAssetByID", ctx, "asset-1").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.executor.Execute(ctx, suite.auctionMgr, record, domain.ActionReopen)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrAssetAlreadyDeleted)
	suite.mockAuction.AssertNotCalled(suite.T(), "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *WorkflowServiceTestSuite) TestReopenCompletedTransferSucceedsWhileAssetExists() {
	ctx := context.Background()
	record := testTransfer(domain.StatusCompleted)
	asset := &domain.Asset{AssetID: "asset-1", Location: "Gusau North District Office"}

	suite.mockAssets.On("FindAssetByID", ctx, "asset-1").Return(asset, nil).Once()
	suite.mockTransfer.On("UpdateStatus", ctx, "transfer-1", domain.StatusCompleted, domain.StatusApproved, suite.manager.UserID).Return(nil).Once()
	suite.expectAuditAndNotify()

	result, err := suite.executor.Execute(ctx, suite.manager, record, domain.ActionReopen)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusApproved, result.To)
	suite.mockTransfer.AssertExpectations(suite.T())
}

// --- Notifications ---

func (suite *WorkflowServiceTestSuite) TestNoSelfNotification() {
	ctx := context.Background()
	record := testAuction(domain.StatusDraft)
	record.CreatedBy = suite.admin.UserID

	suite.mockAuction.On("UpdateStatus", ctx, "auction-1", domain.StatusDraft, domain.StatusPublished, suite.admin.UserID).Return(nil).Once()
	suite.mockAudit.On("Record", mock.Anything, mock.AnythingOfType("domain.AuditEntry")).Return()

	_, err := suite.executor.Execute(ctx, suite.admin, record, domain.ActionApprove)

	suite.Require().NoError(err)
	suite.mockNotifier.AssertNotCalled(suite.T(), "Dispatch", mock.Anything, mock.Anything)
}

func TestWorkflowServiceTestSuite(t *testing.T) {
	suite.Run(t, new(WorkflowServiceTestSuite))
}
