package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/gusau-lga/asset_management_app/internal/apperrors"
	"github.com/gusau-lga/asset_management_app/internal/core/domain"
	portssvc "github.com/gusau-lga/asset_management_app/internal/core/ports/services"
	"github.com/gusau-lga/asset_management_app/internal/core/services"
	"github.com/gusau-lga/asset_management_app/internal/dto"
)

// --- Mock LocationRepository ---
type MockLocationRepository struct {
	mock.Mock
}

func (m *MockLocationRepository) FindLocationByID(ctx context.Context, locationID string) (*domain.Location, error) {
	args := m.Called(ctx, locationID)
	var loc *domain.Location
	if args.Get(0) != nil {
		loc = args.Get(0).(*domain.Location)
	}
	return loc, args.Error(1)
}

func (m *MockLocationRepository) FindLocationByName(ctx context.Context, name string) (*domain.Location, error) {
	args := m.Called(ctx, name)
	var loc *domain.Location
	if args.Get(0) != nil {
		loc = args.Get(0).(*domain.Location)
	}
	return loc, args.Error(1)
}

func (m *MockLocationRepository) ListLocations(ctx context.Context) ([]domain.Location, error) {
	args := m.Called(ctx)
	var locations []domain.Location
	if args.Get(0) != nil {
		locations = args.Get(0).([]domain.Location)
	}
	return locations, args.Error(1)
}

func (m *MockLocationRepository) SaveLocation(ctx context.Context, location domain.Location) error {
	args := m.Called(ctx, location)
	return args.Error(0)
}

func (m *MockLocationRepository) UpdateLocation(ctx context.Context, location domain.Location) error {
	args := m.Called(ctx, location)
	return args.Error(0)
}

// --- Test Suite ---
type AssetServiceTestSuite struct {
	suite.Suite
	mockAssets    *MockAssetRepository
	mockLocations *MockLocationRepository
	service       portssvc.AssetSvcFacade

	admin      *domain.User
	restricted *domain.User
}

func (suite *AssetServiceTestSuite) SetupTest() {
	suite.mockAssets = new(MockAssetRepository)
	suite.mockLocations = new(MockLocationRepository)
	suite.service = services.NewAssetService(suite.mockAssets, suite.mockLocations)

	suite.admin = &domain.User{UserID: "user-admin", Role: domain.RoleAdmin}
	suite.restricted = &domain.User{
		UserID:      "user-restricted",
		Role:        domain.RoleAssetManager,
		AssetAccess: []string{"Gusau North District Office"},
	}
}

func (suite *AssetServiceTestSuite) TestGetAssetByID_DeniedOutsideAssignedLocations() {
	ctx := context.Background()
	asset := &domain.Asset{AssetID: "asset-1", Location: "Gusau Central Market"}

	suite.mockAssets.On("FindAssetByID", ctx, "asset-1").Return(asset, nil).Once()

	got, err := suite.service.GetAssetByID(ctx, suite.restricted, "asset-1")

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrLocationDenied)
}

func (suite *AssetServiceTestSuite) TestListAssets_FiltersByLocation() {
	ctx := context.Background()
	assets := []domain.Asset{
		{AssetID: "asset-1", Location: "Gusau North District Office"},
		{AssetID: "asset-2", Location: "Gusau Central Market"},
		{AssetID: "asset-3", Location: "Gusau North District Office"},
	}

	suite.mockAssets.On("FindAssets", ctx, 50, 0).Return(assets, nil).Once()

	visible, err := suite.service.ListAssets(ctx, suite.restricted, 50, 0)

	suite.Require().NoError(err)
	suite.Len(visible, 2)
	suite.Equal("asset-1", visible[0].AssetID)
	suite.Equal("asset-3", visible[1].AssetID)
}

func (suite *AssetServiceTestSuite) TestListAssets_AdminSeesEverything() {
	ctx := context.Background()
	assets := []domain.Asset{
		{AssetID: "asset-1", Location: "Gusau North District Office"},
		{AssetID: "asset-2", Location: "Gusau Central Market"},
	}

	suite.mockAssets.On("FindAssets", ctx, 50, 0).Return(assets, nil).Once()

	visible, err := suite.service.ListAssets(ctx, suite.admin, 50, 0)

	suite.Require().NoError(err)
	suite.Len(visible, 2)
}

func (suite *AssetServiceTestSuite) TestCreateAsset_RejectsUncatalogedLocation() {
	ctx := context.Background()
	req := dto.CreateAssetRequest{
		Name:     "Generator",
		Category: "equipment",
		Location: "Somewhere Unregistered",
	}

	suite.mockLocations.On("FindLocationByName", ctx, "Somewhere Unregistered").Return(nil, apperrors.ErrNotFound).Once()

	created, err := suite.service.CreateAsset(ctx, suite.admin, req)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockAssets.AssertNotCalled(suite.T(), "SaveAsset", mock.Anything, mock.Anything)
}

func (suite *AssetServiceTestSuite) TestCreateAsset_DeniedOutsideAssignedLocations() {
	ctx := context.Background()
	req := dto.CreateAssetRequest{
		Name:     "Generator",
		Category: "equipment",
		Location: "Gusau Central Market",
	}

	created, err := suite.service.CreateAsset(ctx, suite.restricted, req)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrLocationDenied)
	suite.mockLocations.AssertNotCalled(suite.T(), "FindLocationByName", mock.Anything, mock.Anything)
}

func (suite *AssetServiceTestSuite) TestCreateAsset_Success() {
	ctx := context.Background()
	req := dto.CreateAssetRequest{
		Name:     "Generator",
		Category: "equipment",
		Location: "Gusau North District Office",
	}
	loc := &domain.Location{LocationID: "loc-1", Name: "Gusau North District Office", IsActive: true}

	suite.mockLocations.On("FindLocationByName", ctx, "Gusau North District Office").Return(loc, nil).Once()
	suite.mockAssets.On("SaveAsset", ctx, mock.MatchedBy(func(a domain.Asset) bool {
		return a.Name == "Generator" &&
			a.Location == "Gusau North District Office" &&
			a.Status == domain.AssetActive &&
			a.CreatedBy == suite.restricted.UserID
	})).Return(nil).Once()

	created, err := suite.service.CreateAsset(ctx, suite.restricted, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.NotEmpty(created.AssetID)
	suite.mockAssets.AssertExpectations(suite.T())
}

func (suite *AssetServiceTestSuite) TestUpdateAsset_CannotChangeLocation() {
	// UpdateAssetRequest carries no location field; this test pins the
	// invariant that an update leaves the stored location untouched.
	ctx := context.Background()
	asset := &domain.Asset{AssetID: "asset-1", Location: "Gusau North District Office", Status: domain.AssetActive}
	newName := "Generator (serviced)"

	suite.mockAssets.On("FindAssetByID", ctx, "asset-1").Return(asset, nil).Once()
	suite.mockAssets.On("UpdateAsset", ctx, mock.MatchedBy(func(a domain.Asset) bool {
		return a.Name == newName && a.Location == "Gusau North District Office"
	})).Return(nil).Once()

	updated, err := suite.service.UpdateAsset(ctx, suite.restricted, "asset-1", dto.UpdateAssetRequest{Name: &newName})

	suite.Require().NoError(err)
	suite.Equal("Gusau North District Office", updated.Location)
	suite.mockAssets.AssertExpectations(suite.T())
}

func TestAssetServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AssetServiceTestSuite))
}
