package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	"github.com/gusau-lga/asset_management_app/internal/apperrors"
	"github.com/gusau-lga/asset_management_app/internal/core/domain"
	portssvc "github.com/gusau-lga/asset_management_app/internal/core/ports/services"
	"github.com/gusau-lga/asset_management_app/internal/core/services"
	"github.com/gusau-lga/asset_management_app/internal/dto"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time, deletedBy string) error {
	args := m.Called(ctx, userID, deletedAt, deletedBy)
	return args.Error(0)
}

// --- Test Suite ---
type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockUserRepo)
}

func (suite *UserServiceTestSuite) TestCreateUser_Success() {
	ctx := context.Background()
	req := dto.CreateUserRequest{
		Username:    "aminu.bello",
		Password:    "password123",
		FirstName:   "Aminu",
		LastName:    "Bello",
		Email:       "aminu@gusau.gov.ng",
		Role:        "maintenance_manager",
		Permissions: []string{"maintenance", ""},
		AssetAccess: []string{"Gusau North District Office", ""},
	}

	suite.mockUserRepo.On("FindUserByUsername", ctx, "aminu.bello").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		return user.Username == "aminu.bello" &&
			user.Role == domain.RoleMaintenanceManager &&
			user.PasswordHash != "password123" &&
			bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("password123")) == nil
	})).Return(nil).Once()

	created, err := suite.service.CreateUser(ctx, req, "user-admin")

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.NotEmpty(created.UserID)
	suite.Equal(domain.UserActive, created.Status)
	// Empty entries are dropped from both lists.
	suite.Equal([]domain.Permission{domain.PermMaintenance}, created.Permissions)
	suite.Equal([]string{"Gusau North District Office"}, created.AssetAccess)
	suite.Equal("user-admin", created.CreatedBy)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateUser_UnknownRole() {
	ctx := context.Background()
	req := dto.CreateUserRequest{
		Username:  "someone",
		Password:  "password123",
		FirstName: "Some",
		LastName:  "One",
		Email:     "someone@gusau.gov.ng",
		Role:      "superuser",
	}

	created, err := suite.service.CreateUser(ctx, req, "user-admin")

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestCreateUser_DuplicateUsername() {
	ctx := context.Background()
	req := dto.CreateUserRequest{
		Username:  "aminu.bello",
		Password:  "password123",
		FirstName: "Aminu",
		LastName:  "Bello",
		Email:     "aminu@gusau.gov.ng",
		Role:      "user",
	}

	existing := &domain.User{UserID: "user-existing", Username: "aminu.bello"}
	suite.mockUserRepo.On("FindUserByUsername", ctx, "aminu.bello").Return(existing, nil).Once()

	created, err := suite.service.CreateUser(ctx, req, "user-admin")

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestUpdateUser_ReplacesAccessList() {
	ctx := context.Background()
	existing := &domain.User{
		UserID:      "user-1",
		Username:    "aminu.bello",
		Role:        domain.RoleUser,
		Status:      domain.UserActive,
		AssetAccess: []string{"Gusau Central Market"},
	}
	newAccess := []string{"Gusau North District Office"}

	suite.mockUserRepo.On("FindUserByID", ctx, "user-1").Return(existing, nil).Once()
	suite.mockUserRepo.On("UpdateUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		return len(user.AssetAccess) == 1 &&
			user.AssetAccess[0] == "Gusau North District Office" &&
			user.LastUpdatedBy == "user-admin"
	})).Return(nil).Once()

	updated, err := suite.service.UpdateUser(ctx, "user-1", dto.UpdateUserRequest{AssetAccess: &newAccess}, "user-admin")

	suite.Require().NoError(err)
	suite.Equal(newAccess, updated.AssetAccess)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestUpdateUser_UnknownStatus() {
	ctx := context.Background()
	existing := &domain.User{UserID: "user-1", Status: domain.UserActive}
	bad := "frozen"

	suite.mockUserRepo.On("FindUserByID", ctx, "user-1").Return(existing, nil).Once()

	updated, err := suite.service.UpdateUser(ctx, "user-1", dto.UpdateUserRequest{Status: &bad}, "user-admin")

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "UpdateUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestDeleteUser() {
	ctx := context.Background()

	suite.mockUserRepo.On("MarkUserDeleted", ctx, "user-1", mock.AnythingOfType("time.Time"), "user-admin").Return(nil).Once()

	err := suite.service.DeleteUser(ctx, "user-1", "user-admin")

	suite.Require().NoError(err)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
