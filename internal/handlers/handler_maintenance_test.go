package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/gusau-lga/asset_management_app/internal/apperrors"
	"github.com/gusau-lga/asset_management_app/internal/core/domain"
	portssvc "github.com/gusau-lga/asset_management_app/internal/core/ports/services"
	"github.com/gusau-lga/asset_management_app/internal/dto"
	"github.com/gusau-lga/asset_management_app/internal/handlers"
	"github.com/gusau-lga/asset_management_app/internal/platform/config"
)

// --- Mock UserService (backs CurrentUserMiddleware) ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *MockUserService) CreateUser(ctx context.Context, req dto.CreateUserRequest, creatorUserID string) (*domain.User, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, updaterUserID string) (*domain.User, error) {
	args := m.Called(ctx, userID, req, updaterUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) DeleteUser(ctx context.Context, userID string, deleterUserID string) error {
	args := m.Called(ctx, userID, deleterUserID)
	return args.Error(0)
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

// --- Mock MaintenanceService ---
type MockMaintenanceService struct {
	mock.Mock
}

func (m *MockMaintenanceService) GetMaintenanceByID(ctx context.Context, actor *domain.User, maintenanceID string) (*domain.MaintenanceRecord, error) {
	args := m.Called(ctx, actor, maintenanceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MaintenanceRecord), args.Error(1)
}
func (m *MockMaintenanceService) ListMaintenance(ctx context.Context, actor *domain.User, limit, offset int) ([]domain.MaintenanceRecord, error) {
	args := m.Called(ctx, actor, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MaintenanceRecord), args.Error(1)
}
func (m *MockMaintenanceService) CreateMaintenance(ctx context.Context, actor *domain.User, req dto.CreateMaintenanceRequest) (*domain.MaintenanceRecord, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MaintenanceRecord), args.Error(1)
}
func (m *MockMaintenanceService) UpdateMaintenance(ctx context.Context, actor *domain.User, maintenanceID string, req dto.UpdateMaintenanceRequest) (*domain.MaintenanceRecord, error) {
	args := m.Called(ctx, actor, maintenanceID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MaintenanceRecord), args.Error(1)
}
func (m *MockMaintenanceService) ChangeStatus(ctx context.Context, actor *domain.User, maintenanceID string, action domain.Action) (*domain.TransitionResult, error) {
	args := m.Called(ctx, actor, maintenanceID, action)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransitionResult), args.Error(1)
}

var _ portssvc.MaintenanceSvcFacade = (*MockMaintenanceService)(nil)

// --- Test Suite ---
type MaintenanceHandlerTestSuite struct {
	suite.Suite
	router                 *gin.Engine
	mockUserService        *MockUserService
	mockMaintenanceService *MockMaintenanceService
	jwtSecret              string
	actor                  *domain.User
}

func (suite *MaintenanceHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "ama-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *MaintenanceHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.mockUserService = new(MockUserService)
	suite.mockMaintenanceService = new(MockMaintenanceService)

	// Maintenance transitions are admin-only, so the suite's actor is an
	// admin; role gating itself is covered by the workflow service tests.
	suite.actor = &domain.User{
		UserID:   uuid.NewString(),
		Username: "admin",
		Role:     domain.RoleAdmin,
		Status:   domain.UserActive,
	}
	suite.mockUserService.On("GetUserByID", mock.Anything, suite.actor.UserID).
		Return(suite.actor, nil).Maybe()

	cfg := &config.Config{
		JWTSecret:      suite.jwtSecret,
		LoginRateLimit: "5-M",
	}
	services := &portssvc.ServiceContainer{
		User:        suite.mockUserService,
		Maintenance: suite.mockMaintenanceService,
	}
	handlers.RegisterRoutes(suite.router, cfg, services)
}

func (suite *MaintenanceHandlerTestSuite) changeStatus(maintenanceID string, body any) *httptest.ResponseRecorder {
	payload, err := json.Marshal(body)
	suite.Require().NoError(err)

	req, _ := http.NewRequest(http.MethodPut, "/api/v1/maintenance/"+maintenanceID+"/status", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(suite.actor.UserID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *MaintenanceHandlerTestSuite) TestChangeStatus_Success() {
	maintenanceID := uuid.NewString()
	result := &domain.TransitionResult{
		Entity:   "maintenance",
		RecordID: maintenanceID,
		Action:   domain.ActionStart,
		From:     domain.StatusScheduled,
		To:       domain.StatusInProgress,
	}
	suite.mockMaintenanceService.On("ChangeStatus",
		mock.Anything, suite.actor, maintenanceID, domain.ActionStart,
	).Return(result, nil).Once()

	w := suite.changeStatus(maintenanceID, dto.ChangeStatusRequest{Action: "start"})

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.TransitionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("maintenance", resp.Entity)
	suite.Equal("scheduled", resp.From)
	suite.Equal("in_progress", resp.To)
	suite.False(resp.AssetDeleted)
	suite.mockMaintenanceService.AssertExpectations(suite.T())
}

func (suite *MaintenanceHandlerTestSuite) TestChangeStatus_MissingActionRejected() {
	w := suite.changeStatus(uuid.NewString(), gin.H{})
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockMaintenanceService.AssertNotCalled(suite.T(), "ChangeStatus")
}

func (suite *MaintenanceHandlerTestSuite) TestChangeStatus_ForbiddenTransitionMaps403() {
	maintenanceID := uuid.NewString()
	te := &apperrors.TransitionError{
		Entity:   "maintenance",
		RecordID: maintenanceID,
		From:     "scheduled",
		Action:   "approve",
		Required: "admin",
		Err:      apperrors.ErrForbiddenTransition,
	}
	suite.mockMaintenanceService.On("ChangeStatus",
		mock.Anything, suite.actor, maintenanceID, domain.ActionApprove,
	).Return(nil, te).Once()

	w := suite.changeStatus(maintenanceID, dto.ChangeStatusRequest{Action: "approve"})

	suite.Equal(http.StatusForbidden, w.Code)
	suite.Contains(w.Body.String(), "requires admin")
}

func (suite *MaintenanceHandlerTestSuite) TestChangeStatus_UnknownTransitionMaps422() {
	maintenanceID := uuid.NewString()
	te := &apperrors.TransitionError{
		Entity:   "maintenance",
		RecordID: maintenanceID,
		From:     "completed",
		Action:   "start",
		Err:      apperrors.ErrUnknownTransition,
	}
	suite.mockMaintenanceService.On("ChangeStatus",
		mock.Anything, suite.actor, maintenanceID, domain.ActionStart,
	).Return(nil, te).Once()

	w := suite.changeStatus(maintenanceID, dto.ChangeStatusRequest{Action: "start"})

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
}

func (suite *MaintenanceHandlerTestSuite) TestChangeStatus_StaleStatusMaps409() {
	maintenanceID := uuid.NewString()
	suite.mockMaintenanceService.On("ChangeStatus",
		mock.Anything, suite.actor, maintenanceID, domain.ActionComplete,
	).Return(nil, apperrors.ErrStaleStatus).Once()

	w := suite.changeStatus(maintenanceID, dto.ChangeStatusRequest{Action: "complete"})

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *MaintenanceHandlerTestSuite) TestChangeStatus_LocationDeniedMaps403() {
	maintenanceID := uuid.NewString()
	suite.mockMaintenanceService.On("ChangeStatus",
		mock.Anything, suite.actor, maintenanceID, domain.ActionStart,
	).Return(nil, apperrors.ErrLocationDenied).Once()

	w := suite.changeStatus(maintenanceID, dto.ChangeStatusRequest{Action: "start"})

	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *MaintenanceHandlerTestSuite) TestChangeStatus_NotFoundMaps404() {
	maintenanceID := uuid.NewString()
	suite.mockMaintenanceService.On("ChangeStatus",
		mock.Anything, suite.actor, maintenanceID, domain.ActionStart,
	).Return(nil, apperrors.ErrNotFound).Once()

	w := suite.changeStatus(maintenanceID, dto.ChangeStatusRequest{Action: "start"})

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *MaintenanceHandlerTestSuite) TestChangeStatus_NoTokenRejected() {
	req, _ := http.NewRequest(http.MethodPut, "/api/v1/maintenance/"+uuid.NewString()+"/status", bytes.NewBufferString(`{"action":"start"}`))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockMaintenanceService.AssertNotCalled(suite.T(), "ChangeStatus")
}

func (suite *MaintenanceHandlerTestSuite) TestGetMaintenance_ReturnsAvailableActions() {
	maintenanceID := uuid.NewString()
	record := &domain.MaintenanceRecord{
		MaintenanceID: maintenanceID,
		AssetID:       uuid.NewString(),
		AssetName:     "Toyota Hilux",
		AssetLocation: "Gusau Central Market",
		Type:          domain.MaintenancePreventive,
		Priority:      domain.PriorityMedium,
		Status:        domain.StatusScheduled,
	}
	suite.mockMaintenanceService.On("GetMaintenanceByID",
		mock.Anything, suite.actor, maintenanceID,
	).Return(record, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/maintenance/"+maintenanceID, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(suite.actor.UserID))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.MaintenanceResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("scheduled", resp.Status)
	suite.NotEmpty(resp.AvailableActions)
}

func TestMaintenanceHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(MaintenanceHandlerTestSuite))
}
