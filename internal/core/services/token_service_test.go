package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/mohanapra/personal-diary-web-app/internal/apperrors"
	"github.com/mohanapra/personal-diary-web-app/internal/core/domain"
	portssvc "github.com/mohanapra/personal-diary-web-app/internal/core/ports/services"
	"github.com/mohanapra/personal-diary-web-app/internal/core/services"
	"github.com/mohanapra/personal-diary-web-app/internal/dto"
	"github.com/mohanapra/personal-diary-web-app/internal/platform/config"
	"github.com/mohanapra/personal-diary-web-app/internal/utils"
)

// --- Mock UserService (only GetUserByID matters to the token service) ---
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

func (m *MockUserService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) FindOrCreateOAuthUser(ctx context.Context, provider domain.AuthProvider, info *domain.GoogleUserInfo) (*domain.User, error) {
	args := m.Called(ctx, provider, info)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, requestingUserID string) (*domain.User, error) {
	args := m.Called(ctx, userID, req, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error {
	args := m.Called(ctx, userID, refreshTokenHash, refreshTokenExpiryTime)
	return args.Error(0)
}

func (m *MockUserService) ClearRefreshToken(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockUserService) DeleteUser(ctx context.Context, userID string, requestingUserID string) error {
	args := m.Called(ctx, userID, requestingUserID)
	return args.Error(0)
}

func (m *MockUserService) AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

// --- Test Suite ---
type TokenServiceTestSuite struct {
	suite.Suite
	mockUserService *MockUserService
	service         portssvc.TokenSvcFacade
	cfg             *config.Config
}

func (suite *TokenServiceTestSuite) SetupTest() {
	suite.mockUserService = new(MockUserService)
	suite.cfg = &config.Config{
		JWTSecret:                  "test-secret-key-that-is-long-enough",
		JWTExpiryDuration:          time.Hour,
		JWTIssuer:                  "diary-test",
		RefreshTokenExpiryDuration: 7 * 24 * time.Hour,
	}
	suite.service = services.NewTokenService(suite.cfg, suite.mockUserService)
}

func (suite *TokenServiceTestSuite) TestGenerateAccessToken_RoundTrips() {
	ctx := context.Background()
	user := &domain.User{UserID: uuid.NewString()}

	token, expiresAt, err := suite.service.GenerateAccessToken(ctx, user)

	suite.Require().NoError(err)
	suite.NotEmpty(token)
	suite.WithinDuration(time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := utils.ParseAndValidateJWT(token, suite.cfg.JWTSecret)
	suite.Require().NoError(err)
	suite.Equal(user.UserID, claims.Subject)
	suite.Equal("diary-test", claims.Issuer)
}

func (suite *TokenServiceTestSuite) TestValidateRefreshToken_Success() {
	ctx := context.Background()
	raw, _, err := suite.service.GenerateRefreshToken(ctx, &domain.User{UserID: uuid.NewString()})
	suite.Require().NoError(err)

	expiry := time.Now().Add(time.Hour)
	stored := &domain.User{
		UserID:                 uuid.NewString(),
		RefreshTokenHash:       utils.HashRefreshToken(raw),
		RefreshTokenExpiryTime: &expiry,
	}

	suite.mockUserService.On("GetUserByID", ctx, stored.UserID).Return(stored, nil).Once()

	user, err := suite.service.ValidateRefreshToken(ctx, stored.UserID, raw)

	suite.Require().NoError(err)
	suite.Equal(stored.UserID, user.UserID)
}

func (suite *TokenServiceTestSuite) TestValidateRefreshToken_Expired() {
	ctx := context.Background()
	raw, _, err := suite.service.GenerateRefreshToken(ctx, &domain.User{UserID: uuid.NewString()})
	suite.Require().NoError(err)

	expiry := time.Now().Add(-time.Minute)
	stored := &domain.User{
		UserID:                 uuid.NewString(),
		RefreshTokenHash:       utils.HashRefreshToken(raw),
		RefreshTokenExpiryTime: &expiry,
	}

	suite.mockUserService.On("GetUserByID", ctx, stored.UserID).Return(stored, nil).Once()

	user, err := suite.service.ValidateRefreshToken(ctx, stored.UserID, raw)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrRefreshTokenExpired)
}

func (suite *TokenServiceTestSuite) TestValidateRefreshToken_HashMismatch() {
	ctx := context.Background()
	expiry := time.Now().Add(time.Hour)
	stored := &domain.User{
		UserID:                 uuid.NewString(),
		RefreshTokenHash:       utils.HashRefreshToken("some-other-token"),
		RefreshTokenExpiryTime: &expiry,
	}

	suite.mockUserService.On("GetUserByID", ctx, stored.UserID).Return(stored, nil).Once()

	user, err := suite.service.ValidateRefreshToken(ctx, stored.UserID, "presented-token")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *TokenServiceTestSuite) TestValidateRefreshToken_NoStoredToken() {
	ctx := context.Background()
	stored := &domain.User{UserID: uuid.NewString()}

	suite.mockUserService.On("GetUserByID", ctx, stored.UserID).Return(stored, nil).Once()

	user, err := suite.service.ValidateRefreshToken(ctx, stored.UserID, "anything")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *TokenServiceTestSuite) TestValidateRefreshToken_UnknownUser() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockUserService.On("GetUserByID", ctx, userID).Return(nil, apperrors.ErrNotFound).Once()

	user, err := suite.service.ValidateRefreshToken(ctx, userID, "anything")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func TestTokenServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TokenServiceTestSuite))
}
