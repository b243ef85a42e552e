package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/mohanapra/personal-diary-web-app/internal/apperrors"
	"github.com/mohanapra/personal-diary-web-app/internal/core/domain"
	portssvc "github.com/mohanapra/personal-diary-web-app/internal/core/ports/services"
	"github.com/mohanapra/personal-diary-web-app/internal/core/services"
	"github.com/mohanapra/personal-diary-web-app/internal/dto"
	"github.com/mohanapra/personal-diary-web-app/internal/utils"
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

func (m *MockUserRepository) FindUserByProviderDetails(ctx context.Context, authProvider domain.AuthProvider, providerUserID string) (*domain.User, error) {
	args := m.Called(ctx, authProvider, providerUserID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error {
	args := m.Called(ctx, userID, refreshTokenHash, refreshTokenExpiryTime)
	return args.Error(0)
}

func (m *MockUserRepository) ClearRefreshToken(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
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

// --- CreateUser Tests ---

func (suite *UserServiceTestSuite) TestCreateUser_Success() {
	ctx := context.Background()
	req := dto.CreateUserRequest{
		Username: "diarist",
		Password: "password123",
		Name:     "Daily Diarist",
	}

	suite.mockUserRepo.On("FindUserByUsername", ctx, "diarist").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		return user.Username == "diarist" && user.PasswordHash != nil && *user.PasswordHash != "password123"
	})).Return(nil).Once()

	created, err := suite.service.CreateUser(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.NotEmpty(created.UserID)
	suite.Equal("diarist", created.Username)
	suite.Equal(domain.ProviderLocal, created.AuthProvider)
	suite.Require().NotNil(created.PasswordHash)
	suite.True(utils.CheckPasswordHash("password123", *created.PasswordHash))
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateUser_DuplicateUsername() {
	ctx := context.Background()
	req := dto.CreateUserRequest{
		Username: "taken",
		Password: "password123",
		Name:     "Second Comer",
	}
	existing := &domain.User{UserID: uuid.NewString(), Username: "taken"}

	suite.mockUserRepo.On("FindUserByUsername", ctx, "taken").Return(existing, nil).Once()

	created, err := suite.service.CreateUser(ctx, req)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser")
}

func (suite *UserServiceTestSuite) TestCreateUser_SaveError() {
	ctx := context.Background()
	req := dto.CreateUserRequest{
		Username: "unlucky",
		Password: "password123",
		Name:     "Unlucky User",
	}

	suite.mockUserRepo.On("FindUserByUsername", ctx, "unlucky").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).Return(assert.AnError).Once()

	created, err := suite.service.CreateUser(ctx, req)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, assert.AnError)
}

// --- FindOrCreateOAuthUser Tests ---

func (suite *UserServiceTestSuite) TestFindOrCreateOAuthUser_ExistingUser() {
	ctx := context.Background()
	info := &domain.GoogleUserInfo{ID: "google-sub-1", Email: "a@example.com", Name: "A"}
	existing := &domain.User{UserID: uuid.NewString(), AuthProvider: domain.ProviderGoogle}

	suite.mockUserRepo.On("FindUserByProviderDetails", ctx, domain.ProviderGoogle, "google-sub-1").Return(existing, nil).Once()

	user, err := suite.service.FindOrCreateOAuthUser(ctx, domain.ProviderGoogle, info)

	suite.Require().NoError(err)
	suite.Equal(existing, user)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser")
}

func (suite *UserServiceTestSuite) TestFindOrCreateOAuthUser_FirstSignIn() {
	ctx := context.Background()
	info := &domain.GoogleUserInfo{ID: "google-sub-2", Email: "new@example.com", Name: "New User"}

	suite.mockUserRepo.On("FindUserByProviderDetails", ctx, domain.ProviderGoogle, "google-sub-2").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		return user.AuthProvider == domain.ProviderGoogle && user.ProviderUserID != nil && *user.ProviderUserID == "google-sub-2"
	})).Return(nil).Once()

	user, err := suite.service.FindOrCreateOAuthUser(ctx, domain.ProviderGoogle, info)

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.Equal("new@example.com", user.Username)
	suite.Nil(user.PasswordHash)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

// --- UpdateUser / DeleteUser Tests ---

func (suite *UserServiceTestSuite) TestUpdateUser_OtherUserForbidden() {
	ctx := context.Background()
	name := "Impostor"

	user, err := suite.service.UpdateUser(ctx, uuid.NewString(), dto.UpdateUserRequest{Name: &name}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "FindUserByID")
}

func (suite *UserServiceTestSuite) TestDeleteUser_SelfOnly() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockUserRepo.On("MarkUserDeleted", ctx, userID, mock.AnythingOfType("time.Time"), userID).Return(nil).Once()

	err := suite.service.DeleteUser(ctx, userID, userID)

	suite.Require().NoError(err)
	suite.mockUserRepo.AssertExpectations(suite.T())

	err = suite.service.DeleteUser(ctx, userID, uuid.NewString())
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

// --- AuthenticateUser Tests ---

func (suite *UserServiceTestSuite) TestAuthenticateUser_Success() {
	ctx := context.Background()
	hash, err := utils.HashPassword("correct-horse")
	suite.Require().NoError(err)
	stored := &domain.User{UserID: uuid.NewString(), Username: "writer", PasswordHash: &hash}

	suite.mockUserRepo.On("FindUserByUsername", ctx, "writer").Return(stored, nil).Once()

	user, err := suite.service.AuthenticateUser(ctx, "writer", "correct-horse")

	suite.Require().NoError(err)
	suite.Equal(stored.UserID, user.UserID)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("correct-horse")
	suite.Require().NoError(err)
	stored := &domain.User{UserID: uuid.NewString(), Username: "writer", PasswordHash: &hash}

	suite.mockUserRepo.On("FindUserByUsername", ctx, "writer").Return(stored, nil).Once()

	user, err := suite.service.AuthenticateUser(ctx, "writer", "wrong")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_UnknownUser() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByUsername", ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	user, err := suite.service.AuthenticateUser(ctx, "ghost", "whatever")

	suite.Require().Error(err)
	suite.Nil(user)
	// Unknown user and wrong password report the same failure.
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_OAuthOnlyAccount() {
	ctx := context.Background()
	stored := &domain.User{UserID: uuid.NewString(), Username: "oauthonly", PasswordHash: nil}

	suite.mockUserRepo.On("FindUserByUsername", ctx, "oauthonly").Return(stored, nil).Once()

	user, err := suite.service.AuthenticateUser(ctx, "oauthonly", "anything")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
