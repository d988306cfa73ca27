package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/core/services"
	"github.com/SscSPs/finance_tracker/internal/dto"
	"github.com/SscSPs/finance_tracker/internal/utils"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUserRepository
	service  portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockRepo)
}

func (suite *UserServiceTestSuite) TestCreateUser_Success() {
	ctx := context.Background()
	req := dto.CreateUserRequest{Username: " alice ", Password: "s3cret-pass", Name: "Alice"}

	suite.mockRepo.On("FindUserByUsername", ctx, "alice").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Username == "alice" &&
			u.Name == "Alice" &&
			u.AuthProvider == domain.ProviderLocal &&
			u.UserID != "" &&
			u.CreatedBy == u.UserID &&
			utils.CheckPasswordHash("s3cret-pass", u.PasswordHash)
	})).Return(nil).Once()

	user, err := suite.service.CreateUser(ctx, req)

	suite.Require().NoError(err)
	suite.Equal("alice", user.Username)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateUser_Duplicate() {
	ctx := context.Background()
	suite.mockRepo.On("FindUserByUsername", ctx, "alice").Return(&domain.User{UserID: "u1", Username: "alice"}, nil).Once()

	user, err := suite.service.CreateUser(ctx, dto.CreateUserRequest{Username: "alice", Password: "s3cret-pass"})

	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser() {
	ctx := context.Background()
	hash, err := utils.HashPassword("right-password")
	suite.Require().NoError(err)
	stored := &domain.User{UserID: "u1", Username: "bob", PasswordHash: hash}
	suite.mockRepo.On("FindUserByUsername", ctx, "bob").Return(stored, nil)
	suite.mockRepo.On("FindUserByUsername", ctx, "nobody").Return(nil, apperrors.ErrNotFound)

	user, err := suite.service.AuthenticateUser(ctx, "bob", "right-password")
	suite.Require().NoError(err)
	suite.Equal("u1", user.UserID)

	_, err = suite.service.AuthenticateUser(ctx, "bob", "wrong-password")
	suite.ErrorIs(err, apperrors.ErrUnauthorized)

	_, err = suite.service.AuthenticateUser(ctx, "nobody", "whatever")
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestGetUserByID_NotFound() {
	ctx := context.Background()
	suite.mockRepo.On("FindUserByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetUserByID(ctx, "missing")

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *UserServiceTestSuite) TestFindOrCreateOAuthUser_Existing() {
	ctx := context.Background()
	existing := &domain.User{UserID: "u9", AuthProvider: domain.ProviderGoogle}
	suite.mockRepo.On("FindUserByProvider", ctx, domain.ProviderGoogle, "sub-1").Return(existing, nil).Once()

	user, err := suite.service.FindOrCreateOAuthUser(ctx, domain.ProviderGoogle, domain.GoogleUserInfo{Subject: "sub-1"})

	suite.Require().NoError(err)
	suite.Equal("u9", user.UserID)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestFindOrCreateOAuthUser_Creates() {
	ctx := context.Background()
	info := domain.GoogleUserInfo{Subject: "sub-2", Email: "carol@example.com", Name: "Carol"}
	suite.mockRepo.On("FindUserByProvider", ctx, domain.ProviderGoogle, "sub-2").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("FindUserByUsername", ctx, "carol@example.com").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Username == "carol@example.com" &&
			u.Email == "carol@example.com" &&
			u.ProviderUserID == "sub-2" &&
			u.AuthProvider == domain.ProviderGoogle &&
			u.PasswordHash == ""
	})).Return(nil).Once()

	user, err := suite.service.FindOrCreateOAuthUser(ctx, domain.ProviderGoogle, info)

	suite.Require().NoError(err)
	suite.Equal("Carol", user.Name)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestFindOrCreateOAuthUser_EmailTakenByLocalUser() {
	ctx := context.Background()
	info := domain.GoogleUserInfo{Subject: "sub-3", Email: "dave@example.com"}
	suite.mockRepo.On("FindUserByProvider", ctx, domain.ProviderGoogle, "sub-3").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("FindUserByUsername", ctx, "dave@example.com").Return(&domain.User{UserID: "local"}, nil).Once()
	suite.mockRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Username != "dave@example.com" && len(u.Username) > len("google-")
	})).Return(nil).Once()

	user, err := suite.service.FindOrCreateOAuthUser(ctx, domain.ProviderGoogle, info)

	suite.Require().NoError(err)
	suite.Contains(user.Username, "google-")
}

func (suite *UserServiceTestSuite) TestFindOrCreateOAuthUser_LookupError() {
	ctx := context.Background()
	suite.mockRepo.On("FindUserByProvider", ctx, domain.ProviderGoogle, "sub-4").Return(nil, errors.New("timeout")).Once()

	_, err := suite.service.FindOrCreateOAuthUser(ctx, domain.ProviderGoogle, domain.GoogleUserInfo{Subject: "sub-4"})

	suite.Error(err)
	suite.NotErrorIs(err, apperrors.ErrNotFound)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
