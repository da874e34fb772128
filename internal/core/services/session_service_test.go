package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/igrejaapp/igreja_backend/internal/apperrors"
	"github.com/igrejaapp/igreja_backend/internal/core/domain"
	portssvc "github.com/igrejaapp/igreja_backend/internal/core/ports/services"
	"github.com/igrejaapp/igreja_backend/internal/core/services"
	"github.com/igrejaapp/igreja_backend/internal/dto"
	"github.com/igrejaapp/igreja_backend/internal/utils"
)

type SessionServiceTestSuite struct {
	suite.Suite
	mockUserSvc    *MockUserService
	mockChurchRepo *MockChurchRepository
	mockPermSvc    *MockPermissionService
	service        portssvc.SessionSvcFacade
}

func (suite *SessionServiceTestSuite) SetupTest() {
	suite.mockUserSvc = new(MockUserService)
	suite.mockChurchRepo = new(MockChurchRepository)
	suite.mockPermSvc = new(MockPermissionService)
	suite.service = services.NewSessionService(suite.mockUserSvc, suite.mockChurchRepo, suite.mockPermSvc)
}

func activeUser(churchID string) *domain.User {
	return &domain.User{
		UserID:   uuid.NewString(),
		ChurchID: churchID,
		Name:     "Maria Souza",
		Email:    "maria@betel.org",
		Role:     domain.RoleSecretary,
		IsActive: true,
	}
}

func activeChurch(slug string) *domain.Church {
	return &domain.Church{
		ChurchID: uuid.NewString(),
		Name:     "Igreja Betel",
		Slug:     slug,
		IsActive: true,
	}
}

// --- Login ---

func (suite *SessionServiceTestSuite) TestLogin_Success() {
	ctx := context.Background()
	church := activeChurch("betel")
	user := activeUser(church.ChurchID)

	suite.mockUserSvc.On("AuthenticateUser", ctx, user.Email, "secret123").Return(user, nil).Once()
	suite.mockChurchRepo.On("FindChurchBySlug", ctx, "betel").Return(church, nil).Once()
	suite.mockUserSvc.On("GetUserByID", ctx, user.UserID).Return(user, nil).Once()
	suite.mockChurchRepo.On("FindChurchByID", ctx, church.ChurchID).Return(church, nil).Once()
	suite.mockPermSvc.On("GetMatrix", ctx, church.ChurchID).Return(domain.DefaultPermissionMatrix(), nil).Once()

	session, err := suite.service.Login(ctx, user.Email, "secret123", "betel")

	suite.Require().NoError(err)
	suite.Require().NotNil(session)
	suite.Equal(user.UserID, session.User.UserID)
	suite.Equal(church.ChurchID, session.Church.ChurchID)
	suite.True(session.CanAccess(domain.ModuleMembers))
	suite.mockUserSvc.AssertExpectations(suite.T())
	suite.mockChurchRepo.AssertExpectations(suite.T())
}

func (suite *SessionServiceTestSuite) TestLogin_CrossTenantSlugRevokesToken() {
	ctx := context.Background()
	ownChurch := activeChurch("betel")
	otherChurch := activeChurch("shalom")
	user := activeUser(ownChurch.ChurchID)

	suite.mockUserSvc.On("AuthenticateUser", ctx, user.Email, "secret123").Return(user, nil).Once()
	suite.mockChurchRepo.On("FindChurchBySlug", ctx, "shalom").Return(otherChurch, nil).Once()
	suite.mockUserSvc.On("ClearRefreshToken", ctx, user.UserID).Return(nil).Once()

	session, err := suite.service.Login(ctx, user.Email, "secret123", "shalom")

	suite.Require().Error(err)
	suite.Nil(session)
	suite.ErrorIs(err, apperrors.ErrCrossChurchAccess)
	suite.mockUserSvc.AssertExpectations(suite.T())
}

func (suite *SessionServiceTestSuite) TestLogin_UnknownSlugRevokesToken() {
	ctx := context.Background()
	user := activeUser(uuid.NewString())

	suite.mockUserSvc.On("AuthenticateUser", ctx, user.Email, "secret123").Return(user, nil).Once()
	suite.mockChurchRepo.On("FindChurchBySlug", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserSvc.On("ClearRefreshToken", ctx, user.UserID).Return(nil).Once()

	session, err := suite.service.Login(ctx, user.Email, "secret123", "missing")

	suite.Require().Error(err)
	suite.Nil(session)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockUserSvc.AssertExpectations(suite.T())
}

func (suite *SessionServiceTestSuite) TestLogin_InactiveChurchRevokesToken() {
	ctx := context.Background()
	church := activeChurch("betel")
	church.IsActive = false
	user := activeUser(church.ChurchID)

	suite.mockUserSvc.On("AuthenticateUser", ctx, user.Email, "secret123").Return(user, nil).Once()
	suite.mockChurchRepo.On("FindChurchBySlug", ctx, "betel").Return(church, nil).Once()
	suite.mockUserSvc.On("ClearRefreshToken", ctx, user.UserID).Return(nil).Once()

	session, err := suite.service.Login(ctx, user.Email, "secret123", "betel")

	suite.Require().Error(err)
	suite.Nil(session)
	suite.ErrorIs(err, apperrors.ErrChurchInactive)
	suite.mockUserSvc.AssertExpectations(suite.T())
}

func (suite *SessionServiceTestSuite) TestLogin_TenantUserOnSuperAdminSlug() {
	ctx := context.Background()
	user := activeUser(uuid.NewString())

	suite.mockUserSvc.On("AuthenticateUser", ctx, user.Email, "secret123").Return(user, nil).Once()
	suite.mockUserSvc.On("ClearRefreshToken", ctx, user.UserID).Return(nil).Once()

	session, err := suite.service.Login(ctx, user.Email, "secret123", domain.SystemChurchSlug)

	suite.Require().Error(err)
	suite.Nil(session)
	suite.ErrorIs(err, apperrors.ErrCrossChurchAccess)
	suite.mockUserSvc.AssertExpectations(suite.T())
}

func (suite *SessionServiceTestSuite) TestLogin_BadCredentials() {
	ctx := context.Background()

	suite.mockUserSvc.On("AuthenticateUser", ctx, "x@y.org", "wrong").Return(nil, apperrors.ErrInvalidCredentials).Once()

	session, err := suite.service.Login(ctx, "x@y.org", "wrong", "betel")

	suite.Require().Error(err)
	suite.Nil(session)
	suite.ErrorIs(err, apperrors.ErrInvalidCredentials)
	// No token revocation before credentials are accepted.
	suite.mockUserSvc.AssertNotCalled(suite.T(), "ClearRefreshToken")
}

// --- ResolveSession ---

func (suite *SessionServiceTestSuite) TestResolveSession_InactiveUser() {
	ctx := context.Background()
	user := activeUser(uuid.NewString())
	user.IsActive = false

	suite.mockUserSvc.On("GetUserByID", ctx, user.UserID).Return(user, nil).Once()

	session, err := suite.service.ResolveSession(ctx, user.UserID)

	suite.Require().Error(err)
	suite.Nil(session)
	suite.ErrorIs(err, apperrors.ErrProfileNotFound)
}

func (suite *SessionServiceTestSuite) TestResolveSession_UnknownUser() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockUserSvc.On("GetUserByID", ctx, userID).Return(nil, apperrors.ErrNotFound).Once()

	session, err := suite.service.ResolveSession(ctx, userID)

	suite.Require().Error(err)
	suite.Nil(session)
	suite.ErrorIs(err, apperrors.ErrProfileNotFound)
}

func (suite *SessionServiceTestSuite) TestResolveSession_InactiveChurch() {
	ctx := context.Background()
	church := activeChurch("betel")
	church.IsActive = false
	user := activeUser(church.ChurchID)

	suite.mockUserSvc.On("GetUserByID", ctx, user.UserID).Return(user, nil).Once()
	suite.mockChurchRepo.On("FindChurchByID", ctx, church.ChurchID).Return(church, nil).Once()

	session, err := suite.service.ResolveSession(ctx, user.UserID)

	suite.Require().Error(err)
	suite.Nil(session)
	suite.ErrorIs(err, apperrors.ErrChurchInactive)
}

func (suite *SessionServiceTestSuite) TestResolveSession_SuperAdmin() {
	ctx := context.Background()
	admin := activeUser("")
	admin.Role = domain.RoleSuperAdmin
	churches := []domain.Church{*activeChurch("betel"), *activeChurch("shalom")}

	suite.mockUserSvc.On("GetUserByID", ctx, admin.UserID).Return(admin, nil).Once()
	suite.mockChurchRepo.On("ListChurches", ctx).Return(churches, nil).Once()

	session, err := suite.service.ResolveSession(ctx, admin.UserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(session)
	suite.Equal(domain.SystemChurchID, session.Church.ChurchID)
	suite.Len(session.Churches, 2)
	// Super admins pass every module check.
	suite.True(session.CanAccess(domain.ModuleFinance))
}

// --- ChangePassword ---

func (suite *SessionServiceTestSuite) TestChangePassword_WrongCurrentPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("current123")
	suite.Require().NoError(err)
	user := activeUser(uuid.NewString())
	user.PasswordHash = hash

	suite.mockUserSvc.On("GetUserByID", ctx, user.UserID).Return(user, nil).Once()

	err = suite.service.ChangePassword(ctx, user.UserID, "notcurrent", "brandnew123")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidCredentials)
	suite.mockUserSvc.AssertNotCalled(suite.T(), "UpdateUser")
}

func (suite *SessionServiceTestSuite) TestChangePassword_Success() {
	ctx := context.Background()
	hash, err := utils.HashPassword("current123")
	suite.Require().NoError(err)
	user := activeUser(uuid.NewString())
	user.PasswordHash = hash

	suite.mockUserSvc.On("GetUserByID", ctx, user.UserID).Return(user, nil).Once()
	suite.mockUserSvc.On("UpdateUser", ctx, user.UserID, dto.UpdateUserRequest{Password: strPtr("brandnew123")}, user.UserID).Return(user, nil).Once()

	err = suite.service.ChangePassword(ctx, user.UserID, "current123", "brandnew123")

	suite.Require().NoError(err)
	suite.mockUserSvc.AssertExpectations(suite.T())
}

func strPtr(s string) *string { return &s }

func TestSessionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SessionServiceTestSuite))
}
