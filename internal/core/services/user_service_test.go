package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/igrejaapp/igreja_backend/internal/apperrors"
	"github.com/igrejaapp/igreja_backend/internal/core/domain"
	portssvc "github.com/igrejaapp/igreja_backend/internal/core/ports/services"
	"github.com/igrejaapp/igreja_backend/internal/core/services"
	"github.com/igrejaapp/igreja_backend/internal/dto"
	"github.com/igrejaapp/igreja_backend/internal/utils"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockUserRepo)
}

func churchAdmin(churchID string) *domain.User {
	return &domain.User{
		UserID:   uuid.NewString(),
		ChurchID: churchID,
		Role:     domain.RoleAdmin,
		IsActive: true,
	}
}

// --- CreateUser ---

func (suite *UserServiceTestSuite) TestCreateUser_Success() {
	ctx := context.Background()
	churchID := uuid.NewString()
	admin := churchAdmin(churchID)
	req := dto.CreateUserRequest{Name: "ana  costa", Email: "ana@betel.org", Password: "secret123", Role: "secretary"}

	suite.mockUserRepo.On("FindUserByID", ctx, admin.UserID).Return(admin, nil).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		return user.ChurchID == churchID && user.Role == domain.RoleSecretary && user.PasswordHash != req.Password
	})).Return(nil).Once()

	user, err := suite.service.CreateUser(ctx, churchID, req, admin.UserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.Equal("Ana Costa", user.Name)
	suite.True(user.IsActive)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateUser_NonAdminForbidden() {
	ctx := context.Background()
	churchID := uuid.NewString()
	requester := &domain.User{UserID: uuid.NewString(), ChurchID: churchID, Role: domain.RoleSecretary, IsActive: true}

	suite.mockUserRepo.On("FindUserByID", ctx, requester.UserID).Return(requester, nil).Once()

	user, err := suite.service.CreateUser(ctx, churchID, dto.CreateUserRequest{Name: "Ana", Email: "a@b.org", Password: "secret123", Role: "pastor"}, requester.UserID)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser")
}

func (suite *UserServiceTestSuite) TestCreateUser_AdminOfOtherChurchForbidden() {
	ctx := context.Background()
	admin := churchAdmin(uuid.NewString())

	suite.mockUserRepo.On("FindUserByID", ctx, admin.UserID).Return(admin, nil).Once()

	user, err := suite.service.CreateUser(ctx, uuid.NewString(), dto.CreateUserRequest{Name: "Ana", Email: "a@b.org", Password: "secret123", Role: "pastor"}, admin.UserID)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *UserServiceTestSuite) TestCreateUser_SuperAdminRoleRejected() {
	ctx := context.Background()
	churchID := uuid.NewString()
	admin := churchAdmin(churchID)

	suite.mockUserRepo.On("FindUserByID", ctx, admin.UserID).Return(admin, nil).Once()

	user, err := suite.service.CreateUser(ctx, churchID, dto.CreateUserRequest{Name: "Ana", Email: "a@b.org", Password: "secret123", Role: "super_admin"}, admin.UserID)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

// --- UpdateUser ---

func (suite *UserServiceTestSuite) TestUpdateUser_SelfNameChangeAllowed() {
	ctx := context.Background()
	churchID := uuid.NewString()
	user := &domain.User{UserID: uuid.NewString(), ChurchID: churchID, Name: "Ana", Role: domain.RoleSecretary, IsActive: true}
	newName := "ana maria"

	suite.mockUserRepo.On("FindUserByID", ctx, user.UserID).Return(user, nil).Twice()
	suite.mockUserRepo.On("UpdateUser", ctx, mock.MatchedBy(func(updated domain.User) bool {
		return updated.Name == "Ana Maria"
	})).Return(nil).Once()

	updated, err := suite.service.UpdateUser(ctx, user.UserID, dto.UpdateUserRequest{Name: &newName}, user.UserID)

	suite.Require().NoError(err)
	suite.Equal("Ana Maria", updated.Name)
}

func (suite *UserServiceTestSuite) TestUpdateUser_SelfRoleChangeForbidden() {
	ctx := context.Background()
	churchID := uuid.NewString()
	user := &domain.User{UserID: uuid.NewString(), ChurchID: churchID, Role: domain.RoleSecretary, IsActive: true}
	newRole := "admin"

	suite.mockUserRepo.On("FindUserByID", ctx, user.UserID).Return(user, nil).Twice()

	updated, err := suite.service.UpdateUser(ctx, user.UserID, dto.UpdateUserRequest{Role: &newRole}, user.UserID)

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "UpdateUser")
}

// --- DeleteUser ---

func (suite *UserServiceTestSuite) TestDeleteUser_SelfDeleteBlocked() {
	ctx := context.Background()
	churchID := uuid.NewString()
	admin := churchAdmin(churchID)

	suite.mockUserRepo.On("FindUserByID", ctx, admin.UserID).Return(admin, nil).Twice()

	err := suite.service.DeleteUser(ctx, admin.UserID, admin.UserID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "MarkUserDeleted")
}

func (suite *UserServiceTestSuite) TestDeleteUser_Success() {
	ctx := context.Background()
	churchID := uuid.NewString()
	admin := churchAdmin(churchID)
	target := &domain.User{UserID: uuid.NewString(), ChurchID: churchID, Role: domain.RolePastor, IsActive: true}

	suite.mockUserRepo.On("FindUserByID", ctx, target.UserID).Return(target, nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, admin.UserID).Return(admin, nil).Once()
	suite.mockUserRepo.On("MarkUserDeleted", ctx, target.UserID, mock.AnythingOfType("time.Time"), admin.UserID).Return(nil).Once()

	err := suite.service.DeleteUser(ctx, target.UserID, admin.UserID)

	suite.Require().NoError(err)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

// --- AuthenticateUser ---

func (suite *UserServiceTestSuite) TestAuthenticateUser_UnknownEmailAndWrongPasswordLookAlike() {
	ctx := context.Background()
	hash, err := utils.HashPassword("correct123")
	suite.Require().NoError(err)
	user := &domain.User{UserID: uuid.NewString(), Email: "ana@betel.org", PasswordHash: hash, IsActive: true}

	suite.mockUserRepo.On("FindUserByEmail", ctx, "missing@betel.org").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("FindUserByEmail", ctx, user.Email).Return(user, nil).Once()

	_, errUnknown := suite.service.AuthenticateUser(ctx, "missing@betel.org", "whatever")
	_, errWrongPass := suite.service.AuthenticateUser(ctx, user.Email, "wrong")

	suite.ErrorIs(errUnknown, apperrors.ErrInvalidCredentials)
	suite.ErrorIs(errWrongPass, apperrors.ErrInvalidCredentials)
	suite.Equal(errUnknown.Error(), errWrongPass.Error())
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_DeletedUserRejected() {
	ctx := context.Background()
	hash, err := utils.HashPassword("correct123")
	suite.Require().NoError(err)
	deletedAt := time.Now()
	user := &domain.User{UserID: uuid.NewString(), Email: "ana@betel.org", PasswordHash: hash, IsActive: true, DeletedAt: &deletedAt}

	suite.mockUserRepo.On("FindUserByEmail", ctx, user.Email).Return(user, nil).Once()

	_, authErr := suite.service.AuthenticateUser(ctx, user.Email, "correct123")

	suite.ErrorIs(authErr, apperrors.ErrInvalidCredentials)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
