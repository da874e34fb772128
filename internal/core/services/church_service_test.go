package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/igrejaapp/igreja_backend/internal/apperrors"
	"github.com/igrejaapp/igreja_backend/internal/core/domain"
	portssvc "github.com/igrejaapp/igreja_backend/internal/core/ports/services"
	"github.com/igrejaapp/igreja_backend/internal/core/services"
	"github.com/igrejaapp/igreja_backend/internal/dto"
)

type ChurchServiceTestSuite struct {
	suite.Suite
	mockChurchRepo *MockChurchRepository
	mockUserSvc    *MockUserService
	service        portssvc.ChurchSvcFacade
}

func (suite *ChurchServiceTestSuite) SetupTest() {
	suite.mockChurchRepo = new(MockChurchRepository)
	suite.mockUserSvc = new(MockUserService)
	suite.service = services.NewChurchService(suite.mockChurchRepo, suite.mockUserSvc)
}

func registerChurchReq() dto.RegisterChurchRequest {
	return dto.RegisterChurchRequest{
		Name:          "Igreja Betel",
		Slug:          "betel",
		City:          "Campinas",
		State:         "SP",
		AdminName:     "joão silva",
		AdminEmail:    "joao@betel.org",
		AdminPassword: "secret12345",
	}
}

func superAdmin() *domain.User {
	return &domain.User{
		UserID:   uuid.NewString(),
		Role:     domain.RoleSuperAdmin,
		IsActive: true,
	}
}

// --- RegisterChurch ---

func (suite *ChurchServiceTestSuite) TestRegisterChurch_Success() {
	ctx := context.Background()
	req := registerChurchReq()

	suite.mockChurchRepo.On("RegisterChurch", ctx, mock.MatchedBy(func(church domain.Church) bool {
		return church.Slug == "betel" && church.IsActive && church.Version == 1
	}), mock.MatchedBy(func(admin domain.User) bool {
		return admin.Role == domain.RoleAdmin && admin.Email == req.AdminEmail && admin.PasswordHash != req.AdminPassword
	})).Return(nil).Once()

	church, admin, err := suite.service.RegisterChurch(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(church)
	suite.Require().NotNil(admin)
	suite.Equal(church.ChurchID, admin.ChurchID)
	suite.Equal("João Silva", admin.Name)
	suite.Equal(domain.PlanFree, church.Plan)
	suite.mockChurchRepo.AssertExpectations(suite.T())
}

func (suite *ChurchServiceTestSuite) TestRegisterChurch_DuplicateSlug() {
	ctx := context.Background()
	req := registerChurchReq()
	dupErr := apperrors.NewConflictError("church slug betel already exists")

	suite.mockChurchRepo.On("RegisterChurch", ctx, mock.AnythingOfType("domain.Church"), mock.AnythingOfType("domain.User")).Return(dupErr).Once()

	church, admin, err := suite.service.RegisterChurch(ctx, req)

	suite.Require().Error(err)
	suite.Nil(church)
	suite.Nil(admin)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *ChurchServiceTestSuite) TestRegisterChurch_ReservedSlug() {
	ctx := context.Background()
	req := registerChurchReq()
	req.Slug = domain.SystemChurchSlug

	church, admin, err := suite.service.RegisterChurch(ctx, req)

	suite.Require().Error(err)
	suite.Nil(church)
	suite.Nil(admin)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockChurchRepo.AssertNotCalled(suite.T(), "RegisterChurch")
}

func (suite *ChurchServiceTestSuite) TestRegisterChurch_InvalidCNPJ() {
	ctx := context.Background()
	req := registerChurchReq()
	req.CNPJ = "11.111.111/1111-11"

	church, admin, err := suite.service.RegisterChurch(ctx, req)

	suite.Require().Error(err)
	suite.Nil(church)
	suite.Nil(admin)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

// --- SetChurchStatus ---

func (suite *ChurchServiceTestSuite) TestSetChurchStatus_Success() {
	ctx := context.Background()
	admin := superAdmin()
	church := &domain.Church{ChurchID: uuid.NewString(), Slug: "betel", IsActive: true, Version: 3}
	updated := &domain.Church{ChurchID: church.ChurchID, Slug: "betel", IsActive: false, Version: 4}

	suite.mockUserSvc.On("GetUserByID", ctx, admin.UserID).Return(admin, nil).Once()
	suite.mockChurchRepo.On("FindChurchByID", ctx, church.ChurchID).Return(church, nil).Once()
	suite.mockChurchRepo.On("UpdateChurchStatus", ctx, church, false, admin.UserID).Return(nil).Once()
	suite.mockChurchRepo.On("FindChurchByID", ctx, church.ChurchID).Return(updated, nil).Once()

	result, err := suite.service.SetChurchStatus(ctx, church.ChurchID, false, 3, admin.UserID)

	suite.Require().NoError(err)
	suite.False(result.IsActive)
	suite.Equal(int64(4), result.Version)
	suite.mockChurchRepo.AssertExpectations(suite.T())
}

func (suite *ChurchServiceTestSuite) TestSetChurchStatus_StaleVersion() {
	ctx := context.Background()
	admin := superAdmin()
	church := &domain.Church{ChurchID: uuid.NewString(), IsActive: true, Version: 5}

	suite.mockUserSvc.On("GetUserByID", ctx, admin.UserID).Return(admin, nil).Once()
	suite.mockChurchRepo.On("FindChurchByID", ctx, church.ChurchID).Return(church, nil).Once()

	result, err := suite.service.SetChurchStatus(ctx, church.ChurchID, false, 3, admin.UserID)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockChurchRepo.AssertNotCalled(suite.T(), "UpdateChurchStatus")
}

func (suite *ChurchServiceTestSuite) TestSetChurchStatus_RequiresSuperAdmin() {
	ctx := context.Background()
	requester := &domain.User{UserID: uuid.NewString(), Role: domain.RoleAdmin, IsActive: true}

	suite.mockUserSvc.On("GetUserByID", ctx, requester.UserID).Return(requester, nil).Once()

	result, err := suite.service.SetChurchStatus(ctx, uuid.NewString(), false, 1, requester.UserID)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

// --- ListChurches / DeleteChurch ---

func (suite *ChurchServiceTestSuite) TestListChurches_RequiresSuperAdmin() {
	ctx := context.Background()
	requester := &domain.User{UserID: uuid.NewString(), Role: domain.RolePastor, IsActive: true}

	suite.mockUserSvc.On("GetUserByID", ctx, requester.UserID).Return(requester, nil).Once()

	churches, err := suite.service.ListChurches(ctx, requester.UserID)

	suite.Require().Error(err)
	suite.Nil(churches)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockChurchRepo.AssertNotCalled(suite.T(), "ListChurches")
}

func (suite *ChurchServiceTestSuite) TestDeleteChurch_Success() {
	ctx := context.Background()
	admin := superAdmin()
	churchID := uuid.NewString()

	suite.mockUserSvc.On("GetUserByID", ctx, admin.UserID).Return(admin, nil).Once()
	suite.mockChurchRepo.On("FindChurchByID", ctx, churchID).Return(&domain.Church{ChurchID: churchID}, nil).Once()
	suite.mockChurchRepo.On("DeleteChurchCascade", ctx, churchID).Return(nil).Once()

	err := suite.service.DeleteChurch(ctx, churchID, admin.UserID)

	suite.Require().NoError(err)
	suite.mockChurchRepo.AssertExpectations(suite.T())
}

func TestChurchServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ChurchServiceTestSuite))
}
