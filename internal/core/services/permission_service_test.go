package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/igrejaapp/igreja_backend/internal/apperrors"
	"github.com/igrejaapp/igreja_backend/internal/core/domain"
	portssvc "github.com/igrejaapp/igreja_backend/internal/core/ports/services"
	"github.com/igrejaapp/igreja_backend/internal/core/services"
)

type PermissionServiceTestSuite struct {
	suite.Suite
	mockPermRepo *MockPermissionRepository
	service      portssvc.PermissionSvcFacade
}

func (suite *PermissionServiceTestSuite) SetupTest() {
	suite.mockPermRepo = new(MockPermissionRepository)
	suite.service = services.NewPermissionService(suite.mockPermRepo)
}

func (suite *PermissionServiceTestSuite) TestGetMatrix_DefaultsWhenEmpty() {
	ctx := context.Background()
	churchID := uuid.NewString()

	suite.mockPermRepo.On("FindMatrixByChurchID", ctx, churchID).Return(domain.PermissionMatrix{}, nil).Once()

	matrix, err := suite.service.GetMatrix(ctx, churchID)

	suite.Require().NoError(err)
	suite.True(matrix.Allows(domain.RoleAdmin, domain.ModuleSettings))
	suite.False(matrix.Allows(domain.RoleSecretary, domain.ModuleFinance))
	suite.True(matrix.Allows(domain.RoleTreasurer, domain.ModuleFinance))
}

func (suite *PermissionServiceTestSuite) TestGetMatrix_StoredRowsOverlayDefaults() {
	ctx := context.Background()
	churchID := uuid.NewString()
	stored := domain.PermissionMatrix{
		domain.RoleSecretary: {domain.ModuleDashboard: true, domain.ModuleFinance: true},
	}

	suite.mockPermRepo.On("FindMatrixByChurchID", ctx, churchID).Return(stored, nil).Once()

	matrix, err := suite.service.GetMatrix(ctx, churchID)

	suite.Require().NoError(err)
	suite.True(matrix.Allows(domain.RoleSecretary, domain.ModuleFinance))
	// Roles without stored rows keep the defaults.
	suite.True(matrix.Allows(domain.RolePastor, domain.ModuleMembers))
}

func (suite *PermissionServiceTestSuite) TestUpdateRolePermission_AdminKeepsSettings() {
	ctx := context.Background()
	churchID := uuid.NewString()
	requesterID := uuid.NewString()
	flags := domain.ModuleFlags{
		domain.ModuleDashboard: true,
		domain.ModuleSettings:  false,
	}

	suite.mockPermRepo.On("UpsertRolePermission", ctx, mock.MatchedBy(func(perm domain.RolePermission) bool {
		return perm.Role == domain.RoleAdmin && perm.Modules[domain.ModuleSettings]
	})).Return(nil).Once()

	stored, err := suite.service.UpdateRolePermission(ctx, churchID, domain.RoleAdmin, flags, requesterID)

	suite.Require().NoError(err)
	suite.True(stored[domain.ModuleSettings])
	suite.mockPermRepo.AssertExpectations(suite.T())
}

func (suite *PermissionServiceTestSuite) TestUpdateRolePermission_PersistFailureReturnsNothing() {
	ctx := context.Background()
	churchID := uuid.NewString()
	flags := domain.ModuleFlags{domain.ModuleDashboard: true}

	suite.mockPermRepo.On("UpsertRolePermission", ctx, mock.AnythingOfType("domain.RolePermission")).Return(assert.AnError).Once()

	stored, err := suite.service.UpdateRolePermission(ctx, churchID, domain.RoleSecretary, flags, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(stored)
}

func (suite *PermissionServiceTestSuite) TestUpdateRolePermission_RejectsSuperAdminRole() {
	ctx := context.Background()

	stored, err := suite.service.UpdateRolePermission(ctx, uuid.NewString(), domain.RoleSuperAdmin, domain.ModuleFlags{}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(stored)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockPermRepo.AssertNotCalled(suite.T(), "UpsertRolePermission")
}

func TestPermissionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PermissionServiceTestSuite))
}
