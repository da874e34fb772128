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

type RoomServiceTestSuite struct {
	suite.Suite
	mockRoomRepo   *MockRoomRepository
	mockMemberRepo *MockMemberRepository
	service        portssvc.RoomSvcFacade
}

func (suite *RoomServiceTestSuite) SetupTest() {
	suite.mockRoomRepo = new(MockRoomRepository)
	suite.mockMemberRepo = new(MockMemberRepository)
	suite.service = services.NewRoomService(suite.mockRoomRepo, suite.mockMemberRepo)
}

func (suite *RoomServiceTestSuite) TestDeleteRoom_FailsWithActiveMemberCount() {
	ctx := context.Background()
	churchID := uuid.NewString()
	room := &domain.Room{RoomID: uuid.NewString(), ChurchID: churchID, Name: "Sala Jovens", IsActive: true}

	suite.mockRoomRepo.On("FindRoomByID", ctx, room.RoomID).Return(room, nil).Once()
	suite.mockMemberRepo.On("CountActiveMembersByRoomID", ctx, room.RoomID).Return(3, nil).Once()

	err := suite.service.DeleteRoom(ctx, churchID, room.RoomID)

	suite.Require().Error(err)
	var inUse *apperrors.RoomInUseError
	suite.Require().ErrorAs(err, &inUse)
	suite.Equal(3, inUse.ActiveMembers)
	suite.Contains(err.Error(), "3")
	// The room must be left untouched.
	suite.mockRoomRepo.AssertNotCalled(suite.T(), "DeleteRoom")
}

func (suite *RoomServiceTestSuite) TestDeleteRoom_Success() {
	ctx := context.Background()
	churchID := uuid.NewString()
	room := &domain.Room{RoomID: uuid.NewString(), ChurchID: churchID, Name: "Sala Kids"}

	suite.mockRoomRepo.On("FindRoomByID", ctx, room.RoomID).Return(room, nil).Once()
	suite.mockMemberRepo.On("CountActiveMembersByRoomID", ctx, room.RoomID).Return(0, nil).Once()
	suite.mockRoomRepo.On("DeleteRoom", ctx, room.RoomID).Return(nil).Once()

	err := suite.service.DeleteRoom(ctx, churchID, room.RoomID)

	suite.Require().NoError(err)
	suite.mockRoomRepo.AssertExpectations(suite.T())
}

func (suite *RoomServiceTestSuite) TestDeleteRoom_OtherChurchLooksMissing() {
	ctx := context.Background()
	room := &domain.Room{RoomID: uuid.NewString(), ChurchID: uuid.NewString()}

	suite.mockRoomRepo.On("FindRoomByID", ctx, room.RoomID).Return(room, nil).Once()

	err := suite.service.DeleteRoom(ctx, uuid.NewString(), room.RoomID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockMemberRepo.AssertNotCalled(suite.T(), "CountActiveMembersByRoomID")
}

func (suite *RoomServiceTestSuite) TestCreateRoom_Success() {
	ctx := context.Background()
	churchID := uuid.NewString()
	creatorID := uuid.NewString()
	req := dto.CreateRoomRequest{Name: "Sala Adultos", AgeGroup: "Adulto"}

	suite.mockRoomRepo.On("SaveRoom", ctx, mock.AnythingOfType("domain.Room")).Return(nil).Once()

	room, err := suite.service.CreateRoom(ctx, churchID, req, creatorID)

	suite.Require().NoError(err)
	suite.Require().NotNil(room)
	suite.Equal(churchID, room.ChurchID)
	suite.True(room.IsActive)
	suite.NotEmpty(room.RoomID)
}

func (suite *RoomServiceTestSuite) TestUpdateRoom_PatchesOnlyGivenFields() {
	ctx := context.Background()
	churchID := uuid.NewString()
	capacity := 20
	room := &domain.Room{RoomID: uuid.NewString(), ChurchID: churchID, Name: "Sala Kids", AgeGroup: domain.AgeGroupChild, Capacity: &capacity, IsActive: true}
	newName := "Sala Infantil"

	suite.mockRoomRepo.On("FindRoomByID", ctx, room.RoomID).Return(room, nil).Once()
	suite.mockRoomRepo.On("UpdateRoom", ctx, mock.MatchedBy(func(updated domain.Room) bool {
		return updated.Name == newName && updated.AgeGroup == domain.AgeGroupChild && *updated.Capacity == capacity
	})).Return(nil).Once()

	updated, err := suite.service.UpdateRoom(ctx, churchID, room.RoomID, dto.UpdateRoomRequest{Name: &newName}, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(newName, updated.Name)
	suite.mockRoomRepo.AssertExpectations(suite.T())
}

func TestRoomServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RoomServiceTestSuite))
}
