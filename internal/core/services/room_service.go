package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/igrejaapp/igreja_backend/internal/apperrors"
	"github.com/igrejaapp/igreja_backend/internal/core/domain"
	portsrepo "github.com/igrejaapp/igreja_backend/internal/core/ports/repositories"
	portssvc "github.com/igrejaapp/igreja_backend/internal/core/ports/services"
	"github.com/igrejaapp/igreja_backend/internal/dto"
)

// roomService implements the RoomSvcFacade interface
type roomService struct {
	BaseService
	roomRepo   portsrepo.RoomRepositoryFacade
	memberRepo portsrepo.MemberReader
}

// NewRoomService creates a new room service with the provided dependencies
func NewRoomService(roomRepo portsrepo.RoomRepositoryFacade, memberRepo portsrepo.MemberReader) portssvc.RoomSvcFacade {
	return &roomService{
		roomRepo:   roomRepo,
		memberRepo: memberRepo,
	}
}

var _ portssvc.RoomSvcFacade = (*roomService)(nil)

// findOwnedRoom loads a room and verifies it belongs to the church.
func (s *roomService) findOwnedRoom(ctx context.Context, churchID, roomID string) (*domain.Room, error) {
	room, err := s.roomRepo.FindRoomByID(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if room.ChurchID != churchID {
		return nil, apperrors.ErrNotFound
	}
	return room, nil
}

func (s *roomService) ListRooms(ctx context.Context, churchID string) ([]domain.Room, error) {
	rooms, err := s.roomRepo.ListRoomsByChurchID(ctx, churchID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list rooms",
			slog.String("church_id", churchID))
		return nil, err
	}
	if rooms == nil {
		return []domain.Room{}, nil
	}
	return rooms, nil
}

func (s *roomService) CreateRoom(ctx context.Context, churchID string, req dto.CreateRoomRequest, creatorUserID string) (*domain.Room, error) {
	now := time.Now()
	room := domain.Room{
		RoomID:   uuid.NewString(),
		ChurchID: churchID,
		Name:     req.Name,
		AgeGroup: domain.AgeGroup(req.AgeGroup),
		Capacity: req.Capacity,
		IsActive: true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.roomRepo.SaveRoom(ctx, room); err != nil {
		s.LogError(ctx, err, "Failed to save room",
			slog.String("church_id", churchID))
		return nil, err
	}

	s.LogInfo(ctx, "Room created",
		slog.String("room_id", room.RoomID),
		slog.String("church_id", churchID))
	return &room, nil
}

func (s *roomService) UpdateRoom(ctx context.Context, churchID, roomID string, req dto.UpdateRoomRequest, requestingUserID string) (*domain.Room, error) {
	room, err := s.findOwnedRoom(ctx, churchID, roomID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		room.Name = *req.Name
	}
	if req.AgeGroup != nil {
		room.AgeGroup = domain.AgeGroup(*req.AgeGroup)
	}
	if req.Capacity != nil {
		room.Capacity = req.Capacity
	}
	if req.IsActive != nil {
		room.IsActive = *req.IsActive
	}

	room.LastUpdatedAt = time.Now()
	room.LastUpdatedBy = requestingUserID

	if err := s.roomRepo.UpdateRoom(ctx, *room); err != nil {
		s.LogError(ctx, err, "Failed to update room",
			slog.String("room_id", roomID))
		return nil, err
	}
	return room, nil
}

// DeleteRoom removes a room unless active members are still assigned, in which
// case it fails with the count and leaves the room untouched.
func (s *roomService) DeleteRoom(ctx context.Context, churchID, roomID string) error {
	if _, err := s.findOwnedRoom(ctx, churchID, roomID); err != nil {
		return err
	}

	count, err := s.memberRepo.CountActiveMembersByRoomID(ctx, roomID)
	if err != nil {
		s.LogError(ctx, err, "Failed to count members for room deletion",
			slog.String("room_id", roomID))
		return err
	}
	if count > 0 {
		return &apperrors.RoomInUseError{ActiveMembers: count}
	}

	if err := s.roomRepo.DeleteRoom(ctx, roomID); err != nil {
		s.LogError(ctx, err, "Failed to delete room",
			slog.String("room_id", roomID))
		return err
	}
	s.LogInfo(ctx, "Room deleted", slog.String("room_id", roomID))
	return nil
}
