package services

import (
	"context"

	"github.com/igrejaapp/igreja_backend/internal/core/domain"
	"github.com/igrejaapp/igreja_backend/internal/dto"
)

// RoomSvcFacade manages church rooms.
type RoomSvcFacade interface {
	// ListRooms retrieves every room belonging to a church.
	ListRooms(ctx context.Context, churchID string) ([]domain.Room, error)

	// CreateRoom persists a new room.
	CreateRoom(ctx context.Context, churchID string, req dto.CreateRoomRequest, creatorUserID string) (*domain.Room, error)

	// UpdateRoom updates an existing room (rename, capacity, active flag).
	UpdateRoom(ctx context.Context, churchID, roomID string, req dto.UpdateRoomRequest, requestingUserID string) (*domain.Room, error)

	// DeleteRoom removes a room. Fails with a RoomInUseError naming the active
	// member count when members are still assigned; the room is left untouched.
	DeleteRoom(ctx context.Context, churchID, roomID string) error
}
