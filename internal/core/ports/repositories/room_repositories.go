package repositories

import (
	"context"

	"github.com/igrejaapp/igreja_backend/internal/core/domain"
)

// RoomReader defines read operations for room data.
type RoomReader interface {
	// FindRoomByID retrieves a room by ID.
	FindRoomByID(ctx context.Context, roomID string) (*domain.Room, error)

	// ListRoomsByChurchID retrieves every room belonging to a church.
	ListRoomsByChurchID(ctx context.Context, churchID string) ([]domain.Room, error)
}

// RoomWriter defines write operations for room data.
type RoomWriter interface {
	// SaveRoom persists a new room.
	SaveRoom(ctx context.Context, room domain.Room) error

	// UpdateRoom updates an existing room.
	UpdateRoom(ctx context.Context, room domain.Room) error

	// DeleteRoom removes a room. Callers must first verify no active members
	// remain assigned.
	DeleteRoom(ctx context.Context, roomID string) error
}

// RoomRepositoryFacade combines all room-related repository interfaces.
type RoomRepositoryFacade interface {
	RoomReader
	RoomWriter
}
