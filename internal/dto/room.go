package dto

import (
	"time"

	"github.com/igrejaapp/igreja_backend/internal/core/domain"
)

// CreateRoomRequest adds a classroom/group to a church.
type CreateRoomRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=80"`
	AgeGroup string `json:"ageGroup" binding:"required,oneof=Bebê Criança Adolescente Jovem Adulto Idoso"`
	Capacity *int   `json:"capacity" binding:"omitempty,min=1,max=1000"`
}

// UpdateRoomRequest patches a room. Nil fields are left unchanged.
type UpdateRoomRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=2,max=80"`
	AgeGroup *string `json:"ageGroup" binding:"omitempty,oneof=Bebê Criança Adolescente Jovem Adulto Idoso"`
	Capacity *int    `json:"capacity" binding:"omitempty,min=1,max=1000"`
	IsActive *bool   `json:"isActive"`
}

// RoomResponse is the API shape for a room.
type RoomResponse struct {
	RoomID    string    `json:"roomID"`
	ChurchID  string    `json:"churchID"`
	Name      string    `json:"name"`
	AgeGroup  string    `json:"ageGroup"`
	Capacity  *int      `json:"capacity,omitempty"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToRoomResponse converts a domain.Room to DTO.
func ToRoomResponse(r *domain.Room) RoomResponse {
	return RoomResponse{
		RoomID:    r.RoomID,
		ChurchID:  r.ChurchID,
		Name:      r.Name,
		AgeGroup:  string(r.AgeGroup),
		Capacity:  r.Capacity,
		IsActive:  r.IsActive,
		CreatedAt: r.CreatedAt,
	}
}

// ToListRoomsResponse converts a slice of rooms to DTOs.
func ToListRoomsResponse(rooms []domain.Room) []RoomResponse {
	resp := make([]RoomResponse, len(rooms))
	for i, r := range rooms {
		resp[i] = ToRoomResponse(&r)
	}
	return resp
}
