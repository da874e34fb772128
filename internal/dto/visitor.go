package dto

import (
	"time"

	"github.com/igrejaapp/igreja_backend/internal/core/domain"
)

// AddVisitorRequest logs a walk-in for a room on a session date.
type AddVisitorRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=120"`
	RoomID      string `json:"roomID" binding:"required"`
	SessionDate string `json:"sessionDate" binding:"required,datetime=2006-01-02"`
	Address     string `json:"address" binding:"max=200"`
	Phone       string `json:"phone" binding:"max=20"`
}

// ListVisitorsParams filters the visitor log by session date.
type ListVisitorsParams struct {
	SessionDate string `form:"sessionDate" binding:"omitempty,datetime=2006-01-02"`
}

// VisitorResponse is the API shape for a visitor log entry.
type VisitorResponse struct {
	VisitorID    string    `json:"visitorID"`
	ChurchID     string    `json:"churchID"`
	RoomID       string    `json:"roomID"`
	RoomName     string    `json:"roomName"`
	SessionDate  time.Time `json:"sessionDate"`
	Name         string    `json:"name"`
	Address      string    `json:"address,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	RegisteredAt time.Time `json:"registeredAt"`
}

// ToVisitorResponse converts a domain.Visitor to DTO.
func ToVisitorResponse(v *domain.Visitor) VisitorResponse {
	return VisitorResponse{
		VisitorID:    v.VisitorID,
		ChurchID:     v.ChurchID,
		RoomID:       v.RoomID,
		RoomName:     v.RoomName,
		SessionDate:  v.SessionDate,
		Name:         v.Name,
		Address:      v.Address,
		Phone:        v.Phone,
		RegisteredAt: v.RegisteredAt,
	}
}

// ToListVisitorsResponse converts a slice of visitors to DTOs.
func ToListVisitorsResponse(visitors []domain.Visitor) []VisitorResponse {
	resp := make([]VisitorResponse, len(visitors))
	for i, v := range visitors {
		resp[i] = ToVisitorResponse(&v)
	}
	return resp
}
