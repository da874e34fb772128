package domain

import "time"

// Visitor is a walk-in logged against an attendance session date. RoomName is
// denormalized so the log survives room renames.
type Visitor struct {
	VisitorID    string    `json:"visitorID" db:"visitor_id"`
	ChurchID     string    `json:"churchID" db:"church_id"`
	RoomID       string    `json:"roomID" db:"room_id"`
	RoomName     string    `json:"roomName" db:"room_name"`
	SessionDate  time.Time `json:"sessionDate" db:"session_date"`
	Name         string    `json:"name" db:"name"`
	Address      string    `json:"address" db:"address"`
	Phone        string    `json:"phone" db:"phone"`
	RegisteredAt time.Time `json:"registeredAt" db:"registered_at"`
}
