package domain

// Room is a church classroom/group members and attendance sessions attach to.
type Room struct {
	RoomID   string   `json:"roomID" db:"room_id"`
	ChurchID string   `json:"churchID" db:"church_id"`
	Name     string   `json:"name" db:"name"`
	AgeGroup AgeGroup `json:"ageGroup" db:"age_group"`
	Capacity *int     `json:"capacity,omitempty" db:"capacity"`
	IsActive bool     `json:"isActive" db:"is_active"`
	AuditFields
}
