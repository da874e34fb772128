package domain

import "time"

// AttendanceStatus marks a member's presence in a session.
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "presente"
	AttendanceAbsent  AttendanceStatus = "ausente"
)

// AttendanceSession is one "chamada" taken for a room on a date. Totals are
// computed from the records at creation time, never trusted from the caller.
type AttendanceSession struct {
	SessionID    string    `json:"sessionID" db:"session_id"`
	ChurchID     string    `json:"churchID" db:"church_id"`
	RoomID       string    `json:"roomID" db:"room_id"`
	RoomName     string    `json:"roomName" db:"room_name"`
	SessionDate  time.Time `json:"sessionDate" db:"session_date"`
	TotalPresent int       `json:"totalPresent" db:"total_present"`
	TotalAbsent  int       `json:"totalAbsent" db:"total_absent"`
	Finalized    bool      `json:"finalized" db:"finalized"`
	AuditFields

	// Records are loaded on demand; nil on list reads.
	Records []AttendanceRecord `json:"records,omitempty" db:"-"`
}

// AttendanceRecord is one member's (or named visitor's) mark within a session.
type AttendanceRecord struct {
	RecordID    string           `json:"recordID" db:"record_id"`
	ChurchID    string           `json:"churchID" db:"church_id"`
	SessionID   string           `json:"sessionID" db:"session_id"`
	MemberID    *string          `json:"memberID,omitempty" db:"member_id"`
	Status      AttendanceStatus `json:"status" db:"status"`
	IsVisitor   bool             `json:"isVisitor" db:"is_visitor"`
	VisitorName *string          `json:"visitorName,omitempty" db:"visitor_name"`
}

// MonthlyAttendance is a report bucket: totals per calendar month.
type MonthlyAttendance struct {
	Month   string `json:"month" db:"month"`
	Present int    `json:"present" db:"present"`
	Absent  int    `json:"absent" db:"absent"`
}

// RoomAttendance is a report bucket: totals per room.
type RoomAttendance struct {
	Room    string `json:"room" db:"room"`
	Present int    `json:"present" db:"present"`
	Absent  int    `json:"absent" db:"absent"`
}
