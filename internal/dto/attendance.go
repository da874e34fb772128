package dto

import (
	"time"

	"github.com/igrejaapp/igreja_backend/internal/core/domain"
)

// AttendanceMark is one member's presence mark inside a session submission.
type AttendanceMark struct {
	MemberID string `json:"memberID" binding:"required"`
	Status   string `json:"status" binding:"required,oneof=presente ausente"`
}

// VisitorMark is a named visitor counted present in a session submission.
type VisitorMark struct {
	Name string `json:"name" binding:"required,min=2,max=120"`
}

// CreateAttendanceSessionRequest submits a full "chamada" for a room on a date.
// Totals are derived server-side from the marks.
type CreateAttendanceSessionRequest struct {
	RoomID      string           `json:"roomID" binding:"required"`
	SessionDate string           `json:"sessionDate" binding:"required,datetime=2006-01-02"`
	Marks       []AttendanceMark `json:"marks" binding:"required,min=1,dive"`
	Visitors    []VisitorMark    `json:"visitors" binding:"omitempty,dive"`
}

// ListAttendanceParams filters the session listing.
type ListAttendanceParams struct {
	RoomID   string `form:"roomID"`
	FromDate string `form:"fromDate" binding:"omitempty,datetime=2006-01-02"`
	ToDate   string `form:"toDate" binding:"omitempty,datetime=2006-01-02"`
}

// AttendanceRecordResponse is the API shape for one mark within a session.
type AttendanceRecordResponse struct {
	RecordID    string  `json:"recordID"`
	MemberID    *string `json:"memberID,omitempty"`
	Status      string  `json:"status"`
	IsVisitor   bool    `json:"isVisitor"`
	VisitorName *string `json:"visitorName,omitempty"`
}

// AttendanceSessionResponse is the API shape for a session. Records are
// included only on detail reads.
type AttendanceSessionResponse struct {
	SessionID    string                     `json:"sessionID"`
	ChurchID     string                     `json:"churchID"`
	RoomID       string                     `json:"roomID"`
	RoomName     string                     `json:"roomName"`
	SessionDate  time.Time                  `json:"sessionDate"`
	TotalPresent int                        `json:"totalPresent"`
	TotalAbsent  int                        `json:"totalAbsent"`
	Finalized    bool                       `json:"finalized"`
	CreatedAt    time.Time                  `json:"createdAt"`
	Records      []AttendanceRecordResponse `json:"records,omitempty"`
}

// ToAttendanceSessionResponse converts a domain.AttendanceSession to DTO.
func ToAttendanceSessionResponse(s *domain.AttendanceSession) AttendanceSessionResponse {
	resp := AttendanceSessionResponse{
		SessionID:    s.SessionID,
		ChurchID:     s.ChurchID,
		RoomID:       s.RoomID,
		RoomName:     s.RoomName,
		SessionDate:  s.SessionDate,
		TotalPresent: s.TotalPresent,
		TotalAbsent:  s.TotalAbsent,
		Finalized:    s.Finalized,
		CreatedAt:    s.CreatedAt,
	}
	if len(s.Records) > 0 {
		resp.Records = make([]AttendanceRecordResponse, len(s.Records))
		for i, r := range s.Records {
			resp.Records[i] = AttendanceRecordResponse{
				RecordID:    r.RecordID,
				MemberID:    r.MemberID,
				Status:      string(r.Status),
				IsVisitor:   r.IsVisitor,
				VisitorName: r.VisitorName,
			}
		}
	}
	return resp
}

// ToListAttendanceSessionsResponse converts a slice of sessions to DTOs.
func ToListAttendanceSessionsResponse(sessions []domain.AttendanceSession) []AttendanceSessionResponse {
	resp := make([]AttendanceSessionResponse, len(sessions))
	for i, s := range sessions {
		resp[i] = ToAttendanceSessionResponse(&s)
	}
	return resp
}
