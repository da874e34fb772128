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

// attendanceService implements the AttendanceSvcFacade interface
type attendanceService struct {
	BaseService
	attendanceRepo portsrepo.AttendanceRepositoryFacade
	roomRepo       portsrepo.RoomReader
	memberRepo     portsrepo.MemberReader
}

// NewAttendanceService creates a new attendance service with the provided dependencies
func NewAttendanceService(
	attendanceRepo portsrepo.AttendanceRepositoryFacade,
	roomRepo portsrepo.RoomReader,
	memberRepo portsrepo.MemberReader,
) portssvc.AttendanceSvcFacade {
	return &attendanceService{
		attendanceRepo: attendanceRepo,
		roomRepo:       roomRepo,
		memberRepo:     memberRepo,
	}
}

var _ portssvc.AttendanceSvcFacade = (*attendanceService)(nil)

// CreateSession records a finalized chamada. Totals are computed from the
// records; duplicate member marks are rejected, and every marked member must
// belong to the room's church.
func (s *attendanceService) CreateSession(ctx context.Context, churchID string, req dto.CreateAttendanceSessionRequest, creatorUserID string) (*domain.AttendanceSession, error) {
	room, err := s.roomRepo.FindRoomByID(ctx, req.RoomID)
	if err != nil {
		return nil, err
	}
	if room.ChurchID != churchID {
		return nil, apperrors.ErrNotFound
	}

	sessionDate, err := time.Parse(dto.DateLayout, req.SessionDate)
	if err != nil {
		return nil, apperrors.NewValidationFailedError("invalid session date", err)
	}

	roomMembers, err := s.memberRepo.ListMembersByRoomID(ctx, req.RoomID)
	if err != nil {
		return nil, err
	}
	known := make(map[string]struct{}, len(roomMembers))
	for _, m := range roomMembers {
		known[m.MemberID] = struct{}{}
	}

	sessionID := uuid.NewString()
	seen := make(map[string]struct{}, len(req.Marks))
	records := make([]domain.AttendanceRecord, 0, len(req.Marks)+len(req.Visitors))
	totalPresent, totalAbsent := 0, 0

	for _, mark := range req.Marks {
		if _, dup := seen[mark.MemberID]; dup {
			return nil, apperrors.NewValidationFailedError("duplicate member mark", nil)
		}
		seen[mark.MemberID] = struct{}{}
		if _, ok := known[mark.MemberID]; !ok {
			return nil, apperrors.NewValidationFailedError("member is not assigned to the room", nil)
		}

		status := domain.AttendanceStatus(mark.Status)
		if status == domain.AttendancePresent {
			totalPresent++
		} else {
			totalAbsent++
		}

		memberID := mark.MemberID
		records = append(records, domain.AttendanceRecord{
			RecordID:  uuid.NewString(),
			ChurchID:  churchID,
			SessionID: sessionID,
			MemberID:  &memberID,
			Status:    status,
		})
	}

	for _, v := range req.Visitors {
		name := v.Name
		records = append(records, domain.AttendanceRecord{
			RecordID:    uuid.NewString(),
			ChurchID:    churchID,
			SessionID:   sessionID,
			Status:      domain.AttendancePresent,
			IsVisitor:   true,
			VisitorName: &name,
		})
		totalPresent++
	}

	now := time.Now()
	session := domain.AttendanceSession{
		SessionID:    sessionID,
		ChurchID:     churchID,
		RoomID:       room.RoomID,
		RoomName:     room.Name,
		SessionDate:  sessionDate,
		TotalPresent: totalPresent,
		TotalAbsent:  totalAbsent,
		Finalized:    true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
		Records: records,
	}

	if err := s.attendanceRepo.SaveSession(ctx, session); err != nil {
		s.LogError(ctx, err, "Failed to save attendance session",
			slog.String("room_id", room.RoomID))
		return nil, err
	}

	s.LogInfo(ctx, "Attendance session recorded",
		slog.String("session_id", sessionID),
		slog.String("room_id", room.RoomID),
		slog.Int("present", totalPresent),
		slog.Int("absent", totalAbsent))
	return &session, nil
}

func (s *attendanceService) GetSession(ctx context.Context, churchID, sessionID string) (*domain.AttendanceSession, error) {
	session, err := s.attendanceRepo.FindSessionByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.ChurchID != churchID {
		return nil, apperrors.ErrNotFound
	}
	return session, nil
}

func (s *attendanceService) ListSessions(ctx context.Context, churchID string, limit, offset int) ([]domain.AttendanceSession, error) {
	sessions, err := s.attendanceRepo.ListSessionsByChurchID(ctx, churchID, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list attendance sessions",
			slog.String("church_id", churchID))
		return nil, err
	}
	if sessions == nil {
		return []domain.AttendanceSession{}, nil
	}
	return sessions, nil
}
