package services

import (
	"context"

	"github.com/igrejaapp/igreja_backend/internal/core/domain"
	"github.com/igrejaapp/igreja_backend/internal/dto"
)

// AttendanceSvcFacade manages chamada sessions.
type AttendanceSvcFacade interface {
	// CreateSession records a finalized attendance session with per-member
	// records. Totals are computed from the records, never trusted from input.
	CreateSession(ctx context.Context, churchID string, req dto.CreateAttendanceSessionRequest, creatorUserID string) (*domain.AttendanceSession, error)

	// GetSession retrieves one session with its records, verifying church
	// ownership.
	GetSession(ctx context.Context, churchID, sessionID string) (*domain.AttendanceSession, error)

	// ListSessions retrieves a page of a church's sessions, newest first.
	ListSessions(ctx context.Context, churchID string, limit, offset int) ([]domain.AttendanceSession, error)
}
