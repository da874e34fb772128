package repositories

import (
	"context"

	"github.com/igrejaapp/igreja_backend/internal/core/domain"
)

// AttendanceReader defines read operations for attendance data.
type AttendanceReader interface {
	// FindSessionByID retrieves one session including its records.
	FindSessionByID(ctx context.Context, sessionID string) (*domain.AttendanceSession, error)

	// ListSessionsByChurchID retrieves a church's sessions, newest first,
	// without records.
	ListSessionsByChurchID(ctx context.Context, churchID string, limit, offset int) ([]domain.AttendanceSession, error)
}

// AttendanceWriter defines write operations for attendance data.
type AttendanceWriter interface {
	// SaveSession persists a session and all its records in one transaction.
	SaveSession(ctx context.Context, session domain.AttendanceSession) error
}

// AttendanceRepositoryFacade combines all attendance repository interfaces.
type AttendanceRepositoryFacade interface {
	AttendanceReader
	AttendanceWriter
}
