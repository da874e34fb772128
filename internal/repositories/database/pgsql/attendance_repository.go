package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/igrejaapp/igreja_backend/internal/apperrors"
	"github.com/igrejaapp/igreja_backend/internal/core/domain"
	portsrepo "github.com/igrejaapp/igreja_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAttendanceRepository struct {
	BaseRepository
}

// newPgxAttendanceRepository creates a new repository for attendance data.
func newPgxAttendanceRepository(pool *pgxpool.Pool) portsrepo.AttendanceRepositoryFacade {
	return &PgxAttendanceRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxAttendanceRepository implements portsrepo.AttendanceRepositoryFacade
var _ portsrepo.AttendanceRepositoryFacade = (*PgxAttendanceRepository)(nil)

var FULL_SESSION_SELECT_QUERY = `
SELECT
	s.session_id, s.church_id, s.room_id, s.room_name, s.session_date,
	s.total_present, s.total_absent, s.finalized,
	s.created_at, s.created_by, s.last_updated_at, s.last_updated_by
FROM attendance_sessions s
`

func (r *PgxAttendanceRepository) FindSessionByID(ctx context.Context, sessionID string) (*domain.AttendanceSession, error) {
	rows, err := r.Pool.Query(ctx, FULL_SESSION_SELECT_QUERY+` WHERE s.session_id = $1`, sessionID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query attendance session", err)
	}
	defer rows.Close()
	sessions, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.AttendanceSession])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect session rows", err)
	}
	if len(sessions) == 0 {
		return nil, apperrors.ErrNotFound
	}
	session := sessions[0]

	recordsQuery := `
		SELECT record_id, church_id, session_id, member_id, status, is_visitor, visitor_name
		FROM attendance_records
		WHERE session_id = $1
		ORDER BY is_visitor, record_id;
	`
	recordRows, err := r.Pool.Query(ctx, recordsQuery, sessionID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query attendance records", err)
	}
	defer recordRows.Close()
	records, err := pgx.CollectRows(recordRows, pgx.RowToStructByName[domain.AttendanceRecord])
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NewAppError(500, "failed to collect record rows", err)
	}
	session.Records = records

	return &session, nil
}

func (r *PgxAttendanceRepository) ListSessionsByChurchID(ctx context.Context, churchID string, limit, offset int) ([]domain.AttendanceSession, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	query := FULL_SESSION_SELECT_QUERY + ` WHERE s.church_id = $1 ORDER BY s.session_date DESC, s.created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.Pool.Query(ctx, query, churchID, limit, offset)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query attendance sessions", err)
	}
	defer rows.Close()
	sessions, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.AttendanceSession])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.AttendanceSession{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect session rows", err)
	}
	return sessions, nil
}

// SaveSession inserts the session row and all its records in one transaction.
func (r *PgxAttendanceRepository) SaveSession(ctx context.Context, session domain.AttendanceSession) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = r.Rollback(ctx, tx)
	}()

	sessionQuery := `
		INSERT INTO attendance_sessions (
			session_id, church_id, room_id, room_name, session_date,
			total_present, total_absent, finalized,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err = tx.Exec(ctx, sessionQuery,
		session.SessionID,
		session.ChurchID,
		session.RoomID,
		session.RoomName,
		session.SessionDate,
		session.TotalPresent,
		session.TotalAbsent,
		session.Finalized,
		session.CreatedAt,
		session.CreatedBy,
		session.LastUpdatedAt,
		session.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert attendance session: %w", err)
	}

	recordQuery := `
		INSERT INTO attendance_records (
			record_id, church_id, session_id, member_id, status, is_visitor, visitor_name
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	for _, record := range session.Records {
		_, err = tx.Exec(ctx, recordQuery,
			record.RecordID,
			record.ChurchID,
			record.SessionID,
			record.MemberID,
			record.Status,
			record.IsVisitor,
			record.VisitorName,
		)
		if err != nil {
			return fmt.Errorf("failed to insert attendance record: %w", err)
		}
	}

	return r.Commit(ctx, tx)
}
