package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/igrejaapp/igreja_backend/internal/apperrors"
	"github.com/igrejaapp/igreja_backend/internal/core/domain"
	portsrepo "github.com/igrejaapp/igreja_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxVisitorRepository struct {
	BaseRepository
}

// newPgxVisitorRepository creates a new repository for the visitor log.
func newPgxVisitorRepository(pool *pgxpool.Pool) portsrepo.VisitorRepositoryFacade {
	return &PgxVisitorRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxVisitorRepository implements portsrepo.VisitorRepositoryFacade
var _ portsrepo.VisitorRepositoryFacade = (*PgxVisitorRepository)(nil)

var FULL_VISITOR_SELECT_QUERY = `
SELECT
	v.visitor_id, v.church_id, v.room_id, v.room_name, v.session_date,
	v.name, v.address, v.phone, v.registered_at
FROM visitors v
`

func (r *PgxVisitorRepository) SaveVisitor(ctx context.Context, visitor domain.Visitor) error {
	query := `
		INSERT INTO visitors (
			visitor_id, church_id, room_id, room_name, session_date,
			name, address, phone, registered_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		visitor.VisitorID,
		visitor.ChurchID,
		visitor.RoomID,
		visitor.RoomName,
		visitor.SessionDate,
		visitor.Name,
		visitor.Address,
		visitor.Phone,
		visitor.RegisteredAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save visitor: %w", err)
	}
	return nil
}

func (r *PgxVisitorRepository) ListVisitorsByChurchID(ctx context.Context, churchID string, sessionDate *time.Time) ([]domain.Visitor, error) {
	query := FULL_VISITOR_SELECT_QUERY + ` WHERE v.church_id = $1`
	args := []any{churchID}
	if sessionDate != nil {
		query += ` AND v.session_date = $2`
		args = append(args, *sessionDate)
	}
	query += ` ORDER BY v.registered_at DESC`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query visitors", err)
	}
	defer rows.Close()
	visitors, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Visitor])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Visitor{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect visitor rows", err)
	}
	return visitors, nil
}
