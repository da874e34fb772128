package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/igrejaapp/igreja_backend/internal/apperrors"
	"github.com/igrejaapp/igreja_backend/internal/core/domain"
	portsrepo "github.com/igrejaapp/igreja_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxRoomRepository struct {
	BaseRepository
}

// newPgxRoomRepository creates a new repository for room data.
func newPgxRoomRepository(pool *pgxpool.Pool) portsrepo.RoomRepositoryFacade {
	return &PgxRoomRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxRoomRepository implements portsrepo.RoomRepositoryFacade
var _ portsrepo.RoomRepositoryFacade = (*PgxRoomRepository)(nil)

var FULL_ROOM_SELECT_QUERY = `
SELECT
	r.room_id, r.church_id, r.name, r.age_group, r.capacity, r.is_active,
	r.created_at, r.created_by, r.last_updated_at, r.last_updated_by
FROM rooms r
`

func (r *PgxRoomRepository) getRooms(ctx context.Context, filterQuery string, args ...any) ([]domain.Room, error) {
	query := FULL_ROOM_SELECT_QUERY + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query rooms", err)
	}
	defer rows.Close()
	rooms, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Room])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Room{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect room rows", err)
	}
	return rooms, nil
}

func (r *PgxRoomRepository) FindRoomByID(ctx context.Context, roomID string) (*domain.Room, error) {
	rooms, err := r.getRooms(ctx, ` WHERE r.room_id = $1`, roomID)
	if err != nil {
		return nil, err
	}
	if len(rooms) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &rooms[0], nil
}

func (r *PgxRoomRepository) ListRoomsByChurchID(ctx context.Context, churchID string) ([]domain.Room, error) {
	return r.getRooms(ctx, ` WHERE r.church_id = $1 ORDER BY r.name`, churchID)
}

func (r *PgxRoomRepository) SaveRoom(ctx context.Context, room domain.Room) error {
	query := `
		INSERT INTO rooms (
			room_id, church_id, name, age_group, capacity, is_active,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		room.RoomID,
		room.ChurchID,
		room.Name,
		room.AgeGroup,
		room.Capacity,
		room.IsActive,
		room.CreatedAt,
		room.CreatedBy,
		room.LastUpdatedAt,
		room.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return apperrors.NewConflictError("room " + room.Name + " already exists in this church")
		}
		return fmt.Errorf("failed to save room: %w", err)
	}
	return nil
}

func (r *PgxRoomRepository) UpdateRoom(ctx context.Context, room domain.Room) error {
	query := `
		UPDATE rooms
		SET name = $1, age_group = $2, capacity = $3, is_active = $4,
			last_updated_at = $5, last_updated_by = $6
		WHERE room_id = $7;
	`
	tag, err := r.Pool.Exec(ctx, query,
		room.Name,
		room.AgeGroup,
		room.Capacity,
		room.IsActive,
		room.LastUpdatedAt,
		room.LastUpdatedBy,
		room.RoomID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.NewConflictError("room " + room.Name + " already exists in this church")
		}
		return fmt.Errorf("failed to update room: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxRoomRepository) DeleteRoom(ctx context.Context, roomID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM rooms WHERE room_id = $1;`, roomID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return apperrors.NewConflictError("room still has members assigned")
		}
		return fmt.Errorf("failed to delete room: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
