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

type PgxMemberRepository struct {
	BaseRepository
}

// newPgxMemberRepository creates a new repository for member roster data.
func newPgxMemberRepository(pool *pgxpool.Pool) portsrepo.MemberRepositoryFacade {
	return &PgxMemberRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxMemberRepository implements portsrepo.MemberRepositoryFacade
var _ portsrepo.MemberRepositoryFacade = (*PgxMemberRepository)(nil)

var FULL_MEMBER_SELECT_QUERY = `
SELECT
	m.member_id, m.church_id, COALESCE(m.room_id, '') AS room_id, m.full_name, m.cpf, m.birth_date,
	m.phone, m.email, m.address, m.baptism_date, m.join_date, m.age_group, m.status,
	m.created_at, m.created_by, m.last_updated_at, m.last_updated_by
FROM members m
`

func (r *PgxMemberRepository) getMembers(ctx context.Context, filterQuery string, args ...any) ([]domain.Member, error) {
	query := FULL_MEMBER_SELECT_QUERY + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query members", err)
	}
	defer rows.Close()
	members, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Member])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Member{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect member rows", err)
	}
	return members, nil
}

func (r *PgxMemberRepository) FindMemberByID(ctx context.Context, memberID string) (*domain.Member, error) {
	members, err := r.getMembers(ctx, ` WHERE m.member_id = $1`, memberID)
	if err != nil {
		return nil, err
	}
	if len(members) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &members[0], nil
}

func (r *PgxMemberRepository) ListMembersByChurchID(ctx context.Context, churchID string, limit, offset int) ([]domain.Member, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return r.getMembers(ctx,
		` WHERE m.church_id = $1 ORDER BY m.full_name LIMIT $2 OFFSET $3`,
		churchID, limit, offset)
}

func (r *PgxMemberRepository) ListMembersByRoomID(ctx context.Context, roomID string) ([]domain.Member, error) {
	return r.getMembers(ctx, ` WHERE m.room_id = $1 ORDER BY m.full_name`, roomID)
}

func (r *PgxMemberRepository) CountActiveMembersByRoomID(ctx context.Context, roomID string) (int, error) {
	query := `SELECT COUNT(*) FROM members WHERE room_id = $1 AND status = 'ativo';`
	var count int
	if err := r.Pool.QueryRow(ctx, query, roomID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count active members for room %s: %w", roomID, err)
	}
	return count, nil
}

func (r *PgxMemberRepository) SaveMember(ctx context.Context, member domain.Member) error {
	query := `
		INSERT INTO members (
			member_id, church_id, room_id, full_name, cpf, birth_date, phone, email,
			address, baptism_date, join_date, age_group, status,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
	`
	_, err := r.Pool.Exec(ctx, query,
		member.MemberID,
		member.ChurchID,
		member.RoomID,
		member.FullName,
		member.CPF,
		member.BirthDate,
		member.Phone,
		member.Email,
		member.Address,
		member.BaptismDate,
		member.JoinDate,
		member.AgeGroup,
		member.Status,
		member.CreatedAt,
		member.CreatedBy,
		member.LastUpdatedAt,
		member.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // unique_violation
				return apperrors.NewConflictError("member with CPF " + member.CPF + " already exists")
			}
			if pgErr.Code == "23503" { // foreign_key_violation
				return apperrors.NewValidationFailedError("room does not exist", err)
			}
		}
		return fmt.Errorf("failed to save member: %w", err)
	}
	return nil
}

func (r *PgxMemberRepository) UpdateMember(ctx context.Context, member domain.Member) error {
	query := `
		UPDATE members
		SET room_id = NULLIF($1, ''), full_name = $2, cpf = $3, birth_date = $4,
			phone = $5, email = $6, address = $7, baptism_date = $8, join_date = $9,
			age_group = $10, status = $11, last_updated_at = $12, last_updated_by = $13
		WHERE member_id = $14;
	`
	tag, err := r.Pool.Exec(ctx, query,
		member.RoomID,
		member.FullName,
		member.CPF,
		member.BirthDate,
		member.Phone,
		member.Email,
		member.Address,
		member.BaptismDate,
		member.JoinDate,
		member.AgeGroup,
		member.Status,
		member.LastUpdatedAt,
		member.LastUpdatedBy,
		member.MemberID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return apperrors.NewValidationFailedError("room does not exist", err)
		}
		return fmt.Errorf("failed to update member: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxMemberRepository) DeleteMember(ctx context.Context, memberID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM members WHERE member_id = $1;`, memberID)
	if err != nil {
		return fmt.Errorf("failed to delete member: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
