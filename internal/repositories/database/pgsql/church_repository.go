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

type PgxChurchRepository struct {
	BaseRepository
}

// newPgxChurchRepository creates a new repository for church (tenant) data.
func newPgxChurchRepository(pool *pgxpool.Pool) portsrepo.ChurchRepositoryWithTx {
	return &PgxChurchRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxChurchRepository implements portsrepo.ChurchRepositoryWithTx
var _ portsrepo.ChurchRepositoryWithTx = (*PgxChurchRepository)(nil)

// members_count is always derived at read time; it is never a stored column.
var FULL_CHURCH_SELECT_QUERY = `
SELECT
	c.church_id, c.name, c.slug, c.cnpj, c.city, c.state, c.address, c.phone,
	c.pastor, c.admin_name, c.admin_email, c.plan, c.is_active,
	(SELECT COUNT(*) FROM members m WHERE m.church_id = c.church_id AND m.status = 'ativo') AS members_count,
	c.created_at, c.created_by, c.last_updated_at, c.last_updated_by, c.version
FROM churches c
`

func (r *PgxChurchRepository) getChurches(ctx context.Context, filterQuery string, args ...any) ([]domain.Church, error) {
	query := FULL_CHURCH_SELECT_QUERY + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query churches", err)
	}
	defer rows.Close()
	churches, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Church])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Church{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect church rows", err)
	}
	return churches, nil
}

func (r *PgxChurchRepository) FindChurchByID(ctx context.Context, churchID string) (*domain.Church, error) {
	churches, err := r.getChurches(ctx, ` WHERE c.church_id = $1`, churchID)
	if err != nil {
		return nil, err
	}
	if len(churches) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &churches[0], nil
}

func (r *PgxChurchRepository) FindChurchBySlug(ctx context.Context, slug string) (*domain.Church, error) {
	churches, err := r.getChurches(ctx, ` WHERE c.slug = $1`, slug)
	if err != nil {
		return nil, err
	}
	if len(churches) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &churches[0], nil
}

func (r *PgxChurchRepository) ListChurches(ctx context.Context) ([]domain.Church, error) {
	return r.getChurches(ctx, ` ORDER BY c.created_at DESC`)
}

// RegisterChurch inserts the church and its admin user in one transaction.
// Either both rows exist afterwards or neither does.
func (r *PgxChurchRepository) RegisterChurch(ctx context.Context, church domain.Church, admin domain.User) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = r.Rollback(ctx, tx)
	}()

	churchQuery := `
		INSERT INTO churches (
			church_id, name, slug, cnpj, city, state, address, phone, pastor,
			admin_name, admin_email, plan, is_active,
			created_at, created_by, last_updated_at, last_updated_by, version
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18);
	`
	_, err = tx.Exec(ctx, churchQuery,
		church.ChurchID,
		church.Name,
		church.Slug,
		church.CNPJ,
		church.City,
		church.State,
		church.Address,
		church.Phone,
		church.Pastor,
		church.AdminName,
		church.AdminEmail,
		church.Plan,
		church.IsActive,
		church.CreatedAt,
		church.CreatedBy,
		church.LastUpdatedAt,
		church.LastUpdatedBy,
		church.Version,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return apperrors.NewConflictError("church slug " + church.Slug + " already exists")
		}
		return fmt.Errorf("failed to insert church: %w", err)
	}

	userQuery := `
		INSERT INTO users (
			user_id, church_id, name, email, password_hash, role, is_active,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err = tx.Exec(ctx, userQuery,
		admin.UserID,
		admin.ChurchID,
		admin.Name,
		admin.Email,
		admin.PasswordHash,
		admin.Role,
		admin.IsActive,
		admin.CreatedAt,
		admin.CreatedBy,
		admin.LastUpdatedAt,
		admin.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.NewConflictError("email " + admin.Email + " already registered")
		}
		return fmt.Errorf("failed to insert church admin: %w", err)
	}

	return r.Commit(ctx, tx)
}

// UpdateChurchStatus flips the active flag with an optimistic version check.
func (r *PgxChurchRepository) UpdateChurchStatus(ctx context.Context, church *domain.Church, isActive bool, updatedByUserID string) error {
	query := `
		UPDATE churches
		SET is_active = $1, last_updated_at = NOW(), last_updated_by = $2, version = version + 1
		WHERE church_id = $3 AND version = $4;
	`
	tag, err := r.Pool.Exec(ctx, query, isActive, updatedByUserID, church.ChurchID, church.Version)
	if err != nil {
		return fmt.Errorf("failed to update church status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewConflictError("church " + church.ChurchID + " was modified concurrently")
	}
	return nil
}

// DeleteChurchCascade removes a church and every row scoped to it, children
// first so foreign keys never dangle mid-transaction.
func (r *PgxChurchRepository) DeleteChurchCascade(ctx context.Context, churchID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = r.Rollback(ctx, tx)
	}()

	deletes := []string{
		`DELETE FROM attendance_records WHERE church_id = $1`,
		`DELETE FROM attendance_sessions WHERE church_id = $1`,
		`DELETE FROM visitors WHERE church_id = $1`,
		`DELETE FROM financial_transactions WHERE church_id = $1`,
		`DELETE FROM financial_categories WHERE church_id = $1`,
		`DELETE FROM members WHERE church_id = $1`,
		`DELETE FROM rooms WHERE church_id = $1`,
		`DELETE FROM role_permissions WHERE church_id = $1`,
		`DELETE FROM users WHERE church_id = $1`,
		`DELETE FROM churches WHERE church_id = $1`,
	}
	for _, stmt := range deletes {
		if _, err := tx.Exec(ctx, stmt, churchID); err != nil {
			return fmt.Errorf("failed to cascade-delete church data: %w", err)
		}
	}

	return r.Commit(ctx, tx)
}
