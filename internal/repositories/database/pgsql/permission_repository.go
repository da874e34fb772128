package pgsql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/igrejaapp/igreja_backend/internal/apperrors"
	"github.com/igrejaapp/igreja_backend/internal/core/domain"
	portsrepo "github.com/igrejaapp/igreja_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxPermissionRepository struct {
	BaseRepository
}

// newPgxPermissionRepository creates a new repository for permission matrix rows.
func newPgxPermissionRepository(pool *pgxpool.Pool) portsrepo.PermissionRepositoryFacade {
	return &PgxPermissionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxPermissionRepository implements portsrepo.PermissionRepositoryFacade
var _ portsrepo.PermissionRepositoryFacade = (*PgxPermissionRepository)(nil)

// FindMatrixByChurchID loads every stored row for a church. Module flags are
// stored as a JSONB object keyed by module name.
func (r *PgxPermissionRepository) FindMatrixByChurchID(ctx context.Context, churchID string) (domain.PermissionMatrix, error) {
	query := `
		SELECT role, modules
		FROM role_permissions
		WHERE church_id = $1;
	`
	rows, err := r.Pool.Query(ctx, query, churchID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query role permissions", err)
	}
	defer rows.Close()

	matrix := domain.PermissionMatrix{}
	for rows.Next() {
		var role string
		var modulesJSON []byte
		if err := rows.Scan(&role, &modulesJSON); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan role permission row", err)
		}

		var flags domain.ModuleFlags
		if err := json.Unmarshal(modulesJSON, &flags); err != nil {
			return nil, fmt.Errorf("failed to decode module flags for role %s: %w", role, err)
		}
		matrix[domain.UserRole(role)] = flags
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to read role permission rows", err)
	}

	return matrix, nil
}

// UpsertRolePermission writes the full replacement flags for one (church, role) row.
func (r *PgxPermissionRepository) UpsertRolePermission(ctx context.Context, perm domain.RolePermission) error {
	modulesJSON, err := json.Marshal(perm.Modules)
	if err != nil {
		return fmt.Errorf("failed to encode module flags: %w", err)
	}

	query := `
		INSERT INTO role_permissions (
			church_id, role, modules,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (church_id, role) DO UPDATE SET
			modules = EXCLUDED.modules,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err = r.Pool.Exec(ctx, query,
		perm.ChurchID,
		perm.Role,
		modulesJSON,
		perm.CreatedAt,
		perm.CreatedBy,
		perm.LastUpdatedAt,
		perm.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert role permission: %w", err)
	}
	return nil
}
