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

type PgxFinancialRepository struct {
	BaseRepository
}

// newPgxFinancialRepository creates a new repository for financial data.
func newPgxFinancialRepository(pool *pgxpool.Pool) portsrepo.FinancialRepositoryFacade {
	return &PgxFinancialRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxFinancialRepository implements portsrepo.FinancialRepositoryFacade
var _ portsrepo.FinancialRepositoryFacade = (*PgxFinancialRepository)(nil)

var FULL_TRANSACTION_SELECT_QUERY = `
SELECT
	t.transaction_id, t.church_id, t.member_id, t.member_name, t.type,
	t.category, t.description, t.amount, t.transaction_date,
	t.created_at, t.created_by, t.last_updated_at, t.last_updated_by
FROM financial_transactions t
`

// ListTransactionsByChurchID pages newest first on (transaction_date, created_at).
func (r *PgxFinancialRepository) ListTransactionsByChurchID(ctx context.Context, churchID string, filter portsrepo.TransactionListFilter) ([]domain.FinancialTransaction, error) {
	query := FULL_TRANSACTION_SELECT_QUERY + ` WHERE t.church_id = $1`
	args := []any{churchID}

	if filter.CursorDate != nil && filter.CursorCreatedAt != nil {
		query += fmt.Sprintf(` AND (t.transaction_date, t.created_at) < ($%d, $%d)`, len(args)+1, len(args)+2)
		args = append(args, *filter.CursorDate, *filter.CursorCreatedAt)
	}
	if filter.Type != nil {
		query += fmt.Sprintf(` AND t.type = $%d`, len(args)+1)
		args = append(args, *filter.Type)
	}
	if filter.FromDate != nil {
		query += fmt.Sprintf(` AND t.transaction_date >= $%d`, len(args)+1)
		args = append(args, *filter.FromDate)
	}
	if filter.ToDate != nil {
		query += fmt.Sprintf(` AND t.transaction_date <= $%d`, len(args)+1)
		args = append(args, *filter.ToDate)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	query += fmt.Sprintf(` ORDER BY t.transaction_date DESC, t.created_at DESC LIMIT $%d`, len(args)+1)
	args = append(args, limit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query transactions", err)
	}
	defer rows.Close()
	txns, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.FinancialTransaction])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.FinancialTransaction{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect transaction rows", err)
	}
	return txns, nil
}

func (r *PgxFinancialRepository) ListCategoriesByChurchID(ctx context.Context, churchID string) ([]domain.FinancialCategory, error) {
	query := `
		SELECT category_id, church_id, name, type,
			created_at, created_by, last_updated_at, last_updated_by
		FROM financial_categories
		WHERE church_id = $1
		ORDER BY type, name;
	`
	rows, err := r.Pool.Query(ctx, query, churchID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query categories", err)
	}
	defer rows.Close()
	categories, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.FinancialCategory])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.FinancialCategory{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect category rows", err)
	}
	return categories, nil
}

func (r *PgxFinancialRepository) SaveTransaction(ctx context.Context, txn domain.FinancialTransaction) error {
	query := `
		INSERT INTO financial_transactions (
			transaction_id, church_id, member_id, member_name, type, category,
			description, amount, transaction_date,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.Pool.Exec(ctx, query,
		txn.TransactionID,
		txn.ChurchID,
		txn.MemberID,
		txn.MemberName,
		txn.Type,
		txn.Category,
		txn.Description,
		txn.Amount,
		txn.TransactionDate,
		txn.CreatedAt,
		txn.CreatedBy,
		txn.LastUpdatedAt,
		txn.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return apperrors.NewValidationFailedError("member does not exist", err)
		}
		return fmt.Errorf("failed to save transaction: %w", err)
	}
	return nil
}

func (r *PgxFinancialRepository) SaveCategory(ctx context.Context, category domain.FinancialCategory) error {
	query := `
		INSERT INTO financial_categories (
			category_id, church_id, name, type,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		category.CategoryID,
		category.ChurchID,
		category.Name,
		category.Type,
		category.CreatedAt,
		category.CreatedBy,
		category.LastUpdatedAt,
		category.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return apperrors.NewConflictError("category " + category.Name + " already exists")
		}
		return fmt.Errorf("failed to save category: %w", err)
	}
	return nil
}
