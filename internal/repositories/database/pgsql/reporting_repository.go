package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/igrejaapp/igreja_backend/internal/apperrors"
	"github.com/igrejaapp/igreja_backend/internal/core/domain"
	portsrepo "github.com/igrejaapp/igreja_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxReportingRepository struct {
	BaseRepository
}

// newPgxReportingRepository creates a new repository for report aggregations.
func newPgxReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepositoryFacade {
	return &PgxReportingRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxReportingRepository implements portsrepo.ReportingRepositoryFacade
var _ portsrepo.ReportingRepositoryFacade = (*PgxReportingRepository)(nil)

// GetFinancialSummary aggregates a church's transactions in [from, to]: totals,
// per-category breakdowns and a per-month series. All sums stay in numeric and
// decode into decimal.Decimal; no float arithmetic touches the amounts.
func (r *PgxReportingRepository) GetFinancialSummary(ctx context.Context, churchID string, from, to time.Time) (*domain.FinancialSummary, error) {
	summary := &domain.FinancialSummary{
		TotalIncome:       decimal.Zero,
		TotalExpense:      decimal.Zero,
		Balance:           decimal.Zero,
		IncomeByCategory:  []domain.CategoryAmount{},
		ExpenseByCategory: []domain.CategoryAmount{},
		MonthlyData:       []domain.MonthlyFinancial{},
	}

	totalsQuery := `
		SELECT
			COALESCE(SUM(amount) FILTER (WHERE type = 'entrada'), 0) AS total_income,
			COALESCE(SUM(amount) FILTER (WHERE type = 'saida'), 0) AS total_expense
		FROM financial_transactions
		WHERE church_id = $1 AND transaction_date BETWEEN $2 AND $3;
	`
	err := r.Pool.QueryRow(ctx, totalsQuery, churchID, from, to).Scan(&summary.TotalIncome, &summary.TotalExpense)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to aggregate transaction totals", err)
	}
	summary.Balance = summary.TotalIncome.Sub(summary.TotalExpense)

	categoryQuery := `
		SELECT type, category, SUM(amount) AS amount
		FROM financial_transactions
		WHERE church_id = $1 AND transaction_date BETWEEN $2 AND $3
		GROUP BY type, category
		ORDER BY amount DESC;
	`
	rows, err := r.Pool.Query(ctx, categoryQuery, churchID, from, to)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to aggregate by category", err)
	}
	defer rows.Close()
	for rows.Next() {
		var txnType string
		var bucket domain.CategoryAmount
		if err := rows.Scan(&txnType, &bucket.Category, &bucket.Amount); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan category bucket", err)
		}
		if txnType == string(domain.TransactionIncome) {
			summary.IncomeByCategory = append(summary.IncomeByCategory, bucket)
		} else {
			summary.ExpenseByCategory = append(summary.ExpenseByCategory, bucket)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to read category buckets", err)
	}

	monthlyQuery := `
		SELECT
			TO_CHAR(transaction_date, 'YYYY-MM') AS month,
			COALESCE(SUM(amount) FILTER (WHERE type = 'entrada'), 0) AS income,
			COALESCE(SUM(amount) FILTER (WHERE type = 'saida'), 0) AS expense
		FROM financial_transactions
		WHERE church_id = $1 AND transaction_date BETWEEN $2 AND $3
		GROUP BY 1
		ORDER BY 1;
	`
	monthRows, err := r.Pool.Query(ctx, monthlyQuery, churchID, from, to)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to aggregate monthly financials", err)
	}
	defer monthRows.Close()
	for monthRows.Next() {
		var bucket domain.MonthlyFinancial
		if err := monthRows.Scan(&bucket.Month, &bucket.Income, &bucket.Expense); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan monthly bucket", err)
		}
		summary.MonthlyData = append(summary.MonthlyData, bucket)
	}
	if err := monthRows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to read monthly buckets", err)
	}

	return summary, nil
}

// GetMonthlyAttendance aggregates session totals per calendar month over the
// last months.
func (r *PgxReportingRepository) GetMonthlyAttendance(ctx context.Context, churchID string, months int) ([]domain.MonthlyAttendance, error) {
	query := `
		SELECT
			TO_CHAR(session_date, 'YYYY-MM') AS month,
			COALESCE(SUM(total_present), 0) AS present,
			COALESCE(SUM(total_absent), 0) AS absent
		FROM attendance_sessions
		WHERE church_id = $1
			AND session_date >= DATE_TRUNC('month', NOW()) - ($2 || ' months')::interval
		GROUP BY 1
		ORDER BY 1;
	`
	rows, err := r.Pool.Query(ctx, query, churchID, fmt.Sprintf("%d", months))
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to aggregate monthly attendance", err)
	}
	defer rows.Close()

	data := []domain.MonthlyAttendance{}
	for rows.Next() {
		var bucket domain.MonthlyAttendance
		if err := rows.Scan(&bucket.Month, &bucket.Present, &bucket.Absent); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan monthly attendance", err)
		}
		data = append(data, bucket)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to read monthly attendance", err)
	}
	return data, nil
}

// GetRoomAttendance aggregates session totals per room.
func (r *PgxReportingRepository) GetRoomAttendance(ctx context.Context, churchID string) ([]domain.RoomAttendance, error) {
	query := `
		SELECT
			room_name AS room,
			COALESCE(SUM(total_present), 0) AS present,
			COALESCE(SUM(total_absent), 0) AS absent
		FROM attendance_sessions
		WHERE church_id = $1
		GROUP BY room_name
		ORDER BY room_name;
	`
	rows, err := r.Pool.Query(ctx, query, churchID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to aggregate room attendance", err)
	}
	defer rows.Close()

	data := []domain.RoomAttendance{}
	for rows.Next() {
		var bucket domain.RoomAttendance
		if err := rows.Scan(&bucket.Room, &bucket.Present, &bucket.Absent); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan room attendance", err)
		}
		data = append(data, bucket)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to read room attendance", err)
	}
	return data, nil
}
