package repositories

import (
	"context"
	"time"

	"github.com/igrejaapp/igreja_backend/internal/core/domain"
)

// TransactionListFilter narrows a financial transaction listing. The cursor
// fields implement keyset pagination on (transaction_date, created_at) desc.
type TransactionListFilter struct {
	Limit            int
	CursorDate       *time.Time
	CursorCreatedAt  *time.Time
	Type             *domain.TransactionType
	FromDate, ToDate *time.Time
}

// FinancialReader defines read operations for financial data.
type FinancialReader interface {
	// ListTransactionsByChurchID retrieves a page of a church's transactions,
	// newest first.
	ListTransactionsByChurchID(ctx context.Context, churchID string, filter TransactionListFilter) ([]domain.FinancialTransaction, error)

	// ListCategoriesByChurchID retrieves a church's transaction categories.
	ListCategoriesByChurchID(ctx context.Context, churchID string) ([]domain.FinancialCategory, error)
}

// FinancialWriter defines write operations for financial data.
type FinancialWriter interface {
	// SaveTransaction persists a financial transaction.
	SaveTransaction(ctx context.Context, txn domain.FinancialTransaction) error

	// SaveCategory persists a transaction category.
	SaveCategory(ctx context.Context, category domain.FinancialCategory) error
}

// FinancialRepositoryFacade combines all financial repository interfaces.
type FinancialRepositoryFacade interface {
	FinancialReader
	FinancialWriter
}
