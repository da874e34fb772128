package services

import (
	"context"

	"github.com/igrejaapp/igreja_backend/internal/core/domain"
	"github.com/igrejaapp/igreja_backend/internal/dto"
	portsrepo "github.com/igrejaapp/igreja_backend/internal/core/ports/repositories"
)

// FinancialSvcFacade manages financial transactions and categories.
type FinancialSvcFacade interface {
	// CreateTransaction persists a money movement.
	CreateTransaction(ctx context.Context, churchID string, req dto.CreateTransactionRequest, creatorUserID string) (*domain.FinancialTransaction, error)

	// ListTransactions retrieves a page of a church's transactions using keyset
	// pagination, newest first.
	ListTransactions(ctx context.Context, churchID string, filter portsrepo.TransactionListFilter) ([]domain.FinancialTransaction, string, error)

	// CreateCategory persists a transaction category.
	CreateCategory(ctx context.Context, churchID string, req dto.CreateCategoryRequest, creatorUserID string) (*domain.FinancialCategory, error)

	// ListCategories retrieves a church's categories.
	ListCategories(ctx context.Context, churchID string) ([]domain.FinancialCategory, error)
}
