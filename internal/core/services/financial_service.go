package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/igrejaapp/igreja_backend/internal/apperrors"
	"github.com/igrejaapp/igreja_backend/internal/core/domain"
	portsrepo "github.com/igrejaapp/igreja_backend/internal/core/ports/repositories"
	portssvc "github.com/igrejaapp/igreja_backend/internal/core/ports/services"
	"github.com/igrejaapp/igreja_backend/internal/dto"
	"github.com/igrejaapp/igreja_backend/internal/utils/pagination"
)

// financialService implements the FinancialSvcFacade interface
type financialService struct {
	BaseService
	financialRepo portsrepo.FinancialRepositoryFacade
	memberRepo    portsrepo.MemberReader
}

// NewFinancialService creates a new financial service with the provided dependencies
func NewFinancialService(financialRepo portsrepo.FinancialRepositoryFacade, memberRepo portsrepo.MemberReader) portssvc.FinancialSvcFacade {
	return &financialService{
		financialRepo: financialRepo,
		memberRepo:    memberRepo,
	}
}

var _ portssvc.FinancialSvcFacade = (*financialService)(nil)

// CreateTransaction persists a money movement. The member name, when a member
// is attributed, is denormalized onto the row for report rendering.
func (s *financialService) CreateTransaction(ctx context.Context, churchID string, req dto.CreateTransactionRequest, creatorUserID string) (*domain.FinancialTransaction, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, apperrors.NewValidationFailedError("amount must be positive", nil)
	}

	txnDate, err := time.Parse(dto.DateLayout, req.TransactionDate)
	if err != nil {
		return nil, apperrors.NewValidationFailedError("invalid transaction date", err)
	}

	now := time.Now()
	txn := domain.FinancialTransaction{
		TransactionID:   uuid.NewString(),
		ChurchID:        churchID,
		Type:            domain.TransactionType(req.Type),
		Category:        req.Category,
		Description:     req.Description,
		Amount:          req.Amount,
		TransactionDate: txnDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if req.MemberID != nil && *req.MemberID != "" {
		member, err := s.memberRepo.FindMemberByID(ctx, *req.MemberID)
		if err != nil {
			return nil, apperrors.NewValidationFailedError("member does not exist", err)
		}
		if member.ChurchID != churchID {
			return nil, apperrors.NewValidationFailedError("member does not exist", nil)
		}
		txn.MemberID = &member.MemberID
		txn.MemberName = &member.FullName
	}

	if err := s.financialRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction",
			slog.String("church_id", churchID))
		return nil, err
	}

	s.LogInfo(ctx, "Transaction recorded",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("type", string(txn.Type)))
	return &txn, nil
}

// ListTransactions pages the ledger newest first and returns the cursor for
// the next page, empty when the page was short.
func (s *financialService) ListTransactions(ctx context.Context, churchID string, filter portsrepo.TransactionListFilter) ([]domain.FinancialTransaction, string, error) {
	if filter.Limit <= 0 {
		filter.Limit = 50
	}

	txns, err := s.financialRepo.ListTransactionsByChurchID(ctx, churchID, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions",
			slog.String("church_id", churchID))
		return nil, "", err
	}
	if txns == nil {
		return []domain.FinancialTransaction{}, "", nil
	}

	nextToken := ""
	if len(txns) == filter.Limit {
		last := txns[len(txns)-1]
		nextToken = pagination.EncodeToken(last.TransactionDate, last.CreatedAt)
	}
	return txns, nextToken, nil
}

func (s *financialService) CreateCategory(ctx context.Context, churchID string, req dto.CreateCategoryRequest, creatorUserID string) (*domain.FinancialCategory, error) {
	now := time.Now()
	category := domain.FinancialCategory{
		CategoryID: uuid.NewString(),
		ChurchID:   churchID,
		Name:       req.Name,
		Type:       domain.TransactionType(req.Type),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.financialRepo.SaveCategory(ctx, category); err != nil {
		s.LogError(ctx, err, "Failed to save category",
			slog.String("church_id", churchID))
		return nil, err
	}
	return &category, nil
}

func (s *financialService) ListCategories(ctx context.Context, churchID string) ([]domain.FinancialCategory, error) {
	categories, err := s.financialRepo.ListCategoriesByChurchID(ctx, churchID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list categories",
			slog.String("church_id", churchID))
		return nil, err
	}
	if categories == nil {
		return []domain.FinancialCategory{}, nil
	}
	return categories, nil
}
