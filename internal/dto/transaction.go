package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/igrejaapp/igreja_backend/internal/core/domain"
)

// CreateTransactionRequest records a money movement for a church.
type CreateTransactionRequest struct {
	Type            string          `json:"type" binding:"required,oneof=entrada saida"`
	Category        string          `json:"category" binding:"required,min=2,max=80"`
	Description     string          `json:"description" binding:"max=200"`
	Amount          decimal.Decimal `json:"amount" binding:"required"`
	TransactionDate string          `json:"transactionDate" binding:"required,datetime=2006-01-02"`
	MemberID        *string         `json:"memberID"`
}

// UpdateTransactionRequest patches a transaction. Nil fields are left unchanged.
type UpdateTransactionRequest struct {
	Category        *string          `json:"category" binding:"omitempty,min=2,max=80"`
	Description     *string          `json:"description" binding:"omitempty,max=200"`
	Amount          *decimal.Decimal `json:"amount"`
	TransactionDate *string          `json:"transactionDate" binding:"omitempty,datetime=2006-01-02"`
	MemberID        *string          `json:"memberID"`
}

// ListTransactionsParams pages the ledger with a keyset cursor token.
type ListTransactionsParams struct {
	Limit     int    `form:"limit,default=50" binding:"min=1,max=200"`
	NextToken string `form:"nextToken"`
	Type      string `form:"type" binding:"omitempty,oneof=entrada saida"`
	FromDate  string `form:"fromDate" binding:"omitempty,datetime=2006-01-02"`
	ToDate    string `form:"toDate" binding:"omitempty,datetime=2006-01-02"`
}

// TransactionResponse is the API shape for a transaction.
type TransactionResponse struct {
	TransactionID   string          `json:"transactionID"`
	ChurchID        string          `json:"churchID"`
	MemberID        *string         `json:"memberID,omitempty"`
	MemberName      *string         `json:"memberName,omitempty"`
	Type            string          `json:"type"`
	Category        string          `json:"category"`
	Description     string          `json:"description,omitempty"`
	Amount          decimal.Decimal `json:"amount"`
	TransactionDate time.Time       `json:"transactionDate"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// ListTransactionsResponse is a page of transactions plus the cursor for the next.
type ListTransactionsResponse struct {
	Items     []TransactionResponse `json:"items"`
	NextToken string                `json:"nextToken,omitempty"`
}

// ToTransactionResponse converts a domain.FinancialTransaction to DTO.
func ToTransactionResponse(t *domain.FinancialTransaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:   t.TransactionID,
		ChurchID:        t.ChurchID,
		MemberID:        t.MemberID,
		MemberName:      t.MemberName,
		Type:            string(t.Type),
		Category:        t.Category,
		Description:     t.Description,
		Amount:          t.Amount,
		TransactionDate: t.TransactionDate,
		CreatedAt:       t.CreatedAt,
	}
}

// ToListTransactionsResponse converts a page of transactions to DTO.
func ToListTransactionsResponse(txns []domain.FinancialTransaction, nextToken string) ListTransactionsResponse {
	items := make([]TransactionResponse, len(txns))
	for i, t := range txns {
		items[i] = ToTransactionResponse(&t)
	}
	return ListTransactionsResponse{Items: items, NextToken: nextToken}
}

// CreateCategoryRequest defines a church-level transaction category.
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,min=2,max=80"`
	Type string `json:"type" binding:"required,oneof=entrada saida"`
}

// CategoryResponse is the API shape for a financial category.
type CategoryResponse struct {
	CategoryID string `json:"categoryID"`
	ChurchID   string `json:"churchID"`
	Name       string `json:"name"`
	Type       string `json:"type"`
}

// ToCategoryResponse converts a domain.FinancialCategory to DTO.
func ToCategoryResponse(c *domain.FinancialCategory) CategoryResponse {
	return CategoryResponse{
		CategoryID: c.CategoryID,
		ChurchID:   c.ChurchID,
		Name:       c.Name,
		Type:       string(c.Type),
	}
}

// ToListCategoriesResponse converts a slice of categories to DTOs.
func ToListCategoriesResponse(categories []domain.FinancialCategory) []CategoryResponse {
	resp := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		resp[i] = ToCategoryResponse(&c)
	}
	return resp
}
