package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType distinguishes income from expense.
type TransactionType string

const (
	TransactionIncome  TransactionType = "entrada"
	TransactionExpense TransactionType = "saida"
)

// FinancialTransaction is a single money movement scoped by church, optionally
// attributed to a member (tithes, offerings).
type FinancialTransaction struct {
	TransactionID   string          `json:"transactionID" db:"transaction_id"`
	ChurchID        string          `json:"churchID" db:"church_id"`
	MemberID        *string         `json:"memberID,omitempty" db:"member_id"`
	MemberName      *string         `json:"memberName,omitempty" db:"member_name"`
	Type            TransactionType `json:"type" db:"type"`
	Category        string          `json:"category" db:"category"`
	Description     string          `json:"description" db:"description"`
	Amount          decimal.Decimal `json:"amount" db:"amount"`
	TransactionDate time.Time       `json:"transactionDate" db:"transaction_date"`
	AuditFields
}

// IsIncome reports whether the transaction adds to the balance.
func (t *FinancialTransaction) IsIncome() bool {
	return t.Type == TransactionIncome
}

// SignedAmount returns the amount negated for expenses, for balance arithmetic.
func (t *FinancialTransaction) SignedAmount() decimal.Decimal {
	if t.IsIncome() {
		return t.Amount
	}
	return t.Amount.Neg()
}

// FinancialCategory is a church-defined label for classifying transactions.
type FinancialCategory struct {
	CategoryID string          `json:"categoryID" db:"category_id"`
	ChurchID   string          `json:"churchID" db:"church_id"`
	Name       string          `json:"name" db:"name"`
	Type       TransactionType `json:"type" db:"type"`
	AuditFields
}

// CategoryAmount is a report bucket: total per category.
type CategoryAmount struct {
	Category string          `json:"category" db:"category"`
	Amount   decimal.Decimal `json:"amount" db:"amount"`
}

// MonthlyFinancial is a report bucket: income and expense per calendar month.
type MonthlyFinancial struct {
	Month   string          `json:"month" db:"month"`
	Income  decimal.Decimal `json:"income" db:"income"`
	Expense decimal.Decimal `json:"expense" db:"expense"`
}

// FinancialSummary aggregates a church's transactions for the reports module.
type FinancialSummary struct {
	TotalIncome       decimal.Decimal  `json:"totalIncome"`
	TotalExpense      decimal.Decimal  `json:"totalExpense"`
	Balance           decimal.Decimal  `json:"balance"`
	IncomeByCategory  []CategoryAmount `json:"incomeByCategory"`
	ExpenseByCategory []CategoryAmount `json:"expenseByCategory"`
	MonthlyData       []MonthlyFinancial `json:"monthlyData"`
}
