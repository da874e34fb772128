package domain_test

import (
	"testing"

	"github.com/igrejaapp/igreja_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFinancialTransaction_SignedAmount(t *testing.T) {
	tests := []struct {
		name        string
		transaction domain.FinancialTransaction
		want        decimal.Decimal
	}{
		{
			name: "income keeps its sign",
			transaction: domain.FinancialTransaction{
				Type:   domain.TransactionIncome,
				Amount: decimal.NewFromFloat(150.50),
			},
			want: decimal.NewFromFloat(150.50),
		},
		{
			name: "expense is negated",
			transaction: domain.FinancialTransaction{
				Type:   domain.TransactionExpense,
				Amount: decimal.NewFromFloat(99.90),
			},
			want: decimal.NewFromFloat(-99.90),
		},
		{
			name: "zero amount",
			transaction: domain.FinancialTransaction{
				Type:   domain.TransactionExpense,
				Amount: decimal.Zero,
			},
			want: decimal.Zero,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.want.Equal(tt.transaction.SignedAmount()),
				"want %s got %s", tt.want, tt.transaction.SignedAmount())
		})
	}
}
