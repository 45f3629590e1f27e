package domain_test

import (
	"testing"

	"github.com/arvindkm/bankledger/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTransaction_SignedAmount(t *testing.T) {
	amount := decimal.NewFromInt(25)

	tests := []struct {
		name    string
		txnType domain.TransactionType
		want    decimal.Decimal
		wantErr bool
	}{
		{name: "deposit is positive", txnType: domain.Deposit, want: amount},
		{name: "transfer in is positive", txnType: domain.TransferIn, want: amount},
		{name: "withdrawal is negative", txnType: domain.Withdrawal, want: amount.Neg()},
		{name: "transfer out is negative", txnType: domain.TransferOut, want: amount.Neg()},
		{name: "unknown type errors", txnType: domain.TransactionType("Fee"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txn := domain.Transaction{TransactionID: "txn-1", Type: tt.txnType, Amount: amount}
			got, err := txn.SignedAmount()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestTransaction_IsDebit(t *testing.T) {
	assert.False(t, domain.Transaction{Type: domain.Deposit}.IsDebit())
	assert.False(t, domain.Transaction{Type: domain.TransferIn}.IsDebit())
	assert.True(t, domain.Transaction{Type: domain.Withdrawal}.IsDebit())
	assert.True(t, domain.Transaction{Type: domain.TransferOut}.IsDebit())
}

func TestAccountType_IsValid(t *testing.T) {
	assert.True(t, domain.Savings.IsValid())
	assert.True(t, domain.Current.IsValid())
	assert.False(t, domain.AccountType("Checking").IsValid())
	assert.False(t, domain.AccountType("").IsValid())
}
