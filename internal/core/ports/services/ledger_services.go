package services

import (
	"context"

	"github.com/arvindkm/bankledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerService posts money movements and produces statements.
type LedgerService interface {
	// Deposit credits the account and records a Deposit transaction.
	// Returns apperrors.ErrInvalidAmount for amount <= 0.
	Deposit(ctx context.Context, accountID string, amount decimal.Decimal) error

	// Withdraw debits the account and records a Withdrawal transaction.
	// Returns apperrors.ErrInvalidAmount for amount <= 0 and
	// apperrors.ErrInsufficientFunds when amount exceeds the balance.
	Withdraw(ctx context.Context, accountID string, amount decimal.Decimal) error

	// Transfer moves amount between two existing accounts, recording a
	// Transfer Out on the sender and a Transfer In on the receiver. All four
	// writes happen atomically or not at all.
	Transfer(ctx context.Context, fromAccountID, toAccountID string, amount decimal.Decimal) error

	// TransactionHistory returns the account's transactions newest first.
	TransactionHistory(ctx context.Context, accountID string) ([]domain.Transaction, error)

	// MonthlyStatement returns the account's transactions for the given
	// "YYYY-MM" month, oldest first. Returns apperrors.ErrValidation for a
	// malformed period.
	MonthlyStatement(ctx context.Context, accountID, yearMonth string) ([]domain.Transaction, error)
}
