package repositories

import (
	"context"
	"time"

	"github.com/arvindkm/bankledger/internal/core/domain"
)

// LedgerRepository posts transactions and reads them back.
type LedgerRepository interface {
	// PostEntries applies a set of postings as one atomic unit: it locks the
	// affected accounts, applies each entry's signed amount to its balance,
	// rejects any debit that would overdraw its account with
	// apperrors.ErrInsufficientFunds, and inserts the transaction rows.
	// Either every write commits or none do; a partially applied posting is
	// never observable. Returns apperrors.ErrNotFound before mutating
	// anything if any referenced account is missing.
	PostEntries(ctx context.Context, entries []domain.Transaction) error

	// FindTransactionsByAccountID returns the account's transactions ordered
	// newest first.
	FindTransactionsByAccountID(ctx context.Context, accountID string) ([]domain.Transaction, error)

	// FindTransactionsByAccountIDInRange returns the account's transactions
	// with from <= occurred_at < to, ordered oldest first.
	FindTransactionsByAccountIDInRange(ctx context.Context, accountID string, from, to time.Time) ([]domain.Transaction, error)
}
