package repositories

import (
	"context"

	"github.com/arvindkm/bankledger/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// AccountRepository defines persistence operations for accounts.
type AccountRepository interface {
	// SaveAccount inserts a new account.
	SaveAccount(ctx context.Context, account domain.Account) error

	// FindAccountByID returns the account or apperrors.ErrNotFound.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// ListAccountSummaries returns every account joined with its customer's
	// name. Accounts whose customer was deleted are excluded by the join.
	ListAccountSummaries(ctx context.Context) ([]domain.AccountSummary, error)

	// SearchAccountSummariesByCustomerName returns summaries for accounts whose
	// customer name contains the given substring (case-insensitive).
	SearchAccountSummariesByCustomerName(ctx context.Context, nameSubstring string) ([]domain.AccountSummary, error)

	// DeleteAccountWithTransactions removes the account row and every
	// transaction row referencing it as one atomic unit. Deleting an account
	// that does not exist is a no-op.
	DeleteAccountWithTransactions(ctx context.Context, accountID string) error
}

// AccountTxOps are account operations that run inside a caller-owned database
// transaction. The ledger repository uses them while posting.
type AccountTxOps interface {
	// FindAccountsByIDsForUpdate locks the given accounts and returns them
	// keyed by ID. Returns apperrors.ErrNotFound if any account is missing.
	FindAccountsByIDsForUpdate(ctx context.Context, tx pgx.Tx, accountIDs []string) (map[string]domain.Account, error)

	// UpdateAccountBalancesInTx applies the given signed balance changes.
	UpdateAccountBalancesInTx(ctx context.Context, tx pgx.Tx, balanceChanges map[string]decimal.Decimal) error
}

// AccountRepositoryFacade combines the plain account operations with the
// in-transaction ones.
type AccountRepositoryFacade interface {
	AccountRepository
	AccountTxOps
}
