package services

import (
	"context"

	"github.com/arvindkm/bankledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountService defines the account operations exposed to callers.
type AccountService interface {
	// OpenAccount creates an account with zero balance for an existing
	// customer. Returns apperrors.ErrNotFound for an unknown customer and
	// apperrors.ErrValidation for an unknown account type.
	OpenAccount(ctx context.Context, customerID string, accountType domain.AccountType) (*domain.Account, error)

	// ListAccounts returns every account joined with its customer's name.
	ListAccounts(ctx context.Context) ([]domain.AccountSummary, error)

	// GetBalance returns the account balance or apperrors.ErrNotFound.
	GetBalance(ctx context.Context, accountID string) (decimal.Decimal, error)

	// CloseAccount deletes the account and all of its transactions. Closing
	// an account that does not exist is a no-op.
	CloseAccount(ctx context.Context, accountID string) error

	// SearchAccountsByCustomerName returns summaries for accounts whose
	// customer name contains the substring (case-insensitive).
	SearchAccountsByCustomerName(ctx context.Context, nameSubstring string) ([]domain.AccountSummary, error)
}
