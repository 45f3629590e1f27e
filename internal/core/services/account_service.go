package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/arvindkm/bankledger/internal/apperrors"
	"github.com/arvindkm/bankledger/internal/core/domain"
	portsrepo "github.com/arvindkm/bankledger/internal/core/ports/repositories"
	portssvc "github.com/arvindkm/bankledger/internal/core/ports/services"
	"github.com/arvindkm/bankledger/internal/platform/logging"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AccountService struct {
	accountRepo  portsrepo.AccountRepository
	customerRepo portsrepo.CustomerRepository
}

func NewAccountService(accountRepo portsrepo.AccountRepository, customerRepo portsrepo.CustomerRepository) *AccountService {
	return &AccountService{
		accountRepo:  accountRepo,
		customerRepo: customerRepo,
	}
}

// Ensure AccountService implements portssvc.AccountService
var _ portssvc.AccountService = (*AccountService)(nil)

// OpenAccount verifies the owning customer exists before inserting. Opening
// an account against an unknown customer is rejected with ErrNotFound rather
// than tolerated as a dangling reference.
func (s *AccountService) OpenAccount(ctx context.Context, customerID string, accountType domain.AccountType) (*domain.Account, error) {
	logger := logging.GetLoggerFromCtx(ctx)

	if !accountType.IsValid() {
		return nil, fmt.Errorf("unknown account type %q: %w", accountType, apperrors.ErrValidation)
	}

	if _, err := s.customerRepo.FindCustomerByID(ctx, customerID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to verify customer before opening account", slog.String("error", err.Error()), slog.String("customer_id", customerID))
		}
		return nil, err
	}

	account := domain.Account{
		AccountID:   uuid.NewString(),
		CustomerID:  customerID,
		AccountType: accountType,
		Balance:     decimal.Zero,
		CreatedDate: time.Now(),
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		logger.Error("Failed to save account in repository", slog.String("error", err.Error()), slog.String("account_id", account.AccountID))
		return nil, err
	}

	logger.Info("Account opened", slog.String("account_id", account.AccountID), slog.String("customer_id", customerID))
	return &account, nil
}

func (s *AccountService) ListAccounts(ctx context.Context) ([]domain.AccountSummary, error) {
	logger := logging.GetLoggerFromCtx(ctx)

	summaries, err := s.accountRepo.ListAccountSummaries(ctx)
	if err != nil {
		logger.Error("Failed to list accounts from repository", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	if summaries == nil {
		return []domain.AccountSummary{}, nil
	}
	return summaries, nil
}

func (s *AccountService) GetBalance(ctx context.Context, accountID string) (decimal.Decimal, error) {
	logger := logging.GetLoggerFromCtx(ctx)

	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find account by ID in repository", slog.String("error", err.Error()), slog.String("account_id", accountID))
		}
		return decimal.Zero, err
	}
	return account.Balance, nil
}

func (s *AccountService) CloseAccount(ctx context.Context, accountID string) error {
	logger := logging.GetLoggerFromCtx(ctx)

	if err := s.accountRepo.DeleteAccountWithTransactions(ctx, accountID); err != nil {
		logger.Error("Failed to close account in repository", slog.String("error", err.Error()), slog.String("account_id", accountID))
		return err
	}

	logger.Info("Account closed", slog.String("account_id", accountID))
	return nil
}

func (s *AccountService) SearchAccountsByCustomerName(ctx context.Context, nameSubstring string) ([]domain.AccountSummary, error) {
	logger := logging.GetLoggerFromCtx(ctx)

	summaries, err := s.accountRepo.SearchAccountSummariesByCustomerName(ctx, nameSubstring)
	if err != nil {
		logger.Error("Failed to search accounts by customer name", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to search accounts: %w", err)
	}
	if summaries == nil {
		return []domain.AccountSummary{}, nil
	}
	return summaries, nil
}
