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

type LedgerService struct {
	ledgerRepo  portsrepo.LedgerRepository
	accountRepo portsrepo.AccountRepository
}

func NewLedgerService(ledgerRepo portsrepo.LedgerRepository, accountRepo portsrepo.AccountRepository) *LedgerService {
	return &LedgerService{
		ledgerRepo:  ledgerRepo,
		accountRepo: accountRepo,
	}
}

// Ensure LedgerService implements portssvc.LedgerService
var _ portssvc.LedgerService = (*LedgerService)(nil)

func validateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("got %s: %w", amount, apperrors.ErrInvalidAmount)
	}
	return nil
}

func (s *LedgerService) Deposit(ctx context.Context, accountID string, amount decimal.Decimal) error {
	logger := logging.GetLoggerFromCtx(ctx)

	if err := validateAmount(amount); err != nil {
		return err
	}

	entry := domain.Transaction{
		TransactionID: uuid.NewString(),
		AccountID:     accountID,
		Type:          domain.Deposit,
		Amount:        amount,
		OccurredAt:    time.Now(),
		Description:   "Deposit",
	}

	if err := s.ledgerRepo.PostEntries(ctx, []domain.Transaction{entry}); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to post deposit", slog.String("error", err.Error()), slog.String("account_id", accountID))
		}
		return err
	}

	logger.Info("Deposit posted", slog.String("account_id", accountID), slog.String("amount", amount.String()))
	return nil
}

func (s *LedgerService) Withdraw(ctx context.Context, accountID string, amount decimal.Decimal) error {
	logger := logging.GetLoggerFromCtx(ctx)

	if err := validateAmount(amount); err != nil {
		return err
	}

	entry := domain.Transaction{
		TransactionID: uuid.NewString(),
		AccountID:     accountID,
		Type:          domain.Withdrawal,
		Amount:        amount,
		OccurredAt:    time.Now(),
		Description:   "Withdrawal",
	}

	// The insufficient-funds check happens in the repository under the row
	// lock, so the balance read and the debit are a single atomic step.
	if err := s.ledgerRepo.PostEntries(ctx, []domain.Transaction{entry}); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrInsufficientFunds) {
			logger.Error("Failed to post withdrawal", slog.String("error", err.Error()), slog.String("account_id", accountID))
		}
		return err
	}

	logger.Info("Withdrawal posted", slog.String("account_id", accountID), slog.String("amount", amount.String()))
	return nil
}

// Transfer debits the sender and credits the receiver in one posting. Both
// accounts must exist before anything is written; a transfer can never credit
// a nonexistent account and leave an orphaned transaction row behind.
func (s *LedgerService) Transfer(ctx context.Context, fromAccountID, toAccountID string, amount decimal.Decimal) error {
	logger := logging.GetLoggerFromCtx(ctx)

	if err := validateAmount(amount); err != nil {
		return err
	}

	now := time.Now()
	entries := []domain.Transaction{
		{
			TransactionID: uuid.NewString(),
			AccountID:     fromAccountID,
			Type:          domain.TransferOut,
			Amount:        amount,
			OccurredAt:    now,
			Description:   fmt.Sprintf("Transfer to %s", toAccountID),
		},
		{
			TransactionID: uuid.NewString(),
			AccountID:     toAccountID,
			Type:          domain.TransferIn,
			Amount:        amount,
			OccurredAt:    now,
			Description:   fmt.Sprintf("Transfer from %s", fromAccountID),
		},
	}

	if err := s.ledgerRepo.PostEntries(ctx, entries); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrInsufficientFunds) {
			logger.Error("Failed to post transfer", slog.String("error", err.Error()),
				slog.String("from_account_id", fromAccountID), slog.String("to_account_id", toAccountID))
		}
		return err
	}

	logger.Info("Transfer posted", slog.String("from_account_id", fromAccountID),
		slog.String("to_account_id", toAccountID), slog.String("amount", amount.String()))
	return nil
}

func (s *LedgerService) TransactionHistory(ctx context.Context, accountID string) ([]domain.Transaction, error) {
	logger := logging.GetLoggerFromCtx(ctx)

	if _, err := s.accountRepo.FindAccountByID(ctx, accountID); err != nil {
		return nil, err
	}

	transactions, err := s.ledgerRepo.FindTransactionsByAccountID(ctx, accountID)
	if err != nil {
		logger.Error("Failed to fetch transaction history", slog.String("error", err.Error()), slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to fetch transaction history: %w", err)
	}
	if transactions == nil {
		return []domain.Transaction{}, nil
	}
	return transactions, nil
}

func (s *LedgerService) MonthlyStatement(ctx context.Context, accountID, yearMonth string) ([]domain.Transaction, error) {
	logger := logging.GetLoggerFromCtx(ctx)

	from, err := time.ParseInLocation("2006-01", yearMonth, time.Local)
	if err != nil {
		return nil, fmt.Errorf("month must be in YYYY-MM form, got %q: %w", yearMonth, apperrors.ErrValidation)
	}
	to := from.AddDate(0, 1, 0)

	if _, err := s.accountRepo.FindAccountByID(ctx, accountID); err != nil {
		return nil, err
	}

	transactions, err := s.ledgerRepo.FindTransactionsByAccountIDInRange(ctx, accountID, from, to)
	if err != nil {
		logger.Error("Failed to fetch monthly statement", slog.String("error", err.Error()),
			slog.String("account_id", accountID), slog.String("month", yearMonth))
		return nil, fmt.Errorf("failed to fetch monthly statement: %w", err)
	}
	if transactions == nil {
		return []domain.Transaction{}, nil
	}
	return transactions, nil
}
