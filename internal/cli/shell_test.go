package cli_test

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/arvindkm/bankledger/internal/apperrors"
	"github.com/arvindkm/bankledger/internal/cli"
	"github.com/arvindkm/bankledger/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Stub services (function-field fakes) ---

type stubCustomerService struct {
	CreateCustomerFn func(ctx context.Context, name, email, phone string) (*domain.Customer, error)
	ListCustomersFn  func(ctx context.Context) ([]domain.Customer, error)
	UpdateCustomerFn func(ctx context.Context, customerID, name, email, phone string) error
	DeleteCustomerFn func(ctx context.Context, customerID string) error
}

func (s *stubCustomerService) CreateCustomer(ctx context.Context, name, email, phone string) (*domain.Customer, error) {
	return s.CreateCustomerFn(ctx, name, email, phone)
}

func (s *stubCustomerService) GetCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	return nil, apperrors.ErrNotFound
}

func (s *stubCustomerService) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	if s.ListCustomersFn != nil {
		return s.ListCustomersFn(ctx)
	}
	return []domain.Customer{}, nil
}

func (s *stubCustomerService) UpdateCustomer(ctx context.Context, customerID, name, email, phone string) error {
	return s.UpdateCustomerFn(ctx, customerID, name, email, phone)
}

func (s *stubCustomerService) DeleteCustomer(ctx context.Context, customerID string) error {
	return s.DeleteCustomerFn(ctx, customerID)
}

type stubAccountService struct {
	OpenAccountFn  func(ctx context.Context, customerID string, accountType domain.AccountType) (*domain.Account, error)
	ListAccountsFn func(ctx context.Context) ([]domain.AccountSummary, error)
	GetBalanceFn   func(ctx context.Context, accountID string) (decimal.Decimal, error)
	CloseAccountFn func(ctx context.Context, accountID string) error
	SearchFn       func(ctx context.Context, nameSubstring string) ([]domain.AccountSummary, error)
}

func (s *stubAccountService) OpenAccount(ctx context.Context, customerID string, accountType domain.AccountType) (*domain.Account, error) {
	return s.OpenAccountFn(ctx, customerID, accountType)
}

func (s *stubAccountService) ListAccounts(ctx context.Context) ([]domain.AccountSummary, error) {
	if s.ListAccountsFn != nil {
		return s.ListAccountsFn(ctx)
	}
	return []domain.AccountSummary{}, nil
}

func (s *stubAccountService) GetBalance(ctx context.Context, accountID string) (decimal.Decimal, error) {
	return s.GetBalanceFn(ctx, accountID)
}

func (s *stubAccountService) CloseAccount(ctx context.Context, accountID string) error {
	return s.CloseAccountFn(ctx, accountID)
}

func (s *stubAccountService) SearchAccountsByCustomerName(ctx context.Context, nameSubstring string) ([]domain.AccountSummary, error) {
	return s.SearchFn(ctx, nameSubstring)
}

type stubLedgerService struct {
	DepositFn   func(ctx context.Context, accountID string, amount decimal.Decimal) error
	WithdrawFn  func(ctx context.Context, accountID string, amount decimal.Decimal) error
	TransferFn  func(ctx context.Context, fromAccountID, toAccountID string, amount decimal.Decimal) error
	HistoryFn   func(ctx context.Context, accountID string) ([]domain.Transaction, error)
	StatementFn func(ctx context.Context, accountID, yearMonth string) ([]domain.Transaction, error)
}

func (s *stubLedgerService) Deposit(ctx context.Context, accountID string, amount decimal.Decimal) error {
	return s.DepositFn(ctx, accountID, amount)
}

func (s *stubLedgerService) Withdraw(ctx context.Context, accountID string, amount decimal.Decimal) error {
	return s.WithdrawFn(ctx, accountID, amount)
}

func (s *stubLedgerService) Transfer(ctx context.Context, fromAccountID, toAccountID string, amount decimal.Decimal) error {
	return s.TransferFn(ctx, fromAccountID, toAccountID, amount)
}

func (s *stubLedgerService) TransactionHistory(ctx context.Context, accountID string) ([]domain.Transaction, error) {
	return s.HistoryFn(ctx, accountID)
}

func (s *stubLedgerService) MonthlyStatement(ctx context.Context, accountID, yearMonth string) ([]domain.Transaction, error) {
	return s.StatementFn(ctx, accountID, yearMonth)
}

func runShell(t *testing.T, script string, customers *stubCustomerService, accounts *stubAccountService, ledger *stubLedgerService) (string, error) {
	t.Helper()
	var out bytes.Buffer
	shell := cli.New(strings.NewReader(script), &out, customers, accounts, ledger)
	err := shell.Run(context.Background())
	return out.String(), err
}

func TestShell_AddCustomerAndExit(t *testing.T) {
	customers := &stubCustomerService{
		CreateCustomerFn: func(_ context.Context, name, email, phone string) (*domain.Customer, error) {
			assert.Equal(t, "Alice", name)
			assert.Equal(t, "alice@example.com", email)
			assert.Equal(t, "555-0101", phone)
			return &domain.Customer{CustomerID: "cust-1", Name: name}, nil
		},
	}

	script := "1\na\nAlice\nalice@example.com\n555-0101\n6\n"
	out, err := runShell(t, script, customers, &stubAccountService{}, &stubLedgerService{})

	require.NoError(t, err)
	assert.Contains(t, out, "Customer added (ID: cust-1)")
	assert.Contains(t, out, "Exiting...")
}

func TestShell_InvalidChoiceRedisplaysMenu(t *testing.T) {
	script := "9\n6\n"
	out, err := runShell(t, script, &stubCustomerService{}, &stubAccountService{}, &stubLedgerService{})

	require.NoError(t, err)
	assert.Contains(t, out, "Invalid choice. Try again!")
	// The menu shows again after the invalid choice.
	assert.Equal(t, 2, strings.Count(out, "--- Bank Account Management ---"))
}

func TestShell_WithdrawInsufficientFundsIsRecoverable(t *testing.T) {
	ledger := &stubLedgerService{
		WithdrawFn: func(_ context.Context, accountID string, amount decimal.Decimal) error {
			return fmt.Errorf("account %s balance 50 cannot cover %s: %w", accountID, amount, apperrors.ErrInsufficientFunds)
		},
	}

	script := "3\nb\nacc-1\n1000\n6\n"
	out, err := runShell(t, script, &stubCustomerService{}, &stubAccountService{}, ledger)

	require.NoError(t, err, "validation failures must not abort the shell")
	assert.Contains(t, out, "insufficient funds")
	assert.Contains(t, out, "Exiting...")
}

func TestShell_RejectsUnparseableAmount(t *testing.T) {
	called := false
	ledger := &stubLedgerService{
		DepositFn: func(context.Context, string, decimal.Decimal) error {
			called = true
			return nil
		},
	}

	script := "3\na\nacc-1\nlots\n6\n"
	out, err := runShell(t, script, &stubCustomerService{}, &stubAccountService{}, ledger)

	require.NoError(t, err)
	assert.Contains(t, out, "Error:")
	assert.False(t, called, "a deposit must not be attempted with a bad amount")
}

func TestShell_StorageFailureAbortsRun(t *testing.T) {
	customers := &stubCustomerService{
		ListCustomersFn: func(context.Context) ([]domain.Customer, error) {
			return nil, apperrors.NewAppError(500, "failed to query customers", fmt.Errorf("connection refused"))
		},
	}

	script := "1\nb\n"
	_, err := runShell(t, script, customers, &stubAccountService{}, &stubLedgerService{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to query customers")
}

func TestShell_ViewAccountsRendersSummaries(t *testing.T) {
	accounts := &stubAccountService{
		ListAccountsFn: func(context.Context) ([]domain.AccountSummary, error) {
			return []domain.AccountSummary{
				{AccountID: "acc-1", CustomerName: "Alice", AccountType: domain.Savings, Balance: decimal.NewFromInt(70)},
			}, nil
		},
	}

	script := "2\nb\n6\n"
	out, err := runShell(t, script, &stubCustomerService{}, accounts, &stubLedgerService{})

	require.NoError(t, err)
	assert.Contains(t, out, "Alice")
	assert.Contains(t, out, "Savings")
	assert.Contains(t, out, "70")
}

func TestShell_EndOfInputExitsCleanly(t *testing.T) {
	out, err := runShell(t, "", &stubCustomerService{}, &stubAccountService{}, &stubLedgerService{})

	require.NoError(t, err)
	assert.Contains(t, out, "--- Bank Account Management ---")
}
