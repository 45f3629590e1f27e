package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/arvindkm/bankledger/internal/apperrors"
	"github.com/arvindkm/bankledger/internal/core/domain"
	portsrepo "github.com/arvindkm/bankledger/internal/core/ports/repositories"
	"github.com/arvindkm/bankledger/internal/core/services"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock AccountRepository ---
type MockAccountRepository struct {
	mock.Mock
}

// Ensure MockAccountRepository implements portsrepo.AccountRepositoryFacade
var _ portsrepo.AccountRepositoryFacade = (*MockAccountRepository)(nil)

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccountSummaries(ctx context.Context) ([]domain.AccountSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountSummary), args.Error(1)
}

func (m *MockAccountRepository) SearchAccountSummariesByCustomerName(ctx context.Context, nameSubstring string) ([]domain.AccountSummary, error) {
	args := m.Called(ctx, nameSubstring)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountSummary), args.Error(1)
}

func (m *MockAccountRepository) DeleteAccountWithTransactions(ctx context.Context, accountID string) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccountsByIDsForUpdate(ctx context.Context, tx pgx.Tx, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, tx, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) UpdateAccountBalancesInTx(ctx context.Context, tx pgx.Tx, balanceChanges map[string]decimal.Decimal) error {
	args := m.Called(ctx, tx, balanceChanges)
	return args.Error(0)
}

// --- Test Suite ---
type AccountServiceTestSuite struct {
	suite.Suite
	mockAccountRepo  *MockAccountRepository
	mockCustomerRepo *MockCustomerRepository
	service          *services.AccountService
	ctx              context.Context
}

func (s *AccountServiceTestSuite) SetupTest() {
	s.mockAccountRepo = new(MockAccountRepository)
	s.mockCustomerRepo = new(MockCustomerRepository)
	s.service = services.NewAccountService(s.mockAccountRepo, s.mockCustomerRepo)
	s.ctx = context.Background()
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}

func (s *AccountServiceTestSuite) TestOpenAccount_Success() {
	customer := &domain.Customer{CustomerID: "cust-1", Name: "Alice"}
	s.mockCustomerRepo.On("FindCustomerByID", s.ctx, "cust-1").Return(customer, nil).Once()
	s.mockAccountRepo.On("SaveAccount", s.ctx, mock.MatchedBy(func(a domain.Account) bool {
		return a.CustomerID == "cust-1" &&
			a.AccountType == domain.Savings &&
			a.Balance.IsZero() &&
			a.AccountID != ""
	})).Return(nil).Once()

	account, err := s.service.OpenAccount(s.ctx, "cust-1", domain.Savings)

	s.NoError(err)
	s.NotNil(account)
	s.True(account.Balance.IsZero(), "new accounts start at zero balance")
	s.WithinDuration(time.Now(), account.CreatedDate, time.Minute)
	s.mockAccountRepo.AssertExpectations(s.T())
	s.mockCustomerRepo.AssertExpectations(s.T())
}

func (s *AccountServiceTestSuite) TestOpenAccount_UnknownCustomer() {
	s.mockCustomerRepo.On("FindCustomerByID", s.ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	account, err := s.service.OpenAccount(s.ctx, "missing", domain.Current)

	s.ErrorIs(err, apperrors.ErrNotFound)
	s.Nil(account)
	s.mockAccountRepo.AssertNotCalled(s.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (s *AccountServiceTestSuite) TestOpenAccount_InvalidType() {
	account, err := s.service.OpenAccount(s.ctx, "cust-1", domain.AccountType("Checking"))

	s.ErrorIs(err, apperrors.ErrValidation)
	s.Nil(account)
	s.mockCustomerRepo.AssertNotCalled(s.T(), "FindCustomerByID", mock.Anything, mock.Anything)
}

func (s *AccountServiceTestSuite) TestGetBalance_Success() {
	account := &domain.Account{AccountID: "acc-1", Balance: decimal.NewFromInt(70)}
	s.mockAccountRepo.On("FindAccountByID", s.ctx, "acc-1").Return(account, nil).Once()

	balance, err := s.service.GetBalance(s.ctx, "acc-1")

	s.NoError(err)
	s.True(decimal.NewFromInt(70).Equal(balance))
}

func (s *AccountServiceTestSuite) TestGetBalance_NotFound() {
	s.mockAccountRepo.On("FindAccountByID", s.ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	_, err := s.service.GetBalance(s.ctx, "missing")

	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *AccountServiceTestSuite) TestCloseAccount_MissingAccountIsNoOp() {
	s.mockAccountRepo.On("DeleteAccountWithTransactions", s.ctx, "missing").Return(nil).Once()

	err := s.service.CloseAccount(s.ctx, "missing")

	s.NoError(err)
	s.mockAccountRepo.AssertExpectations(s.T())
}

func (s *AccountServiceTestSuite) TestListAccounts_NilBecomesEmpty() {
	s.mockAccountRepo.On("ListAccountSummaries", s.ctx).Return(nil, nil).Once()

	summaries, err := s.service.ListAccounts(s.ctx)

	s.NoError(err)
	s.NotNil(summaries)
	s.Empty(summaries)
}

func (s *AccountServiceTestSuite) TestSearchAccountsByCustomerName() {
	expected := []domain.AccountSummary{
		{AccountID: "acc-1", CustomerName: "Alice", AccountType: domain.Savings, Balance: decimal.NewFromInt(50)},
	}
	s.mockAccountRepo.On("SearchAccountSummariesByCustomerName", s.ctx, "li").Return(expected, nil).Once()

	summaries, err := s.service.SearchAccountsByCustomerName(s.ctx, "li")

	s.NoError(err)
	s.Equal(expected, summaries)
}
