package pgsql

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/arvindkm/bankledger/internal/apperrors"
	"github.com/arvindkm/bankledger/internal/core/domain"
	portsrepo "github.com/arvindkm/bankledger/internal/core/ports/repositories"
	"github.com/arvindkm/bankledger/internal/models"
	"github.com/arvindkm/bankledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxAccountRepository struct {
	BaseRepository
}

// NewAccountRepository creates a new repository for account data.
func NewAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepositoryFacade {
	return &PgxAccountRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepositoryFacade
var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	modelAccount := mapping.ToModelAccount(account)
	query := `
		INSERT INTO accounts (account_id, customer_id, account_type, balance, created_date)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelAccount.AccountID,
		modelAccount.CustomerID,
		modelAccount.AccountType,
		modelAccount.Balance,
		modelAccount.CreatedDate,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save account "+modelAccount.AccountID, err)
	}
	return nil
}

func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	query := `
		SELECT account_id, customer_id, account_type, balance, created_date
		FROM accounts
		WHERE account_id = $1;
	`
	var modelAccount models.Account
	err := r.Pool.QueryRow(ctx, query, accountID).Scan(
		&modelAccount.AccountID,
		&modelAccount.CustomerID,
		&modelAccount.AccountType,
		&modelAccount.Balance,
		&modelAccount.CreatedDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find account by ID "+accountID, err)
	}

	domainAccount := mapping.ToDomainAccount(modelAccount)
	return &domainAccount, nil
}

// ListAccountSummaries joins accounts with customers. The inner join drops
// accounts whose customer row was deleted.
func (r *PgxAccountRepository) ListAccountSummaries(ctx context.Context) ([]domain.AccountSummary, error) {
	query := `
		SELECT a.account_id, c.name, a.account_type, a.balance, a.created_date
		FROM accounts a
		JOIN customers c ON a.customer_id = c.customer_id
		ORDER BY a.created_date, a.account_id;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query account summaries", err)
	}
	defer rows.Close()

	return scanAccountSummaries(rows)
}

func (r *PgxAccountRepository) SearchAccountSummariesByCustomerName(ctx context.Context, nameSubstring string) ([]domain.AccountSummary, error) {
	query := `
		SELECT a.account_id, c.name, a.account_type, a.balance, a.created_date
		FROM accounts a
		JOIN customers c ON a.customer_id = c.customer_id
		WHERE c.name ILIKE '%' || $1 || '%'
		ORDER BY a.created_date, a.account_id;
	`
	rows, err := r.Pool.Query(ctx, query, nameSubstring)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to search account summaries", err)
	}
	defer rows.Close()

	return scanAccountSummaries(rows)
}

func scanAccountSummaries(rows pgx.Rows) ([]domain.AccountSummary, error) {
	summaries := []domain.AccountSummary{}
	for rows.Next() {
		var s domain.AccountSummary
		if err := rows.Scan(&s.AccountID, &s.CustomerName, &s.AccountType, &s.Balance, &s.CreatedDate); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan account summary row", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating account summary rows", err)
	}
	return summaries, nil
}

// DeleteAccountWithTransactions purges the account and its transactions in
// one database transaction. Absent accounts delete zero rows and succeed.
func (r *PgxAccountRepository) DeleteAccountWithTransactions(ctx context.Context, accountID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := tx.Exec(ctx, `DELETE FROM transactions WHERE account_id = $1;`, accountID); err != nil {
		return apperrors.NewAppError(500, "failed to delete transactions for account "+accountID, err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM accounts WHERE account_id = $1;`, accountID); err != nil {
		return apperrors.NewAppError(500, "failed to delete account "+accountID, err)
	}

	return r.Commit(ctx, tx)
}

// FindAccountsByIDsForUpdate locks the given account rows for the duration of
// tx. IDs are deduplicated and sorted so concurrent postings acquire locks in
// the same order.
func (r *PgxAccountRepository) FindAccountsByIDsForUpdate(ctx context.Context, tx pgx.Tx, accountIDs []string) (map[string]domain.Account, error) {
	unique := make(map[string]struct{}, len(accountIDs))
	for _, id := range accountIDs {
		unique[id] = struct{}{}
	}
	ids := make([]string, 0, len(unique))
	for id := range unique {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	query := `
		SELECT account_id, customer_id, account_type, balance, created_date
		FROM accounts
		WHERE account_id = ANY($1)
		ORDER BY account_id
		FOR UPDATE;
	`
	rows, err := tx.Query(ctx, query, ids)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to lock accounts for update", err)
	}
	defer rows.Close()

	locked := make(map[string]domain.Account, len(ids))
	for rows.Next() {
		var m models.Account
		if err := rows.Scan(&m.AccountID, &m.CustomerID, &m.AccountType, &m.Balance, &m.CreatedDate); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan locked account row", err)
		}
		locked[m.AccountID] = mapping.ToDomainAccount(m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating locked account rows", err)
	}

	if len(locked) != len(ids) {
		missing := make([]string, 0, len(ids)-len(locked))
		for _, id := range ids {
			if _, ok := locked[id]; !ok {
				missing = append(missing, id)
			}
		}
		return nil, fmt.Errorf("account(s) %s: %w", strings.Join(missing, ", "), apperrors.ErrNotFound)
	}

	return locked, nil
}

func (r *PgxAccountRepository) UpdateAccountBalancesInTx(ctx context.Context, tx pgx.Tx, balanceChanges map[string]decimal.Decimal) error {
	query := `UPDATE accounts SET balance = balance + $1 WHERE account_id = $2;`
	for accountID, change := range balanceChanges {
		cmdTag, err := tx.Exec(ctx, query, change, accountID)
		if err != nil {
			return apperrors.NewAppError(500, "failed to update balance for account "+accountID, err)
		}
		if cmdTag.RowsAffected() == 0 {
			// Cannot happen after the accounts were locked, but keep the
			// invariant explicit.
			return apperrors.NewNotFoundError("account " + accountID + " vanished during balance update")
		}
	}
	return nil
}
