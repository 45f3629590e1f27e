package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/arvindkm/bankledger/internal/apperrors"
	"github.com/arvindkm/bankledger/internal/core/domain"
	portsrepo "github.com/arvindkm/bankledger/internal/core/ports/repositories"
	"github.com/arvindkm/bankledger/internal/models"
	"github.com/arvindkm/bankledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxLedgerRepository struct {
	BaseRepository
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewLedgerRepository creates a new repository for transaction posting and history.
func NewLedgerRepository(pool *pgxpool.Pool, accountRepo portsrepo.AccountRepositoryFacade) portsrepo.LedgerRepository {
	return &PgxLedgerRepository{
		BaseRepository: BaseRepository{Pool: pool},
		accountRepo:    accountRepo,
	}
}

// Ensure PgxLedgerRepository implements portsrepo.LedgerRepository
var _ portsrepo.LedgerRepository = (*PgxLedgerRepository)(nil)

// PostEntries locks the affected accounts, applies balance changes and inserts
// the transaction rows within a single database transaction. Entries are
// processed in caller order; each row records the running balance after it.
func (r *PgxLedgerRepository) PostEntries(ctx context.Context, entries []domain.Transaction) error {
	if len(entries) == 0 {
		return nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	// Ignored if the transaction commits.
	defer r.Rollback(ctx, tx)

	accountIDs := make([]string, 0, len(entries))
	for _, e := range entries {
		accountIDs = append(accountIDs, e.AccountID)
	}

	lockedAccounts, err := r.accountRepo.FindAccountsByIDsForUpdate(ctx, tx, accountIDs)
	if err != nil {
		return err
	}

	running := make(map[string]decimal.Decimal, len(lockedAccounts))
	for id, acc := range lockedAccounts {
		running[id] = acc.Balance
	}

	balanceChanges := make(map[string]decimal.Decimal, len(lockedAccounts))
	batch := &pgx.Batch{}
	insertQuery := `
		INSERT INTO transactions (transaction_id, account_id, type, amount, occurred_at, description, running_balance)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`

	for _, entry := range entries {
		signed, err := entry.SignedAmount()
		if err != nil {
			return apperrors.NewAppError(500, "failed to compute signed amount for transaction "+entry.TransactionID, err)
		}

		newBalance := running[entry.AccountID].Add(signed)
		if entry.IsDebit() && newBalance.IsNegative() {
			return fmt.Errorf("account %s balance %s cannot cover %s: %w",
				entry.AccountID, running[entry.AccountID], entry.Amount, apperrors.ErrInsufficientFunds)
		}
		running[entry.AccountID] = newBalance
		balanceChanges[entry.AccountID] = balanceChanges[entry.AccountID].Add(signed)

		modelTxn := mapping.ToModelTransaction(entry)
		modelTxn.RunningBalance = newBalance
		batch.Queue(insertQuery,
			modelTxn.TransactionID,
			modelTxn.AccountID,
			modelTxn.Type,
			modelTxn.Amount,
			modelTxn.OccurredAt,
			modelTxn.Description,
			modelTxn.RunningBalance,
		)
	}

	if err := r.accountRepo.UpdateAccountBalancesInTx(ctx, tx, balanceChanges); err != nil {
		return err
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to execute transaction insert batch", err)
	}

	return r.Commit(ctx, tx)
}

func (r *PgxLedgerRepository) FindTransactionsByAccountID(ctx context.Context, accountID string) ([]domain.Transaction, error) {
	query := `
		SELECT transaction_id, account_id, type, amount, occurred_at, description, running_balance
		FROM transactions
		WHERE account_id = $1
		ORDER BY occurred_at DESC, transaction_id DESC;
	`
	rows, err := r.Pool.Query(ctx, query, accountID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query transactions for account "+accountID, err)
	}
	defer rows.Close()

	return scanTransactions(rows, accountID)
}

func (r *PgxLedgerRepository) FindTransactionsByAccountIDInRange(ctx context.Context, accountID string, from, to time.Time) ([]domain.Transaction, error) {
	query := `
		SELECT transaction_id, account_id, type, amount, occurred_at, description, running_balance
		FROM transactions
		WHERE account_id = $1 AND occurred_at >= $2 AND occurred_at < $3
		ORDER BY occurred_at, transaction_id;
	`
	rows, err := r.Pool.Query(ctx, query, accountID, from, to)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query transactions in range for account "+accountID, err)
	}
	defer rows.Close()

	return scanTransactions(rows, accountID)
}

func scanTransactions(rows pgx.Rows, accountID string) ([]domain.Transaction, error) {
	transactions := []models.Transaction{}
	for rows.Next() {
		var t models.Transaction
		err := rows.Scan(
			&t.TransactionID,
			&t.AccountID,
			&t.Type,
			&t.Amount,
			&t.OccurredAt,
			&t.Description,
			&t.RunningBalance,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan transaction row for account "+accountID, err)
		}
		transactions = append(transactions, t)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating transaction rows for account "+accountID, err)
	}

	return mapping.ToDomainTransactionSlice(transactions), nil
}
