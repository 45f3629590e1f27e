package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType tags the direction and origin of a posting.
type TransactionType string

const (
	Deposit     TransactionType = "Deposit"
	Withdrawal  TransactionType = "Withdrawal"
	TransferOut TransactionType = "Transfer Out"
	TransferIn  TransactionType = "Transfer In"
)

// Transaction represents a transaction row in the transactions table.
// Rows are insert-only; they are never updated and only removed when the
// owning account is closed.
type Transaction struct {
	TransactionID  string          `db:"transaction_id"`
	AccountID      string          `db:"account_id"`
	Type           TransactionType `db:"type"`
	Amount         decimal.Decimal `db:"amount"`
	OccurredAt     time.Time       `db:"occurred_at"`
	Description    string          `db:"description"`
	RunningBalance decimal.Decimal `db:"running_balance"`
}
