package domain

import (
	"fmt"
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

// Transaction is an immutable posting against a single account. Amount is a
// positive magnitude; the sign it applies to the balance follows the type.
type Transaction struct {
	TransactionID  string          `json:"transactionID"` // Primary Key (UUID)
	AccountID      string          `json:"accountID"`     // Reference to Account
	Type           TransactionType `json:"type"`
	Amount         decimal.Decimal `json:"amount"`
	OccurredAt     time.Time       `json:"occurredAt"`
	Description    string          `json:"description"`
	RunningBalance decimal.Decimal `json:"runningBalance"` // Account balance after this posting
}

// IsDebit reports whether the posting reduces the account balance.
func (t Transaction) IsDebit() bool {
	return t.Type == Withdrawal || t.Type == TransferOut
}

// SignedAmount returns the amount with the sign the posting applies to the
// account balance: deposits and transfer-ins positive, withdrawals and
// transfer-outs negative.
func (t Transaction) SignedAmount() (decimal.Decimal, error) {
	switch t.Type {
	case Deposit, TransferIn:
		return t.Amount, nil
	case Withdrawal, TransferOut:
		return t.Amount.Neg(), nil
	default:
		return decimal.Zero, fmt.Errorf("unknown transaction type %q on transaction %s", t.Type, t.TransactionID)
	}
}
