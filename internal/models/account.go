package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountType is the closed set of account products the bank offers.
type AccountType string

const (
	Savings AccountType = "Savings"
	Current AccountType = "Current"
)

// Account represents an account row in the accounts table.
// Note: customer_id carries no foreign key constraint; deleting a customer
// leaves its accounts behind, so a dangling reference is possible here.
type Account struct {
	AccountID   string          `db:"account_id"`
	CustomerID  string          `db:"customer_id"`
	AccountType AccountType     `db:"account_type"`
	Balance     decimal.Decimal `db:"balance"`
	CreatedDate time.Time       `db:"created_date"`
}
