package domain

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

// IsValid reports whether t is a known account type.
func (t AccountType) IsValid() bool {
	switch t {
	case Savings, Current:
		return true
	}
	return false
}

// Account represents a customer's account. Balance is always equal to the sum
// of the signed amounts of every transaction posted to the account since
// creation; postings maintain the invariant, it is never recomputed at read time.
type Account struct {
	AccountID   string          `json:"accountID"`  // Primary Key (UUID)
	CustomerID  string          `json:"customerID"` // Reference to Customer
	AccountType AccountType     `json:"accountType"`
	Balance     decimal.Decimal `json:"balance"`
	CreatedDate time.Time       `json:"createdDate"`
}

// AccountSummary is an account joined with its owning customer's name, as
// produced by account listings and customer-name search. Accounts whose
// customer has been deleted do not appear in summaries.
type AccountSummary struct {
	AccountID    string          `json:"accountID"`
	CustomerName string          `json:"customerName"`
	AccountType  AccountType     `json:"accountType"`
	Balance      decimal.Decimal `json:"balance"`
	CreatedDate  time.Time       `json:"createdDate"`
}
