package mapping

import (
	"github.com/arvindkm/bankledger/internal/core/domain"
	"github.com/arvindkm/bankledger/internal/models"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:   d.AccountID,
		CustomerID:  d.CustomerID,
		AccountType: models.AccountType(d.AccountType),
		Balance:     d.Balance,
		CreatedDate: d.CreatedDate,
	}
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:   m.AccountID,
		CustomerID:  m.CustomerID,
		AccountType: domain.AccountType(m.AccountType),
		Balance:     m.Balance,
		CreatedDate: m.CreatedDate,
	}
}

// ToDomainAccountSlice converts a slice of model Accounts to a slice of domain Accounts
func ToDomainAccountSlice(ms []models.Account) []domain.Account {
	ds := make([]domain.Account, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAccount(m)
	}
	return ds
}
