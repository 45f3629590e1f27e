package mapping

import (
	"github.com/arvindkm/bankledger/internal/core/domain"
	"github.com/arvindkm/bankledger/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:  d.TransactionID,
		AccountID:      d.AccountID,
		Type:           models.TransactionType(d.Type),
		Amount:         d.Amount,
		OccurredAt:     d.OccurredAt,
		Description:    d.Description,
		RunningBalance: d.RunningBalance,
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:  m.TransactionID,
		AccountID:      m.AccountID,
		Type:           domain.TransactionType(m.Type),
		Amount:         m.Amount,
		OccurredAt:     m.OccurredAt,
		Description:    m.Description,
		RunningBalance: m.RunningBalance,
	}
}

// ToDomainTransactionSlice converts a slice of model Transactions to a slice of domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
