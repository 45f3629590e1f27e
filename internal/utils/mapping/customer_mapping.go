package mapping

import (
	"github.com/arvindkm/bankledger/internal/core/domain"
	"github.com/arvindkm/bankledger/internal/models"
)

// ToModelCustomer converts a domain Customer to a model Customer
func ToModelCustomer(d domain.Customer) models.Customer {
	return models.Customer{
		CustomerID: d.CustomerID,
		Name:       d.Name,
		Email:      d.Email,
		Phone:      d.Phone,
		CreatedAt:  d.CreatedAt,
	}
}

// ToDomainCustomer converts a model Customer to a domain Customer
func ToDomainCustomer(m models.Customer) domain.Customer {
	return domain.Customer{
		CustomerID: m.CustomerID,
		Name:       m.Name,
		Email:      m.Email,
		Phone:      m.Phone,
		CreatedAt:  m.CreatedAt,
	}
}

// ToDomainCustomerSlice converts a slice of model Customers to a slice of domain Customers
func ToDomainCustomerSlice(ms []models.Customer) []domain.Customer {
	ds := make([]domain.Customer, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCustomer(m)
	}
	return ds
}
