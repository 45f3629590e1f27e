package repositories

import (
	"context"

	"github.com/arvindkm/bankledger/internal/core/domain"
)

// CustomerRepository defines persistence operations for customers.
type CustomerRepository interface {
	// SaveCustomer inserts a new customer.
	SaveCustomer(ctx context.Context, customer domain.Customer) error

	// FindCustomerByID returns the customer or apperrors.ErrNotFound.
	FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)

	// FindCustomers returns all customers in insertion order.
	FindCustomers(ctx context.Context) ([]domain.Customer, error)

	// UpdateCustomer overwrites name, email and phone. Returns
	// apperrors.ErrNotFound when no row matched.
	UpdateCustomer(ctx context.Context, customer domain.Customer) error

	// DeleteCustomer removes the customer row unconditionally. It does not
	// check for dependent accounts and does not cascade; accounts referencing
	// the customer are left behind.
	DeleteCustomer(ctx context.Context, customerID string) error
}
