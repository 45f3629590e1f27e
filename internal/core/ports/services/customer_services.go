package services

import (
	"context"

	"github.com/arvindkm/bankledger/internal/core/domain"
)

// CustomerService defines the customer operations exposed to callers.
type CustomerService interface {
	// CreateCustomer registers a new customer. Name must be non-empty
	// (apperrors.ErrValidation); email and phone are unconstrained.
	CreateCustomer(ctx context.Context, name, email, phone string) (*domain.Customer, error)

	// GetCustomerByID returns the customer or apperrors.ErrNotFound.
	GetCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)

	// ListCustomers returns all customers in insertion order.
	ListCustomers(ctx context.Context) ([]domain.Customer, error)

	// UpdateCustomer overwrites all three mutable fields unconditionally.
	// There is no partial update; callers supply every field.
	UpdateCustomer(ctx context.Context, customerID, name, email, phone string) error

	// DeleteCustomer removes the customer without checking for or cascading
	// to dependent accounts.
	DeleteCustomer(ctx context.Context, customerID string) error
}
