package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/arvindkm/bankledger/internal/apperrors"
	"github.com/arvindkm/bankledger/internal/core/domain"
	portsrepo "github.com/arvindkm/bankledger/internal/core/ports/repositories"
	portssvc "github.com/arvindkm/bankledger/internal/core/ports/services"
	"github.com/arvindkm/bankledger/internal/platform/logging"
	"github.com/google/uuid"
)

type CustomerService struct {
	customerRepo portsrepo.CustomerRepository
}

func NewCustomerService(repo portsrepo.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: repo}
}

// Ensure CustomerService implements portssvc.CustomerService
var _ portssvc.CustomerService = (*CustomerService)(nil)

func (s *CustomerService) CreateCustomer(ctx context.Context, name, email, phone string) (*domain.Customer, error) {
	logger := logging.GetLoggerFromCtx(ctx)

	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("customer name is required: %w", apperrors.ErrValidation)
	}

	customer := domain.Customer{
		CustomerID: uuid.NewString(),
		Name:       name,
		Email:      email,
		Phone:      phone,
		CreatedAt:  time.Now(),
	}

	if err := s.customerRepo.SaveCustomer(ctx, customer); err != nil {
		logger.Error("Failed to save customer in repository", slog.String("error", err.Error()), slog.String("customer_id", customer.CustomerID))
		return nil, err
	}

	logger.Info("Customer created", slog.String("customer_id", customer.CustomerID))
	return &customer, nil
}

func (s *CustomerService) GetCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	logger := logging.GetLoggerFromCtx(ctx)

	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find customer by ID in repository", slog.String("error", err.Error()), slog.String("customer_id", customerID))
		}
		return nil, err
	}
	return customer, nil
}

func (s *CustomerService) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	logger := logging.GetLoggerFromCtx(ctx)

	customers, err := s.customerRepo.FindCustomers(ctx)
	if err != nil {
		logger.Error("Failed to list customers from repository", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	if customers == nil {
		return []domain.Customer{}, nil
	}
	return customers, nil
}

func (s *CustomerService) UpdateCustomer(ctx context.Context, customerID, name, email, phone string) error {
	logger := logging.GetLoggerFromCtx(ctx)

	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("customer name is required: %w", apperrors.ErrValidation)
	}

	customer := domain.Customer{
		CustomerID: customerID,
		Name:       name,
		Email:      email,
		Phone:      phone,
	}

	if err := s.customerRepo.UpdateCustomer(ctx, customer); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to update customer in repository", slog.String("error", err.Error()), slog.String("customer_id", customerID))
		}
		return err
	}

	logger.Info("Customer updated", slog.String("customer_id", customerID))
	return nil
}

// DeleteCustomer removes the customer row only. Accounts referencing the
// customer are left in place; the account listing's join hides them.
func (s *CustomerService) DeleteCustomer(ctx context.Context, customerID string) error {
	logger := logging.GetLoggerFromCtx(ctx)

	if err := s.customerRepo.DeleteCustomer(ctx, customerID); err != nil {
		logger.Error("Failed to delete customer in repository", slog.String("error", err.Error()), slog.String("customer_id", customerID))
		return err
	}

	logger.Info("Customer deleted", slog.String("customer_id", customerID))
	return nil
}
