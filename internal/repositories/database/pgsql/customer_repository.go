package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/arvindkm/bankledger/internal/apperrors"
	"github.com/arvindkm/bankledger/internal/core/domain"
	portsrepo "github.com/arvindkm/bankledger/internal/core/ports/repositories"
	"github.com/arvindkm/bankledger/internal/models"
	"github.com/arvindkm/bankledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCustomerRepository struct {
	db *pgxpool.Pool
}

// NewCustomerRepository creates a new repository for customer data.
func NewCustomerRepository(db *pgxpool.Pool) portsrepo.CustomerRepository {
	return &PgxCustomerRepository{db: db}
}

// Ensure PgxCustomerRepository implements portsrepo.CustomerRepository
var _ portsrepo.CustomerRepository = (*PgxCustomerRepository)(nil)

func (r *PgxCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	modelCustomer := mapping.ToModelCustomer(customer)
	query := `
		INSERT INTO customers (customer_id, name, email, phone, created_at)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err := r.db.Exec(ctx, query,
		modelCustomer.CustomerID,
		modelCustomer.Name,
		modelCustomer.Email,
		modelCustomer.Phone,
		modelCustomer.CreatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save customer "+modelCustomer.CustomerID, err)
	}
	return nil
}

func (r *PgxCustomerRepository) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	query := `
		SELECT customer_id, name, email, phone, created_at
		FROM customers
		WHERE customer_id = $1;
	`
	var modelCustomer models.Customer
	err := r.db.QueryRow(ctx, query, customerID).Scan(
		&modelCustomer.CustomerID,
		&modelCustomer.Name,
		&modelCustomer.Email,
		&modelCustomer.Phone,
		&modelCustomer.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find customer by ID "+customerID, err)
	}

	domainCustomer := mapping.ToDomainCustomer(modelCustomer)
	return &domainCustomer, nil
}

// FindCustomers returns every customer ordered by creation time, which is the
// order rows were inserted in.
func (r *PgxCustomerRepository) FindCustomers(ctx context.Context) ([]domain.Customer, error) {
	query := `
		SELECT customer_id, name, email, phone, created_at
		FROM customers
		ORDER BY created_at, customer_id;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query customers", err)
	}
	defer rows.Close()

	modelCustomers := []models.Customer{}
	for rows.Next() {
		var m models.Customer
		if err := rows.Scan(&m.CustomerID, &m.Name, &m.Email, &m.Phone, &m.CreatedAt); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan customer row", err)
		}
		modelCustomers = append(modelCustomers, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating customer rows", err)
	}

	return mapping.ToDomainCustomerSlice(modelCustomers), nil
}

func (r *PgxCustomerRepository) UpdateCustomer(ctx context.Context, customer domain.Customer) error {
	modelCustomer := mapping.ToModelCustomer(customer)
	query := `
		UPDATE customers
		SET name = $1, email = $2, phone = $3
		WHERE customer_id = $4;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		modelCustomer.Name,
		modelCustomer.Email,
		modelCustomer.Phone,
		modelCustomer.CustomerID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to execute update customer query", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("customer %s not found for update: %w", modelCustomer.CustomerID, apperrors.ErrNotFound)
	}
	return nil
}

// DeleteCustomer removes the row without touching accounts that reference it.
// Deleting an unknown customer succeeds with no effect.
func (r *PgxCustomerRepository) DeleteCustomer(ctx context.Context, customerID string) error {
	query := `DELETE FROM customers WHERE customer_id = $1;`
	if _, err := r.db.Exec(ctx, query, customerID); err != nil {
		return apperrors.NewAppError(500, "failed to delete customer "+customerID, err)
	}
	return nil
}
