package models

import "time"

// Customer represents a customer row in the customers table.
type Customer struct {
	CustomerID string    `db:"customer_id"`
	Name       string    `db:"name"`
	Email      string    `db:"email"`
	Phone      string    `db:"phone"`
	CreatedAt  time.Time `db:"created_at"`
}
