package domain

import "time"

// Customer represents a bank customer in the core domain.
// This is the primary representation used by services.
type Customer struct {
	CustomerID string    `json:"customerID"` // Primary Key (UUID)
	Name       string    `json:"name"`       // Required
	Email      string    `json:"email"`      // Optional
	Phone      string    `json:"phone"`      // Optional
	CreatedAt  time.Time `json:"createdAt"`
}
