package model

import (
	"time"

	"github.com/google/uuid"
)

// Customer represents a customer, identified by a unique display name.
// Customers are created lazily on first order submission.
type Customer struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
