package repository

import (
	"context"
	"fmt"

	"seacoff/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// customerRepository implements the CustomerRepository interface using PostgreSQL.
type customerRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewCustomerRepository creates a new PostgreSQL-backed customer repository.
func NewCustomerRepository(pool *pgxpool.Pool, logger zerolog.Logger) CustomerRepository {
	return &customerRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "customer").Logger(),
	}
}

// GetByName retrieves a customer by display name within the transaction.
func (r *customerRepository) GetByName(ctx context.Context, tx pgx.Tx, name string) (*model.Customer, error) {
	query := `
		SELECT id, name, created_at, updated_at
		FROM customers
		WHERE name = $1
	`

	var c model.Customer
	err := tx.QueryRow(ctx, query, name).Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Str("name", name).Msg("customer not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("name", name).Msg("failed to query customer")
		return nil, fmt.Errorf("failed to query customer: %w", err)
	}

	return &c, nil
}

// Insert creates a customer within the transaction. The name column carries a
// unique constraint; a swallowed conflict surfaces as ErrDuplicateName so the
// caller can re-query instead of relying on check-then-act.
func (r *customerRepository) Insert(ctx context.Context, tx pgx.Tx, customer *model.Customer) error {
	query := `
		INSERT INTO customers (id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (name) DO NOTHING
	`

	tag, err := tx.Exec(ctx, query, customer.ID, customer.Name, customer.CreatedAt, customer.UpdatedAt)
	if err != nil {
		r.logger.Error().Err(err).Str("name", customer.Name).Msg("failed to insert customer")
		return fmt.Errorf("failed to insert customer: %w", err)
	}

	if tag.RowsAffected() == 0 {
		r.logger.Debug().Str("name", customer.Name).Msg("customer insert lost lookup-or-create race")
		return ErrDuplicateName
	}

	r.logger.Debug().
		Str("customer_id", customer.ID.String()).
		Str("name", customer.Name).
		Msg("customer created")

	return nil
}
