package repository

import (
	"context"
	"fmt"

	"seacoff/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// cartRepository implements the CartRepository interface using PostgreSQL.
type cartRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewCartRepository creates a new PostgreSQL-backed cart repository.
func NewCartRepository(pool *pgxpool.Pool, logger zerolog.Logger) CartRepository {
	return &cartRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "cart").Logger(),
	}
}

// GetAll retrieves all cart entries joined with their menu items.
func (r *cartRepository) GetAll(ctx context.Context) ([]model.CartItemDetail, error) {
	query := `
		SELECT c.id, c.menu_id, c.quantity, c.created_at, c.updated_at,
		       m.name, m.price, c.quantity * m.price AS subtotal
		FROM cart_items c
		JOIN menus m ON m.id = c.menu_id
		ORDER BY c.created_at
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query cart items")
		return nil, fmt.Errorf("failed to query cart items: %w", err)
	}
	defer rows.Close()

	var items []model.CartItemDetail
	for rows.Next() {
		var d model.CartItemDetail
		err := rows.Scan(&d.ID, &d.MenuID, &d.Quantity, &d.CreatedAt, &d.UpdatedAt, &d.MenuName, &d.Price, &d.Subtotal)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan cart row")
			return nil, fmt.Errorf("failed to scan cart item: %w", err)
		}
		items = append(items, d)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating cart rows")
		return nil, fmt.Errorf("error iterating cart items: %w", err)
	}

	return items, nil
}

// GetByMenuID retrieves the cart entry for a menu item, if any.
func (r *cartRepository) GetByMenuID(ctx context.Context, menuID uuid.UUID) (*model.CartItem, error) {
	query := `
		SELECT id, menu_id, quantity, created_at, updated_at
		FROM cart_items
		WHERE menu_id = $1
	`

	var item model.CartItem
	err := r.pool.QueryRow(ctx, query, menuID).Scan(&item.ID, &item.MenuID, &item.Quantity, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		r.logger.Error().Err(err).Str("menu_id", menuID.String()).Msg("failed to query cart item")
		return nil, fmt.Errorf("failed to query cart item: %w", err)
	}

	return &item, nil
}

// Insert adds a new cart entry.
func (r *cartRepository) Insert(ctx context.Context, item *model.CartItem) error {
	query := `
		INSERT INTO cart_items (id, menu_id, quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.pool.Exec(ctx, query, item.ID, item.MenuID, item.Quantity, item.CreatedAt, item.UpdatedAt)
	if err != nil {
		r.logger.Error().Err(err).Str("menu_id", item.MenuID.String()).Msg("failed to insert cart item")
		return fmt.Errorf("failed to insert cart item: %w", err)
	}

	r.logger.Debug().Str("menu_id", item.MenuID.String()).Int("quantity", item.Quantity).Msg("cart item added")

	return nil
}

// AddQuantity increments the quantity of an existing cart entry.
func (r *cartRepository) AddQuantity(ctx context.Context, id uuid.UUID, delta int) error {
	query := `
		UPDATE cart_items
		SET quantity = quantity + $2, updated_at = NOW()
		WHERE id = $1
	`

	_, err := r.pool.Exec(ctx, query, id, delta)
	if err != nil {
		r.logger.Error().Err(err).Str("cart_id", id.String()).Msg("failed to update cart quantity")
		return fmt.Errorf("failed to update cart quantity: %w", err)
	}

	return nil
}

// Delete removes one cart entry.
func (r *cartRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `DELETE FROM cart_items WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		r.logger.Error().Err(err).Str("cart_id", id.String()).Msg("failed to delete cart item")
		return false, fmt.Errorf("failed to delete cart item: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// Clear removes all cart entries.
func (r *cartRepository) Clear(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM cart_items`); err != nil {
		r.logger.Error().Err(err).Msg("failed to clear cart")
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}
