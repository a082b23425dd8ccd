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

// menuRepository implements the MenuRepository interface using PostgreSQL.
type menuRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewMenuRepository creates a new PostgreSQL-backed menu repository.
func NewMenuRepository(pool *pgxpool.Pool, logger zerolog.Logger) MenuRepository {
	return &menuRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "menu").Logger(),
	}
}

// GetAll retrieves menu items with pagination support.
func (r *menuRepository) GetAll(ctx context.Context, limit, offset int) ([]model.Menu, error) {
	query := `
		SELECT id, name, description, price, category, image_url, created_at, updated_at
		FROM menus
		ORDER BY name
		LIMIT $1 OFFSET $2
	`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		r.logger.Error().Err(err).
			Int("limit", limit).
			Int("offset", offset).
			Msg("failed to query menus")
		return nil, fmt.Errorf("failed to query menus: %w", err)
	}
	defer rows.Close()

	var menus []model.Menu
	for rows.Next() {
		var m model.Menu
		err := rows.Scan(&m.ID, &m.Name, &m.Description, &m.Price, &m.Category, &m.ImageURL, &m.CreatedAt, &m.UpdatedAt)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan menu row")
			return nil, fmt.Errorf("failed to scan menu: %w", err)
		}
		menus = append(menus, m)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating menu rows")
		return nil, fmt.Errorf("error iterating menus: %w", err)
	}

	return menus, nil
}

// GetByID retrieves a single menu item by its ID.
func (r *menuRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Menu, error) {
	query := `
		SELECT id, name, description, price, category, image_url, created_at, updated_at
		FROM menus
		WHERE id = $1
	`

	var m model.Menu
	err := r.pool.QueryRow(ctx, query, id).Scan(&m.ID, &m.Name, &m.Description, &m.Price, &m.Category, &m.ImageURL, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Str("menu_id", id.String()).Msg("menu not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("menu_id", id.String()).Msg("failed to query menu")
		return nil, fmt.Errorf("failed to query menu: %w", err)
	}

	return &m, nil
}

// Create inserts a new menu item.
func (r *menuRepository) Create(ctx context.Context, menu *model.Menu) error {
	query := `
		INSERT INTO menus (id, name, description, price, category, image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.pool.Exec(ctx, query,
		menu.ID,
		menu.Name,
		menu.Description,
		menu.Price,
		menu.Category,
		menu.ImageURL,
		menu.CreatedAt,
		menu.UpdatedAt,
	)
	if err != nil {
		r.logger.Error().Err(err).Str("name", menu.Name).Msg("failed to create menu")
		return fmt.Errorf("failed to create menu: %w", err)
	}

	r.logger.Debug().Str("menu_id", menu.ID.String()).Str("name", menu.Name).Msg("menu created")

	return nil
}

// Update overwrites an existing menu item.
func (r *menuRepository) Update(ctx context.Context, menu *model.Menu) (bool, error) {
	query := `
		UPDATE menus
		SET name = $2, description = $3, price = $4, category = $5, image_url = $6, updated_at = $7
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query,
		menu.ID,
		menu.Name,
		menu.Description,
		menu.Price,
		menu.Category,
		menu.ImageURL,
		menu.UpdatedAt,
	)
	if err != nil {
		r.logger.Error().Err(err).Str("menu_id", menu.ID.String()).Msg("failed to update menu")
		return false, fmt.Errorf("failed to update menu: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// Delete removes a menu item.
func (r *menuRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `DELETE FROM menus WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		r.logger.Error().Err(err).Str("menu_id", id.String()).Msg("failed to delete menu")
		return false, fmt.Errorf("failed to delete menu: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}
