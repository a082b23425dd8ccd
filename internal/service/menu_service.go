package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"seacoff/internal/model"
	"seacoff/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// menuService implements MenuService.
type menuService struct {
	menuRepo repository.MenuRepository
	logger   zerolog.Logger
}

// NewMenuService creates a new menu service.
func NewMenuService(menuRepo repository.MenuRepository, logger zerolog.Logger) MenuService {
	return &menuService{
		menuRepo: menuRepo,
		logger:   logger.With().Str("service", "menu").Logger(),
	}
}

// GetAll retrieves menu items with pagination.
func (s *menuService) GetAll(ctx context.Context, limit, offset int) ([]model.Menu, error) {
	if limit <= 0 {
		limit = 50
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	menus, err := s.menuRepo.GetAll(ctx, limit, offset)
	if err != nil {
		s.logger.Error().Err(err).
			Int("limit", limit).
			Int("offset", offset).
			Msg("failed to get menus")
		return nil, fmt.Errorf("failed to get menus: %w", err)
	}

	return menus, nil
}

// GetByID retrieves a single menu item by ID.
func (s *menuService) GetByID(ctx context.Context, id uuid.UUID) (*model.Menu, error) {
	menu, err := s.menuRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("menu_id", id.String()).Msg("failed to get menu")
		return nil, fmt.Errorf("failed to get menu: %w", err)
	}

	if menu == nil {
		return nil, model.ErrMenuNotFound
	}

	return menu, nil
}

// Create adds a new menu item.
func (s *menuService) Create(ctx context.Context, req *model.MenuRequest) (*model.Menu, error) {
	if err := validateMenuRequest(req); err != nil {
		return nil, err
	}

	now := time.Now()
	menu := &model.Menu{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.menuRepo.Create(ctx, menu); err != nil {
		s.logger.Error().Err(err).Str("name", menu.Name).Msg("failed to create menu")
		return nil, fmt.Errorf("failed to create menu: %w", err)
	}

	s.logger.Info().Str("menu_id", menu.ID.String()).Str("name", menu.Name).Msg("menu created")

	return menu, nil
}

// Update overwrites an existing menu item.
func (s *menuService) Update(ctx context.Context, id uuid.UUID, req *model.MenuRequest) (*model.Menu, error) {
	if err := validateMenuRequest(req); err != nil {
		return nil, err
	}

	existing, err := s.menuRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("menu_id", id.String()).Msg("failed to load menu for update")
		return nil, fmt.Errorf("failed to update menu: %w", err)
	}
	if existing == nil {
		return nil, model.ErrMenuNotFound
	}

	menu := &model.Menu{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		CreatedAt:   existing.CreatedAt,
		UpdatedAt:   time.Now(),
	}

	updated, err := s.menuRepo.Update(ctx, menu)
	if err != nil {
		s.logger.Error().Err(err).Str("menu_id", id.String()).Msg("failed to update menu")
		return nil, fmt.Errorf("failed to update menu: %w", err)
	}
	if !updated {
		return nil, model.ErrMenuNotFound
	}

	s.logger.Info().Str("menu_id", id.String()).Msg("menu updated")

	return menu, nil
}

// Delete removes a menu item.
func (s *menuService) Delete(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.menuRepo.Delete(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("menu_id", id.String()).Msg("failed to delete menu")
		return fmt.Errorf("failed to delete menu: %w", err)
	}
	if !deleted {
		return model.ErrMenuNotFound
	}

	s.logger.Info().Str("menu_id", id.String()).Msg("menu deleted")

	return nil
}

func validateMenuRequest(req *model.MenuRequest) error {
	if req == nil {
		return fmt.Errorf("menu request is nil")
	}
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("menu name is required")
	}
	if req.Price < 0 {
		return fmt.Errorf("menu price must not be negative")
	}
	return nil
}
