package service

import (
	"context"
	"fmt"
	"time"

	"seacoff/internal/model"
	"seacoff/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// cartService implements CartService.
type cartService struct {
	cartRepo repository.CartRepository
	menuRepo repository.MenuRepository
	logger   zerolog.Logger
}

// NewCartService creates a new cart service.
func NewCartService(cartRepo repository.CartRepository, menuRepo repository.MenuRepository, logger zerolog.Logger) CartService {
	return &cartService{
		cartRepo: cartRepo,
		menuRepo: menuRepo,
		logger:   logger.With().Str("service", "cart").Logger(),
	}
}

// List retrieves all cart entries with menu details.
func (s *cartService) List(ctx context.Context) ([]model.CartItemDetail, error) {
	items, err := s.cartRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list cart")
		return nil, fmt.Errorf("failed to list cart: %w", err)
	}
	return items, nil
}

// AddItem adds a menu item to the cart, incrementing the quantity if the item
// is already present.
func (s *cartService) AddItem(ctx context.Context, req *model.CartRequest) (bool, error) {
	if req == nil {
		return false, fmt.Errorf("cart request is nil")
	}
	if req.MenuID == uuid.Nil {
		return false, fmt.Errorf("menu ID is required")
	}
	if req.Quantity <= 0 {
		s.logger.Warn().Int("quantity", req.Quantity).Msg("invalid cart quantity")
		return false, model.ErrInvalidQuantity
	}

	menu, err := s.menuRepo.GetByID(ctx, req.MenuID)
	if err != nil {
		s.logger.Error().Err(err).Str("menu_id", req.MenuID.String()).Msg("failed to verify menu")
		return false, fmt.Errorf("failed to add cart item: %w", err)
	}
	if menu == nil {
		return false, model.ErrMenuNotFound
	}

	existing, err := s.cartRepo.GetByMenuID(ctx, req.MenuID)
	if err != nil {
		s.logger.Error().Err(err).Str("menu_id", req.MenuID.String()).Msg("failed to check cart")
		return false, fmt.Errorf("failed to add cart item: %w", err)
	}

	if existing != nil {
		if err := s.cartRepo.AddQuantity(ctx, existing.ID, req.Quantity); err != nil {
			s.logger.Error().Err(err).Str("cart_id", existing.ID.String()).Msg("failed to increment cart item")
			return false, fmt.Errorf("failed to add cart item: %w", err)
		}
		return false, nil
	}

	now := time.Now()
	item := &model.CartItem{
		ID:        uuid.New(),
		MenuID:    req.MenuID,
		Quantity:  req.Quantity,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.cartRepo.Insert(ctx, item); err != nil {
		s.logger.Error().Err(err).Str("menu_id", req.MenuID.String()).Msg("failed to insert cart item")
		return false, fmt.Errorf("failed to add cart item: %w", err)
	}

	return true, nil
}

// RemoveItem removes one cart entry.
func (s *cartService) RemoveItem(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.cartRepo.Delete(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("cart_id", id.String()).Msg("failed to remove cart item")
		return fmt.Errorf("failed to remove cart item: %w", err)
	}
	if !deleted {
		return model.ErrMenuNotFound
	}
	return nil
}

// Clear empties the cart.
func (s *cartService) Clear(ctx context.Context) error {
	if err := s.cartRepo.Clear(ctx); err != nil {
		s.logger.Error().Err(err).Msg("failed to clear cart")
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}
