package service

import (
	"context"

	"seacoff/internal/model"

	"github.com/google/uuid"
)

// MenuService defines operations for menu catalogue management.
type MenuService interface {
	// GetAll retrieves menu items with pagination.
	GetAll(ctx context.Context, limit, offset int) ([]model.Menu, error)

	// GetByID retrieves a single menu item by ID.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Menu, error)

	// Create adds a new menu item.
	Create(ctx context.Context, req *model.MenuRequest) (*model.Menu, error)

	// Update overwrites an existing menu item.
	Update(ctx context.Context, id uuid.UUID, req *model.MenuRequest) (*model.Menu, error)

	// Delete removes a menu item.
	Delete(ctx context.Context, id uuid.UUID) error
}

// CartService defines operations for the shared cart.
type CartService interface {
	// List retrieves all cart entries with menu details.
	List(ctx context.Context) ([]model.CartItemDetail, error)

	// AddItem adds a menu item to the cart, incrementing the quantity if the
	// item is already present. It reports whether a new entry was created.
	AddItem(ctx context.Context, req *model.CartRequest) (created bool, err error)

	// RemoveItem removes one cart entry.
	RemoveItem(ctx context.Context, id uuid.UUID) error

	// Clear empties the cart.
	Clear(ctx context.Context) error
}

// OrderService defines operations for order submission and management.
type OrderService interface {
	// Submit validates and persists an order with its line items as a single
	// atomic unit, resolving or creating the customer by name.
	Submit(ctx context.Context, req *model.OrderRequest) (*model.OrderResponse, error)

	// GetAll retrieves order headers, most recent first.
	GetAll(ctx context.Context, limit, offset int) ([]model.Order, error)

	// GetByID retrieves an order with its line items.
	GetByID(ctx context.Context, id uuid.UUID) (*model.OrderDetail, error)

	// UpdateStatus transitions an order to a new status from the allowed set.
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
}

// AuthService defines admin authentication operations.
type AuthService interface {
	// Login verifies admin credentials and issues a JWT.
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
}

// DashboardService defines the sales reporting operations.
type DashboardService interface {
	SalesPerDay(ctx context.Context, r model.DateRange, limit int) ([]model.DailySales, error)
	BestSellers(ctx context.Context, r model.DateRange, limit int) ([]model.BestSeller, error)
	Overview(ctx context.Context, periodDays int) (*model.Overview, error)
	RevenueTrend(ctx context.Context, period string) ([]model.RevenuePoint, error)
	TopCustomers(ctx context.Context, r model.DateRange, limit int) ([]model.TopCustomer, error)
}
