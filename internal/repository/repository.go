package repository

import (
	"context"
	"errors"

	"seacoff/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ErrDuplicateName is returned by CustomerRepository.Insert when another
// transaction already created a customer with the same name.
var ErrDuplicateName = errors.New("customer name already exists")

// MenuRepository defines the interface for menu catalogue data access.
type MenuRepository interface {
	// GetAll retrieves menu items with pagination support.
	GetAll(ctx context.Context, limit, offset int) ([]model.Menu, error)

	// GetByID retrieves a single menu item by its ID.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Menu, error)

	// Create inserts a new menu item.
	Create(ctx context.Context, menu *model.Menu) error

	// Update overwrites an existing menu item. Returns false if no row matched.
	Update(ctx context.Context, menu *model.Menu) (bool, error)

	// Delete removes a menu item. Returns false if no row matched.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// CartRepository defines the interface for cart data access.
type CartRepository interface {
	// GetAll retrieves all cart entries joined with their menu items.
	GetAll(ctx context.Context) ([]model.CartItemDetail, error)

	// GetByMenuID retrieves the cart entry for a menu item, if any.
	GetByMenuID(ctx context.Context, menuID uuid.UUID) (*model.CartItem, error)

	// Insert adds a new cart entry.
	Insert(ctx context.Context, item *model.CartItem) error

	// AddQuantity increments the quantity of an existing cart entry.
	AddQuantity(ctx context.Context, id uuid.UUID, delta int) error

	// Delete removes one cart entry. Returns false if no row matched.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)

	// Clear removes all cart entries.
	Clear(ctx context.Context) error
}

// CustomerRepository defines customer data access. Both methods operate
// within the caller's transaction so the order flow's lookup-or-create is
// atomic with the order write.
type CustomerRepository interface {
	// GetByName retrieves a customer by display name, or (nil, nil) if absent.
	GetByName(ctx context.Context, tx pgx.Tx, name string) (*model.Customer, error)

	// Insert creates a customer. Returns ErrDuplicateName if a concurrent
	// submission won the race on the unique name constraint.
	Insert(ctx context.Context, tx pgx.Tx, customer *model.Customer) error
}

// OrderRepository defines the interface for order data access operations.
type OrderRepository interface {
	// BeginTx starts a new database transaction.
	BeginTx(ctx context.Context) (pgx.Tx, error)

	// CreateOrder inserts a new order header within the provided transaction.
	CreateOrder(ctx context.Context, tx pgx.Tx, order *model.Order) error

	// CreateOrderItems inserts the order's line items within the provided transaction.
	CreateOrderItems(ctx context.Context, tx pgx.Tx, items []model.OrderItem) error

	// GetAll retrieves order headers, most recent first.
	GetAll(ctx context.Context, limit, offset int) ([]model.Order, error)

	// GetByID retrieves an order by its ID along with its items.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Order, []model.OrderItem, error)

	// UpdateStatus sets the status of an order. Returns false if no row matched.
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (bool, error)
}

// AdminRepository defines the interface for admin account data access.
type AdminRepository interface {
	// GetByUsername retrieves an admin by username, or (nil, nil) if absent.
	GetByUsername(ctx context.Context, username string) (*model.Admin, error)

	// Create inserts a new admin account.
	Create(ctx context.Context, admin *model.Admin) error
}

// DashboardRepository defines the read-only sales reporting queries.
type DashboardRepository interface {
	SalesPerDay(ctx context.Context, r model.DateRange, limit int) ([]model.DailySales, error)
	BestSellers(ctx context.Context, r model.DateRange, limit int) ([]model.BestSeller, error)
	Overview(ctx context.Context, periodDays int) (*model.Overview, error)
	RevenueTrend(ctx context.Context, bucketFormat string, days int) ([]model.RevenuePoint, error)
	TopCustomers(ctx context.Context, r model.DateRange, limit int) ([]model.TopCustomer, error)
}
