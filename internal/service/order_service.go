package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"seacoff/internal/model"
	"seacoff/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// totalTolerance absorbs float rounding when comparing the declared total
// against the recomputed sum of line totals.
const totalTolerance = 0.005

// orderService implements OrderService.
type orderService struct {
	orderRepo    repository.OrderRepository
	customerRepo repository.CustomerRepository
	logger       zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(
	orderRepo repository.OrderRepository,
	customerRepo repository.CustomerRepository,
	logger zerolog.Logger,
) OrderService {
	return &orderService{
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		logger:       logger.With().Str("service", "order").Logger(),
	}
}

// Submit validates and persists an order with its line items as a single
// atomic unit. The customer is resolved by name or created inside the same
// transaction, so either all rows (customer-if-new, order, items) become
// visible together or none do.
func (s *orderService) Submit(ctx context.Context, req *model.OrderRequest) (*model.OrderResponse, error) {
	if err := s.validateOrderRequest(req); err != nil {
		return nil, err
	}

	tx, err := s.orderRepo.BeginTx(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to submit order: %w", err)
	}

	// Roll back everything on any failure below.
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	customerID, err := s.resolveCustomer(ctx, tx, req.CustomerName)
	if err != nil {
		s.logger.Error().Err(err).Str("customer", req.CustomerName).Msg("failed to resolve customer")
		return nil, fmt.Errorf("failed to submit order: %w", err)
	}

	now := time.Now()
	order := &model.Order{
		ID:           uuid.New(),
		CustomerID:   customerID,
		CustomerName: req.CustomerName,
		TotalAmount:  req.TotalAmount,
		Status:       req.Status,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err = s.orderRepo.CreateOrder(ctx, tx, order); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to create order")
		return nil, fmt.Errorf("failed to submit order: %w", err)
	}

	items := make([]model.OrderItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = model.OrderItem{
			ID:          uuid.New(),
			OrderID:     order.ID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			LineTotal:   float64(item.Quantity) * item.UnitPrice,
			CreatedAt:   now,
		}
	}

	if err = s.orderRepo.CreateOrderItems(ctx, tx, items); err != nil {
		s.logger.Error().
			Err(err).
			Str("order_id", order.ID.String()).
			Int("item_count", len(items)).
			Msg("failed to create order items")
		return nil, fmt.Errorf("failed to submit order: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to commit transaction")
		return nil, fmt.Errorf("failed to submit order: %w", err)
	}

	s.logger.Info().
		Str("order_id", order.ID.String()).
		Str("customer", order.CustomerName).
		Int("item_count", len(items)).
		Float64("total", order.TotalAmount).
		Msg("order submitted")

	return &model.OrderResponse{
		Message: "order placed successfully",
		OrderID: order.ID,
	}, nil
}

// resolveCustomer looks up a customer by name inside the transaction and
// creates one if absent. A lost race on the unique name constraint is
// resolved by re-querying rather than failing the submission.
func (s *orderService) resolveCustomer(ctx context.Context, tx pgx.Tx, name string) (uuid.UUID, error) {
	customer, err := s.customerRepo.GetByName(ctx, tx, name)
	if err != nil {
		return uuid.Nil, err
	}
	if customer != nil {
		return customer.ID, nil
	}

	now := time.Now()
	fresh := &model.Customer{
		ID:        uuid.New(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = s.customerRepo.Insert(ctx, tx, fresh)
	if err == nil {
		return fresh.ID, nil
	}
	if !errors.Is(err, repository.ErrDuplicateName) {
		return uuid.Nil, err
	}

	// Another submission created the customer between lookup and insert.
	customer, err = s.customerRepo.GetByName(ctx, tx, name)
	if err != nil {
		return uuid.Nil, err
	}
	if customer == nil {
		return uuid.Nil, fmt.Errorf("customer %q vanished after conflicting insert", name)
	}
	return customer.ID, nil
}

// GetAll retrieves order headers, most recent first.
func (s *orderService) GetAll(ctx context.Context, limit, offset int) ([]model.Order, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	orders, err := s.orderRepo.GetAll(ctx, limit, offset)
	if err != nil {
		s.logger.Error().Err(err).
			Int("limit", limit).
			Int("offset", offset).
			Msg("failed to get orders")
		return nil, fmt.Errorf("failed to get orders: %w", err)
	}

	return orders, nil
}

// GetByID retrieves an order with its line items.
func (s *orderService) GetByID(ctx context.Context, id uuid.UUID) (*model.OrderDetail, error) {
	order, items, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to get order")
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	if order == nil {
		s.logger.Debug().Str("order_id", id.String()).Msg("order not found")
		return nil, model.ErrOrderNotFound
	}

	return &model.OrderDetail{Order: *order, Items: items}, nil
}

// UpdateStatus transitions an order to a new status from the allowed set.
func (s *orderService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	if !model.ValidStatus(status) {
		s.logger.Warn().Str("status", status).Msg("invalid status token")
		return model.ErrInvalidStatus
	}

	updated, err := s.orderRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to update order status")
		return fmt.Errorf("failed to update order status: %w", err)
	}

	if !updated {
		return model.ErrOrderNotFound
	}

	s.logger.Info().
		Str("order_id", id.String()).
		Str("status", status).
		Msg("order status updated")

	return nil
}

// validateOrderRequest rejects the whole request before any storage access.
func (s *orderService) validateOrderRequest(req *model.OrderRequest) error {
	if req == nil {
		return fmt.Errorf("order request is nil")
	}

	if strings.TrimSpace(req.CustomerName) == "" {
		return fmt.Errorf("customer name is required")
	}

	if req.TotalAmount <= 0 {
		return fmt.Errorf("total amount must be positive")
	}

	if !model.ValidStatus(req.Status) {
		s.logger.Warn().Str("status", req.Status).Msg("invalid status on submission")
		return model.ErrInvalidStatus
	}

	if len(req.Items) == 0 {
		return fmt.Errorf("order must contain at least one item")
	}

	var sum float64
	for i, item := range req.Items {
		if strings.TrimSpace(item.ProductName) == "" {
			return fmt.Errorf("item %d: product name is required", i)
		}

		if item.Quantity <= 0 {
			s.logger.Warn().
				Int("item_index", i).
				Str("product_name", item.ProductName).
				Int("quantity", item.Quantity).
				Msg("invalid quantity")
			return model.ErrInvalidQuantity
		}

		if item.UnitPrice < 0 {
			return fmt.Errorf("item %d: unit price must not be negative", i)
		}

		sum += float64(item.Quantity) * item.UnitPrice
	}

	// The persisted total must reflect the line items, not the caller's word.
	if math.Abs(sum-req.TotalAmount) > totalTolerance {
		s.logger.Warn().
			Float64("declared", req.TotalAmount).
			Float64("computed", sum).
			Msg("declared total does not match line totals")
		return model.ErrTotalMismatch
	}

	return nil
}
