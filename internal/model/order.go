package model

import (
	"time"

	"github.com/google/uuid"
)

// Order statuses accepted on creation and status updates.
const (
	StatusPending  = "pending"
	StatusPaid     = "paid"
	StatusCanceled = "canceled"
)

// ValidStatus reports whether s is one of the allowed order statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusPaid, StatusCanceled:
		return true
	}
	return false
}

// Order represents an order header.
type Order struct {
	ID           uuid.UUID `json:"id" db:"id"`
	CustomerID   uuid.UUID `json:"customerId" db:"customer_id"`
	CustomerName string    `json:"customerName" db:"customer_name"`
	TotalAmount  float64   `json:"totalAmount" db:"total_amount"`
	Status       string    `json:"status" db:"status"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

// OrderItem represents a line item belonging to an order. The product name
// and unit price are denormalized; the line total is always computed
// server-side as quantity * unit price.
type OrderItem struct {
	ID          uuid.UUID `json:"-" db:"id"`
	OrderID     uuid.UUID `json:"-" db:"order_id"`
	ProductName string    `json:"productName" db:"product_name"`
	Quantity    int       `json:"quantity" db:"quantity"`
	UnitPrice   float64   `json:"unitPrice" db:"unit_price"`
	LineTotal   float64   `json:"lineTotal" db:"line_total"`
	CreatedAt   time.Time `json:"-" db:"created_at"`
}

// OrderRequest represents the request payload for submitting an order.
type OrderRequest struct {
	CustomerName string             `json:"customerName"`
	TotalAmount  float64            `json:"totalAmount"`
	Status       string             `json:"status"`
	Items        []OrderItemRequest `json:"items"`
}

// OrderItemRequest represents a single line item in an order request.
type OrderItemRequest struct {
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
}

// OrderResponse represents the response payload for a submitted order.
type OrderResponse struct {
	Message string    `json:"message"`
	OrderID uuid.UUID `json:"orderId"`
}

// OrderDetail represents an order header together with its line items.
type OrderDetail struct {
	Order Order       `json:"order"`
	Items []OrderItem `json:"items"`
}

// StatusUpdateRequest represents the payload for an order status change.
type StatusUpdateRequest struct {
	Status string `json:"status"`
}
