package model

import (
	"time"

	"github.com/google/uuid"
)

// CartItem represents an entry in the shared cart, keyed by menu item.
type CartItem struct {
	ID        uuid.UUID `json:"id" db:"id"`
	MenuID    uuid.UUID `json:"menuId" db:"menu_id"`
	Quantity  int       `json:"quantity" db:"quantity"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// CartItemDetail is a cart entry joined with its menu item.
type CartItemDetail struct {
	CartItem
	MenuName string  `json:"menuName" db:"menu_name"`
	Price    float64 `json:"price" db:"price"`
	Subtotal float64 `json:"subtotal" db:"subtotal"`
}

// CartRequest represents the payload for adding an item to the cart.
type CartRequest struct {
	MenuID   uuid.UUID `json:"menuId"`
	Quantity int       `json:"quantity"`
}
