package domain

import (
	"time"

	"github.com/google/uuid"
)

// Item is a menu item the vendor sells. Price is in minor currency units
// (e.g. cents); Stock is the number of portions currently available for
// ordering.
type Item struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name" validate:"required,min=1,max=255"`
	Description string    `json:"description" validate:"required,max=150"`
	Price       int64     `json:"price" validate:"required,min=1"`
	Stock       int       `json:"stock" validate:"min=0"`
	Categories  []string  `json:"categories,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// InStock reports whether the item has any stock at all.
func (i *Item) InStock() bool {
	return i.Stock > 0
}

// HasStock reports whether the item can cover a withdrawal of quantity.
func (i *Item) HasStock(quantity int) bool {
	return i.Stock >= quantity
}

// CreateItemRequest is the payload for creating a menu item.
type CreateItemRequest struct {
	Name        string   `json:"name" validate:"required,min=1,max=255"`
	Description string   `json:"description" validate:"required,max=150"`
	Price       int64    `json:"price" validate:"required,min=1"`
	Stock       int      `json:"stock" validate:"min=0"`
	Categories  []string `json:"categories,omitempty" validate:"dive,min=1,max=100"`
}

// UpdateItemRequest is the payload for updating a menu item. Nil fields are
// left unchanged. Stock is not updatable here; it moves only through orders
// and explicit stock adjustments.
type UpdateItemRequest struct {
	Name        *string  `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Description *string  `json:"description,omitempty" validate:"omitempty,min=1,max=150"`
	Price       *int64   `json:"price,omitempty" validate:"omitempty,min=1"`
	Categories  []string `json:"categories,omitempty" validate:"omitempty,dive,min=1,max=100"`
}

// AdjustStockRequest is the payload for a manual stock adjustment. Delta may
// be negative; the resulting stock must not go below zero.
type AdjustStockRequest struct {
	Delta int `json:"delta" validate:"required"`
}

// ItemFilter narrows item listings.
type ItemFilter struct {
	Category string
	InStock  bool
	Page     int
	PerPage  int
}
