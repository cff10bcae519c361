package domain

import (
	"time"

	"github.com/google/uuid"
)

// Order is a customer order. TotalPrice is in minor currency units and is
// always the sum of the line totals; it is recomputed inside every
// transaction that touches the order's lines.
type Order struct {
	ID            uuid.UUID   `json:"id"`
	CustomerName  string      `json:"customer_name" validate:"required,min=1,max=255"`
	CustomerEmail string      `json:"customer_email" validate:"required,email"`
	Address       string      `json:"address" validate:"required,min=1,max=500"`
	Status        Status      `json:"status"`
	TotalPrice    int64       `json:"total_price"`
	Lines         []OrderLine `json:"lines"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

// OrderLine ties a quantity of one item to an order. UnitPrice is the item's
// price captured when the line was last written, so later price changes do
// not rewrite history.
type OrderLine struct {
	ID        uuid.UUID `json:"id"`
	OrderID   uuid.UUID `json:"order_id"`
	ItemID    uuid.UUID `json:"item_id" validate:"required"`
	ItemName  string    `json:"item_name,omitempty"`
	Quantity  int       `json:"quantity" validate:"required,min=1"`
	UnitPrice int64     `json:"unit_price"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LineTotal is the line's contribution to the order total.
func (l *OrderLine) LineTotal() int64 {
	return l.UnitPrice * int64(l.Quantity)
}

// CreateOrderRequest is the payload for placing an order. An order starts in
// status NEW and must carry at least one line.
type CreateOrderRequest struct {
	CustomerName  string             `json:"customer_name" validate:"required,min=1,max=255"`
	CustomerEmail string             `json:"customer_email" validate:"required,email"`
	Address       string             `json:"address" validate:"required,min=1,max=500"`
	Lines         []OrderLineRequest `json:"lines" validate:"required,min=1,dive"`
}

// OrderLineRequest is one requested line of an order. A quantity of zero asks
// for the line's removal when the order is being updated.
type OrderLineRequest struct {
	ItemID   uuid.UUID `json:"item_id" validate:"required"`
	Quantity int       `json:"quantity" validate:"min=0"`
}

// UpdateOrderRequest is the payload for updating an order. A nil Status
// leaves the status unchanged; Lines, if present, is the full desired set of
// lines and is reconciled against the stored ones. Lines absent from the
// request (or requested with quantity zero) are removed; an empty array
// removes every line.
type UpdateOrderRequest struct {
	CustomerName  *string            `json:"customer_name,omitempty" validate:"omitempty,min=1,max=255"`
	CustomerEmail *string            `json:"customer_email,omitempty" validate:"omitempty,email"`
	Address       *string            `json:"address,omitempty" validate:"omitempty,min=1,max=500"`
	Status        *Status            `json:"status,omitempty"`
	Lines         []OrderLineRequest `json:"lines,omitempty" validate:"omitempty,dive"`
}

// OrderFilter narrows order listings and reports.
type OrderFilter struct {
	CustomerEmail string
	Status        *Status
	Date          *time.Time
	DateFrom      *time.Time
	DateTo        *time.Time
	MinTotal      *int64
	MaxTotal      *int64
	Page          int
	PerPage       int
}
