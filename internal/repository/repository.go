package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/adityatriand/catering-app/internal/domain"
)

// ItemRepository defines the interface for menu item persistence operations.
// DecreaseStock and IncreaseStock are the two ledger primitives every stock
// movement in the system goes through.
type ItemRepository interface {
	// Create inserts a new item together with its category links.
	Create(ctx context.Context, item *domain.Item) error

	// GetByID retrieves an item by its unique identifier, including its
	// category names.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Item, error)

	// List returns items matching the given filter along with the total count.
	List(ctx context.Context, filter domain.ItemFilter) ([]domain.Item, int, error)

	// Update modifies an item's descriptive fields and category links.
	// Stock is not touched here.
	Update(ctx context.Context, item *domain.Item) error

	// Delete removes an item. It fails with a conflict if any order line
	// still references the item.
	Delete(ctx context.Context, id uuid.UUID) error

	// DecreaseStock withdraws quantity from the item's stock. The decrement
	// is conditional: it succeeds only if stock can cover the withdrawal,
	// and returns an insufficient-stock error otherwise.
	DecreaseStock(ctx context.Context, id uuid.UUID, quantity int) error

	// IncreaseStock returns quantity to the item's stock.
	IncreaseStock(ctx context.Context, id uuid.UUID, quantity int) error

	// AdjustStock applies a signed manual correction and returns the item
	// with its new stock level. A delta that would take stock below zero
	// fails the same way DecreaseStock does.
	AdjustStock(ctx context.Context, id uuid.UUID, delta int) (*domain.Item, error)
}

// OrderRepository defines the interface for order persistence operations.
// Every method that moves stock does so in a single database transaction, so
// an order and the item ledger can never disagree.
type OrderRepository interface {
	// Create inserts a new order with its lines and withdraws stock for
	// every line atomically. If any item cannot cover its line, nothing is
	// inserted and no stock moves.
	Create(ctx context.Context, order *domain.Order) error

	// GetByID retrieves an order by its unique identifier, including lines.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error)

	// List returns orders matching the given filter along with the total count.
	List(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, int, error)

	// UpdateCustomer modifies the order's customer fields only.
	UpdateCustomer(ctx context.Context, order *domain.Order) error

	// ChangeStatus moves the order from one status to another, applying the
	// transition's stock effect to every line atomically. A reserve that any
	// item cannot cover fails the whole transition.
	ChangeStatus(ctx context.Context, id uuid.UUID, to domain.Status) (*domain.Order, error)

	// ReconcileLines replaces the order's line set with the desired one,
	// applying only the stock deltas between stored and desired quantities.
	// Desired lines missing from storage are added, stored lines missing
	// from the request are removed, and the order total is recomputed, all
	// in one transaction.
	ReconcileLines(ctx context.Context, orderID uuid.UUID, desired []domain.OrderLineRequest) (*domain.Order, error)

	// Delete removes the order and its lines, returning stock for every
	// line if the order's status holds stock.
	Delete(ctx context.Context, id uuid.UUID) error
}

// CategoryRepository defines the interface for category persistence operations.
type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error)
	List(ctx context.Context) ([]domain.Category, error)
	Update(ctx context.Context, category *domain.Category) error
	Delete(ctx context.Context, id uuid.UUID) error
}
