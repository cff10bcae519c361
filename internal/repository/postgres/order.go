package postgres

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/adityatriand/catering-app/internal/domain"
	"github.com/adityatriand/catering-app/pkg/database"
	apperrors "github.com/adityatriand/catering-app/pkg/errors"
)

// OrderRepository implements repository.OrderRepository using PostgreSQL.
// Every stock-moving method runs in a single transaction: the order rows and
// the item stock counters commit together or not at all.
type OrderRepository struct {
	pool database.DBTX
}

// NewOrderRepository creates a new PostgreSQL-backed order repository.
func NewOrderRepository(pool database.DBTX) *OrderRepository {
	return &OrderRepository{pool: pool}
}

// lockedItem is the slice of an item row a stock-moving transaction needs.
type lockedItem struct {
	Name  string
	Price int64
	Stock int
}

// Create inserts a new order with its lines and withdraws stock for every
// line atomically. All referenced items are locked and validated before any
// row is written, so either the whole order lands or nothing does.
func (r *OrderRepository) Create(ctx context.Context, o *domain.Order) error {
	if err := checkDuplicateLines(o.Lines); err != nil {
		return err
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	itemIDs := make([]uuid.UUID, len(o.Lines))
	for i, line := range o.Lines {
		itemIDs[i] = line.ItemID
	}

	items, err := lockItems(ctx, tx, itemIDs)
	if err != nil {
		return err
	}

	// Validate every line before touching anything.
	for _, line := range o.Lines {
		item, ok := items[line.ItemID]
		if !ok {
			return apperrors.NotFound("item", line.ItemID.String())
		}
		if item.Stock < line.Quantity {
			return apperrors.InsufficientStock(line.ItemID.String(), line.Quantity, item.Stock)
		}
	}

	orderQuery := `
		INSERT INTO orders (id, customer_name, customer_email, address, status, total_price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err = tx.Exec(ctx, orderQuery,
		o.ID,
		o.CustomerName,
		o.CustomerEmail,
		o.Address,
		o.Status,
		int64(0),
		o.CreatedAt,
		o.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	lineQuery := `
		INSERT INTO order_lines (id, order_id, item_id, quantity, unit_price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	for i := range o.Lines {
		line := &o.Lines[i]
		item := items[line.ItemID]
		line.UnitPrice = item.Price
		line.ItemName = item.Name

		_, err = tx.Exec(ctx, lineQuery,
			line.ID,
			o.ID,
			line.ItemID,
			line.Quantity,
			line.UnitPrice,
			line.CreatedAt,
			line.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert order line: %w", err)
		}

		if err := adjustItemStock(ctx, tx, line.ItemID, -line.Quantity); err != nil {
			return err
		}
	}

	total, err := recomputeTotal(ctx, tx, o.ID)
	if err != nil {
		return err
	}
	o.TotalPrice = total

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

// GetByID retrieves an order by its ID, eagerly loading its lines with item
// names in a single query using LEFT JOIN + JSONB_AGG.
func (r *OrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	query := `
		SELECT
			o.id, o.customer_name, o.customer_email, o.address, o.status,
			o.total_price, o.created_at, o.updated_at,
			COALESCE(
				JSONB_AGG(
					JSONB_BUILD_OBJECT(
						'id', ol.id,
						'order_id', ol.order_id,
						'item_id', ol.item_id,
						'item_name', i.name,
						'quantity', ol.quantity,
						'unit_price', ol.unit_price
					) ORDER BY i.name
				) FILTER (WHERE ol.id IS NOT NULL),
				'[]'::jsonb
			) AS lines
		FROM orders o
		LEFT JOIN order_lines ol ON ol.order_id = o.id
		LEFT JOIN items i ON i.id = ol.item_id
		WHERE o.id = $1
		GROUP BY o.id, o.customer_name, o.customer_email, o.address, o.status,
			o.total_price, o.created_at, o.updated_at`

	var (
		o         domain.Order
		linesJSON []byte
	)

	err := r.pool.QueryRow(ctx, query, id).Scan(
		&o.ID,
		&o.CustomerName,
		&o.CustomerEmail,
		&o.Address,
		&o.Status,
		&o.TotalPrice,
		&o.CreatedAt,
		&o.UpdatedAt,
		&linesJSON,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("order", id.String())
		}
		return nil, fmt.Errorf("scan order: %w", err)
	}

	o.Lines = []domain.OrderLine{}
	if len(linesJSON) > 0 && string(linesJSON) != "null" && string(linesJSON) != "[]" {
		if err := json.Unmarshal(linesJSON, &o.Lines); err != nil {
			return nil, fmt.Errorf("unmarshal order lines: %w", err)
		}
	}

	return &o, nil
}

// List returns orders matching the given filter with the total count.
func (r *OrderRepository) List(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, int, error) {
	var (
		conditions []string
		args       []any
		argIndex   = 1
	)

	if filter.CustomerEmail != "" {
		conditions = append(conditions, fmt.Sprintf("customer_email = $%d", argIndex))
		args = append(args, filter.CustomerEmail)
		argIndex++
	}
	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argIndex))
		args = append(args, *filter.Status)
		argIndex++
	}
	if filter.Date != nil {
		conditions = append(conditions, fmt.Sprintf("created_at::date = $%d::date", argIndex))
		args = append(args, *filter.Date)
		argIndex++
	}
	if filter.DateFrom != nil {
		conditions = append(conditions, fmt.Sprintf("created_at >= $%d", argIndex))
		args = append(args, *filter.DateFrom)
		argIndex++
	}
	if filter.DateTo != nil {
		conditions = append(conditions, fmt.Sprintf("created_at < $%d", argIndex))
		args = append(args, *filter.DateTo)
		argIndex++
	}
	if filter.MinTotal != nil {
		conditions = append(conditions, fmt.Sprintf("total_price >= $%d", argIndex))
		args = append(args, *filter.MinTotal)
		argIndex++
	}
	if filter.MaxTotal != nil {
		conditions = append(conditions, fmt.Sprintf("total_price <= $%d", argIndex))
		args = append(args, *filter.MaxTotal)
		argIndex++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	// Use count(*) OVER() for total count in a single query.
	query := fmt.Sprintf(`
		SELECT id, customer_name, customer_email, address, status, total_price, created_at, updated_at,
			   count(*) OVER() AS total_count
		FROM orders
		%s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d`,
		whereClause, argIndex, argIndex+1,
	)

	limit := filter.PerPage
	if limit <= 0 {
		limit = 20
	}
	offset := 0
	if filter.Page > 1 {
		offset = (filter.Page - 1) * limit
	}

	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var totalCount int
	orders := make([]domain.Order, 0)

	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(
			&o.ID,
			&o.CustomerName,
			&o.CustomerEmail,
			&o.Address,
			&o.Status,
			&o.TotalPrice,
			&o.CreatedAt,
			&o.UpdatedAt,
			&totalCount,
		); err != nil {
			return nil, 0, fmt.Errorf("scan order row: %w", err)
		}
		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate order rows: %w", err)
	}

	// Batch-load lines for all orders in a single query to avoid N+1.
	if len(orders) > 0 {
		orderIDs := make([]uuid.UUID, len(orders))
		for i := range orders {
			orderIDs[i] = orders[i].ID
		}

		linesQuery := `
			SELECT ol.id, ol.order_id, ol.item_id, i.name, ol.quantity, ol.unit_price, ol.created_at, ol.updated_at
			FROM order_lines ol
			JOIN items i ON i.id = ol.item_id
			WHERE ol.order_id = ANY($1)
			ORDER BY i.name`

		lineRows, err := r.pool.Query(ctx, linesQuery, orderIDs)
		if err != nil {
			return nil, 0, fmt.Errorf("batch load order lines: %w", err)
		}
		defer lineRows.Close()

		linesByOrderID := make(map[uuid.UUID][]domain.OrderLine, len(orders))
		for lineRows.Next() {
			var line domain.OrderLine
			if err := lineRows.Scan(
				&line.ID,
				&line.OrderID,
				&line.ItemID,
				&line.ItemName,
				&line.Quantity,
				&line.UnitPrice,
				&line.CreatedAt,
				&line.UpdatedAt,
			); err != nil {
				return nil, 0, fmt.Errorf("scan order line: %w", err)
			}
			linesByOrderID[line.OrderID] = append(linesByOrderID[line.OrderID], line)
		}
		if err := lineRows.Err(); err != nil {
			return nil, 0, fmt.Errorf("iterate batch order line rows: %w", err)
		}

		for i := range orders {
			if lines, ok := linesByOrderID[orders[i].ID]; ok {
				orders[i].Lines = lines
			} else {
				orders[i].Lines = []domain.OrderLine{}
			}
		}
	}

	return orders, totalCount, nil
}

// UpdateCustomer modifies the order's customer fields only. Status and lines
// have their own paths because they move stock.
func (r *OrderRepository) UpdateCustomer(ctx context.Context, o *domain.Order) error {
	o.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE orders
		SET customer_name = $1, customer_email = $2, address = $3, updated_at = $4
		WHERE id = $5`

	ct, err := r.pool.Exec(ctx, query,
		o.CustomerName,
		o.CustomerEmail,
		o.Address,
		o.UpdatedAt,
		o.ID,
	)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("order", o.ID.String())
	}
	return nil
}

// ChangeStatus moves the order to a new status and applies the transition's
// stock effect to every line inside one transaction. The order row is locked
// first so concurrent transitions on the same order serialize.
func (r *OrderRepository) ChangeStatus(ctx context.Context, id uuid.UUID, to domain.Status) (*domain.Order, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var from domain.Status
	err = tx.QueryRow(ctx, `SELECT status FROM orders WHERE id = $1 FOR UPDATE`, id).Scan(&from)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("order", id.String())
		}
		return nil, fmt.Errorf("lock order: %w", err)
	}

	if effect := domain.TransitionEffect(from, to); effect != domain.EffectNone {
		lines, err := loadLineQuantities(ctx, tx, id)
		if err != nil {
			return nil, err
		}

		itemIDs := make([]uuid.UUID, 0, len(lines))
		for itemID := range lines {
			itemIDs = append(itemIDs, itemID)
		}

		items, err := lockItems(ctx, tx, itemIDs)
		if err != nil {
			return nil, err
		}

		if effect == domain.EffectReserve {
			for itemID, quantity := range lines {
				item, ok := items[itemID]
				if !ok {
					return nil, apperrors.NotFound("item", itemID.String())
				}
				if item.Stock < quantity {
					return nil, apperrors.InsufficientStock(itemID.String(), quantity, item.Stock)
				}
			}
		}

		for itemID, quantity := range lines {
			delta := quantity
			if effect == domain.EffectReserve {
				delta = -quantity
			}
			if err := adjustItemStock(ctx, tx, itemID, delta); err != nil {
				return nil, err
			}
		}
	}

	_, err = tx.Exec(ctx, `UPDATE orders SET status = $1, updated_at = $2 WHERE id = $3`,
		to, time.Now().UTC(), id)
	if err != nil {
		return nil, fmt.Errorf("update order status: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}

	return r.GetByID(ctx, id)
}

// ReconcileLines replaces the order's line set with the desired one. Stored
// lines absent from the request are removed, new ones are added, and changed
// quantities move only the difference in stock. Stock effects apply only
// while the order's status holds stock; the order total is recomputed from
// the surviving lines before commit.
func (r *OrderRepository) ReconcileLines(ctx context.Context, orderID uuid.UUID, desired []domain.OrderLineRequest) (*domain.Order, error) {
	// A requested quantity of zero is a removal: after the duplicate check the
	// entry behaves exactly like an omitted line.
	seen := make(map[uuid.UUID]struct{}, len(desired))
	active := make([]domain.OrderLineRequest, 0, len(desired))
	for _, d := range desired {
		if _, dup := seen[d.ItemID]; dup {
			return nil, apperrors.InvalidInput(fmt.Sprintf("duplicate item %s in order lines", d.ItemID))
		}
		seen[d.ItemID] = struct{}{}
		if d.Quantity > 0 {
			active = append(active, d)
		}
	}
	desired = active

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var status domain.Status
	err = tx.QueryRow(ctx, `SELECT status FROM orders WHERE id = $1 FOR UPDATE`, orderID).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("order", orderID.String())
		}
		return nil, fmt.Errorf("lock order: %w", err)
	}
	holdsStock := status.HoldsStock()

	type storedLine struct {
		ID       uuid.UUID
		Quantity int
	}
	stored := make(map[uuid.UUID]storedLine)
	rows, err := tx.Query(ctx, `SELECT id, item_id, quantity FROM order_lines WHERE order_id = $1`, orderID)
	if err != nil {
		return nil, fmt.Errorf("load order lines: %w", err)
	}
	for rows.Next() {
		var (
			line   storedLine
			itemID uuid.UUID
		)
		if err := rows.Scan(&line.ID, &itemID, &line.Quantity); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan order line: %w", err)
		}
		stored[itemID] = line
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order lines: %w", err)
	}

	// Lock every item touched by either side of the reconciliation.
	involved := make(map[uuid.UUID]struct{}, len(stored)+len(desired))
	for itemID := range stored {
		involved[itemID] = struct{}{}
	}
	for _, d := range desired {
		involved[d.ItemID] = struct{}{}
	}
	itemIDs := make([]uuid.UUID, 0, len(involved))
	for itemID := range involved {
		itemIDs = append(itemIDs, itemID)
	}

	items, err := lockItems(ctx, tx, itemIDs)
	if err != nil {
		return nil, err
	}

	// Validate every desired line before applying any change.
	for _, d := range desired {
		item, ok := items[d.ItemID]
		if !ok {
			return nil, apperrors.NotFound("item", d.ItemID.String())
		}
		if holdsStock {
			needed := d.Quantity
			if prev, ok := stored[d.ItemID]; ok {
				needed -= prev.Quantity
			}
			if needed > item.Stock {
				return nil, apperrors.InsufficientStock(d.ItemID.String(), needed, item.Stock)
			}
		}
	}

	now := time.Now().UTC()
	desiredSet := make(map[uuid.UUID]struct{}, len(desired))
	changed := false

	for _, d := range desired {
		desiredSet[d.ItemID] = struct{}{}
		item := items[d.ItemID]

		prev, exists := stored[d.ItemID]
		switch {
		case !exists:
			changed = true
			_, err = tx.Exec(ctx, `
				INSERT INTO order_lines (id, order_id, item_id, quantity, unit_price, created_at, updated_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7)`,
				uuid.New(), orderID, d.ItemID, d.Quantity, item.Price, now, now)
			if err != nil {
				return nil, fmt.Errorf("insert order line: %w", err)
			}
			if holdsStock {
				if err := adjustItemStock(ctx, tx, d.ItemID, -d.Quantity); err != nil {
					return nil, err
				}
			}

		case prev.Quantity != d.Quantity:
			changed = true
			// Only the quantity moves; the unit price stays the snapshot
			// taken when the line was created, whatever the item costs now.
			_, err = tx.Exec(ctx, `
				UPDATE order_lines SET quantity = $1, updated_at = $2 WHERE id = $3`,
				d.Quantity, now, prev.ID)
			if err != nil {
				return nil, fmt.Errorf("update order line: %w", err)
			}
			if holdsStock {
				if err := adjustItemStock(ctx, tx, d.ItemID, prev.Quantity-d.Quantity); err != nil {
					return nil, err
				}
			}
		}
	}

	for itemID, prev := range stored {
		if _, keep := desiredSet[itemID]; keep {
			continue
		}
		changed = true
		if _, err := tx.Exec(ctx, `DELETE FROM order_lines WHERE id = $1`, prev.ID); err != nil {
			return nil, fmt.Errorf("delete order line: %w", err)
		}
		if holdsStock {
			if err := adjustItemStock(ctx, tx, itemID, prev.Quantity); err != nil {
				return nil, err
			}
		}
	}

	// The total only moves when a line did.
	if changed {
		if _, err := recomputeTotal(ctx, tx, orderID); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}

	return r.GetByID(ctx, orderID)
}

// Delete removes the order with its lines, returning stock for every line if
// the order's status still holds it.
func (r *OrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var status domain.Status
	err = tx.QueryRow(ctx, `SELECT status FROM orders WHERE id = $1 FOR UPDATE`, id).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NotFound("order", id.String())
		}
		return fmt.Errorf("lock order: %w", err)
	}

	if status.HoldsStock() {
		lines, err := loadLineQuantities(ctx, tx, id)
		if err != nil {
			return err
		}

		itemIDs := make([]uuid.UUID, 0, len(lines))
		for itemID := range lines {
			itemIDs = append(itemIDs, itemID)
		}
		if _, err := lockItems(ctx, tx, itemIDs); err != nil {
			return err
		}

		for itemID, quantity := range lines {
			if err := adjustItemStock(ctx, tx, itemID, quantity); err != nil {
				return err
			}
		}
	}

	if _, err := tx.Exec(ctx, `DELETE FROM order_lines WHERE order_id = $1`, id); err != nil {
		return fmt.Errorf("delete order lines: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete order: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Transactional helpers
// ---------------------------------------------------------------------------

// lockItems locks the given item rows with SELECT FOR UPDATE in ascending id
// order, so two concurrent multi-line operations can never deadlock on each
// other. Missing ids are simply absent from the returned map.
func lockItems(ctx context.Context, tx pgx.Tx, ids []uuid.UUID) (map[uuid.UUID]lockedItem, error) {
	if len(ids) == 0 {
		return map[uuid.UUID]lockedItem{}, nil
	}

	sorted := make([]uuid.UUID, len(ids))
	copy(sorted, ids)
	sort.Slice(sorted, func(i, j int) bool {
		return bytes.Compare(sorted[i][:], sorted[j][:]) < 0
	})

	query := `
		SELECT id, name, price, stock
		FROM items
		WHERE id = ANY($1)
		ORDER BY id
		FOR UPDATE`

	rows, err := tx.Query(ctx, query, sorted)
	if err != nil {
		return nil, fmt.Errorf("lock items: %w", err)
	}
	defer rows.Close()

	items := make(map[uuid.UUID]lockedItem, len(sorted))
	for rows.Next() {
		var (
			id   uuid.UUID
			item lockedItem
		)
		if err := rows.Scan(&id, &item.Name, &item.Price, &item.Stock); err != nil {
			return nil, fmt.Errorf("scan locked item: %w", err)
		}
		items[id] = item
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate locked items: %w", err)
	}

	return items, nil
}

// adjustItemStock applies a stock delta to an item already locked in this
// transaction. Validation happens under the lock before any call, so the
// update itself is unconditional.
func adjustItemStock(ctx context.Context, tx pgx.Tx, itemID uuid.UUID, delta int) error {
	_, err := tx.Exec(ctx,
		`UPDATE items SET stock = stock + $1, updated_at = $2 WHERE id = $3`,
		delta, time.Now().UTC(), itemID)
	if err != nil {
		return fmt.Errorf("adjust item stock: %w", err)
	}
	return nil
}

// loadLineQuantities returns the order's line quantities keyed by item id.
func loadLineQuantities(ctx context.Context, tx pgx.Tx, orderID uuid.UUID) (map[uuid.UUID]int, error) {
	rows, err := tx.Query(ctx, `SELECT item_id, quantity FROM order_lines WHERE order_id = $1`, orderID)
	if err != nil {
		return nil, fmt.Errorf("load line quantities: %w", err)
	}
	defer rows.Close()

	lines := make(map[uuid.UUID]int)
	for rows.Next() {
		var (
			itemID   uuid.UUID
			quantity int
		)
		if err := rows.Scan(&itemID, &quantity); err != nil {
			return nil, fmt.Errorf("scan line quantity: %w", err)
		}
		lines[itemID] = quantity
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate line quantities: %w", err)
	}

	return lines, nil
}

// recomputeTotal derives the order total from its surviving lines and writes
// it back, so the stored total can never drift from the line set it covers.
func recomputeTotal(ctx context.Context, tx pgx.Tx, orderID uuid.UUID) (int64, error) {
	var total int64
	err := tx.QueryRow(ctx,
		`SELECT COALESCE(SUM(quantity * unit_price), 0) FROM order_lines WHERE order_id = $1`,
		orderID).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("sum order lines: %w", err)
	}

	_, err = tx.Exec(ctx,
		`UPDATE orders SET total_price = $1, updated_at = $2 WHERE id = $3`,
		total, time.Now().UTC(), orderID)
	if err != nil {
		return 0, fmt.Errorf("write order total: %w", err)
	}

	return total, nil
}

func checkDuplicateLines(lines []domain.OrderLine) error {
	seen := make(map[uuid.UUID]struct{}, len(lines))
	for _, line := range lines {
		if _, dup := seen[line.ItemID]; dup {
			return apperrors.InvalidInput(fmt.Sprintf("duplicate item %s in order lines", line.ItemID))
		}
		seen[line.ItemID] = struct{}{}
	}
	return nil
}
