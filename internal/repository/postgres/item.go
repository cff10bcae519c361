package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/adityatriand/catering-app/internal/domain"
	"github.com/adityatriand/catering-app/pkg/database"
	apperrors "github.com/adityatriand/catering-app/pkg/errors"
)

// itemColumns is the standard SELECT column list for items, with category
// names aggregated from the link table.
const itemColumns = `i.id, i.name, i.description, i.price, i.stock, i.created_at, i.updated_at,
	COALESCE(STRING_AGG(c.name, ',' ORDER BY c.name) FILTER (WHERE c.id IS NOT NULL), '') AS categories`

const itemGroupBy = `i.id, i.name, i.description, i.price, i.stock, i.created_at, i.updated_at`

// ItemRepository implements repository.ItemRepository using PostgreSQL.
type ItemRepository struct {
	pool database.DBTX
}

// NewItemRepository creates a new PostgreSQL-backed item repository.
func NewItemRepository(pool database.DBTX) *ItemRepository {
	return &ItemRepository{pool: pool}
}

// Create inserts a new item and its category links atomically.
func (r *ItemRepository) Create(ctx context.Context, item *domain.Item) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	query := `
		INSERT INTO items (id, name, description, price, stock, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err = tx.Exec(ctx, query,
		item.ID,
		item.Name,
		item.Description,
		item.Price,
		item.Stock,
		item.CreatedAt,
		item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.AlreadyExists("item", "name", item.Name)
		}
		return fmt.Errorf("insert item: %w", err)
	}

	if err := linkCategories(ctx, tx, item.ID, item.Categories); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

// GetByID retrieves an item by its ID, including its category names.
func (r *ItemRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM items i
		LEFT JOIN item_categories ic ON ic.item_id = i.id
		LEFT JOIN categories c ON c.id = ic.category_id
		WHERE i.id = $1
		GROUP BY %s`, itemColumns, itemGroupBy)

	item, err := scanItem(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("item", id.String())
		}
		return nil, fmt.Errorf("get item by id: %w", err)
	}

	return item, nil
}

// List returns items matching the given filter with the total count.
func (r *ItemRepository) List(ctx context.Context, filter domain.ItemFilter) ([]domain.Item, int, error) {
	var (
		conditions []string
		args       []any
		argIndex   = 1
	)

	if filter.Category != "" {
		conditions = append(conditions, fmt.Sprintf(
			"i.id IN (SELECT ic2.item_id FROM item_categories ic2 JOIN categories c2 ON c2.id = ic2.category_id WHERE c2.name = $%d)", argIndex))
		args = append(args, filter.Category)
		argIndex++
	}

	if filter.InStock {
		conditions = append(conditions, "i.stock > 0")
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	// Use count(*) OVER() for total count in a single query. The window
	// function runs after grouping, so it counts items, not join rows.
	query := fmt.Sprintf(`
		SELECT %s,
			   count(*) OVER() AS total_count
		FROM items i
		LEFT JOIN item_categories ic ON ic.item_id = i.id
		LEFT JOIN categories c ON c.id = ic.category_id
		%s
		GROUP BY %s
		ORDER BY i.name ASC
		LIMIT $%d OFFSET $%d`,
		itemColumns, whereClause, itemGroupBy, argIndex, argIndex+1,
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
		return nil, 0, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var totalCount int
	items := make([]domain.Item, 0)

	for rows.Next() {
		var (
			i          domain.Item
			categories string
		)
		if err := rows.Scan(
			&i.ID,
			&i.Name,
			&i.Description,
			&i.Price,
			&i.Stock,
			&i.CreatedAt,
			&i.UpdatedAt,
			&categories,
			&totalCount,
		); err != nil {
			return nil, 0, fmt.Errorf("scan item row: %w", err)
		}
		i.Categories = splitCategories(categories)
		items = append(items, i)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate item rows: %w", err)
	}

	return items, totalCount, nil
}

// Update modifies an item's descriptive fields and replaces its category
// links atomically. Stock is deliberately excluded; it moves only through
// the ledger primitives and AdjustStock.
func (r *ItemRepository) Update(ctx context.Context, item *domain.Item) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	item.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE items
		SET name = $1, description = $2, price = $3, updated_at = $4
		WHERE id = $5`

	ct, err := tx.Exec(ctx, query,
		item.Name,
		item.Description,
		item.Price,
		item.UpdatedAt,
		item.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.AlreadyExists("item", "name", item.Name)
		}
		return fmt.Errorf("update item: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("item", item.ID.String())
	}

	if _, err := tx.Exec(ctx, `DELETE FROM item_categories WHERE item_id = $1`, item.ID); err != nil {
		return fmt.Errorf("clear item categories: %w", err)
	}
	if err := linkCategories(ctx, tx, item.ID, item.Categories); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

// Delete removes an item. Order lines reference items with ON DELETE
// RESTRICT, so an item still used by any order fails with a conflict.
func (r *ItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := r.pool.Exec(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return apperrors.Conflict("item is referenced by existing orders")
		}
		return fmt.Errorf("delete item: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("item", id.String())
	}
	return nil
}

// DecreaseStock withdraws quantity from the item's stock. The WHERE clause
// makes the decrement conditional in a single statement, so two concurrent
// withdrawals can never both succeed against the same last portion.
func (r *ItemRepository) DecreaseStock(ctx context.Context, id uuid.UUID, quantity int) error {
	query := `
		UPDATE items
		SET stock = stock - $1, updated_at = $2
		WHERE id = $3 AND stock >= $1`

	ct, err := r.pool.Exec(ctx, query, quantity, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("decrease stock: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return r.stockFailure(ctx, id, quantity)
	}
	return nil
}

// IncreaseStock returns quantity to the item's stock.
func (r *ItemRepository) IncreaseStock(ctx context.Context, id uuid.UUID, quantity int) error {
	query := `
		UPDATE items
		SET stock = stock + $1, updated_at = $2
		WHERE id = $3`

	ct, err := r.pool.Exec(ctx, query, quantity, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("increase stock: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("item", id.String())
	}
	return nil
}

// AdjustStock applies a signed manual correction in one conditional
// statement and returns the item with its new stock level.
func (r *ItemRepository) AdjustStock(ctx context.Context, id uuid.UUID, delta int) (*domain.Item, error) {
	query := `
		UPDATE items
		SET stock = stock + $1, updated_at = $2
		WHERE id = $3 AND stock + $1 >= 0
		RETURNING id, name, description, price, stock, created_at, updated_at`

	var i domain.Item
	err := r.pool.QueryRow(ctx, query, delta, time.Now().UTC(), id).Scan(
		&i.ID,
		&i.Name,
		&i.Description,
		&i.Price,
		&i.Stock,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.stockFailure(ctx, id, -delta)
		}
		return nil, fmt.Errorf("adjust stock: %w", err)
	}

	return &i, nil
}

// stockFailure distinguishes a missing item from an insufficient one after a
// conditional stock update matched no rows.
func (r *ItemRepository) stockFailure(ctx context.Context, id uuid.UUID, requested int) error {
	var available int
	err := r.pool.QueryRow(ctx, `SELECT stock FROM items WHERE id = $1`, id).Scan(&available)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NotFound("item", id.String())
		}
		return fmt.Errorf("check stock: %w", err)
	}
	return apperrors.InsufficientStock(id.String(), requested, available)
}

// linkCategories upserts each category by name and links it to the item.
// Categories act as free-form tags, so unknown names are created on the fly.
func linkCategories(ctx context.Context, tx pgx.Tx, itemID uuid.UUID, names []string) error {
	for _, name := range names {
		var categoryID uuid.UUID
		upsert := `
			INSERT INTO categories (id, name, created_at, updated_at)
			VALUES ($1, $2, NOW(), NOW())
			ON CONFLICT (name) DO UPDATE SET updated_at = NOW()
			RETURNING id`
		if err := tx.QueryRow(ctx, upsert, uuid.New(), name).Scan(&categoryID); err != nil {
			return fmt.Errorf("upsert category %q: %w", name, err)
		}

		link := `
			INSERT INTO item_categories (item_id, category_id)
			VALUES ($1, $2)
			ON CONFLICT DO NOTHING`
		if _, err := tx.Exec(ctx, link, itemID, categoryID); err != nil {
			return fmt.Errorf("link category %q: %w", name, err)
		}
	}
	return nil
}

func scanItem(row pgx.Row) (*domain.Item, error) {
	var (
		i          domain.Item
		categories string
	)
	if err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Description,
		&i.Price,
		&i.Stock,
		&i.CreatedAt,
		&i.UpdatedAt,
		&categories,
	); err != nil {
		return nil, err
	}
	i.Categories = splitCategories(categories)
	return &i, nil
}

func splitCategories(joined string) []string {
	if joined == "" {
		return nil
	}
	return strings.Split(joined, ",")
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "23505")
}

func isForeignKeyViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "23503")
}
