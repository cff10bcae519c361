package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/adityatriand/catering-app/internal/domain"
	"github.com/adityatriand/catering-app/internal/event"
	"github.com/adityatriand/catering-app/internal/repository"
	apperrors "github.com/adityatriand/catering-app/pkg/errors"
)

// menuPageSize bounds the number of items in the cached menu snapshot.
const menuPageSize = 100

// MenuCache caches the customer-facing menu snapshot.
type MenuCache interface {
	Get(ctx context.Context) ([]domain.Item, error)
	Set(ctx context.Context, items []domain.Item) error
	Invalidate(ctx context.Context) error
}

// ItemService implements the business logic for menu item operations.
type ItemService struct {
	repo     repository.ItemRepository
	cache    MenuCache
	producer *event.Producer
	logger   *slog.Logger
}

// NewItemService creates a new item service.
func NewItemService(repo repository.ItemRepository, cache MenuCache, producer *event.Producer, logger *slog.Logger) *ItemService {
	return &ItemService{
		repo:     repo,
		cache:    cache,
		producer: producer,
		logger:   logger,
	}
}

// CreateItem creates a new menu item.
func (s *ItemService) CreateItem(ctx context.Context, req domain.CreateItemRequest) (*domain.Item, error) {
	now := time.Now().UTC()
	item := &domain.Item{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		Categories:  req.Categories,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}

	s.invalidateMenu(ctx)

	s.logger.InfoContext(ctx, "item created",
		slog.String("item_id", item.ID.String()),
		slog.String("name", item.Name),
		slog.Int("stock", item.Stock),
	)

	return item, nil
}

// GetItem retrieves an item by its ID.
func (s *ItemService) GetItem(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get item by id: %w", err)
	}
	return item, nil
}

// ListItems returns a filtered, paginated list of items.
func (s *ItemService) ListItems(ctx context.Context, filter domain.ItemFilter) ([]domain.Item, int, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PerPage <= 0 {
		filter.PerPage = 20
	}
	if filter.PerPage > 100 {
		filter.PerPage = 100
	}

	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("list items: %w", err)
	}

	return items, total, nil
}

// Menu returns the customer-facing menu of in-stock items, served from the
// cache when a fresh snapshot exists.
func (s *ItemService) Menu(ctx context.Context) ([]domain.Item, error) {
	items, err := s.cache.Get(ctx)
	if err == nil {
		return items, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		// A broken cache must not take the menu down.
		s.logger.WarnContext(ctx, "menu cache read failed",
			slog.String("error", err.Error()),
		)
	}

	items, _, err = s.repo.List(ctx, domain.ItemFilter{InStock: true, PerPage: menuPageSize})
	if err != nil {
		return nil, fmt.Errorf("load menu: %w", err)
	}

	if err := s.cache.Set(ctx, items); err != nil {
		s.logger.WarnContext(ctx, "menu cache write failed",
			slog.String("error", err.Error()),
		)
	}

	return items, nil
}

// UpdateItem applies partial changes to an item's descriptive fields.
func (s *ItemService) UpdateItem(ctx context.Context, id uuid.UUID, req domain.UpdateItemRequest) (*domain.Item, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get item for update: %w", err)
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.Price != nil {
		item.Price = *req.Price
	}
	if req.Categories != nil {
		item.Categories = req.Categories
	}

	if err := s.repo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("update item: %w", err)
	}

	s.invalidateMenu(ctx)

	s.logger.InfoContext(ctx, "item updated",
		slog.String("item_id", item.ID.String()),
	)

	return item, nil
}

// DeleteItem removes an item from the menu.
func (s *ItemService) DeleteItem(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete item: %w", err)
	}

	s.invalidateMenu(ctx)

	s.logger.InfoContext(ctx, "item deleted",
		slog.String("item_id", id.String()),
	)

	return nil
}

// AdjustStock applies a manual stock correction, such as a spoiled batch or a
// recount after restocking.
func (s *ItemService) AdjustStock(ctx context.Context, id uuid.UUID, delta int) (*domain.Item, error) {
	if delta == 0 {
		return nil, apperrors.InvalidInput("delta must not be zero")
	}

	item, err := s.repo.AdjustStock(ctx, id, delta)
	if err != nil {
		return nil, fmt.Errorf("adjust stock: %w", err)
	}

	if err := s.producer.PublishStockAdjusted(ctx, id.String(), delta, item.Stock); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish stock.adjusted event",
			slog.String("item_id", id.String()),
			slog.String("error", err.Error()),
		)
		// Do not fail the operation if event publishing fails.
	}

	s.invalidateMenu(ctx)

	s.logger.InfoContext(ctx, "stock adjusted",
		slog.String("item_id", id.String()),
		slog.Int("delta", delta),
		slog.Int("new_stock", item.Stock),
	)

	return item, nil
}

func (s *ItemService) invalidateMenu(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.WarnContext(ctx, "menu cache invalidation failed",
			slog.String("error", err.Error()),
		)
	}
}
