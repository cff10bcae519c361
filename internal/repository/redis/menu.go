package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/adityatriand/catering-app/internal/domain"
	apperrors "github.com/adityatriand/catering-app/pkg/errors"
)

const menuKey = "menu:catalog"

// MenuCache caches the in-stock menu snapshot served to customers. Writes to
// items or orders invalidate it, so a stale snapshot lives at most one TTL.
type MenuCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewMenuCache creates a new Redis-backed menu cache.
func NewMenuCache(client *redis.Client, ttl time.Duration) *MenuCache {
	return &MenuCache{
		client: client,
		ttl:    ttl,
	}
}

// Get retrieves the cached menu snapshot.
func (c *MenuCache) Get(ctx context.Context) ([]domain.Item, error) {
	data, err := c.client.Get(ctx, menuKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("redis get menu: %w", err)
	}

	var items []domain.Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("unmarshal menu: %w", err)
	}

	return items, nil
}

// Set stores a menu snapshot with the configured TTL.
func (c *MenuCache) Set(ctx context.Context, items []domain.Item) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("marshal menu: %w", err)
	}

	if err := c.client.Set(ctx, menuKey, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set menu: %w", err)
	}

	return nil
}

// Invalidate drops the cached snapshot.
func (c *MenuCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, menuKey).Err(); err != nil {
		return fmt.Errorf("redis del menu: %w", err)
	}
	return nil
}
