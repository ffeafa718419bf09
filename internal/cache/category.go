package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/zizouhuweidi/trivia/internal/domain"
)

const (
	// Redis key prefixes
	categoryKey     = "trivia:categories"
	rateLimitPrefix = "trivia:ratelimit:"
)

// CategoryCache is a read-through Redis cache in front of a category store.
// Categories are read-only for the API; entries expire by TTL or through
// Invalidate after seeding.
type CategoryCache struct {
	redis *redis.Client
	next  domain.CategoryRepository
	ttl   time.Duration
}

// NewCategoryCache wraps next with a Redis cache
func NewCategoryCache(client *redis.Client, next domain.CategoryRepository, ttl time.Duration) *CategoryCache {
	return &CategoryCache{redis: client, next: next, ttl: ttl}
}

// All returns every category, from Redis when cached. Redis failures fall
// back to the underlying store.
func (c *CategoryCache) All(ctx context.Context) ([]domain.Category, error) {
	categories, err := c.load(ctx)
	if err == nil {
		return categories, nil
	}
	if !errors.Is(err, redis.Nil) {
		slog.Warn("category cache read failed", "error", err)
	}

	categories, err = c.next.All(ctx)
	if err != nil {
		return nil, err
	}

	// An empty list is not cached so newly seeded categories show up at once.
	if len(categories) > 0 {
		if err := c.store(ctx, categories); err != nil {
			slog.Warn("category cache write failed", "error", err)
		}
	}
	return categories, nil
}

// GetByID returns a category by ID
func (c *CategoryCache) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	categories, err := c.All(ctx)
	if err != nil {
		return nil, err
	}
	for _, category := range categories {
		if category.ID == id {
			return &category, nil
		}
	}
	return nil, domain.ErrCategoryNotFound
}

// Invalidate drops the cached category list
func (c *CategoryCache) Invalidate(ctx context.Context) error {
	if err := c.redis.Del(ctx, categoryKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate categories: %w", err)
	}
	return nil
}

func (c *CategoryCache) load(ctx context.Context) ([]domain.Category, error) {
	data, err := c.redis.Get(ctx, categoryKey).Bytes()
	if err != nil {
		return nil, err
	}

	var categories []domain.Category
	if err := json.Unmarshal(data, &categories); err != nil {
		return nil, fmt.Errorf("failed to unmarshal categories: %w", err)
	}
	return categories, nil
}

func (c *CategoryCache) store(ctx context.Context, categories []domain.Category) error {
	data, err := json.Marshal(categories)
	if err != nil {
		return fmt.Errorf("failed to marshal categories: %w", err)
	}
	return c.redis.Set(ctx, categoryKey, data, c.ttl).Err()
}
