package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	json "github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"

	"github.com/venity/venity-gateway/internal/core/domain"
)

const (
	productsKey     = "cache:products"
	defaultCacheTTL = time.Hour
)

// ProductCache stores the serialized product list in Redis between backend
// reads. The default TTL matches the public route's max-age of one hour.
type ProductCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewProductCache creates a ProductCache wrapping the given Redis client.
// A non-positive ttl falls back to one hour.
func NewProductCache(client *redis.Client, ttl time.Duration) *ProductCache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &ProductCache{client: client, ttl: ttl}
}

// Get returns the cached product list and whether the cache held one.
func (c *ProductCache) Get(ctx context.Context) ([]domain.Product, bool, error) {
	raw, err := c.client.Get(ctx, productsKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("product cache get: %w", err)
	}

	var products []domain.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return nil, false, fmt.Errorf("product cache decode: %w", err)
	}
	return products, true, nil
}

// Set stores the product list (expires after the configured TTL).
func (c *ProductCache) Set(ctx context.Context, products []domain.Product) error {
	raw, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("product cache encode: %w", err)
	}
	if err := c.client.Set(ctx, productsKey, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("product cache set: %w", err)
	}
	return nil
}

// Invalidate drops the cached list. Called after a product mutation.
func (c *ProductCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, productsKey).Err(); err != nil {
		return fmt.Errorf("product cache invalidate: %w", err)
	}
	return nil
}
