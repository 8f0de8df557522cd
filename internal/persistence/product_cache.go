package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/spec-kit/job-board-service/internal/domain"
)

const productCacheTTL = 10 * time.Minute

// ProductCache is a Redis read-through cache for catalog entries. All
// operations degrade gracefully when Redis is unavailable: misses and errors
// both fall back to the database.
type ProductCache struct {
	client *redis.Client
}

// NewProductCache wraps the shared Redis client.
func NewProductCache(r *Redis) *ProductCache {
	if r == nil {
		return &ProductCache{}
	}
	return &ProductCache{client: r.Client}
}

// Get returns the cached product or nil on a miss.
func (c *ProductCache) Get(ctx context.Context, id string) (*domain.Product, error) {
	if c == nil || c.client == nil {
		return nil, nil
	}
	data, err := c.client.Get(ctx, productKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	var product domain.Product
	if err := json.Unmarshal(data, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// Set stores the product under its id.
func (c *ProductCache) Set(ctx context.Context, product *domain.Product) error {
	if c == nil || c.client == nil || product == nil {
		return nil
	}
	data, err := json.Marshal(product)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, productKey(product.ID), data, productCacheTTL).Err()
}

// Delete evicts the product.
func (c *ProductCache) Delete(ctx context.Context, id string) error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Del(ctx, productKey(id)).Err()
}

func productKey(id string) string {
	return "product:" + id
}
