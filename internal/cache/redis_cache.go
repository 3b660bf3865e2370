package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mustafayildiz-m/iw-project/internal/domain"
)

// RedisSearchCache is the redis-backed SearchCache.
type RedisSearchCache struct {
	client *redis.Client
}

// NewRedisSearchCache creates a new redis-backed search cache.
func NewRedisSearchCache(client *redis.Client) *RedisSearchCache {
	return &RedisSearchCache{client: client}
}

// BuildKey derives a deterministic cache key. The query is lowercased and
// trimmed so trivially different spellings share an entry.
func (c *RedisSearchCache) BuildKey(query, searchType string, limit, offset int, userID uint) string {
	normalized := strings.ToLower(strings.TrimSpace(query))
	return fmt.Sprintf("search:general:%s:%s:%d:%d:%d", normalized, searchType, limit, offset, userID)
}

// Get fetches and decodes a cached response.
func (c *RedisSearchCache) Get(ctx context.Context, key string) (*domain.GeneralSearchResponse, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, err
	}

	var response domain.GeneralSearchResponse
	if err := json.Unmarshal(data, &response); err != nil {
		// A corrupt entry behaves like a miss; it will be overwritten.
		return nil, ErrCacheMiss
	}
	return &response, nil
}

// Set encodes and stores a response with the given TTL.
func (c *RedisSearchCache) Set(ctx context.Context, key string, value *domain.GeneralSearchResponse, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, data, ttl).Err()
}

var _ SearchCache = (*RedisSearchCache)(nil)
