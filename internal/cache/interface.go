package cache

import (
	"context"
	"errors"
	"time"

	"github.com/mustafayildiz-m/iw-project/internal/domain"
)

// ErrCacheMiss is returned when a key is absent or expired.
var ErrCacheMiss = errors.New("cache miss")

// SearchCache stores merged search responses keyed by the full query shape.
// A miss is never an error for callers; the service falls through to the
// database and repopulates.
type SearchCache interface {
	// BuildKey derives the cache key from every input that changes the
	// response. userID participates because isFollowed annotations differ
	// per requester.
	BuildKey(query, searchType string, limit, offset int, userID uint) string
	Get(ctx context.Context, key string) (*domain.GeneralSearchResponse, error)
	Set(ctx context.Context, key string, value *domain.GeneralSearchResponse, ttl time.Duration) error
}
