package cache

import (
	"context"
	"time"

	"github.com/supportly-beer/supportly-backend/internal/domain"
)

// SearchCache caches full-text search results keyed by query and limit.
type SearchCache interface {
	Get(ctx context.Context, key string) (*domain.SearchResult, error)
	Set(ctx context.Context, key string, result *domain.SearchResult, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	BuildKey(query string, limit int) string
	Close() error
}
