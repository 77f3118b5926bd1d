package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/supportly-beer/supportly-backend/internal/config"
	"github.com/supportly-beer/supportly-backend/internal/domain"
)

var ErrCacheMiss = errors.New("cache miss")

// RedisSearchCache implements SearchCache on redis.
type RedisSearchCache struct {
	client *redis.Client
	prefix string
}

func NewRedisSearchCache(cfg config.RedisConfig, prefix string) (*RedisSearchCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisSearchCache{
		client: client,
		prefix: prefix,
	}, nil
}

func (c *RedisSearchCache) BuildKey(query string, limit int) string {
	return fmt.Sprintf("%s:search:%s:%d", c.prefix, query, limit)
}

func (c *RedisSearchCache) Get(ctx context.Context, key string) (*domain.SearchResult, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to get from redis: %w", err)
	}

	var result domain.SearchResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cache data: %w", err)
	}

	return &result, nil
}

func (c *RedisSearchCache) Set(ctx context.Context, key string, result *domain.SearchResult, ttl time.Duration) error {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal cache data: %w", err)
	}

	if err := c.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set in redis: %w", err)
	}
	return nil
}

func (c *RedisSearchCache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to delete from redis: %w", err)
	}
	return nil
}

func (c *RedisSearchCache) Close() error {
	return c.client.Close()
}
