package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/d60-Lab/blogly/config"
	"github.com/d60-Lab/blogly/internal/model"
)

const recentPostsKey = "blogly:posts:recent"

// PostCache caches the home page listing. Implementations must be safe for
// concurrent use.
type PostCache interface {
	GetRecent(ctx context.Context) ([]*model.Post, bool)
	SetRecent(ctx context.Context, posts []*model.Post) error
	Invalidate(ctx context.Context) error
}

// NewRedisClient connects to redis and verifies the connection.
func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", cfg.Addr, err)
	}
	return client, nil
}

// RedisPostCache stores the recent posts slice as a single JSON value.
type RedisPostCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisPostCache(client *redis.Client, ttl time.Duration) *RedisPostCache {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &RedisPostCache{client: client, ttl: ttl}
}

func (c *RedisPostCache) GetRecent(ctx context.Context) ([]*model.Post, bool) {
	data, err := c.client.Get(ctx, recentPostsKey).Bytes()
	if err != nil {
		return nil, false
	}
	var posts []*model.Post
	if err := json.Unmarshal(data, &posts); err != nil {
		return nil, false
	}
	return posts, true
}

func (c *RedisPostCache) SetRecent(ctx context.Context, posts []*model.Post) error {
	payload, err := json.Marshal(posts)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, recentPostsKey, payload, c.ttl).Err()
}

func (c *RedisPostCache) Invalidate(ctx context.Context) error {
	err := c.client.Del(ctx, recentPostsKey).Err()
	if errors.Is(err, redis.Nil) {
		return nil
	}
	return err
}

// Noop is used when redis is disabled.
type Noop struct{}

func (Noop) GetRecent(context.Context) ([]*model.Post, bool) { return nil, false }
func (Noop) SetRecent(context.Context, []*model.Post) error { return nil }
func (Noop) Invalidate(context.Context) error { return nil }
