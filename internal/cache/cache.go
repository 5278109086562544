package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/threadfolio/threadfolio-api/internal/config"
)

// Cache is a best-effort read cache for the public booking endpoints.
// A nil client degrades every call to a miss, so an absent or unreachable
// Redis never takes the API down.
type Cache struct {
	client *redis.Client
}

const PublicShopTTL = 5 * time.Minute

func New(cfg *config.Config) *Cache {
	if cfg.RedisAddr == "" {
		return &Cache{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return &Cache{}
	}

	return &Cache{client: client}
}

func (c *Cache) Enabled() bool {
	return c.client != nil
}

func PublicShopKey(slug string) string {
	return "public:shop:" + slug
}

func PublicServicesKey(slug string) string {
	return "public:services:" + slug
}

// GetJSON unmarshals a cached value into dest. Returns false on miss,
// marshal error, or disabled cache.
func (c *Cache) GetJSON(ctx context.Context, key string, dest any) bool {
	if c.client == nil {
		return false
	}
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(raw, dest) == nil
}

func (c *Cache) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) {
	if c.client == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	c.client.Set(ctx, key, raw, ttl)
}

// Invalidate drops cached entries after a write to the underlying rows.
func (c *Cache) Invalidate(ctx context.Context, keys ...string) {
	if c.client == nil || len(keys) == 0 {
		return
	}
	c.client.Del(ctx, keys...)
}
