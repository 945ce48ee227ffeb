package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/pizzeria/pizzeria-api/internal/core/domain"
)

const (
	menuCacheKey = "menu:available"
	menuCacheTTL = 5 * time.Minute
)

// MenuCache caches the public menu listing in Redis. All failures are
// logged and reported as cache misses so the menu endpoint never depends
// on Redis being up.
type MenuCache struct {
	client *redis.Client
	log    zerolog.Logger
}

// NewMenuCache creates a MenuCache wrapping the given Redis client.
func NewMenuCache(client *redis.Client, log zerolog.Logger) *MenuCache {
	return &MenuCache{client: client, log: log}
}

// Get returns the cached menu and whether it was present.
func (c *MenuCache) Get(ctx context.Context) ([]domain.Pizza, bool) {
	raw, err := c.client.Get(ctx, menuCacheKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn().Err(err).Msg("menu cache read failed")
		}
		return nil, false
	}

	var pizzas []domain.Pizza
	if err := json.Unmarshal(raw, &pizzas); err != nil {
		c.log.Warn().Err(err).Msg("menu cache payload corrupt, dropping")
		c.Invalidate(ctx)
		return nil, false
	}
	return pizzas, true
}

// Set stores the menu with the cache TTL.
func (c *MenuCache) Set(ctx context.Context, pizzas []domain.Pizza) {
	raw, err := json.Marshal(pizzas)
	if err != nil {
		c.log.Warn().Err(err).Msg("menu cache encode failed")
		return
	}
	if err := c.client.Set(ctx, menuCacheKey, raw, menuCacheTTL).Err(); err != nil {
		c.log.Warn().Err(err).Msg("menu cache write failed")
	}
}

// Invalidate drops the cached menu; called after every menu mutation.
func (c *MenuCache) Invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, menuCacheKey).Err(); err != nil {
		c.log.Warn().Err(err).Msg("menu cache invalidation failed")
	}
}
