package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/markethub/catalog-api/internal/core/ports"
)

const cacheTTL = time.Minute

// ItemCache caches serialized item detail views by id. Entries carry a short
// TTL so a stale embedded owner view expires on its own; writes invalidate
// eagerly. All failures degrade to a cache miss.
// Key format: item:<item_id>
type ItemCache struct {
	client *redis.Client
	log    zerolog.Logger
}

// NewItemCache creates an ItemCache wrapping the given Redis client.
func NewItemCache(client *redis.Client, log zerolog.Logger) *ItemCache {
	return &ItemCache{client: client, log: log}
}

var _ ports.ItemCache = (*ItemCache)(nil)

func (c *ItemCache) Get(ctx context.Context, id uuid.UUID) (*ports.ItemWithOwner, bool) {
	raw, err := c.client.Get(ctx, c.key(id)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn().Err(err).Msg("item cache get failed")
		}
		return nil, false
	}

	var view ports.ItemWithOwner
	if err := json.Unmarshal(raw, &view); err != nil {
		c.log.Warn().Err(err).Msg("item cache entry corrupt")
		return nil, false
	}
	return &view, true
}

func (c *ItemCache) Set(ctx context.Context, view *ports.ItemWithOwner) {
	raw, err := json.Marshal(view)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, c.key(view.Item.ID), raw, cacheTTL).Err(); err != nil {
		c.log.Warn().Err(err).Msg("item cache set failed")
	}
}

func (c *ItemCache) Invalidate(ctx context.Context, id uuid.UUID) {
	if err := c.client.Del(ctx, c.key(id)).Err(); err != nil {
		c.log.Warn().Err(err).Msg("item cache invalidate failed")
	}
}

func (c *ItemCache) key(id uuid.UUID) string {
	return "item:" + id.String()
}
