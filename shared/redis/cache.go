package redis

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// ViewCache is a generic JSON-backed Redis cache for read projections.
// Keys are namespaced by prefix; pass ttl 0 for keys that never expire.
type ViewCache[T any] struct {
	client *goredis.Client
	prefix string
	ttl    time.Duration
}

func NewViewCache[T any](client *goredis.Client, prefix string, ttl time.Duration) *ViewCache[T] {
	return &ViewCache[T]{client: client, prefix: prefix, ttl: ttl}
}

func (c *ViewCache[T]) key(id string) string {
	return c.prefix + id
}

// Get returns (nil, false) on any miss or deserialisation error.
func (c *ViewCache[T]) Get(ctx context.Context, id string) (*T, bool) {
	data, err := c.client.Get(ctx, c.key(id)).Bytes()
	if err != nil {
		if err != goredis.Nil {
			slog.Warn("view cache read failed", "key", c.key(id), "error", err)
		}
		return nil, false
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		slog.Warn("view cache entry is corrupt", "key", c.key(id), "error", err)
		return nil, false
	}
	return &v, true
}

// Set stores value under id. Errors are logged rather than returned; a
// failed cache write only costs a later miss.
func (c *ViewCache[T]) Set(ctx context.Context, id string, value *T) {
	data, err := json.Marshal(value)
	if err != nil {
		slog.Warn("view cache marshal failed", "key", c.key(id), "error", err)
		return
	}
	if err := c.client.Set(ctx, c.key(id), data, c.ttl).Err(); err != nil {
		slog.Warn("view cache write failed", "key", c.key(id), "error", err)
	}
}
