package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type view struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *goredis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestViewCacheRoundTrip(t *testing.T) {
	mr, client := newTestRedis(t)
	cache := NewViewCache[view](client, "user:view:", time.Minute)
	ctx := context.Background()

	cache.Set(ctx, "usr-1", &view{ID: "usr-1", Name: "Alice"})

	require.True(t, mr.Exists("user:view:usr-1"))
	assert.Equal(t, time.Minute, mr.TTL("user:view:usr-1"))

	got, ok := cache.Get(ctx, "usr-1")
	require.True(t, ok)
	assert.Equal(t, view{ID: "usr-1", Name: "Alice"}, *got)
}

func TestViewCacheZeroTTLNeverExpires(t *testing.T) {
	mr, client := newTestRedis(t)
	cache := NewViewCache[view](client, "v:", 0)

	cache.Set(context.Background(), "a", &view{ID: "a"})
	assert.Zero(t, mr.TTL("v:a"))

	mr.FastForward(24 * time.Hour)
	_, ok := cache.Get(context.Background(), "a")
	assert.True(t, ok)
}

func TestViewCacheExpiry(t *testing.T) {
	mr, client := newTestRedis(t)
	cache := NewViewCache[view](client, "v:", time.Second)

	cache.Set(context.Background(), "a", &view{ID: "a"})
	mr.FastForward(2 * time.Second)

	_, ok := cache.Get(context.Background(), "a")
	assert.False(t, ok)
}

func TestViewCacheMisses(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T, mr *miniredis.Miniredis)
	}{
		{
			name:  "absent key",
			setup: func(*testing.T, *miniredis.Miniredis) {},
		},
		{
			name: "corrupt entry",
			setup: func(t *testing.T, mr *miniredis.Miniredis) {
				require.NoError(t, mr.Set("v:a", "{not json"))
			},
		},
		{
			name: "key under another prefix",
			setup: func(t *testing.T, mr *miniredis.Miniredis) {
				require.NoError(t, mr.Set("other:a", `{"id":"a"}`))
			},
		},
		{
			name:  "server gone",
			setup: func(_ *testing.T, mr *miniredis.Miniredis) { mr.Close() },
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mr, client := newTestRedis(t)
			cache := NewViewCache[view](client, "v:", time.Minute)
			tt.setup(t, mr)

			got, ok := cache.Get(context.Background(), "a")
			assert.False(t, ok)
			assert.Nil(t, got)
		})
	}
}

func TestViewCacheSetToClosedServerIsSilent(t *testing.T) {
	mr, client := newTestRedis(t)
	cache := NewViewCache[view](client, "v:", time.Minute)
	mr.Close()

	assert.NotPanics(t, func() {
		cache.Set(context.Background(), "a", &view{ID: "a"})
	})
}
