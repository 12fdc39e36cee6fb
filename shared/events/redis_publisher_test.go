package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPublisher(t *testing.T) (*miniredis.Miniredis, *RedisPublisher) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	p := NewPublisher(client)
	p.now = func() time.Time { return time.Date(2024, 6, 1, 8, 30, 0, 0, time.UTC) }
	return mr, p
}

func TestRedisPublisherAppendsToStream(t *testing.T) {
	mr, p := newTestPublisher(t)
	ctx := context.Background()

	require.NoError(t, p.Publish(ctx, AccountEventsStream, BalanceUpdated, BalanceUpdatedEvent{
		AccountID:  "acc-1",
		NewBalance: decimal.RequireFromString("150"),
		Change:     decimal.RequireFromString("50"),
	}))
	require.NoError(t, p.Publish(ctx, AccountEventsStream, AccountDeleted, AccountDeletedEvent{AccountID: "acc-1"}))

	entries, err := mr.Stream(AccountEventsStream)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	first := entries[0]
	require.Len(t, first.Values, 2)
	assert.Equal(t, "event", first.Values[0])

	var got struct {
		Type      string    `json:"type"`
		Timestamp time.Time `json:"timestamp"`
		Data      struct {
			AccountID  string `json:"accountId"`
			NewBalance string `json:"newBalance"`
			Change     string `json:"change"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(first.Values[1]), &got))
	assert.Equal(t, BalanceUpdated, got.Type)
	assert.True(t, got.Timestamp.Equal(time.Date(2024, 6, 1, 8, 30, 0, 0, time.UTC)))
	assert.Equal(t, "acc-1", got.Data.AccountID)
	assert.Equal(t, "150", got.Data.NewBalance)
	assert.Equal(t, "50", got.Data.Change)

	var second Event
	require.NoError(t, json.Unmarshal([]byte(entries[1].Values[1]), &second))
	assert.Equal(t, AccountDeleted, second.Type)
}

func TestRedisPublisherKeepsStreamsApart(t *testing.T) {
	mr, p := newTestPublisher(t)
	ctx := context.Background()

	require.NoError(t, p.Publish(ctx, UserEventsStream, UserCreated, UserCreatedEvent{UserID: "usr-1"}))
	require.NoError(t, p.Publish(ctx, TransactionEventsStream, TransactionCreated, TransactionCreatedEvent{TransactionID: "tan-1"}))

	users, err := mr.Stream(UserEventsStream)
	require.NoError(t, err)
	assert.Len(t, users, 1)

	txs, err := mr.Stream(TransactionEventsStream)
	require.NoError(t, err)
	assert.Len(t, txs, 1)

	assert.False(t, mr.Exists(AccountEventsStream))
}

func TestRedisPublisherErrors(t *testing.T) {
	t.Run("unmarshalable data writes nothing", func(t *testing.T) {
		mr, p := newTestPublisher(t)
		err := p.Publish(context.Background(), UserEventsStream, UserCreated, make(chan int))
		assert.Error(t, err)
		assert.False(t, mr.Exists(UserEventsStream))
	})

	t.Run("server gone", func(t *testing.T) {
		mr, p := newTestPublisher(t)
		mr.Close()
		err := p.Publish(context.Background(), UserEventsStream, UserCreated, UserCreatedEvent{UserID: "usr-1"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to publish event")
	})
}
