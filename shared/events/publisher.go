package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Publisher emits domain events after a state change has committed.
type Publisher interface {
	Publish(ctx context.Context, stream, eventType string, data any) error
}

// RedisPublisher appends events to Redis Streams.
type RedisPublisher struct {
	client *redis.Client
	now    func() time.Time
}

func NewPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{client: client, now: time.Now}
}

func (p *RedisPublisher) Publish(ctx context.Context, stream, eventType string, data any) error {
	eventJSON, err := Encode(eventType, p.now(), data)
	if err != nil {
		return err
	}

	args := &redis.XAddArgs{
		Stream: stream,
		Values: map[string]any{
			"event": eventJSON,
		},
	}

	if _, err := p.client.XAdd(ctx, args).Result(); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	return nil
}

// Encode builds the JSON envelope stored in the stream entry.
func Encode(eventType string, at time.Time, data any) ([]byte, error) {
	event := Event{
		Type:      eventType,
		Timestamp: at.UTC(),
		Data:      data,
	}

	eventJSON, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event: %w", err)
	}
	return eventJSON, nil
}

// NopPublisher drops every event. Used when Redis is not configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, string, string, any) error { return nil }
