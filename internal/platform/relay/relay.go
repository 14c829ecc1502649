// Package relay fans board events out across server instances through Redis
// pub/sub. Every instance publishes to one Redis channel and feeds what it
// receives into its local websocket hub, its own events included.
package relay

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/ehr/opsboard/internal/platform/websocket"
)

// DefaultChannel is the Redis channel events travel on.
const DefaultChannel = "opsboard:events"

// NewClient parses a redis:// URL and verifies the server answers.
func NewClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

// Relay implements websocket.EventPublisher on top of Redis.
type Relay struct {
	client  *redis.Client
	channel string
	local   *websocket.Hub
	logger  zerolog.Logger

	mu     sync.Mutex
	pubsub *redis.PubSub
}

func New(client *redis.Client, channel string, local *websocket.Hub, logger zerolog.Logger) *Relay {
	if channel == "" {
		channel = DefaultChannel
	}
	return &Relay{client: client, channel: channel, local: local, logger: logger}
}

// Publish sends event to every instance, including this one.
func (r *Relay) Publish(ctx context.Context, event websocket.Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	if err := r.client.Publish(ctx, r.channel, data).Err(); err != nil {
		return fmt.Errorf("publish event: %w", err)
	}
	return nil
}

// Start subscribes to the channel and returns once the subscription is
// confirmed. Received events are broadcast on the local hub until ctx is
// cancelled or Close is called.
func (r *Relay) Start(ctx context.Context) error {
	pubsub := r.client.Subscribe(ctx, r.channel)
	if _, err := pubsub.Receive(ctx); err != nil {
		pubsub.Close()
		return fmt.Errorf("subscribe %s: %w", r.channel, err)
	}

	r.mu.Lock()
	r.pubsub = pubsub
	r.mu.Unlock()

	go r.forward(ctx, pubsub.Channel())
	return nil
}

func (r *Relay) forward(ctx context.Context, msgs <-chan *redis.Message) {
	for {
		select {
		case <-ctx.Done():
			r.Close()
			return
		case msg, ok := <-msgs:
			if !ok {
				return
			}
			var event websocket.Event
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				r.logger.Warn().Err(err).Str("channel", msg.Channel).Msg("dropping malformed relay event")
				continue
			}
			r.local.Broadcast(event.Topic, event)
		}
	}
}

// Close ends the subscription. It is safe to call more than once.
func (r *Relay) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.pubsub == nil {
		return nil
	}
	err := r.pubsub.Close()
	r.pubsub = nil
	return err
}
