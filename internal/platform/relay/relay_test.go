package relay

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ehr/opsboard/internal/platform/websocket"
)

func setup(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, client
}

func TestRelay_DeliversToLocalHub(t *testing.T) {
	_, client := setup(t)
	hub := websocket.NewHub(zerolog.Nop())
	sub := websocket.NewClient(websocket.ChatTopic("1"))
	hub.Register(sub)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	r := New(client, "", hub, zerolog.Nop())
	require.NoError(t, r.Start(ctx))
	defer r.Close()

	err := r.Publish(ctx, websocket.Event{Type: websocket.EventChatMessage, Topic: websocket.ChatTopic("1"), ResourceID: "m-1"})
	require.NoError(t, err)

	select {
	case data := <-sub.Send:
		assert.Contains(t, string(data), `"resource_id":"m-1"`)
	case <-time.After(2 * time.Second):
		t.Fatal("event not relayed to local hub")
	}
}

func TestRelay_TwoInstances(t *testing.T) {
	_, client := setup(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hubA := websocket.NewHub(zerolog.Nop())
	hubB := websocket.NewHub(zerolog.Nop())
	onB := websocket.NewClient(websocket.ChatTopic("2"))
	hubB.Register(onB)

	a := New(client, "test:events", hubA, zerolog.Nop())
	b := New(client, "test:events", hubB, zerolog.Nop())
	require.NoError(t, a.Start(ctx))
	require.NoError(t, b.Start(ctx))
	defer a.Close()
	defer b.Close()

	require.NoError(t, a.Publish(ctx, websocket.Event{Type: websocket.EventChatMessage, Topic: websocket.ChatTopic("2")}))

	select {
	case <-onB.Send:
	case <-time.After(2 * time.Second):
		t.Fatal("event published on instance A never reached instance B")
	}
}

func TestRelay_PublishFailsWhenRedisDown(t *testing.T) {
	mr, client := setup(t)
	r := New(client, "", websocket.NewHub(zerolog.Nop()), zerolog.Nop())
	mr.Close()

	err := r.Publish(context.Background(), websocket.Event{Type: websocket.EventChatMessage})
	assert.Error(t, err)
}

func TestNewClient_BadURL(t *testing.T) {
	_, err := NewClient(context.Background(), "not-a-redis-url")
	assert.Error(t, err)
}

func TestNewClient_Pings(t *testing.T) {
	mr := miniredis.RunT(t)
	client, err := NewClient(context.Background(), "redis://"+mr.Addr())
	require.NoError(t, err)
	client.Close()
}

func TestRelay_CloseIdempotent(t *testing.T) {
	_, client := setup(t)
	r := New(client, "", websocket.NewHub(zerolog.Nop()), zerolog.Nop())
	require.NoError(t, r.Start(context.Background()))
	assert.NoError(t, r.Close())
	assert.NoError(t, r.Close())
}
