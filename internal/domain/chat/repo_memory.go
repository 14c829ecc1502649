package chat

import (
	"context"
	"sync"

	"github.com/ehr/opsboard/internal/platform/memstore"
)

type memoryRepo struct {
	// mu keeps a message append and its preview update together.
	mu       sync.Mutex
	channels *memstore.Store[*Channel]
	messages *memstore.Store[*Message]
}

func NewMemoryRepo(channels []*Channel, messages []*Message) Repository {
	return &memoryRepo{
		channels: memstore.New(channels...),
		messages: memstore.New(messages...),
	}
}

func (r *memoryRepo) CreateChannel(_ context.Context, c *Channel) error {
	return r.channels.Append(c)
}

func (r *memoryRepo) ListChannels(_ context.Context) ([]*Channel, error) {
	return r.channels.All(), nil
}

func (r *memoryRepo) GetChannel(_ context.Context, id string) (*Channel, error) {
	return r.channels.Get(id)
}

func (r *memoryRepo) ListMessages(_ context.Context, channelID string) ([]*Message, error) {
	return r.messages.Where(func(m *Message) bool { return m.ChannelID == channelID }), nil
}

func (r *memoryRepo) AppendMessage(_ context.Context, m *Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ch, err := r.channels.Get(m.ChannelID)
	if err != nil {
		return err
	}
	if err := r.messages.Append(m); err != nil {
		return err
	}
	updated := *ch
	updated.LastMessage = m.Content
	return r.channels.Replace(&updated)
}
