package chat

import "context"

type Repository interface {
	CreateChannel(ctx context.Context, c *Channel) error
	ListChannels(ctx context.Context) ([]*Channel, error)
	GetChannel(ctx context.Context, id string) (*Channel, error)
	// ListMessages returns the channel's messages oldest first.
	ListMessages(ctx context.Context, channelID string) ([]*Message, error)
	// AppendMessage stores m and updates its channel's preview in one step.
	AppendMessage(ctx context.Context, m *Message) error
}
