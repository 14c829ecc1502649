package chat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ehr/opsboard/internal/platform/auth"
	"github.com/ehr/opsboard/internal/platform/search"
	"github.com/ehr/opsboard/internal/platform/websocket"
)

// ErrEmptyMessage is returned for content that is empty after trimming.
var ErrEmptyMessage = errors.New("message content is empty")

var SearchFields = []search.Field[*Channel]{
	func(c *Channel) string { return c.Name },
	func(c *Channel) string { return c.Department },
}

// Recorder counts sent messages.
type Recorder interface {
	ChatMessageSent(department string)
}

type Service struct {
	repo      Repository
	publisher websocket.EventPublisher
	recorder  Recorder
	logger    zerolog.Logger
	now       func() time.Time
}

// NewService returns a chat service. publisher may be nil, in which case
// sent messages are stored but not pushed.
func NewService(repo Repository, publisher websocket.EventPublisher, logger zerolog.Logger) *Service {
	return &Service{repo: repo, publisher: publisher, logger: logger, now: time.Now}
}

// SetClock overrides the clock used to stamp new messages.
func (s *Service) SetClock(now func() time.Time) { s.now = now }

func (s *Service) SetRecorder(r Recorder) { s.recorder = r }

func (s *Service) ListChannels(ctx context.Context, query string) ([]*Channel, error) {
	channels, err := s.repo.ListChannels(ctx)
	if err != nil {
		return nil, fmt.Errorf("list channels: %w", err)
	}
	return search.Filter(channels, query, SearchFields...), nil
}

// Messages returns a channel's messages in send order, with IsOwn set
// relative to viewerID.
func (s *Service) Messages(ctx context.Context, channelID, viewerID string) ([]*Message, error) {
	if _, err := s.repo.GetChannel(ctx, channelID); err != nil {
		return nil, err
	}
	msgs, err := s.repo.ListMessages(ctx, channelID)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	out := make([]*Message, len(msgs))
	for i, m := range msgs {
		out[i] = m.viewedBy(viewerID)
	}
	return out, nil
}

// Send appends a message from the user in ctx to the channel and pushes it
// to the channel's subscribers.
func (s *Service) Send(ctx context.Context, channelID, content string) (*Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyMessage
	}
	ch, err := s.repo.GetChannel(ctx, channelID)
	if err != nil {
		return nil, err
	}

	m := &Message{
		ID:         uuid.NewString(),
		ChannelID:  ch.ID,
		SenderID:   auth.UserIDFromContext(ctx),
		Sender:     auth.DisplayNameFromContext(ctx),
		Department: ch.Department,
		Content:    content,
		Timestamp:  s.now().Format(TimestampLayout),
		IsOwn:      true,
	}
	if err := s.repo.AppendMessage(ctx, m); err != nil {
		return nil, fmt.Errorf("append message: %w", err)
	}
	if s.recorder != nil {
		s.recorder.ChatMessageSent(m.Department)
	}
	s.publish(ctx, m)
	return m, nil
}

// publish failures are logged only: the message is already stored and
// clients that missed the push see it on their next fetch.
func (s *Service) publish(ctx context.Context, m *Message) {
	if s.publisher == nil {
		return
	}
	data, err := json.Marshal(m)
	if err != nil {
		s.logger.Error().Err(err).Str("message_id", m.ID).Msg("encode chat event")
		return
	}
	ev := websocket.Event{
		Type:       websocket.EventChatMessage,
		Topic:      websocket.ChatTopic(m.ChannelID),
		ResourceID: m.ID,
		Timestamp:  s.now().UTC(),
		Data:       data,
	}
	if err := s.publisher.Publish(ctx, ev); err != nil {
		s.logger.Warn().Err(err).Str("channel_id", m.ChannelID).Msg("publish chat event")
	}
}
