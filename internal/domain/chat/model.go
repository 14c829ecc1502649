package chat

// TimestampLayout renders message times as the board shows them, e.g. "09:15 AM".
const TimestampLayout = "03:04 PM"

// Channel maps to the chat_channel table. LastMessage is a preview of the
// most recent message.
type Channel struct {
	ID          string `db:"id" json:"id"`
	Name        string `db:"name" json:"name"`
	Department  string `db:"department" json:"department"`
	Unread      int    `db:"unread" json:"unread"`
	LastMessage string `db:"last_message" json:"last_message"`
}

func (c *Channel) RecordID() string { return c.ID }

// Message maps to the chat_message table. Messages are append-only.
type Message struct {
	ID         string `db:"id" json:"id"`
	ChannelID  string `db:"channel_id" json:"channel_id"`
	SenderID   string `db:"sender_id" json:"-"`
	Sender     string `db:"sender" json:"sender"`
	Department string `db:"department" json:"department"`
	Content    string `db:"content" json:"content"`
	Timestamp  string `db:"timestamp" json:"timestamp"`
	// IsOwn is relative to the viewer and is never stored.
	IsOwn bool `db:"-" json:"is_own"`
}

func (m *Message) RecordID() string { return m.ID }

// viewedBy returns a copy of m with IsOwn set for viewerID.
func (m *Message) viewedBy(viewerID string) *Message {
	cp := *m
	cp.IsOwn = viewerID != "" && m.SenderID == viewerID
	return &cp
}
