package chat

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/ehr/opsboard/internal/platform/db"
)

type chatRepoPG struct{ q db.Querier }

func NewChatRepoPG(q db.Querier) Repository {
	return &chatRepoPG{q: q}
}

const (
	channelCols = `id, name, department, unread, last_message`
	messageCols = `id, channel_id, sender_id, sender, department, content, timestamp`
)

func scanChannel(row pgx.Row) (*Channel, error) {
	var c Channel
	err := row.Scan(&c.ID, &c.Name, &c.Department, &c.Unread, &c.LastMessage)
	return &c, err
}

func scanMessage(row pgx.Row) (*Message, error) {
	var m Message
	err := row.Scan(&m.ID, &m.ChannelID, &m.SenderID, &m.Sender, &m.Department, &m.Content, &m.Timestamp)
	return &m, err
}

func (r *chatRepoPG) CreateChannel(ctx context.Context, c *Channel) error {
	_, err := r.q.Exec(ctx, `INSERT INTO chat_channel (`+channelCols+`) VALUES ($1,$2,$3,$4,$5)`,
		c.ID, c.Name, c.Department, c.Unread, c.LastMessage)
	return err
}

func (r *chatRepoPG) ListChannels(ctx context.Context) ([]*Channel, error) {
	rows, err := r.q.Query(ctx, `SELECT `+channelCols+` FROM chat_channel ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var channels []*Channel
	for rows.Next() {
		c, err := scanChannel(rows)
		if err != nil {
			return nil, err
		}
		channels = append(channels, c)
	}
	return channels, rows.Err()
}

func (r *chatRepoPG) GetChannel(ctx context.Context, id string) (*Channel, error) {
	c, err := scanChannel(r.q.QueryRow(ctx, `SELECT `+channelCols+` FROM chat_channel WHERE id = $1`, id))
	if err != nil {
		return nil, db.NotFound(err)
	}
	return c, nil
}

func (r *chatRepoPG) ListMessages(ctx context.Context, channelID string) ([]*Message, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+messageCols+` FROM chat_message WHERE channel_id = $1 ORDER BY seq`, channelID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var msgs []*Message
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}

// AppendMessage inserts the message and refreshes the channel preview in a
// single statement so the two never diverge.
func (r *chatRepoPG) AppendMessage(ctx context.Context, m *Message) error {
	tag, err := r.q.Exec(ctx, `
		WITH ins AS (
			INSERT INTO chat_message (`+messageCols+`)
			VALUES ($1,$2,$3,$4,$5,$6,$7)
		)
		UPDATE chat_channel SET last_message = $6 WHERE id = $2`,
		m.ID, m.ChannelID, m.SenderID, m.Sender, m.Department, m.Content, m.Timestamp)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return db.ErrNotFound
	}
	return nil
}
