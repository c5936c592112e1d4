package websocket

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = 30 * time.Second
	maxMessageSize = 512
	sendBuffer     = 32
)

// Client is one renderer connected to a table. Only the write pump writes to
// the socket; everything else queues through Send.
type Client struct {
	tableID string
	conn    *websocket.Conn
	send    chan ServerMessage
	done    chan struct{}

	closeOnce sync.Once
}

func newClient(tableID string, conn *websocket.Conn) *Client {
	return &Client{
		tableID: tableID,
		conn:    conn,
		send:    make(chan ServerMessage, sendBuffer),
		done:    make(chan struct{}),
	}
}

// Send queues msg without blocking. A client whose buffer is full is too
// slow to follow the table and gets disconnected.
func (c *Client) Send(msg ServerMessage) bool {
	select {
	case <-c.done:
		return false
	default:
	}

	select {
	case c.send <- msg:
		return true
	default:
		log.Warn().Str("component", "ws").Str("table_id", c.tableID).
			Str("type", msg.Type).Msg("send buffer full, dropping client")
		c.Close()
		return false
	}
}

// Close stops the write pump after it flushes queued messages.
func (c *Client) Close() {
	c.closeOnce.Do(func() {
		close(c.done)
	})
}

func (c *Client) Done() <-chan struct{} {
	return c.done
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg := <-c.send:
			if err := c.write(msg); err != nil {
				c.Close()
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.Close()
				return
			}
		case <-c.done:
			c.flush()
			c.conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(writeWait))
			return
		}
	}
}

func (c *Client) flush() {
	for {
		select {
		case msg := <-c.send:
			if err := c.write(msg); err != nil {
				return
			}
		default:
			return
		}
	}
}

func (c *Client) write(msg ServerMessage) error {
	c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteJSON(msg)
}
