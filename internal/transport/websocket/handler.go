package websocket

import (
	"encoding/json"
	"net/http"
	"slices"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/iamasit07/align4/internal/domain"
	"github.com/iamasit07/align4/internal/service/game"
	"github.com/iamasit07/align4/pkg/uid"
	"github.com/rs/zerolog/log"
)

// Handler streams table events to renderers and accepts their commands.
type Handler struct {
	Tables   *game.Manager
	Upgrader websocket.Upgrader
}

func NewHandler(tables *game.Manager, allowedOrigins []string) *Handler {
	return &Handler{
		Tables: tables,
		Upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || slices.Contains(allowedOrigins, origin)
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// HandleWebSocket upgrades GET /ws/:id. The first message is always a
// snapshot; session events follow in order.
func (h *Handler) HandleWebSocket(c *gin.Context) {
	tableID := c.Param("id")
	if !uid.IsTableID(tableID) {
		c.JSON(http.StatusNotFound, gin.H{"error": game.ErrorCode(game.ErrTableNotFound), "message": game.ErrTableNotFound.Error()})
		return
	}

	table, err := h.Tables.GetTable(tableID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": game.ErrorCode(err), "message": err.Error()})
		return
	}

	conn, err := h.Upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Warn().Err(err).Str("component", "ws").Str("table_id", table.ID).Msg("upgrade failed")
		return
	}

	client := newClient(table.ID, conn)
	go client.writePump()

	snap, unwatch := table.Watch(func(ev domain.Event) {
		client.Send(eventMessage(ev))
	})
	client.Send(snapshotMessage(snap))

	go func() {
		select {
		case <-table.Done():
			client.Send(errorMessage(game.ErrTableClosed, nil))
			client.Close()
		case <-client.Done():
		}
	}()

	log.Debug().Str("component", "ws").Str("table_id", table.ID).Msg("renderer connected")
	defer func() {
		unwatch()
		client.Close()
		log.Debug().Str("component", "ws").Str("table_id", table.ID).Msg("renderer disconnected")
	}()

	h.readPump(client, table)
}

func (h *Handler) readPump(client *Client, table *game.Table) {
	conn := client.conn
	conn.SetReadLimit(maxMessageSize)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		// a connected renderer keeps its table alive
		h.Tables.Touch(table.ID)
		return nil
	})

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Debug().Err(err).Str("component", "ws").Str("table_id", table.ID).Msg("renderer disconnected unexpectedly")
			}
			return
		}
		conn.SetReadDeadline(time.Now().Add(pongWait))

		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			client.Send(requestError("invalid_message", "message must be a JSON object"))
			continue
		}
		h.processMessage(client, table, msg)
	}
}

func (h *Handler) processMessage(client *Client, table *game.Table, msg ClientMessage) {
	switch msg.Type {
	case TypeDrop:
		if msg.Column == nil {
			client.Send(requestError("invalid_request", "drop needs a column"))
			return
		}
		// accepted drops reach every renderer through the table's events
		if _, snap, err := table.Drop(*msg.Column); err != nil {
			client.Send(errorMessage(err, &snap))
		}

	case TypeNewGame:
		if _, err := table.NewGame(); err != nil {
			client.Send(errorMessage(err, nil))
		}

	case TypeSync:
		h.Tables.Touch(table.ID)
		client.Send(snapshotMessage(table.Snapshot()))

	default:
		client.Send(requestError("unknown_message", "unknown message type "+msg.Type))
	}
}
