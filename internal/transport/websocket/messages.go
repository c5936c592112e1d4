package websocket

import (
	"github.com/iamasit07/align4/internal/domain"
	"github.com/iamasit07/align4/internal/service/game"
)

// Server → client message types. Session events reuse domain.EventType values.
const (
	TypeSnapshot = "snapshot"
	TypeError    = "error"
)

// Client → server message types.
const (
	TypeDrop    = "drop"
	TypeNewGame = "new_game"
	TypeSync    = "sync"
)

type ClientMessage struct {
	Type   string `json:"type"`
	Column *int   `json:"column,omitempty"`
}

type ServerMessage struct {
	Type          string             `json:"type"`
	Table         *game.Snapshot     `json:"table,omitempty"`
	GameNumber    int                `json:"gameNumber,omitempty"`
	Move          *domain.Move       `json:"move,omitempty"`
	Result        *domain.GameResult `json:"result,omitempty"`
	CurrentPlayer domain.Cell        `json:"currentPlayer,omitempty"`
	MoveCount     int                `json:"moveCount,omitempty"`
	Tally         *domain.Tally      `json:"tally,omitempty"`
	Error         string             `json:"error,omitempty"`
	Message       string             `json:"message,omitempty"`
}

func snapshotMessage(snap game.Snapshot) ServerMessage {
	return ServerMessage{Type: TypeSnapshot, Table: &snap}
}

func eventMessage(ev domain.Event) ServerMessage {
	result, tally := ev.Result, ev.Tally
	return ServerMessage{
		Type:          string(ev.Type),
		GameNumber:    ev.GameNumber,
		Move:          ev.Move,
		Result:        &result,
		CurrentPlayer: ev.CurrentPlayer,
		MoveCount:     ev.MoveCount,
		Tally:         &tally,
	}
}

// errorMessage attaches the table state to rejected commands so the
// renderer can resync.
func errorMessage(err error, snap *game.Snapshot) ServerMessage {
	msg := ServerMessage{Type: TypeError, Error: game.ErrorCode(err), Message: err.Error()}
	if snap != nil && snap.TableID != "" {
		msg.Table = snap
	}
	return msg
}

func requestError(code, message string) ServerMessage {
	return ServerMessage{Type: TypeError, Error: code, Message: message}
}
