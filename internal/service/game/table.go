package game

import (
	"sync"
	"time"

	"github.com/iamasit07/align4/internal/domain"
	"github.com/rs/zerolog/log"
)

// Table is one hot-seat context: it owns a domain.Session and serializes
// every call into it.
type Table struct {
	ID        string
	CreatedAt time.Time

	session      *domain.Session
	lastActivity time.Time
	closed       bool
	done         chan struct{}
	now          func() time.Time
	mu           sync.Mutex
}

// Snapshot is a read-only copy of a table's state for renderers.
type Snapshot struct {
	TableID       string            `json:"tableId"`
	GameNumber    int               `json:"gameNumber"`
	Dimensions    domain.Dimensions `json:"dimensions"`
	Board         [][]domain.Cell   `json:"board"` // [column][row], row 0 at the bottom
	CurrentPlayer domain.Cell       `json:"currentPlayer"`
	MoveCount     int               `json:"moveCount"`
	Result        domain.GameResult `json:"result"`
	Moves         []domain.Move     `json:"moves"`
	Tally         domain.Tally      `json:"tally"`
	NextStarter   domain.Cell       `json:"nextStarter"`
	ValidMoves    []int             `json:"validMoves"`
}

func newTable(id string, dims domain.Dimensions, now func() time.Time) (*Table, error) {
	session, err := domain.NewSession(dims)
	if err != nil {
		return nil, err
	}
	created := now()
	return &Table{
		ID:           id,
		CreatedAt:    created,
		session:      session,
		lastActivity: created,
		done:         make(chan struct{}),
		now:          now,
	}, nil
}

// Drop plays column for the player whose turn it is. Rejections come back
// as domain errors and leave the table untouched.
func (t *Table) Drop(column int) (domain.DropOutcome, Snapshot, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return domain.DropOutcome{}, Snapshot{}, ErrTableClosed
	}
	t.lastActivity = t.now()

	outcome, err := t.session.Drop(column)
	if err != nil {
		return outcome, t.snapshotLocked(), err
	}

	if outcome.Result.IsTerminal() {
		tally := t.session.Tally()
		log.Info().
			Str("component", "table").
			Str("table_id", t.ID).
			Int("game", t.session.GameNumber()).
			Str("status", string(outcome.Result.Status)).
			Stringer("winner", outcome.Result.Winner).
			Int("moves", t.session.ActiveEngine().MoveCount()).
			Int("tally_a", tally.PlayerA).
			Int("tally_b", tally.PlayerB).
			Int("tally_draw", tally.Draw).
			Msg("game finished")
	}
	return outcome, t.snapshotLocked(), nil
}

// NewGame starts the next game; the starting player alternates.
func (t *Table) NewGame() (Snapshot, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return Snapshot{}, ErrTableClosed
	}
	t.lastActivity = t.now()

	if !t.session.ActiveEngine().IsFinished() {
		log.Debug().Str("component", "table").Str("table_id", t.ID).
			Int("game", t.session.GameNumber()).Msg("abandoning unfinished game")
	}
	t.session.NewGame()
	return t.snapshotLocked(), nil
}

func (t *Table) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.snapshotLocked()
}

func (t *Table) Tally() domain.Tally {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.session.Tally()
}

// Watch subscribes fn and returns the state it will receive events on top
// of, so a renderer never misses or double-applies a move. fn runs while the
// table is locked and must not call back into the table.
func (t *Table) Watch(fn domain.Observer) (Snapshot, func()) {
	t.mu.Lock()
	defer t.mu.Unlock()

	unsubscribe := t.session.Subscribe(fn)
	return t.snapshotLocked(), func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		unsubscribe()
	}
}

// Done is closed when the table is removed from its manager.
func (t *Table) Done() <-chan struct{} {
	return t.done
}

func (t *Table) LastActivity() time.Time {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.lastActivity
}

func (t *Table) touch() {
	t.mu.Lock()
	t.lastActivity = t.now()
	t.mu.Unlock()
}

func (t *Table) close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return
	}
	t.closed = true
	close(t.done)
}

func (t *Table) snapshotLocked() Snapshot {
	engine := t.session.ActiveEngine()
	return Snapshot{
		TableID:       t.ID,
		GameNumber:    t.session.GameNumber(),
		Dimensions:    engine.Dimensions(),
		Board:         engine.Board().Grid(),
		CurrentPlayer: engine.CurrentPlayer(),
		MoveCount:     engine.MoveCount(),
		Result:        engine.Result(),
		Moves:         engine.Moves(),
		Tally:         t.session.Tally(),
		NextStarter:   t.session.NextStarter(),
		ValidMoves:    engine.ValidMoves(),
	}
}
