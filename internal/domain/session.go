package domain

// Tally counts finished games. Draw counts games that ended with a full board.
type Tally struct {
	PlayerA int `json:"playerA"`
	PlayerB int `json:"playerB"`
	Draw    int `json:"draw"`
}

func (t Tally) Total() int {
	return t.PlayerA + t.PlayerB + t.Draw
}

// Wins returns the win count of p.
func (t Tally) Wins(p Cell) int {
	switch p {
	case PlayerA:
		return t.PlayerA
	case PlayerB:
		return t.PlayerB
	}
	return 0
}

type EventType string

const (
	EventGameStart EventType = "game_start"
	EventMoveMade  EventType = "move_made"
	EventGameOver  EventType = "game_over"
)

// Event is delivered to observers synchronously, in call order.
type Event struct {
	Type          EventType  `json:"type"`
	GameNumber    int        `json:"gameNumber"`
	Move          *Move      `json:"move,omitempty"`
	Result        GameResult `json:"result"`
	CurrentPlayer Cell       `json:"currentPlayer"`
	MoveCount     int        `json:"moveCount"`
	Tally         Tally      `json:"tally"`
}

type Observer func(Event)

// Session owns the active engine across repeated games, credits every
// finished game exactly once and alternates the starting player.
type Session struct {
	dims        Dimensions
	engine      *Engine
	tally       Tally
	nextStarter Cell
	gameNumber  int
	credited    bool

	observers map[int]Observer
	nextObsID int
}

// NewSession starts game 1 with PlayerA.
func NewSession(dims Dimensions) (*Session, error) {
	if err := dims.Validate(); err != nil {
		return nil, err
	}
	s := &Session{
		dims:        dims,
		nextStarter: PlayerA,
		observers:   make(map[int]Observer),
	}
	s.NewGame()
	return s, nil
}

// NewGame replaces the active engine. The starter alternates on every call,
// whatever the previous result. A finished game is credited first if nobody
// observed it yet; an unfinished game is dropped uncredited.
func (s *Session) NewGame() *Engine {
	if s.engine != nil {
		s.Observe()
	}

	// dims were validated in NewSession and the starter is always a player
	engine, _ := NewEngineWithDimensions(s.dims, s.nextStarter)

	s.engine = engine
	s.nextStarter = s.nextStarter.Other()
	s.gameNumber++
	s.credited = false

	s.notify(Event{
		Type:          EventGameStart,
		GameNumber:    s.gameNumber,
		Result:        engine.Result(),
		CurrentPlayer: engine.CurrentPlayer(),
		Tally:         s.tally,
	})
	return engine
}

// Drop forwards to the active engine and credits the game if it just ended.
func (s *Session) Drop(column int) (DropOutcome, error) {
	outcome, err := s.engine.Drop(column)
	if err != nil {
		return outcome, err
	}

	move := outcome.Move
	s.notify(Event{
		Type:          EventMoveMade,
		GameNumber:    s.gameNumber,
		Move:          &move,
		Result:        outcome.Result,
		CurrentPlayer: s.engine.CurrentPlayer(),
		MoveCount:     s.engine.MoveCount(),
		Tally:         s.tally,
	})
	s.Observe()
	return outcome, nil
}

// Observe credits the active engine once it is terminal. It returns true
// only on the call that did the crediting.
func (s *Session) Observe() bool {
	if s.credited || !s.engine.IsFinished() {
		return false
	}

	result := s.engine.Result()
	switch result.Status {
	case StatusWon:
		if result.Winner == PlayerA {
			s.tally.PlayerA++
		} else {
			s.tally.PlayerB++
		}
	case StatusDraw:
		s.tally.Draw++
	}
	s.credited = true

	s.notify(Event{
		Type:          EventGameOver,
		GameNumber:    s.gameNumber,
		Result:        result,
		CurrentPlayer: s.engine.CurrentPlayer(),
		MoveCount:     s.engine.MoveCount(),
		Tally:         s.tally,
	})
	return true
}

func (s *Session) Tally() Tally {
	return s.tally
}

func (s *Session) ActiveEngine() *Engine {
	return s.engine
}

func (s *Session) NextStarter() Cell {
	return s.nextStarter
}

func (s *Session) GameNumber() int {
	return s.gameNumber
}

func (s *Session) Dimensions() Dimensions {
	return s.dims
}

// Subscribe registers fn for session events. The returned func removes it.
func (s *Session) Subscribe(fn Observer) func() {
	id := s.nextObsID
	s.nextObsID++
	s.observers[id] = fn
	return func() {
		delete(s.observers, id)
	}
}

func (s *Session) notify(ev Event) {
	for id := 0; id < s.nextObsID; id++ {
		if fn, ok := s.observers[id]; ok {
			fn(ev)
		}
	}
}
