package domain

// Cell is the content of one board slot.
type Cell int

const (
	Empty   Cell = 0
	PlayerA Cell = 1
	PlayerB Cell = 2
)

// Other returns the opponent of p. Empty has no opponent and maps to itself.
func (c Cell) Other() Cell {
	switch c {
	case PlayerA:
		return PlayerB
	case PlayerB:
		return PlayerA
	}
	return Empty
}

func (c Cell) IsPlayer() bool {
	return c == PlayerA || c == PlayerB
}

// display names are the chip colors
func (c Cell) String() string {
	switch c {
	case PlayerA:
		return "Red"
	case PlayerB:
		return "Yellow"
	}
	return "Empty"
}

const (
	Rows    = 6
	Columns = 7
	ToWin   = 4
)

// Dimensions are fixed for the lifetime of a board.
type Dimensions struct {
	Columns   int `json:"columns" yaml:"columns"`
	Rows      int `json:"rows" yaml:"rows"`
	WinLength int `json:"winLength" yaml:"win_length"`
}

func DefaultDimensions() Dimensions {
	return Dimensions{Columns: Columns, Rows: Rows, WinLength: ToWin}
}

func (d Dimensions) Validate() error {
	if d.Columns < 1 || d.Rows < 1 {
		return ErrInvalidDimensions
	}
	if d.WinLength < 2 || d.WinLength > max(d.Columns, d.Rows) {
		return ErrInvalidDimensions
	}
	return nil
}

func (d Dimensions) Cells() int {
	return d.Columns * d.Rows
}

// Coord addresses a board slot. Row 0 is the bottom row, column 0 the leftmost.
type Coord struct {
	Column int `json:"column"`
	Row    int `json:"row"`
}

// Move is an accepted drop. Row is resolved by the engine, never by the caller.
type Move struct {
	Column int  `json:"column"`
	Row    int  `json:"row"`
	Player Cell `json:"player"`
}

// to represent the game status
type GameStatus string

const (
	StatusOngoing GameStatus = "ongoing"
	StatusWon     GameStatus = "won"
	StatusDraw    GameStatus = "draw"
)

// GameResult is Ongoing, Won(Winner, Line) or Drawn.
type GameResult struct {
	Status GameStatus `json:"status"`
	Winner Cell       `json:"winner,omitempty"`
	Line   []Coord    `json:"line,omitempty"`
}

func (r GameResult) IsTerminal() bool {
	return r.Status == StatusWon || r.Status == StatusDraw
}

// DropOutcome is returned for every accepted drop.
type DropOutcome struct {
	Move   Move       `json:"move"`
	Result GameResult `json:"result"`
}

// basic error that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrInvalidColumn     Error = "invalid column"
	ErrColumnFull        Error = "column is full"
	ErrGameOver          Error = "game already over"
	ErrOutOfBounds       Error = "coordinate out of bounds"
	ErrInvalidPlayer     Error = "invalid player"
	ErrInvalidDimensions Error = "invalid board dimensions"
)
