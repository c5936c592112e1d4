package domain

// Engine runs a single game. It is not safe for concurrent use; callers
// serialize Drop calls.
type Engine struct {
	board         *Board
	currentPlayer Cell
	moveCount     int
	result        GameResult
	moves         []Move
}

func NewEngine(starter Cell) (*Engine, error) {
	return NewEngineWithDimensions(DefaultDimensions(), starter)
}

func NewEngineWithDimensions(dims Dimensions, starter Cell) (*Engine, error) {
	if !starter.IsPlayer() {
		return nil, ErrInvalidPlayer
	}
	board, err := NewBoard(dims)
	if err != nil {
		return nil, err
	}
	return &Engine{
		board:         board,
		currentPlayer: starter,
		result:        GameResult{Status: StatusOngoing},
		moves:         make([]Move, 0, dims.Cells()),
	}, nil
}

// Drop places the current player's chip in column. Rejected drops leave the
// engine untouched and return ErrInvalidColumn, ErrGameOver or ErrColumnFull,
// checked in that order.
func (e *Engine) Drop(column int) (DropOutcome, error) {
	if !e.board.validColumn(column) {
		return DropOutcome{}, ErrInvalidColumn
	}
	if e.result.IsTerminal() {
		return DropOutcome{}, ErrGameOver
	}
	row, ok := e.board.LowestEmptyRow(column)
	if !ok {
		return DropOutcome{}, ErrColumnFull
	}

	player := e.currentPlayer
	e.board.set(column, row, player)
	e.moveCount++
	move := Move{Column: column, Row: row, Player: player}
	e.moves = append(e.moves, move)

	// a win on the last free cell is still a win
	if line, won := FindWinningLine(e.board, column, row, player); won {
		e.result = GameResult{Status: StatusWon, Winner: player, Line: line}
	} else if e.moveCount == e.board.dims.Cells() {
		e.result = GameResult{Status: StatusDraw}
	} else {
		e.currentPlayer = player.Other()
	}

	return DropOutcome{Move: move, Result: e.Result()}, nil
}

// Board returns a copy; mutating it does not affect the game.
func (e *Engine) Board() *Board {
	return e.board.Clone()
}

func (e *Engine) CurrentPlayer() Cell {
	return e.currentPlayer
}

func (e *Engine) Result() GameResult {
	r := e.result
	if r.Line != nil {
		r.Line = append([]Coord(nil), r.Line...)
	}
	return r
}

func (e *Engine) MoveCount() int {
	return e.moveCount
}

func (e *Engine) Moves() []Move {
	return append([]Move(nil), e.moves...)
}

func (e *Engine) Dimensions() Dimensions {
	return e.board.dims
}

func (e *Engine) IsFinished() bool {
	return e.result.IsTerminal()
}

// ValidMoves lists the columns that still accept a chip, empty once the game is over.
func (e *Engine) ValidMoves() []int {
	if e.IsFinished() {
		return nil
	}
	validMoves := []int{}
	for col := 0; col < e.board.dims.Columns; col++ {
		if !e.board.IsColumnFull(col) {
			validMoves = append(validMoves, col)
		}
	}
	return validMoves
}
