package domain

import (
	"fmt"
	"strings"
)

// Board is indexed cells[column][row]; row 0 is the bottom.
// Occupied cells of a column are always contiguous from row 0 upward.
type Board struct {
	dims  Dimensions
	cells [][]Cell
}

func NewBoard(dims Dimensions) (*Board, error) {
	if err := dims.Validate(); err != nil {
		return nil, err
	}
	cells := make([][]Cell, dims.Columns)
	for c := range cells {
		cells[c] = make([]Cell, dims.Rows)
	}
	return &Board{dims: dims, cells: cells}, nil
}

func (b *Board) Dimensions() Dimensions {
	return b.dims
}

func (b *Board) validColumn(column int) bool {
	return column >= 0 && column < b.dims.Columns
}

func (b *Board) inBounds(column, row int) bool {
	return b.validColumn(column) && row >= 0 && row < b.dims.Rows
}

func (b *Board) mustColumn(column int) {
	if !b.validColumn(column) {
		panic(fmt.Sprintf("domain: column %d out of range [0, %d)", column, b.dims.Columns))
	}
}

// IsColumnFull reports whether the top row of column is occupied.
// The column must be in range.
func (b *Board) IsColumnFull(column int) bool {
	b.mustColumn(column)
	return b.cells[column][b.dims.Rows-1] != Empty
}

// LowestEmptyRow scans upward from row 0. ok is false when the column is full.
func (b *Board) LowestEmptyRow(column int) (row int, ok bool) {
	b.mustColumn(column)
	for r := 0; r < b.dims.Rows; r++ {
		if b.cells[column][r] == Empty {
			return r, true
		}
	}
	return -1, false
}

func (b *Board) CellAt(column, row int) (Cell, error) {
	if !b.inBounds(column, row) {
		return Empty, fmt.Errorf("(%d,%d): %w", column, row, ErrOutOfBounds)
	}
	return b.cells[column][row], nil
}

// set is only called by the engine after LowestEmptyRow resolved row.
func (b *Board) set(column, row int, player Cell) {
	b.cells[column][row] = player
}

// at is the unchecked read used by the win scan.
func (b *Board) at(column, row int) Cell {
	return b.cells[column][row]
}

// Occupied counts the non-empty cells.
func (b *Board) Occupied() int {
	n := 0
	for _, col := range b.cells {
		for _, cell := range col {
			if cell != Empty {
				n++
			}
		}
	}
	return n
}

// this creates a deep copy of the board
func (b *Board) Clone() *Board {
	return &Board{dims: b.dims, cells: b.Grid()}
}

// Grid returns a copy of the cells, indexed [column][row].
func (b *Board) Grid() [][]Cell {
	grid := make([][]Cell, len(b.cells))
	for c := range b.cells {
		grid[c] = make([]Cell, len(b.cells[c]))
		copy(grid[c], b.cells[c])
	}
	return grid
}

// String draws the board top row first, one character per cell.
func (b *Board) String() string {
	var sb strings.Builder
	for r := b.dims.Rows - 1; r >= 0; r-- {
		for c := 0; c < b.dims.Columns; c++ {
			switch b.cells[c][r] {
			case PlayerA:
				sb.WriteByte('A')
			case PlayerB:
				sb.WriteByte('B')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
