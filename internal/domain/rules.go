package domain

// scan directions as (deltaCol, deltaRow); each is walked in both signs
var directions = [4][2]int{
	{0, 1},  // vertical
	{1, 0},  // horizontal
	{1, 1},  // diagonal /
	{1, -1}, // diagonal \
}

// FindWinningLine only checks lines passing through the placed cell at
// (column, row). It returns the first winLength coordinates of the first run
// long enough, ordered from the negative end of the direction.
func FindWinningLine(b *Board, column, row int, player Cell) ([]Coord, bool) {
	if !player.IsPlayer() || !b.inBounds(column, row) {
		return nil, false
	}
	need := b.dims.WinLength
	for _, d := range directions {
		back := CountDiskInDirection(b, column, row, -d[0], -d[1], player)
		fwd := CountDiskInDirection(b, column, row, d[0], d[1], player)
		if back+1+fwd < need {
			continue
		}

		startCol, startRow := column-back*d[0], row-back*d[1]
		line := make([]Coord, need)
		for i := range line {
			line[i] = Coord{Column: startCol + i*d[0], Row: startRow + i*d[1]}
		}
		return line, true
	}
	return nil, false
}

// this counts the number of disks in a specific direction, excluding the start cell
func CountDiskInDirection(b *Board, column, row, deltaCol, deltaRow int, player Cell) int {
	count := 0
	c, r := column+deltaCol, row+deltaRow
	for b.inBounds(c, r) && b.at(c, r) == player {
		count++
		c += deltaCol
		r += deltaRow
	}
	return count
}
