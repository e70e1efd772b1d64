package domain

// direction is one of the four line axes, walked forwards and backwards.
type direction struct {
	deltaRow, deltaCol int
}

var axes = [...]direction{
	{0, 1},  // horizontal
	{1, 0},  // vertical
	{1, 1},  // diagonal \
	{-1, 1}, // diagonal /
}

// CountDiskInDirection counts consecutive cells holding token, starting next
// to (row, column) and stepping by (deltaRow, deltaCol). The cell itself is
// not counted. Stops at the board edge or at any other token.
func (b *Board) CountDiskInDirection(row, column, deltaRow, deltaCol int, token Token) int {
	count := 0
	r, c := row+deltaRow, column+deltaCol
	for b.InBounds(r, c) && b.cells[r][c] == token {
		count++
		r += deltaRow
		c += deltaCol
	}
	return count
}

// runLength is the length of the run of token through (row, column) along a
// single axis, the cell itself included.
func (b *Board) runLength(row, column int, d direction, token Token) int {
	return 1 +
		b.CountDiskInDirection(row, column, d.deltaRow, d.deltaCol, token) +
		b.CountDiskInDirection(row, column, -d.deltaRow, -d.deltaCol, token)
}

// LongestRun returns the longest single-axis run of token through
// (row, column), assuming that cell holds token.
func LongestRun(b *Board, row, column int, token Token) int {
	longest := 1
	for _, d := range axes {
		if n := b.runLength(row, column, d, token); n > longest {
			longest = n
		}
	}
	return longest
}

// CheckWin reports whether the token at (row, column) completes a line of
// the board's connect length. Only lines through that cell are inspected and
// each axis is counted on its own.
func CheckWin(b *Board, row, column int, token Token) bool {
	for _, d := range axes {
		if b.runLength(row, column, d, token) >= b.connectN {
			return true
		}
	}
	return false
}
