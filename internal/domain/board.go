package domain

import (
	"fmt"

	"github.com/pkg/errors"
)

// Board is a rows x columns grid. Row 0 is the top row. Cells are only
// written through ApplyMove, which keeps every column packed from the bottom.
type Board struct {
	rows     int
	columns  int
	connectN int
	cells    [][]Token
}

func NewBoard(s Settings) (*Board, error) {
	if s.Rows < 1 || s.Columns < 1 || s.ConnectN < 1 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "%d rows x %d columns, connect %d", s.Rows, s.Columns, s.ConnectN)
	}

	cells := make([][]Token, s.Rows)
	for i := range cells {
		cells[i] = make([]Token, s.Columns)
	}

	return &Board{
		rows:     s.Rows,
		columns:  s.Columns,
		connectN: s.ConnectN,
		cells:    cells,
	}, nil
}

func (b *Board) Rows() int     { return b.rows }
func (b *Board) Columns() int  { return b.columns }
func (b *Board) ConnectN() int { return b.connectN }

func (b *Board) Settings() Settings {
	return Settings{Rows: b.rows, Columns: b.columns, ConnectN: b.connectN}
}

func (b *Board) InBounds(row, column int) bool {
	return row >= 0 && row < b.rows && column >= 0 && column < b.columns
}

func (b *Board) IsValidColumn(column int) bool {
	return column >= 0 && column < b.columns
}

// At returns the token at (row, column). Out-of-range indices are a
// programming error and panic with the offending position.
func (b *Board) At(row, column int) Token {
	if !b.InBounds(row, column) {
		panic(fmt.Sprintf("domain: cell (%d,%d) outside %dx%d board", row, column, b.rows, b.columns))
	}
	return b.cells[row][column]
}

// IsColumnFull reports whether the top cell of column is occupied.
func (b *Board) IsColumnFull(column int) bool {
	return b.At(0, column) != Empty
}

func (b *Board) IsBoardFull() bool {
	for c := 0; c < b.columns; c++ {
		if !b.IsColumnFull(c) {
			return false
		}
	}
	return true
}

// FreeRow returns the landing row of column: the lowest empty cell.
func (b *Board) FreeRow(column int) (int, error) {
	if !b.IsValidColumn(column) {
		return -1, errors.Wrapf(ErrInvalidColumn, "column %d", column)
	}

	// here row 0 represents the top row, so scan from the bottom up
	for row := b.rows - 1; row >= 0; row-- {
		if b.cells[row][column] == Empty {
			return row, nil
		}
	}

	return -1, errors.Wrapf(ErrColumnFull, "column %d", column)
}

// ApplyMove drops token into column and returns the row it landed on.
// A full column yields ErrColumnFull and leaves the board untouched.
func (b *Board) ApplyMove(column int, token Token) (int, error) {
	if token != Player1 && token != Player2 {
		return -1, errors.Errorf("cannot place token %d", token)
	}

	row, err := b.FreeRow(column)
	if err != nil {
		return -1, err
	}

	b.cells[row][column] = token
	return row, nil
}

// Speculate places token in column, calls probe with the landing row and
// removes the token again before returning, whatever way probe exits.
// It reports false without calling probe when the column cannot take a token.
func (b *Board) Speculate(column int, token Token, probe func(row int) bool) bool {
	row, err := b.ApplyMove(column, token)
	if err != nil {
		return false
	}
	defer func() { b.cells[row][column] = Empty }()

	return probe(row)
}

// ValidMoves lists the columns that can still take a token, left to right.
func (b *Board) ValidMoves() []int {
	validMoves := []int{}
	for col := 0; col < b.columns; col++ {
		if !b.IsColumnFull(col) {
			validMoves = append(validMoves, col)
		}
	}
	return validMoves
}

func (b *Board) MoveCount() int {
	count := 0
	for _, row := range b.cells {
		for _, cell := range row {
			if cell != Empty {
				count++
			}
		}
	}
	return count
}

// this creates a deep copy of the board
func (b *Board) Clone() *Board {
	cells := make([][]Token, len(b.cells))
	for i := range b.cells {
		cells[i] = make([]Token, len(b.cells[i]))
		copy(cells[i], b.cells[i])
	}
	return &Board{rows: b.rows, columns: b.columns, connectN: b.connectN, cells: cells}
}

func (b *Board) Equal(other *Board) bool {
	if other == nil || b.rows != other.rows || b.columns != other.columns || b.connectN != other.connectN {
		return false
	}
	for r := range b.cells {
		for c := range b.cells[r] {
			if b.cells[r][c] != other.cells[r][c] {
				return false
			}
		}
	}
	return true
}

// Snapshot converts the grid to plain ints for events and JSON responses.
func (b *Board) Snapshot() [][]int {
	result := make([][]int, b.rows)
	for r := range b.cells {
		result[r] = make([]int, b.columns)
		for c, cell := range b.cells[r] {
			result[r][c] = int(cell)
		}
	}
	return result
}
