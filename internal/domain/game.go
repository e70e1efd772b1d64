package domain

import "github.com/pkg/errors"

// Game is the turn state machine around a Board:
// Player1Turn <-> Player2Turn until a move wins (Won) or fills the board (Draw).
type Game struct {
	Board         *Board
	CurrentPlayer Token
	Status        GameStatus
	Winner        Token
	MoveCount     int
	LastMove      *Move
}

func NewGame(s Settings) (*Game, error) {
	board, err := NewBoard(s)
	if err != nil {
		return nil, err
	}

	return &Game{
		Board:         board,
		CurrentPlayer: Player1,
		Status:        StatusPlayer1Turn,
		Winner:        Empty,
	}, nil
}

// MakeMove plays column for the current player. The column is checked before
// the board is touched, so a rejected move never changes the game.
func (g *Game) MakeMove(column int) (Move, error) {
	if g.IsFinished() {
		return Move{}, ErrGameOver
	}

	if !g.Board.IsValidColumn(column) {
		return Move{}, errors.Wrapf(ErrInvalidColumn, "column %d on a %d-column board", column, g.Board.Columns())
	}
	if g.Board.IsColumnFull(column) {
		return Move{}, errors.Wrapf(ErrColumnFull, "column %d", column)
	}

	player := g.CurrentPlayer
	row, err := g.Board.ApplyMove(column, player)
	if err != nil {
		return Move{}, err
	}

	move := Move{Column: column, Row: row, Token: player}
	g.MoveCount++
	g.LastMove = &move

	if CheckWin(g.Board, row, column, player) {
		g.Status = StatusWon
		g.Winner = player
		return move, nil
	}

	if g.Board.IsBoardFull() {
		g.Status = StatusDraw
		return move, nil
	}

	g.CurrentPlayer = player.Opponent()
	if g.CurrentPlayer == Player1 {
		g.Status = StatusPlayer1Turn
	} else {
		g.Status = StatusPlayer2Turn
	}

	return move, nil
}

func (g *Game) IsFinished() bool {
	return g.Status == StatusWon || g.Status == StatusDraw
}
