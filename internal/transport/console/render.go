package console

import (
	"bufio"
	"fmt"
	"io"

	"github.com/iamasit07/4-in-a-row/console/internal/domain"
	"github.com/iamasit07/4-in-a-row/console/internal/service/game"
)

// Symbols maps tokens to the characters drawn on the board.
type Symbols struct {
	Empty   rune
	Player1 rune
	Player2 rune
}

func DefaultSymbols() Symbols {
	return Symbols{Empty: '.', Player1: 'X', Player2: 'O'}
}

func (s Symbols) For(token domain.Token) rune {
	switch token {
	case domain.Player1:
		return s.Player1
	case domain.Player2:
		return s.Player2
	default:
		return s.Empty
	}
}

// RenderBoard draws the grid top row first, one "|c|c|" line per row,
// followed by 1-based column labels (last digit only).
func RenderBoard(w io.Writer, board *domain.Board, symbols Symbols) {
	bw := bufio.NewWriter(w)
	defer bw.Flush()

	bw.WriteString("\n")
	for r := 0; r < board.Rows(); r++ {
		bw.WriteString("|")
		for c := 0; c < board.Columns(); c++ {
			bw.WriteRune(symbols.For(board.At(r, c)))
			bw.WriteString("|")
		}
		bw.WriteString("\n")
	}
	for c := 1; c <= board.Columns(); c++ {
		fmt.Fprintf(bw, " %d", c%10)
	}
	bw.WriteString("\n\n")
}

// View writes the turn-by-turn dialogue of a game to out.
type View struct {
	out     io.Writer
	symbols Symbols
}

func NewView(out io.Writer, symbols Symbols) *View {
	return &View{out: out, symbols: symbols}
}

func (v *View) Banner(settings domain.Settings) {
	fmt.Fprintf(v.out, "Connect Four (%d rows x %d cols)\n\n", settings.Rows, settings.Columns)
}

func (v *View) GameStarted(board *domain.Board) {
	RenderBoard(v.out, board, v.symbols)
}

func (v *View) TurnStarted(player domain.Token) {
	fmt.Fprintf(v.out, "Player %d (%c) turn.\n", player, v.symbols.For(player))
}

func (v *View) AutomatedChoice(_ domain.Token, column int) {
	fmt.Fprintf(v.out, "Computer chose column %d\n", column+1)
}

func (v *View) BoardChanged(board *domain.Board) {
	RenderBoard(v.out, board, v.symbols)
}

func (v *View) GameOver(result game.Result) {
	if result.Status == domain.StatusWon {
		fmt.Fprintf(v.out, "Player %d (%c) wins!\n", result.Winner, v.symbols.For(result.Winner))
		return
	}
	fmt.Fprintln(v.out, "Board full and no winner. It's a tie!")
}
