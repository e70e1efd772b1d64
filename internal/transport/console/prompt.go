package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/iamasit07/4-in-a-row/console/internal/domain"
	"github.com/pkg/errors"
)

// Prompter asks questions on out and reads one answer per line from in.
// Reads block until a line arrives; cancellation is only observed between
// prompts.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", errors.Wrap(err, "reading console input")
	}
	return strings.TrimSpace(line), nil
}

// PlayerKind asks whether player number is a human or the computer.
func (p *Prompter) PlayerKind(number int) (domain.PlayerKind, error) {
	for {
		fmt.Fprintf(p.out, "Choose type for player %d: h - human, c - computer: ", number)
		line, err := p.readLine()
		if err != nil {
			return domain.Human, err
		}
		if line == "" {
			continue
		}

		if kind, ok := ParsePlayerKind(line[:1]); ok {
			return kind, nil
		}
		fmt.Fprintln(p.out, "Invalid selection. Enter h or c.")
	}
}

// ParsePlayerKind accepts h/H for a human and c/C for the computer.
func ParsePlayerKind(s string) (domain.PlayerKind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "h":
		return domain.Human, true
	case "c":
		return domain.Automated, true
	default:
		return domain.Human, false
	}
}

// HumanPlayer reads 1-based column numbers from the console until it gets
// one that is in range and not full.
type HumanPlayer struct {
	prompter *Prompter
}

func NewHumanPlayer(prompter *Prompter) *HumanPlayer {
	return &HumanPlayer{prompter: prompter}
}

func (h *HumanPlayer) Kind() domain.PlayerKind {
	return domain.Human
}

func (h *HumanPlayer) ChooseColumn(ctx context.Context, board *domain.Board, _, _ domain.Token) (int, error) {
	p := h.prompter
	columns := board.Columns()

	for {
		if err := ctx.Err(); err != nil {
			return -1, err
		}

		fmt.Fprintf(p.out, "Enter column (1-%d): ", columns)
		line, err := p.readLine()
		if err != nil {
			return -1, err
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			fmt.Fprintln(p.out, "Invalid input. Enter a number.")
			continue
		}
		col, err := strconv.Atoi(fields[0])
		if err != nil {
			fmt.Fprintln(p.out, "Invalid input. Enter a number.")
			continue
		}

		if col < 1 || col > columns {
			fmt.Fprintf(p.out, "Invalid column. Choose between 1 and %d.\n", columns)
			continue
		}

		if board.IsColumnFull(col - 1) {
			fmt.Fprintf(p.out, "Column %d is full. Choose another column.\n", col)
			continue
		}

		return col - 1, nil
	}
}
