package bot

import (
	"github.com/iamasit07/4-in-a-row/console/internal/domain"
)

// ThreatLength is the run a tier-3/4 placement must reach. Compared with >=
// so longer runs also count.
const ThreatLength = 3

// Tier is the rule that produced a decision, highest priority first.
type Tier int

const (
	TierWin Tier = iota + 1
	TierBlockWin
	TierThree
	TierBlockThree
	TierFallback
)

func (t Tier) String() string {
	switch t {
	case TierWin:
		return "win"
	case TierBlockWin:
		return "block_win"
	case TierThree:
		return "three"
	case TierBlockThree:
		return "block_three"
	case TierFallback:
		return "fallback"
	default:
		return "none"
	}
}

type Decision struct {
	Column int
	Tier   Tier
}

// probe inspects a speculative placement of token at (row, column).
type probe func(board *domain.Board, row, column int, token domain.Token) bool

func completesLine(board *domain.Board, row, column int, token domain.Token) bool {
	return domain.CheckWin(board, row, column, token)
}

func makesThreat(board *domain.Board, row, column int, token domain.Token) bool {
	return domain.LongestRun(board, row, column, token) >= ThreatLength
}

// Decide picks a column for botPlayer. Each tier scans the columns center-out
// and the first tier with a hit wins:
//  1. a column where botPlayer connects
//  2. a column where the opponent would connect
//  3. a column giving botPlayer a run of ThreatLength
//  4. a column giving the opponent a run of ThreatLength
//  5. the first open column
//
// Only one ply is examined. Every trial placement is undone, so the board is
// unchanged on return. ok is false when the board is full.
func Decide(board *domain.Board, botPlayer, opponent domain.Token) (decision Decision, ok bool) {
	order := ColumnOrder(board.Columns())

	tiers := []struct {
		tier  Tier
		token domain.Token
		hit   probe
	}{
		{TierWin, botPlayer, completesLine},
		{TierBlockWin, opponent, completesLine},
		{TierThree, botPlayer, makesThreat},
		{TierBlockThree, opponent, makesThreat},
	}

	for _, t := range tiers {
		if col, found := firstHit(board, order, t.token, t.hit); found {
			return Decision{Column: col, Tier: t.tier}, true
		}
	}

	for _, col := range order {
		if !board.IsColumnFull(col) {
			return Decision{Column: col, Tier: TierFallback}, true
		}
	}

	return Decision{Column: -1}, false
}

func firstHit(board *domain.Board, order []int, token domain.Token, hit probe) (int, bool) {
	for _, col := range order {
		found := board.Speculate(col, token, func(row int) bool {
			return hit(board, row, col, token)
		})
		if found {
			return col, true
		}
	}
	return -1, false
}

// CalculateBestMove returns the column Decide picks, or -1 on a full board.
func CalculateBestMove(board *domain.Board, botPlayer, opponent domain.Token) int {
	decision, ok := Decide(board, botPlayer, opponent)
	if !ok {
		return -1
	}
	return decision.Column
}
