package game

import (
	"context"
	"log"
	"time"

	"github.com/iamasit07/4-in-a-row/console/internal/domain"
	"github.com/iamasit07/4-in-a-row/console/internal/service/bot"
	"github.com/pkg/errors"
)

// Player supplies the column for a turn. Implementations must return an
// in-range, non-full column or an error; the service never retries.
type Player interface {
	Kind() domain.PlayerKind
	ChooseColumn(ctx context.Context, board *domain.Board, me, opponent domain.Token) (int, error)
}

// BotPlayer plays the tiered heuristic from the bot package.
type BotPlayer struct {
	// Delay pauses before each decision so spectators can follow the game.
	Delay time.Duration
}

func NewBotPlayer(delay time.Duration) *BotPlayer {
	return &BotPlayer{Delay: delay}
}

func (p *BotPlayer) Kind() domain.PlayerKind {
	return domain.Automated
}

func (p *BotPlayer) ChooseColumn(ctx context.Context, board *domain.Board, me, opponent domain.Token) (int, error) {
	if p.Delay > 0 {
		timer := time.NewTimer(p.Delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return -1, ctx.Err()
		case <-timer.C:
		}
	}

	decision, ok := bot.Decide(board, me, opponent)
	if !ok {
		return -1, errors.Wrap(domain.ErrColumnFull, "no open column left")
	}

	log.Printf("[BOT] Player %d picked column %d (%s)", me, decision.Column, decision.Tier)
	return decision.Column, nil
}
