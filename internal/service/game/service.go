package game

import (
	"context"
	"log"
	"time"

	"github.com/iamasit07/4-in-a-row/console/internal/domain"
	"github.com/iamasit07/4-in-a-row/console/pkg/uid"
	"github.com/pkg/errors"
)

// View shows the game to the people at the console. Every call happens on
// the game loop's goroutine.
type View interface {
	GameStarted(board *domain.Board)
	TurnStarted(player domain.Token)
	AutomatedChoice(player domain.Token, column int)
	BoardChanged(board *domain.Board)
	GameOver(result Result)
}

// Publisher receives game events. Messages are shared between publishers and
// must be treated as read-only.
type Publisher interface {
	Publish(ctx context.Context, message domain.ServerMessage) error
}

// Result describes a finished game.
type Result struct {
	GameID string
	Status domain.GameStatus
	Winner domain.Token
	Moves  int
	Board  *domain.Board
}

// Service runs one game at a time between two players.
type Service struct {
	settings   domain.Settings
	players    [2]Player
	view       View
	publishers []Publisher
	now        func() time.Time
}

func NewService(settings domain.Settings, player1, player2 Player, view View, publishers ...Publisher) *Service {
	return &Service{
		settings:   settings,
		players:    [2]Player{player1, player2},
		view:       view,
		publishers: publishers,
		now:        time.Now,
	}
}

func (s *Service) playerFor(token domain.Token) Player {
	if token == domain.Player1 {
		return s.players[0]
	}
	return s.players[1]
}

// Run plays a full game and returns its outcome. It stops early when ctx is
// cancelled between turns or when a player fails to produce a column.
func (s *Service) Run(ctx context.Context) (Result, error) {
	game, err := domain.NewGame(s.settings)
	if err != nil {
		return Result{}, err
	}

	gameID := uid.GenerateGameID()
	log.Printf("[GAME] Started game %s: %s vs %s on %dx%d",
		gameID, s.players[0].Kind(), s.players[1].Kind(), s.settings.Rows, s.settings.Columns)

	s.publish(ctx, domain.ServerMessage{
		Type:     domain.MessageGameStart,
		GameID:   gameID,
		Player1:  s.players[0].Kind().String(),
		Player2:  s.players[1].Kind().String(),
		Rows:     s.settings.Rows,
		Columns:  s.settings.Columns,
		Board:    game.Board.Snapshot(),
		NextTurn: int(game.CurrentPlayer),
		Status:   string(game.Status),
	})
	s.view.GameStarted(game.Board)

	for !game.IsFinished() {
		if err := ctx.Err(); err != nil {
			log.Printf("[GAME] Game %s interrupted after %d moves", gameID, game.MoveCount)
			return Result{}, errors.Wrapf(err, "game %s interrupted", gameID)
		}

		token := game.CurrentPlayer
		player := s.playerFor(token)
		s.view.TurnStarted(token)

		column, err := player.ChooseColumn(ctx, game.Board, token, token.Opponent())
		if err != nil {
			return Result{}, errors.Wrapf(err, "player %d could not choose a column", token)
		}
		if player.Kind() == domain.Automated {
			s.view.AutomatedChoice(token, column)
		}

		move, err := game.MakeMove(column)
		if err != nil {
			return Result{}, errors.Wrapf(err, "player %d chose column %d", token, column)
		}

		s.view.BoardChanged(game.Board)
		s.publish(ctx, domain.ServerMessage{
			Type:      domain.MessageMove,
			GameID:    gameID,
			Column:    move.Column,
			Row:       move.Row,
			Player:    int(move.Token),
			Board:     game.Board.Snapshot(),
			NextTurn:  nextTurn(game),
			MoveCount: game.MoveCount,
			Status:    string(game.Status),
		})
	}

	result := Result{
		GameID: gameID,
		Status: game.Status,
		Winner: game.Winner,
		Moves:  game.MoveCount,
		Board:  game.Board,
	}

	reason := "tie"
	if game.Status == domain.StatusWon {
		reason = "win"
	}
	s.view.GameOver(result)
	s.publish(ctx, domain.ServerMessage{
		Type:      domain.MessageGameOver,
		GameID:    gameID,
		Board:     game.Board.Snapshot(),
		MoveCount: game.MoveCount,
		Winner:    int(game.Winner),
		Reason:    reason,
		Status:    string(game.Status),
	})

	log.Printf("[GAME] Game %s finished: %s after %d moves (winner %d)", gameID, reason, game.MoveCount, game.Winner)
	return result, nil
}

func nextTurn(game *domain.Game) int {
	if game.IsFinished() {
		return 0
	}
	return int(game.CurrentPlayer)
}

// publish fans the message out. A failing publisher is logged and skipped.
func (s *Service) publish(ctx context.Context, message domain.ServerMessage) {
	message.Timestamp = s.now().UTC()
	for _, p := range s.publishers {
		if err := p.Publish(ctx, message); err != nil {
			log.Printf("[GAME] Failed to publish %s for game %s: %v", message.Type, message.GameID, err)
		}
	}
}
