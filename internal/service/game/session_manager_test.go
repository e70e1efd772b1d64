package game

import (
	"context"
	"testing"
	"time"

	"github.com/iamasit07/4-in-a-row/console/internal/domain"
)

func TestSessionManagerTracksGameLifecycle(t *testing.T) {
	sm := NewSessionManager()
	ctx := context.Background()
	start := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	sm.Publish(ctx, domain.ServerMessage{
		Type: domain.MessageGameStart, GameID: "g1", Player1: "human", Player2: "computer",
		Rows: 6, Columns: 7, Status: string(domain.StatusPlayer1Turn), Timestamp: start,
	})
	sm.Publish(ctx, domain.ServerMessage{
		Type: domain.MessageMove, GameID: "g1", Column: 3, Row: 5, Player: 1, MoveCount: 1,
		Board: [][]int{{0}}, Status: string(domain.StatusPlayer2Turn), Timestamp: start.Add(time.Second),
	})

	live, ok := sm.GetSessionByGameID("g1")
	if !ok {
		t.Fatalf("expected g1 to be tracked")
	}
	if live.MoveCount != 1 || live.Status != string(domain.StatusPlayer2Turn) || live.Player2 != "computer" {
		t.Fatalf("unexpected live game %+v", live)
	}
	if !live.StartedAt.Equal(start) || !live.UpdatedAt.Equal(start.Add(time.Second)) {
		t.Fatalf("unexpected timestamps %+v", live)
	}

	sm.Publish(ctx, domain.ServerMessage{
		Type: domain.MessageGameOver, GameID: "g1", Winner: 2, MoveCount: 8,
		Status: string(domain.StatusWon), Timestamp: start.Add(time.Minute),
	})
	live, _ = sm.GetSessionByGameID("g1")
	if live.Winner != 2 || live.Status != string(domain.StatusWon) {
		t.Fatalf("expected finished game to stay listed, got %+v", live)
	}

	msgs := sm.LatestMessages()
	if len(msgs) != 1 || msgs[0].Type != domain.MessageGameOver {
		t.Fatalf("expected the game over message to be latest, got %+v", msgs)
	}

	sm.Publish(ctx, domain.ServerMessage{
		Type: domain.MessageGameStart, GameID: "g2", Status: string(domain.StatusPlayer1Turn), Timestamp: start.Add(time.Hour),
	})
	games := sm.GetActiveGames()
	if len(games) != 1 || games[0].GameID != "g2" {
		t.Fatalf("expected finished game to be dropped on next start, got %+v", games)
	}
}

func TestSessionManagerIgnoresUnknownGames(t *testing.T) {
	sm := NewSessionManager()
	if err := sm.Publish(context.Background(), domain.ServerMessage{Type: domain.MessageMove, GameID: "nope"}); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if len(sm.GetActiveGames()) != 0 || len(sm.LatestMessages()) != 0 {
		t.Fatalf("unknown game should not be tracked")
	}
}
