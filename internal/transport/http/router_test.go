package http

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/iamasit07/4-in-a-row/console/internal/domain"
	"github.com/iamasit07/4-in-a-row/console/internal/service/game"
	"github.com/iamasit07/4-in-a-row/console/internal/transport/websocket"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func newTestRouter(t *testing.T, allowedOrigins []string) (*gin.Engine, *game.SessionManager) {
	t.Helper()
	sm := game.NewSessionManager()
	ws := websocket.NewHandler(websocket.NewConnectionManager(), sm)
	return NewRouter(sm, ws, allowedOrigins), sm
}

func serve(router *gin.Engine, method, path, origin string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func startGame(sm *game.SessionManager, gameID string) {
	ctx := context.Background()
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	sm.Publish(ctx, domain.ServerMessage{
		Type: domain.MessageGameStart, GameID: gameID, Player1: "human", Player2: "computer",
		Rows: 6, Columns: 7, Status: string(domain.StatusPlayer1Turn), Timestamp: start,
	})
	sm.Publish(ctx, domain.ServerMessage{
		Type: domain.MessageMove, GameID: gameID, Column: 3, Row: 5, Player: 1, MoveCount: 1,
		Board: [][]int{{0, 0}, {1, 0}}, Status: string(domain.StatusPlayer2Turn), Timestamp: start.Add(time.Second),
	})
}

func TestGetLiveGames(t *testing.T) {
	router, sm := newTestRouter(t, nil)

	rec := serve(router, http.MethodGet, "/api/watch", "")
	if rec.Code != http.StatusOK || rec.Body.String() != "[]" {
		t.Fatalf("expected an empty list, got %d %s", rec.Code, rec.Body.String())
	}

	startGame(sm, "g1")
	rec = serve(router, http.MethodGet, "/api/watch", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", rec.Code)
	}

	var games []liveGameResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &games); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(games) != 1 {
		t.Fatalf("expected one game, got %+v", games)
	}
	g := games[0]
	if g.GameID != "g1" || g.Player2 != "computer" || g.MoveCount != 1 || g.Status != "player2_turn" {
		t.Fatalf("unexpected game %+v", g)
	}
	if g.StartedAt != "2026-03-01T12:00:00Z" || g.Board != nil {
		t.Fatalf("list entries should carry the start time and no board, got %+v", g)
	}
}

func TestGetLiveGame(t *testing.T) {
	router, sm := newTestRouter(t, nil)
	startGame(sm, "g1")

	rec := serve(router, http.MethodGet, "/api/watch/g1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", rec.Code)
	}
	var g liveGameResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &g); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(g.Board) != 2 || g.Board[1][0] != 1 {
		t.Fatalf("expected the board snapshot, got %+v", g.Board)
	}

	if rec := serve(router, http.MethodGet, "/api/watch/missing", ""); rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for an unknown game, got %d", rec.Code)
	}
}

func TestCORS(t *testing.T) {
	router, _ := newTestRouter(t, []string{"http://localhost:5173"})

	rec := serve(router, http.MethodGet, "/api/watch", "http://localhost:5173")
	if rec.Code != http.StatusOK || rec.Header().Get("Access-Control-Allow-Origin") != "http://localhost:5173" {
		t.Fatalf("expected allowed origin, got %d %v", rec.Code, rec.Header())
	}

	if rec := serve(router, http.MethodGet, "/api/watch", "http://evil.example"); rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for a foreign origin, got %d", rec.Code)
	}

	if rec := serve(router, http.MethodOptions, "/api/watch", "http://localhost:5173"); rec.Code != http.StatusOK {
		t.Fatalf("expected preflight to succeed, got %d", rec.Code)
	}
}
