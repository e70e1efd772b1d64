package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/iamasit07/4-in-a-row/console/internal/service/game"
)

type WatchHandler struct {
	SessionManager *game.SessionManager
	Spectators     func() int
}

func NewWatchHandler(sm *game.SessionManager, spectators func() int) *WatchHandler {
	return &WatchHandler{SessionManager: sm, Spectators: spectators}
}

type liveGameResponse struct {
	GameID         string  `json:"gameId"`
	Player1        string  `json:"player1"`
	Player2        string  `json:"player2"`
	Rows           int     `json:"rows"`
	Columns        int     `json:"columns"`
	Status         string  `json:"status"`
	Winner         int     `json:"winner"`
	SpectatorCount int     `json:"spectatorCount"`
	MoveCount      int     `json:"moveCount"`
	StartedAt      string  `json:"startedAt"`
	Board          [][]int `json:"board,omitempty"`
}

func (h *WatchHandler) toResponse(g game.LiveGame, withBoard bool) liveGameResponse {
	resp := liveGameResponse{
		GameID:         g.GameID,
		Player1:        g.Player1,
		Player2:        g.Player2,
		Rows:           g.Rows,
		Columns:        g.Columns,
		Status:         g.Status,
		Winner:         g.Winner,
		SpectatorCount: h.spectatorCount(),
		MoveCount:      g.MoveCount,
		StartedAt:      g.StartedAt.Format(time.RFC3339),
	}
	if withBoard {
		resp.Board = g.Board
	}
	return resp
}

func (h *WatchHandler) spectatorCount() int {
	if h.Spectators == nil {
		return 0
	}
	return h.Spectators()
}

// GetLiveGames returns every game available for spectating
func (h *WatchHandler) GetLiveGames(c *gin.Context) {
	activeGames := h.SessionManager.GetActiveGames()

	response := make([]liveGameResponse, 0, len(activeGames))
	for _, g := range activeGames {
		response = append(response, h.toResponse(g, false))
	}

	c.JSON(http.StatusOK, response)
}

// GetLiveGame returns one game including its board.
func (h *WatchHandler) GetLiveGame(c *gin.Context) {
	g, exists := h.SessionManager.GetSessionByGameID(c.Param("id"))
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return
	}
	c.JSON(http.StatusOK, h.toResponse(g, true))
}
