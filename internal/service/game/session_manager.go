package game

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/iamasit07/4-in-a-row/console/internal/domain"
)

// LiveGame is the spectator view of a game.
type LiveGame struct {
	GameID    string    `json:"gameId"`
	Player1   string    `json:"player1"`
	Player2   string    `json:"player2"`
	Rows      int       `json:"rows"`
	Columns   int       `json:"columns"`
	MoveCount int       `json:"moveCount"`
	Status    string    `json:"status"`
	Winner    int       `json:"winner"`
	Board     [][]int   `json:"board"`
	StartedAt time.Time `json:"startedAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SessionManager keeps the latest state of every game it hears about. It is
// a Publisher and is safe for concurrent readers.
type SessionManager struct {
	Session map[string]*LiveGame // gameID → latest state
	last    map[string]domain.ServerMessage
	mu      sync.RWMutex
}

func NewSessionManager() *SessionManager {
	return &SessionManager{
		Session: make(map[string]*LiveGame),
		last:    make(map[string]domain.ServerMessage),
	}
}

func (sm *SessionManager) Publish(_ context.Context, message domain.ServerMessage) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if message.Type == domain.MessageGameStart {
		sm.removeFinishedLocked()
		sm.Session[message.GameID] = &LiveGame{
			GameID:    message.GameID,
			Player1:   message.Player1,
			Player2:   message.Player2,
			Rows:      message.Rows,
			Columns:   message.Columns,
			Status:    message.Status,
			Board:     message.Board,
			StartedAt: message.Timestamp,
			UpdatedAt: message.Timestamp,
		}
		sm.last[message.GameID] = message
		return nil
	}

	session, exists := sm.Session[message.GameID]
	if !exists {
		return nil
	}

	session.MoveCount = message.MoveCount
	session.Status = message.Status
	session.Board = message.Board
	session.UpdatedAt = message.Timestamp
	if message.Type == domain.MessageGameOver {
		session.Winner = message.Winner
	}
	sm.last[message.GameID] = message
	return nil
}

// removeFinishedLocked drops games that are over (caller must hold the lock)
func (sm *SessionManager) removeFinishedLocked() {
	for gameID, session := range sm.Session {
		if session.Status == string(domain.StatusWon) || session.Status == string(domain.StatusDraw) {
			delete(sm.Session, gameID)
			delete(sm.last, gameID)
		}
	}
}

// GetActiveGames returns copies of the tracked games, oldest first.
func (sm *SessionManager) GetActiveGames() []LiveGame {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	games := make([]LiveGame, 0, len(sm.Session))
	for _, session := range sm.Session {
		games = append(games, *session)
	}
	sort.Slice(games, func(i, j int) bool { return games[i].StartedAt.Before(games[j].StartedAt) })
	return games
}

func (sm *SessionManager) GetSessionByGameID(gameID string) (LiveGame, bool) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	session, exists := sm.Session[gameID]
	if !exists {
		return LiveGame{}, false
	}
	return *session, true
}

// LatestMessages returns the most recent event of every tracked game, used
// to bring a new spectator up to date.
func (sm *SessionManager) LatestMessages() []domain.ServerMessage {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	messages := make([]domain.ServerMessage, 0, len(sm.last))
	for _, message := range sm.last {
		messages = append(messages, message)
	}
	sort.Slice(messages, func(i, j int) bool { return messages[i].Timestamp.Before(messages[j].Timestamp) })
	return messages
}
