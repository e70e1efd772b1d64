package domain

import "time"

const (
	MessageGameStart = "game_start"
	MessageMove      = "move"
	MessageGameOver  = "game_over"
)

// ServerMessage is the event emitted by the game loop to publishers and
// spectators. Board is always a copy of the live grid.
type ServerMessage struct {
	Type      string    `json:"type"`
	GameID    string    `json:"gameId"`
	Player1   string    `json:"player1,omitempty"`
	Player2   string    `json:"player2,omitempty"`
	Rows      int       `json:"rows,omitempty"`
	Columns   int       `json:"columns,omitempty"`
	Column    int       `json:"column"`
	Row       int       `json:"row"`
	Player    int       `json:"player,omitempty"`
	Board     [][]int   `json:"board,omitempty"`
	NextTurn  int       `json:"nextTurn,omitempty"`
	MoveCount int       `json:"moveCount"`
	Winner    int       `json:"winner"`
	Reason    string    `json:"reason,omitempty"`
	Status    string    `json:"status,omitempty"`
	Timestamp time.Time `json:"ts"`
}
