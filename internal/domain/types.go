package domain

// Token identifies who occupies a cell.
type Token int

const (
	Empty   Token = 0
	Player1 Token = 1
	Player2 Token = 2
)

// Opponent returns the other player's token. Empty has no opponent.
func (t Token) Opponent() Token {
	switch t {
	case Player1:
		return Player2
	case Player2:
		return Player1
	default:
		return Empty
	}
}

const (
	DefaultRows    = 6
	DefaultColumns = 7
	ConnectN       = 4
)

// Settings are the fixed dimensions of a game, passed to NewBoard.
type Settings struct {
	Rows     int
	Columns  int
	ConnectN int
}

func DefaultSettings() Settings {
	return Settings{
		Rows:     DefaultRows,
		Columns:  DefaultColumns,
		ConnectN: ConnectN,
	}
}

// PlayerKind is the control mode of a seat.
type PlayerKind int

const (
	Human PlayerKind = iota
	Automated
)

func (k PlayerKind) String() string {
	if k == Automated {
		return "computer"
	}
	return "human"
}

// to represent the game status
type GameStatus string

const (
	StatusPlayer1Turn GameStatus = "player1_turn"
	StatusPlayer2Turn GameStatus = "player2_turn"
	StatusWon         GameStatus = "won"
	StatusDraw        GameStatus = "draw"
)

// Position is a 0-based cell address, row 0 is the top row.
type Position struct {
	Row    int `json:"row"`
	Column int `json:"column"`
}

// Move is the outcome of dropping a token into a column.
type Move struct {
	Column int   `json:"column"`
	Row    int   `json:"row"`
	Token  Token `json:"token"`
}

// basic errors that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrColumnFull        Error = "column is full"
	ErrInvalidColumn     Error = "invalid column"
	ErrGameOver          Error = "game is over"
	ErrInvalidDimensions Error = "invalid board dimensions"
)
