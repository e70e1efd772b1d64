package uid

import "github.com/google/uuid"

// GenerateGameID returns a random (version 4) UUID identifying one game.
func GenerateGameID() string {
	return uuid.NewString()
}
