package pkg

import "github.com/google/uuid"

// GenerateGameID - returns a fresh identifier for a game session.
func GenerateGameID() string {
	return uuid.NewString()
}
