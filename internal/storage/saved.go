package storage

import (
	"context"
	"errors"
	"time"
)

// ErrNoSavedGame is returned when an owner has no saved progress for a game.
var ErrNoSavedGame = errors.New("storage: no saved game")

// SavedGame is a game in progress, stored as the bytes produced by the game itself.
type SavedGame struct {
	Owner     string    `json:"owner"`
	GameID    string    `json:"game_id"`
	State     []byte    `json:"state"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SavedGameStore persists at most one game in progress per owner and game.
// Implemented by the SQLite Store and by the Redis store used by the SSH server.
type SavedGameStore interface {
	// SaveGame stores state, replacing any previous save for owner and gameID.
	SaveGame(ctx context.Context, owner, gameID string, state []byte) error

	// LoadGame returns the save for owner and gameID, or ErrNoSavedGame.
	LoadGame(ctx context.Context, owner, gameID string) (*SavedGame, error)

	// DeleteGame removes the save. Deleting a missing save is not an error.
	DeleteGame(ctx context.Context, owner, gameID string) error
}
