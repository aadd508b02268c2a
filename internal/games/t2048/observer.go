package t2048

import "github.com/vovakirdan/tui-2048/internal/games/t2048/engine"

// Outcome describes how a game ended.
type Outcome string

const (
	OutcomeGameOver Outcome = "game_over" // no move left
	OutcomeWin      Outcome = "win"       // campaign completed
)

// Observer receives gameplay events. Implementations must be safe for
// concurrent use, since every SSH session runs its own game.
type Observer interface {
	// MoveMade is called for every attempted move, including ones that changed nothing.
	MoveMade(gameID string, dir engine.Direction, moved bool, gained int)

	// GameFinished is called once when a game reaches a final state.
	GameFinished(gameID string, outcome Outcome, score, maxTile int)
}

// SetObserver installs the observer for games created afterwards. nil disables events.
func SetObserver(o Observer) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	observer = o
}

func currentObserver() Observer {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	return observer
}
