package t2048

import "github.com/vovakirdan/tui-2048/internal/games/t2048/engine"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying      GameStateType = "playing"
	StateLevelCleared GameStateType = "level_cleared"
	StateGameOver     GameStateType = "game_over"
	StateWin          GameStateType = "win"
	StatePausedSmall  GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick    uint64
	Mode    string // "campaign" or "endless"
	Level   int    // Current level (1-indexed for display)
	Target  int    // Current target tile value, 0 for endless
	Score   int
	Moves   int
	Board   [][]int
	MaxTile int // Highest tile on board
	State   GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:    g.tick,
		Mode:    string(g.mode),
		Level:   g.levelIndex + 1,
		Target:  g.currentTarget,
		Score:   g.score,
		Moves:   g.moves,
		Board:   g.grid.Values(),
		MaxTile: engine.MaxValue(g.grid),
		State:   g.stateType(),
	}
}

func (g *Game) stateType() GameStateType {
	switch {
	case g.tooSmall:
		return StatePausedSmall
	case g.won:
		return StateWin
	case g.gameOver:
		return StateGameOver
	case g.levelCleared:
		return StateLevelCleared
	}
	return StatePlaying
}
