package t2048

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-2048/internal/games/t2048/engine"
)

const saveVersion = 1

// ErrCorruptSave is returned when saved progress cannot be restored.
var ErrCorruptSave = errors.New("t2048: corrupt saved game")

// savedGame is the persisted form of a game in progress.
type savedGame struct {
	Version int     `json:"version"`
	Mode    Mode    `json:"mode"`
	Level   int     `json:"level"` // 1-indexed
	Score   int     `json:"score"`
	Moves   int     `json:"moves"`
	Grid    [][]int `json:"grid"`
}

// MarshalState encodes the board, score and campaign level as JSON.
func (g *Game) MarshalState() ([]byte, error) {
	if g.grid == nil {
		return nil, errors.New("t2048: game not started")
	}
	return json.Marshal(savedGame{
		Version: saveVersion,
		Mode:    g.mode,
		Level:   g.levelIndex + 1,
		Score:   g.score,
		Moves:   g.moves,
		Grid:    g.grid.Values(),
	})
}

// UnmarshalState restores progress saved by MarshalState. The game must have
// been Reset first; the RNG and screen size are kept from that Reset.
// A save for a different mode, level set or board size is rejected.
func (g *Game) UnmarshalState(data []byte) error {
	var s savedGame
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %v", ErrCorruptSave, err)
	}
	if s.Version != saveVersion {
		return fmt.Errorf("%w: unsupported version %d", ErrCorruptSave, s.Version)
	}
	if s.Mode != g.mode {
		return fmt.Errorf("%w: saved mode %q, playing %q", ErrCorruptSave, s.Mode, g.mode)
	}
	if s.Level < 1 || s.Level > len(g.levels) || (g.mode == ModeEndless && s.Level != 1) {
		return fmt.Errorf("%w: level %d out of range", ErrCorruptSave, s.Level)
	}
	if s.Score < 0 || s.Moves < 0 {
		return fmt.Errorf("%w: negative counters", ErrCorruptSave)
	}

	grid, err := restoreGrid(s.Grid)
	if err != nil {
		return err
	}
	if grid.Rows() != g.cfg.Board.Rows || grid.Cols() != g.cfg.Board.Cols {
		return fmt.Errorf("%w: board is %dx%d, want %dx%d",
			ErrCorruptSave, grid.Rows(), grid.Cols(), g.cfg.Board.Rows, g.cfg.Board.Cols)
	}

	g.grid = grid
	g.score = s.Score
	g.moves = s.Moves
	g.levelIndex = s.Level - 1
	g.loadLevel()
	g.highlight = 0
	g.paused = false
	// Saved during the level-cleared pause: the board already holds the target
	g.levelCleared = g.targetReached()
	g.levelClearTicks = 0
	g.won = false
	g.gameOver = !g.levelCleared && engine.IsTerminal(g.grid)
	return nil
}

// restoreGrid rebuilds and validates a saved grid. Every cell must be empty
// or a power of two of at least 2.
func restoreGrid(values [][]int) (engine.Grid, error) {
	grid := engine.FromValues(values)
	if err := grid.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptSave, err)
	}
	for r, row := range values {
		for c, v := range row {
			if v != 0 && (v < 2 || v&(v-1) != 0) {
				return nil, fmt.Errorf("%w: cell (%d,%d) holds %d", ErrCorruptSave, r, c, v)
			}
		}
	}
	return grid, nil
}
