package t2048

import (
	"fmt"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048/engine"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeCampaign Mode = "campaign"
	ModeEndless  Mode = "endless"
)

// Registry IDs of the two modes.
const (
	IDCampaign = "2048"
	IDEndless  = "2048_endless"
)

// Game implements the 2048 puzzle game.
type Game struct {
	mode     Mode
	cfg      config.Config
	levels   []Level
	observer Observer
	rng      engine.Random
	tick     uint64

	score         int
	moves         int
	grid          engine.Grid
	levelIndex    int // Current level (0-indexed)
	startLevel    int // Level requested for the next Reset (1-indexed, 0 = first)
	currentTarget int // Current tile target
	fourProb      float64
	highlight     int // Remaining ticks to highlight new/merged tiles

	// Screen dimensions
	screenW int
	screenH int

	// Game state flags
	gameOver        bool
	levelCleared    bool
	won             bool
	paused          bool
	tooSmall        bool
	levelClearTicks int // Ticks spent on the level cleared screen
}

// New creates a new campaign mode 2048 game with the current configuration.
func New() *Game {
	return newGame(ModeCampaign)
}

// NewEndless creates a new endless mode 2048 game with the current configuration.
func NewEndless() *Game {
	return newGame(ModeEndless)
}

func newGame(mode Mode) *Game {
	cfg := CurrentConfig()
	return &Game{
		mode:     mode,
		cfg:      cfg,
		levels:   LevelsFromConfig(cfg),
		observer: currentObserver(),
	}
}

func init() {
	registry.Register(IDCampaign, func() registry.Game {
		return New()
	})
	registry.Register(IDEndless, func() registry.Game {
		return NewEndless()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return IDEndless
	}
	return IDCampaign
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "2048 (Endless)"
	}
	return "2048"
}

// Mode returns the game mode.
func (g *Game) Mode() Mode {
	return g.mode
}

// SetStartLevel selects the campaign level (1-based) the next Reset starts at.
// Out of range values and endless mode are ignored. The choice is used once,
// so restarting after game over begins from the first level again.
func (g *Game) SetStartLevel(level int) {
	g.startLevel = level
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = engine.NewRandom(cfg.Seed)
	g.tick = 0
	g.score = 0
	g.moves = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.gameOver = false
	g.levelCleared = false
	g.won = false
	g.paused = false
	g.levelClearTicks = 0

	g.levelIndex = 0
	if g.mode == ModeCampaign && g.startLevel > 0 && g.startLevel <= len(g.levels) {
		g.levelIndex = g.startLevel - 1
	}
	g.startLevel = 0

	g.loadLevel()

	grid, err := engine.InitializeSize(g.cfg.Board.Rows, g.cfg.Board.Cols, g.rng)
	if err != nil {
		panic(fmt.Sprintf("t2048: initialize board: %v", err))
	}
	g.grid = grid
	g.highlight = g.cfg.Display.HighlightTicks

	g.checkScreenSize()
}

// loadLevel sets up the current level parameters.
func (g *Game) loadLevel() {
	if g.mode == ModeEndless {
		g.currentTarget = 0 // No target in endless
		g.fourProb = g.cfg.Spawn.FourProbability
		return
	}

	level := g.levels[min(g.levelIndex, len(g.levels)-1)]
	g.currentTarget = level.Target
	g.fourProb = level.FourProbability
}

// Resize updates the screen size without touching the board.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough for the board and HUD.
func (g *Game) checkScreenSize() {
	boardW, boardH := g.boardSize()
	minW := max(boardW+2, 25)
	minH := boardH + hudHeight + 3
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if g.highlight > 0 {
		g.highlight--
	}

	// Restart is performed by the platform
	if in.Has(core.ActionRestart) && (g.gameOver || g.won) {
		return core.StepResult{State: g.State()}
	}

	if g.levelCleared {
		g.levelClearTicks++
		if g.levelClearTicks >= g.cfg.Display.LevelClearedTicks {
			g.advanceLevel()
		}
		return core.StepResult{State: g.State()}
	}

	if g.gameOver || g.won {
		return core.StepResult{State: g.State()}
	}

	// One move per tick; vertical wins over horizontal when both are held
	switch {
	case in.Has(core.ActionUp):
		g.processMove(engine.DirUp)
	case in.Has(core.ActionDown):
		g.processMove(engine.DirDown)
	case in.Has(core.ActionLeft):
		g.processMove(engine.DirLeft)
	case in.Has(core.ActionRight):
		g.processMove(engine.DirRight)
	}

	return core.StepResult{State: g.State()}
}

// processMove handles a move in the given direction.
// Engine errors here mean the game broke its own board invariants.
func (g *Game) processMove(dir engine.Direction) {
	res, err := engine.Move(g.grid, dir)
	if err != nil {
		panic(fmt.Sprintf("t2048: move %s: %v", dir, err))
	}
	if g.observer != nil {
		g.observer.MoveMade(g.ID(), dir, res.Moved, res.Score)
	}

	if !res.Moved {
		// Board didn't change - don't spawn new tile
		return
	}

	g.grid = res.Grid
	g.score += res.Score
	g.moves++
	g.highlight = g.cfg.Display.HighlightTicks

	if g.targetReached() {
		g.levelCleared = true
		g.levelClearTicks = 0
		return
	}

	// A grid that moved always has at least one empty cell
	grid, _, err := engine.SpawnWithOdds(g.grid, g.rng, g.fourProb)
	if err != nil {
		panic(fmt.Sprintf("t2048: spawn after move: %v", err))
	}
	g.grid = grid

	if engine.IsTerminal(g.grid) {
		g.gameOver = true
		g.finish(OutcomeGameOver)
	}
}

// targetReached reports whether the board holds the campaign level's target.
func (g *Game) targetReached() bool {
	return g.mode == ModeCampaign && g.currentTarget > 0 && engine.MaxValue(g.grid) >= g.currentTarget
}

// advanceLevel moves to the next level, keeping board and score.
func (g *Game) advanceLevel() {
	g.levelCleared = false
	g.levelClearTicks = 0

	if g.levelIndex >= len(g.levels)-1 {
		g.won = true
		g.finish(OutcomeWin)
		return
	}

	g.levelIndex++
	g.loadLevel()
}

func (g *Game) finish(outcome Outcome) {
	if g.observer != nil {
		g.observer.GameFinished(g.ID(), outcome, g.score, engine.MaxValue(g.grid))
	}
}

// MaxTile returns the largest tile on the board.
func (g *Game) MaxTile() int {
	return engine.MaxValue(g.grid)
}

// Moves returns the number of moves that changed the board.
func (g *Game) Moves() int {
	return g.moves
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver || g.won,
		Paused:   g.paused || g.tooSmall || g.levelCleared,
	}
}
