package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// storeTimeout bounds every saved-game round trip made from the UI loop.
const storeTimeout = 2 * time.Second

// ScoreStore records and reads finished games. Implemented by *storage.Store.
type ScoreStore interface {
	SaveScore(e storage.ScoreEntry) (int64, error)
	TopScores(gameID string, limit int) ([]storage.ScoreEntry, error)
	GetGameStats(gameID string) (*storage.GameStats, error)
}

// Services are the stores a player session works with.
// Scores and Saves may be nil; the game is playable without them.
type Services struct {
	Scores ScoreStore
	Saves  storage.SavedGameStore
	Owner  string // Who saves and scores belong to, e.g. "ssh:alice"
}

// canSave reports whether games in progress can be persisted.
func (s Services) canSave() bool {
	return s.Saves != nil && s.Owner != ""
}

// hasSave reports whether the owner has a saved game for gameID.
func (s Services) hasSave(gameID string) bool {
	if !s.canSave() {
		return false
	}
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()
	_, err := s.Saves.LoadGame(ctx, s.Owner, gameID)
	return err == nil
}

// resizable is implemented by games that can follow the terminal size
// without restarting.
type resizable interface {
	Resize(width, height int)
}

// maxTiler is implemented by games that report a best tile for the scoreboard.
type maxTiler interface {
	MaxTile() int
}

// GameModel is the Bubble Tea model that runs one game.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	svc        Services
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	resume     bool // Restore the saved game on Init
	exitOnBack bool // Top-level program: back quits instead of returning to a menu
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewGameModel creates a model for game. With resume set, Init restores the
// owner's saved game if there is one.
func NewGameModel(game registry.Game, svc Services, cfg core.RuntimeConfig, resume bool) GameModel {
	cfg = cfg.WithDefaults()

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		svc:        svc,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		resume:     resume,
	}
}

// Init starts the game and the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	if m.resume {
		m.restore()
	}
	return tickCmd(m.config.TickRate)
}

// restore loads the saved game into the freshly reset game.
// A save that no longer restores is dropped so the menu stops offering it.
func (m GameModel) restore() {
	p, ok := m.game.(registry.Persistable)
	if !ok || !m.svc.canSave() {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	saved, err := m.svc.Saves.LoadGame(ctx, m.svc.Owner, m.game.ID())
	if err != nil {
		return
	}
	if err := p.UnmarshalState(saved.State); err != nil {
		//nolint:errcheck // Best-effort cleanup
		m.svc.Saves.DeleteGame(ctx, m.svc.Owner, m.game.ID())
		m.game.Reset(m.config)
	}
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		//nolint:errcheck // Best-effort, the game continues regardless
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.saveProgress()
		m.quitting = true
		return m, tea.Quit
	}

	if m.inputFrame.Has(core.ActionBack) {
		m.saveProgress()
		m.inputFrame.Clear()
		m.backToMenu = true
		if m.exitOnBack {
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// handleResize follows the terminal size. Games that cannot resize in
// place are restarted, unless they are over.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(resizable); ok {
		r.Resize(msg.Width, msg.Height)
		return m, nil
	}
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu || m.quitting {
		return m, nil
	}

	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.GameOver && !m.scoreSaved {
		m.recordFinish()
		m.scoreSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// recordFinish stores the final score and drops the save of a finished game.
func (m GameModel) recordFinish() {
	if m.svc.Scores != nil && m.gameState.Score > 0 {
		entry := storage.ScoreEntry{
			GameID: m.game.ID(),
			Player: m.svc.Owner,
			Score:  m.gameState.Score,
		}
		if mt, ok := m.game.(maxTiler); ok {
			entry.MaxTile = mt.MaxTile()
		}
		//nolint:errcheck // Best-effort save, game continues regardless
		m.svc.Scores.SaveScore(entry)
	}

	if m.svc.canSave() {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()
		//nolint:errcheck // Best-effort cleanup
		m.svc.Saves.DeleteGame(ctx, m.svc.Owner, m.game.ID())
	}
}

// saveProgress stores the game in progress so it can be resumed later.
func (m GameModel) saveProgress() {
	p, ok := m.game.(registry.Persistable)
	if !ok || !m.svc.canSave() || m.gameState.GameOver {
		return
	}

	state, err := p.MarshalState()
	if err != nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()
	//nolint:errcheck // Best-effort save
	m.svc.Saves.SaveGame(ctx, m.svc.Owner, m.game.ID(), state)
}

// saveScreenshot writes the current screen to ~/.t2048/screenshots.
func (m GameModel) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	dir := filepath.Join(home, ".t2048", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a single game in the terminal until the player quits or goes back.
func Run(game registry.Game, svc Services, cfg core.RuntimeConfig, resume bool) error {
	model := NewGameModel(game, svc, cfg, resume)
	model.exitOnBack = true

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
