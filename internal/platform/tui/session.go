package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

type sessionView int

const (
	viewMenu sessionView = iota
	viewGame
	viewScoreboard
)

// SessionModel manages the full session flow: menu -> game or scores -> menu.
// It is the top-level model of the menu command and of every SSH session.
type SessionModel struct {
	svc        Services
	config     core.RuntimeConfig
	view       sessionView
	menu       MenuModel
	gameModel  *GameModel
	scoreboard *ScoreboardModel
	quitting   bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(svc Services, cfg core.RuntimeConfig) SessionModel {
	return SessionModel{
		svc:    svc,
		config: cfg,
		menu:   NewMenuModel(svc, cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.view {
	case viewGame:
		return m.updateGame(msg)
	case viewScoreboard:
		return m.updateScoreboard(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
// Menu commands are dropped once a choice is made: the menu asks to quit
// when it is done, which would end the whole session.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		sb := NewScoreboardModel(m.svc.Scores, m.config.ScreenW, m.config.ScreenH)
		m.scoreboard = &sb
		m.view = viewScoreboard
		return m, m.scoreboard.Init()

	case m.menu.Selected() != nil:
		return m.startGame(*m.menu.Selected())
	}

	return m, cmd
}

// startGame creates the selected game and switches to it.
func (m SessionModel) startGame(sel MenuSelection) (tea.Model, tea.Cmd) {
	game, err := registry.Create(sel.GameID)
	if err != nil {
		// The menu only offers registered games
		m.menu = NewMenuModel(m.svc, m.config)
		return m, nil
	}
	if g, ok := game.(*t2048.Game); ok && sel.Level > 0 {
		g.SetStartLevel(sel.Level)
	}

	gm := NewGameModel(game, m.svc, m.config, sel.Resume)
	m.gameModel = &gm
	m.view = viewGame
	return m, m.gameModel.Init()
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.gameModel = &gameModel
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.gameModel.BackToMenu() {
		return m.backToMenu()
	}

	return m, cmd
}

// updateScoreboard handles updates when the scoreboard is shown.
func (m SessionModel) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scoreboard.Update(msg)
	if sb, ok := newModel.(ScoreboardModel); ok {
		m.scoreboard = &sb
	}

	if m.scoreboard.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.scoreboard.IsGoingBack() {
		return m.backToMenu()
	}

	return m, cmd
}

// backToMenu rebuilds the menu so resume entries reflect the latest saves.
func (m SessionModel) backToMenu() (tea.Model, tea.Cmd) {
	m.view = viewMenu
	m.gameModel = nil
	m.scoreboard = nil
	m.menu = NewMenuModel(m.svc, m.config)
	return m, m.menu.Init()
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.view {
	case viewGame:
		return m.gameModel.View()
	case viewScoreboard:
		return m.scoreboard.View()
	}
	return m.menu.View()
}

// RunSession runs the menu-driven session in the local terminal.
func RunSession(svc Services, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(NewSessionModel(svc, cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
