package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

// menuEntry is what a menu line does when selected.
type menuEntry int

const (
	entryResumeCampaign menuEntry = iota
	entryResumeEndless
	entryCampaign
	entryEndless
	entrySelectLevel
	entryScoreboard
	entryQuit
)

// MenuItem is one selectable line of the main menu.
type MenuItem struct {
	Title string
	entry menuEntry
}

// MenuSelection is the game the player picked.
type MenuSelection struct {
	GameID string
	Level  int  // Campaign start level, 1-indexed; 0 = first
	Resume bool // Continue the saved game
}

// MenuModel is the Bubble Tea model for the main menu: resume, new campaign,
// endless, level select and high scores.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	levelCursor    int
	inLevelSelect  bool
	width          int
	height         int
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	quitting       bool
	selected       *MenuSelection
	openScoreboard bool
}

// NewMenuModel creates a new menu model. Resume entries are shown only for
// games the owner has saved.
func NewMenuModel(svc Services, cfg core.RuntimeConfig) MenuModel {
	var items []MenuItem
	if svc.hasSave(t2048.IDCampaign) {
		items = append(items, MenuItem{Title: "Resume Campaign", entry: entryResumeCampaign})
	}
	if svc.hasSave(t2048.IDEndless) {
		items = append(items, MenuItem{Title: "Resume Endless", entry: entryResumeEndless})
	}
	items = append(items,
		MenuItem{Title: fmt.Sprintf("New Campaign (%d levels)", t2048.LevelCount()), entry: entryCampaign},
		MenuItem{Title: "Endless Mode", entry: entryEndless},
		MenuItem{Title: "Select Level...", entry: entrySelectLevel},
		MenuItem{Title: "High Scores", entry: entryScoreboard},
		MenuItem{Title: "Quit", entry: entryQuit},
	)

	return MenuModel{
		items:     items,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		action := m.keyMapper.MapKeyToMenuAction(msg)
		if m.inLevelSelect {
			return m.handleLevelSelect(action)
		}
		return m.handleMain(action)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

func (m MenuModel) handleMain(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit

	case MenuActionSelect:
		return m.selectEntry(m.items[m.cursor].entry)
	}

	return m, nil
}

func (m MenuModel) selectEntry(entry menuEntry) (tea.Model, tea.Cmd) {
	switch entry {
	case entryResumeCampaign:
		m.selected = &MenuSelection{GameID: t2048.IDCampaign, Resume: true}
	case entryResumeEndless:
		m.selected = &MenuSelection{GameID: t2048.IDEndless, Resume: true}
	case entryCampaign:
		m.selected = &MenuSelection{GameID: t2048.IDCampaign}
	case entryEndless:
		m.selected = &MenuSelection{GameID: t2048.IDEndless}
	case entrySelectLevel:
		m.inLevelSelect = true
		m.levelCursor = 0
		return m, nil
	case entryScoreboard:
		m.openScoreboard = true
	case entryQuit:
		m.quitting = true
	}
	return m, tea.Quit
}

func (m MenuModel) handleLevelSelect(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.levelCursor > 0 {
			m.levelCursor--
		}
	case MenuActionDown:
		if m.levelCursor < t2048.LevelCount()-1 {
			m.levelCursor++
		}
	case MenuActionSelect:
		m.selected = &MenuSelection{GameID: t2048.IDCampaign, Level: m.levelCursor + 1}
		return m, tea.Quit
	case MenuActionBack:
		m.inLevelSelect = false
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}
	if m.inLevelSelect {
		return m.viewLevelSelect()
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("  2 0 4 8  ", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Join the tiles, get to 2048!", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+item.Title, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit", m.width))
	b.WriteString("\n")

	return b.String()
}

func (m MenuModel) viewLevelSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("SELECT LEVEL", m.width))
	b.WriteString("\n\n")

	for i, level := range t2048.Levels() {
		cursor := "  "
		if i == m.levelCursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%2d. %-18s Target: %d", cursor, level.ID, level.Name, level.Target)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the selected game, or nil if none selected.
func (m MenuModel) Selected() *MenuSelection {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}
