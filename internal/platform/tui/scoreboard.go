package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

const (
	maxScores     = 100 // Rows loaded per mode
	statsWidth    = 24  // Stats panel, borders included
	minWidthStats = 90  // Narrower terminals get the one-line summary
)

var (
	accent     = lipgloss.Color("229")
	dim        = lipgloss.Color("241")
	frameColor = lipgloss.Color("240")

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(frameColor).
			Padding(0, 1)
	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Background(lipgloss.Color("57")).
			Padding(0, 1)
	tabStyle   = lipgloss.NewStyle().Foreground(dim).Padding(0, 1)
	mutedStyle = lipgloss.NewStyle().Foreground(dim)
)

// scoreKeys are the scoreboard bindings. They double as its help.KeyMap.
type scoreKeys struct {
	Scroll key.Binding
	Next   key.Binding
	Prev   key.Binding
	Back   key.Binding
	Quit   key.Binding
}

func newScoreKeys() scoreKeys {
	return scoreKeys{
		Scroll: key.NewBinding(key.WithKeys("up", "down", "k", "j"), key.WithHelp("↑/↓", "scroll")),
		Next:   key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab/→", "next mode")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab/←", "prev mode")),
		Back:   key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k scoreKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Scroll, k.Next, k.Prev, k.Back, k.Quit}
}

func (k scoreKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// ScoreboardModel shows the best finished games of one mode at a time,
// with a summary of every game recorded for that mode.
type ScoreboardModel struct {
	modes     []registry.GameInfo
	mode      int
	store     ScoreStore
	scores    []storage.ScoreEntry
	stats     *storage.GameStats
	table     table.Model
	help      help.Model
	keys      scoreKeys
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates the scoreboard, opened on the first mode.
// store may be nil, in which case every mode is empty.
func NewScoreboardModel(store ScoreStore, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		modes:  registry.List(),
		store:  store,
		help:   help.New(),
		keys:   newScoreKeys(),
		width:  width,
		height: height,
	}
	m.help.Width = width
	m.table = m.newTable()
	m.load()
	return m
}

// wide reports whether the stats panel fits beside the table.
func (m ScoreboardModel) wide() bool {
	return m.width >= minWidthStats
}

func (m ScoreboardModel) newTable() table.Model {
	cols := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Score", Width: 8},
		{Title: "Tile", Width: 6},
		{Title: "Player", Width: 10},
		{Title: "Date", Width: 12},
	}

	avail := m.width - 4
	if m.wide() {
		avail -= statsWidth + 2
	}
	for _, c := range cols {
		avail -= c.Width + 2
	}
	if avail > 0 {
		cols[3].Width += min(avail, 14)
	}

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(frameColor).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(accent).
		Background(lipgloss.Color("57")).
		Bold(false)

	return table.New(
		table.WithColumns(cols),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)),
		table.WithStyles(styles),
	)
}

// load reads the current mode's scores and stats into the table.
// Store errors leave the mode empty; the screen has nowhere to report them.
func (m *ScoreboardModel) load() {
	m.scores, m.stats = nil, nil
	if m.store != nil && len(m.modes) > 0 {
		id := m.modes[m.mode].ID
		if scores, err := m.store.TopScores(id, maxScores); err == nil {
			m.scores = scores
		}
		if stats, err := m.store.GetGameStats(id); err == nil && stats.GamesCount > 0 {
			m.stats = stats
		}
	}

	rows := make([]table.Row, 0, len(m.scores))
	for i, s := range m.scores {
		rows = append(rows, table.Row{
			"#" + strconv.Itoa(i+1),
			strconv.Itoa(s.Score),
			strconv.Itoa(s.MaxTile),
			displayPlayer(s.Player),
			s.CreatedAt.Format("Jan 02 15:04"),
		})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// cycle switches mode by delta, wrapping around.
func (m *ScoreboardModel) cycle(delta int) {
	if len(m.modes) == 0 {
		return
	}
	m.mode = (m.mode + delta + len(m.modes)) % len(m.modes)
	m.load()
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles keys and resizes.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.cycle(1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.cycle(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.load()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders title, mode tabs, the table and, on wide terminals, the
// stats panel.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	title := "HIGH SCORES"
	if len(m.modes) > 0 {
		title += " - " + m.modes[m.mode].Title
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(accent).Render(centerText(title, m.width)))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.tabs()))
	b.WriteString("\n\n")

	board := boxStyle.Render(m.tableView())
	if m.wide() {
		panel := boxStyle.Width(statsWidth - 2).Render(m.statsPanel())
		board = lipgloss.JoinHorizontal(lipgloss.Top, board, "  ", panel)
	} else if line := m.statsLine(); line != "" {
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, board))

	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// tabs renders one tab per mode, the current one highlighted.
func (m ScoreboardModel) tabs() string {
	parts := make([]string, len(m.modes))
	for i, g := range m.modes {
		if i == m.mode {
			parts[i] = activeTabStyle.Render(g.Title)
		} else {
			parts[i] = tabStyle.Render(g.Title)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m ScoreboardModel) tableView() string {
	if len(m.scores) == 0 {
		return mutedStyle.Italic(true).Padding(2, 4).
			Render("No scores recorded yet.\nPlay a game to set a high score!")
	}
	return m.table.View()
}

// statFields are the label/value pairs shown for the current mode.
func (m ScoreboardModel) statFields() [][2]string {
	if m.stats == nil {
		return nil
	}
	return [][2]string{
		{"Games", strconv.Itoa(m.stats.GamesCount)},
		{"Best", strconv.Itoa(m.stats.HighScore)},
		{"Best tile", strconv.Itoa(m.stats.BestTile)},
		{"Average", fmt.Sprintf("%.0f", m.stats.AvgScore)},
	}
}

// statsLine is the one-line summary used on narrow terminals.
func (m ScoreboardModel) statsLine() string {
	fields := m.statFields()
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = f[0] + ": " + f[1]
	}
	return strings.Join(parts, "  |  ")
}

func (m ScoreboardModel) statsPanel() string {
	fields := m.statFields()
	if len(fields) == 0 {
		return mutedStyle.Render("No games yet")
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render("Summary"))
	for _, f := range fields {
		b.WriteString("\n" + f[0] + ": " + f[1])
	}
	if !m.stats.LastPlayed.IsZero() {
		b.WriteString("\n" + mutedStyle.Render("Last: "+m.stats.LastPlayed.Format("Jan 02")))
	}
	return b.String()
}

// displayPlayer strips the owner kind prefix ("ssh:", "local:") from a player.
func displayPlayer(owner string) string {
	if _, name, ok := strings.Cut(owner, ":"); ok {
		return name
	}
	if owner == "" {
		return "-"
	}
	return owner
}

// IsGoingBack reports whether the player asked to return to the menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting reports whether the player asked to quit.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}
