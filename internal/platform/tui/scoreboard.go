package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dadispowerful/recycle/internal/registry"
	"github.com/dadispowerful/recycle/internal/storage"
)

const (
	minWidthForStats = 80 // Below this the stats panel goes above the table
	statsWidth       = 24
	maxScores        = 100
	defaultGameID    = "recycling"
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel shows the best runs of the recycling game next to
// aggregate stats for every run on record.
type ScoreboardModel struct {
	game      registry.GameInfo
	store     *storage.Store
	scores    []storage.ScoreEntry
	stats     *storage.GameStats
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool // True if user pressed back (not quit)
}

// NewScoreboardModel creates a new scoreboard model.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	game := registry.GameInfo{ID: defaultGameID, Title: "Recycling"}
	if games := registry.List(); len(games) > 0 {
		game = games[0]
	}

	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		game:   game,
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.load()

	return m
}

func (m ScoreboardModel) sideBySide() bool {
	return m.width >= minWidthForStats
}

func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Player", Width: 10},
		{Title: "Score", Width: 7},
		{Title: "Level", Width: 6},
		{Title: "Date", Width: 14},
	}

	tableWidth := m.width - 4
	if m.sideBySide() {
		tableWidth -= statsWidth + 3
	}
	// Rank+Player+Score+Level+Date plus cell padding
	if spare := tableWidth - 53; spare > 0 {
		columns[1].Width += min(spare, 10)
	}

	height := m.height - 8
	if !m.sideBySide() {
		height -= 8 // stats panel sits above the table
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(height, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load reads the top runs and aggregate stats. A failing store reads
// as an empty board.
func (m *ScoreboardModel) load() {
	m.scores, m.stats = nil, nil
	if m.store != nil {
		if scores, err := m.store.TopScores(m.game.ID, maxScores); err == nil {
			m.scores = scores
		}
		if stats, err := m.store.GetGameStats(m.game.ID); err == nil {
			m.stats = stats
		}
	}
	m.updateTableRows()
}

func (m *ScoreboardModel) updateTableRows() {
	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		player := s.Player
		if player == "" {
			player = "local"
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			player,
			fmt.Sprintf("%d", s.Score),
			fmt.Sprintf("%d", s.Level),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(centerText("HIGH SCORES - "+m.game.Title, m.width)))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	stats := boxStyle.Width(statsWidth).Render(m.renderStats())
	scores := boxStyle.UnsetWidth().Render(m.renderTableContent())

	if m.sideBySide() {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, stats, "  ", scores))
	} else {
		b.WriteString(lipgloss.JoinVertical(lipgloss.Left, stats, scores))
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderStats lists run totals from every recorded run, not just the
// rows shown in the table.
func (m ScoreboardModel) renderStats() string {
	label := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	value := lipgloss.NewStyle().Bold(true)

	var b strings.Builder
	b.WriteString("Stats\n")
	b.WriteString(strings.Repeat("-", statsWidth-4))
	b.WriteString("\n")

	if m.stats == nil || m.stats.GamesCount == 0 {
		b.WriteString(label.Render("No runs yet"))
		return b.String()
	}

	line := func(name, v string) {
		b.WriteString(label.Render(fmt.Sprintf("%-10s", name)))
		b.WriteString(value.Render(v))
		b.WriteString("\n")
	}
	line("Runs", fmt.Sprintf("%d", m.stats.GamesCount))
	line("Best", fmt.Sprintf("%d", m.stats.HighScore))
	line("Average", fmt.Sprintf("%.1f", m.stats.AvgScore))
	line("Top level", fmt.Sprintf("%d", m.stats.BestLevel))
	line("Sorted", fmt.Sprintf("%d", m.stats.TotalScore))
	if !m.stats.LastPlayed.IsZero() {
		line("Last", m.stats.LastPlayed.Format("Jan 02 15:04"))
	}

	return strings.TrimSuffix(b.String(), "\n")
}

func (m ScoreboardModel) renderTableContent() string {
	if len(m.scores) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No scores recorded yet.\nSort some trash to set a high score!")
	}

	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(
		NewScoreboardModel(store, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
