package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/oh-coconuts/internal/storage"
)

// Results panel layout constants
const (
	maxRounds      = 50 // Max rounds to load into the table
	panelMinHeight = 4  // Smallest table height worth drawing
)

// ResultsKeyMap defines the key bindings for the results panel.
type ResultsKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Restart key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ResultsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Restart, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ResultsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Restart, k.Quit},
	}
}

// DefaultResultsKeyMap returns default key bindings.
func DefaultResultsKeyMap() ResultsKeyMap {
	return ResultsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "play again"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ResultsModel shows the round that just finished and the best rounds of
// the ledger. It is embedded in Model and shown once a round is over.
type ResultsModel struct {
	round  storage.Round // The round just played
	rounds []storage.Round
	stats  *storage.Stats
	err    error
	table  table.Model
	help   help.Model
	keys   ResultsKeyMap
	width  int
	height int
}

// NewResultsModel loads the ledger and builds the panel for round.
func NewResultsModel(store *storage.Store, round storage.Round, width, height int) ResultsModel {
	h := help.New()
	h.ShowAll = false
	h.Width = width

	m := ResultsModel{
		round:  round,
		keys:   DefaultResultsKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}

	if store != nil {
		m.rounds, m.err = store.TopRounds(maxRounds)
		if m.err == nil {
			m.stats, m.err = store.Stats()
		}
	}

	m.table = m.createTable()
	m.updateTableRows()
	return m
}

// createTable creates a new table sized for the current window.
func (m *ResultsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Player", Width: 12},
		{Title: "Destroyed", Width: 10},
		{Title: "Beached", Width: 8},
		{Title: "Health", Width: 7},
		{Title: "Crab", Width: 6},
	}

	// Give spare width to the player column
	used := 0
	for _, c := range columns {
		used += c.Width + 2
	}
	if spare := m.width - 6 - used; spare > 0 {
		columns[1].Width += min(spare, 12)
	}

	height := m.height - 12 // Title, summary, help and borders
	if height < panelMinHeight {
		height = panelMinHeight
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	// Table styles
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

// updateTableRows fills the table and selects the round just played.
func (m *ResultsModel) updateTableRows() {
	rows := make([]table.Row, len(m.rounds))
	cursor := 0
	for i, r := range m.rounds {
		crab := "alive"
		if !r.CrabAlive {
			crab = "lost"
		}
		player := r.Player
		if player == "" {
			player = "-"
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			player,
			fmt.Sprintf("%d", r.Destroyed),
			fmt.Sprintf("%d", r.Beached),
			fmt.Sprintf("%d", r.Health),
			crab,
		}
		if r.ID == m.round.ID {
			cursor = i
		}
	}
	m.table.SetRows(rows)
	m.table.SetCursor(cursor)
}

// Update handles scrolling and resizing. Restart and quit are handled by
// the enclosing model.
func (m ResultsModel) Update(msg tea.Msg) (ResultsModel, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Up) || key.Matches(msg, m.keys.Down) {
			m.table, cmd = m.table.Update(msg)
		}
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// View renders the results panel.
func (m ResultsModel) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(centerText(titleStyle.Render("ROUND OVER"), m.width))
	b.WriteString("\n\n")

	summary := fmt.Sprintf("Destroyed: %d  Beached: %d  Health: %d",
		m.round.Destroyed, m.round.Beached, m.round.Health)
	if !m.round.CrabAlive {
		summary += "  (crab down)"
	}
	b.WriteString(centerText(summary, m.width))
	b.WriteString("\n")

	if m.stats != nil && m.stats.Rounds > 0 {
		line := fmt.Sprintf("%d rounds this session  |  best %d  |  avg %.1f destroyed",
			m.stats.Rounds, m.stats.BestDestroyed, m.stats.AvgDestroyed)
		b.WriteString(centerText(lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Render(line), m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(centerBlock(tableStyle.Render(m.renderTableContent()), m.width))

	// Help bar
	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table, an error, or an empty message.
func (m ResultsModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(1, 4)

	switch {
	case m.err != nil:
		return emptyStyle.Render("Round ledger unavailable:\n" + m.err.Error())
	case len(m.rounds) == 0:
		return emptyStyle.Render("No rounds recorded yet.")
	}
	return m.table.View()
}

// centerText pads a single line so it sits in the middle of width columns.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// centerBlock centers a multi-line block as a whole.
func centerBlock(block string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, block)
}
