// Package tui provides the Bubble Tea session for the carom coach:
// numpad score entry, the needed-score projection grid, and the
// 20-game moyenne history with derived statistics.
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

	"github.com/vovakirdan/carom-coach/internal/carom"
	"github.com/vovakirdan/carom-coach/internal/config"
	"github.com/vovakirdan/carom-coach/internal/storage"
)

// Session layout constants
const (
	resultCols    = 5  // Lookahead columns shown in the projection grid
	historyHeight = 12 // Visible rows of the history table
)

type sessionTab int

const (
	tabGame sessionTab = iota
	tabOverall
)

// SessionModel is the Bubble Tea model for a coaching session.
type SessionModel struct {
	game    *carom.GameState
	history *carom.History
	store   *storage.Store
	cfg     config.Config

	tab       sessionTab
	table     table.Model
	help      help.Model
	keys      SessionKeyMap
	width     int
	height    int
	entryMode bool   // Overall tab: typing a manual moyenne
	entryText string // Text of the manual moyenne being typed
	quitting  bool
}

// NewSessionModel creates a session model. The history window is
// seeded from the store's most recent moyennes; a nil store (or an
// empty log) falls back to the configured seed moyenne.
func NewSessionModel(store *storage.Store, cfg config.Config, width, height int) SessionModel {
	var seed []float64
	if store != nil {
		// Best-effort seed; an unreadable log just means defaults.
		seed, _ = store.RecentMoyennes(carom.HistorySize)
	}

	h := help.New()
	h.ShowAll = false

	m := SessionModel{
		game:    carom.NewGameState(),
		history: carom.NewHistory(seed, cfg.History.SeedMoyenne),
		store:   store,
		cfg:     cfg,
		keys:    DefaultSessionKeyMap(),
		help:    h,
		width:   width,
		height:  height,
	}

	m.table = m.createTable()
	m.updateTableRows()

	return m
}

// createTable creates the history table for the overall tab.
func (m *SessionModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Game", Width: 6},
		{Title: "Moyenne", Width: 10},
	}

	height := historyHeight
	if m.height > 0 && m.height-10 < height {
		height = m.height - 10
	}
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
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

// updateTableRows fills the history table, oldest game first.
func (m *SessionModel) updateTableRows() {
	entries := m.history.Entries()
	rows := make([]table.Row, len(entries))
	for i, moyenne := range entries {
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%.2f", moyenne),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoBottom()
}

// Init initializes the session model.
func (m SessionModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

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

// handleKey processes keyboard input.
func (m SessionModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The manual-moyenne prompt captures everything except quit.
	if m.entryMode {
		return m.handleEntryModeKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.SwitchTab):
		if m.tab == tabGame {
			m.tab = tabOverall
		} else {
			m.tab = tabGame
		}
		return m, nil
	}

	if m.tab == tabGame {
		return m.handleGameKey(msg)
	}
	return m.handleOverallKey(msg)
}

// handleGameKey processes input on the game tab.
func (m SessionModel) handleGameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := msg.String()
	if len(s) == 1 && s[0] >= '0' && s[0] <= '9' {
		m.game.AddDigit(int(s[0] - '0'))
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Commit):
		m.game.CommitEntry()

	case key.Matches(msg, m.keys.Undo):
		m.game.RemoveLastDigit()

	case key.Matches(msg, m.keys.ClearEntry):
		m.game.ResetEntry()

	case key.Matches(msg, m.keys.ResetGame):
		m.game.Reset()

	case key.Matches(msg, m.keys.EndGame):
		m.endGame()
	}

	return m, nil
}

// endGame folds the finished game into the history and persists it.
func (m *SessionModel) endGame() {
	// Capture the counters before EndGame resets them.
	rec := storage.GameRecord{
		Score:      m.game.Score(),
		Turns:      m.game.PlayedTurns(),
		ZeroScores: m.game.ZeroScores(),
	}

	moyenne, ok := m.game.EndGame()
	if !ok {
		return
	}

	m.history.Push(moyenne)
	m.updateTableRows()

	if m.store != nil {
		rec.Moyenne = moyenne
		//nolint:errcheck // Best-effort save, session continues regardless
		m.store.SaveGame(rec)
	}
}

// handleOverallKey processes input on the overall tab.
func (m SessionModel) handleOverallKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.AddMoyenne) {
		m.entryMode = true
		m.entryText = ""
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// handleEntryModeKey processes input while typing a manual moyenne.
func (m SessionModel) handleEntryModeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "esc":
		m.entryMode = false
		m.entryText = ""
		return m, nil

	case "enter":
		if moyenne, err := strconv.ParseFloat(m.entryText, 64); err == nil && moyenne >= 0 {
			m.history.Push(moyenne)
			m.updateTableRows()
			if m.store != nil {
				//nolint:errcheck // Best-effort save
				m.store.SaveMoyenne(moyenne)
			}
		}
		m.entryMode = false
		m.entryText = ""
		return m, nil

	case "backspace":
		if len(m.entryText) > 0 {
			m.entryText = m.entryText[:len(m.entryText)-1]
		}
		return m, nil
	}

	s := msg.String()
	if len(s) == 1 && (s[0] >= '0' && s[0] <= '9' || s[0] == '.') {
		m.entryText += s
	}
	return m, nil
}

// View renders the session.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	b.WriteString(titleStyle.Render(centerText("CAROM COACH", m.width)))
	b.WriteString("\n")
	b.WriteString(centerText(m.renderTabs(), m.width))
	b.WriteString("\n\n")

	if m.tab == tabGame {
		b.WriteString(m.renderGameTab())
	} else {
		b.WriteString(m.renderOverallTab())
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTabs renders the game/overall tab line.
func (m SessionModel) renderTabs() string {
	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Padding(0, 1)
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	game := tabStyle.Render("game")
	overall := tabStyle.Render("overall")
	if m.tab == tabGame {
		game = activeTabStyle.Render("game")
	} else {
		overall = activeTabStyle.Render("overall")
	}

	return game + " " + overall
}

// renderGameTab renders the score panel and the projection grid.
func (m SessionModel) renderGameTab() string {
	panelStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	var status strings.Builder
	status.WriteString(fmt.Sprintf("Score:   %d\n", m.game.Score()))
	status.WriteString(fmt.Sprintf("Turns:   %d\n", m.game.PlayedTurns()))
	status.WriteString(fmt.Sprintf("Moyenne: %.2f\n", m.game.CurrentAverage()))
	status.WriteString(fmt.Sprintf("Zeros:   %d\n", m.game.ZeroScores()))
	status.WriteString("\n")
	status.WriteString(fmt.Sprintf("Entry:   %d", m.game.EntryValue()))

	statusPanel := panelStyle.Render(status.String())
	gridPanel := panelStyle.Render(m.renderProjectionGrid())

	return centerText(lipgloss.JoinHorizontal(lipgloss.Top, statusPanel, "  ", gridPanel), m.width)
}

// renderProjectionGrid renders the needed-score table: one row per
// target tier, one column per future turn.
func (m SessionModel) renderProjectionGrid() string {
	tbl := carom.ProjectNeededTable(
		m.game.Score(),
		m.game.PlayedTurns(),
		m.cfg.Targets.Base,
		m.cfg.Targets.Step,
		m.cfg.Projection.Horizon,
	)

	cols := resultCols
	if len(tbl[0]) < cols {
		cols = len(tbl[0])
	}

	headerStyle := lipgloss.NewStyle().Bold(true)

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%-8s", "Target")))
	for k := 1; k <= cols; k++ {
		b.WriteString(headerStyle.Render(fmt.Sprintf("%6d", k)))
	}
	b.WriteString("\n")

	for _, row := range tbl {
		b.WriteString(fmt.Sprintf("%-8.2f", row[0].Target))
		for j := 0; j < cols; j++ {
			b.WriteString(fmt.Sprintf("%6d", row[j].NeededScore))
		}
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

// renderOverallTab renders history statistics and the moyenne table.
func (m SessionModel) renderOverallTab() string {
	panelStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	var stats strings.Builder
	stats.WriteString(fmt.Sprintf("Avg Moyenne:  %.2f\n", m.history.Average()))
	stats.WriteString(fmt.Sprintf("Score Target: %d\n", m.history.ScaledTarget()))
	stats.WriteString("\n")
	stats.WriteString("Needed next game:\n")
	for _, tier := range carom.Tiers(m.cfg.Targets.Base, m.cfg.Targets.Step) {
		need := m.history.ExpectedAverageNeeded(1, tier)
		stats.WriteString(fmt.Sprintf("  %.2f -> %.2f\n", tier, need))
	}

	if m.entryMode {
		stats.WriteString("\n")
		stats.WriteString(fmt.Sprintf("New moyenne: %s_", m.entryText))
	}

	statsPanel := panelStyle.Render(strings.TrimRight(stats.String(), "\n"))
	tablePanel := panelStyle.Render(m.table.View())

	return centerText(lipgloss.JoinHorizontal(lipgloss.Top, statsPanel, "  ", tablePanel), m.width)
}

// centerText centers a possibly multi-line block within the width.
func centerText(text string, width int) string {
	if width <= 0 {
		return text
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, text)
}

// IsQuitting returns true if the user ended the session.
func (m SessionModel) IsQuitting() bool {
	return m.quitting
}

// RunSession runs a coaching session in the current terminal.
func RunSession(store *storage.Store, cfg config.Config, width, height int) error {
	model := NewSessionModel(store, cfg, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
