package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/treat-catcher/internal/config"
	"github.com/vovakirdan/treat-catcher/internal/games/catch"
	"github.com/vovakirdan/treat-catcher/internal/records"
	"github.com/vovakirdan/treat-catcher/internal/storage"
)

// Scoreboard layout constants
const (
	tableMinWidth = 50  // Minimum table width
	maxScores     = 100 // Max history rows to load
)

// scoreView is one tab of the scoreboard.
type scoreView int

const (
	viewRecord scoreView = iota // Leaderboard or best score
	viewTop                     // Best finished runs from history
	viewRecent                  // Latest finished runs from history
	viewCount
)

func (v scoreView) title() string {
	switch v {
	case viewRecord:
		return "Record"
	case viewTop:
		return "Top runs"
	case viewRecent:
		return "Recent runs"
	}
	return ""
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextView key.Binding
	PrevView key.Binding
	Refresh  key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextView, k.Refresh, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextView, k.PrevView},
		{k.Refresh, k.Quit},
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
		NextView: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next view"),
		),
		PrevView: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev view"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Scores is everything the scoreboard shows. It doubles as the message
// that delivers a finished load.
type Scores struct {
	Standing records.Standing
	Top      []storage.ScoreEntry
	Recent   []storage.ScoreEntry
	Stats    *storage.GameStats
	Err      error // First failure; the other fields stay usable
}

// ScoreboardModel is the Bubble Tea model for the scoreboard screen.
type ScoreboardModel struct {
	keeper   records.Keeper
	store    *storage.Store
	logger   *log.Logger
	view     scoreView
	loaded   Scores
	loading  bool
	table    table.Model
	help     help.Model
	keys     ScoreboardKeyMap
	width    int
	height   int
	quitting bool
}

// NewScoreboardModel creates a new scoreboard model.
func NewScoreboardModel(keeper records.Keeper, store *storage.Store, logger *log.Logger, width, height int) ScoreboardModel {
	if logger == nil {
		logger = log.Default()
	}
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		keeper:  keeper,
		store:   store,
		logger:  logger,
		keys:    DefaultScoreboardKeyMap(),
		help:    h,
		width:   width,
		height:  height,
		loading: true,
	}
	m.table = m.createTable()
	return m
}

// loadScoresCmd reads the record and the run history.
func loadScoresCmd(keeper records.Keeper, store *storage.Store) tea.Cmd {
	return func() tea.Msg {
		return LoadScores(context.Background(), keeper, store)
	}
}

// LoadScores collects the scoreboard data. Missing pieces stay empty.
func LoadScores(ctx context.Context, keeper records.Keeper, store *storage.Store) Scores {
	var sc Scores
	if keeper != nil {
		sc.Standing, sc.Err = keeper.Fetch(ctx)
	}
	if store == nil {
		return sc
	}

	var err error
	if sc.Top, err = store.TopScores(catch.GameID, maxScores); err != nil && sc.Err == nil {
		sc.Err = err
	}
	if sc.Recent, err = store.RecentScores(catch.GameID, maxScores); err != nil && sc.Err == nil {
		sc.Err = err
	}
	if sc.Stats, err = store.GetGameStats(catch.GameID); err != nil && sc.Err == nil {
		sc.Err = err
	}
	return sc
}

// createTable creates a new table with columns for the current view.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Name", Width: records.MaxNameLen},
		{Title: "Score", Width: 8},
	}
	if m.view != viewRecord {
		columns = append(columns, table.Column{Title: "Date", Width: 14})
	}

	height := m.height - 10 // Title, tabs, stats, help and margins
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
		table.WithWidth(max(tableMinWidth, m.width-8)),
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

// rows returns the table rows of the current view.
func (m ScoreboardModel) rows() []table.Row {
	switch m.view {
	case viewRecord:
		if m.keeper != nil && m.keeper.Policy() == config.PolicyBest {
			if m.loaded.Standing.Best == 0 {
				return nil
			}
			return []table.Row{{"#1", "-", fmt.Sprintf("%d", m.loaded.Standing.Best)}}
		}
		rows := make([]table.Row, len(m.loaded.Standing.Board))
		for i, e := range m.loaded.Standing.Board {
			rows[i] = table.Row{fmt.Sprintf("#%d", i+1), e.Name, fmt.Sprintf("%d", e.Score)}
		}
		return rows
	case viewTop:
		return historyRows(m.loaded.Top, true)
	case viewRecent:
		return historyRows(m.loaded.Recent, false)
	}
	return nil
}

func historyRows(entries []storage.ScoreEntry, ranked bool) []table.Row {
	rows := make([]table.Row, len(entries))
	for i, s := range entries {
		rank := "-"
		if ranked {
			rank = fmt.Sprintf("#%d", i+1)
		}
		rows[i] = table.Row{
			rank,
			s.Player,
			fmt.Sprintf("%d", s.Score),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return rows
}

// updateTableRows rebuilds the table for the current view.
func (m *ScoreboardModel) updateTableRows() {
	m.table = m.createTable()
	m.table.SetRows(m.rows())
	m.table.GotoTop()
}

// Init starts loading scores.
func (m ScoreboardModel) Init() tea.Cmd {
	return loadScoresCmd(m.keeper, m.store)
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case Scores:
		m.loading = false
		m.loaded = msg
		if msg.Err != nil {
			m.logger.Warn("could not load scores", "error", msg.Err)
		}
		m.updateTableRows()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextView):
			m.view = (m.view + 1) % viewCount
			m.updateTableRows()
			return m, nil

		case key.Matches(msg, m.keys.PrevView):
			m.view = (m.view + viewCount - 1) % viewCount
			m.updateTableRows()
			return m, nil

		case key.Matches(msg, m.keys.Refresh):
			m.loading = true
			return m, loadScoresCmd(m.keeper, m.store)

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(centerText("TREAT CATCHER - HIGH SCORES", m.width)))
	b.WriteString("\n\n")

	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Padding(0, 1)
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, viewCount)
	for v := scoreView(0); v < viewCount; v++ {
		if v == m.view {
			tabs[v] = activeTabStyle.Render(v.title())
		} else {
			tabs[v] = tabStyle.Render(v.title())
		}
	}
	b.WriteString(centerText(strings.Join(tabs, " "), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))
	b.WriteString("\n")

	if stats := m.loaded.Stats; stats != nil && stats.GamesCount > 0 {
		statsStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
		b.WriteString(statsStyle.Render(fmt.Sprintf(
			"%d runs, average %.1f, last played %s",
			stats.GamesCount, stats.AvgScore, stats.LastPlayed.Format("Jan 02 15:04"),
		)))
		b.WriteString("\n")
	}

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or an empty message.
func (m ScoreboardModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.loading:
		return emptyStyle.Render("Loading scores...")
	case len(m.table.Rows()) == 0:
		return emptyStyle.Render("No scores recorded yet.\nGo catch some treats!")
	}
	return m.table.View()
}

// centerText pads text so it sits in the middle of width columns.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// RunScoreboard runs the scoreboard screen.
func RunScoreboard(keeper records.Keeper, store *storage.Store, logger *log.Logger, width, height int) error {
	model := NewScoreboardModel(keeper, store, logger, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
