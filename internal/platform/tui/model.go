package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/treat-catcher/internal/config"
	"github.com/vovakirdan/treat-catcher/internal/core"
	"github.com/vovakirdan/treat-catcher/internal/games/catch"
	"github.com/vovakirdan/treat-catcher/internal/records"
	"github.com/vovakirdan/treat-catcher/internal/storage"
)

// phase is where the session is in the prompt -> play -> game over cycle.
type phase int

const (
	phasePrompt  phase = iota // Waiting for a player name
	phaseLoading              // Record fetch in flight; the first tick waits for it
	phasePlaying
	phaseOver // Overlay shown until the restart timer fires
)

// Options configures a Model.
type Options struct {
	Config  config.CatchConfig
	Runtime core.RuntimeConfig
	Keeper  records.Keeper
	Store   *storage.Store // Run history; nil disables it
	Logger  *log.Logger
	Name    string // Prefills the name prompt

	// ScreenshotDir receives ctrl+s dumps. Empty uses ~/.catch/screenshots.
	ScreenshotDir string
}

// Model is the Bubble Tea model for a catcher session.
type Model struct {
	game     *catch.Game
	screen   *core.Screen
	keeper   records.Keeper
	store    *storage.Store
	logger   *log.Logger
	cfg      config.CatchConfig
	config   core.RuntimeConfig
	seed     int64 // Fixed seed from the command line, 0 for time-based
	input    *core.HoldTracker
	keys     *KeyMapper
	name     textinput.Model
	help     help.Model
	prompt   PromptKeyMap
	player   string
	phase    phase
	run      int
	standing records.Standing
	state    core.GameState
	quitting bool
	shotDir  string
}

// NewModel creates a new Bubble Tea model for the given options.
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	keeper := opts.Keeper
	if keeper == nil {
		keeper = records.New(opts.Config.Records, nil, logger)
	}
	rc := opts.Runtime
	if rc.TickRate <= 0 {
		rc.TickRate = core.DefaultConfig().TickRate
	}

	ti := textinput.New()
	ti.Placeholder = opts.Config.Records.Guest
	ti.CharLimit = records.MaxNameLen
	ti.Width = records.MaxNameLen + 1
	ti.Prompt = "Name: "
	ti.SetValue(opts.Name)
	ti.Focus()

	h := help.New()
	h.ShowAll = false

	m := Model{
		game:    catch.New(opts.Config),
		screen:  core.NewScreen(rc.ScreenW, rc.ScreenH),
		keeper:  keeper,
		store:   opts.Store,
		logger:  logger,
		cfg:     opts.Config,
		config:  rc,
		seed:    rc.Seed,
		input:   core.NewHoldTracker(core.DefaultHoldTicks),
		keys:    NewKeyMapper(),
		name:    ti,
		help:    h,
		prompt:  DefaultPromptKeyMap(),
		shotDir: opts.ScreenshotDir,
	}
	m.config.Seed = m.nextSeed()
	m.game.Reset(m.config)

	if keeper.Policy() == config.PolicyLeaderboard {
		m.phase = phasePrompt
	} else {
		m.player = records.NormalizeName(opts.Name, opts.Config.Records.Guest)
		m.phase = phaseLoading
	}
	return m
}

// Init starts the session with either the name prompt or the record fetch.
func (m Model) Init() tea.Cmd {
	if m.phase == phasePrompt {
		return textinput.Blink
	}
	return fetchCmd(m.keeper, m.run)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.phase == phasePrompt {
			return m.handlePromptKey(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()

	case FetchedMsg:
		return m.handleFetched(msg)

	case SavedMsg:
		return m.handleSaved(msg)

	case RestartMsg:
		return m.handleRestart(msg)
	}

	if m.phase == phasePrompt {
		var cmd tea.Cmd
		m.name, cmd = m.name.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handlePromptKey feeds the name input until enter starts a run.
func (m Model) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.prompt.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.prompt.Play):
		m.player = records.NormalizeName(m.name.Value(), m.cfg.Records.Guest)
		m.name.SetValue(m.player)
		m.name.Blur()
		m.phase = phaseLoading
		m.logger.Debug("run requested", "player", m.player, "run", m.run)
		return m, fetchCmd(m.keeper, m.run)
	}

	var cmd tea.Cmd
	m.name, cmd = m.name.Update(msg)
	return m, cmd
}

// handleKey processes keyboard input outside the prompt.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if m.phase == phasePlaying {
		m.input.Press(action)
	}
	return m, nil
}

// handleResize processes window resize events. The play field has a fixed
// logical size, so the run continues at the new scale.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.game.Resize(msg.Width, msg.Height)
	m.help.Width = msg.Width
	return m, nil
}

// handleFetched starts the run once the record is known.
func (m Model) handleFetched(msg FetchedMsg) (tea.Model, tea.Cmd) {
	if m.phase != phaseLoading || msg.Run != m.run {
		return m, nil
	}
	if msg.Err != nil {
		m.logger.Warn("could not load records", "error", msg.Err)
	}
	m.standing = msg.Standing

	m.config.Seed = m.nextSeed()
	m.game.Reset(m.config)
	m.state = m.game.State()
	m.input.Release()
	m.phase = phasePlaying
	m.logger.Debug("run started", "player", m.player, "run", m.run, "seed", m.config.Seed)

	return m, tickCmd(m.config.TickRate)
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.phase != phasePlaying {
		// Ticks stop with the run; a late one is dropped.
		return m, nil
	}

	result := m.game.Step(m.input.Tick())
	m.state = result.State

	for _, name := range result.Unlocked {
		m.logger.Debug("cosmetic unlocked", "name", name, "score", m.state.Score)
	}

	if result.EnteredTerminal {
		m.phase = phaseOver
		m.logger.Info("run over", "player", m.player, "score", m.state.Score)
		return m, tea.Batch(
			saveCmd(m.keeper, m.store, m.run, m.player, m.state.Score),
			restartCmd(m.game.RestartDelay(), m.run),
		)
	}

	return m, tickCmd(m.config.TickRate)
}

// handleSaved logs the outcome of the fire-and-forget record update.
func (m Model) handleSaved(msg SavedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.logger.Warn("could not save record", "error", msg.Err)
	}
	if msg.HistErr != nil {
		m.logger.Warn("could not save run history", "error", msg.HistErr)
	}
	if msg.Run == m.run && m.phase == phaseOver {
		m.standing = msg.Standing
	}
	return m, nil
}

// handleRestart resets the session after the game-over delay.
func (m Model) handleRestart(msg RestartMsg) (tea.Model, tea.Cmd) {
	if m.phase != phaseOver || msg.Run != m.run {
		return m, nil
	}
	m.run++
	m.input.Release()

	if m.keeper.Policy() == config.PolicyLeaderboard {
		m.phase = phasePrompt
		m.name.SetValue(m.player)
		m.name.CursorEnd()
		focus := m.name.Focus()
		return m, tea.Batch(focus, textinput.Blink)
	}

	m.phase = phaseLoading
	return m, fetchCmd(m.keeper, m.run)
}

// nextSeed returns the seed for the next run.
func (m Model) nextSeed() int64 {
	if m.seed != 0 {
		return m.seed
	}
	return time.Now().UnixNano()
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.renderGame()

	dir := m.shotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.logger.Warn("could not save screenshot", "error", err)
			return
		}
		dir = filepath.Join(home, config.AppDirName, "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// renderGame draws the field plus whatever the current phase puts on top.
func (m Model) renderGame() {
	m.game.Render(m.screen)
	switch m.phase {
	case phaseLoading:
		drawLoading(m.screen)
	case phaseOver:
		drawStanding(m.screen, m.standing, m.keeper.Policy(), m.player, m.state.Score)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.phase == phasePrompt {
		return m.promptView()
	}

	m.renderGame()
	return RenderScreen(m.screen)
}

// Player returns the normalized name of the current player.
func (m Model) Player() string {
	return m.player
}

// Score returns the score of the current or last run.
func (m Model) Score() int {
	return m.state.Score
}

// Run starts the Bubble Tea program with the given options.
func Run(opts Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
