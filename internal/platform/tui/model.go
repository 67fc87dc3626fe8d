package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-bomber/internal/core"
	"github.com/vovakirdan/tui-bomber/internal/games/bomber"
)

// helpHeight is the number of rows below the game screen used by the help bar.
const helpHeight = 1

// Game is what the model needs from a game.
type Game interface {
	ID() string
	Title() string
	Reset(cfg core.RuntimeConfig)
	Resize(w, h int)
	Step(in core.InputFrame, dt time.Duration) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
	Summary() bomber.RunSummary
}

// Options configure the model.
type Options struct {
	Logger        *log.Logger // nil discards logs
	ScreenshotDir string      // Defaults to ~/.bomber/screenshots
	Now           func() time.Time
}

// Model is the Bubble Tea model running the game.
type Model struct {
	game        Game
	screen      *core.Screen
	config      core.RuntimeConfig
	clock       *core.FrameClock
	keys        KeyMap
	help        help.Model
	history     History
	showHistory bool
	inputFrame  core.InputFrame
	gameState   core.GameState
	logger      *log.Logger
	shotDir     string
	now         func() time.Time
	quitting    bool
	recorded    bool // Whether the current run is already in the history
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.ScreenshotDir == "" {
		opts.ScreenshotDir = filepath.Join(os.Getenv("HOME"), ".bomber", "screenshots")
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	h := help.New()
	h.ShowAll = false

	screenH := max(cfg.ScreenH-helpHeight, 1)
	cfg.ScreenH = screenH
	game.Reset(cfg)

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, screenH),
		config:     cfg,
		clock:      core.NewFrameClock(core.DefaultMaxFrameStep),
		keys:       DefaultKeyMap(),
		help:       h,
		history:    NewHistory(game.Title(), cfg.ScreenW, cfg.ScreenH+helpHeight),
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
		logger:     opts.Logger,
		shotDir:    opts.ScreenshotDir,
		now:        opts.Now,
	}
}

// Init names the terminal window after the game and starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle(m.game.Title()),
		tickCmd(m.config.TickRate),
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.History):
		m.showHistory = !m.showHistory
		return m, nil
	}

	if m.showHistory {
		var cmd tea.Cmd
		m.history, cmd = m.history.Update(msg)
		return m, cmd
	}

	m.keys.MapKeyToFrame(msg, &m.inputFrame)

	// The loop stops at game over, so restart has to resume it.
	if m.clock.Canceled() && m.inputFrame.Has(core.ActionRestart) {
		return m.restart()
	}
	if m.inputFrame.Has(core.ActionPause) {
		// Do not replay the paused interval on resume
		m.clock.Reset()
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = max(msg.Height-helpHeight, 1)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.game.Resize(m.config.ScreenW, m.config.ScreenH)
	m.history.Resize(msg.Width, msg.Height)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the game by the time since the previous frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.clock.Canceled() {
		return m, nil
	}

	restarting := m.inputFrame.Has(core.ActionRestart)
	if restarting {
		m.recordRun()
	}

	dt := m.clock.Advance(now)
	result := m.game.Step(m.inputFrame, dt)
	m.inputFrame.Clear()
	m.gameState = result.State
	if restarting {
		m.recorded = false
	}

	if m.gameState.GameOver {
		m.recordRun()
		m.clock.Cancel()
		// Keep the final frame on screen; restart resumes ticking
		return m, nil
	}

	return m, tickCmd(m.config.TickRate)
}

// restart resumes the frame loop with a fresh game after game over.
func (m Model) restart() (tea.Model, tea.Cmd) {
	m.recordRun()
	m.game.Step(m.inputFrame, 0)
	m.inputFrame.Clear()
	m.gameState = m.game.State()
	m.recorded = false
	m.clock = core.NewFrameClock(core.DefaultMaxFrameStep)
	return m, tickCmd(m.config.TickRate)
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.recordRun()
	m.clock.Cancel()
	m.quitting = true
	return m, tea.Quit
}

// recordRun adds the current run to the history once. Runs that never
// scored and never ended are not worth listing.
func (m *Model) recordRun() {
	if m.recorded {
		return
	}
	s := m.game.Summary()
	if s.Score == 0 && !s.GameOver {
		return
	}
	m.history.Add(s, m.now())
	m.recorded = true
	m.logger.Debug("run recorded", "session", s.ID, "score", s.Score, "level", s.Level)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		m.logger.Warn("screenshot directory", "err", err)
		return
	}

	timestamp := m.now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(m.shotDir, filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot", "path", path, "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showHistory {
		return m.history.View(m.help.View(m.keys))
	}

	m.game.Render(m.screen)

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// History returns the runs recorded so far.
func (m Model) History() []RunRecord {
	return m.history.Runs()
}

// Run starts the Bubble Tea program and returns the runs played.
func Run(game Game, cfg core.RuntimeConfig, opts Options) ([]RunRecord, error) {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return nil, err
	}
	if fm, ok := final.(Model); ok {
		return fm.History(), nil
	}
	return nil, nil
}
