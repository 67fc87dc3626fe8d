// Package bomber adapts the bomber simulation to the platform: it maps input
// frames to intents, drives the simulation clock, renders snapshots and fans
// simulation events out to listeners such as the audio player.
package bomber

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	platformcore "github.com/vovakirdan/tui-bomber/internal/core"
	"github.com/vovakirdan/tui-bomber/internal/games/bomber/core"
)

// EventListener receives simulation events after every frame.
// Listeners are called on the game loop and must not block.
type EventListener interface {
	OnEvent(e core.Event)
}

// ListenerFunc adapts a function to EventListener.
type ListenerFunc func(e core.Event)

// OnEvent calls f(e).
func (f ListenerFunc) OnEvent(e core.Event) { f(e) }

var moveDirs = map[platformcore.Action]core.Dir{
	platformcore.ActionUp:    core.DirUp,
	platformcore.ActionDown:  core.DirDown,
	platformcore.ActionLeft:  core.DirLeft,
	platformcore.ActionRight: core.DirRight,
}

// Options configure a Game.
type Options struct {
	Settings core.Settings
	Logger   *log.Logger // nil discards logs
}

// RunSummary describes one finished or running game.
type RunSummary struct {
	ID       string
	Score    int
	Level    int
	Played   time.Duration
	GameOver bool
}

// Game is the bomber game as seen by the platform.
type Game struct {
	settings  core.Settings
	baseLog   *log.Logger
	logger    *log.Logger
	session   *core.Session
	sessionID string
	listeners []EventListener

	tick     uint64
	elapsed  time.Duration // Unpaused game time, drives blink and pulse
	paused   bool
	reported int // Level whose generation report has been logged

	screenW  int
	screenH  int
	tooSmall bool
}

// New validates the settings and creates a game. Reset must be called before
// the first Step.
func New(opts Options) (*Game, error) {
	if err := opts.Settings.Validate(); err != nil {
		return nil, fmt.Errorf("bomber: %w", err)
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{
		settings: opts.Settings,
		baseLog:  logger,
		logger:   logger,
	}, nil
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "bomber"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Bomber"
}

// AddListener registers an event listener.
func (g *Game) AddListener(l EventListener) {
	g.listeners = append(g.listeners, l)
}

// Reset starts a new game with the given seed and screen size.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	// Settings were validated in New, so this cannot fail
	session, err := core.NewSession(g.settings, cfg.Seed)
	if err != nil {
		panic(fmt.Sprintf("bomber: %v", err))
	}
	g.session = session
	g.tick = 0
	g.paused = false
	g.Resize(cfg.ScreenW, cfg.ScreenH)
	g.beginRun()

	g.logger.Info("game started", "seed", cfg.Seed, "grid", fmt.Sprintf("%dx%d", g.settings.Width, g.settings.Height))
}

// beginRun tags a fresh run with a new session ID.
func (g *Game) beginRun() {
	g.sessionID = uuid.NewString()
	g.logger = g.baseLog.With("session", g.sessionID)
	g.elapsed = 0
	g.reported = 0
	g.logLevelReport()
}

// Resize updates the screen dimensions used for layout.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	boardW, boardH := g.boardSize()
	g.tooSmall = w < boardW || h < boardH+hudHeight
}

// Step applies the frame's input, advances the simulation by dt and
// dispatches the resulting events.
func (g *Game) Step(in platformcore.InputFrame, dt time.Duration) platformcore.StepResult {
	g.tick++

	if in.Has(platformcore.ActionRestart) {
		g.restart()
		return platformcore.StepResult{State: g.State()}
	}

	over := g.session.Phase() == core.PhaseGameOver
	if in.Has(platformcore.ActionPause) && !over {
		g.paused = !g.paused
		g.logger.Debug("pause toggled", "paused", g.paused)
	}
	if g.paused || over || g.tooSmall {
		return platformcore.StepResult{State: g.State()}
	}

	for _, a := range in.Actions {
		switch {
		case a.IsMove():
			g.session.Move(moveDirs[a])
		case a == platformcore.ActionBomb:
			g.session.PlaceBomb()
		}
	}

	g.session.Tick(dt)
	g.elapsed += dt

	n := g.dispatch()
	return platformcore.StepResult{State: g.State(), Events: n}
}

// restart begins a new run on the same random stream.
func (g *Game) restart() {
	g.logger.Info("restart", "score", g.session.Score(), "level", g.session.Level())
	g.session.Restart()
	g.session.DrainEvents()
	g.paused = false
	g.beginRun()
}

// dispatch drains the simulation events, logs the notable ones and forwards
// all of them to the listeners.
func (g *Game) dispatch() int {
	events := g.session.DrainEvents()
	for _, e := range events {
		switch e.Kind {
		case core.EventDoorOpened:
			g.logger.Debug("door opened", "level", e.Level, "pos", e.Pos)
		case core.EventLevelAdvanced:
			g.logger.Info("level advanced", "level", e.Level, "score", e.Score)
		case core.EventPlayerDied:
			g.logger.Info("game over", "score", e.Score, "level", e.Level, "played", g.elapsed.Round(time.Millisecond))
		}
		for _, l := range g.listeners {
			l.OnEvent(e)
		}
	}
	g.logLevelReport()
	return len(events)
}

// logLevelReport logs how the current level was generated, once per level.
func (g *Game) logLevelReport() {
	if g.session.Phase() != core.PhasePlaying {
		return
	}
	r := g.session.LevelReport()
	if r.Level == g.reported {
		return
	}
	g.reported = r.Level

	if r.Relaxed() {
		g.logger.Warn("level generation relaxed",
			"level", r.Level,
			"layout_attempts", r.LayoutAttempts,
			"forced_block", r.ForcedBlock,
			"relaxed_spawns", r.RelaxedSpawns,
			"cleared_blocks", r.ClearedBlocks,
			"missing_enemies", r.MissingEnemies,
		)
		return
	}
	g.logger.Debug("level generated", "level", r.Level, "layout_attempts", r.LayoutAttempts, "enemies", g.session.EnemiesLeft())
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	return platformcore.GameState{
		Score:    g.session.Score(),
		Level:    g.session.Level(),
		GameOver: g.session.Phase() == core.PhaseGameOver,
		Paused:   g.paused,
	}
}

// Snapshot returns a copy of the simulation state.
func (g *Game) Snapshot() core.Snapshot {
	return g.session.Snapshot()
}

// Summary describes the current run.
func (g *Game) Summary() RunSummary {
	return RunSummary{
		ID:       g.sessionID,
		Score:    g.session.Score(),
		Level:    g.session.Level(),
		Played:   g.elapsed,
		GameOver: g.session.Phase() == core.PhaseGameOver,
	}
}
