package bomber

import (
	"math/rand"
	"time"

	platformcore "github.com/vovakirdan/tui-bomber/internal/core"
	"github.com/vovakirdan/tui-bomber/internal/games/bomber/core"
)

// SimOptions configure a headless run.
type SimOptions struct {
	Seed      int64
	Duration  time.Duration // Game time to simulate
	FrameRate int           // Frames per simulated second (default 60)
	Activity  float64       // Chance of an intent per frame (default 0.2)
}

// SimResult summarizes a headless run.
type SimResult struct {
	Summary RunSummary
	Frames  int
	Events  map[core.EventKind]int
}

var simActions = []platformcore.Action{
	platformcore.ActionUp,
	platformcore.ActionDown,
	platformcore.ActionLeft,
	platformcore.ActionRight,
	platformcore.ActionBomb,
}

// Simulate drives the game with random intents at a fixed frame step until
// the duration elapses or the game ends. The same seed yields the same run.
func Simulate(g *Game, opts SimOptions) SimResult {
	if opts.FrameRate <= 0 {
		opts.FrameRate = 60
	}
	if opts.Activity <= 0 {
		opts.Activity = 0.2
	}
	step := time.Second / time.Duration(opts.FrameRate)

	res := SimResult{Events: make(map[core.EventKind]int)}
	g.AddListener(ListenerFunc(func(e core.Event) {
		res.Events[e.Kind]++
	}))

	// Headless runs have no terminal; size the screen to fit the board
	cfg := platformcore.DefaultConfig()
	cfg.Seed = opts.Seed
	cfg.ScreenW, cfg.ScreenH = g.boardSize()
	cfg.ScreenH += hudHeight
	g.Reset(cfg)

	intents := rand.New(rand.NewSource(opts.Seed + 1))
	frame := platformcore.NewInputFrame()

	for played := time.Duration(0); played < opts.Duration; played += step {
		if intents.Float64() < opts.Activity {
			frame.Set(simActions[intents.Intn(len(simActions))])
		}
		result := g.Step(frame, step)
		frame.Clear()
		res.Frames++
		if result.State.GameOver {
			break
		}
	}

	res.Summary = g.Summary()
	g.logger.Info("simulation finished", "frames", res.Frames, "score", res.Summary.Score, "level", res.Summary.Level)
	return res
}
