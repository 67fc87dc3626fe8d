package bomber

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-bomber/internal/games/bomber/core"
)

func newSimGame(t *testing.T) *Game {
	t.Helper()
	g, err := New(Options{Settings: core.DefaultSettings()})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return g
}

func TestSimulateDeterministic(t *testing.T) {
	opts := SimOptions{Seed: 42, Duration: 30 * time.Second}

	a := Simulate(newSimGame(t), opts)
	b := Simulate(newSimGame(t), opts)

	if a.Frames != b.Frames {
		t.Errorf("got %d and %d frames, expected equal", a.Frames, b.Frames)
	}
	if a.Summary.Score != b.Summary.Score || a.Summary.Level != b.Summary.Level {
		t.Errorf("got %+v and %+v, expected equal score and level", a.Summary, b.Summary)
	}
	for k, n := range a.Events {
		if b.Events[k] != n {
			t.Errorf("%v: got %d and %d events, expected equal", k, n, b.Events[k])
		}
	}
}

func TestSimulateStopsAtDuration(t *testing.T) {
	// Enemies wait at least a second before their first step
	g := newSimGame(t)
	res := Simulate(g, SimOptions{Seed: 7, Duration: time.Second, FrameRate: 10, Activity: 1e-12})

	if res.Frames > 10 {
		t.Errorf("got %d frames, expected at most 10", res.Frames)
	}
	if res.Summary.Played > time.Second {
		t.Errorf("played %v, expected at most 1s", res.Summary.Played)
	}
}

func TestSimulatePlacesBombs(t *testing.T) {
	res := Simulate(newSimGame(t), SimOptions{Seed: 3, Duration: 20 * time.Second, Activity: 1})

	if res.Events[core.EventBombPlaced] == 0 {
		t.Error("expected at least one bomb to be placed")
	}
}
