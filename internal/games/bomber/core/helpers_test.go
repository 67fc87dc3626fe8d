package core

import (
	"testing"
	"time"
)

// newArena returns a playing session on a w x h grid holding only the fixed
// walls, with no enemies or pickups and the door hidden under a block in the
// bottom-right corner.
func newArena(t *testing.T, w, h int) *Session {
	t.Helper()

	st := DefaultSettings()
	st.Width = w
	st.Height = h
	s, err := NewSession(st, 1)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}

	g := NewGrid(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if g.IsFixedWall(C(x, y)) {
				g.Set(C(x, y), TileWall)
			}
		}
	}
	door := C(w-2, h-2)
	g.Set(door, TileBlock)

	s.grid = g
	s.door = Door{Pos: door, Hidden: true}
	s.enemies = nil
	s.powerUps = nil
	s.bombs = nil
	s.explosions = nil
	s.DrainEvents()
	return s
}

// detonateNow burns the fuse of every live bomb in one tick.
func detonateNow(s *Session) {
	s.Tick(s.settings.Fuse)
}

func countKind(events []Event, kind EventKind) int {
	n := 0
	for _, e := range events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}
