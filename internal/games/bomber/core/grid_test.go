package core

import "testing"

func TestGridAtOutOfBoundsIsWall(t *testing.T) {
	g := NewGrid(5, 5)

	tests := []Coord{C(-1, 0), C(0, -1), C(5, 0), C(0, 5)}
	for _, c := range tests {
		if got := g.At(c); got != TileWall {
			t.Errorf("At(%v): got %v, expected wall", c, got)
		}
		if g.IsEmpty(c) {
			t.Errorf("IsEmpty(%v): got true, expected false", c)
		}
	}
}

func TestGridSetIgnoresOutOfBounds(t *testing.T) {
	g := NewGrid(5, 5)
	g.Set(C(10, 10), TileBlock)

	if got := g.Count(TileBlock); got != 0 {
		t.Errorf("got %d blocks, expected 0", got)
	}
}

func TestGridFixedWalls(t *testing.T) {
	g := NewGrid(7, 7)

	tests := []struct {
		c    Coord
		want bool
	}{
		{C(0, 3), true},
		{C(6, 3), true},
		{C(3, 0), true},
		{C(2, 2), true},
		{C(4, 2), true},
		{C(1, 1), false},
		{C(2, 1), false},
		{C(3, 3), false},
	}
	for _, tt := range tests {
		if got := g.IsFixedWall(tt.c); got != tt.want {
			t.Errorf("IsFixedWall(%v): got %v, expected %v", tt.c, got, tt.want)
		}
	}
}

func TestGridCloneIsIndependent(t *testing.T) {
	g := NewGrid(5, 5)
	g.Set(C(1, 1), TileBlock)

	clone := g.Clone()
	g.Set(C(1, 1), TileEmpty)

	if got := clone.At(C(1, 1)); got != TileBlock {
		t.Errorf("clone changed with the original: got %v, expected block", got)
	}
}
