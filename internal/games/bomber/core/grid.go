// Package core holds the Bomber level simulation: grid generation, bombs and
// explosions, enemy movement and the rules tying them together.
// It has no platform or rendering dependencies.
package core

// Tile is the static content of a grid cell.
type Tile uint8

const (
	TileEmpty Tile = iota
	TileWall       // Indestructible
	TileBlock      // Destructible by explosions
)

func (t Tile) String() string {
	switch t {
	case TileEmpty:
		return "empty"
	case TileWall:
		return "wall"
	case TileBlock:
		return "block"
	default:
		return "unknown"
	}
}

// Grid is the level layout stored in row-major order: index = y*W + x.
type Grid struct {
	W     int
	H     int
	Tiles []Tile
}

// NewGrid creates a grid with every cell empty.
func NewGrid(w, h int) *Grid {
	return &Grid{
		W:     w,
		H:     h,
		Tiles: make([]Tile, w*h),
	}
}

func (g *Grid) index(c Coord) int {
	return c.Y*g.W + c.X
}

// InBounds returns true if the coordinate lies inside the grid.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.W && c.Y >= 0 && c.Y < g.H
}

// At returns the tile at c. Out-of-bounds cells read as Wall.
func (g *Grid) At(c Coord) Tile {
	if !g.InBounds(c) {
		return TileWall
	}
	return g.Tiles[g.index(c)]
}

// Set writes a tile. Out-of-bounds writes are ignored.
func (g *Grid) Set(c Coord, t Tile) {
	if g.InBounds(c) {
		g.Tiles[g.index(c)] = t
	}
}

// IsEmpty reports whether c is inside the grid and passable.
func (g *Grid) IsEmpty(c Coord) bool {
	return g.InBounds(c) && g.Tiles[g.index(c)] == TileEmpty
}

// IsFixedWall reports whether c is a structural wall position: the border or
// a cell where both coordinates are even.
func (g *Grid) IsFixedWall(c Coord) bool {
	if c.X == 0 || c.Y == 0 || c.X == g.W-1 || c.Y == g.H-1 {
		return true
	}
	return c.X%2 == 0 && c.Y%2 == 0
}

// Count returns the number of cells holding the given tile.
func (g *Grid) Count(t Tile) int {
	n := 0
	for _, tile := range g.Tiles {
		if tile == t {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() Grid {
	tiles := make([]Tile, len(g.Tiles))
	copy(tiles, g.Tiles)
	return Grid{W: g.W, H: g.H, Tiles: tiles}
}
