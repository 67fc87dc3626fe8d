package core

import (
	"errors"
	"math/rand"
)

// Level is a freshly generated level: layout, hidden door and enemies.
type Level struct {
	Grid    *Grid
	Door    Door
	Enemies []Enemy
}

// LevelReport records how much relaxation a level build needed.
type LevelReport struct {
	Level          int
	LayoutAttempts int  // Random layout passes run
	ForcedBlock    bool // No pass produced a block; one was forced for the door
	RelaxedSpawns  int  // Enemies placed by the fallback scan instead of sampling
	ClearedBlocks  int  // Blocks removed to make room for enemies
	MissingEnemies int  // Enemies that could not be placed at all
}

// Relaxed reports whether any fallback path was taken.
func (r LevelReport) Relaxed() bool {
	return r.ForcedBlock || r.RelaxedSpawns > 0 || r.ClearedBlocks > 0 || r.MissingEnemies > 0
}

// EnemyCount returns how many enemies a level starts with.
func EnemyCount(s Settings, level int) int {
	return s.EnemyBase + level
}

// GenerateLayout runs a single random layout pass and returns the grid along
// with every cell that received a block.
func GenerateLayout(rng *rand.Rand, s Settings) (*Grid, []Coord) {
	g := NewGrid(s.Width, s.Height)
	var blocks []Coord

	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			c := C(x, y)
			if g.IsFixedWall(c) {
				g.Set(c, TileWall)
				continue
			}
			// Start pocket stays clear and does not consume randomness
			if inPocket(c, s.PocketSize) {
				continue
			}
			if rng.Float64() < s.BlockDensity {
				g.Set(c, TileBlock)
				blocks = append(blocks, c)
			}
		}
	}
	return g, blocks
}

// generateLayout runs one layout pass and hides the door under a random block.
func generateLayout(rng *rand.Rand, s Settings, level int) (*Grid, Door, error) {
	g, blocks := GenerateLayout(rng, s)
	if len(blocks) == 0 {
		return g, Door{}, &LevelGenerationError{Level: level, Stage: "layout", Attempts: 1, Err: ErrNoBlockCells}
	}
	pos := blocks[rng.Intn(len(blocks))]
	return g, Door{Pos: pos, Hidden: true}, nil
}

// BuildLevel generates a complete level. Degenerate random passes are retried
// up to s.LayoutAttempts times and then relaxed, so a level is always produced
// for settings that pass Validate.
func BuildLevel(rng *rand.Rand, s Settings, level int) (Level, LevelReport) {
	report := LevelReport{Level: level}

	var (
		grid *Grid
		door Door
		ok   bool
	)
	for attempt := 1; attempt <= s.LayoutAttempts && !ok; attempt++ {
		report.LayoutAttempts = attempt
		g, d, err := generateLayout(rng, s, level)
		grid = g
		var genErr *LevelGenerationError
		if errors.As(err, &genErr) {
			continue
		}
		door, ok = d, true
	}
	if !ok {
		// First open cell right of the pocket on row 1; Validate guarantees it exists
		forced := C(s.PocketSize+1, 1)
		grid.Set(forced, TileBlock)
		door = Door{Pos: forced, Hidden: true}
		report.ForcedBlock = true
	}

	enemies := placeEnemies(rng, grid, door, s, level, &report)

	return Level{Grid: grid, Door: door, Enemies: enemies}, report
}

// placeEnemies spawns the level's enemies outside the start area.
func placeEnemies(rng *rand.Rand, g *Grid, door Door, s Settings, level int, report *LevelReport) []Enemy {
	count := EnemyCount(s, level)
	enemies := make([]Enemy, 0, count)
	occupied := make(map[Coord]bool, count)

	for range count {
		pos, err := sampleSpawn(rng, g, occupied, s, level)
		if err != nil {
			var cleared, placed bool
			pos, cleared, placed = relaxedSpawn(rng, g, door, occupied, s)
			if !placed {
				report.MissingEnemies++
				continue
			}
			report.RelaxedSpawns++
			if cleared {
				report.ClearedBlocks++
			}
		}
		occupied[pos] = true
		enemies = append(enemies, Enemy{
			Pos:      pos,
			Dir:      DirUp,
			Cooldown: s.EnemyInitialCooldown,
		})
	}
	return enemies
}

// sampleSpawn draws random interior cells until a free spawn cell turns up.
func sampleSpawn(rng *rand.Rand, g *Grid, occupied map[Coord]bool, s Settings, level int) (Coord, error) {
	for range s.SpawnRetries {
		c := C(rng.Intn(g.W-2)+1, rng.Intn(g.H-2)+1)
		if spawnable(g, c, s) && !occupied[c] {
			return c, nil
		}
	}
	return Coord{}, &LevelGenerationError{
		Level:    level,
		Stage:    "enemies",
		Attempts: s.SpawnRetries,
		Err:      ErrEnemyPlacement,
	}
}

// relaxedSpawn scans the grid instead of sampling. It prefers free cells,
// then shares an occupied cell, then clears a block that is not the door.
func relaxedSpawn(rng *rand.Rand, g *Grid, door Door, occupied map[Coord]bool, s Settings) (pos Coord, cleared bool, ok bool) {
	var free, taken, blocks []Coord
	for y := 1; y < g.H-1; y++ {
		for x := 1; x < g.W-1; x++ {
			c := C(x, y)
			if inSpawnExclusion(c, s.SpawnExclusion) {
				continue
			}
			switch {
			case g.At(c) == TileBlock && c != door.Pos:
				blocks = append(blocks, c)
			case !g.IsEmpty(c):
			case occupied[c]:
				taken = append(taken, c)
			default:
				free = append(free, c)
			}
		}
	}

	switch {
	case len(free) > 0:
		return free[rng.Intn(len(free))], false, true
	case len(taken) > 0:
		return taken[rng.Intn(len(taken))], false, true
	case len(blocks) > 0:
		c := blocks[rng.Intn(len(blocks))]
		g.Set(c, TileEmpty)
		return c, true, true
	}
	return Coord{}, false, false
}

func spawnable(g *Grid, c Coord, s Settings) bool {
	return g.IsEmpty(c) && !inSpawnExclusion(c, s.SpawnExclusion)
}

func inPocket(c Coord, size int) bool {
	return c.X <= size && c.Y <= size
}

func inSpawnExclusion(c Coord, size int) bool {
	return c.X < size && c.Y < size
}
