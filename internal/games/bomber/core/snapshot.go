package core

import "time"

// BombView is the read-only view of a bomb.
type BombView struct {
	Pos    Coord
	Fuse   time.Duration
	Radius int
}

// Snapshot is a copy of the whole world at one tick. It shares no memory with
// the session, so renderers may keep it across ticks.
type Snapshot struct {
	Tick       uint64
	Phase      Phase
	Level      int
	Score      int
	Grid       Grid
	Player     Player
	Door       Door
	Bombs      []BombView
	Explosions []Explosion
	Enemies    []Enemy
	PowerUps   []PowerUp
}

// Alive reports whether the player is still alive.
func (s Snapshot) Alive() bool { return s.Player.Alive }

// Snapshot copies the current world state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:   s.tick,
		Phase:  s.phase,
		Level:  s.level,
		Score:  s.score,
		Grid:   s.grid.Clone(),
		Player: *s.player,
		Door:   s.door,
	}

	snap.Bombs = make([]BombView, len(s.bombs))
	for i, b := range s.bombs {
		snap.Bombs[i] = BombView{Pos: b.Pos, Fuse: b.Fuse, Radius: b.Radius}
	}

	snap.Explosions = make([]Explosion, len(s.explosions))
	for i, e := range s.explosions {
		cells := make([]Coord, len(e.Cells))
		copy(cells, e.Cells)
		snap.Explosions[i] = Explosion{Cells: cells, Remaining: e.Remaining}
	}

	snap.Enemies = append([]Enemy(nil), s.enemies...)
	snap.PowerUps = append([]PowerUp(nil), s.powerUps...)
	return snap
}

// BombAt reports whether a bomb sits on c.
func (s Snapshot) BombAt(c Coord) (BombView, bool) {
	for _, b := range s.Bombs {
		if b.Pos == c {
			return b, true
		}
	}
	return BombView{}, false
}

// EnemyAt reports whether an enemy stands on c.
func (s Snapshot) EnemyAt(c Coord) bool {
	for _, e := range s.Enemies {
		if e.Pos == c {
			return true
		}
	}
	return false
}

// PowerUpAt returns the pickup lying on c, if any.
func (s Snapshot) PowerUpAt(c Coord) (PowerUp, bool) {
	for _, p := range s.PowerUps {
		if p.Pos == c {
			return p, true
		}
	}
	return PowerUp{}, false
}

// ExplosionAt returns the remaining fade of the freshest explosion covering c.
func (s Snapshot) ExplosionAt(c Coord) (time.Duration, bool) {
	var best time.Duration
	found := false
	for i := range s.Explosions {
		e := &s.Explosions[i]
		if e.Contains(c) && e.Remaining > best {
			best = e.Remaining
			found = true
		}
	}
	return best, found
}
