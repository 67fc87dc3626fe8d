package core

import "time"

// Player is the single player-controlled character.
type Player struct {
	Pos         Coord
	Alive       bool
	MaxBombs    int
	BlastRadius int
}

// Bomb is a placed bomb counting down to detonation.
type Bomb struct {
	Pos    Coord
	Fuse   time.Duration
	Radius int     // Copied from the player at placement time
	owner  *Player // Back-reference for the live bomb limit
}

// Explosion is the fading blast left by a detonation.
type Explosion struct {
	Cells     []Coord
	Remaining time.Duration
}

// Contains reports whether the explosion covers c.
func (e *Explosion) Contains(c Coord) bool {
	for _, cell := range e.Cells {
		if cell == c {
			return true
		}
	}
	return false
}

// Enemy is a random-walking monster.
type Enemy struct {
	Pos      Coord
	Dir      Dir
	Cooldown time.Duration
}

// PowerUpKind identifies a pickup's effect.
type PowerUpKind int

const (
	PowerUpExtraBomb  PowerUpKind = iota // +1 max bombs
	PowerUpExtraBlast                    // +1 blast radius
)

func (k PowerUpKind) String() string {
	switch k {
	case PowerUpExtraBomb:
		return "extra_bomb"
	case PowerUpExtraBlast:
		return "extra_blast"
	default:
		return "unknown"
	}
}

// PowerUp is a pickup lying on a cell freed by an explosion.
type PowerUp struct {
	Pos  Coord
	Kind PowerUpKind
}

// Door is the level exit. It starts hidden under a block and becomes active
// once it is revealed and no enemies remain.
type Door struct {
	Pos    Coord
	Hidden bool
	Active bool
}
