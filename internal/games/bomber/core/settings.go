package core

import (
	"fmt"
	"time"
)

// Settings holds every tunable of the simulation.
type Settings struct {
	Width  int
	Height int

	// BlockDensity is the probability that an open interior cell gets a block.
	BlockDensity float64
	// PocketSize keeps cells with both coordinates <= PocketSize free of blocks.
	PocketSize int
	// SpawnExclusion keeps enemies out of cells with both coordinates < SpawnExclusion.
	SpawnExclusion int

	Start       Coord
	StartBombs  int
	StartRadius int

	Fuse          time.Duration
	ExplosionFade time.Duration

	EnemyBase            int
	EnemyInitialCooldown time.Duration
	EnemyCooldownMin     time.Duration
	EnemyCooldownMax     time.Duration

	PowerUpChance   float64
	ExtraBombWeight float64 // Share of drops that are ExtraBomb, the rest ExtraBlast

	BlockPoints int
	EnemyPoints int

	// LevelClearDelay holds the LevelComplete phase before the next level is built.
	LevelClearDelay time.Duration

	// Bounds for the generation retry loops.
	LayoutAttempts int
	SpawnRetries   int
}

// DefaultSettings returns the classic 17x17 rules.
func DefaultSettings() Settings {
	return Settings{
		Width:                17,
		Height:               17,
		BlockDensity:         0.8,
		PocketSize:           2,
		SpawnExclusion:       4,
		Start:                C(1, 1),
		StartBombs:           1,
		StartRadius:          2,
		Fuse:                 3000 * time.Millisecond,
		ExplosionFade:        500 * time.Millisecond,
		EnemyBase:            4,
		EnemyInitialCooldown: 1000 * time.Millisecond,
		EnemyCooldownMin:     1000 * time.Millisecond,
		EnemyCooldownMax:     2000 * time.Millisecond,
		PowerUpChance:        0.3,
		ExtraBombWeight:      0.5,
		BlockPoints:          10,
		EnemyPoints:          100,
		LevelClearDelay:      0,
		LayoutAttempts:       5,
		SpawnRetries:         200,
	}
}

// Validate checks that a level can always be built from the settings.
func (s Settings) Validate() error {
	switch {
	case s.Width < 5 || s.Height < 5:
		return fmt.Errorf("%w: grid %dx%d is smaller than 5x5", ErrInvalidSettings, s.Width, s.Height)
	case s.Width%2 == 0 || s.Height%2 == 0:
		return fmt.Errorf("%w: grid %dx%d must have odd dimensions", ErrInvalidSettings, s.Width, s.Height)
	case s.PocketSize < 1 || s.PocketSize > s.Width-3 || s.PocketSize > s.Height-3:
		return fmt.Errorf("%w: start pocket %d does not fit the grid", ErrInvalidSettings, s.PocketSize)
	case s.Start.X < 1 || s.Start.Y < 1 || s.Start.X > s.PocketSize || s.Start.Y > s.PocketSize:
		return fmt.Errorf("%w: start %v must lie inside the start pocket", ErrInvalidSettings, s.Start)
	case s.Start.X%2 == 0 && s.Start.Y%2 == 0:
		return fmt.Errorf("%w: start %v is a wall cell", ErrInvalidSettings, s.Start)
	case s.SpawnExclusion < 0:
		return fmt.Errorf("%w: spawn exclusion must not be negative", ErrInvalidSettings)
	case s.StartBombs < 1 || s.StartRadius < 1:
		return fmt.Errorf("%w: start bombs and radius must be at least 1", ErrInvalidSettings)
	case s.BlockDensity < 0 || s.BlockDensity > 1:
		return fmt.Errorf("%w: block density %.2f outside [0,1]", ErrInvalidSettings, s.BlockDensity)
	case s.PowerUpChance < 0 || s.PowerUpChance > 1:
		return fmt.Errorf("%w: power-up chance %.2f outside [0,1]", ErrInvalidSettings, s.PowerUpChance)
	case s.ExtraBombWeight < 0 || s.ExtraBombWeight > 1:
		return fmt.Errorf("%w: extra bomb weight %.2f outside [0,1]", ErrInvalidSettings, s.ExtraBombWeight)
	case s.Fuse <= 0 || s.ExplosionFade <= 0:
		return fmt.Errorf("%w: fuse and explosion fade must be positive", ErrInvalidSettings)
	case s.EnemyBase < 0:
		return fmt.Errorf("%w: enemy base count must not be negative", ErrInvalidSettings)
	case s.EnemyCooldownMin <= 0 || s.EnemyCooldownMax < s.EnemyCooldownMin:
		return fmt.Errorf("%w: enemy cooldown range [%s,%s) is invalid", ErrInvalidSettings, s.EnemyCooldownMin, s.EnemyCooldownMax)
	case s.LevelClearDelay < 0:
		return fmt.Errorf("%w: level clear delay must not be negative", ErrInvalidSettings)
	case s.LayoutAttempts < 1 || s.SpawnRetries < 1:
		return fmt.Errorf("%w: retry bounds must be at least 1", ErrInvalidSettings)
	}
	return nil
}
