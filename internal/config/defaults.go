package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/bomber.yaml
var defaultBomberYAML []byte

// DefaultBomberConfig returns the default bomber configuration.
func DefaultBomberConfig() BomberConfig {
	return BomberConfig{
		Grid: GridConfig{
			Width:          17,
			Height:         17,
			BlockDensity:   0.8,
			StartPocket:    2,
			SpawnExclusion: 4,
		},
		Player: PlayerConfig{
			StartX:      1,
			StartY:      1,
			StartBombs:  1,
			StartRadius: 2,
		},
		Bombs: BombConfig{
			Fuse:          Duration(3 * time.Second),
			ExplosionFade: Duration(500 * time.Millisecond),
		},
		Enemies: EnemyConfig{
			Base:            4,
			InitialCooldown: Duration(time.Second),
			CooldownMin:     Duration(time.Second),
			CooldownMax:     Duration(2 * time.Second),
		},
		PowerUps: PowerUpConfig{
			Chance:          0.3,
			ExtraBombWeight: 0.5,
		},
		Scoring: ScoringConfig{
			Block: 10,
			Enemy: 100,
		},
		Level: LevelConfig{
			ClearDelay:     0,
			LayoutAttempts: 5,
			SpawnRetries:   200,
		},
		Audio: AudioConfig{
			Enabled: false,
			Volume:  0.3,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultBomberYAML
}
