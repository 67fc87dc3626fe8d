// Package config provides YAML-based game configuration loading and
// difficulty presets for the bomber game.
package config

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-bomber/internal/games/bomber/core"
)

// BomberConfig contains all configuration for the bomber game.
type BomberConfig struct {
	Grid     GridConfig    `yaml:"grid"`
	Player   PlayerConfig  `yaml:"player"`
	Bombs    BombConfig    `yaml:"bombs"`
	Enemies  EnemyConfig   `yaml:"enemies"`
	PowerUps PowerUpConfig `yaml:"powerups"`
	Scoring  ScoringConfig `yaml:"scoring"`
	Level    LevelConfig   `yaml:"level"`
	Audio    AudioConfig   `yaml:"audio"`
}

// GridConfig defines the level layout.
type GridConfig struct {
	Width          int     `yaml:"width"`
	Height         int     `yaml:"height"`
	BlockDensity   float64 `yaml:"block_density"`
	StartPocket    int     `yaml:"start_pocket"`    // Cells with x,y <= pocket stay clear
	SpawnExclusion int     `yaml:"spawn_exclusion"` // Enemies never spawn with x,y < exclusion
}

// PlayerConfig defines the player's starting stats.
type PlayerConfig struct {
	StartX      int `yaml:"start_x"`
	StartY      int `yaml:"start_y"`
	StartBombs  int `yaml:"start_bombs"`
	StartRadius int `yaml:"start_radius"`
}

// BombConfig defines bomb timing.
type BombConfig struct {
	Fuse          Duration `yaml:"fuse"`
	ExplosionFade Duration `yaml:"explosion_fade"`
}

// EnemyConfig defines enemy count and pacing.
type EnemyConfig struct {
	Base            int      `yaml:"base"` // Enemies on level N = base + N
	InitialCooldown Duration `yaml:"initial_cooldown"`
	CooldownMin     Duration `yaml:"cooldown_min"`
	CooldownMax     Duration `yaml:"cooldown_max"`
}

// PowerUpConfig defines the power-up drop table.
type PowerUpConfig struct {
	Chance          float64 `yaml:"chance"`
	ExtraBombWeight float64 `yaml:"extra_bomb_weight"`
}

// ScoringConfig defines points per destroyed object.
type ScoringConfig struct {
	Block int `yaml:"block"`
	Enemy int `yaml:"enemy"`
}

// LevelConfig defines level transitions and generation retry bounds.
type LevelConfig struct {
	ClearDelay     Duration `yaml:"clear_delay"`
	LayoutAttempts int      `yaml:"layout_attempts"`
	SpawnRetries   int      `yaml:"spawn_retries"`
}

// AudioConfig defines sound effect output.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // Gain in [0,1]
}

// Settings converts the configuration into simulation settings.
func (c BomberConfig) Settings() core.Settings {
	return core.Settings{
		Width:                c.Grid.Width,
		Height:               c.Grid.Height,
		BlockDensity:         c.Grid.BlockDensity,
		PocketSize:           c.Grid.StartPocket,
		SpawnExclusion:       c.Grid.SpawnExclusion,
		Start:                core.C(c.Player.StartX, c.Player.StartY),
		StartBombs:           c.Player.StartBombs,
		StartRadius:          c.Player.StartRadius,
		Fuse:                 c.Bombs.Fuse.Std(),
		ExplosionFade:        c.Bombs.ExplosionFade.Std(),
		EnemyBase:            c.Enemies.Base,
		EnemyInitialCooldown: c.Enemies.InitialCooldown.Std(),
		EnemyCooldownMin:     c.Enemies.CooldownMin.Std(),
		EnemyCooldownMax:     c.Enemies.CooldownMax.Std(),
		PowerUpChance:        c.PowerUps.Chance,
		ExtraBombWeight:      c.PowerUps.ExtraBombWeight,
		BlockPoints:          c.Scoring.Block,
		EnemyPoints:          c.Scoring.Enemy,
		LevelClearDelay:      c.Level.ClearDelay.Std(),
		LayoutAttempts:       c.Level.LayoutAttempts,
		SpawnRetries:         c.Level.SpawnRetries,
	}
}

// Validate checks the configuration for values the simulation cannot run with.
func (c BomberConfig) Validate() error {
	if err := c.Settings().Validate(); err != nil {
		return fmt.Errorf("bomber config: %w", err)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("bomber config: audio volume %.2f outside [0,1]", c.Audio.Volume)
	}
	return nil
}

// Duration is a time.Duration written as a Go duration string ("3s", "500ms")
// in YAML.
type Duration time.Duration

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

func (d Duration) String() string {
	return time.Duration(d).String()
}

// MarshalYAML writes the duration as a string.
func (d Duration) MarshalYAML() (any, error) {
	return d.String(), nil
}

// UnmarshalYAML accepts a duration string, or a bare integer of milliseconds.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: duration must be a scalar", node.Line)
	}

	var ms int64
	if node.ShortTag() == "!!int" {
		if err := node.Decode(&ms); err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		*d = Duration(time.Duration(ms) * time.Millisecond)
		return nil
	}

	parsed, err := time.ParseDuration(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: invalid duration %q: %w", node.Line, node.Value, err)
	}
	*d = Duration(parsed)
	return nil
}
