package config

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the known presets in display order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}

// PresetNames returns the preset names joined with ", ".
func PresetNames() string {
	names := make([]string, len(Presets))
	for i, p := range Presets {
		names[i] = string(p)
	}
	return strings.Join(names, ", ")
}

// ParsePreset resolves a preset name. The empty string means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(name)))
	if p == "" {
		return DifficultyNormal, nil
	}
	if slices.Contains(Presets, p) {
		return p, nil
	}
	return "", fmt.Errorf("unknown difficulty %q (want one of %s)", name, PresetNames())
}

// ApplyPreset adjusts enemy count, block density and fuse for a preset.
// Normal leaves the loaded configuration untouched.
func ApplyPreset(cfg *BomberConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Enemies.Base = max(cfg.Enemies.Base-2, 0)
		cfg.Grid.BlockDensity = 0.7
		cfg.Bombs.Fuse = Duration(3500 * time.Millisecond)
	case DifficultyHard:
		cfg.Enemies.Base += 2
		cfg.Grid.BlockDensity = 0.85
		cfg.Bombs.Fuse = Duration(2500 * time.Millisecond)
	}
}
