package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-bomber/internal/games/bomber/core"
)

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("parse embedded defaults: %v", err)
	}

	if cfg != DefaultBomberConfig() {
		t.Errorf("embedded defaults = %+v, expected %+v", cfg, DefaultBomberConfig())
	}
}

func TestDefaultSettingsMatchCore(t *testing.T) {
	got := DefaultBomberConfig().Settings()
	expected := core.DefaultSettings()

	if got != expected {
		t.Errorf("Settings() = %+v, expected %+v", got, expected)
	}
}

func TestLoadCustomPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bomber.yaml")
	data := "grid:\n  width: 21\n  height: 15\nbombs:\n  fuse: 2s\nenemies:\n  cooldown_min: 800\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, src, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if src != SourceCustom {
		t.Errorf("source = %s, expected %s", src, SourceCustom)
	}
	if cfg.Grid.Width != 21 || cfg.Grid.Height != 15 {
		t.Errorf("grid = %dx%d, expected 21x15", cfg.Grid.Width, cfg.Grid.Height)
	}
	if cfg.Bombs.Fuse.Std() != 2*time.Second {
		t.Errorf("fuse = %v, expected 2s", cfg.Bombs.Fuse)
	}
	if cfg.Enemies.CooldownMin.Std() != 800*time.Millisecond {
		t.Errorf("cooldown_min = %v, expected 800ms", cfg.Enemies.CooldownMin)
	}
	// Untouched keys keep their defaults
	if cfg.Scoring.Enemy != 100 {
		t.Errorf("scoring.enemy = %d, expected 100", cfg.Scoring.Enemy)
	}
}

func TestLoadCustomErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"bad yaml", "grid: [", "failed to parse"},
		{"bad duration", "bombs:\n  fuse: soon\n", "failed to parse"},
		{"even grid", "grid:\n  width: 16\n", "invalid config"},
		{"bad volume", "audio:\n  volume: 2\n", "invalid config"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, strings.ReplaceAll(tc.name, " ", "_")+".yaml")
			if err := os.WriteFile(path, []byte(tc.content), 0o600); err != nil {
				t.Fatalf("write config: %v", err)
			}

			_, _, err := Load(path)
			if err == nil {
				t.Fatal("Load succeeded, expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error = %q, expected it to contain %q", err, tc.want)
			}
		})
	}
}

func TestLoadInvalidWrapsSettingsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bomber.yaml")
	if err := os.WriteFile(path, []byte("player:\n  start_radius: 0\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, _, err := Load(path)
	if !errors.Is(err, core.ErrInvalidSettings) {
		t.Errorf("error = %v, expected it to wrap ErrInvalidSettings", err)
	}
}

func TestLoadMissingCustomFile(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error = %v, expected os.ErrNotExist", err)
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	work := t.TempDir()
	t.Chdir(work)

	// Nothing on disk: embedded defaults
	_, src, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if src != SourceEmbedded {
		t.Errorf("source = %s, expected %s", src, SourceEmbedded)
	}

	// Local file beats embedded
	writeFile(t, filepath.Join(work, "configs", "bomber.yaml"), "scoring:\n  block: 20\n")
	cfg, src, _ := Load("")
	if src != SourceLocal || cfg.Scoring.Block != 20 {
		t.Errorf("got source %s block %d, expected local with 20", src, cfg.Scoring.Block)
	}

	// User file beats local
	writeFile(t, filepath.Join(home, ".bomber", "configs", "bomber.yaml"), "scoring:\n  block: 30\n")
	cfg, src, _ = Load("")
	if src != SourceUser || cfg.Scoring.Block != 30 {
		t.Errorf("got source %s block %d, expected user with 30", src, cfg.Scoring.Block)
	}

	// A broken user file is skipped
	writeFile(t, filepath.Join(home, ".bomber", "configs", "bomber.yaml"), "grid:\n  width: 4\n")
	_, src, _ = Load("")
	if src != SourceLocal {
		t.Errorf("source = %s, expected %s", src, SourceLocal)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestMarshalWritesDurationStrings(t *testing.T) {
	data, err := Marshal(DefaultBomberConfig())
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	out := string(data)
	for _, want := range []string{"fuse: 3s", "explosion_fade: 500ms", "cooldown_max: 2s"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	var back BomberConfig
	if err := yaml.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if back != DefaultBomberConfig() {
		t.Errorf("decoded config = %+v, expected defaults", back)
	}
}

func TestDurationRejectsNonScalar(t *testing.T) {
	var cfg BomberConfig
	err := yaml.Unmarshal([]byte("bombs:\n  fuse: [1, 2]\n"), &cfg)
	if err == nil {
		t.Fatal("expected error for sequence duration")
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		base    int
		density float64
		fuse    time.Duration
	}{
		{DifficultyEasy, 2, 0.7, 3500 * time.Millisecond},
		{DifficultyNormal, 4, 0.8, 3 * time.Second},
		{DifficultyHard, 6, 0.85, 2500 * time.Millisecond},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultBomberConfig()
			ApplyPreset(&cfg, tc.preset)

			if cfg.Enemies.Base != tc.base {
				t.Errorf("enemies.base = %d, expected %d", cfg.Enemies.Base, tc.base)
			}
			if cfg.Grid.BlockDensity != tc.density {
				t.Errorf("block_density = %v, expected %v", cfg.Grid.BlockDensity, tc.density)
			}
			if cfg.Bombs.Fuse.Std() != tc.fuse {
				t.Errorf("fuse = %v, expected %v", cfg.Bombs.Fuse, tc.fuse)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset config invalid: %v", err)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{" HARD ", DifficultyHard, false},
		{"nightmare", "", true},
	}

	for _, tc := range tests {
		got, err := ParsePreset(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParsePreset(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}

func TestParsePresetErrorListsPresets(t *testing.T) {
	_, err := ParsePreset("nightmare")
	if err == nil {
		t.Fatal("expected an error for an unknown preset")
	}
	for _, p := range Presets {
		if !strings.Contains(err.Error(), string(p)) {
			t.Errorf("error %q does not mention %q", err, p)
		}
	}
}
