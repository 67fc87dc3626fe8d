// bomber is a terminal bomb-placement arcade game.
//
// Usage:
//
//	bomber play              - Play in the terminal
//	bomber sim               - Run a seeded headless game with random intents
//	bomber config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible levels
//	--config <path>       - Use a custom config YAML
//	--difficulty <name>   - Difficulty preset: easy, normal, hard
//	--log-level <level>   - debug, info, warn, error
//	--log-file <path>     - Write logs to a file
//	--sound               - Enable sound effects
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bomber/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
	flagSound      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bomber",
	Short: "Bomber - Blast your way to the exit in your terminal",
	Long: `Bomber is a terminal arcade game: place bombs to clear blocks and
enemies, collect power-ups, and reach the exit door once every enemy is gone.

Available commands:
  play     - Play in the terminal
  sim      - Run a headless seeded game
  config   - Print the effective configuration

Examples:
  bomber play
  bomber play --difficulty hard --sound
  bomber sim --seed 42 --duration 2m
  bomber config --config ./my-bomber.yaml`,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: "+config.PresetNames())
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	pf.BoolVar(&flagSound, "sound", false, "Enable sound effects")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// exitOnError prints the error the way every command reports failures and exits.
func exitOnError(context string, err error) {
	if err == nil {
		return
	}
	if context != "" {
		fmt.Fprintf(os.Stderr, "Error %s: %v\n", context, err)
	} else {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(1)
}

// loadConfig resolves the configuration from the global flags.
func loadConfig() (config.BomberConfig, config.Source, error) {
	cfg, src, err := config.Load(flagConfig)
	if err != nil {
		return config.BomberConfig{}, src, err
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.BomberConfig{}, src, err
	}
	config.ApplyPreset(&cfg, preset)

	if flagSound {
		cfg.Audio.Enabled = true
	}
	if err := cfg.Validate(); err != nil {
		return config.BomberConfig{}, src, err
	}
	return cfg, src, nil
}

// newLogger builds the process logger. With no --log-file the logger writes to
// fallback, which play sets to io.Discard because the TUI owns the terminal.
// The returned close function is never nil.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(strings.ToLower(flagLogLevel))
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}

	w := fallback
	closeFn := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "bomber",
		Level:           level,
	})
	return logger, closeFn, nil
}
