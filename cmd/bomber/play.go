package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-bomber/internal/audio"
	"github.com/vovakirdan/tui-bomber/internal/core"
	"github.com/vovakirdan/tui-bomber/internal/games/bomber"
	"github.com/vovakirdan/tui-bomber/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Arrows/WASD/HJKL  - Move
  Space/X           - Place bomb
  P/Esc             - Pause
  R                 - Restart
  Tab               - Runs this session
  Ctrl+S            - Screenshot to ~/.bomber/screenshots
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - Fewer enemies, sparser blocks, longer fuse
  normal - The loaded configuration as is
  hard   - More enemies, denser blocks, shorter fuse

Examples:
  bomber play
  bomber play --difficulty easy
  bomber play --seed 42 --sound
  bomber play --log-file bomber.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, src, err := loadConfig()
	exitOnError("loading config", err)

	logger, closeLog, err := newLogger(io.Discard)
	exitOnError("", err)
	defer closeLog()
	logger.Debug("config loaded", "source", src)

	game, err := bomber.New(bomber.Options{Settings: cfg.Settings(), Logger: logger})
	exitOnError("creating game", err)

	if cfg.Audio.Enabled {
		player := audio.NewPlayer(cfg.Audio.Volume, logger)
		if err := player.Init(); err != nil {
			// Play on without sound
			logger.Warn("sound disabled", "err", err)
		} else {
			game.AddListener(player)
			defer player.Close()
		}
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	runs, err := tui.Run(game, runtime, tui.Options{Logger: logger})
	exitOnError("running game", err)

	for _, r := range runs {
		logger.Info("run", "session", r.ID, "score", r.Score, "level", r.Level, "played", r.Played)
	}
	if best, ok := tui.BestRun(runs); ok {
		fmt.Printf("Runs: %d  Best score: %d (level %d)\n", len(runs), best.Score, best.Level)
	}
}
