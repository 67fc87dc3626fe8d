package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bomber/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration bomber would play with, after the config search
and the difficulty preset are applied. The output is valid YAML and can be
saved to ~/.bomber/configs/bomber.yaml as a starting point.

Search order:
  --config path
  ~/.bomber/configs/bomber.yaml
  ./configs/bomber.yaml
  built-in defaults

Examples:
  bomber config
  bomber config --difficulty hard > ~/.bomber/configs/bomber.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	cfg, src, err := loadConfig()
	exitOnError("loading config", err)

	data, err := config.Marshal(cfg)
	exitOnError("encoding config", err)

	fmt.Fprintf(os.Stderr, "# source: %s\n", src)
	os.Stdout.Write(data)
}
