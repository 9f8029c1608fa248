// game runs the portal crawler platformer.
//
// Usage:
//
//	game play                - Open a window and play from the tutorial
//	game replay <file>       - Run a recording headless and print the outcome
//
// Global flags:
//
//	--config <dir>  - Directory holding game.yaml and the maps directory
//	--debug         - Verbose logging
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/younwookim/portalcrawler/internal/infrastructure/config"
)

var (
	// Global flags
	flagConfigDir string
	flagDebug     bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "game",
	Short: "Portal crawler - clear each level and take the portal",
	Long: `A side-scrolling platformer: fight through platform levels, clear
every enemy and step into the portal to reach the next level.

Examples:
  game play
  game play --level 3 --seed 42 --record run.json
  game replay run.json`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config", "", "Config directory (default: built-in config)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Verbose logging and debug overlay")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(replayCmd)
}

func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          "portalcrawler",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// loadConfig reads game.yaml from the config directory or the built-in defaults
func loadConfig(dir string) (*config.GameConfig, *config.Loader, error) {
	loader := config.NewDefaultLoader()
	if dir != "" {
		loader = config.NewLoader(dir)
	}

	cfg, err := loader.LoadGame()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, loader, nil
}
