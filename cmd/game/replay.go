package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/younwookim/portalcrawler/internal/application/replay"
	"github.com/younwookim/portalcrawler/internal/infrastructure/config"
)

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Run a recording headless and print the outcome",
	Long: `Play back a recording made with 'game play --record' without a window.
The same config and seed reproduce the same run.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, loader, err := loadConfig(flagConfigDir)
		if err != nil {
			return err
		}
		return replayFile(cmd.OutOrStdout(), args[0], cfg, loader, newLogger())
	},
}

func replayFile(w io.Writer, path string, cfg *config.GameConfig, loader *config.Loader, logger *log.Logger) error {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	data, err := replay.LoadReplay(path)
	if err != nil {
		return err
	}
	if data.Version != replay.FormatVersion {
		logger.Warn("recording format differs", "file", data.Version, "want", replay.FormatVersion)
	}

	res, err := replay.Run(data, cfg, loader, logger)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "frames:  %d/%d\n", res.Frames, len(data.Frames))
	fmt.Fprintf(w, "stage:   %d\n", res.Level)
	fmt.Fprintf(w, "status:  %s\n", res.Status)
	fmt.Fprintf(w, "player:  level %d, exp %.0f, health %.0f\n", res.PlayerLevel, res.Exp, res.Health)
	fmt.Fprintf(w, "time:    %s\n", res.Clock)
	return nil
}
