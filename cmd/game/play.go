package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/younwookim/portalcrawler/internal/application/game"
	"github.com/younwookim/portalcrawler/internal/application/scene/playing"
	"github.com/younwookim/portalcrawler/internal/application/world"
)

var (
	flagSeed       int64
	flagRecord     string
	flagInvincible bool
	flagLevel      int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in a window",
	Long: `Open the game window and start at the given level.

Controls:
  Left/A, Right/D  - Move
  Up/W             - Jump
  Z/J              - Attack
  Esc              - Pause
  F5               - Save recording (with --record)
  Z/Space          - Restart (after game over)`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	playCmd.Flags().StringVar(&flagRecord, "record", "", "Record input to file (e.g. --record run.json)")
	playCmd.Flags().BoolVar(&flagInvincible, "invincible", false, "Player takes no damage")
	playCmd.Flags().IntVar(&flagLevel, "level", world.TutorialLevel, "Starting level (0 = tutorial)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	cfg, loader, err := loadConfig(flagConfigDir)
	if err != nil {
		return err
	}
	if flagInvincible {
		cfg.Player.Invincible = true
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	campaign, err := world.NewCampaign(cfg, loader, world.CampaignOptions{
		Level:  flagLevel,
		Seed:   seed,
		Logger: logger,
	})
	if err != nil {
		return err
	}
	logger.Info("starting", "level", flagLevel, "seed", seed)

	scene := playing.New(cfg, campaign, playing.Options{
		RecordPath: flagRecord,
		Debug:      flagDebug,
		Logger:     logger,
	})

	display := cfg.Display
	g := game.New(scene, display.ScreenWidth, display.ScreenHeight)
	return g.Run(game.WindowOptions{
		Title: display.Title,
		Scale: display.Scale,
		TPS:   display.Framerate,
	})
}
