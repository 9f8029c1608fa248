package replay

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/younwookim/portalcrawler/internal/application/world"
	"github.com/younwookim/portalcrawler/internal/infrastructure/config"
)

// Result summarizes a headless replay
type Result struct {
	Frames      int
	Level       int
	Status      world.Status
	PlayerLevel int
	Exp         float64
	Health      float64
	Clock       time.Duration
}

// Run plays the recorded inputs through a campaign without a window.
// Levels advance when a portal is reached, as in the playing scene.
func Run(data *ReplayData, cfg *config.GameConfig, loader *config.Loader, logger *log.Logger) (Result, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	camp, err := world.NewCampaign(cfg, loader, world.CampaignOptions{
		Level:  data.Level,
		Seed:   data.Seed,
		Logger: logger,
	})
	if err != nil {
		return Result{}, err
	}

	r := NewReplayer(*data)
	elapsed := cfg.Display.FrameDuration()
	var clock time.Duration

	for {
		in, ok := r.GetInput()
		if !ok {
			break
		}

		s := camp.Session()
		s.Tick(in, elapsed)
		clock += elapsed

		if s.Status() == world.StatusGameOver {
			break
		}
		if s.Status() == world.StatusPortalReached {
			if err := camp.NextLevel(); err != nil {
				return Result{}, fmt.Errorf("replay frame %d: %w", r.CurrentFrame(), err)
			}
		}
	}

	s := camp.Session()
	p := s.Player()
	res := Result{
		Frames:      r.CurrentFrame(),
		Level:       s.Level(),
		Status:      s.Status(),
		PlayerLevel: p.Level,
		Exp:         p.Exp,
		Health:      p.Health,
		Clock:       clock,
	}
	logger.Info("replay finished", "frames", res.Frames, "level", res.Level, "status", res.Status)
	return res, nil
}
