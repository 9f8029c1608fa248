package world

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/younwookim/portalcrawler/internal/domain/entity"
	"github.com/younwookim/portalcrawler/internal/infrastructure/config"
)

// CampaignOptions configures a run of consecutive levels
type CampaignOptions struct {
	Level  int
	Seed   int64
	Logger *log.Logger
}

// Campaign chains sessions: entering a portal loads the next level with the
// same player. One seeded RNG drives map choice, spawns and collision
// nudges so a run can be replayed from its inputs.
type Campaign struct {
	config *config.GameConfig
	loader *config.Loader
	rng    *rand.Rand
	seed   int64
	logger *log.Logger

	startLevel int
	session    *Session
}

// NewCampaign loads the first level
func NewCampaign(cfg *config.GameConfig, loader *config.Loader, opts CampaignOptions) (*Campaign, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	c := &Campaign{
		config:     cfg,
		loader:     loader,
		rng:        rand.New(rand.NewSource(opts.Seed)),
		seed:       opts.Seed,
		logger:     logger,
		startLevel: opts.Level,
	}
	if err := c.load(opts.Level, nil); err != nil {
		return nil, err
	}
	return c, nil
}

// Session returns the level being played
func (c *Campaign) Session() *Session { return c.session }

// Seed returns the seed the campaign started with
func (c *Campaign) Seed() int64 { return c.seed }

// Level returns the current level number
func (c *Campaign) Level() int { return c.session.Level() }

// NextLevel loads the following level and moves the player into it
func (c *Campaign) NextLevel() error {
	return c.load(c.session.Level()+1, c.session.Player())
}

// Restart begins again from the starting level with a fresh player
func (c *Campaign) Restart() error {
	return c.load(c.startLevel, nil)
}

func (c *Campaign) load(level int, player *entity.Player) error {
	m, err := LoadLevelMap(c.loader, c.config, level, c.rng)
	if err != nil {
		return fmt.Errorf("failed to load level %d: %w", level, err)
	}
	c.session = NewSession(c.config, m, Options{
		Level:  level,
		Player: player,
		Rng:    c.rng,
		Logger: c.logger,
	})
	return nil
}
