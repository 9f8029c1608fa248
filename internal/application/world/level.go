package world

import (
	"fmt"
	"math/rand"

	"github.com/younwookim/portalcrawler/internal/domain/entity"
	"github.com/younwookim/portalcrawler/internal/infrastructure/config"
)

// TutorialLevel is the level played from the tutorial map with fixed spots
const TutorialLevel = 0

var (
	tutorialPlayerSpot = entity.TilePoint{Col: 2, Row: 6}
	tutorialPortalSpot = entity.TilePoint{Col: 26, Row: 6}
)

// LoadLevelMap loads the tutorial map for level 0 and a random other map
// for every later level
func LoadLevelMap(loader *config.Loader, cfg *config.GameConfig, level int, rng *rand.Rand) (*config.MapData, error) {
	if level == TutorialLevel {
		return loader.LoadMap(cfg.Maps.Tutorial, cfg)
	}

	names, err := loader.MapNames(cfg.Maps)
	if err != nil {
		return nil, err
	}
	name, ok := config.PickMap(names, rng)
	if !ok {
		return nil, fmt.Errorf("no maps in %s: %w", cfg.Maps.Dir, config.ErrInvalidMap)
	}
	return loader.LoadMap(name, cfg)
}

// EnemyCount returns how many enemies a level asks for. Only the tutorial
// may have none.
func EnemyCount(level int) int {
	if level != TutorialLevel && level < 1 {
		return 1
	}
	return level
}

// setupLevel places the player, the enemies and the portal spot
func (s *Session) setupLevel() {
	padding := s.config.Maps.SpawnPadding
	ground := s.grid.SpawnCandidates(entity.TileGround, padding)
	platforms := s.grid.SpawnCandidates(entity.TilePlatform, padding)
	s.logger.Debug("spawn candidates", "map", s.mapName, "ground", len(ground), "platform", len(platforms))

	if s.level == TutorialLevel {
		s.placeOnTile(&s.player.Body, tutorialPlayerSpot)
	} else if spot, ok := s.pickSpot(ground); ok {
		s.placeOnTile(&s.player.Body, spot)
	} else {
		s.logger.Warn("no ground spot for the player", "map", s.mapName)
	}

	s.spawnEnemies(platforms)

	s.portalSpot, s.hasPortalSpot = s.pickSpot(ground)
	switch {
	case s.level == TutorialLevel:
		s.portalSpot, s.hasPortalSpot = tutorialPortalSpot, true
		s.queuePortal()
		s.flushPending()
	case s.enemyCount() == 0:
		// nothing to fight on this map
		s.cleared = true
		s.queuePortal()
		s.flushPending()
	}

	s.logger.Info("level ready",
		"level", s.level,
		"map", s.mapName,
		"enemies", s.enemyCount(),
		"player", fmt.Sprintf("%.0f,%.0f", s.player.X, s.player.Y),
	)
}

func (s *Session) spawnEnemies(candidates []entity.TilePoint) {
	if len(candidates) == 0 {
		s.logger.Debug("no platform spots for enemies", "map", s.mapName)
		return
	}

	n := min(EnemyCount(s.level), len(candidates))
	pool := append([]entity.TilePoint(nil), candidates...)
	for i := 0; i < n; i++ {
		idx := s.rng.Intn(len(pool))
		spot := pool[idx]
		pool = append(pool[:idx], pool[idx+1:]...)

		facing := entity.FacingRight
		if s.rng.Intn(2) == 0 {
			facing = entity.FacingLeft
		}

		e := s.combat.SpawnEnemy(s.allocID(), 0, 0, s.level, facing, s.player)
		s.placeOnTile(&e.Body, spot)
		s.actors = append(s.actors, e)
		s.logger.Debug("enemy spawned", "enemy", e.ID(), "col", spot.Col, "row", spot.Row, "facing", facing)
	}
}

func (s *Session) pickSpot(candidates []entity.TilePoint) (entity.TilePoint, bool) {
	if len(candidates) == 0 {
		return entity.TilePoint{}, false
	}
	return candidates[s.rng.Intn(len(candidates))], true
}

// placeOnTile puts the body's bottom on the bottom of the cell so it
// rests on the tile below
func (s *Session) placeOnTile(b *entity.Body, spot entity.TilePoint) {
	x := float64(spot.Col * s.grid.TileWidth)
	y := float64((spot.Row+1)*s.grid.TileHeight) - b.H
	b.SetPosition(x, y)
}

func (s *Session) newPortal(spot entity.TilePoint) *entity.Portal {
	pc := s.config.Portal
	p := entity.NewPortal(s.allocID(), 0, 0, pc.Width, pc.Height, pc.Radius)
	s.placeOnTile(&p.Body, spot)
	return p
}
