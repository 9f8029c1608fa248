package system

import (
	"github.com/younwookim/portalcrawler/internal/domain/entity"
	"github.com/younwookim/portalcrawler/internal/infrastructure/config"
)

// PhysicsSystem applies gravity and tile collision to bodies
type PhysicsSystem struct {
	config *config.PhysicsConfig
	grid   *entity.TileGrid
}

// NewPhysicsSystem creates a new physics system
func NewPhysicsSystem(cfg *config.PhysicsConfig, grid *entity.TileGrid) *PhysicsSystem {
	return &PhysicsSystem{
		config: cfg,
		grid:   grid,
	}
}

// Grid returns the level grid
func (s *PhysicsSystem) Grid() *entity.TileGrid {
	return s.grid
}

// ApplyGravity adds one tick of gravity. A velocity that would pass the
// limit drops back to a single gravity step instead of being clamped.
func (s *PhysicsSystem) ApplyGravity(b *entity.Body) {
	vy := b.VY + s.config.Gravity
	if vy > s.config.GravityLimit {
		vy = s.config.Gravity
	}
	b.VY = vy
}

// Step applies gravity then resolves the body against the grid.
// Returns the tiles collided with.
func (s *PhysicsSystem) Step(b *entity.Body, c entity.Collidable) []entity.Tile {
	s.ApplyGravity(b)
	return ResolveTiles(b, s.grid, c)
}
