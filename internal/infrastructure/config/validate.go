package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned for game settings the simulation cannot run with
var ErrInvalidConfig = errors.New("invalid config")

type positiveField struct {
	name  string
	value float64
}

// Validate checks the sizes, radii and timings that must be positive.
// A zero radius would make bodies unable to collide.
func (c *GameConfig) Validate() error {
	fields := []positiveField{
		{"physics.gravity", c.Physics.Gravity},
		{"physics.gravityLimit", c.Physics.GravityLimit},

		{"player.width", c.Player.Width},
		{"player.height", c.Player.Height},
		{"player.radius", c.Player.Radius},

		{"enemy.width", c.Enemy.Width},
		{"enemy.height", c.Enemy.Height},
		{"enemy.radius", c.Enemy.Radius},
		{"enemy.attackCooldownMs", float64(c.Enemy.AttackCooldownMs)},

		{"effect.width", c.Effect.Width},
		{"effect.height", c.Effect.Height},
		{"effect.radius", c.Effect.Radius},
		{"effect.frames", float64(c.Effect.Frames)},
		{"effect.frameMs", float64(c.Effect.FrameMs)},

		{"portal.width", c.Portal.Width},
		{"portal.height", c.Portal.Height},
		{"portal.radius", c.Portal.Radius},
	}

	var errs []error
	for _, f := range fields {
		if f.value <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v: %w", f.name, f.value, ErrInvalidConfig))
		}
	}
	return errors.Join(errs...)
}
