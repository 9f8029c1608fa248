package entity

import (
	"math"
	"time"
)

// Never is a timestamp far enough in the past that every cooldown has elapsed
const Never = time.Duration(math.MinInt64 / 2)

// LifeState is the one-way lifecycle shared by players and enemies
type LifeState int

const (
	LifeAlive LifeState = iota
	LifeDying
	LifeRemovable
)

// String returns the string representation of the life state
func (s LifeState) String() string {
	switch s {
	case LifeAlive:
		return "alive"
	case LifeDying:
		return "dying"
	case LifeRemovable:
		return "removable"
	default:
		return "unknown"
	}
}

// Pose names the presentation the renderer should pick
type Pose int

const (
	PoseIdle Pose = iota
	PoseWalk
	PoseJump
	PoseFall
	PoseAttack
	PoseHurt
	PoseDying
)

// DamageResult describes what a single damage application did
type DamageResult struct {
	Dealt float64
	Died  bool

	// Experience granted to the attributed player by a killing blow
	Exp      float64
	LevelUps int
	Level    int // player level after the grant
}

// Combatant holds the health and damage state shared by players and enemies.
// Once dying is set it never clears and health stops changing.
type Combatant struct {
	Body

	Health         float64
	MaxHealth      float64
	PhysicalDamage float64
	MagicDamage    float64

	// Armor is always zero for now
	PhysicalArmor float64
	MagicArmor    float64

	Facing Facing
	Pose   Pose
	Death  Animation

	dying bool
}

// TakeDamage subtracts armor-reduced damage and starts dying at zero health.
// It is a no-op once the entity is dying.
func (c *Combatant) TakeDamage(physical, magic float64) DamageResult {
	if c.dying {
		return DamageResult{}
	}

	dealt := math.Max(0, physical-c.PhysicalArmor) + math.Max(0, magic-c.MagicArmor)
	c.Health -= dealt
	if c.Health < 0 {
		c.Health = 0
	}

	if c.Health <= 0 {
		c.die()
		return DamageResult{Dealt: dealt, Died: true}
	}
	return DamageResult{Dealt: dealt}
}

func (c *Combatant) die() {
	c.dying = true
	c.SetVelocity(0, 0)
	c.Pose = PoseDying
	if c.Death != nil {
		c.Death.Start()
	}
}

// IsDying returns true once health reached zero
func (c *Combatant) IsDying() bool {
	return c.dying
}

// Life returns the lifecycle state
func (c *Combatant) Life() LifeState {
	if !c.dying {
		return LifeAlive
	}
	if c.Death == nil || c.Death.HasLooped() {
		return LifeRemovable
	}
	return LifeDying
}

// IsRemovable returns true when the death presentation has finished
func (c *Combatant) IsRemovable() bool {
	return c.Life() == LifeRemovable
}

// HealthRatio returns health as a 0..1 fraction (for health bars)
func (c *Combatant) HealthRatio() float64 {
	if c.MaxHealth <= 0 {
		return 0
	}
	return math.Max(0, c.Health/c.MaxHealth)
}

func (c *Combatant) advanceDeath(elapsed time.Duration) {
	if c.dying && c.Death != nil {
		c.Death.Update(elapsed)
	}
}

// Actor is an entity living in the session's active list
type Actor interface {
	ID() EntityID
	Kind() Kind
	Physics() *Body
	Combat() *Combatant
	TakeDamage(physical, magic float64) DamageResult
}
