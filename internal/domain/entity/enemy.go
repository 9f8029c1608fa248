package entity

import "time"

// EnemyState is the AI state of an enemy
type EnemyState int

const (
	EnemyPatrol EnemyState = iota
	EnemyChase
	EnemyAttack
)

// String returns the string representation of the enemy state
func (s EnemyState) String() string {
	switch s {
	case EnemyPatrol:
		return "patrol"
	case EnemyChase:
		return "chase"
	case EnemyAttack:
		return "attack"
	default:
		return "unknown"
	}
}

// EnemyStats holds the values a new enemy starts with
type EnemyStats struct {
	Width, Height  float64
	Radius         float64
	MaxHealth      float64
	PhysicalDamage float64
	MagicDamage    float64
	MoveSpeed      float64
	AttackCooldown time.Duration
	Exp            float64
	Gold           int
}

// Enemy represents a hostile melee entity
type Enemy struct {
	Combatant

	id EntityID

	State          EnemyState
	Attacking      bool
	LastAttack     time.Duration
	AttackCooldown time.Duration
	MoveSpeed      float64
	Exp            float64
	Gold           int

	AttackAnim Animation

	// Target is the player this enemy hunts and rewards on death
	Target *Player
}

// NewEnemy creates a patrolling enemy
func NewEnemy(id EntityID, x, y float64, stats EnemyStats, facing Facing, target *Player) *Enemy {
	return &Enemy{
		Combatant: Combatant{
			Body:           Body{X: x, Y: y, W: stats.Width, H: stats.Height, Radius: stats.Radius},
			Health:         stats.MaxHealth,
			MaxHealth:      stats.MaxHealth,
			PhysicalDamage: stats.PhysicalDamage,
			MagicDamage:    stats.MagicDamage,
			Facing:         facing,
			Death:          NewFrameClock(8, 50*time.Millisecond, false),
		},
		id:             id,
		State:          EnemyPatrol,
		LastAttack:     Never,
		AttackCooldown: stats.AttackCooldown,
		MoveSpeed:      stats.MoveSpeed,
		Exp:            stats.Exp,
		Gold:           stats.Gold,
		AttackAnim:     NewFrameClock(6, 100*time.Millisecond, false),
		Target:         target,
	}
}

// ID returns the enemy's entity ID
func (e *Enemy) ID() EntityID { return e.id }

// Kind returns KindEnemy
func (e *Enemy) Kind() Kind { return KindEnemy }

// Physics returns the enemy's body
func (e *Enemy) Physics() *Body { return &e.Body }

// Combat returns the enemy's combat state
func (e *Enemy) Combat() *Combatant { return &e.Combatant }

// TakeDamage applies damage. The killing blow grants the enemy's
// experience to its target.
func (e *Enemy) TakeDamage(physical, magic float64) DamageResult {
	res := e.Combatant.TakeDamage(physical, magic)
	if !res.Died {
		return res
	}
	e.Attacking = false
	if e.Target != nil {
		res.Exp = e.Exp
		res.LevelUps = e.Target.AddExp(e.Exp)
		res.Level = e.Target.Level
	}
	return res
}

// AttackReady reports whether the cooldown has elapsed at now
func (e *Enemy) AttackReady(now time.Duration) bool {
	return now-e.LastAttack >= e.AttackCooldown
}

// IsDead returns true when the enemy can be removed from the world
func (e *Enemy) IsDead() bool {
	return e.IsRemovable()
}

// AdvanceDeath plays the death animation
func (e *Enemy) AdvanceDeath(elapsed time.Duration) {
	e.advanceDeath(elapsed)
}
