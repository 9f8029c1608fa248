package entity

import "time"

// Collidable receives surface notifications from tile collision
type Collidable interface {
	SetOnGround()
	SetOnPlatform()
	SetFalling()
}

// PlayerStats holds the starting values for a new player
type PlayerStats struct {
	Width, Height  float64
	Radius         float64
	MaxHealth      float64
	MaxMana        float64
	PhysicalDamage float64
	MagicDamage    float64
	MoveSpeed      float64
	JumpStrength   float64
	JumpCooldown   time.Duration
	ExpBase        float64
	ExpRequired    float64 // experience needed for the first level-up
}

// Player represents the player character
type Player struct {
	Combatant

	id EntityID

	Level       int
	Exp         float64
	ExpRequired float64
	ExpBase     float64

	Mana    float64
	MaxMana float64

	MoveSpeed    float64
	JumpStrength float64
	JumpCooldown time.Duration
	LastJump     time.Duration

	Invincible bool
	AttackAnim Animation

	onGround   bool
	onPlatform bool
	falling    bool
	jumping    bool
	attacking  bool
	landed     bool
}

// NewPlayer creates a player at level 1 with full health and mana
func NewPlayer(id EntityID, x, y float64, stats PlayerStats) *Player {
	return &Player{
		Combatant: Combatant{
			Body:           Body{X: x, Y: y, W: stats.Width, H: stats.Height, Radius: stats.Radius},
			Health:         stats.MaxHealth,
			MaxHealth:      stats.MaxHealth,
			PhysicalDamage: stats.PhysicalDamage,
			MagicDamage:    stats.MagicDamage,
			Facing:         FacingRight,
			Death:          NewFrameClock(8, 150*time.Millisecond, false),
		},
		id:           id,
		Level:        1,
		ExpRequired:  stats.ExpRequired,
		ExpBase:      stats.ExpBase,
		Mana:         stats.MaxMana,
		MaxMana:      stats.MaxMana,
		MoveSpeed:    stats.MoveSpeed,
		JumpStrength: stats.JumpStrength,
		JumpCooldown: stats.JumpCooldown,
		LastJump:     Never,
		AttackAnim:   NewFrameClock(7, 100*time.Millisecond, false),
	}
}

// ID returns the player's entity ID
func (p *Player) ID() EntityID { return p.id }

// Kind returns KindPlayer
func (p *Player) Kind() Kind { return KindPlayer }

// Physics returns the player's body
func (p *Player) Physics() *Body { return &p.Body }

// Combat returns the player's combat state
func (p *Player) Combat() *Combatant { return &p.Combatant }

// TakeDamage applies damage. Invincible players still register the hit
// but lose no health.
func (p *Player) TakeDamage(physical, magic float64) DamageResult {
	if p.Invincible {
		physical, magic = 0, 0
	}
	res := p.Combatant.TakeDamage(physical, magic)
	if !p.IsDying() {
		p.Pose = PoseHurt
	}
	return res
}

// AddExp adds experience and applies every level-up it pays for.
// Returns the number of levels gained.
func (p *Player) AddExp(amount float64) int {
	p.Exp += amount
	gained := 0
	for p.ExpRequired > 0 && p.Exp >= p.ExpRequired {
		p.Level++
		p.Exp -= p.ExpRequired
		p.ExpRequired = float64(p.Level) * p.ExpBase
		gained++
	}
	return gained
}

// SetOnGround implements Collidable
func (p *Player) SetOnGround() {
	p.land()
	p.onGround = true
	p.onPlatform = false
}

// SetOnPlatform implements Collidable
func (p *Player) SetOnPlatform() {
	p.land()
	p.onPlatform = true
	p.onGround = false
}

// SetFalling implements Collidable
func (p *Player) SetFalling() {
	p.falling = true
	p.onGround = false
	p.onPlatform = false
}

func (p *Player) land() {
	if p.falling && !p.jumping {
		p.landed = true
	}
	p.falling = false
}

// ConsumeLanding returns true once after the player lands from a fall
func (p *Player) ConsumeLanding() bool {
	landed := p.landed
	p.landed = false
	return landed
}

// Supported returns true when standing on ground or a platform
func (p *Player) Supported() bool {
	return p.onGround || p.onPlatform
}

// OnGround returns true when standing on a ground tile
func (p *Player) OnGround() bool { return p.onGround }

// OnPlatform returns true when standing on a platform tile
func (p *Player) OnPlatform() bool { return p.onPlatform }

// Falling returns true while descending without support
func (p *Player) Falling() bool { return p.falling }

// Jumping returns true while rising from a jump
func (p *Player) Jumping() bool { return p.jumping }

// Attacking returns true while the attack animation plays
func (p *Player) Attacking() bool { return p.attacking }

// CanJump reports whether a jump may start at now
func (p *Player) CanJump(now time.Duration) bool {
	return p.Supported() && !p.jumping && !p.attacking && now-p.LastJump > p.JumpCooldown
}

// Jump lifts the player off its surface and applies the jump velocity once.
// Returns false when the jump is not allowed.
func (p *Player) Jump(now time.Duration) bool {
	if !p.CanJump(now) {
		return false
	}
	p.Y -= 2
	p.jumping = true
	p.onGround = false
	p.onPlatform = false
	p.falling = false
	if p.VY >= 0 {
		p.VY = -p.JumpStrength
	}
	p.LastJump = now
	p.Pose = PoseJump
	return true
}

// CanAttack reports whether a melee swing may start
func (p *Player) CanAttack() bool {
	return p.Supported() && !p.jumping && !p.falling && !p.attacking
}

// StartAttack stops horizontal movement and begins the swing.
// Returns false when the swing is not allowed.
func (p *Player) StartAttack() bool {
	if !p.CanAttack() {
		return false
	}
	p.attacking = true
	p.VX = 0
	p.Pose = PoseAttack
	if p.AttackAnim != nil {
		p.AttackAnim.Start()
	}
	return true
}

// Advance moves the player's animation state forward
func (p *Player) Advance(elapsed time.Duration) {
	if p.IsDying() {
		p.advanceDeath(elapsed)
		return
	}

	if p.attacking {
		if p.AttackAnim != nil {
			p.AttackAnim.Update(elapsed)
		}
		if p.AttackAnim == nil || p.AttackAnim.HasLooped() {
			p.attacking = false
		}
	}

	if p.jumping && p.VY >= 0 {
		p.jumping = false
		p.falling = true
	}

	switch {
	case p.attacking:
		p.Pose = PoseAttack
	case p.jumping:
		p.Pose = PoseJump
	case p.falling:
		p.Pose = PoseFall
	case p.VX != 0:
		p.Pose = PoseWalk
	default:
		p.Pose = PoseIdle
	}
}
