package entity

import "time"

// EffectStats describes the hitbox and timing of an attack effect
type EffectStats struct {
	Width, Height float64
	Radius        float64
	Frames        int
	FrameDuration time.Duration
	SingleTarget  bool
}

// AttackEffect is a short-lived hitbox that damages enemies it overlaps.
// A multi-target effect hits each enemy at most once; a single-target
// effect hits one enemy and then hides.
type AttackEffect struct {
	Body

	Owner          EntityID
	Facing         Facing
	PhysicalDamage float64
	MagicDamage    float64
	SingleTarget   bool
	Anim           Animation

	hit     map[EntityID]struct{}
	hasHit  bool
	visible bool
	active  bool
}

// NewAttackEffect creates an active effect and starts its animation
func NewAttackEffect(owner EntityID, x, y float64, facing Facing, physical, magic float64, stats EffectStats) *AttackEffect {
	e := &AttackEffect{
		Body:           Body{X: x, Y: y, W: stats.Width, H: stats.Height, Radius: stats.Radius},
		Owner:          owner,
		Facing:         facing,
		PhysicalDamage: physical,
		MagicDamage:    magic,
		SingleTarget:   stats.SingleTarget,
		Anim:           NewFrameClock(stats.Frames, stats.FrameDuration, false),
		hit:            make(map[EntityID]struct{}),
		visible:        true,
		active:         true,
	}
	e.Anim.Start()
	return e
}

// Active returns false once the animation has finished
func (e *AttackEffect) Active() bool { return e.active }

// Visible returns false after a single-target effect has hit
func (e *AttackEffect) Visible() bool { return e.visible }

// HasHit returns true after a single-target effect has hit
func (e *AttackEffect) HasHit() bool { return e.hasHit }

// AlreadyHit reports whether the target was damaged by this effect
func (e *AttackEffect) AlreadyHit(id EntityID) bool {
	_, ok := e.hit[id]
	return ok
}

// HitCount returns the number of distinct targets damaged
func (e *AttackEffect) HitCount() int {
	if e.SingleTarget && e.hasHit {
		return 1
	}
	return len(e.hit)
}

// Advance moves the animation forward and deactivates the effect
// once it has played through
func (e *AttackEffect) Advance(elapsed time.Duration) {
	if !e.active {
		return
	}
	e.Anim.Update(elapsed)
	if e.Anim.HasLooped() {
		e.active = false
	}
}

// CanHit reports whether the effect may still damage the target
func (e *AttackEffect) CanHit(id EntityID) bool {
	if !e.active {
		return false
	}
	if e.SingleTarget {
		return !e.hasHit
	}
	return !e.AlreadyHit(id)
}

// RecordHit marks the target as damaged
func (e *AttackEffect) RecordHit(id EntityID) {
	e.hit[id] = struct{}{}
	if e.SingleTarget {
		e.hasHit = true
		e.visible = false
	}
}
