package system

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/younwookim/portalcrawler/internal/domain/entity"
	"github.com/younwookim/portalcrawler/internal/infrastructure/config"
)

// patrolLookAhead is how far ahead of its leading edge a patrolling enemy looks
const patrolLookAhead = 2.0

// EnemyAI drives the PATROL / CHASE / ATTACK state machine
type EnemyAI struct {
	config *config.EnemyConfig
	combat *CombatSystem
	logger *log.Logger
}

// NewEnemyAI creates a new enemy AI
func NewEnemyAI(cfg *config.EnemyConfig, combat *CombatSystem, logger *log.Logger) *EnemyAI {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &EnemyAI{
		config: cfg,
		combat: combat,
		logger: logger,
	}
}

// Update runs one tick of the enemy: state transitions, velocity intent
// and integration. Dying enemies only play their death animation.
func (ai *EnemyAI) Update(e *entity.Enemy, grid *entity.TileGrid, now, elapsed time.Duration) {
	if e.IsDying() {
		e.AdvanceDeath(elapsed)
		return
	}

	ai.checkBackstab(e)

	switch e.State {
	case entity.EnemyPatrol:
		if ai.PlayerInDetectionZone(e) {
			e.State = entity.EnemyChase
			ai.logger.Debug("enemy spotted the player", "enemy", e.ID())
		}
		// Movement still follows patrol rules on the tick chase starts
		ai.patrol(e, grid)
		e.VX = e.Facing.Sign() * e.MoveSpeed
		e.Pose = entity.PoseWalk

	case entity.EnemyChase:
		if e.Attacking {
			e.AttackAnim.Start()
			e.Attacking = false
		}
		ai.chase(e)
		if ai.PlayerInAttackRange(e) {
			e.State = entity.EnemyAttack
		}
		if !ai.PlayerInDetectionZone(e) {
			e.State = entity.EnemyPatrol
			ai.logger.Debug("enemy lost the player", "enemy", e.ID())
		}

	case entity.EnemyAttack:
		if !ai.PlayerInAttackRange(e) {
			e.State = entity.EnemyChase
			e.Attacking = false
			e.AttackAnim.Start()
			return
		}
		ai.attack(e, now, elapsed)
	}

	e.Integrate()
}

// PlayerInDetectionZone reports whether the target's box intersects the
// zone in front of the enemy
func (ai *EnemyAI) PlayerInDetectionZone(e *entity.Enemy) bool {
	if e.Target == nil {
		return false
	}
	return ai.DetectionZone(e).Intersects(e.Target.Bounds())
}

// DetectionZone returns the vision rectangle on the enemy's facing side
func (ai *EnemyAI) DetectionZone(e *entity.Enemy) entity.Rect {
	width := ai.config.DetectionWidth
	x := e.X + e.W
	if e.Facing == entity.FacingLeft {
		x = e.X - width
	}
	return entity.Rect{X: x, Y: e.Y, W: width, H: e.H * ai.config.DetectionHeightScale}
}

// PlayerInAttackRange reports whether the target's box intersects the
// enemy's buffered box
func (ai *EnemyAI) PlayerInAttackRange(e *entity.Enemy) bool {
	if e.Target == nil {
		return false
	}
	return ai.AttackZone(e).Intersects(e.Target.Bounds())
}

// AttackZone returns the enemy's box grown by the attack buffer
func (ai *EnemyAI) AttackZone(e *entity.Enemy) entity.Rect {
	return e.Bounds().Expand(ai.config.AttackBuffer)
}

// checkBackstab turns the enemy around when the player touches it from behind
func (ai *EnemyAI) checkBackstab(e *entity.Enemy) {
	p := e.Target
	if p == nil || !PreciseCollision(&e.Body, &p.Body) {
		return
	}

	behind := (e.Facing == entity.FacingLeft && p.CenterX() > e.CenterX()) ||
		(e.Facing == entity.FacingRight && p.CenterX() < e.CenterX())
	if behind {
		e.Facing = e.Facing.Flip()
		e.State = entity.EnemyChase
		ai.logger.Debug("enemy backstabbed", "enemy", e.ID())
	}
}

// patrol reverses direction at a ledge or a wall
func (ai *EnemyAI) patrol(e *entity.Enemy, grid *entity.TileGrid) {
	aheadX := e.X + e.W + patrolLookAhead
	if e.Facing == entity.FacingLeft {
		aheadX = e.X - patrolLookAhead
	}
	col := grid.Col(aheadX)

	below, ok := grid.TileAt(col, grid.Row(e.Y+e.H+1))
	ledge := !ok || !below.Solid()

	ahead, ok := grid.TileAt(col, grid.Row(e.Y+e.H/2))
	wall := ok && ahead.Solid()

	if ledge || wall {
		e.Facing = e.Facing.Flip()
	}
}

func (ai *EnemyAI) chase(e *entity.Enemy) {
	p := e.Target
	if p == nil {
		return
	}

	if p.X < e.X {
		e.Facing = entity.FacingLeft
	} else {
		e.Facing = entity.FacingRight
	}
	e.VX = e.Facing.Sign() * e.MoveSpeed * ai.config.ChaseMultiplier
	e.Pose = entity.PoseWalk
}

func (ai *EnemyAI) attack(e *entity.Enemy, now, elapsed time.Duration) {
	e.VX = 0

	if !e.AttackReady(now) {
		e.Attacking = false
		e.Pose = entity.PoseIdle
		return
	}

	if !e.Attacking {
		e.AttackAnim.Start()
		e.Attacking = true
		e.Pose = entity.PoseAttack
	}

	e.AttackAnim.Update(elapsed)
	if e.AttackAnim.HasLooped() {
		ai.strike(e, now)
		e.Attacking = false
		e.AttackAnim.Start()
	}
}

// strike damages the target if the cooldown still allows it
func (ai *EnemyAI) strike(e *entity.Enemy, now time.Duration) {
	if e.Target == nil || e.IsDying() || !e.AttackReady(now) {
		return
	}
	ai.combat.ApplyDamage(e.Target, e.PhysicalDamage, e.MagicDamage)
	e.LastAttack = now
}
