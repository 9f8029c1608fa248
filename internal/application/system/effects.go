package system

import (
	"time"

	"github.com/younwookim/portalcrawler/internal/domain/entity"
)

// EffectManager owns the live attack effects and resolves their hits
type EffectManager struct {
	effects []*entity.AttackEffect
	combat  *CombatSystem
}

// NewEffectManager creates an empty effect manager
func NewEffectManager(combat *CombatSystem) *EffectManager {
	return &EffectManager{
		effects: make([]*entity.AttackEffect, 0, 8),
		combat:  combat,
	}
}

// Add registers a new effect
func (m *EffectManager) Add(fx *entity.AttackEffect) {
	m.effects = append(m.effects, fx)
}

// Effects returns the live effects (read-only, for rendering)
func (m *EffectManager) Effects() []*entity.AttackEffect {
	return m.effects
}

// Len returns the number of live effects
func (m *EffectManager) Len() int {
	return len(m.effects)
}

// Clear drops every effect
func (m *EffectManager) Clear() {
	clear(m.effects)
	m.effects = m.effects[:0]
}

// Update advances every effect, removes the finished ones and applies
// damage from the rest to the actors they overlap
func (m *EffectManager) Update(elapsed time.Duration, actors []entity.Actor) {
	live := m.effects[:0]
	for _, fx := range m.effects {
		fx.Advance(elapsed)
		if !fx.Active() {
			continue
		}
		m.resolveHits(fx, actors)
		live = append(live, fx)
	}
	clear(m.effects[len(live):])
	m.effects = live
}

func (m *EffectManager) resolveHits(fx *entity.AttackEffect, actors []entity.Actor) {
	for _, a := range actors {
		if a.ID() == fx.Owner || a.Kind() != entity.KindEnemy {
			continue
		}
		// dying enemies are passed over without entering the hit set, so a
		// single-target effect stays available for a live enemy behind them
		if a.Combat().IsDying() || !fx.CanHit(a.ID()) {
			continue
		}
		if !PreciseCollision(&fx.Body, a.Physics()) {
			continue
		}

		m.combat.ApplyDamage(a, fx.PhysicalDamage, fx.MagicDamage)
		fx.RecordHit(a.ID())
		if fx.SingleTarget {
			return
		}
	}
}
