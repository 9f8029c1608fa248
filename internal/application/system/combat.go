package system

import (
	"math"

	"github.com/younwookim/portalcrawler/internal/domain/entity"
	"github.com/younwookim/portalcrawler/internal/infrastructure/config"
)

// Per-level stat multipliers for spawned enemies
const (
	enemyHealthPerLevel = 3.0
	enemyDamagePerLevel = 0.1
	enemyGoldPerLevel   = 0.5
	enemyExpPerLevel    = 0.2
)

// CombatSystem builds combatants from config and applies damage
type CombatSystem struct {
	config *config.GameConfig
	sink   EventSink
}

// NewCombatSystem creates a new combat system
func NewCombatSystem(cfg *config.GameConfig, sink EventSink) *CombatSystem {
	if sink == nil {
		sink = Discard{}
	}
	return &CombatSystem{
		config: cfg,
		sink:   sink,
	}
}

// ApplyDamage damages target and reports the outcome. Damage to an
// entity that is already dying is ignored and reports nothing.
func (s *CombatSystem) ApplyDamage(target entity.Actor, physical, magic float64) entity.DamageResult {
	if target.Combat().IsDying() {
		return entity.DamageResult{}
	}

	res := target.TakeDamage(physical, magic)
	body := target.Physics()
	s.sink.Emit(DamageEvent{
		Target:   target.ID(),
		Kind:     target.Kind(),
		Amount:   res.Dealt,
		X:        body.CenterX(),
		Y:        body.Y,
		Physical: physical > 0,
	})

	if !res.Died {
		return res
	}

	s.sink.Emit(DeathEvent{Target: target.ID(), Kind: target.Kind()})
	if res.Exp > 0 {
		s.sink.Emit(ExpEvent{Amount: res.Exp})
	}
	for i := 0; i < res.LevelUps; i++ {
		s.sink.Emit(SoundEvent{Name: SoundLevelUp})
		s.sink.Emit(LevelUpEvent{Level: res.Level - res.LevelUps + i + 1})
	}
	return res
}

// PlayerStats returns the starting stats for a new player
func (s *CombatSystem) PlayerStats() entity.PlayerStats {
	p := s.config.Player
	return entity.PlayerStats{
		Width:          p.Width,
		Height:         p.Height,
		Radius:         p.Radius,
		MaxHealth:      p.MaxHealth,
		MaxMana:        p.MaxMana,
		PhysicalDamage: p.PhysicalDamage,
		MagicDamage:    p.MagicDamage,
		MoveSpeed:      p.MoveSpeed,
		JumpStrength:   p.JumpStrength + s.config.Physics.Gravity,
		JumpCooldown:   p.JumpCooldown(),
		ExpBase:        p.ExpBase,
		ExpRequired:    p.ExpRequired,
	}
}

// NewPlayer creates the player from config
func (s *CombatSystem) NewPlayer(id entity.EntityID, x, y float64) *entity.Player {
	p := entity.NewPlayer(id, x, y, s.PlayerStats())
	p.Invincible = s.config.Player.Invincible
	return p
}

// EnemyStats returns the stats of an enemy spawned on the given level
func (s *CombatSystem) EnemyStats(level int) entity.EnemyStats {
	e := s.config.Enemy
	return entity.EnemyStats{
		Width:          e.Width,
		Height:         e.Height,
		Radius:         e.Radius,
		MaxHealth:      levelModifier(level, enemyHealthPerLevel),
		PhysicalDamage: levelModifier(level, enemyDamagePerLevel),
		MagicDamage:    levelModifier(level, enemyDamagePerLevel),
		MoveSpeed:      e.MoveSpeed,
		AttackCooldown: e.AttackCooldown(),
		Exp:            float64(levelModifierInt(level, enemyExpPerLevel)),
		Gold:           levelModifierInt(level, enemyGoldPerLevel),
	}
}

// SpawnEnemy creates an enemy scaled to the level
func (s *CombatSystem) SpawnEnemy(id entity.EntityID, x, y float64, level int, facing entity.Facing, target *entity.Player) *entity.Enemy {
	return entity.NewEnemy(id, x, y, s.EnemyStats(level), facing, target)
}

// EffectStats returns the melee effect stats
func (s *CombatSystem) EffectStats() entity.EffectStats {
	e := s.config.Effect
	return entity.EffectStats{
		Width:         e.Width,
		Height:        e.Height,
		Radius:        e.Radius,
		Frames:        e.Frames,
		FrameDuration: e.FrameDuration(),
		SingleTarget:  e.SingleTarget,
	}
}

func levelModifier(level int, mod float64) float64 {
	return math.Max(1, float64(level)*mod)
}

func levelModifierInt(level int, mod float64) int {
	total := int(math.Floor(float64(level) * mod))
	if total < 1 {
		return 1
	}
	return total
}
