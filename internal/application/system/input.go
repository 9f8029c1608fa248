package system

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/portalcrawler/internal/domain/entity"
	"github.com/younwookim/portalcrawler/internal/infrastructure/config"
)

// InputState holds the buttons held during a tick
type InputState struct {
	Left   bool
	Right  bool
	Up     bool
	Attack bool
}

// ReadKeyboard reads the current keyboard state
func ReadKeyboard() InputState {
	return InputState{
		Left:   ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right:  ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Up:     ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW),
		Attack: ebiten.IsKeyPressed(ebiten.KeyZ) || ebiten.IsKeyPressed(ebiten.KeyJ),
	}
}

// InputSystem turns player input into movement, jumps and attacks
type InputSystem struct {
	config  *config.PlayerConfig
	combat  *CombatSystem
	effects *EffectManager
	sink    EventSink
}

// NewInputSystem creates a new input system
func NewInputSystem(cfg *config.PlayerConfig, combat *CombatSystem, effects *EffectManager, sink EventSink) *InputSystem {
	if sink == nil {
		sink = Discard{}
	}
	return &InputSystem{
		config:  cfg,
		combat:  combat,
		effects: effects,
		sink:    sink,
	}
}

// UpdatePlayer runs one tick of the player: animation state, input and
// integration. Input is ignored while attacking or dying.
func (s *InputSystem) UpdatePlayer(p *entity.Player, input InputState, now, elapsed time.Duration) {
	p.Advance(elapsed)

	if !p.IsDying() && !p.Attacking() {
		s.handleMovement(p, input)
		s.handleJump(p, input, now)
		s.handleAttack(p, input)
	}

	p.Integrate()
}

func (s *InputSystem) handleMovement(p *entity.Player, input InputState) {
	switch {
	case input.Left:
		p.Facing = entity.FacingLeft
		p.VX = -p.MoveSpeed
	case input.Right:
		p.Facing = entity.FacingRight
		p.VX = p.MoveSpeed
	default:
		p.VX = 0
	}
}

func (s *InputSystem) handleJump(p *entity.Player, input InputState, now time.Duration) {
	if input.Up && p.Jump(now) {
		s.sink.Emit(SoundEvent{Name: SoundJump})
	}
}

func (s *InputSystem) handleAttack(p *entity.Player, input InputState) {
	if !input.Attack || !p.StartAttack() {
		return
	}
	s.sink.Emit(SoundEvent{Name: SoundSlash})

	x := p.X + p.Facing.Sign()*s.config.AttackOffset
	fx := entity.NewAttackEffect(p.ID(), x, p.Y, p.Facing, p.PhysicalDamage, p.MagicDamage, s.combat.EffectStats())
	s.effects.Add(fx)
}
