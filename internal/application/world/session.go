// Package world owns a running level: the actor list, the systems that
// act on it and the fixed per-tick update order.
package world

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/younwookim/portalcrawler/internal/application/system"
	"github.com/younwookim/portalcrawler/internal/domain/entity"
	"github.com/younwookim/portalcrawler/internal/infrastructure/config"
)

// Status is the outcome of a session so far
type Status int

const (
	StatusRunning Status = iota
	StatusPortalReached
	StatusGameOver
)

// String returns the string representation of the status
func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusPortalReached:
		return "portalReached"
	case StatusGameOver:
		return "gameOver"
	default:
		return "unknown"
	}
}

// PlayerID is the entity ID of the player in every session
const PlayerID entity.EntityID = 1

// Session simulates one level. The player is always the first actor.
type Session struct {
	config  *config.GameConfig
	level   int
	mapName string
	grid    *entity.TileGrid

	player  *entity.Player
	actors  []entity.Actor
	portals []*entity.Portal
	pending []*entity.Portal

	portalSpot    entity.TilePoint
	hasPortalSpot bool
	cleared       bool

	physics *system.PhysicsSystem
	combat  *system.CombatSystem
	ai      *system.EnemyAI
	effects *system.EffectManager
	input   *system.InputSystem

	events *system.EventLog
	rng    *rand.Rand
	logger *log.Logger

	status Status
	clock  time.Duration
	ticks  int
	nextID entity.EntityID
}

// Options configures a new session
type Options struct {
	Level int

	// Player carries progress between levels. A new player is created when nil.
	Player *entity.Player

	Rng    *rand.Rand
	Logger *log.Logger
}

// NewSession builds the level from map data and places every entity
func NewSession(cfg *config.GameConfig, m *config.MapData, opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	rng := opts.Rng
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	grid := system.BuildTileGrid(m, cfg.Maps)
	events := &system.EventLog{}
	combat := system.NewCombatSystem(cfg, events)
	effects := system.NewEffectManager(combat)

	s := &Session{
		config:  cfg,
		level:   opts.Level,
		mapName: m.Name,
		grid:    grid,
		physics: system.NewPhysicsSystem(&cfg.Physics, grid),
		combat:  combat,
		ai:      system.NewEnemyAI(&cfg.Enemy, combat, logger),
		effects: effects,
		input:   system.NewInputSystem(&cfg.Player, combat, effects, events),
		events:  events,
		rng:     rng,
		logger:  logger,
		nextID:  PlayerID + 1,
	}

	s.player = opts.Player
	if s.player == nil {
		s.player = combat.NewPlayer(PlayerID, 0, 0)
	}
	s.player.SetVelocity(0, 0)
	s.actors = append(s.actors, s.player)

	s.setupLevel()
	return s
}

// Tick advances the simulation by one frame
func (s *Session) Tick(in system.InputState, elapsed time.Duration) {
	if s.status != StatusRunning {
		return
	}
	s.clock += elapsed
	s.ticks++

	s.updateActors(in, elapsed)
	s.flushPending()

	s.effects.Update(elapsed, s.actors)

	s.updateInteractables()

	if s.player.IsDying() && s.player.IsRemovable() {
		s.status = StatusGameOver
		s.logger.Info("player died", "level", s.level, "ticks", s.ticks)
	}
}

// updateActors runs every actor in list order. Earlier actors are fully
// resolved before later ones move. Dead enemies are dropped in place.
func (s *Session) updateActors(in system.InputState, elapsed time.Duration) {
	now := s.clock
	kept := s.actors[:0]
	removed := false

	for _, a := range s.actors {
		switch a := a.(type) {
		case *entity.Player:
			s.input.UpdatePlayer(a, in, now, elapsed)
			s.physics.Step(&a.Body, a)
			if a.ConsumeLanding() {
				s.events.Emit(system.SoundEvent{Name: system.SoundLanding})
			}

		case *entity.Enemy:
			s.ai.Update(a, s.grid, now, elapsed)
			s.physics.Step(&a.Body, nil)
			system.ResolveBodies(&s.player.Body, &a.Body, s.rng)

			if a.IsDead() {
				s.logger.Debug("enemy removed", "enemy", a.ID())
				removed = true
				continue
			}
		}
		kept = append(kept, a)
	}

	clear(s.actors[len(kept):])
	s.actors = kept

	if removed && !s.cleared && s.enemyCount() == 0 {
		s.cleared = true
		s.logger.Info("level cleared", "level", s.level)
		s.queuePortal()
	}
}

func (s *Session) updateInteractables() {
	portal, ok := system.FirstOverlap(&s.player.Body, s.portals)
	if !ok || !portal.Trigger() {
		return
	}
	s.events.Emit(system.PortalEvent{Portal: portal.ID(), Entered: true})
	s.status = StatusPortalReached
	s.logger.Info("portal entered", "level", s.level, "ticks", s.ticks)
}

// queuePortal schedules the portal at the pre-chosen spot. It joins the
// world after the actor scan.
func (s *Session) queuePortal() {
	if !s.hasPortalSpot {
		s.logger.Warn("no ground spot for the portal", "map", s.mapName)
		return
	}
	s.pending = append(s.pending, s.newPortal(s.portalSpot))
}

func (s *Session) flushPending() {
	for _, p := range s.pending {
		s.portals = append(s.portals, p)
		s.events.Emit(system.PortalEvent{Portal: p.ID()})
		s.logger.Debug("portal spawned", "portal", p.ID(), "x", p.X, "y", p.Y)
	}
	clear(s.pending)
	s.pending = s.pending[:0]
}

func (s *Session) enemyCount() int {
	n := 0
	for _, a := range s.actors {
		if a.Kind() == entity.KindEnemy {
			n++
		}
	}
	return n
}

func (s *Session) allocID() entity.EntityID {
	id := s.nextID
	s.nextID++
	return id
}

// Player returns the player
func (s *Session) Player() *entity.Player { return s.player }

// Actors returns the live actors, player first (read-only)
func (s *Session) Actors() []entity.Actor { return s.actors }

// Enemies returns the live enemies in list order
func (s *Session) Enemies() []*entity.Enemy {
	var enemies []*entity.Enemy
	for _, a := range s.actors {
		if e, ok := a.(*entity.Enemy); ok {
			enemies = append(enemies, e)
		}
	}
	return enemies
}

// Portals returns the portals in the world (read-only)
func (s *Session) Portals() []*entity.Portal { return s.portals }

// Effects returns the live attack effects (read-only)
func (s *Session) Effects() []*entity.AttackEffect { return s.effects.Effects() }

// Grid returns the level's tile grid
func (s *Session) Grid() *entity.TileGrid { return s.grid }

// Level returns the level number
func (s *Session) Level() int { return s.level }

// MapName returns the name of the loaded map
func (s *Session) MapName() string { return s.mapName }

// Status returns the session outcome so far
func (s *Session) Status() Status { return s.status }

// Cleared returns true once every enemy has been removed
func (s *Session) Cleared() bool { return s.cleared }

// Clock returns the simulated time since the session started
func (s *Session) Clock() time.Duration { return s.clock }

// Ticks returns the number of simulated frames
func (s *Session) Ticks() int { return s.ticks }

// DrainEvents returns the events emitted since the last call
func (s *Session) DrainEvents() []system.Event { return s.events.Drain() }

// DetectionZone exposes an enemy's vision rectangle for the debug overlay
func (s *Session) DetectionZone(e *entity.Enemy) entity.Rect { return s.ai.DetectionZone(e) }

// AttackZone exposes an enemy's attack rectangle for the debug overlay
func (s *Session) AttackZone(e *entity.Enemy) entity.Rect { return s.ai.AttackZone(e) }
