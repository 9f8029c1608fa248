package system

import "github.com/younwookim/portalcrawler/internal/domain/entity"

// Event is something the simulation reports to presentation (sound,
// floating text, HUD). Events never feed back into the simulation.
type Event interface {
	isEvent()
}

// Sound names
const (
	SoundJump    = "jump"
	SoundSlash   = "slash"
	SoundLanding = "landing"
	SoundLevelUp = "levelUp"
)

// SoundEvent asks the audio layer to play a named sound
type SoundEvent struct {
	Name string
}

func (SoundEvent) isEvent() {}

// DamageEvent reports damage dealt to an entity
type DamageEvent struct {
	Target   entity.EntityID
	Kind     entity.Kind
	Amount   float64
	X, Y     float64 // where to show the number
	Physical bool
}

func (DamageEvent) isEvent() {}

// DeathEvent reports an entity starting to die
type DeathEvent struct {
	Target entity.EntityID
	Kind   entity.Kind
}

func (DeathEvent) isEvent() {}

// ExpEvent reports experience granted to the player
type ExpEvent struct {
	Amount float64
}

func (ExpEvent) isEvent() {}

// LevelUpEvent reports the player reaching a new level
type LevelUpEvent struct {
	Level int
}

func (LevelUpEvent) isEvent() {}

// PortalEvent reports a portal appearing or being entered
type PortalEvent struct {
	Portal  entity.EntityID
	Entered bool
}

func (PortalEvent) isEvent() {}

// EventSink receives events. Implementations must not block.
type EventSink interface {
	Emit(Event)
}

// EventLog collects events in order
type EventLog struct {
	events []Event
}

// Emit implements EventSink
func (l *EventLog) Emit(e Event) {
	l.events = append(l.events, e)
}

// Events returns the collected events
func (l *EventLog) Events() []Event {
	return l.events
}

// Drain returns the collected events and clears the log
func (l *EventLog) Drain() []Event {
	events := l.events
	l.events = nil
	return events
}

// Sounds returns the names of collected sound events
func (l *EventLog) Sounds() []string {
	var names []string
	for _, e := range l.events {
		if s, ok := e.(SoundEvent); ok {
			names = append(names, s.Name)
		}
	}
	return names
}

// Discard drops every event
type Discard struct{}

// Emit implements EventSink
func (Discard) Emit(Event) {}
