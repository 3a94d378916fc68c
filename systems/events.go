package systems

import (
	"github.com/automoto/summit/world"
	"github.com/yohamta/donburi/features/events"
)

// EventKind identifies a gameplay moment.
type EventKind int

const (
	EventJump EventKind = iota
	EventWallJump
	EventDash
	EventLand
	EventDeath
	EventRespawn
	EventBerryCollected
	EventCrystalUsed
	EventCrystalRestored
	EventCheckpointActivated
	EventWon
	EventRestarted
)

var eventNames = [...]string{
	EventJump:                "jump",
	EventWallJump:            "wall_jump",
	EventDash:                "dash",
	EventLand:                "land",
	EventDeath:               "death",
	EventRespawn:             "respawn",
	EventBerryCollected:      "berry",
	EventCrystalUsed:         "crystal_used",
	EventCrystalRestored:     "crystal_restored",
	EventCheckpointActivated: "checkpoint",
	EventWon:                 "won",
	EventRestarted:           "restarted",
}

func (k EventKind) String() string {
	if int(k) < 0 || int(k) >= len(eventNames) {
		return "unknown"
	}
	return eventNames[k]
}

// GameEvent is published while a frame updates and delivered to subscribers
// when the frame loop processes events at the end of the tick.
type GameEvent struct {
	Kind EventKind
	X, Y float64 // where it happened, in level pixels
	ID   int     // checkpoint id for EventCheckpointActivated
}

var GameEvents = events.NewEventType[GameEvent]()

func publish(w *world.World, kind EventKind, x, y float64) {
	GameEvents.Publish(w.ECS, GameEvent{Kind: kind, X: x, Y: y})
}
