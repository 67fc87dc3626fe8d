package core

// EventKind identifies a simulation event.
type EventKind int

const (
	EventBombPlaced EventKind = iota
	EventExplosion
	EventPowerUpCollected
	EventPlayerDied
	EventDoorOpened
	EventLevelAdvanced
)

func (k EventKind) String() string {
	switch k {
	case EventBombPlaced:
		return "bomb_placed"
	case EventExplosion:
		return "explosion"
	case EventPowerUpCollected:
		return "powerup_collected"
	case EventPlayerDied:
		return "player_died"
	case EventDoorOpened:
		return "door_opened"
	case EventLevelAdvanced:
		return "level_advanced"
	default:
		return "unknown"
	}
}

// Event is a notification for audio and UI collaborators.
// Only the fields relevant to Kind are set.
type Event struct {
	Kind    EventKind
	Tick    uint64
	Pos     Coord
	PowerUp PowerUpKind // EventPowerUpCollected
	Cells   int         // EventExplosion: number of affected cells
	Score   int         // Score after the event
	Level   int         // Level after the event
}

// eventQueue buffers events until the owner drains them.
type eventQueue struct {
	pending []Event
}

func (q *eventQueue) push(e Event) {
	q.pending = append(q.pending, e)
}

// drain returns the buffered events and empties the queue.
func (q *eventQueue) drain() []Event {
	if len(q.pending) == 0 {
		return nil
	}
	out := q.pending
	q.pending = nil
	return out
}
