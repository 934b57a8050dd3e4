// internal/event/queue.go
package event

import "github.com/WChurchill/qualified-immunity/internal/types"

// CollisionKind is the semantic meaning of a contact pair.
type CollisionKind int

const (
	// CollisionMutualDespawn: both participants carry DespawnOnContact.
	CollisionMutualDespawn CollisionKind = iota
	// CollisionInfect: A is a hostile, B is a host.
	CollisionInfect
	// CollisionDefend: A is a player or ally, B is a hostile.
	CollisionDefend
)

func (k CollisionKind) String() string {
	switch k {
	case CollisionMutualDespawn:
		return "mutual-despawn"
	case CollisionInfect:
		return "infect"
	case CollisionDefend:
		return "defend"
	default:
		return "unknown"
	}
}

// CollisionEvent is one classified contact pair.
type CollisionEvent struct {
	Kind CollisionKind
	A, B types.EntityID
}

// CollisionQueue is a one-tick queue. The contact event system fills it and the
// encounter system drains it exactly once per tick.
type CollisionQueue struct {
	events []CollisionEvent
}

func NewCollisionQueue() *CollisionQueue {
	return &CollisionQueue{events: make([]CollisionEvent, 0, 32)}
}

func (q *CollisionQueue) Push(e CollisionEvent) {
	q.events = append(q.events, e)
}

func (q *CollisionQueue) Len() int {
	return len(q.events)
}

// Drain returns the queued events in push order and empties the queue.
func (q *CollisionQueue) Drain() []CollisionEvent {
	out := make([]CollisionEvent, len(q.events))
	copy(out, q.events)
	q.events = q.events[:0]
	return out
}
