// internal/system/dispatch.go
package system

import (
	"slices"

	"github.com/WChurchill/qualified-immunity/internal/component"
	"github.com/WChurchill/qualified-immunity/internal/entity"
	"github.com/WChurchill/qualified-immunity/internal/event"
	"github.com/WChurchill/qualified-immunity/internal/types"
)

// dispatchOrder is the order in which class-specific rules claim contact
// pairs: hostiles first, then the defenders.
var dispatchOrder = append([]component.EntityClass{component.ClassHostile}, component.DefenderClasses...)

type classPair struct {
	a, b component.EntityClass
}

// claimedPairs have a class-specific rule and never fall through to the
// generic mutual despawn.
var claimedPairs = buildClaimedPairs()

func buildClaimedPairs() map[classPair]struct{} {
	pairs := map[classPair]struct{}{
		{component.ClassHostile, component.ClassHost}: {},
	}
	for _, defender := range component.DefenderClasses {
		pairs[classPair{defender, component.ClassHostile}] = struct{}{}
	}
	return pairs
}

func isClaimed(a, b component.EntityClass) bool {
	if _, ok := claimedPairs[classPair{a, b}]; ok {
		return true
	}
	_, ok := claimedPairs[classPair{b, a}]
	return ok
}

type pairKey [2]types.EntityID

func makePairKey(a, b types.EntityID) pairKey {
	if a > b {
		a, b = b, a
	}
	return pairKey{a, b}
}

// ContactEventSystem turns contact sets into classified collision events.
type ContactEventSystem struct {
	ecs   *entity.ECS
	queue *event.CollisionQueue
	seen  map[pairKey]struct{}
}

func NewContactEventSystem(ecs *entity.ECS, queue *event.CollisionQueue) *ContactEventSystem {
	return &ContactEventSystem{
		ecs:   ecs,
		queue: queue,
		seen:  make(map[pairKey]struct{}),
	}
}

// Update runs the class passes in priority order and then the generic pass.
// Each unordered pair yields at most one event.
func (s *ContactEventSystem) Update() {
	clear(s.seen)
	for _, class := range dispatchOrder {
		s.dispatchClass(class)
	}
	s.dispatchGeneric()
}

func (s *ContactEventSystem) dispatchClass(class component.EntityClass) {
	for _, id := range entity.SortedIDs(s.ecs.Colliders) {
		if s.ecs.ClassOf(id) != class {
			continue
		}
		for _, other := range s.ecs.Colliders[id].ContactIDs() {
			otherClass := s.ecs.ClassOf(other)
			if otherClass == class {
				continue
			}
			key := makePairKey(id, other)
			if _, done := s.seen[key]; done {
				continue
			}
			kind, ok := classRule(class, otherClass)
			if !ok {
				continue
			}
			s.seen[key] = struct{}{}
			s.queue.Push(event.CollisionEvent{Kind: kind, A: id, B: other})
		}
	}
}

// classRule returns the event kind produced when an entity of class touches
// one of other.
func classRule(class, other component.EntityClass) (event.CollisionKind, bool) {
	switch class {
	case component.ClassHostile:
		if other == component.ClassHost {
			return event.CollisionInfect, true
		}
	default:
		if other == component.ClassHostile && slices.Contains(component.DefenderClasses, class) {
			return event.CollisionDefend, true
		}
	}
	return 0, false
}

func (s *ContactEventSystem) dispatchGeneric() {
	for _, id := range entity.SortedIDs(s.ecs.DespawnOnContact) {
		col, ok := s.ecs.Colliders[id]
		if !ok {
			continue
		}
		class := s.ecs.ClassOf(id)
		for _, other := range col.ContactIDs() {
			if _, both := s.ecs.DespawnOnContact[other]; !both {
				continue
			}
			otherClass := s.ecs.ClassOf(other)
			// neutral entities have no capability class to share
			sameClass := otherClass == class && class != component.ClassNeutral
			if sameClass || isClaimed(class, otherClass) {
				continue
			}
			key := makePairKey(id, other)
			if _, done := s.seen[key]; done {
				continue
			}
			s.seen[key] = struct{}{}
			s.queue.Push(event.CollisionEvent{Kind: event.CollisionMutualDespawn, A: key[0], B: key[1]})
		}
	}
}
