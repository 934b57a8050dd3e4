// internal/entity/ecs.go
package entity

import (
	"slices"

	"github.com/pkg/errors"

	"github.com/WChurchill/qualified-immunity/internal/component"
	"github.com/WChurchill/qualified-immunity/internal/event"
	"github.com/WChurchill/qualified-immunity/internal/types"
)

// ErrSpawnerCount is returned when the world does not hold exactly one wave spawner.
var ErrSpawnerCount = errors.New("expected exactly one wave spawner")

// ECS is the entity arena: a liveness set plus one map per component.
// Entity handles are never reused.
type ECS struct {
	GameTime float64
	NextID   types.EntityID

	entities map[types.EntityID]struct{}
	// destruction requests waiting for RemoveMarkedEntities, in request order
	toDestroy     []types.EntityID
	markedDestroy map[types.EntityID]struct{}
	// lifecycle events recorded since the last DrainEvents
	events []event.Event

	Transforms       map[types.EntityID]*component.Transform
	Velocities       map[types.EntityID]*component.Velocity
	Speeds           map[types.EntityID]*component.Speed
	TurnRates        map[types.EntityID]*component.TurnRate
	Directionals     map[types.EntityID]*component.Directional
	Colliders        map[types.EntityID]*component.Collider
	Targetings       map[types.EntityID]*component.Targeting
	SeekHostiles     map[types.EntityID]*component.SeekHostile
	Hostiles         map[types.EntityID]*component.Hostile
	VirusAttached    map[types.EntityID]*component.VirusAttached
	DespawnOnContact map[types.EntityID]*component.DespawnOnContact
	Hosts            map[types.EntityID]*component.Host
	Infections       map[types.EntityID]*component.Infected
	Attachments      map[types.EntityID]*component.Attachment
	Players          map[types.EntityID]*component.Player
	ActionParams     map[types.EntityID]*component.ActionParams
	Renderables      map[types.EntityID]*component.Renderable
	WaveSpawners     map[types.EntityID]*component.WaveSpawner
	Charges          *component.Charges
}

func NewECS() *ECS {
	return &ECS{
		NextID:           1,
		entities:         make(map[types.EntityID]struct{}),
		markedDestroy:    make(map[types.EntityID]struct{}),
		Transforms:       make(map[types.EntityID]*component.Transform),
		Velocities:       make(map[types.EntityID]*component.Velocity),
		Speeds:           make(map[types.EntityID]*component.Speed),
		TurnRates:        make(map[types.EntityID]*component.TurnRate),
		Directionals:     make(map[types.EntityID]*component.Directional),
		Colliders:        make(map[types.EntityID]*component.Collider),
		Targetings:       make(map[types.EntityID]*component.Targeting),
		SeekHostiles:     make(map[types.EntityID]*component.SeekHostile),
		Hostiles:         make(map[types.EntityID]*component.Hostile),
		VirusAttached:    make(map[types.EntityID]*component.VirusAttached),
		DespawnOnContact: make(map[types.EntityID]*component.DespawnOnContact),
		Hosts:            make(map[types.EntityID]*component.Host),
		Infections:       make(map[types.EntityID]*component.Infected),
		Attachments:      make(map[types.EntityID]*component.Attachment),
		Players:          make(map[types.EntityID]*component.Player),
		ActionParams:     make(map[types.EntityID]*component.ActionParams),
		Renderables:      make(map[types.EntityID]*component.Renderable),
		WaveSpawners:     make(map[types.EntityID]*component.WaveSpawner),
		Charges:          &component.Charges{},
	}
}

// NewEntity allocates a fresh handle and records an EntitySpawned event.
func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	ecs.entities[id] = struct{}{}
	ecs.events = append(ecs.events, event.Event{Type: event.EntitySpawned, Data: id})
	return id
}

// IsAlive reports whether id names an entity that has not been removed yet.
// Entities marked for destruction stay alive until RemoveMarkedEntities.
func (ecs *ECS) IsAlive(id types.EntityID) bool {
	_, ok := ecs.entities[id]
	return ok
}

// IsActive reports whether id is alive and not marked for destruction.
func (ecs *ECS) IsActive(id types.EntityID) bool {
	if !ecs.IsAlive(id) {
		return false
	}
	_, marked := ecs.markedDestroy[id]
	return !marked
}

// Count returns the number of live entities.
func (ecs *ECS) Count() int {
	return len(ecs.entities)
}

// DestroyEntity marks id and everything attached to it for removal.
// Marking twice, or marking a removed entity, is a no-op.
func (ecs *ECS) DestroyEntity(id types.EntityID) {
	if !ecs.IsActive(id) {
		return
	}
	ecs.markedDestroy[id] = struct{}{}
	ecs.toDestroy = append(ecs.toDestroy, id)
	for _, child := range ecs.ChildrenOf(id) {
		ecs.DestroyEntity(child)
	}
}

// PendingDestroy returns the number of entities waiting for removal.
func (ecs *ECS) PendingDestroy() int {
	return len(ecs.toDestroy)
}

// RemoveMarkedEntities removes every marked entity from all component maps at
// once and returns their ids in marking order.
func (ecs *ECS) RemoveMarkedEntities() []types.EntityID {
	if len(ecs.toDestroy) == 0 {
		return nil
	}
	removed := make([]types.EntityID, 0, len(ecs.toDestroy))
	for _, id := range ecs.toDestroy {
		ecs.removeComponents(id)
		delete(ecs.entities, id)
		removed = append(removed, id)
		ecs.events = append(ecs.events, event.Event{Type: event.EntityDestroyed, Data: id})
	}
	ecs.toDestroy = ecs.toDestroy[:0]
	clear(ecs.markedDestroy)
	return removed
}

func (ecs *ECS) removeComponents(id types.EntityID) {
	delete(ecs.Transforms, id)
	delete(ecs.Velocities, id)
	delete(ecs.Speeds, id)
	delete(ecs.TurnRates, id)
	delete(ecs.Directionals, id)
	delete(ecs.Colliders, id)
	delete(ecs.Targetings, id)
	delete(ecs.SeekHostiles, id)
	delete(ecs.Hostiles, id)
	delete(ecs.VirusAttached, id)
	delete(ecs.DespawnOnContact, id)
	delete(ecs.Hosts, id)
	delete(ecs.Infections, id)
	delete(ecs.Attachments, id)
	delete(ecs.Players, id)
	delete(ecs.ActionParams, id)
	delete(ecs.Renderables, id)
	delete(ecs.WaveSpawners, id)
}

// Emit records a lifecycle event.
func (ecs *ECS) Emit(e event.Event) {
	ecs.events = append(ecs.events, e)
}

// DrainEvents returns the recorded lifecycle events and forgets them.
func (ecs *ECS) DrainEvents() []event.Event {
	out := ecs.events
	ecs.events = nil
	return out
}

// ChildrenOf returns the entities attached to parent, in ascending id order.
func (ecs *ECS) ChildrenOf(parent types.EntityID) []types.EntityID {
	var children []types.EntityID
	for id, att := range ecs.Attachments {
		if att.Parent == parent {
			children = append(children, id)
		}
	}
	slices.Sort(children)
	return children
}

// ClassOf derives the collision class of id from its components.
func (ecs *ECS) ClassOf(id types.EntityID) component.EntityClass {
	if _, ok := ecs.Players[id]; ok {
		return component.ClassPlayer
	}
	if _, ok := ecs.SeekHostiles[id]; ok {
		return component.ClassAlly
	}
	if _, ok := ecs.Hostiles[id]; ok {
		return component.ClassHostile
	}
	if _, ok := ecs.Hosts[id]; ok {
		return component.ClassHost
	}
	return component.ClassNeutral
}

// IsAttached reports whether id carries the VirusAttached marker.
func (ecs *ECS) IsAttached(id types.EntityID) bool {
	_, ok := ecs.VirusAttached[id]
	return ok
}

// HostileCount returns the number of live hostiles, attached ones included.
func (ecs *ECS) HostileCount() int {
	return len(ecs.Hostiles)
}

// WaveSpawner returns the single wave spawner.
func (ecs *ECS) WaveSpawner() (*component.WaveSpawner, error) {
	if n := len(ecs.WaveSpawners); n != 1 {
		return nil, errors.Wrapf(ErrSpawnerCount, "found %d", n)
	}
	for _, spawner := range ecs.WaveSpawners {
		return spawner, nil
	}
	return nil, ErrSpawnerCount
}

// SortedIDs returns the keys of a component map in ascending order, so systems
// that draw random numbers visit entities in a reproducible order.
func SortedIDs[V any](m map[types.EntityID]V) []types.EntityID {
	ids := make([]types.EntityID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
