package system

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/WChurchill/qualified-immunity/internal/component"
	"github.com/WChurchill/qualified-immunity/internal/config"
	"github.com/WChurchill/qualified-immunity/internal/entity"
	"github.com/WChurchill/qualified-immunity/internal/event"
	"github.com/WChurchill/qualified-immunity/internal/types"
	"github.com/WChurchill/qualified-immunity/pkg/geom"
)

func eventsOfType(events []event.Event, typ event.EventType) []event.Event {
	var out []event.Event
	for _, e := range events {
		if e.Type == typ {
			out = append(out, e)
		}
	}
	return out
}

func TestEncounterSystem_Infect(t *testing.T) {
	cfg := config.Default()
	cfg.Infection = config.InfectionConfig{Timer: 7, DecayRate: 1, Offspring: 4}
	ecs := entity.NewECS()
	queue := event.NewCollisionQueue()
	sys := NewEncounterSystem(ecs, queue, &cfg, zap.NewNop())

	host := SpawnHost(ecs, geom.Vec2{}, 40, math.Pi/2, false, false)
	virus := SpawnHostile(ecs, cfg.Hostile, geom.V(10, 0), geom.V(-1, 0))
	ecs.Targetings[virus] = &component.Targeting{Target: host}
	ecs.DrainEvents()

	queue.Push(event.CollisionEvent{Kind: event.CollisionInfect, A: virus, B: host})
	sys.Update()

	assert.True(t, ecs.IsAttached(virus))
	assert.True(t, ecs.Velocities[virus].Value.IsZero())
	assert.NotContains(t, ecs.Targetings, virus)

	att := ecs.Attachments[virus]
	require.NotNil(t, att)
	assert.Equal(t, host, att.Parent)
	assert.InDelta(t, 0, att.Offset.X, 1e-9)
	assert.InDelta(t, -10, att.Offset.Y, 1e-9)

	inf := ecs.Infections[host]
	require.NotNil(t, inf)
	assert.Equal(t, component.Infected{Remaining: 7, Initial: 7, DecayRate: 1, Offspring: 4}, *inf)

	events := ecs.DrainEvents()
	assert.Len(t, eventsOfType(events, event.VirusAttached), 1)
	assert.Len(t, eventsOfType(events, event.HostInfected), 1)
	assert.Zero(t, queue.Len())
}

func TestEncounterSystem_ReinfectionKeepsTimer(t *testing.T) {
	cfg := config.Default()
	ecs := entity.NewECS()
	queue := event.NewCollisionQueue()
	sys := NewEncounterSystem(ecs, queue, &cfg, zap.NewNop())

	host := SpawnHost(ecs, geom.Vec2{}, 40, 0, false, false)
	first := SpawnHostile(ecs, cfg.Hostile, geom.V(10, 0), geom.V(-1, 0))
	second := SpawnHostile(ecs, cfg.Hostile, geom.V(-10, 0), geom.V(1, 0))

	queue.Push(event.CollisionEvent{Kind: event.CollisionInfect, A: first, B: host})
	sys.Update()
	ecs.Infections[host].Remaining = 3
	ecs.DrainEvents()

	cfg.Infection.Timer = 99
	queue.Push(event.CollisionEvent{Kind: event.CollisionInfect, A: second, B: host})
	sys.Update()

	assert.True(t, ecs.IsAttached(second))
	assert.Equal(t, 3.0, ecs.Infections[host].Remaining)
	events := ecs.DrainEvents()
	assert.Len(t, eventsOfType(events, event.VirusAttached), 1)
	assert.Empty(t, eventsOfType(events, event.HostInfected))
}

func TestEncounterSystem_Defend(t *testing.T) {
	cfg := config.Default()

	t.Run("free hostile dies", func(t *testing.T) {
		ecs := entity.NewECS()
		queue := event.NewCollisionQueue()
		player := SpawnPlayer(ecs, cfg.Player, cfg.Boost, geom.Vec2{})
		virus := SpawnHostile(ecs, cfg.Hostile, geom.Vec2{}, geom.V(1, 0))

		queue.Push(event.CollisionEvent{Kind: event.CollisionDefend, A: player, B: virus})
		NewEncounterSystem(ecs, queue, &cfg, zap.NewNop()).Update()

		assert.False(t, ecs.IsActive(virus))
		assert.True(t, ecs.IsActive(player))
		assert.Equal(t, []types.EntityID{virus}, ecs.RemoveMarkedEntities())
	})

	t.Run("attached hostile is out of reach", func(t *testing.T) {
		ecs := entity.NewECS()
		queue := event.NewCollisionQueue()
		host := SpawnHost(ecs, geom.Vec2{}, 40, 0, false, false)
		ally := SpawnAlly(ecs, cfg.Ally, geom.Vec2{})
		virus := SpawnHostile(ecs, cfg.Hostile, geom.Vec2{}, geom.V(1, 0))

		// infect is queued first by the contact pass order
		queue.Push(event.CollisionEvent{Kind: event.CollisionInfect, A: virus, B: host})
		queue.Push(event.CollisionEvent{Kind: event.CollisionDefend, A: ally, B: virus})
		NewEncounterSystem(ecs, queue, &cfg, zap.NewNop()).Update()

		assert.True(t, ecs.IsActive(virus))
		assert.True(t, ecs.IsAttached(virus))
		assert.Zero(t, ecs.PendingDestroy())
	})
}

func TestEncounterSystem_MutualDespawnSkipsMarked(t *testing.T) {
	cfg := config.Default()
	ecs := entity.NewECS()
	queue := event.NewCollisionQueue()
	a := addDespawner(ecs, geom.Vec2{})
	b := addDespawner(ecs, geom.Vec2{})
	c := addDespawner(ecs, geom.Vec2{})

	queue.Push(event.CollisionEvent{Kind: event.CollisionMutualDespawn, A: a, B: b})
	queue.Push(event.CollisionEvent{Kind: event.CollisionMutualDespawn, A: b, B: c})
	NewEncounterSystem(ecs, queue, &cfg, zap.NewNop()).Update()

	assert.False(t, ecs.IsActive(a))
	assert.False(t, ecs.IsActive(b))
	assert.True(t, ecs.IsActive(c))
	assert.Equal(t, []types.EntityID{a, b}, ecs.RemoveMarkedEntities())
}

func TestEncounterSystem_HostDeathTakesAttachedVirus(t *testing.T) {
	cfg := config.Default()
	ecs := entity.NewECS()
	queue := event.NewCollisionQueue()
	host := SpawnHost(ecs, geom.Vec2{}, 40, 0, false, false)
	virus := SpawnHostile(ecs, cfg.Hostile, geom.V(5, 0), geom.V(-1, 0))

	queue.Push(event.CollisionEvent{Kind: event.CollisionInfect, A: virus, B: host})
	NewEncounterSystem(ecs, queue, &cfg, zap.NewNop()).Update()

	ecs.DestroyEntity(host)
	assert.ElementsMatch(t, []types.EntityID{host, virus}, ecs.RemoveMarkedEntities())
	assert.False(t, ecs.IsAlive(virus))
}
