package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/WChurchill/qualified-immunity/internal/config"
	"github.com/WChurchill/qualified-immunity/internal/entity"
	"github.com/WChurchill/qualified-immunity/internal/event"
	"github.com/WChurchill/qualified-immunity/internal/types"
	"github.com/WChurchill/qualified-immunity/internal/utils"
	"github.com/WChurchill/qualified-immunity/pkg/geom"
)

// infectedWorld builds a host infected by one attached virus.
func infectedWorld(t *testing.T, cfg *config.Config) (*entity.ECS, *InfectionSystem, types.EntityID, types.EntityID) {
	t.Helper()
	ecs := entity.NewECS()
	queue := event.NewCollisionQueue()
	host := SpawnHost(ecs, geom.V(50, -20), 40, 0, false, false)
	virus := SpawnHostile(ecs, cfg.Hostile, geom.V(60, -20), geom.V(-1, 0))
	queue.Push(event.CollisionEvent{Kind: event.CollisionInfect, A: virus, B: host})
	NewEncounterSystem(ecs, queue, cfg, zap.NewNop()).Update()
	require.Contains(t, ecs.Infections, host)
	ecs.DrainEvents()
	return ecs, NewInfectionSystem(ecs, cfg, utils.NewPRNGService(3), zap.NewNop()), host, virus
}

func TestInfectionSystem_Burst(t *testing.T) {
	cfg := config.Default()
	cfg.Infection = config.InfectionConfig{Timer: 7, DecayRate: 1, Offspring: 4}
	ecs, sys, host, virus := infectedWorld(t, &cfg)

	// later tuning must not touch a running infection
	cfg.Infection.Offspring = 9
	cfg.Infection.DecayRate = 100

	for i := 0; i < 69; i++ {
		sys.Update(0.1)
		require.True(t, ecs.IsActive(host), "burst early at step %d", i+1)
	}
	sys.Update(0.1)

	assert.False(t, ecs.IsActive(host))
	assert.False(t, ecs.IsActive(virus))
	assert.ElementsMatch(t, []types.EntityID{host, virus}, ecs.RemoveMarkedEntities())

	deaths := eventsOfType(ecs.DrainEvents(), event.HostDied)
	require.Len(t, deaths, 1)
	death := deaths[0].Data.(event.HostDeath)
	assert.Equal(t, host, death.Host)
	require.Len(t, death.Offspring, 4)

	headings := make(map[geom.Vec2]struct{})
	for _, id := range death.Offspring {
		assert.Contains(t, ecs.Hostiles, id)
		assert.False(t, ecs.IsAttached(id))
		assert.Equal(t, geom.V(50, -20), ecs.Transforms[id].Position)
		assert.InDelta(t, cfg.Hostile.Speed, ecs.Velocities[id].Value.Len(), 1e-9)
		headings[ecs.Velocities[id].Value] = struct{}{}
	}
	assert.Len(t, headings, 4)
}

func TestInfectionSystem_SkipsMarkedHosts(t *testing.T) {
	cfg := config.Default()
	cfg.Infection = config.InfectionConfig{Timer: 1, DecayRate: 1, Offspring: 2}
	ecs, sys, host, _ := infectedWorld(t, &cfg)

	ecs.DestroyEntity(host)
	sys.Update(5)

	assert.Empty(t, eventsOfType(ecs.DrainEvents(), event.HostDied))
	assert.Equal(t, 1.0, ecs.Infections[host].Remaining)
}

func TestInfectionSystem_ZeroOffspring(t *testing.T) {
	cfg := config.Default()
	cfg.Infection = config.InfectionConfig{Timer: 1, DecayRate: 2, Offspring: 0}
	ecs, sys, host, _ := infectedWorld(t, &cfg)

	sys.Update(0.5)
	assert.False(t, ecs.IsActive(host))
	ecs.RemoveMarkedEntities()
	assert.Zero(t, ecs.HostileCount())
}
