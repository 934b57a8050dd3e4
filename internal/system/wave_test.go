package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/WChurchill/qualified-immunity/internal/config"
	"github.com/WChurchill/qualified-immunity/internal/entity"
	"github.com/WChurchill/qualified-immunity/internal/event"
	"github.com/WChurchill/qualified-immunity/internal/utils"
	"github.com/WChurchill/qualified-immunity/pkg/geom"
)

func TestWaveSize(t *testing.T) {
	tests := []struct {
		wave   int
		expect int
	}{
		{1, 7},
		{2, 13},
		{3, 21},
		{4, 31},
		{10, 133},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expect, WaveSize(tt.wave), "wave %d", tt.wave)
	}
}

func newWaveWorld(cfg *config.Config) (*entity.ECS, *WaveSystem) {
	ecs := entity.NewECS()
	SpawnWaveSpawner(ecs, cfg.Wave, cfg.Wave.ArenaCenter)
	return ecs, NewWaveSystem(ecs, cfg, utils.NewPRNGService(11), zap.NewNop())
}

func TestWaveSystem_SpawnsCluster(t *testing.T) {
	cfg := config.Default()
	cfg.Wave.ArenaCenter = geom.V(100, 100)
	ecs, sys := newWaveWorld(&cfg)
	spawner, err := ecs.WaveSpawner()
	require.NoError(t, err)
	ecs.DrainEvents()

	sys.Update(0.1, spawner)

	require.Equal(t, 7, ecs.HostileCount())
	assert.Equal(t, 2, spawner.WaveNumber)
	assert.Equal(t, cfg.Wave.InterWaveDelay, spawner.Cooldown)

	started := eventsOfType(ecs.DrainEvents(), event.WaveStarted)
	require.Len(t, started, 1)
	assert.Equal(t, event.WaveInfo{Number: 1, Count: 7}, started[0].Data)

	// every hostile lies within the cluster around a point on the spawn circle
	positions := make([]geom.Vec2, 0, len(ecs.Hostiles))
	for id := range ecs.Hostiles {
		pos := ecs.Transforms[id].Position
		d := pos.Distance(cfg.Wave.ArenaCenter)
		assert.GreaterOrEqual(t, d, cfg.Wave.SpawnRadius-cfg.Wave.ClusterRadius-1e-9)
		assert.LessOrEqual(t, d, cfg.Wave.SpawnRadius+cfg.Wave.ClusterRadius+1e-9)
		positions = append(positions, pos)
	}

	// and they share that one cluster
	for i := range positions {
		for j := i + 1; j < len(positions); j++ {
			assert.LessOrEqual(t, positions[i].Distance(positions[j]), 2*cfg.Wave.ClusterRadius+1e-9)
		}
	}
}

func TestWaveSystem_WaitsForClearAndCooldown(t *testing.T) {
	cfg := config.Default()
	cfg.Wave.InterWaveDelay = 1
	ecs, sys := newWaveWorld(&cfg)
	spawner, err := ecs.WaveSpawner()
	require.NoError(t, err)

	sys.Update(0.1, spawner)
	require.Equal(t, 7, ecs.HostileCount())

	// hostiles alive: nothing happens, cooldown stays put
	sys.Update(0.5, spawner)
	assert.Equal(t, 7, ecs.HostileCount())
	assert.Equal(t, 1.0, spawner.Cooldown)

	for id := range ecs.Hostiles {
		ecs.DestroyEntity(id)
	}
	ecs.RemoveMarkedEntities()

	sys.Update(0.6, spawner)
	assert.Zero(t, ecs.HostileCount())
	assert.InDelta(t, 0.4, spawner.Cooldown, 1e-9)

	// the tick that runs the cooldown out does not spawn yet
	sys.Update(0.6, spawner)
	assert.Zero(t, ecs.HostileCount())
	assert.Zero(t, spawner.Cooldown)

	sys.Update(0.1, spawner)
	assert.Equal(t, 13, ecs.HostileCount())
	assert.Equal(t, 3, spawner.WaveNumber)
}

func TestWaveSystem_Disabled(t *testing.T) {
	cfg := config.Default()
	cfg.Wave.Enabled = false
	ecs, sys := newWaveWorld(&cfg)
	spawner, err := ecs.WaveSpawner()
	require.NoError(t, err)

	sys.Update(0.1, spawner)
	sys.Update(0.1, nil)
	assert.Zero(t, ecs.HostileCount())
	assert.Equal(t, 1, spawner.WaveNumber)
}
