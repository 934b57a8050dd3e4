package app

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/WChurchill/qualified-immunity/internal/config"
	"github.com/WChurchill/qualified-immunity/internal/defs"
	"github.com/WChurchill/qualified-immunity/internal/event"
	"github.com/WChurchill/qualified-immunity/internal/system"
	"github.com/WChurchill/qualified-immunity/pkg/geom"
)

func smallLevel() defs.LevelDefinition {
	level := defs.DefaultLevel()
	level.Name = "small"
	level.Wall.Columns = 5
	level.Wall.Rows = 5
	level.Wall.Origin = geom.V(100, 0)
	level.Hostiles.Count = 30
	level.Hostiles.Width = 400
	level.Hostiles.Height = 300
	return level
}

// emptyLevel holds only the spawner and a player parked far away.
func emptyLevel() defs.LevelDefinition {
	return defs.LevelDefinition{
		Name:   "empty",
		Player: defs.PlayerStart{Position: geom.V(5000, 5000)},
	}
}

func countType(events []event.Event, typ event.EventType) int {
	n := 0
	for _, e := range events {
		if e.Type == typ {
			n++
		}
	}
	return n
}

func TestNewGame_Errors(t *testing.T) {
	t.Run("invalid config", func(t *testing.T) {
		cfg := config.Default()
		cfg.Infection.Timer = 0
		_, err := NewGame(cfg, smallLevel(), 1, zap.NewNop())
		require.Error(t, err)
		assert.True(t, errors.Is(err, config.ErrInvalidTimer))
	})

	t.Run("invalid level", func(t *testing.T) {
		level := smallLevel()
		level.Hostiles.Count = -1
		_, err := NewGame(config.Default(), level, 1, nil)
		require.Error(t, err)
		assert.True(t, errors.Is(err, defs.ErrInvalidLevel))
	})
}

func TestNewGame_Layout(t *testing.T) {
	level := smallLevel()
	level.Wall.GapChance = 0
	g, err := NewGame(config.Default(), level, 42, nil)
	require.NoError(t, err)

	hostiles, hosts := g.Counts()
	assert.Equal(t, 30, hostiles)
	assert.Equal(t, 25, hosts)
	assert.Equal(t, 1, g.HUD().Wave)

	pos, ok := g.PlayerPosition()
	require.True(t, ok)
	assert.Equal(t, level.Player.Position, pos)

	require.Len(t, g.ECS.WaveSpawners, 1)
	for id := range g.ECS.WaveSpawners {
		assert.Equal(t, g.Config.Wave.ArenaCenter, g.ECS.Transforms[id].Position)
	}

	// setup events are not replayed by the first step
	events := g.Step(0.01, Intent{})
	assert.Zero(t, countType(events, event.EntitySpawned))
}

func TestGame_Deterministic(t *testing.T) {
	run := func(seed int64) Snapshot {
		g, err := NewGame(config.Default(), smallLevel(), seed, nil)
		require.NoError(t, err)
		for i := 0; i < 240; i++ {
			intent := Intent{Move: geom.V(1, 0.5), Boost: i%60 < 30, Duplicate: i > 180}
			g.Step(1.0/60, intent)
		}
		return g.Snapshot()
	}

	a, b := run(7), run(7)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, run(8))
}

func TestGame_FirstWave(t *testing.T) {
	cfg := config.Default()
	g, err := NewGame(cfg, emptyLevel(), 3, nil)
	require.NoError(t, err)

	events := g.Step(0.1, Intent{})
	require.Equal(t, 1, countType(events, event.WaveStarted))
	assert.Equal(t, system.WaveSize(1), countType(events, event.EntitySpawned))

	hostiles, _ := g.Counts()
	assert.Equal(t, 7, hostiles)
	assert.Equal(t, 2, g.HUD().Wave)
	assert.InDelta(t, 0.1, g.GameTime(), 1e-12)
}

func TestGame_InfectionCycle(t *testing.T) {
	cfg := config.Default()
	cfg.Wave.Enabled = false
	cfg.Infection = config.InfectionConfig{Timer: 1, DecayRate: 1, Offspring: 4}
	level := emptyLevel()
	level.Wall = defs.WallDefinition{Columns: 1, Rows: 1, CellSize: 40}

	g, err := NewGame(cfg, level, 9, nil)
	require.NoError(t, err)

	var infected, died int
	g.Subscribe(event.HostInfected, event.ListenerFunc(func(event.Event) { infected++ }))
	g.Subscribe(event.HostDied, event.ListenerFunc(func(event.Event) { died++ }))

	system.SpawnHostile(g.ECS, cfg.Hostile, geom.V(0, 0), geom.V(1, 0))

	g.Step(0.1, Intent{})
	assert.Equal(t, 1, infected)
	assert.Equal(t, 1, len(g.ECS.VirusAttached))

	for i := 0; i < 15 && died == 0; i++ {
		g.Step(0.1, Intent{})
	}
	require.Equal(t, 1, died)

	hostiles, hosts := g.Counts()
	assert.Equal(t, 4, hostiles)
	assert.Zero(t, hosts)
	assert.Empty(t, g.ECS.VirusAttached)
	for id := range g.ECS.Targetings {
		assert.True(t, g.ECS.IsActive(g.ECS.Targetings[id].Target))
	}
}

func TestGame_DefendAndLostSpawner(t *testing.T) {
	cfg := config.Default()
	level := emptyLevel()
	level.Player.Position = geom.V(0, 0)
	g, err := NewGame(cfg, level, 5, nil)
	require.NoError(t, err)

	for id := range g.ECS.WaveSpawners {
		delete(g.ECS.WaveSpawners, id)
	}

	virus := system.SpawnHostile(g.ECS, cfg.Hostile, geom.V(10, 0), geom.V(1, 0))
	events := g.Step(0.01, Intent{})
	assert.False(t, g.ECS.IsAlive(virus))
	assert.Equal(t, 1, countType(events, event.EntityDestroyed))
	assert.Zero(t, countType(events, event.WaveStarted))

	// the game keeps running without waves
	g.Step(0.01, Intent{})
	assert.Zero(t, g.HUD().Wave)
	assert.Empty(t, g.ECS.Colliders[g.PlayerID].ContactIDs())
	assert.True(t, g.ECS.IsAlive(g.PlayerID))
}
