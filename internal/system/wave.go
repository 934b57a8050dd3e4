// internal/system/wave.go
package system

import (
	"math"

	"go.uber.org/zap"

	"github.com/WChurchill/qualified-immunity/internal/component"
	"github.com/WChurchill/qualified-immunity/internal/config"
	"github.com/WChurchill/qualified-immunity/internal/entity"
	"github.com/WChurchill/qualified-immunity/internal/event"
	"github.com/WChurchill/qualified-immunity/internal/types"
	"github.com/WChurchill/qualified-immunity/internal/utils"
)

// WaveSize returns the number of hostiles in wave n.
func WaveSize(n int) int {
	x := float64(n) + 1.5
	return int(math.Ceil(x * x))
}

// WaveSystem releases a new cluster of hostiles once the previous population
// has been wiped out and the cooldown has run out.
type WaveSystem struct {
	ecs    *entity.ECS
	cfg    *config.Config
	rng    *utils.PRNGService
	logger *zap.Logger
}

func NewWaveSystem(ecs *entity.ECS, cfg *config.Config, rng *utils.PRNGService, logger *zap.Logger) *WaveSystem {
	return &WaveSystem{
		ecs:    ecs,
		cfg:    cfg,
		rng:    rng,
		logger: logger.Named("wave"),
	}
}

func (s *WaveSystem) Update(deltaTime float64, spawner *component.WaveSpawner) {
	if spawner == nil || !s.cfg.Wave.Enabled {
		return
	}
	if s.ecs.HostileCount() > 0 {
		return
	}
	if spawner.Cooldown > 0 {
		spawner.Cooldown = math.Max(0, spawner.Cooldown-deltaTime)
		return
	}

	count := WaveSize(spawner.WaveNumber)
	origin := s.cfg.Wave.ArenaCenter.Add(s.rng.Heading().Scale(spawner.SpawnRadius))
	ids := make([]types.EntityID, 0, count)
	for i := 0; i < count; i++ {
		pos := origin.Add(s.rng.InDisk(spawner.ClusterRadius))
		ids = append(ids, SpawnHostile(s.ecs, s.cfg.Hostile, pos, s.rng.Heading()))
	}

	s.ecs.Emit(event.Event{
		Type: event.WaveStarted,
		Data: event.WaveInfo{Number: spawner.WaveNumber, Count: len(ids)},
	})
	s.logger.Debug("wave started",
		zap.Int("wave", spawner.WaveNumber),
		zap.Int("count", count),
		zap.Float64("origin_x", origin.X),
		zap.Float64("origin_y", origin.Y),
	)

	spawner.Cooldown = s.cfg.Wave.InterWaveDelay
	spawner.WaveNumber++
}
