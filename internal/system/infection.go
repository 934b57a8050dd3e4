// internal/system/infection.go
package system

import (
	"go.uber.org/zap"

	"github.com/WChurchill/qualified-immunity/internal/config"
	"github.com/WChurchill/qualified-immunity/internal/entity"
	"github.com/WChurchill/qualified-immunity/internal/event"
	"github.com/WChurchill/qualified-immunity/internal/types"
	"github.com/WChurchill/qualified-immunity/internal/utils"
)

// burstTolerance absorbs the drift of subtracting many small steps from the
// timer, so 7.0 - 70*0.1 still counts as expired.
const burstTolerance = 1e-9

// InfectionSystem runs the infection timers of hosts and bursts the ones that
// expire, releasing new hostiles.
type InfectionSystem struct {
	ecs    *entity.ECS
	cfg    *config.Config
	rng    *utils.PRNGService
	logger *zap.Logger
}

func NewInfectionSystem(ecs *entity.ECS, cfg *config.Config, rng *utils.PRNGService, logger *zap.Logger) *InfectionSystem {
	return &InfectionSystem{
		ecs:    ecs,
		cfg:    cfg,
		rng:    rng,
		logger: logger.Named("infection"),
	}
}

func (s *InfectionSystem) Update(deltaTime float64) {
	for _, id := range entity.SortedIDs(s.ecs.Infections) {
		if !s.ecs.IsActive(id) {
			continue
		}
		inf := s.ecs.Infections[id]
		inf.Remaining -= inf.DecayRate * deltaTime
		if inf.Remaining > burstTolerance {
			continue
		}
		s.burst(id)
	}
}

func (s *InfectionSystem) burst(hostID types.EntityID) {
	inf := s.ecs.Infections[hostID]
	tr, ok := s.ecs.Transforms[hostID]
	if !ok {
		s.ecs.DestroyEntity(hostID)
		return
	}

	offspring := make([]types.EntityID, 0, inf.Offspring)
	for i := 0; i < inf.Offspring; i++ {
		offspring = append(offspring, SpawnHostile(s.ecs, s.cfg.Hostile, tr.Position, s.rng.Heading()))
	}
	s.ecs.DestroyEntity(hostID)
	s.ecs.Emit(event.Event{
		Type: event.HostDied,
		Data: event.HostDeath{Host: hostID, Offspring: offspring},
	})
	s.logger.Debug("host burst",
		zap.Uint64("host", uint64(hostID)),
		zap.Int("offspring", len(offspring)),
	)
}
