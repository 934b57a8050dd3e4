// internal/system/encounter.go
package system

import (
	"go.uber.org/zap"

	"github.com/WChurchill/qualified-immunity/internal/component"
	"github.com/WChurchill/qualified-immunity/internal/config"
	"github.com/WChurchill/qualified-immunity/internal/entity"
	"github.com/WChurchill/qualified-immunity/internal/event"
	"github.com/WChurchill/qualified-immunity/internal/types"
	"github.com/WChurchill/qualified-immunity/pkg/geom"
)

// EncounterSystem applies the game rules to queued collision events.
// Destruction is only requested here; the caller commits it after Update.
type EncounterSystem struct {
	ecs    *entity.ECS
	queue  *event.CollisionQueue
	cfg    *config.Config
	logger *zap.Logger
}

func NewEncounterSystem(ecs *entity.ECS, queue *event.CollisionQueue, cfg *config.Config, logger *zap.Logger) *EncounterSystem {
	return &EncounterSystem{
		ecs:    ecs,
		queue:  queue,
		cfg:    cfg,
		logger: logger.Named("encounter"),
	}
}

func (s *EncounterSystem) Update() {
	for _, e := range s.queue.Drain() {
		// a participant may have been marked by an earlier event this tick
		if !s.ecs.IsActive(e.A) || !s.ecs.IsActive(e.B) {
			continue
		}
		switch e.Kind {
		case event.CollisionMutualDespawn:
			s.ecs.DestroyEntity(e.A)
			s.ecs.DestroyEntity(e.B)
		case event.CollisionInfect:
			s.infect(e.A, e.B)
		case event.CollisionDefend:
			s.defend(e.A, e.B)
		}
	}
}

func (s *EncounterSystem) infect(hostileID, hostID types.EntityID) {
	hostile, ok := s.ecs.Hostiles[hostileID]
	if !ok || hostile.Class != component.HostileInfectThenDie || s.ecs.IsAttached(hostileID) {
		return
	}
	if _, ok := s.ecs.Hosts[hostID]; !ok {
		return
	}
	hostileTr, ok := s.ecs.Transforms[hostileID]
	if !ok {
		return
	}
	hostTr, ok := s.ecs.Transforms[hostID]
	if !ok {
		return
	}

	if vel, ok := s.ecs.Velocities[hostileID]; ok {
		vel.Value = geom.Vec2{}
	}
	s.ecs.VirusAttached[hostileID] = &component.VirusAttached{}
	delete(s.ecs.Targetings, hostileID)
	s.ecs.Attachments[hostileID] = &component.Attachment{
		Parent:   hostID,
		Offset:   hostileTr.Position.Sub(hostTr.Position).Rotate(-hostTr.Rotation),
		Rotation: hostileTr.Rotation - hostTr.Rotation,
	}
	s.ecs.Emit(event.Event{Type: event.VirusAttached, Data: event.Encounter{A: hostileID, B: hostID}})

	if _, infected := s.ecs.Infections[hostID]; infected {
		return
	}
	inf := s.cfg.Infection
	s.ecs.Infections[hostID] = &component.Infected{
		Remaining: inf.Timer,
		Initial:   inf.Timer,
		DecayRate: inf.DecayRate,
		Offspring: inf.Offspring,
	}
	s.ecs.Emit(event.Event{Type: event.HostInfected, Data: event.Encounter{A: hostileID, B: hostID}})
	s.logger.Debug("host infected",
		zap.Uint64("host", uint64(hostID)),
		zap.Uint64("hostile", uint64(hostileID)),
		zap.Float64("timer", inf.Timer),
	)
}

func (s *EncounterSystem) defend(defenderID, hostileID types.EntityID) {
	if _, ok := s.ecs.Hostiles[hostileID]; !ok || s.ecs.IsAttached(hostileID) {
		return
	}
	s.ecs.DestroyEntity(hostileID)
}
