// internal/system/targeting.go
package system

import (
	"math"

	"github.com/WChurchill/qualified-immunity/internal/component"
	"github.com/WChurchill/qualified-immunity/internal/config"
	"github.com/WChurchill/qualified-immunity/internal/entity"
	"github.com/WChurchill/qualified-immunity/internal/event"
	"github.com/WChurchill/qualified-immunity/internal/types"
	"github.com/WChurchill/qualified-immunity/internal/utils"
)

// TargetingSystem keeps seek relations valid, hands out targets to idle
// seekers and steers every seeker towards its target.
//
// Hostiles seek hosts, picked uniformly at random. Allies seek free hostiles,
// picked by the configured policy.
type TargetingSystem struct {
	ecs *entity.ECS
	cfg *config.Config
	rng *utils.PRNGService
}

func NewTargetingSystem(ecs *entity.ECS, cfg *config.Config, rng *utils.PRNGService) *TargetingSystem {
	return &TargetingSystem{ecs: ecs, cfg: cfg, rng: rng}
}

// OnEvent drops relations naming an entity that has just been removed.
func (s *TargetingSystem) OnEvent(e event.Event) {
	if e.Type != event.EntityDestroyed {
		return
	}
	id, ok := e.Data.(types.EntityID)
	if !ok {
		return
	}
	for seeker, t := range s.ecs.Targetings {
		if t.Target == id {
			delete(s.ecs.Targetings, seeker)
		}
	}
}

func (s *TargetingSystem) Update(deltaTime float64) {
	s.clearInvalid()
	s.assign()
	s.steer(deltaTime)
}

func (s *TargetingSystem) clearInvalid() {
	for _, id := range entity.SortedIDs(s.ecs.Targetings) {
		t := s.ecs.Targetings[id]
		if !s.isSeeker(id) || !s.isEligible(id, t.Target) {
			delete(s.ecs.Targetings, id)
		}
	}
}

// isSeeker reports whether id may hold a Targeting relation right now.
func (s *TargetingSystem) isSeeker(id types.EntityID) bool {
	if !s.ecs.IsActive(id) {
		return false
	}
	if _, ok := s.ecs.SeekHostiles[id]; ok {
		return true
	}
	if _, ok := s.ecs.Hostiles[id]; ok {
		return !s.ecs.IsAttached(id)
	}
	return false
}

// isEligible reports whether target is a valid target for seeker.
func (s *TargetingSystem) isEligible(seeker, target types.EntityID) bool {
	if !s.ecs.IsActive(target) {
		return false
	}
	if _, ok := s.ecs.SeekHostiles[seeker]; ok {
		_, hostile := s.ecs.Hostiles[target]
		return hostile && !s.ecs.IsAttached(target)
	}
	_, host := s.ecs.Hosts[target]
	return host
}

func (s *TargetingSystem) assign() {
	var hosts []types.EntityID
	for _, id := range entity.SortedIDs(s.ecs.Hosts) {
		if s.ecs.IsActive(id) {
			hosts = append(hosts, id)
		}
	}
	var prey []types.EntityID
	for _, id := range entity.SortedIDs(s.ecs.Hostiles) {
		if s.ecs.IsActive(id) && !s.ecs.IsAttached(id) {
			prey = append(prey, id)
		}
	}

	for _, id := range entity.SortedIDs(s.ecs.Hostiles) {
		if _, held := s.ecs.Targetings[id]; held || !s.isSeeker(id) || len(hosts) == 0 {
			continue
		}
		s.ecs.Targetings[id] = &component.Targeting{Target: s.rng.Choose(hosts)}
	}

	for _, id := range entity.SortedIDs(s.ecs.SeekHostiles) {
		if _, held := s.ecs.Targetings[id]; held || !s.isSeeker(id) || len(prey) == 0 {
			continue
		}
		var target types.EntityID
		if s.cfg.Targeting.AllyPolicy == config.PolicyNearest {
			target = s.nearest(id, prey)
		} else {
			target = s.rng.Choose(prey)
		}
		if target != types.InvalidEntity {
			s.ecs.Targetings[id] = &component.Targeting{Target: target}
		}
	}
}

// nearest returns the candidate closest to seeker. Ties go to the lower id.
func (s *TargetingSystem) nearest(seeker types.EntityID, candidates []types.EntityID) types.EntityID {
	from, ok := s.ecs.Transforms[seeker]
	if !ok {
		return types.InvalidEntity
	}
	best, bestDist := types.InvalidEntity, math.Inf(1)
	for _, id := range candidates {
		tr, ok := s.ecs.Transforms[id]
		if !ok {
			continue
		}
		if d := from.Position.Distance(tr.Position); d < bestDist {
			best, bestDist = id, d
		}
	}
	return best
}

func (s *TargetingSystem) steer(deltaTime float64) {
	for id, t := range s.ecs.Targetings {
		if _, ally := s.ecs.SeekHostiles[id]; ally {
			continue
		}
		tr, vel, speed := s.ecs.Transforms[id], s.ecs.Velocities[id], s.ecs.Speeds[id]
		target := s.ecs.Transforms[t.Target]
		if tr == nil || vel == nil || speed == nil || target == nil {
			continue
		}
		params := SteerParams{
			Speed:              speed.Current,
			FastRotateDistance: s.cfg.Hostile.FastRotateDistance,
		}
		if turn, ok := s.ecs.TurnRates[id]; ok {
			params.TurnRate = turn.Value
		}
		vel.Value = Steer(tr.Position, target.Position, vel.Value, params, deltaTime)
	}

	for id := range s.ecs.SeekHostiles {
		tr, vel, speed := s.ecs.Transforms[id], s.ecs.Velocities[id], s.ecs.Speeds[id]
		if tr == nil || vel == nil || speed == nil {
			continue
		}
		dest := s.cfg.Wave.ArenaCenter
		if t, ok := s.ecs.Targetings[id]; ok {
			if target := s.ecs.Transforms[t.Target]; target != nil {
				dest = target.Position
			}
		}
		vel.Value = Seek(tr.Position, dest, speed.Current)
	}
}
