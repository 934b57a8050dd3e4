// internal/system/collision.go
package system

import (
	"github.com/WChurchill/qualified-immunity/internal/config"
	"github.com/WChurchill/qualified-immunity/internal/entity"
	"github.com/WChurchill/qualified-immunity/internal/types"
)

// CollisionSystem rebuilds the contact set of every collider each tick.
type CollisionSystem struct {
	ecs  *entity.ECS
	grid *SpatialHash // nil selects the naive all-pairs broad phase
}

func NewCollisionSystem(ecs *entity.ECS, cfg config.CollisionConfig) *CollisionSystem {
	s := &CollisionSystem{ecs: ecs}
	if cfg.BroadPhase == config.BroadPhaseGrid {
		s.grid = NewSpatialHash(cfg.CellSize)
	}
	return s
}

func (s *CollisionSystem) Update() {
	for _, col := range s.ecs.Colliders {
		col.ClearContacts()
	}

	ids := make([]types.EntityID, 0, len(s.ecs.Colliders))
	for id := range s.ecs.Colliders {
		if _, ok := s.ecs.Transforms[id]; ok {
			ids = append(ids, id)
		}
	}

	if s.grid == nil {
		for i := 0; i < len(ids); i++ {
			for j := i + 1; j < len(ids); j++ {
				s.testPair(ids[i], ids[j])
			}
		}
		return
	}

	s.grid.Clear()
	for _, id := range ids {
		col := s.ecs.Colliders[id]
		s.grid.Insert(id, s.ecs.Transforms[id].Position, col.Shape.BoundingRadius()+contactEpsilon)
	}
	s.grid.CandidatePairs(s.testPair)
}

func (s *CollisionSystem) testPair(a, b types.EntityID) {
	ca, cb := s.ecs.Colliders[a], s.ecs.Colliders[b]
	if !Overlaps(ca.Shape, s.ecs.Transforms[a], cb.Shape, s.ecs.Transforms[b]) {
		return
	}
	ca.AddContact(b)
	cb.AddContact(a)
}
