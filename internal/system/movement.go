// internal/system/movement.go
package system

import (
	"github.com/WChurchill/qualified-immunity/internal/entity"
)

// MovementSystem integrates velocities and carries attached entities along
// with their parents.
type MovementSystem struct {
	ecs *entity.ECS
}

func NewMovementSystem(ecs *entity.ECS) *MovementSystem {
	return &MovementSystem{ecs: ecs}
}

func (s *MovementSystem) Update(deltaTime float64) {
	for id, vel := range s.ecs.Velocities {
		if _, attached := s.ecs.Attachments[id]; attached {
			continue
		}
		tr, ok := s.ecs.Transforms[id]
		if !ok {
			continue
		}
		tr.Position = tr.Position.Add(vel.Value.Scale(deltaTime))
		if _, directional := s.ecs.Directionals[id]; directional && !vel.Value.IsZero() {
			tr.Rotation = vel.Value.Angle()
		}
	}

	// Attachments are one level deep: a parent is never attached itself.
	for id, att := range s.ecs.Attachments {
		child, ok := s.ecs.Transforms[id]
		if !ok {
			continue
		}
		parent, ok := s.ecs.Transforms[att.Parent]
		if !ok {
			continue
		}
		child.Position = parent.Position.Add(att.Offset.Rotate(parent.Rotation))
		child.Rotation = parent.Rotation + att.Rotation
	}
}
