package system

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/WChurchill/qualified-immunity/internal/component"
	"github.com/WChurchill/qualified-immunity/internal/config"
	"github.com/WChurchill/qualified-immunity/internal/entity"
	"github.com/WChurchill/qualified-immunity/pkg/geom"
)

func TestMovementSystem(t *testing.T) {
	cfg := config.Default()
	ecs := entity.NewECS()
	sys := NewMovementSystem(ecs)

	virus := SpawnHostile(ecs, cfg.Hostile, geom.V(0, 0), geom.V(0, 1))
	player := SpawnPlayer(ecs, cfg.Player, cfg.Boost, geom.V(5, 5))
	ecs.Velocities[player].Value = geom.V(-10, 0)

	sys.Update(0.5)

	assert.InDelta(t, 0, ecs.Transforms[virus].Position.X, 1e-9)
	assert.InDelta(t, 10, ecs.Transforms[virus].Position.Y, 1e-9)
	assert.InDelta(t, math.Pi/2, ecs.Transforms[virus].Rotation, 1e-9)
	assert.Equal(t, geom.V(0, 5), ecs.Transforms[player].Position)
	// the player has no Directional and keeps its rotation
	assert.Zero(t, ecs.Transforms[player].Rotation)

	// a stopped directional entity keeps facing the same way
	ecs.Velocities[virus].Value = geom.Vec2{}
	sys.Update(0.5)
	assert.InDelta(t, math.Pi/2, ecs.Transforms[virus].Rotation, 1e-9)
}

func TestMovementSystem_AttachedFollowsParent(t *testing.T) {
	cfg := config.Default()
	ecs := entity.NewECS()
	sys := NewMovementSystem(ecs)

	host := SpawnHost(ecs, geom.V(0, 0), 40, 0, false, false)
	virus := SpawnHostile(ecs, cfg.Hostile, geom.V(10, 0), geom.V(1, 0))
	ecs.Velocities[virus].Value = geom.Vec2{}
	ecs.VirusAttached[virus] = &component.VirusAttached{}
	ecs.Attachments[virus] = &component.Attachment{Parent: host, Offset: geom.V(10, 0)}

	ecs.Transforms[host].Position = geom.V(100, 50)
	ecs.Transforms[host].Rotation = math.Pi / 2
	sys.Update(0.1)

	got := ecs.Transforms[virus]
	assert.InDelta(t, 100, got.Position.X, 1e-9)
	assert.InDelta(t, 60, got.Position.Y, 1e-9)
	assert.InDelta(t, math.Pi/2, got.Rotation, 1e-9)
}
