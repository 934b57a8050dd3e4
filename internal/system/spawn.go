// internal/system/spawn.go
package system

import (
	"github.com/WChurchill/qualified-immunity/internal/component"
	"github.com/WChurchill/qualified-immunity/internal/config"
	"github.com/WChurchill/qualified-immunity/internal/entity"
	"github.com/WChurchill/qualified-immunity/internal/types"
	"github.com/WChurchill/qualified-immunity/pkg/geom"
)

// virus capsule tail, local frame
var (
	virusHead = geom.V(0, 0)
	virusTail = geom.V(0, -3)
)

// SpawnHostile creates a free virus at pos moving along heading (a unit
// vector) at the configured speed.
func SpawnHostile(ecs *entity.ECS, cfg config.HostileConfig, pos, heading geom.Vec2) types.EntityID {
	id := ecs.NewEntity()
	ecs.Transforms[id] = &component.Transform{Position: pos, Rotation: heading.Angle()}
	ecs.Velocities[id] = &component.Velocity{Value: heading.Scale(cfg.Speed)}
	ecs.Speeds[id] = component.NewSpeed(cfg.Speed)
	ecs.TurnRates[id] = &component.TurnRate{Value: cfg.TurnRate}
	ecs.Directionals[id] = &component.Directional{}
	ecs.Colliders[id] = component.NewCollider(component.Capsule(virusHead, virusTail, cfg.Radius))
	ecs.Hostiles[id] = &component.Hostile{Class: component.HostileInfectThenDie}
	ecs.DespawnOnContact[id] = &component.DespawnOnContact{}
	ecs.Renderables[id] = &component.Renderable{Kind: component.RenderVirus, Size: cfg.Radius}
	return id
}

// SpawnHost creates a square host cell of the given side length.
func SpawnHost(ecs *entity.ECS, pos geom.Vec2, size, rotation float64, flipX, flipY bool) types.EntityID {
	id := ecs.NewEntity()
	ecs.Transforms[id] = &component.Transform{Position: pos, Rotation: rotation}
	ecs.Colliders[id] = component.NewCollider(component.Rectangle(size, size))
	ecs.Hosts[id] = &component.Host{}
	ecs.Renderables[id] = &component.Renderable{
		Kind:  component.RenderWallCell,
		Size:  size,
		FlipX: flipX,
		FlipY: flipY,
	}
	return id
}

// SpawnPlayer creates the player cell. Only one player is expected.
func SpawnPlayer(ecs *entity.ECS, cfg config.PlayerConfig, boost config.BoostConfig, pos geom.Vec2) types.EntityID {
	id := ecs.NewEntity()
	ecs.Transforms[id] = &component.Transform{Position: pos}
	ecs.Velocities[id] = &component.Velocity{}
	ecs.Speeds[id] = component.NewSpeed(cfg.Speed)
	ecs.Colliders[id] = component.NewCollider(component.Circle(cfg.Radius))
	ecs.Players[id] = &component.Player{}
	ecs.ActionParams[id] = &component.ActionParams{
		RemainingSecs:           -1,
		ExtraSecsPerBoostLevel:  boost.ExtraSecsPerBoostLevel,
		ExtraSpeedPerBoostLevel: boost.ExtraSpeedPerBoostLevel,
	}
	ecs.Renderables[id] = &component.Renderable{Kind: component.RenderPlayer, Size: cfg.Radius}
	return id
}

// SpawnAlly creates a white blood cell that hunts hostiles.
func SpawnAlly(ecs *entity.ECS, cfg config.AllyConfig, pos geom.Vec2) types.EntityID {
	id := ecs.NewEntity()
	ecs.Transforms[id] = &component.Transform{Position: pos}
	ecs.Velocities[id] = &component.Velocity{}
	ecs.Speeds[id] = component.NewSpeed(cfg.Speed)
	ecs.Colliders[id] = component.NewCollider(component.Circle(cfg.Radius))
	ecs.SeekHostiles[id] = &component.SeekHostile{}
	ecs.Renderables[id] = &component.Renderable{Kind: component.RenderAlly, Size: cfg.Radius}
	return id
}

// SpawnWaveSpawner creates the wave scheduler entity. The first wave is
// spawned as soon as no hostiles remain.
func SpawnWaveSpawner(ecs *entity.ECS, cfg config.WaveConfig, pos geom.Vec2) types.EntityID {
	id := ecs.NewEntity()
	ecs.Transforms[id] = &component.Transform{Position: pos}
	ecs.WaveSpawners[id] = &component.WaveSpawner{
		SpawnRadius:   cfg.SpawnRadius,
		ClusterRadius: cfg.ClusterRadius,
		WaveNumber:    1,
	}
	return id
}
