// internal/app/snapshot.go
package app

import (
	"github.com/WChurchill/qualified-immunity/internal/component"
	"github.com/WChurchill/qualified-immunity/internal/entity"
	"github.com/WChurchill/qualified-immunity/internal/types"
	"github.com/WChurchill/qualified-immunity/pkg/geom"
)

// EntityView is the read-only view of one entity handed to renderers.
type EntityView struct {
	ID        types.EntityID
	Class     component.EntityClass
	Position  geom.Vec2
	Rotation  float64
	Shape     component.Shape
	Render    component.Renderable
	Attached  bool
	Infection float64 // progress in [0, 1], 0 when healthy
}

// HUD holds the values shown on the heads-up display.
type HUD struct {
	Wave              int
	BoostCharge       float64 // [0, 1]
	DuplicationCharge float64 // [0, 1]
}

// Snapshot is a copy of the drawable state after a tick.
type Snapshot struct {
	Time     float64
	PlayerID types.EntityID
	Entities []EntityView
	HUD      HUD
}

// Snapshot copies the drawable state, entities in ascending id order.
func (g *Game) Snapshot() Snapshot {
	ecs := g.ECS
	snap := Snapshot{
		Time:     ecs.GameTime,
		PlayerID: g.PlayerID,
		HUD:      g.HUD(),
	}
	for _, id := range entity.SortedIDs(ecs.Transforms) {
		tr := ecs.Transforms[id]
		view := EntityView{
			ID:       id,
			Class:    ecs.ClassOf(id),
			Position: tr.Position,
			Rotation: tr.Rotation,
			Attached: ecs.IsAttached(id),
		}
		if col, ok := ecs.Colliders[id]; ok {
			view.Shape = col.Shape
		}
		if r, ok := ecs.Renderables[id]; ok {
			view.Render = *r
		}
		if inf, ok := ecs.Infections[id]; ok {
			view.Infection = inf.Progress()
		}
		snap.Entities = append(snap.Entities, view)
	}
	return snap
}

// HUD returns the current wave number and the charge meters.
func (g *Game) HUD() HUD {
	hud := HUD{
		BoostCharge:       g.ECS.Charges.BoostFraction(),
		DuplicationCharge: g.ECS.Charges.DuplicationFraction(),
	}
	if spawner, err := g.ECS.WaveSpawner(); err == nil {
		hud.Wave = spawner.WaveNumber
	}
	return hud
}

// PlayerPosition returns where the player is, or false once it is gone.
func (g *Game) PlayerPosition() (geom.Vec2, bool) {
	tr, ok := g.ECS.Transforms[g.PlayerID]
	if !ok {
		return geom.Vec2{}, false
	}
	return tr.Position, true
}

// Counts returns the number of live hostiles and hosts.
func (g *Game) Counts() (hostiles, hosts int) {
	return len(g.ECS.Hostiles), len(g.ECS.Hosts)
}
