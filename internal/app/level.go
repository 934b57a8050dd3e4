// internal/app/level.go
package app

import (
	"math"

	"github.com/WChurchill/qualified-immunity/internal/defs"
	"github.com/WChurchill/qualified-immunity/internal/system"
	"github.com/WChurchill/qualified-immunity/pkg/geom"
)

// setupLevel places the spawner, the player, the host wall and the initial
// hostiles.
func (g *Game) setupLevel(level defs.LevelDefinition) {
	cfg := g.Config
	system.SpawnWaveSpawner(g.ECS, cfg.Wave, cfg.Wave.ArenaCenter)
	g.PlayerID = system.SpawnPlayer(g.ECS, cfg.Player, cfg.Boost, level.Player.Position)
	g.buildWall(level.Wall)
	g.scatterHostiles(level.Hostiles)
}

func (g *Game) buildWall(wall defs.WallDefinition) {
	for col := 0; col < wall.Columns; col++ {
		for row := 0; row < wall.Rows; row++ {
			if g.Rng.Bool(wall.GapChance) {
				continue
			}
			pos := wall.Origin.Add(geom.V(float64(col)*wall.CellSize, float64(row)*wall.CellSize))
			var rotation float64
			var flipX, flipY bool
			if wall.RandomRotation {
				rotation = float64(g.Rng.Intn(4)) * math.Pi / 2
				flipX = g.Rng.Bool(0.5)
				flipY = g.Rng.Bool(0.5)
			}
			system.SpawnHost(g.ECS, pos, wall.CellSize, rotation, flipX, flipY)
		}
	}
}

func (g *Game) scatterHostiles(scatter defs.HostileScatter) {
	halfW, halfH := scatter.Width/2, scatter.Height/2
	for i := 0; i < scatter.Count; i++ {
		pos := scatter.Center.Add(geom.V(
			g.Rng.Range(-halfW, halfW),
			g.Rng.Range(-halfH, halfH),
		))
		system.SpawnHostile(g.ECS, g.Config.Hostile, pos, g.Rng.Heading())
	}
}
