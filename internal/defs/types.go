// internal/defs/types.go
package defs

import "github.com/WChurchill/qualified-immunity/pkg/geom"

// LevelDefinition describes the starting layout of a level.
type LevelDefinition struct {
	Name     string         `yaml:"name"`
	Player   PlayerStart    `yaml:"player"`
	Wall     WallDefinition `yaml:"wall"`
	Hostiles HostileScatter `yaml:"hostiles"`
}

// PlayerStart places the player cell.
type PlayerStart struct {
	Position geom.Vec2 `yaml:"position"`
}

// WallDefinition is a grid of host cells. Each grid slot is left empty with
// probability GapChance.
type WallDefinition struct {
	Columns   int       `yaml:"columns"`
	Rows      int       `yaml:"rows"`
	CellSize  float64   `yaml:"cell_size"`
	Origin    geom.Vec2 `yaml:"origin"`
	GapChance float64   `yaml:"gap_chance"`
	// RandomRotation turns each cell by a random quarter turn and mirrors it
	// at random. It only changes how cells look.
	RandomRotation bool `yaml:"random_rotation"`
}

// HostileScatter drops Count hostiles uniformly inside a rectangle.
type HostileScatter struct {
	Count  int       `yaml:"count"`
	Center geom.Vec2 `yaml:"center"`
	Width  float64   `yaml:"width"`
	Height float64   `yaml:"height"`
}
