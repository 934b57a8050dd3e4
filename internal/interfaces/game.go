package interfaces

import (
	"github.com/WChurchill/qualified-immunity/internal/app"
	"github.com/WChurchill/qualified-immunity/internal/event"
)

// Simulation is what the viewer needs from a running game.
type Simulation interface {
	Step(deltaTime float64, intent app.Intent) []event.Event
	Snapshot() app.Snapshot
	HUD() app.HUD
}

var _ Simulation = (*app.Game)(nil)
