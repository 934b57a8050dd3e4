// internal/state/game_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/WChurchill/qualified-immunity/internal/app"
	"github.com/WChurchill/qualified-immunity/internal/component"
	"github.com/WChurchill/qualified-immunity/internal/config"
	"github.com/WChurchill/qualified-immunity/internal/event"
	"github.com/WChurchill/qualified-immunity/internal/interfaces"
	"github.com/WChurchill/qualified-immunity/internal/ui"
	"github.com/WChurchill/qualified-immunity/pkg/geom"
	"github.com/WChurchill/qualified-immunity/pkg/render"
)

var _ State = (*GameState)(nil)

// GameState runs the simulation, feeds it keyboard intents and draws it.
type GameState struct {
	sm        *StateMachine
	sim       interfaces.Simulation
	logger    *zap.Logger
	renderer  *render.ArenaRenderer
	face      font.Face
	indicator *ui.WaveIndicator
	boostBar  *ui.ChargeBar
	dupBar    *ui.ChargeBar
	pause     *ui.PauseButton
	snapshot  app.Snapshot
}

func NewGameState(sm *StateMachine, sim interfaces.Simulation, logger *zap.Logger) *GameState {
	palette := render.Palette{
		Background:  config.BackgroundColor,
		Player:      config.PlayerColor,
		Ally:        config.AllyColor,
		Virus:       config.VirusColor,
		Attached:    config.AttachedColor,
		Host:        config.HostColor,
		Infected:    config.InfectedColor,
		Outline:     config.IndicatorStroke,
		StrokeWidth: float32(config.StrokeWidth),
	}
	face := basicfont.Face7x13
	barX := float32(config.IndicatorOffsetX)
	barY := float32(config.ScreenHeight) - 2*config.ChargeBarGap - config.IndicatorOffsetX

	gs := &GameState{
		sm:        sm,
		sim:       sim,
		logger:    logger.Named("viewer"),
		renderer:  render.NewArenaRenderer(config.ScreenWidth, config.ScreenHeight, face, palette),
		face:      face,
		indicator: ui.NewWaveIndicator(config.ScreenWidth/2, config.IndicatorOffsetX),
		boostBar:  ui.NewChargeBar(barX, barY, config.ChargeBarWidth, config.ChargeBarHeight, config.BoostBarColor, "Space: boost"),
		dupBar:    ui.NewChargeBar(barX, barY+config.ChargeBarGap, config.ChargeBarWidth, config.ChargeBarHeight, config.DuplicateBarColor, "Shift: duplicate"),
		pause:     ui.NewPauseButton(config.PauseButtonX, config.PauseButtonY, config.PauseButtonSize, config.PauseButtonColor, config.PlayButtonColor),
	}
	gs.snapshot = sim.Snapshot()
	if p, ok := playerPosition(gs.snapshot); ok {
		gs.renderer.SetCamera(p)
	}
	return gs
}

func (g *GameState) Enter() {}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) || g.pause.IsClicked() {
		g.pause.TogglePause()
		g.sm.SetState(NewPauseState(g.sm, g, g.pause))
		return
	}

	for _, e := range g.sim.Step(deltaTime, readIntent()) {
		switch e.Type {
		case event.WaveStarted:
			if info, ok := e.Data.(event.WaveInfo); ok {
				g.logger.Info("wave started", zap.Int("wave", info.Number), zap.Int("hostiles", info.Count))
			}
		case event.HostDied:
			if death, ok := e.Data.(event.HostDeath); ok {
				g.logger.Debug("host died", zap.Uint64("host", uint64(death.Host)), zap.Int("offspring", len(death.Offspring)))
			}
		}
	}

	g.snapshot = g.sim.Snapshot()
	if p, ok := playerPosition(g.snapshot); ok {
		g.renderer.FollowCamera(p, deltaTime, config.CameraFollowRate)
	}
}

// readIntent maps the keyboard to a normalized intent. Up is +y.
func readIntent() app.Intent {
	var move geom.Vec2
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		move.X--
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		move.X++
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		move.Y++
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		move.Y--
	}
	return app.Intent{
		Move:      move,
		Boost:     ebiten.IsKeyPressed(ebiten.KeySpace),
		Duplicate: ebiten.IsKeyPressed(ebiten.KeyShiftLeft),
	}
}

func playerPosition(snap app.Snapshot) (geom.Vec2, bool) {
	for _, v := range snap.Entities {
		if v.ID == snap.PlayerID {
			return v.Position, true
		}
	}
	return geom.Vec2{}, false
}

func (g *GameState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)

	// hosts first so that viruses and cells are drawn on top
	for _, v := range g.snapshot.Entities {
		if v.Class == component.ClassHost {
			g.drawEntity(screen, v)
		}
	}
	for _, v := range g.snapshot.Entities {
		if v.Class != component.ClassHost {
			g.drawEntity(screen, v)
		}
	}

	hud := g.snapshot.HUD
	// the level shown is the number of waves released so far
	g.indicator.Draw(screen, hud.Wave-1, g.face)
	g.boostBar.Draw(screen, hud.BoostCharge, g.face)
	g.dupBar.Draw(screen, hud.DuplicationCharge, g.face)
	g.pause.Draw(screen)
}

func (g *GameState) drawEntity(screen *ebiten.Image, v app.EntityView) {
	if v.Shape.Kind == component.ShapeUnknown || !g.renderer.Visible(v.Position, v.Shape.BoundingRadius()) {
		return
	}
	pal := g.renderer.Palette
	tr := &component.Transform{Position: v.Position, Rotation: v.Rotation}

	switch v.Shape.Kind {
	case component.ShapeCircle:
		fill := pal.Player
		if v.Class == component.ClassAlly {
			fill = pal.Ally
		}
		g.renderer.FillCircle(screen, v.Position, v.Shape.Radius, fill)
		g.renderer.StrokeCircle(screen, v.Position, v.Shape.Radius, render.DarkenColor(fill))
	case component.ShapeRectangle:
		fill := render.LerpColor(pal.Host, pal.Infected, v.Infection)
		g.renderer.FillPolygon(screen, rectangleCorners(v.Shape, tr), fill, render.DarkenColor(fill))
	case component.ShapeCapsule:
		clr := pal.Virus
		if v.Attached {
			clr = pal.Attached
		}
		a := v.Position.Add(v.Shape.A.Rotate(v.Rotation))
		b := v.Position.Add(v.Shape.B.Rotate(v.Rotation))
		g.renderer.StrokeSegment(screen, a, b, 2*v.Shape.Radius, clr)
	}
}

func rectangleCorners(shape component.Shape, tr *component.Transform) []geom.Vec2 {
	hx, hy := shape.HalfExtents.X, shape.HalfExtents.Y
	local := [4]geom.Vec2{geom.V(-hx, -hy), geom.V(hx, -hy), geom.V(hx, hy), geom.V(-hx, hy)}
	out := make([]geom.Vec2, 0, 4)
	for _, c := range local {
		out = append(out, tr.Position.Add(c.Rotate(tr.Rotation)))
	}
	return out
}

func (g *GameState) Exit() {}
