// internal/state/menu_state.go
package state

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"go.uber.org/zap"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/WChurchill/qualified-immunity/internal/config"
	"github.com/WChurchill/qualified-immunity/internal/interfaces"
	"github.com/WChurchill/qualified-immunity/internal/ui"
)

// GameFactory builds a fresh simulation for every new game.
type GameFactory func() (interfaces.Simulation, error)

var _ State = (*MenuState)(nil)

// MenuState waits for Space or a click on Start and then starts a game.
type MenuState struct {
	sm      *StateMachine
	newGame GameFactory
	logger  *zap.Logger
	face    font.Face
	start   *ui.Button
	lastErr error
}

func NewMenuState(sm *StateMachine, newGame GameFactory, logger *zap.Logger) *MenuState {
	face := basicfont.Face7x13
	x := (config.ScreenWidth - config.StartButtonWidth) / 2
	y := config.ScreenHeight/2 + 60
	return &MenuState{
		sm:      sm,
		newGame: newGame,
		logger:  logger,
		face:    face,
		start:   ui.NewButton(image.Rect(x, y, x+config.StartButtonWidth, y+config.StartButtonHeight), "Start", face),
	}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if !inpututil.IsKeyJustPressed(ebiten.KeySpace) && !m.start.IsClicked() {
		return
	}
	sim, err := m.newGame()
	if err != nil {
		m.lastErr = err
		m.logger.Error("cannot start game", zap.Error(err))
		return
	}
	m.sm.SetState(NewGameState(m.sm, sim, m.logger))
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	title := "QUALIFIED IMMUNITY"
	hint := "press Space to start"
	text.Draw(screen, title, m.face, (config.ScreenWidth-len(title)*config.TextCharWidth)/2, config.ScreenHeight/2-20, config.TextLightColor)
	text.Draw(screen, hint, m.face, (config.ScreenWidth-len(hint)*config.TextCharWidth)/2, config.ScreenHeight/2+config.TextOffsetY, config.TextLightColor)
	if m.lastErr != nil {
		msg := m.lastErr.Error()
		text.Draw(screen, msg, m.face, (config.ScreenWidth-len(msg)*config.TextCharWidth)/2, config.ScreenHeight/2+40, config.VirusColor)
	}
	m.start.Draw(screen)
}

func (m *MenuState) Exit() {}
