// internal/state/pause_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/WChurchill/qualified-immunity/internal/config"
	"github.com/WChurchill/qualified-immunity/internal/ui"
)

var _ State = (*PauseState)(nil)

// PauseState freezes the game and draws it dimmed underneath.
type PauseState struct {
	stateMachine  *StateMachine
	previousState State
	button        *ui.PauseButton
}

// NewPauseState pauses prevState. button may be nil.
func NewPauseState(sm *StateMachine, prevState State, button *ui.PauseButton) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
		button:        button,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	clicked := s.button != nil && s.button.IsClicked()
	if clicked || inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if s.button != nil {
			s.button.TogglePause()
		}
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.PauseOverlayColor, false)

	label := "PAUSED"
	x := (config.ScreenWidth - len(label)*config.TextCharWidth) / 2
	text.Draw(screen, label, basicfont.Face7x13, x, config.ScreenHeight/2, config.TextLightColor)
	if s.button != nil {
		s.button.Draw(screen)
	}
}

func (s *PauseState) Exit() {}
