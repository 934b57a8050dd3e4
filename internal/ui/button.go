// internal/ui/button.go
package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Button is a clickable text button.
type Button struct {
	Rect       image.Rectangle
	Text       string
	TextColor  color.Color
	BgColor    color.Color
	HoverColor color.Color
	Border     color.Color
	Face       font.Face
}

func NewButton(rect image.Rectangle, label string, face font.Face) *Button {
	return &Button{
		Rect:       rect,
		Text:       label,
		TextColor:  color.Black,
		BgColor:    color.RGBA{211, 211, 211, 255},
		HoverColor: color.RGBA{150, 150, 150, 255},
		Border:     color.RGBA{80, 80, 80, 255},
		Face:       face,
	}
}

// Hovered reports whether the cursor is over the button.
func (b *Button) Hovered() bool {
	return image.Pt(ebiten.CursorPosition()).In(b.Rect)
}

// IsClicked reports whether the left mouse button went down over the button
// this frame.
func (b *Button) IsClicked() bool {
	return b.Hovered() && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

func (b *Button) Draw(screen *ebiten.Image) {
	bg := b.BgColor
	if b.Hovered() {
		bg = b.HoverColor
	}
	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, bg, false)
	vector.StrokeRect(screen, x, y, w, h, 2, b.Border, false)

	if b.Face == nil {
		return
	}
	bounds := text.BoundString(b.Face, b.Text)
	tx := b.Rect.Min.X + (b.Rect.Dx()-bounds.Dx())/2
	ty := b.Rect.Min.Y + (b.Rect.Dy()+bounds.Dy())/2
	text.Draw(screen, b.Text, b.Face, tx, ty, b.TextColor)
}
