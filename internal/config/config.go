// internal/config/config.go
package config

import "image/color"

// Viewer constants. The simulation core never reads these.
const (
	ScreenWidth  = 1200
	ScreenHeight = 900
	MaxDeltaTime = 0.06

	CameraFollowRate = 4.0 // fraction of the gap closed per second

	TextCharWidth = 7
	TextOffsetY   = 4

	IndicatorOffsetX = 30
	IndicatorRadius  = 10.0

	ChargeBarWidth  = 160.0
	ChargeBarHeight = 12.0
	ChargeBarGap    = 22.0

	PauseButtonX    = ScreenWidth - 40.0
	PauseButtonY    = 40.0
	PauseButtonSize = 10.0

	StartButtonWidth  = 160
	StartButtonHeight = 40
)

var (
	BackgroundColor   = color.RGBA{20, 20, 30, 255}
	TextLightColor    = color.RGBA{240, 240, 240, 255}
	TextDarkColor     = color.RGBA{20, 20, 30, 255}
	IndicatorStroke   = color.RGBA{240, 240, 240, 255}
	PlayerColor       = color.RGBA{120, 200, 255, 255}
	AllyColor         = color.RGBA{235, 235, 235, 255}
	VirusColor        = color.RGBA{220, 60, 60, 255}
	AttachedColor     = color.RGBA{150, 40, 90, 255}
	HostColor         = color.RGBA{70, 100, 120, 220}
	InfectedColor     = color.RGBA{194, 178, 128, 255}
	BoostBarColor     = color.RGBA{70, 130, 180, 220}
	DuplicateBarColor = color.RGBA{50, 205, 50, 220}
	BarFrameColor     = color.RGBA{240, 240, 240, 255}
	PauseOverlayColor = color.RGBA{0, 0, 0, 128}
	PauseButtonColor  = color.RGBA{70, 130, 180, 255}
	PlayButtonColor   = color.RGBA{50, 205, 50, 255}
	StrokeWidth       = 2.0
)
