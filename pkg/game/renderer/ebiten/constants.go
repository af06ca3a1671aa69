// Package ebiten provides an Ebiten-based 2D graphical renderer for the board.
package ebiten

import "image/color"

// Color palette for the board
var (
	colorBackground      = color.RGBA{26, 26, 46, 255}    // Dark blue-gray
	colorBoardBackground = color.RGBA{15, 15, 26, 255}    // Darker for the board area
	colorFloor           = color.RGBA{60, 60, 80, 255}    // Cells
	colorWall            = color.RGBA{255, 200, 100, 255} // Orange for barriers and the border
	colorCursor          = color.RGBA{100, 220, 255, 255} // Cyan for a legal barrier preview
	colorCursorBlocked   = color.RGBA{255, 100, 100, 255} // Bright red for an illegal one
	colorSubtle          = color.RGBA{120, 130, 180, 255} // Soft blue-purple-gray
	colorText            = color.RGBA{200, 210, 245, 255} // Soft off-white with blue-purple tint
	colorAction          = color.RGBA{180, 150, 250, 255} // Blue-purple
	colorWinner          = color.RGBA{100, 255, 100, 255} // Bright green
	colorPanelBackground = color.RGBA{30, 30, 50, 220}    // Semi-transparent dark
	colorPanelBorder     = color.RGBA{80, 80, 100, 255}

	// One color per seat, in seat order
	colorSeats = [4]color.RGBA{
		{0, 255, 0, 255},     // Bright green
		{100, 150, 255, 255}, // Bright blue
		{255, 80, 80, 255},   // Bright red
		{220, 170, 255, 255}, // Bright purple
	}
)

// Layout
const (
	defaultWindowWidth  = 960
	defaultWindowHeight = 720
	boardMargin         = 20
	panelWidth          = 300
	gapRatio            = 0.2  // wall thickness relative to a cell
	pawnRatio           = 0.35 // pawn radius relative to a cell
	baseFontSize        = 16.0
)

// Animation
const (
	slideDuration = 0.18 // seconds for a pawn to slide one move
	pulsePeriod   = 1200 // milliseconds for one cursor pulse
)

const (
	keyRepeatInitialDelay = 30 // Ticks before the first repeat
	keyRepeatInterval     = 6  // Ticks between repeat events
)
