package renderer

import (
	"github.com/arekfu/quoridor/pkg/engine/input"
	"github.com/arekfu/quoridor/pkg/game/state"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleCell
	StyleWall
	StyleCursor
	StyleCursorBlocked
	StyleAction
	StyleActionShort
	StyleDenied
	StyleSubtle
	StyleSeat1
	StyleSeat2
	StyleSeat3
	StyleSeat4
	StyleWinner
)

// SeatStyle returns the style of the seat with the given index
func SeatStyle(i int) TextStyle {
	return StyleSeat1 + TextStyle(i%4)
}

// Renderer defines the interface for game rendering backends
type Renderer interface {
	// Init initializes the renderer (colors, fonts, window, etc.)
	Init() error

	// Clear clears the display
	Clear()

	// RenderFrame renders a complete game frame: the board, the seat
	// summary, the messages and the key help
	RenderFrame(g *state.Game)

	// GetInput blocks until the player expresses an intent
	GetInput() input.Intent

	// StyleText applies a style to text and returns the styled string
	StyleText(text string, style TextStyle) string

	// ShowMessage displays a message outside of a frame
	ShowMessage(msg string)
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// Clear clears the display using the current renderer
func Clear() {
	if Current != nil {
		Current.Clear()
	}
}

// RenderFrame renders a complete game frame
func RenderFrame(g *state.Game) {
	if Current != nil {
		Current.RenderFrame(g)
	}
}

// StyleText applies a style to text
func StyleText(text string, style TextStyle) string {
	if Current != nil {
		return Current.StyleText(text, style)
	}
	return text
}

// ShowMessage displays a message using the current renderer
func ShowMessage(msg string) {
	if Current != nil {
		Current.ShowMessage(msg)
	}
}
