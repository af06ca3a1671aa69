package ebiten

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/leonelquinteros/gotext"

	engineinput "github.com/arekfu/quoridor/pkg/engine/input"
	"github.com/arekfu/quoridor/pkg/game/renderer"
)

// dynamicGet looks up catalog keys at runtime without tripping go vet's
// format string check
var dynamicGet = gotext.Get

// New creates a new Ebiten renderer
func New() *EbitenRenderer {
	return &EbitenRenderer{
		windowWidth:  defaultWindowWidth,
		windowHeight: defaultWindowHeight,
		inputChan:    make(chan engineinput.Intent, 16),
		done:         make(chan struct{}),
	}
}

// Init loads the font and sets up the window
func (e *EbitenRenderer) Init() error {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(fonts.MPlus1pRegular_ttf))
	if err != nil {
		return fmt.Errorf("loading font: %w", err)
	}
	e.fontSource = src

	ebiten.SetWindowSize(e.windowWidth, e.windowHeight)
	ebiten.SetWindowTitle(dynamicGet("TITLE"))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return nil
}

// Clear is a no-op: every Draw repaints the whole window
func (e *EbitenRenderer) Clear() {}

// GetInput blocks until the window produces an intent. It returns a quit
// intent once the renderer is closed.
func (e *EbitenRenderer) GetInput() engineinput.Intent {
	select {
	case intent := <-e.inputChan:
		return intent
	case <-e.done:
		return engineinput.Intent{Action: engineinput.ActionQuit}
	}
}

// StyleText returns the text unchanged; colors are chosen when drawing
func (e *EbitenRenderer) StyleText(text string, style renderer.TextStyle) string {
	return text
}

// ShowMessage has no window to show outside of a frame
func (e *EbitenRenderer) ShowMessage(msg string) {}

// Run starts the Ebiten game loop. It must be called from the main
// goroutine and returns when the window closes or Close is called.
func (e *EbitenRenderer) Run() error {
	return ebiten.RunGame(e)
}

// Close makes the next Update end the Ebiten game loop and unblocks GetInput.
// It may be called more than once.
func (e *EbitenRenderer) Close() {
	e.closeOnce.Do(func() { close(e.done) })
}

func (e *EbitenRenderer) isClosed() bool {
	select {
	case <-e.done:
		return true
	default:
		return false
	}
}
