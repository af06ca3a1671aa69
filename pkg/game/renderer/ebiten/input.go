package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "github.com/arekfu/quoridor/pkg/engine/input"
)

// keyBinding maps an ebiten key to the raw code the bindings know
type keyBinding struct {
	key    ebiten.Key
	code   string
	repeat bool
}

// Movement keys repeat while held; everything else fires once per press
var keyBindings = []keyBinding{
	{ebiten.KeyArrowUp, "arrow_up", true},
	{ebiten.KeyArrowDown, "arrow_down", true},
	{ebiten.KeyArrowLeft, "arrow_left", true},
	{ebiten.KeyArrowRight, "arrow_right", true},
	{ebiten.KeyK, "k", true},
	{ebiten.KeyJ, "j", true},
	{ebiten.KeyH, "h", true},
	{ebiten.KeyL, "l", true},

	{ebiten.KeyB, "b", false},
	{ebiten.KeyTab, "tab", false},
	{ebiten.KeyR, "r", false},
	{ebiten.KeySpace, " ", false},
	{ebiten.KeyEnter, "enter", false},
	{ebiten.KeyKPEnter, "enter", false},
	{ebiten.KeyU, "u", false},
	{ebiten.KeyC, "c", false},
	{ebiten.KeyQ, "q", false},
	{ebiten.KeyEscape, "escape", false},
}

// Update handles input and animation (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	if e.isClosed() {
		return ebiten.Termination
	}

	e.updateSlides(1 / float32(ebiten.TPS()))

	if intent := e.checkInput(); intent.Action != engineinput.ActionNone {
		// Non-blocking send to input channel
		select {
		case e.inputChan <- intent:
		default:
			// Channel full, drop input
		}
	}
	return nil
}

// shouldRepeatKey reports whether a held key fires this tick: on the
// initial press, then every keyRepeatInterval ticks after the delay
func shouldRepeatKey(ticks int) bool {
	if ticks == 1 {
		return true
	}
	if ticks < keyRepeatInitialDelay {
		return false
	}
	return (ticks-keyRepeatInitialDelay)%keyRepeatInterval == 0
}

// checkInput returns the intent of the first bound key that fires this tick
func (e *EbitenRenderer) checkInput() engineinput.Intent {
	// ? is shift+slash
	if inpututil.IsKeyJustPressed(ebiten.KeySlash) && ebiten.IsKeyPressed(ebiten.KeyShift) {
		return e.intentFor("?")
	}

	for _, kb := range keyBindings {
		fired := inpututil.IsKeyJustPressed(kb.key)
		if kb.repeat {
			fired = shouldRepeatKey(inpututil.KeyPressDuration(kb.key))
		}
		if fired {
			return e.intentFor(kb.code)
		}
	}
	return engineinput.Intent{Action: engineinput.ActionNone}
}

func (e *EbitenRenderer) intentFor(code string) engineinput.Intent {
	return engineinput.MapToIntent(engineinput.NewDebouncedInput(engineinput.RawInput{
		Device: engineinput.DeviceKeyboard,
		Code:   code,
	}))
}

// Layout returns the game's logical screen size (Ebiten interface)
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != e.windowWidth || outsideHeight != e.windowHeight {
		e.windowWidth = outsideWidth
		e.windowHeight = outsideHeight
		e.invalidateFontCache()
	}
	return outsideWidth, outsideHeight
}
