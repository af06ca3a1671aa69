package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// getFontSize scales the UI font with the window height
func (e *EbitenRenderer) getFontSize() float64 {
	size := baseFontSize * float64(e.windowHeight) / float64(defaultWindowHeight)
	if size < 10 {
		size = 10
	}
	return size
}

// getFontFace returns a cached font face for the current size
func (e *EbitenRenderer) getFontFace() *text.GoTextFace {
	size := e.getFontSize()
	if e.cachedFace == nil || e.cachedFontSize != size {
		e.cachedFontSize = size
		e.cachedFace = &text.GoTextFace{
			Source: e.fontSource,
			Size:   size,
		}
	}
	return e.cachedFace
}

// invalidateFontCache clears the cached face (call when the window resizes)
func (e *EbitenRenderer) invalidateFontCache() {
	e.cachedFace = nil
}
