package ebiten

import (
	"image/color"
	"math"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/arekfu/quoridor/pkg/engine/world"
)

func newPawnSlide(from, to world.Position) *pawnSlide {
	return &pawnSlide{
		from:  from,
		to:    to,
		tween: gween.New(0, 1, slideDuration, ease.OutQuad),
	}
}

// updateSlides advances every running slide by dt seconds and drops the
// finished ones
func (e *EbitenRenderer) updateSlides(dt float32) {
	e.snapshotMutex.Lock()
	defer e.snapshotMutex.Unlock()

	for i, s := range e.slides {
		if s == nil {
			continue
		}
		progress, finished := s.tween.Update(dt)
		s.progress = progress
		if finished {
			e.slides[i] = nil
		}
	}
}

// pawnCell returns the fractional cell a pawn is drawn at. Callers hold
// snapshotMutex.
func (e *EbitenRenderer) pawnCell(i int, at world.Position) (float32, float32) {
	if i >= len(e.slides) || e.slides[i] == nil || e.slides[i].to != at {
		return float32(at.X), float32(at.Y)
	}
	s := e.slides[i]
	x := float32(s.from.X) + (float32(s.to.X)-float32(s.from.X))*s.progress
	y := float32(s.from.Y) + (float32(s.to.Y)-float32(s.from.Y))*s.progress
	return x, y
}

// pulse returns base scaled between 50% and 100% brightness on a sine wave
func pulse(base color.RGBA) color.Color {
	now := time.Now().UnixMilli()
	phase := float64(now%pulsePeriod) / pulsePeriod
	value := (math.Sin(phase*2*math.Pi) + 1.0) / 2.0

	brightness := 0.5 + 0.5*value
	return color.RGBA{
		uint8(float64(base.R) * brightness),
		uint8(float64(base.G) * brightness),
		uint8(float64(base.B) * brightness),
		base.A,
	}
}
