package ebiten

import (
	"fmt"

	"github.com/arekfu/quoridor/pkg/game/renderer"
	"github.com/arekfu/quoridor/pkg/game/state"
)

// RenderFrame captures a snapshot of the game for the next Draw call and
// starts a slide for every pawn that moved since the last frame
func (e *EbitenRenderer) RenderFrame(g *state.Game) {
	e.snapshotMutex.Lock()
	defer e.snapshotMutex.Unlock()

	if g == nil || g.Board == nil {
		e.snapshot.valid = false
		return
	}

	prev := e.snapshot
	snap := renderSnapshot{
		valid:    true,
		side:     g.Board.Side(),
		view:     renderer.BuildView(g.Board, renderer.GameCursor(g)),
		messages: append([]string(nil), g.Messages...),
		hints:    append([]string(nil), g.Hints...),
		over:     g.Over,
		mode:     dynamicGet("MODE_STEP"),
	}
	if g.Mode == state.ModeBarrier {
		snap.mode = dynamicGet("MODE_BARRIER")
	}
	if g.Over {
		snap.mode = dynamicGet("GAME_OVER")
	}

	winner, won := g.Board.Winner()
	for i, s := range g.Board.Seats() {
		stock := dynamicGet("UNLIMITED")
		if s.Barriers != state.UnlimitedBarriers {
			stock = fmt.Sprint(s.Barriers)
		}
		summary := dynamicGet("SEAT_SUMMARY", s.Symbol, g.Board.Distance(i), stock)
		if s.IsComputer() {
			summary += " (" + dynamicGet("COMPUTER") + ")"
		}
		snap.seats = append(snap.seats, seatState{
			symbol:   s.Symbol,
			position: s.Position,
			summary:  summary,
			current:  !won && g.Turn == i,
			winner:   won && winner == i,
		})
	}

	if !prev.valid || len(prev.seats) != len(snap.seats) {
		e.slides = make([]*pawnSlide, len(snap.seats))
	} else {
		for i, s := range snap.seats {
			if from := prev.seats[i].position; from != s.position {
				e.slides[i] = newPawnSlide(from, s.position)
			}
		}
	}

	e.snapshot = snap
}
