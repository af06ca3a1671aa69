package gameplay

import (
	"github.com/arekfu/quoridor/pkg/game/ai"
	"github.com/arekfu/quoridor/pkg/game/state"
)

var hinter state.Controller = ai.New(ai.Config{BarrierRadius: 2})

// SetHinter sets the controller that suggests moves to human seats
func SetHinter(c state.Controller) {
	hinter = c
}

// ShowHint suggests a move to the seat to play and lists how far every seat
// is from its goal. A suggested barrier also moves the cursor onto it.
func ShowHint(g *state.Game) {
	s := g.CurrentSeat()
	var hints []string

	m, err := hinter.GetMove(g.Board, s.ID)
	if err != nil {
		logger.WithError(err).Debug("no hint")
		hints = append(hints, dynamicGet("NO_HINT"))
	} else {
		hints = append(hints, dynamicGet("HINT", m.Describe()))
		if m.Kind == state.MoveBarrier {
			g.Mode = state.ModeBarrier
			g.Cursor.X, g.Cursor.Y = m.X, m.Y
			g.CursorDir = m.Dir
		}
	}

	for i, seat := range g.Board.Seats() {
		hints = append(hints, dynamicGet("DISTANCE", seat.Symbol, g.Board.Distance(i)))
	}
	g.SetHints(hints)
}
