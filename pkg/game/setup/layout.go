// Package setup provides the starting layout of a new game: where each seat's
// pawn begins and which side of the board it races towards.
package setup

import (
	"errors"
	"fmt"

	"github.com/arekfu/quoridor/pkg/engine/world"
)

// Seat count limits
const (
	MinSeats = 2
	MaxSeats = 4
)

// ErrInvalidLayout is returned for a side or seat count with no layout
var ErrInvalidLayout = errors.New("invalid layout")

// Placement is the starting cell, goal side and display symbol of a seat
type Placement struct {
	Start  world.Position
	Goal   world.Direction
	Symbol rune
}

// Layout returns the placements for the given board side and seat count in
// turn order. Seats start in the middle of a side and race to the opposite
// one: the first seat goes down, the last of two goes up, and with three or
// four seats the second comes in from the right and the fourth from the left.
func Layout(side, seats int) ([]Placement, error) {
	if seats < MinSeats || seats > MaxSeats {
		return nil, fmt.Errorf("%w: %d seats, want %d to %d", ErrInvalidLayout, seats, MinSeats, MaxSeats)
	}
	if side < 2 || (seats > 2 && side < 3) {
		return nil, fmt.Errorf("%w: side %d too small for %d seats", ErrInvalidLayout, side, seats)
	}

	mid := side / 2
	top := Placement{Start: world.Pos(mid, 0), Goal: world.Down}
	bottom := Placement{Start: world.Pos(mid, side-1), Goal: world.Up}
	right := Placement{Start: world.Pos(side-1, mid), Goal: world.Left}
	left := Placement{Start: world.Pos(0, mid), Goal: world.Right}

	var out []Placement
	switch seats {
	case 2:
		out = []Placement{top, bottom}
	case 3:
		out = []Placement{top, right, bottom}
	default:
		out = []Placement{top, right, bottom, left}
	}
	for i := range out {
		out[i].Symbol = rune('1' + i)
	}
	return out, nil
}
