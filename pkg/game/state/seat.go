package state

import (
	"github.com/arekfu/quoridor/pkg/engine/world"
)

// UnlimitedBarriers is the stock of a seat that may place any number of barriers
const UnlimitedBarriers = -1

// Controller chooses moves for a seat that is not played by a human
type Controller interface {
	GetMove(b *Board, seatID string) (Move, error)
}

// Seat is one participant: a pawn racing to one side of the board
type Seat struct {
	ID       string
	Symbol   rune
	Index    int
	Position world.Position
	Start    world.Position
	Goal     world.Direction
	Barriers int

	Controller Controller
}

// IsComputer returns true if a controller picks this seat's moves
func (s Seat) IsComputer() bool {
	return s.Controller != nil
}

// CanPlaceBarrier returns true if the seat has barriers left
func (s Seat) CanPlaceBarrier() bool {
	return s.Barriers != 0
}
