package state

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arekfu/quoridor/pkg/engine/world"
)

// MoveKind distinguishes pawn steps from barrier placements
type MoveKind uint8

// Move kinds
const (
	MoveStep MoveKind = iota
	MoveBarrier
)

// Move is one turn action. A step uses Dir only; a barrier placement is
// anchored at lattice point (X, Y) and runs DefaultBarrierLength in Dir.
type Move struct {
	Kind MoveKind
	Dir  world.Direction
	X    int
	Y    int
}

// Step returns a pawn step move
func Step(d world.Direction) Move {
	return Move{Kind: MoveStep, Dir: d}
}

// Place returns a barrier placement move
func Place(x, y int, d world.Direction) Move {
	return Move{Kind: MoveBarrier, Dir: d, X: x, Y: y}
}

// PlaceBarrier returns the placement move that stores b as-is
func PlaceBarrier(b world.Barrier) Move {
	return Place(b.Origin.X, b.Origin.Y, b.Dir)
}

// Barrier builds the barrier a placement move describes
func (m Move) Barrier() (world.Barrier, error) {
	return world.NewBarrier(m.X, m.Y, m.Dir, world.DefaultBarrierLength)
}

// String encodes the move as "m <dir>" or "b <x> <y> <dir>" with the
// direction written as its bit value
func (m Move) String() string {
	if m.Kind == MoveBarrier {
		return fmt.Sprintf("b %d %d %d", m.X, m.Y, m.Dir)
	}
	return fmt.Sprintf("m %d", m.Dir)
}

// Describe renders the move for people rather than for the wire
func (m Move) Describe() string {
	if m.Kind == MoveBarrier {
		return fmt.Sprintf("barrier at (%d,%d) going %s", m.X, m.Y, m.Dir)
	}
	return fmt.Sprintf("step %s", m.Dir)
}

// ParseMove decodes a move. Directions may be bit values or names.
func ParseMove(s string) (Move, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return Move{}, fmt.Errorf("%w: empty", ErrInvalidMove)
	}

	switch strings.ToLower(fields[0]) {
	case "m":
		if len(fields) != 2 {
			return Move{}, fmt.Errorf("%w: %q: want m <dir>", ErrInvalidMove, s)
		}
		d, err := world.ParseDirection(fields[1])
		if err != nil {
			return Move{}, fmt.Errorf("%w: %q: %w", ErrInvalidMove, s, err)
		}
		return Step(d), nil

	case "b":
		if len(fields) != 4 {
			return Move{}, fmt.Errorf("%w: %q: want b <x> <y> <dir>", ErrInvalidMove, s)
		}
		x, err := strconv.Atoi(fields[1])
		if err != nil {
			return Move{}, fmt.Errorf("%w: %q: bad x", ErrInvalidMove, s)
		}
		y, err := strconv.Atoi(fields[2])
		if err != nil {
			return Move{}, fmt.Errorf("%w: %q: bad y", ErrInvalidMove, s)
		}
		d, err := world.ParseDirection(fields[3])
		if err != nil {
			return Move{}, fmt.Errorf("%w: %q: %w", ErrInvalidMove, s, err)
		}
		return Place(x, y, d), nil

	default:
		return Move{}, fmt.Errorf("%w: %q: unknown kind %q", ErrInvalidMove, s, fields[0])
	}
}
