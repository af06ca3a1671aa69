package world

import (
	"errors"
	"fmt"
)

// DefaultBarrierLength is the number of cell edges a standard barrier spans
const DefaultBarrierLength = 2

// ErrInvalidBarrier is returned when a barrier cannot be constructed
var ErrInvalidBarrier = errors.New("invalid barrier")

// Barrier is a straight wall between lattice points that closes the cell
// edges it runs along. It is always stored pointing Right or Down: Left and
// Up barriers are normalized by swapping their ends.
type Barrier struct {
	Origin Position
	End    Position
	Dir    Direction
	Length int
}

// NewBarrier builds a barrier from a lattice point, a direction and a length
func NewBarrier(x, y int, dir Direction, length int) (Barrier, error) {
	if !dir.IsValid() {
		return Barrier{}, fmt.Errorf("%w: %d", ErrInvalidDirection, dir)
	}
	if length < 1 {
		return Barrier{}, fmt.Errorf("%w: length %d", ErrInvalidBarrier, length)
	}

	b := Barrier{
		Origin: Pos(x, y),
		Dir:    dir,
		Length: length,
	}
	b.End = b.Origin.Add(dir, length)

	if dir == Left || dir == Up {
		b.Origin, b.End = b.End, b.Origin
		b.Dir = dir.Opposite()
	}
	return b, nil
}

// Node returns the lattice point of the i-th segment of the barrier
func (b Barrier) Node(i int) Position {
	return b.Origin.Add(b.Dir, i)
}

// Nodes returns the lattice points at the start of every segment
func (b Barrier) Nodes() []Position {
	nodes := make([]Position, b.Length)
	for i := range nodes {
		nodes[i] = b.Node(i)
	}
	return nodes
}

// Edges returns, for each segment, the cell on the near side and the
// direction that crosses the segment from it
func (b Barrier) Edges() []Edge {
	edges := make([]Edge, 0, b.Length)
	for _, n := range b.Nodes() {
		if b.Dir == Right {
			edges = append(edges, Edge{Cell: Pos(n.X, n.Y-1), Dir: Down})
		} else {
			edges = append(edges, Edge{Cell: Pos(n.X-1, n.Y), Dir: Right})
		}
	}
	return edges
}

// IntersectsWith reports whether two barriers overlap or cross.
// Collinear barriers touching end to end do not intersect.
func (b Barrier) IntersectsWith(o Barrier) bool {
	if b.Dir == o.Dir {
		if b.Dir == Right {
			return b.Origin.Y == o.Origin.Y &&
				!(b.End.X <= o.Origin.X || o.End.X <= b.Origin.X)
		}
		return b.Origin.X == o.Origin.X &&
			!(b.End.Y <= o.Origin.Y || o.End.Y <= b.Origin.Y)
	}

	if b.Dir == Right {
		return b.Origin.X < o.Origin.X && o.Origin.X < b.End.X &&
			o.Origin.Y < b.Origin.Y && b.Origin.Y < o.End.Y
	}
	return b.Origin.Y < o.Origin.Y && o.Origin.Y < b.End.Y &&
		o.Origin.X < b.Origin.X && b.Origin.X < o.End.X
}

func (b Barrier) String() string {
	return fmt.Sprintf("%s-%s", b.Origin, b.End)
}

// Edge names the shared side between Cell and Cell.Step(Dir)
type Edge struct {
	Cell Position
	Dir  Direction
}

// Other returns the cell on the far side of the edge
func (e Edge) Other() Position {
	return e.Cell.Step(e.Dir)
}
