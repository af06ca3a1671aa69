// Package world provides the passability grid of a square board: cell
// positions, the four directions, barriers and their geometry.
//
// A board of side n has n*n cells and (n+1)*(n+1) lattice points. Barriers
// are anchored on lattice points and close the cell edges they run along.
package world

import "fmt"

// Position is a cell coordinate, or a lattice point when used as a barrier end
type Position struct {
	X int
	Y int
}

// Pos is shorthand for a Position literal
func Pos(x, y int) Position {
	return Position{X: x, Y: y}
}

// Step returns the position one cell away in the given direction
func (p Position) Step(d Direction) Position {
	dx, dy := d.Delta()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Add offsets the position by n steps in the given direction
func (p Position) Add(d Direction, n int) Position {
	dx, dy := d.Delta()
	return Position{X: p.X + n*dx, Y: p.Y + n*dy}
}

// Manhattan returns the taxicab distance between two positions
func (p Position) Manhattan(o Position) int {
	return abs(p.X-o.X) + abs(p.Y-o.Y)
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
