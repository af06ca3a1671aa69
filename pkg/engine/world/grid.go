package world

import (
	"github.com/zyedidia/generic/mapset"
)

// Grid is the passability map of a square board. Every cell holds a mask of
// the directions a pawn may leave it in. Border edges are always closed and
// an interior edge is either open from both sides or closed from both sides.
type Grid struct {
	side  int
	masks []uint8
}

// NewGrid creates a grid with every interior edge open
func NewGrid(side int) *Grid {
	g := &Grid{}
	g.Build(side)
	return g
}

// Build resets the grid to the given side with no barriers
func (g *Grid) Build(side int) {
	if side <= 0 {
		panic("Grid side must be positive")
	}

	g.side = side
	g.masks = make([]uint8, side*side)
	for i := range g.masks {
		g.masks[i] = AllMask
	}
	for i := 0; i < side; i++ {
		g.masks[g.index(0, i)] &^= uint8(Left)
		g.masks[g.index(side-1, i)] &^= uint8(Right)
		g.masks[g.index(i, 0)] &^= uint8(Up)
		g.masks[g.index(i, side-1)] &^= uint8(Down)
	}
}

// Side returns the number of cells along one side of the board
func (g *Grid) Side() int {
	return g.side
}

// Cells returns the total number of cells
func (g *Grid) Cells() int {
	return g.side * g.side
}

// Index returns the flat index of an in-bounds position
func (g *Grid) Index(p Position) int {
	return g.index(p.X, p.Y)
}

// At returns the position for a flat index
func (g *Grid) At(i int) Position {
	return Pos(i%g.side, i/g.side)
}

func (g *Grid) index(x, y int) int {
	return y*g.side + x
}

// IsValidPosition checks if a cell position is within the board
func (g *Grid) IsValidPosition(p Position) bool {
	return p.X >= 0 && p.X < g.side && p.Y >= 0 && p.Y < g.side
}

// Mask returns the open directions of a cell, or zero if out of bounds
func (g *Grid) Mask(p Position) uint8 {
	if !g.IsValidPosition(p) {
		return 0
	}
	return g.masks[g.Index(p)]
}

// IsOpen reports whether a pawn may cross from p in direction d
func (g *Grid) IsOpen(p Position, d Direction) bool {
	return g.Mask(p)&uint8(d) != 0
}

// OnEdge reports whether p lies on the board side named by d
func (g *Grid) OnEdge(p Position, d Direction) bool {
	switch d {
	case Up:
		return p.Y == 0
	case Right:
		return p.X == g.side-1
	case Down:
		return p.Y == g.side-1
	case Left:
		return p.X == 0
	default:
		return false
	}
}

// EdgeCells returns the cells along the board side named by d
func (g *Grid) EdgeCells(d Direction) []Position {
	cells := make([]Position, 0, g.side)
	for i := 0; i < g.side; i++ {
		switch d {
		case Up:
			cells = append(cells, Pos(i, 0))
		case Right:
			cells = append(cells, Pos(g.side-1, i))
		case Down:
			cells = append(cells, Pos(i, g.side-1))
		case Left:
			cells = append(cells, Pos(0, i))
		}
	}
	return cells
}

// IsBarrierLegal checks that both ends of a barrier lie within the lattice
// and that it does not run along the board border
func (g *Grid) IsBarrierLegal(b Barrier) bool {
	x, y := b.Origin.X, b.Origin.Y
	x2, y2 := b.End.X, b.End.Y
	if b.Dir == Right {
		return 0 <= x && x <= g.side && 0 < y && y < g.side && 0 <= x2 && x2 <= g.side
	}
	return 0 < x && x < g.side && 0 <= y && y <= g.side && 0 <= y2 && y2 <= g.side
}

// AddBarrier closes the edges spanned by the barrier
func (g *Grid) AddBarrier(b Barrier) {
	for _, e := range b.Edges() {
		g.setEdge(e, false)
	}
}

// RemoveBarrier reopens the edges spanned by the barrier
func (g *Grid) RemoveBarrier(b Barrier) {
	for _, e := range b.Edges() {
		g.setEdge(e, true)
	}
}

func (g *Grid) setEdge(e Edge, open bool) {
	other := e.Other()
	a, o := g.Index(e.Cell), g.Index(other)
	if open {
		g.masks[a] |= uint8(e.Dir)
		g.masks[o] |= uint8(e.Dir.Opposite())
	} else {
		g.masks[a] &^= uint8(e.Dir)
		g.masks[o] &^= uint8(e.Dir.Opposite())
	}
}

// ForEachCell iterates over all cells in row-major order
func (g *Grid) ForEachCell(fn func(p Position, mask uint8)) {
	for i, m := range g.masks {
		fn(g.At(i), m)
	}
}

// Clone returns an independent copy of the grid
func (g *Grid) Clone() *Grid {
	masks := make([]uint8, len(g.masks))
	copy(masks, g.masks)
	return &Grid{side: g.side, masks: masks}
}

// Equal reports whether two grids have the same side and masks
func (g *Grid) Equal(o *Grid) bool {
	if g.side != o.side {
		return false
	}
	for i := range g.masks {
		if g.masks[i] != o.masks[i] {
			return false
		}
	}
	return true
}

// Symmetric reports whether every open edge is open from both sides and no
// border edge is open
func (g *Grid) Symmetric() bool {
	ok := true
	g.ForEachCell(func(p Position, mask uint8) {
		for _, d := range AllDirections() {
			if mask&uint8(d) == 0 {
				continue
			}
			n := p.Step(d)
			if !g.IsValidPosition(n) || !g.IsOpen(n, d.Opposite()) {
				ok = false
			}
		}
	})
	return ok
}

// Reachable reports whether the board side named by goal can be reached from
// start. The visited set is local to the call.
func (g *Grid) Reachable(start Position, goal Direction) bool {
	if !g.IsValidPosition(start) {
		return false
	}

	visited := mapset.New[Position]()
	queue := []Position{start}
	visited.Put(start)

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if g.OnEdge(current, goal) {
			return true
		}

		for _, d := range AllDirections() {
			if !g.IsOpen(current, d) {
				continue
			}
			n := current.Step(d)
			if !visited.Has(n) {
				visited.Put(n)
				queue = append(queue, n)
			}
		}
	}

	return false
}
